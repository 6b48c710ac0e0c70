// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"errors"

	"cogentcore.org/contrast/theme"
)

// ErrNoBackground is returned when a theme [Background]
// has no colors.body value.
var ErrNoBackground = errors.New("contrast: theme has no colors.body background color")

// Background is the basis against which a foreground color is
// adjusted. It is either a literal color string, made with
// [FromLiteralBackground], or a theme, made with [FromTheme].
type Background struct {
	literal string
	theme   theme.Theme
}

// FromLiteralBackground returns a [Background] for the given color string.
// Foreground colors resolved against it are always treated as literal colors.
func FromLiteralBackground(color string) Background {
	return Background{literal: color}
}

// FromTheme returns a [Background] for the given theme. The background
// color is the theme's colors.body value, and foreground colors resolved
// against it are first looked up as theme token paths (for example
// "colors.primary"), falling back to literal colors.
func FromTheme(t theme.Theme) Background {
	return Background{theme: t}
}

// IsTheme returns whether the background was made with [FromTheme].
func (b Background) IsTheme() bool {
	return b.theme != nil
}

// String returns the literal background color, or the theme body
// color if it is a theme background.
func (b Background) String() string {
	if b.theme != nil {
		body, _ := b.theme.Body()
		return body
	}
	return b.literal
}

// resolve returns the foreground and background color strings
// to use for the given foreground input.
func (b Background) resolve(foreground string) (fg, bg string, err error) {
	if b.theme == nil {
		return foreground, b.literal, nil
	}
	body, ok := b.theme.Body()
	if !ok {
		return "", "", ErrNoBackground
	}
	if tok, ok := b.theme.Lookup(foreground); ok {
		return tok, body, nil
	}
	return foreground, body, nil
}
