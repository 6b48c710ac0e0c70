// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strings"
)

// InvalidColorError is returned when a string cannot be
// interpreted as a color in any supported format.
type InvalidColorError struct {
	// Input is the string that could not be parsed.
	Input string

	// Reason describes what was wrong with Input.
	Reason string

	// Suggestion is the closest known color name, if any.
	Suggestion string
}

func (e *InvalidColorError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "colors: invalid color %q", e.Input)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", e.Suggestion)
	}
	return b.String()
}

func invalid(input, format string, args ...any) *InvalidColorError {
	return &InvalidColorError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
