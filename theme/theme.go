// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme provides theme objects from which contrast
// computations take their background color (the colors.body token)
// and resolve foreground color tokens.
package theme

import (
	"fmt"
	"strings"
)

// Theme is a source of resolved color token values.
type Theme interface {
	// Body returns the body background color of the theme,
	// stored under colors.body, and whether it is set.
	Body() (string, bool)

	// Lookup returns the string value at the given key path,
	// and whether it resolved to a string. See [Tree.Lookup].
	Lookup(path ...string) (string, bool)
}

// Tree is a [Theme] backed by nested maps, as decoded
// from TOML, YAML, JSON or CSS theme files.
type Tree map[string]any

// Body implements [Theme].
func (t Tree) Body() (string, bool) {
	return t.Lookup("colors", "body")
}

// Lookup returns the string value at the given key path. The path can
// be given as separate segments (Lookup("colors", "primary")), as a single
// dotted path (Lookup("colors.primary")), or as a mix of the two. It
// returns "", false if any segment is missing or the final value is not
// a string.
func (t Tree) Lookup(path ...string) (string, bool) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return "", false
	}
	var node any = t
	for _, seg := range segs {
		m, ok := asMap(node)
		if !ok {
			return "", false
		}
		node, ok = m[seg]
		if !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	return s, ok
}

// Set sets the value at the given dotted key path to the given
// string, creating intermediate maps as needed.
func (t Tree) Set(path, value string) error {
	segs := splitPath([]string{path})
	if len(segs) == 0 {
		return fmt.Errorf("theme.Tree.Set: empty path")
	}
	m := t
	for i, seg := range segs[:len(segs)-1] {
		next, ok := m[seg]
		if !ok {
			nm := Tree{}
			m[seg] = nm
			m = nm
			continue
		}
		nm, ok := asMap(next)
		if !ok {
			return fmt.Errorf("theme.Tree.Set: %q is a value, not a group", strings.Join(segs[:i+1], "."))
		}
		m = nm
	}
	m[segs[len(segs)-1]] = value
	return nil
}

func splitPath(path []string) []string {
	var segs []string
	for _, p := range path {
		for _, s := range strings.Split(p, ".") {
			if s != "" {
				segs = append(segs, s)
			}
		}
	}
	return segs
}

func asMap(v any) (Tree, bool) {
	switch m := v.(type) {
	case Tree:
		return m, true
	case map[string]any:
		return Tree(m), true
	}
	return nil, false
}
