// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of numbers with tolerance (in other words, it checks whether
// numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// DefaultTol is the default tolerance used by [Equal].
const DefaultTol = 1e-6

// Equal asserts that the given two numbers are about equal
// within the default tolerance [DefaultTol].
func Equal(t assert.TestingT, expected, actual float64, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, DefaultTol, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal
// within the given tolerance.
func EqualTol(t assert.TestingT, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
}
