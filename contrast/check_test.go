// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/contrast/base/tolassert"
	"cogentcore.org/contrast/colors"
)

func TestColorContrast(t *testing.T) {
	cr, err := ColorContrast("#000000", "#ffffff")
	require.NoError(t, err)
	tolassert.EqualTol(t, 21, cr, 1e-9)

	cr2, err := ColorContrast("#ffffff", "#000000")
	require.NoError(t, err)
	assert.Equal(t, cr, cr2)

	cr, err = ColorContrast("red", "red")
	require.NoError(t, err)
	tolassert.Equal(t, 1, cr)

	_, err = ColorContrast("#zzz", "#ffffff")
	var ice *colors.InvalidColorError
	assert.True(t, errors.As(err, &ice))
	assert.Contains(t, err.Error(), "text color")

	_, err = ColorContrast("#000", "nope")
	assert.True(t, errors.As(err, &ice))
	assert.Contains(t, err.Error(), "background color")
}

func TestWarnIfBelowMin(t *testing.T) {
	s, rec := newSolver()
	require.NoError(t, s.WarnIfBelowMin("#777777", "#ffffff", 4.5))
	require.Len(t, rec.Warnings(), 1)
	w := rec.Warnings()[0]
	assert.Equal(t, LowContrastWarning, w.Kind)
	assert.Equal(t, "#777777", w.Foreground)
	assert.Equal(t, "#ffffff", w.Background)
	tolassert.EqualTol(t, 4.478, w.Ratio, 1e-3)
	assert.Equal(t, 4.5, w.Target)
	assert.Contains(t, w.Message(), "low contrast ratio of 4.48")

	rec.Reset()
	require.NoError(t, s.WarnIfBelowMin("#777777", "#ffffff", 4.4))
	require.NoError(t, s.WarnIfBelowMin("#000000", "#ffffff", 21))
	assert.Empty(t, rec.Warnings())

	err := s.WarnIfBelowMin("#777777", "#ff", 4.5)
	assert.Error(t, err)
	assert.Empty(t, rec.Warnings())
}

func ExampleColorContrast() {
	cr, _ := ColorContrast("#000000", "#ffffff")
	fmt.Printf("%.0f\n", cr)
	// Output: 21
}
