// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/contrast/theme"
)

func TestMakeHighContrastColor(t *testing.T) {
	hc := MakeHighContrastColor("#777777")
	assert.Equal(t, "#777777", hc.Foreground)
	assert.Equal(t, float64(DefaultRatio), hc.Ratio)

	hc = MakeHighContrastColor("#777777", 7, 21)
	assert.Equal(t, 7.0, hc.Ratio)

	s, rec := newSolver()
	hc = MakeHighContrastColor("#777777", 4.5).WithSolver(s)
	res, err := hc.Resolve(FromLiteralBackground("#ffffff"))
	require.NoError(t, err)
	assert.Equal(t, "#717171", res)

	// the maker is reusable against other backgrounds
	resolve := hc.Func()
	res, err = resolve(FromLiteralBackground("#000000"))
	require.NoError(t, err)
	assert.Equal(t, "#777777", res)
	assert.Empty(t, rec.Warnings())
}

func TestMakeDisabledContrastColor(t *testing.T) {
	dc := MakeDisabledContrastColor("#cccccc")
	assert.Equal(t, float64(DisabledRatio), dc.Ratio)
	assert.Equal(t, 3.0, MakeDisabledContrastColor("#cccccc", 3).Ratio)

	s, _ := newSolver()
	res, err := dc.WithSolver(s).Resolve(FromLiteralBackground("#ffffff"))
	require.NoError(t, err)
	assert.Equal(t, "#afafaf", res)

	direct, err := s.SolveDisabled("#cccccc", FromLiteralBackground("#ffffff"))
	require.NoError(t, err)
	assert.Equal(t, res, direct)

	high, err := s.Solve("#cccccc", DefaultRatio, FromLiteralBackground("#ffffff"))
	require.NoError(t, err)
	assert.NotEqual(t, high, res)
}

func TestMakerTheme(t *testing.T) {
	light := theme.Tree{"colors": map[string]any{"body": "#ffffff", "text": "#777777"}}
	dark := theme.Tree{"colors": map[string]any{"body": "#000000", "text": "#333333"}}
	s := &Solver{Diagnostics: Discard}
	hc := MakeHighContrastColor("colors.text", 4.5).WithSolver(s)

	res, err := hc.Resolve(FromTheme(light))
	require.NoError(t, err)
	assert.Equal(t, "#717171", res)

	res, err = hc.Resolve(FromTheme(dark))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ratio(t, res, "#000000"), 4.5)
}

func TestMakerDefaultSolver(t *testing.T) {
	hc := MakeHighContrastColor("#000000")
	assert.Nil(t, hc.Solver)
	res, err := hc.Resolve(FromLiteralBackground("#ffffff"))
	require.NoError(t, err)
	assert.Equal(t, "#000000", res)
}

func ExampleMakeHighContrastColor() {
	text := MakeHighContrastColor("#777777", 4.5)
	for _, bg := range []string{"#ffffff", "#000000"} {
		res, _ := text.Resolve(FromLiteralBackground(bg))
		fmt.Println(bg, res)
	}
	// Output:
	// #ffffff #717171
	// #000000 #777777
}
