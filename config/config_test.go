// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/colors/wcag"
	"cogentcore.org/contrast/contrast"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, float64(contrast.DefaultRatio), cfg.Ratio)
	assert.Equal(t, float64(contrast.DisabledRatio), cfg.DisabledRatio)
	assert.Equal(t, 4.5, cfg.Min)
	assert.Equal(t, float64(contrast.DefaultStep), cfg.Step)
	assert.Equal(t, 5.0, cfg.LowerLightness)
	assert.Equal(t, 95.0, cfg.UpperLightness)
	assert.Equal(t, "", cfg.Theme)
	assert.NoError(t, cfg.Validate())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "config.toml")
	src := `
ratio = 7
theme = "dark.toml"
lower_lightness = 10
`
	require.NoError(t, os.WriteFile(fn, []byte(src), 0o644))
	cfg, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, 7.0, cfg.Ratio)
	assert.Equal(t, 10.0, cfg.LowerLightness)
	assert.Equal(t, 95.0, cfg.UpperLightness)
	assert.Equal(t, 2.0, cfg.DisabledRatio)
	assert.Equal(t, filepath.Join(dir, "dark.toml"), cfg.Theme)

	s := cfg.Solver(contrast.Discard)
	assert.Equal(t, 10.0, s.LowerLightness)
	assert.Equal(t, 0.05, s.Step)
}

func TestOpenInvalid(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(fn, []byte("step = 0\n"), 0o644))
	_, err := Open(fn)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("lower_lightness = 96\n"), 0o644))
	_, err = Open(fn)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("lower_lightness = 0\n"), 0o644))
	_, err = Open(fn)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("lower_lightness = -1\n"), 0o644))
	_, err = Open(fn)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(fn, []byte("ratio = \n"), 0o644))
	_, err = Open(fn)
	assert.Error(t, err)

	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestOpenLowestBound(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(fn, []byte("lower_lightness = 0.5\nupper_lightness = 100\n"), 0o644))
	cfg, err := Open(fn)
	require.NoError(t, err)

	bg := contrast.FromLiteralBackground("#777777")
	res, err := cfg.Solver(contrast.Discard).Solve("#777777", 21, bg)
	require.NoError(t, err)
	def, err := Default().Solver(contrast.Discard).Solve("#777777", 21, bg)
	require.NoError(t, err)
	assert.Equal(t, "#101010", def)

	// shading goes on past the default bound
	assert.Less(t, wcag.Lightness(colors.MustParse(res)), wcag.Lightness(colors.MustParse(def)))
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg := Default()
	cfg.Ratio = 7
	require.NoError(t, cfg.Save(fn))

	got, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSetFromDefaults(t *testing.T) {
	type opts struct {
		Name  string  `default:"main"`
		Value float64 `default:"1.5"`
		Other int
	}
	o := &opts{}
	require.NoError(t, SetFromDefaults(o))
	assert.Equal(t, &opts{Name: "main", Value: 1.5}, o)

	type bad struct {
		Value float64 `default:"x"`
		Count int     `default:"3"`
	}
	assert.Error(t, SetFromDefaults(&bad{}))
	assert.Error(t, SetFromDefaults(opts{}))
}
