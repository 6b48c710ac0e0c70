// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct
// for the contrast tool, loaded from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/contrast/base/errors"
	"cogentcore.org/contrast/base/iox/tomlx"
	"cogentcore.org/contrast/contrast"
)

// Config is the configuration for the contrast tool. Field defaults
// are given by `default:` struct tags and set by [SetFromDefaults].
type Config struct {

	// Ratio is the target contrast ratio for the solve command.
	Ratio float64 `toml:"ratio" default:"4.85"`

	// DisabledRatio is the target contrast ratio for the disabled command.
	DisabledRatio float64 `toml:"disabled_ratio" default:"2"`

	// Min is the minimum contrast ratio for the check command.
	Min float64 `toml:"min" default:"4.5"`

	// Theme is the theme file to take the background from
	// when no background color is given.
	Theme string `toml:"theme"`

	// Step is the amount by which each iteration shades or tints.
	Step float64 `toml:"step" default:"0.05"`

	// LowerLightness is the L* below which shading gives up.
	// It must be above 0, since a zero bound means the default.
	LowerLightness float64 `toml:"lower_lightness" default:"5"`

	// UpperLightness is the L* above which tinting gives up.
	UpperLightness float64 `toml:"upper_lightness" default:"95"`
}

// DefaultFile is the config file opened by [OpenDefault].
const DefaultFile = "~/.config/contrast/config.toml"

// Default returns a new [Config] with all fields set to their defaults.
func Default() *Config {
	cfg := &Config{}
	errors.Must(SetFromDefaults(cfg))
	return cfg
}

// Open returns the [Config] in the given TOML file, with fields not
// set in the file taking their defaults. A leading ~ in filename is
// expanded to the home directory.
func Open(filename string) (*Config, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := tomlx.Open(cfg, fn); err != nil {
		return nil, err
	}
	if cfg.Theme != "" && !filepath.IsAbs(cfg.Theme) && cfg.Theme[0] != '~' {
		cfg.Theme = filepath.Join(filepath.Dir(fn), cfg.Theme)
	}
	return cfg, cfg.Validate()
}

// OpenDefault opens [DefaultFile] if it exists,
// and otherwise returns [Default].
func OpenDefault() (*Config, error) {
	fn, err := homedir.Expand(DefaultFile)
	if err != nil {
		return Default(), nil
	}
	if _, err := os.Stat(fn); err != nil {
		return Default(), nil
	}
	return Open(fn)
}

// Save writes the config to the given TOML file.
func (c *Config) Save(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0o755); err != nil {
		return err
	}
	return tomlx.Save(c, fn)
}

// Validate returns an error if any of the config values are out of range.
func (c *Config) Validate() error {
	switch {
	case c.Step <= 0 || c.Step > 1:
		return fmt.Errorf("config: step must be in (0, 1], got %g", c.Step)
	case c.LowerLightness <= 0 || c.UpperLightness > 100 || c.LowerLightness >= c.UpperLightness:
		return fmt.Errorf("config: need 0 < lower_lightness < upper_lightness <= 100, got %g and %g", c.LowerLightness, c.UpperLightness)
	}
	return nil
}

// Solver returns a [contrast.Solver] using the config's
// tuning values and the given diagnostics.
func (c *Config) Solver(d contrast.Diagnostics) *contrast.Solver {
	return &contrast.Solver{
		Diagnostics:    d,
		Step:           c.Step,
		LowerLightness: c.LowerLightness,
		UpperLightness: c.UpperLightness,
	}
}

// SetFromDefaults sets the float and string fields of the given struct
// pointer from their `default:` struct tag values.
func SetFromDefaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config.SetFromDefaults: expected a pointer to a struct, not %T", cfg)
	}
	v = v.Elem()
	typ := v.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.Float32, reflect.Float64:
			d, err := strconv.ParseFloat(def, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("config.SetFromDefaults: field %s: %w", f.Name, err))
				continue
			}
			fv.SetFloat(d)
		case reflect.String:
			fv.SetString(def)
		default:
			errs = append(errs, fmt.Errorf("config.SetFromDefaults: field %s: unsupported kind %v", f.Name, fv.Kind()))
		}
	}
	return errors.Join(errs...)
}
