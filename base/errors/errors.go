// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors wraps the standard library errors package so that it
// can be imported in place of it, and adds helpers for logging or
// panicking on errors in places where returning them is not an option.
package errors

import (
	"errors"
	"log/slog"
)

// New wraps [errors.New].
func New(text string) error { return errors.New(text) }

// Is wraps [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As wraps [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join wraps [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Log logs the given error with [slog.Error] if it is non-nil,
// along with any given key-value attributes, and returns it:
//
//	return errors.Log(cfg.Save(fn), "file", fn)
func Log(err error, args ...any) error {
	if err != nil {
		slog.Error(err.Error(), args...)
	}
	return err
}

// Log1 returns v, logging err with [slog.Error] if it is non-nil:
//
//	c := errors.Log1(colors.Parse(s))
func Log1[T any](v T, err error) T {
	Log(err)
	return v
}

// Must panics if err is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns v, panicking if err is non-nil:
//
//	c := errors.Must1(colors.Parse(s))
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}
