// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"fmt"
	"log/slog"
	"sync"
)

// WarningKinds are the kinds of advisory [Warning]s
// that contrast computations can emit.
type WarningKinds int32

const (
	// TransparencyWarning indicates that the foreground or background
	// color has an alpha below 1, so the computed contrast ratio may not
	// reflect the rendered contrast.
	TransparencyWarning WarningKinds = iota

	// NonConvergenceLight indicates that the foreground became nearly
	// black before reaching the target ratio, which usually means the
	// background does not adjust for light mode.
	NonConvergenceLight

	// NonConvergenceDark indicates that the foreground became nearly
	// white before reaching the target ratio, which usually means the
	// background does not adjust for dark mode.
	NonConvergenceDark

	// LowContrastWarning indicates that a color pair checked by
	// [WarnIfBelowMin] is below the minimum ratio.
	LowContrastWarning
)

func (k WarningKinds) String() string {
	switch k {
	case TransparencyWarning:
		return "TransparencyWarning"
	case NonConvergenceLight:
		return "NonConvergenceLight"
	case NonConvergenceDark:
		return "NonConvergenceDark"
	case LowContrastWarning:
		return "LowContrastWarning"
	}
	return fmt.Sprintf("WarningKinds(%d)", int32(k))
}

// IsNonConvergence returns whether the kind is one of the
// non-convergence warnings.
func (k WarningKinds) IsNonConvergence() bool {
	return k == NonConvergenceLight || k == NonConvergenceDark
}

// Warning is an advisory diagnostic about the quality of a
// contrast computation. Warnings never change returned values.
type Warning struct {
	Kind WarningKinds

	// Foreground and Background are the colors involved, as given
	// or as computed at the time of the warning.
	Foreground string
	Background string

	// Ratio is the contrast ratio at the time of the warning.
	Ratio float64

	// Target is the ratio that was required.
	Target float64
}

// Message returns a human readable description of the warning.
func (w Warning) Message() string {
	switch w.Kind {
	case TransparencyWarning:
		return "contrast cannot be computed accurately for colors with alpha opacity; use fully opaque foreground and background colors"
	case NonConvergenceLight:
		return "could not reach the target contrast; the background color most likely does not adjust for light mode"
	case NonConvergenceDark:
		return "could not reach the target contrast; the background color most likely does not adjust for dark mode"
	case LowContrastWarning:
		return fmt.Sprintf("%s background with %s text has a low contrast ratio of %.2f; it should be at least %g", w.Background, w.Foreground, w.Ratio, w.Target)
	}
	return w.Kind.String()
}

func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Message()
}

// Diagnostics receives the advisory warnings emitted by contrast
// computations. Implementations shared between goroutines must be
// safe for concurrent use.
type Diagnostics interface {
	Warn(w Warning)
}

// DiagnosticsFunc is a function that implements [Diagnostics].
type DiagnosticsFunc func(w Warning)

// Warn implements [Diagnostics].
func (f DiagnosticsFunc) Warn(w Warning) {
	f(w)
}

// Discard is a [Diagnostics] that ignores all warnings.
var Discard Diagnostics = DiagnosticsFunc(func(Warning) {})

// SlogDiagnostics returns a [Diagnostics] that logs warnings to the
// given logger at [slog.LevelWarn]. If logger is nil, the [slog.Default]
// logger at the time of each warning is used.
func SlogDiagnostics(logger *slog.Logger) Diagnostics {
	return DiagnosticsFunc(func(w Warning) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.Warn(w.Message(),
			"kind", w.Kind.String(),
			"foreground", w.Foreground,
			"background", w.Background,
			"ratio", w.Ratio,
			"target", w.Target)
	})
}

// Recorder is a [Diagnostics] that records all of the warnings it
// receives, for inspection in tests. It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	warnings []Warning
}

// Warn implements [Diagnostics].
func (r *Recorder) Warn(w Warning) {
	r.mu.Lock()
	r.warnings = append(r.warnings, w)
	r.mu.Unlock()
}

// Warnings returns a copy of the recorded warnings.
func (r *Recorder) Warnings() []Warning {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Warning(nil), r.warnings...)
}

// Kinds returns the kinds of the recorded warnings, in order.
func (r *Recorder) Kinds() []WarningKinds {
	ws := r.Warnings()
	ks := make([]WarningKinds, len(ws))
	for i, w := range ws {
		ks[i] = w.Kind
	}
	return ks
}

// Reset clears the recorded warnings.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.warnings = nil
	r.mu.Unlock()
}
