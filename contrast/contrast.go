// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contrast adjusts foreground colors so that they meet a
// target WCAG contrast ratio against a background, for accessible
// text-on-background rendering.
//
// The foreground is repeatedly darkened (on light backgrounds) or
// lightened (on dark backgrounds) in small steps until the target ratio
// is met. If the foreground becomes nearly black or white first, the best
// effort color is returned and a non-convergence [Warning] is emitted.
// Contrast quality issues are only ever reported through [Diagnostics];
// the only errors are invalid colors and theme backgrounds without a body
// color.
package contrast

import (
	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/colors/wcag"
)

const (
	// DefaultRatio is the default target ratio of [MakeHighContrastColor],
	// slightly above [wcag.MinAA] to leave room for rendering differences.
	DefaultRatio = 4.85

	// DisabledRatio is the default target ratio of [MakeDisabledContrastColor].
	// Disabled content is not interactive, so it does not need full AA contrast.
	DisabledRatio = 2

	// DefaultStep is the default amount by which each iteration
	// shades or tints the foreground.
	DefaultStep = 0.05

	// DefaultLowerLightness is the default L* below which the
	// solver stops shading and reports [NonConvergenceLight].
	DefaultLowerLightness = 5

	// DefaultUpperLightness is the default L* above which the
	// solver stops tinting and reports [NonConvergenceDark].
	DefaultUpperLightness = 95

	// lightBackground is the background L* above which
	// the foreground is shaded instead of tinted.
	lightBackground = 50
)

// Solver adjusts foreground colors to meet contrast ratios. The zero
// value is ready to use, with all of the default constants, and reports
// warnings to the default slog logger. A Solver is not modified by its
// methods and is safe for concurrent use if its Diagnostics is.
type Solver struct {

	// Diagnostics receives warnings. If nil, warnings are logged
	// with [SlogDiagnostics] using the default slog logger.
	Diagnostics Diagnostics

	// Step is the amount by which each iteration shades or tints
	// the foreground. If zero, [DefaultStep] is used.
	Step float64

	// LowerLightness is the L* below which the solver gives up shading.
	// If zero, [DefaultLowerLightness] is used, so the lowest usable
	// bound is any positive value.
	LowerLightness float64

	// UpperLightness is the L* above which the solver gives up tinting.
	// If zero, [DefaultUpperLightness] is used.
	UpperLightness float64
}

// Default is the [Solver] used by the package-level functions.
var Default = &Solver{}

func (s *Solver) warn(w Warning) {
	d := s.Diagnostics
	if d == nil {
		d = SlogDiagnostics(nil)
	}
	d.Warn(w)
}

func (s *Solver) step() float64 {
	if s.Step > 0 {
		return s.Step
	}
	return DefaultStep
}

func (s *Solver) bounds() (lower, upper float64) {
	lower, upper = s.LowerLightness, s.UpperLightness
	if lower == 0 {
		lower = DefaultLowerLightness
	}
	if upper == 0 {
		upper = DefaultUpperLightness
	}
	return
}

// Solve returns a color that meets the given contrast ratio against the
// given background, starting from the given foreground. See [Solver.Solve].
func Solve(foreground string, ratio float64, bg Background) (string, error) {
	return Default.Solve(foreground, ratio, bg)
}

// SolveDisabled is [Solve] with the [DisabledRatio] target.
func SolveDisabled(foreground string, bg Background) (string, error) {
	return Default.SolveDisabled(foreground, bg)
}

// Solve returns a color, as a lowercase #rrggbb string, that meets the
// given contrast ratio against the given background, starting from the
// given foreground. If the foreground already meets the ratio, it is
// returned unchanged (but normalized). Otherwise it is shaded if the
// background has an L* above 50 and tinted if not, one step at a time,
// until the ratio is met. The direction is fixed from the background
// before the first step.
//
// If the candidate leaves the [Solver.LowerLightness] to
// [Solver.UpperLightness] range before the ratio is met, it is returned
// as is and a non-convergence warning is emitted. A transparency warning
// is emitted if either color has an alpha below 1. Warnings never affect
// the result.
//
// The only errors are an [*colors.InvalidColorError] for a color that
// cannot be parsed and [ErrNoBackground] for a theme without a body color.
func (s *Solver) Solve(foreground string, ratio float64, bg Background) (string, error) {
	fgs, bgs, err := bg.resolve(foreground)
	if err != nil {
		return "", err
	}
	fg, err := colors.Parse(fgs)
	if err != nil {
		return "", err
	}
	back, err := colors.Parse(bgs)
	if err != nil {
		return "", err
	}
	if !fg.IsOpaque() || !back.IsOpaque() {
		s.warn(Warning{Kind: TransparencyWarning, Foreground: fgs, Background: bgs, Target: ratio})
	}

	cr := wcag.ContrastRatio(fg, back)
	shift, failKind := colors.Tint, NonConvergenceDark
	if wcag.Lightness(back) > lightBackground {
		shift, failKind = colors.Shade, NonConvergenceLight
	}
	step := s.step()
	lower, upper := s.bounds()

	c := fg
	for cr < ratio {
		next := shift(c, step)
		stalled := next.R == c.R && next.G == c.G && next.B == c.B
		c = next
		cr = wcag.ContrastRatio(c, back)
		l := wcag.Lightness(c)
		switch {
		case l < lower:
			s.warn(Warning{Kind: NonConvergenceLight, Foreground: c.Hex(), Background: bgs, Ratio: cr, Target: ratio})
			return c.Hex(), nil
		case l > upper:
			s.warn(Warning{Kind: NonConvergenceDark, Foreground: c.Hex(), Background: bgs, Ratio: cr, Target: ratio})
			return c.Hex(), nil
		case stalled:
			// 8-bit rounding fixed point; more steps cannot change c.
			s.warn(Warning{Kind: failKind, Foreground: c.Hex(), Background: bgs, Ratio: cr, Target: ratio})
			return c.Hex(), nil
		}
	}
	return c.Hex(), nil
}

// SolveDisabled is [Solver.Solve] with the [DisabledRatio] target.
func (s *Solver) SolveDisabled(foreground string, bg Background) (string, error) {
	return s.Solve(foreground, DisabledRatio, bg)
}
