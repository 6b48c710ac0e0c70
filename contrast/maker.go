// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

// HighContrast binds a foreground color (or theme token) and a target
// ratio, so that the same adjustment can be resolved against different
// backgrounds. Make one with [MakeHighContrastColor] or
// [MakeDisabledContrastColor].
type HighContrast struct {

	// Foreground is the color to adjust, or a theme token path
	// when resolved against a theme [Background].
	Foreground string

	// Ratio is the target contrast ratio.
	Ratio float64

	// Solver is the solver to use. If nil, [Default] is used.
	Solver *Solver
}

// MakeHighContrastColor returns a [HighContrast] for the given foreground
// and optional ratio, which defaults to [DefaultRatio]. Only the first
// ratio is used.
func MakeHighContrastColor(foreground string, ratio ...float64) *HighContrast {
	r := float64(DefaultRatio)
	if len(ratio) > 0 {
		r = ratio[0]
	}
	return &HighContrast{Foreground: foreground, Ratio: r}
}

// MakeDisabledContrastColor is [MakeHighContrastColor] with the ratio
// defaulting to [DisabledRatio], for disabled content.
func MakeDisabledContrastColor(color string, ratio ...float64) *HighContrast {
	if len(ratio) == 0 {
		return MakeHighContrastColor(color, DisabledRatio)
	}
	return MakeHighContrastColor(color, ratio...)
}

// Resolve returns the adjusted foreground color for the given background.
// See [Solver.Solve].
func (hc *HighContrast) Resolve(bg Background) (string, error) {
	s := hc.Solver
	if s == nil {
		s = Default
	}
	return s.Solve(hc.Foreground, hc.Ratio, bg)
}

// Func returns [HighContrast.Resolve] as a function value.
func (hc *HighContrast) Func() func(bg Background) (string, error) {
	return hc.Resolve
}

// WithSolver returns a copy of hc that uses the given solver.
func (hc *HighContrast) WithSolver(s *Solver) *HighContrast {
	nhc := *hc
	nhc.Solver = s
	return &nhc
}
