// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contrast

import (
	"fmt"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/colors/wcag"
)

// ColorContrast returns the WCAG contrast ratio between the
// given text and background colors.
func ColorContrast(text, background string) (float64, error) {
	tc, err := colors.Parse(text)
	if err != nil {
		return 0, fmt.Errorf("text color: %w", err)
	}
	bc, err := colors.Parse(background)
	if err != nil {
		return 0, fmt.Errorf("background color: %w", err)
	}
	return wcag.ContrastRatio(tc, bc), nil
}

// WarnIfBelowMin emits a [LowContrastWarning] through the [Default]
// solver's diagnostics if the contrast ratio between the given text and
// background colors is below min. See [Solver.WarnIfBelowMin].
func WarnIfBelowMin(text, background string, min float64) error {
	return Default.WarnIfBelowMin(text, background, min)
}

// WarnIfBelowMin emits a [LowContrastWarning] if the contrast ratio
// between the given text and background colors is below min.
// It does not change any color; the only errors are invalid colors.
func (s *Solver) WarnIfBelowMin(text, background string, min float64) error {
	cr, err := ColorContrast(text, background)
	if err != nil {
		return err
	}
	if cr < min {
		s.warn(Warning{Kind: LowContrastWarning, Foreground: text, Background: background, Ratio: cr, Target: min})
	}
	return nil
}
