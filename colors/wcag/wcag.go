// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wcag computes the perceptual metrics used for contrast
// adjustment: CIE L* lightness and the WCAG 2 contrast ratio.
package wcag

import (
	"math"

	"cogentcore.org/contrast/colors"
)

// Minimum contrast ratios defined by WCAG 2 for text.
const (
	// MinAA is the level AA minimum for normal text.
	MinAA = 4.5

	// MinAALarge is the level AA minimum for large text.
	MinAALarge = 3

	// MinAAA is the level AAA minimum for normal text.
	MinAAA = 7

	// MinAAALarge is the level AAA minimum for large text.
	MinAAALarge = 4.5
)

// Lightness returns the CIE L* perceptual lightness of the given
// color relative to the D65 white point, between 0 and 100.
// The alpha channel is ignored.
func Lightness(c colors.Color) float64 {
	l, _, _ := c.Colorful().Lab()
	return math.Min(math.Max(l*100, 0), 100)
}

// RelativeLuminance returns the WCAG relative luminance
// of the given color, between 0 and 1. The alpha
// channel is ignored.
func RelativeLuminance(c colors.Color) float64 {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts an 8-bit sRGB channel to linear light
// using the WCAG 2 transfer function.
func linearize(v uint8) float64 {
	f := float64(v) / 255
	if f <= 0.03928 {
		return f / 12.92
	}
	return math.Pow((f+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between the given two
// colors. It is symmetric in its arguments and lies between 1 and 21.
func ContrastRatio(a, b colors.Color) float64 {
	return ContrastRatioOfLuminances(RelativeLuminance(a), RelativeLuminance(b))
}

// ContrastRatioOfLuminances returns the contrast ratio of two
// relative luminance values.
func ContrastRatioOfLuminances(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 0.05) / (darker + 0.05)
}

// Level returns the name of the highest WCAG level that the given
// contrast ratio satisfies for normal (or large, if large is true)
// text: "AAA", "AA", or "" if neither.
func Level(ratio float64, large bool) string {
	aaa, aa := float64(MinAAA), float64(MinAA)
	if large {
		aaa, aa = MinAAALarge, MinAALarge
	}
	switch {
	case ratio >= aaa:
		return "AAA"
	case ratio >= aa:
		return "AA"
	}
	return ""
}
