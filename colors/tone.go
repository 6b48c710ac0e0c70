// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

// Shade returns a color that is darker than the given color, blending
// it toward black in RGB space by the given amount (0-1, ranges enforced).
// The alpha channel is blended toward opaque.
func Shade(c Color, amount float64) Color {
	return Blend(c, Black, amount)
}

// Tint returns a color that is lighter than the given color, blending
// it toward white in RGB space by the given amount (0-1, ranges enforced).
// The alpha channel is blended toward opaque.
func Tint(c Color, amount float64) Color {
	return Blend(c, White, amount)
}

// Blend returns the color that is the given proportion (0-1, ranges
// enforced) of the way from x to y, interpolating each channel
// linearly in sRGB and rounding to 8 bits.
func Blend(x, y Color, amount float64) Color {
	amount = clamp01(amount)
	cf := x.Colorful().BlendRgb(y.Colorful(), amount)
	return FromColorful(cf, x.A+amount*(y.A-x.A))
}
