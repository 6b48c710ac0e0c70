// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the color model used for contrast computations:
// parsing of hex, named and functional color strings, lowercase hex
// serialization, and the [Shade] and [Tint] tone shifters.
package colors

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a single sRGB color with 8-bit channels and a
// normalized alpha value between 0 and 1.
type Color struct {
	R, G, B uint8

	// A is the alpha (opacity) of the color, from 0 (transparent) to 1 (opaque).
	A float64
}

var (
	// Black is fully opaque black.
	Black = Color{0, 0, 0, 1}

	// White is fully opaque white.
	White = Color{255, 255, 255, 1}
)

// New returns a new fully opaque color with the given channel values.
func New(r, g, b uint8) Color {
	return Color{r, g, b, 1}
}

// FromColor converts the given [color.Color] into a [Color].
// The channels are un-premultiplied.
func FromColor(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, float64(n.A) / 255}
}

// RGBA implements [color.Color], returning alpha-premultiplied
// values in the range 0x0000 - 0xffff.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the color as a non-premultiplied [color.NRGBA].
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, alphaByte(c.A)}
}

// Alpha returns the normalized alpha channel of the color.
func (c Color) Alpha() float64 {
	return c.A
}

// IsOpaque returns whether the color has no transparency.
func (c Color) IsOpaque() bool {
	return c.A >= 1
}

// Hex returns the color as a lowercase #rrggbb string.
// The alpha channel is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements [fmt.Stringer] by returning [Color.Hex].
func (c Color) String() string {
	return c.Hex()
}

// AsHex returns the given color as a lowercase #rrggbb string.
func AsHex(c Color) string {
	return c.Hex()
}

// Colorful returns the color channels as a [colorful.Color],
// with each channel between 0 and 1. The alpha channel is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful returns the given [colorful.Color] as a [Color] with
// the given alpha. The channels are clamped and rounded to 8 bits.
func FromColorful(cf colorful.Color, alpha float64) Color {
	r, g, b := cf.Clamped().RGB255()
	return Color{r, g, b, clamp01(alpha)}
}

func alphaByte(a float64) uint8 {
	return uint8(clamp01(a)*255 + 0.5)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 1
	}
	return v
}
