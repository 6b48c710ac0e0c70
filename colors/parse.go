// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"cogentcore.org/contrast/base/errors"
)

// Parse returns the color specified by the given string. It accepts
// hex values (#rgb, #rgba, #rrggbb, #rrggbbaa), CSS color names,
// "transparent", and rgb(), rgba(), hsl() and hsla() functions.
// Case and surrounding whitespace are ignored. Any failure is
// returned as an [*InvalidColorError]; see [MustParse] and
// [LogParse] for versions that do not return an error.
func Parse(s string) (Color, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if str == "" {
		return Color{}, invalid(s, "empty string")
	}
	switch {
	case str[0] == '#':
		c, err := parseHex(str)
		if err != nil {
			err.Input = s
			return Color{}, err
		}
		return c, nil
	case strings.HasPrefix(str, "rgb"):
		return parseRGB(s, str)
	case strings.HasPrefix(str, "hsl"):
		return parseHSL(s, str)
	}
	if c, ok := FromName(str); ok {
		return c, nil
	}
	return Color{}, &InvalidColorError{Input: s, Reason: "unknown color name", Suggestion: Suggest(str)}
}

// MustParse returns the color specified by the given string.
// It panics on any resulting error; see [Parse] for
// more information and a version that returns an error.
func MustParse(s string) Color {
	return errors.Must1(Parse(s))
}

// LogParse returns the color specified by the given string.
// It logs any resulting error and returns the zero color in that case;
// see [Parse] for more information and a version that returns an error.
func LogParse(s string) Color {
	return errors.Log1(Parse(s))
}

// FromHex parses the given hex color string, with or without
// a leading #. It supports 3, 4, 6 and 8 digit forms. Any failure
// is returned as an [*InvalidColorError].
func FromHex(hex string) (Color, error) {
	c, err := parseHex(hex)
	if err != nil {
		return Color{}, err
	}
	return c, nil
}

func parseHex(hex string) (Color, *InvalidColorError) {
	h := strings.TrimPrefix(hex, "#")
	switch len(h) {
	case 3, 4:
		var v [4]uint8
		v[3] = 0xf
		for i := 0; i < len(h); i++ {
			d, ok := hexDigit(h[i])
			if !ok {
				return Color{}, invalid(hex, "bad hex digit %q", h[i])
			}
			v[i] = d
		}
		return Color{v[0] * 0x11, v[1] * 0x11, v[2] * 0x11, float64(v[3]*0x11) / 255}, nil
	case 6, 8:
		var v [4]uint8
		v[3] = 0xff
		for i := 0; i < len(h); i += 2 {
			hi, ok1 := hexDigit(h[i])
			lo, ok2 := hexDigit(h[i+1])
			if !ok1 || !ok2 {
				return Color{}, invalid(hex, "bad hex digits %q", h[i:i+2])
			}
			v[i/2] = hi<<4 | lo
		}
		return Color{v[0], v[1], v[2], float64(v[3]) / 255}, nil
	}
	return Color{}, invalid(hex, "hex colors must have 3, 4, 6 or 8 digits, not %d", len(h))
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// funcArgs splits the arguments of a color function such as
// rgb(1, 2, 3) or rgb(1 2 3 / 50%) into their components.
func funcArgs(orig, str, name string) ([]string, *InvalidColorError) {
	rest := strings.TrimPrefix(str, name)
	rest = strings.TrimPrefix(rest, "a")
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return nil, invalid(orig, "malformed %s() function", name)
	}
	rest = rest[1 : len(rest)-1]
	rest = strings.ReplaceAll(rest, "/", " ")
	rest = strings.ReplaceAll(rest, ",", " ")
	args := strings.Fields(rest)
	if len(args) != 3 && len(args) != 4 {
		return nil, invalid(orig, "%s() needs 3 or 4 arguments, got %d", name, len(args))
	}
	return args, nil
}

// number parses a plain or percentage number. Percentages are
// scaled so that 100% equals full.
func number(arg string, full float64) (float64, bool) {
	pct := strings.HasSuffix(arg, "%")
	v, err := strconv.ParseFloat(strings.TrimSuffix(arg, "%"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if pct {
		v = v / 100 * full
	}
	return v, true
}

func parseAlpha(orig string, args []string) (float64, *InvalidColorError) {
	if len(args) < 4 {
		return 1, nil
	}
	a, ok := number(args[3], 1)
	if !ok {
		return 0, invalid(orig, "bad alpha value %q", args[3])
	}
	return clamp01(a), nil
}

func parseRGB(orig, str string) (Color, error) {
	args, err := funcArgs(orig, str, "rgb")
	if err != nil {
		return Color{}, err
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, ok := number(args[i], 255)
		if !ok {
			return Color{}, invalid(orig, "bad channel value %q", args[i])
		}
		ch[i] = uint8(min(max(v, 0), 255) + 0.5)
	}
	a, err := parseAlpha(orig, args)
	if err != nil {
		return Color{}, err
	}
	return Color{ch[0], ch[1], ch[2], a}, nil
}

func parseHSL(orig, str string) (Color, error) {
	args, err := funcArgs(orig, str, "hsl")
	if err != nil {
		return Color{}, err
	}
	h, ok := number(strings.TrimSuffix(args[0], "deg"), 360)
	if !ok {
		return Color{}, invalid(orig, "bad hue %q", args[0])
	}
	s, ok1 := number(args[1], 1)
	l, ok2 := number(args[2], 1)
	if !ok1 || !ok2 || !strings.HasSuffix(args[1], "%") || !strings.HasSuffix(args[2], "%") {
		return Color{}, invalid(orig, "saturation and lightness must be percentages")
	}
	a, err := parseAlpha(orig, args)
	if err != nil {
		return Color{}, err
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return FromColorful(colorful.Hsl(h, clamp01(s), clamp01(l)), a), nil
}
