// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/colors/wcag"
	"cogentcore.org/contrast/contrast"
)

// output returns the termenv output for w, without
// any colors if --no-color was given.
func (o *options) output(w io.Writer) *termenv.Output {
	if o.noColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

// swatch returns a sample of fg text on bg, or "" if
// the output does not support colors.
func swatch(out *termenv.Output, fg, bg string) string {
	if out.Profile == termenv.Ascii {
		return ""
	}
	f, err := colors.Parse(fg)
	if err != nil {
		return ""
	}
	b, err := colors.Parse(bg)
	if err != nil {
		return ""
	}
	return out.String(" Aa ").Foreground(out.Color(f.Hex())).Background(out.Color(b.Hex())).String() + " "
}

// levelName returns the WCAG level met by the given ratio for
// normal text, or "fail".
func levelName(ratio float64) string {
	if l := wcag.Level(ratio, false); l != "" {
		return l
	}
	return "fail"
}

func (o *options) printColor(w io.Writer, fg, bg string) error {
	cr, err := contrast.ColorContrast(fg, bg)
	if err != nil {
		return err
	}
	out := o.output(w)
	fmt.Fprintf(out, "%s %s%.2f:1 %s\n", fg, swatch(out, fg, bg), cr, levelName(cr))
	return nil
}

func (o *options) printRatio(w io.Writer, a, b string) error {
	cr, err := contrast.ColorContrast(a, b)
	if err != nil {
		return err
	}
	out := o.output(w)
	fmt.Fprintf(out, "%s%.2f:1 %s\n", swatch(out, a, b), cr, levelName(cr))
	return nil
}

func (o *options) printCheck(w io.Writer, text, bg string, min float64) (low bool, err error) {
	cr, err := contrast.ColorContrast(text, bg)
	if err != nil {
		return false, err
	}
	status := "pass"
	if cr < min {
		status, low = "low", true
	}
	out := o.output(w)
	fmt.Fprintf(out, "%s%s %.2f:1 (minimum %g)\n", swatch(out, text, bg), status, cr, min)
	return low, nil
}
