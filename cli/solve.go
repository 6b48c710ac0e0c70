// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"cogentcore.org/contrast/contrast"
)

func newSolveCmd(o *options, disabled bool) *cobra.Command {
	var ratio float64
	var themeFile string
	cmd := &cobra.Command{
		Use:   "solve FOREGROUND [BACKGROUND]",
		Short: "Adjust a text color to meet a contrast ratio",
		Long: `Darken (on light backgrounds) or lighten (on dark backgrounds) the
foreground until it meets the target contrast ratio against the background.
Without a BACKGROUND, the colors.body of the theme is used, and FOREGROUND
may be a theme token such as colors.primary.

Examples:
  contrast solve '#777777' white
  contrast solve colors.primary --theme light.toml --ratio 7`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bg, err := o.background(args, 1, themeFile)
			if err != nil {
				return err
			}
			hc := contrast.MakeHighContrastColor(args[0], o.cfg.Ratio)
			if disabled {
				hc = contrast.MakeDisabledContrastColor(args[0], o.cfg.DisabledRatio)
			}
			if cmd.Flags().Changed("ratio") {
				hc.Ratio = ratio
			}
			hc = hc.WithSolver(o.solver())
			res, err := hc.Resolve(bg)
			if err != nil {
				return err
			}
			return o.printColor(cmd.OutOrStdout(), res, bg.String())
		},
	}
	if disabled {
		cmd.Use = "disabled FOREGROUND [BACKGROUND]"
		cmd.Short = "Adjust a disabled text color to meet a lower contrast ratio"
		cmd.Long = `Like solve, but with the lower default ratio used for disabled,
non-interactive content.`
	}
	cmd.Flags().Float64VarP(&ratio, "ratio", "r", 0, "target contrast ratio (default from config)")
	cmd.Flags().StringVarP(&themeFile, "theme", "t", "", "theme file to take the background and tokens from")
	return cmd
}
