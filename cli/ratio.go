// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrLowContrast is returned by check --strict when
// the contrast is below the minimum.
var ErrLowContrast = errors.New("contrast is below the minimum")

func newRatioCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ratio COLOR COLOR",
		Short: "Print the contrast ratio between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.printRatio(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func newCheckCmd(o *options) *cobra.Command {
	var minRatio float64
	var strict bool
	cmd := &cobra.Command{
		Use:   "check TEXT BACKGROUND",
		Short: "Warn if the contrast between two colors is below a minimum",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := o.cfg.Min
			if cmd.Flags().Changed("min") {
				m = minRatio
			}
			if err := o.solver().WarnIfBelowMin(args[0], args[1], m); err != nil {
				return err
			}
			low, err := o.printCheck(cmd.OutOrStdout(), args[0], args[1], m)
			if err != nil {
				return err
			}
			if low && strict {
				return fmt.Errorf("%s on %s: %w", args[0], args[1], ErrLowContrast)
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&minRatio, "min", "m", 0, "minimum contrast ratio (default from config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if the contrast is below the minimum")
	return cmd
}
