// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cogentcore.org/contrast/base/iox/tomlx"
	"cogentcore.org/contrast/config"
)

func newConfigCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := tomlx.WriteBytes(o.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [FILE]",
		Short: "Write a config file with the default values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn := config.DefaultFile
			if len(args) > 0 {
				fn = args[0]
			}
			if err := config.Default().Save(fn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", fn)
			return nil
		},
	})
	return cmd
}
