// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the command tree of the contrast tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"cogentcore.org/contrast/config"
	"cogentcore.org/contrast/contrast"
	"cogentcore.org/contrast/logx"
	"cogentcore.org/contrast/theme"
)

// options are the persistent flags and
// loaded configuration shared by all commands.
type options struct {
	vv, verbose, quiet bool
	configFile         string
	noColor            bool

	cfg *config.Config
}

// Execute runs the contrast command line tool with the
// process arguments, exiting with status 1 on any error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd returns a new root command of the contrast tool.
func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "contrast",
		Short: "Adjust colors to meet WCAG contrast ratios",
		Long: `contrast darkens or lightens text colors until they meet a target
WCAG contrast ratio against a background color or a theme.

Colors can be hex values (#rgb, #rrggbb, #rrggbbaa), CSS color names,
or rgb() and hsl() functions. Theme files (TOML, YAML, JSON or CSS)
provide the background in colors.body and named color tokens.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.setup,
	}
	pf := root.PersistentFlags()
	pf.BoolVar(&o.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "show informational messages")
	pf.BoolVarP(&o.quiet, "quiet", "q", false, "only show errors")
	pf.StringVar(&o.configFile, "config", "", "config file (default "+config.DefaultFile+")")
	pf.BoolVar(&o.noColor, "no-color", false, "do not print color swatches")

	root.AddCommand(newSolveCmd(o, false))
	root.AddCommand(newSolveCmd(o, true))
	root.AddCommand(newRatioCmd(o))
	root.AddCommand(newCheckCmd(o))
	root.AddCommand(newConfigCmd(o))
	return root
}

func (o *options) setup(cmd *cobra.Command, args []string) error {
	logx.UserLevel = logx.LevelFromFlags(o.vv, o.verbose, o.quiet)
	slog.SetDefault(logx.NewLogger(cmd.ErrOrStderr()))

	var err error
	if o.configFile != "" {
		o.cfg, err = config.Open(o.configFile)
	} else {
		o.cfg, err = config.OpenDefault()
	}
	if err != nil {
		return err
	}
	slog.Debug("loaded config", "ratio", o.cfg.Ratio, "theme", o.cfg.Theme)
	return nil
}

// solver returns the solver configured by the config file,
// reporting warnings to the default logger.
func (o *options) solver() *contrast.Solver {
	return o.cfg.Solver(contrast.SlogDiagnostics(nil))
}

// background returns the literal background given in args at index i,
// or the background of the given theme file, or of the configured theme.
func (o *options) background(args []string, i int, themeFile string) (contrast.Background, error) {
	if len(args) > i {
		if themeFile != "" {
			return contrast.Background{}, fmt.Errorf("give either a background color or --theme, not both")
		}
		return contrast.FromLiteralBackground(args[i]), nil
	}
	if themeFile == "" {
		themeFile = o.cfg.Theme
	}
	if themeFile == "" {
		return contrast.Background{}, fmt.Errorf("no background color given and no theme configured")
	}
	t, err := theme.Open(themeFile)
	if err != nil {
		return contrast.Background{}, err
	}
	slog.Info("using theme", "file", themeFile)
	return contrast.FromTheme(t), nil
}
