// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/golangee/recog/config"
	"github.com/golangee/recog/encoder"
	"github.com/golangee/recog/parser"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	format  string
	noColor bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "recog",
	Short: "Recognizes assignment statements",
	Long: `recog reads one statement per line and reports the number of consumed
characters and every diagnostic found, e.g.

  > int x : (a + 1)++;
  Characters parsed: 18

Without arguments an interactive session is started.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runREPL,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "output format: text, explain, json, yaml or xml")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled diagnostics")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every parsed token to stderr")
}

// loadConfig reads the config file, if any, and applies the flags on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = format
	}

	if flags.Changed("no-color") {
		cfg.Color = !noColor
	}

	if flags.Changed("debug") {
		cfg.Debug = debug
	}

	return cfg, cfg.Validate()
}

// parserOptions returns the options for every parser created by a command.
func parserOptions(cfg config.Config, stderr io.Writer) []parser.Option {
	if !cfg.Debug {
		return nil
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return []parser.Option{parser.WithLogger(logger)}
}

// newEncoder creates the configured encoder. Text based output is styled if enabled.
func newEncoder(cfg config.Config, w io.Writer, showNames bool) (encoder.Encoder, error) {
	enc, err := encoder.New(cfg.Format, w)
	if err != nil {
		return nil, fmt.Errorf("cannot create encoder: %w", err)
	}

	if text, ok := enc.(*encoder.TextEncoder); ok {
		text.ShowName = showNames
		if cfg.Color {
			text.StyleDiagnostic = func(s string) string { return diagnosticStyle.Render(s) }
		}
	}

	return enc, nil
}

// closeEncoder finishes encoders which write a stream.
func closeEncoder(enc encoder.Encoder) error {
	if c, ok := enc.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
