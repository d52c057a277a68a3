// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/golangee/recog"
	"github.com/golangee/recog/config"
	"github.com/golangee/recog/parser"
	"github.com/spf13/cobra"
)

func runREPL(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	return repl(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
}

// repl prints the prompt, recognizes the next line and writes its report until in is exhausted.
func repl(in io.Reader, out, stderr io.Writer, cfg config.Config) error {
	enc, err := newEncoder(cfg, out, false)
	if err != nil {
		return err
	}

	p := parser.New(parserOptions(cfg, stderr)...)
	scanner := recog.NewLineScanner(in)

	for {
		if _, err := io.WriteString(out, cfg.Prompt); err != nil {
			return err
		}

		if !scanner.Scan() {
			break
		}

		if err := enc.Encode(recog.RecognizeWith(p, "", scanner.Text())); err != nil {
			return fmt.Errorf("cannot encode report: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}

	return closeEncoder(enc)
}
