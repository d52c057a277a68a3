// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golangee/recog"
	"github.com/golangee/recog/config"
	"github.com/golangee/recog/reference"
	"github.com/spf13/cobra"
)

// ErrRejected is returned by check if at least one line was not accepted.
var ErrRejected = errors.New("input rejected")

// crossCheck additionally verifies every line against the reference grammar.
var crossCheck bool

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Recognizes every line of the given files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return check(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args...)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&crossCheck, "reference", false, "report lines on which the reference grammar disagrees")
	rootCmd.AddCommand(checkCmd)
}

// check writes a report for every line of the given files.
func check(out, stderr io.Writer, cfg config.Config, files ...string) error {
	enc, err := newEncoder(cfg, out, true)
	if err != nil {
		return err
	}

	rejected := 0

	for _, fname := range files {
		reports, err := checkFile(fname, cfg, stderr)
		if err != nil {
			return err
		}

		for _, r := range reports {
			if !r.OK() {
				rejected++
			}

			if crossCheck {
				if err := compareReference(stderr, r); err != nil {
					return err
				}
			}

			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("cannot encode report: %w", err)
			}
		}
	}

	if err := closeEncoder(enc); err != nil {
		return err
	}

	if rejected > 0 {
		return fmt.Errorf("%w: %d line(s)", ErrRejected, rejected)
	}

	return nil
}

func checkFile(fname string, cfg config.Config, stderr io.Writer) ([]recog.Report, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}

	defer f.Close()

	return recog.RecognizeLines(fname, f, parserOptions(cfg, stderr)...)
}

// compareReference writes a line to w if the reference grammar decides differently on r.
func compareReference(w io.Writer, r recog.Report) error {
	err := reference.Check(r.Input)
	if (err == nil) == r.OK() {
		return nil
	}

	if err == nil {
		_, err = fmt.Fprintf(w, "%s: rejected but valid in the reference grammar\n", r.Name)
	} else {
		_, err = fmt.Fprintf(w, "%s: accepted but invalid in the reference grammar: %v\n", r.Name, err)
	}

	return err
}
