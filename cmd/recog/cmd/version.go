// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// Version is the release of the recog command. It is overwritten at link time.
var Version = "v0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printVersion(cmd.OutOrStdout(), Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func printVersion(w io.Writer, v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("invalid version '%s'", v)
	}

	_, err := fmt.Fprintf(w, "recog %s (major %s)\n", semver.Canonical(v), semver.Major(v))

	return err
}
