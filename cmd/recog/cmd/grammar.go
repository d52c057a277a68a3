// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/golangee/recog/reference"
	"github.com/spf13/cobra"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Prints the EBNF of the reference grammar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), reference.Grammar())
		return err
	},
}

func init() {
	rootCmd.AddCommand(grammarCmd)
}
