// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fsnotify/fsnotify"
	"github.com/golangee/recog/config"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Checks a file again whenever it is written",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return watch(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watch checks fname once and then after every write until ctx is done.
func watch(ctx context.Context, out, stderr io.Writer, cfg config.Config, fname string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("cannot create watcher: %w", err)
	}

	defer w.Close()

	if err := w.Add(fname); err != nil {
		return fmt.Errorf("cannot watch file: %w", err)
	}

	recheck := func() error {
		err := check(out, stderr, cfg, fname)
		switch {
		case err == nil:
			_, err = fmt.Fprintln(out, render(cfg, okStyle, fname+": ok"))
		case errors.Is(err, ErrRejected):
			_, err = fmt.Fprintln(out, render(cfg, mutedStyle, fname+": "+err.Error()))
		}

		return err
	}

	if err := recheck(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if err := recheck(); err != nil {
				return err
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			return fmt.Errorf("watch failed: %w", err)
		}
	}
}
