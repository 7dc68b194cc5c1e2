package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/lrc"
)

func newCheckCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate .lrc files",
		Long: `Parse every file in parallel and report the first failure.

Exits non-zero if any file fails to parse.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := lrc.ParseFiles(cmd.Context(), args, cfg.parseOptions()...)
			if err != nil {
				log.Errorf("%s", err)
				return err
			}

			lines := 0
			for i, lyrics := range all {
				log.Debugf("%s: %d lines", args[i], lyrics.LineCount())
				lines += lyrics.LineCount()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d files, %d lines\n", len(all), lines)
			return nil
		},
	}

	return cmd
}
