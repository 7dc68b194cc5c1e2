package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/lrc"
)

func newFmtCmd(cfg *config) *cobra.Command {
	var fmtOverwrite bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Rewrite an .lrc file in canonical form",
		Long: `Rewrite an .lrc file in canonical form to stdout.

Tags are sorted by key and placed first, timestamps are written as
[MM:SS.mmm], and comments and blank lines are dropped.

If no file is provided, reads LRC text from stdin.

Use -w to overwrite the file in place (requires a file argument). A final
line without a trailing newline is always kept when rewriting in place.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fmtOverwrite && len(args) == 0 {
				return fmt.Errorf("-w requires a file argument")
			}

			source, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			opts := cfg.parseOptions()
			if fmtOverwrite {
				// An overwrite must not lose an unterminated last line.
				opts = append(opts, lrc.WithUnterminatedLastLine())
			}

			lyrics, err := lrc.ParseBytes(source, opts...)
			if err != nil {
				log.Errorf("%s: %s", name, err)
				return fmt.Errorf("format: %w", err)
			}

			if fmtOverwrite {
				output, err := lyrics.MarshalText()
				if err != nil {
					return fmt.Errorf("format: %w", err)
				}
				log.Infof("rewriting %s", name)
				return os.WriteFile(name, output, 0o644)
			}
			_, err = lyrics.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().BoolVarP(&fmtOverwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}
