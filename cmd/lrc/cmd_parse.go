package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/lrc"
)

func newParseCmd(cfg *config) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an .lrc file and dump the result",
		Long: `Parse an .lrc file and dump the parsed lyrics.

If no file is provided, reads LRC text from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, name, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			lyrics, err := lrc.ParseBytes(source, cfg.parseOptions()...)
			if err != nil {
				log.Errorf("%s: %s", name, err)
				return fmt.Errorf("parse %s: %w", name, err)
			}
			log.Infof("%s: %d tags, %d lines", name, lyrics.Metadata().Len(), lyrics.LineCount())

			var encoder Encoder
			switch outputFormat {
			case "json":
				encoder = NewJSONEncoder(cmd.OutOrStdout())
			case "lrc":
				encoder = NewLRCEncoder(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(lyrics); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, lrc)")

	return cmd
}

// readSource reads the file named by args[0], or stdin when args is empty.
func readSource(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 {
		source, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return source, "<stdin>", nil
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	return source, args[0], nil
}
