package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/lrc"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := lrc.GetVersionInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "lrc %s\n", info.Version)
			if info.Module != "" {
				fmt.Fprintf(out, "  module: %s\n", info.Module)
			}
			commit := info.GitCommit
			if info.Modified {
				commit += " (modified)"
			}
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", info.BuildTime)
			fmt.Fprintf(out, "  go:     %s\n", info.GoVersion)
		},
	}
}
