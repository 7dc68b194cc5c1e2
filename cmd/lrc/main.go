// Command lrc parses, checks and formats LRC lyrics files.
//
// Usage:
//
//	lrc parse song.lrc            # dump as JSON
//	lrc fmt -w song.lrc           # canonicalize in place
//	lrc check lyrics/*.lrc        # validate many files in parallel
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("lrc")

func main() {
	if err := newRootCmd(loadConfig()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config) *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:          "lrc",
		Short:        "Parse, check and format LRC lyrics",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(cfg.verbosity+verbose, nil)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&cfg.maxTagWidth, "max-tag-width", cfg.maxTagWidth, "bytes searched for a time tag's ']' (0 = unbounded)")
	flags.BoolVar(&cfg.keepLastLine, "keep-last-line", cfg.keepLastLine, "parse a final line that has no trailing newline")
	flags.CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newParseCmd(cfg))
	rootCmd.AddCommand(newFmtCmd(cfg))
	rootCmd.AddCommand(newCheckCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
