package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/ore-roller/internal/platform/logging"
)

const defaultMaxDice = 50

type rootOptions struct {
	verbose bool
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return logging.New(level, "text", w)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "ore",
		Short:         "Roll and read One Roll Engine dice pools",
		Long:          "ore rolls pools of d10s, groups them into matched sets (width x height) and loose dice, and prints the chat card the server would post.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(
		newRollCmd(opts),
		newParseCmd(),
	)

	return rootCmd
}
