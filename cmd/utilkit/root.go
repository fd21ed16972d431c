package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/utilkit/iox"
	"github.com/on-the-ground/utilkit/shared/log"
)

// app carries what subcommands share.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "utilkit",
		Short: "Small utilities: combinations, named formatting, checksums, temp files",
		Long: `utilkit exposes the utilkit library from the command line.

It enumerates combinations and permutations, formats strings with named
arguments, computes CRC64 checksums, and creates random strings and
temporary files.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit[:min(7, len(commit))]),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.LogWarn
			if a.verbose {
				level = log.LogDebug
			}
			a.logger = log.NewConsole(cmd.ErrOrStderr(), level)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(
		newCombinationsCmd(),
		newPermutationsCmd(),
		newSprintfnCmd(a),
		newCRC64Cmd(),
		newRandstrCmd(),
		newTmpfileCmd(a),
	)
	return rootCmd
}

// execute runs cmd and then removes the auto-deleted temporary files, also
// when cmd failed.
func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	return multierr.Append(err, iox.Cleanup())
}
