package main

import (
	"fmt"
	"iter"
	"strings"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/utilkit/combinatorics"
)

func newCombinationsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "combinations <item>...",
		Short: "Print every combination of the items, one per line",
		Example: `  utilkit combinations 1 2 3
  utilkit combinations --limit 5 a b c d e`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSeq(cmd, combinatorics.UniqueProgressiveIncrementalCombinations(args), limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many lines (0 = all)")
	return cmd
}

func newPermutationsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "permutations <item>...",
		Short: "Print every ordering of the items, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSeq(cmd, combinatorics.Permutations(args), limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many lines (0 = all)")
	return cmd
}

func printSeq(cmd *cobra.Command, seq iter.Seq[[]string], limit int) error {
	out := cmd.OutOrStdout()
	printed := 0
	for items := range seq {
		if _, err := fmt.Fprintln(out, strings.Join(items, " ")); err != nil {
			return err
		}
		printed++
		if limit > 0 && printed >= limit {
			break
		}
	}
	return nil
}
