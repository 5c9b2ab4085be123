package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/primes/internal/engine"
)

var checkCmd = &cobra.Command{
	Use:   "check <n>",
	Short: "Test whether n is prime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(engine.OpCheck, args)
	},
}

var listCmd = &cobra.Command{
	Use:   "list <n>",
	Short: "List every prime up to n",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(engine.OpList, args)
	},
}

var highestCmd = &cobra.Command{
	Use:   "highest",
	Short: "Print the largest cached prime",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(engine.OpHighest, args)
	},
}

var nextCmd = &cobra.Command{
	Use:   "next <n>",
	Short: "Find the smallest prime greater than n",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(engine.OpNext, args)
	},
}

var prevCmd = &cobra.Command{
	Use:   "prev <n>",
	Short: "Find the largest prime less than n",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(engine.OpPrevious, args)
	},
}

var countCmd = &cobra.Command{
	Use:   "count <lo> <hi>",
	Short: "Count the primes in [lo, hi]",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(engine.OpCount, args)
	},
}

var factorCmd = &cobra.Command{
	Use:   "factor <n>",
	Short: "Print the prime factorization of n",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(engine.OpFactor, args)
	},
}

// queryCmds are the commands that run an engine operation.
var queryCmds = []*cobra.Command{
	checkCmd,
	listCmd,
	highestCmd,
	nextCmd,
	prevCmd,
	countCmd,
	factorCmd,
}

func init() {
	for _, cmd := range queryCmds {
		addQueryFlags(cmd)
	}

	// Check-specific flags
	checkCmd.Flags().StringVar(&flagMethod, "method", "auto", "Exact test to use (auto, trial, wheel)")
}
