package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.3.0"

// Exit codes. A composite or "no such prime" answer is still a success.
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitInitError    = 3
	ExitRuntimeError = 4
	ExitCanceled     = 130
)

var rootCmd = &cobra.Command{
	Use:   "primes",
	Short: "Prime number toolkit with a persistent cache",
	Long: "Primes tests primality, lists, counts and factors integers, and keeps every " +
		"prime it confirms in a cache that later runs start from.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	for _, cmd := range queryCmds {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print primes version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "primes version %s\n", version)
	},
}
