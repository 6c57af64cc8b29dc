// Package cli provides the command-line interface for mc-playtime.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/happyarno/mc-playtime/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mc-playtime",
		Short: "Calculate your Minecraft playtime by parsing logs",
		Long: `mc-playtime calculates how long you have played Minecraft by scanning
the timestamps in its log files.

Each log file records one session; the elapsed time between its first
and last timestamp is that session's duration, and durations are summed
across rotated logs, the current latest.log, and every version of an
installation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewScanCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
