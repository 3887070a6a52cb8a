package main

// Must be first import - fixes Warp terminal delay before lipgloss loads
import _ "github.com/wahlandcase/attuned.commitlint/internal/termfix"

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is overridden at release time via -ldflags "-X main.version=..."
var version = "dev"

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "attcl",
		Short:        "Conventional Commits linter for git repositories",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetReportTimestamp(false)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newLintCmd(),
		newRangeCmd(),
		newComposeCmd(),
		newHookCmd(),
		newVersionCmd(),
		newUpdateCmd(),
	)

	return rootCmd
}
