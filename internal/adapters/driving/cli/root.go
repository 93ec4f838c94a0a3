// Package cli implements the command-line driving adapter.
// Commands are thin: they parse arguments and flags, call the driving
// ports, and format results. All traversal logic lives in core.
package cli

import (
	"github.com/spf13/cobra"

	billyfs "github.com/h33333333/dirsearch/internal/adapters/driven/fs/billy"
	"github.com/h33333333/dirsearch/internal/core/ports/driving"
	"github.com/h33333333/dirsearch/internal/core/services"
	"github.com/h33333333/dirsearch/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var verbose bool

// scannerService is the driving port the commands call into.
// Package-level so tests can substitute a stub.
var scannerService driving.ScannerService = services.NewScanner(billyfs.NewMounter())

var rootCmd = &cobra.Command{
	Use:   "dirsearch <path> <term>",
	Short: "Recursively search directory contents for a substring",
	Long: `dirsearch walks the directory tree rooted at <path> and prints the
path of every file whose contents contain <term>, one per line.

Matching is literal byte containment: no regular expressions, no fuzzy
matching. An empty term matches every readable file. Unreadable files
and directories are skipped so one bad entry cannot abort the sweep.`,
	Args: cobra.ExactArgs(2),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE:         runScan,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print traversal diagnostics to stderr")
}

// Execute runs the root command and returns its error, if any.
func Execute() error {
	return rootCmd.Execute()
}
