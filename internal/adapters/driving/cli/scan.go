package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/h33333333/dirsearch/internal/core/domain"
)

var matchColour = color.New(color.FgGreen)

func runScan(cmd *cobra.Command, args []string) error {
	root, term := args[0], args[1]

	if scannerService == nil {
		return errors.New("scanner service not configured")
	}

	matches, err := scannerService.Scan(cmd.Context(), root, term)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	printMatches(cmd, matches)
	return nil
}

// printMatches writes one path per line in traversal order.
// Paths are colourised only when stdout is a terminal, so piped
// output stays plain.
func printMatches(cmd *cobra.Command, matches []domain.Match) {
	colorOutput := isatty.IsTerminal(os.Stdout.Fd())
	out := cmd.OutOrStdout()

	for _, m := range matches {
		if colorOutput {
			matchColour.Fprintln(out, m.Path)
		} else {
			fmt.Fprintln(out, m.Path)
		}
	}
}
