// Command dirsearch recursively searches a directory tree for files
// whose contents contain a literal substring.
//
// Usage:
//
//	dirsearch <path> <term>
//
// Matching file paths are printed to stdout, one per line. The process
// exits non-zero when the root path is missing or not a directory.
package main

import (
	"os"

	"github.com/h33333333/dirsearch/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
