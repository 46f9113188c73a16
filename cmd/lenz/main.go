// lenz is a simple CLI for browsing files to find words.
// It prints, per file, the number of occurrences of a query and optionally
// the matching lines or the whole file with every occurrence highlighted.
package main

import (
	"os"

	"github.com/corey/lenz/cmd/lenz/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
