// Package version provides build and version information for lenz.
package version

import (
	"fmt"
	"runtime"
)

// Version is the current version of lenz.
// Set via ldflags at build time, or defaults to dev.
//
//	-X github.com/corey/lenz/internal/version.Version=$(VERSION)
var Version = "dev"

// Build information set via ldflags at build time.
var (
	// Commit is the git commit hash.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// String returns a formatted version string with all build info.
func String() string {
	return fmt.Sprintf("lenz %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, runtime.Version())
}
