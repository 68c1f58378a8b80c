// Package version holds build metadata stamped in with -ldflags.
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Product names the binary and version for protocol headers, e.g.
// "runcode/1.2.3".
func Product() string {
	return "runcode/" + Version
}

// String formats the version with its commit and build date.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
