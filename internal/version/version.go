// Package version carries the build stamp, injected with -ldflags -X at
// release build time. Dev builds fall back to the zero values below.
package version

import "fmt"

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String renders the full stamp for the startup log.
func String() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, Commit, BuildTime)
}
