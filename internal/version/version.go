// Package version holds build-time version information.
package version

// Version information (overridden via ldflags during release builds)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
