// FILE: logtint/src/internal/version/version.go
package version

import (
	"fmt"
	"runtime"
)

var (
	// Set at build time via -ldflags "-X logtint/src/internal/version.Version=..."
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String returns the full version line
func String() string {
	return fmt.Sprintf("logtint %s (commit: %s, built: %s, %s)", Version, GitCommit, BuildTime, runtime.Version())
}

// Short returns just the version tag
func Short() string {
	return Version
}
