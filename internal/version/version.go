package version

import (
	"fmt"
)

// Build metadata, overridden with -ldflags "-X github.com/faizmokh/laporan/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the version string shown by `laporan --version`.
func Info() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
