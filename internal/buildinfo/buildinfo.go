// Package buildinfo carries version information set at link time with
// -ldflags "-X github.com/zephyrtronium/deskcalc/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

// Build identification, overridden by the linker in release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String describes the build in one line.
func String() string {
	return fmt.Sprintf("deskcalc %s (commit=%s, date=%s)", Version, Commit, Date)
}
