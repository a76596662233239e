package app

import "fmt"

// Version, Commit, and BuildTime are stamped with ldflags, e.g.
// -X github.com/Atik203/Logs-Dashboard/internal/app.Version=1.2.0
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for startup logs and the health
// endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
