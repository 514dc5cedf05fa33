// Package version holds build metadata reported by `measures version`.
// The values are overridden at link time, e.g.
//
//	go build -ldflags "-X github.com/banshee-data/measures/internal/version.Version=v0.3.0"
package version

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)
