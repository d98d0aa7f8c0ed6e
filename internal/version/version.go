// Package version provides build version information.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version (injected at build time via -ldflags)
	version = "dev"
	// Commit is the git commit hash (injected at build time via -ldflags)
	commit = "none"
	// Date is the build date (injected at build time via -ldflags)
	date = "unknown"
)

// Info describes the running build
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Arch      string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Arch:      runtime.GOARCH,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("winfx %s (commit: %s, built: %s, %s %s)", i.Version, i.Commit, i.Date, i.GoVersion, i.Arch)
}

// GetVersion returns the full version string
func GetVersion() string {
	return version
}

// GetFullVersion returns version with commit and date info
func GetFullVersion() string {
	return version + " (commit: " + commit + ", built: " + date + ")"
}
