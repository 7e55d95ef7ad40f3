// ============================================================================
// timeconv - Date/Time Conversion Toolkit
// ============================================================================
//
// Package:     version
// Description: Build version information, overridable via -ldflags
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Set at build time with
// -ldflags "-X github.com/msto63/timeconv/pkg/core/version.Version=..."
var (
	Version   = "0.2.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Short returns "timeconv v<version>"
func (i Info) Short() string {
	return "timeconv v" + i.Version
}

// String returns a multi-line description
func (i Info) String() string {
	return fmt.Sprintf("%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		i.Short(), i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
