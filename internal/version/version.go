// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version holds build metadata injected via ldflags.
package version

import "fmt"

// Set at build time:
//
//	-ldflags "-X github.com/olegiv/eventdesk/internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Info contains application version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

// Get returns the build metadata of the running binary.
func Get() Info {
	return Info{Version: Version, GitCommit: GitCommit, BuildTime: BuildTime}
}

// String formats the info for the -version flag.
func (i Info) String() string {
	return fmt.Sprintf("eventdesk %s (commit: %s, built: %s)", i.Version, i.GitCommit, i.BuildTime)
}
