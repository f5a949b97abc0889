// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set at build time with -ldflags "-X github.com/dacolabs/avromock/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Build describes the running binary.
type Build struct {
	Version string
	Commit  string
	Date    string
	Go      string
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		Version, Commit, Date = fromBuildInfo(info, Version, Commit, Date)
	}
}

// fromBuildInfo fills values left unset by ldflags from module and VCS
// build settings, which are present for "go install module@version" builds.
func fromBuildInfo(info *debug.BuildInfo, version, commit, date string) (string, string, string) {
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == "none" && len(setting.Value) >= 7 {
				commit = setting.Value[:7]
			}
		case "vcs.time":
			if date == "unknown" {
				date = setting.Value
			}
		}
	}
	return version, commit, date
}

// Current returns the build information of the running binary.
func Current() Build {
	return Build{Version: Version, Commit: Commit, Date: Date, Go: runtime.Version()}
}

func (b Build) String() string {
	return fmt.Sprintf("avromock version %s (commit: %s, built: %s, go: %s)", b.Version, b.Commit, b.Date, b.Go)
}

// Info returns formatted version information.
func Info() string {
	return Current().String()
}

// Short returns just the version string.
func Short() string {
	return Version
}
