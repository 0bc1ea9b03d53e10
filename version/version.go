// Package version exposes build version information for the transcribe CLI.
//
// Version and Commit are set at build time via -ldflags:
//
//	go build -ldflags "-X github.com/skillsenselab/transcribe/version.Version=1.0.0"
//
// When they are not set, the VCS metadata recorded by the Go toolchain is
// used as a fallback.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// Commit is the short VCS revision.
	Commit = ""
)

// Info is the resolved build information.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Go      string `json:"go"`
	Dirty   bool   `json:"dirty"`
}

// Get resolves build information from the ldflags variables and, where
// those are unset, from the binary's embedded build metadata.
func Get() Info {
	info := Info{Version: Version, Commit: Commit}

	if build, ok := debug.ReadBuildInfo(); ok {
		info.Go = build.GoVersion
		for _, setting := range build.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = setting.Value
				}
			case "vcs.modified":
				info.Dirty = setting.Value == "true"
			}
		}
	}
	if len(info.Commit) > 7 {
		info.Commit = info.Commit[:7]
	}
	return info
}

// String renders the build information as a single line.
func String() string {
	info := Get()
	s := info.Version
	if info.Commit != "" {
		s = fmt.Sprintf("%s (%s)", s, info.Commit)
	}
	if info.Dirty {
		s += " dirty"
	}
	return s
}
