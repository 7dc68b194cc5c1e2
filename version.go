package lrc

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the lrc library.
const Version = "0.1.0"

const modulePath = "github.com/simonhull/lrc"

// Stamped at build time:
//
//	go build -ldflags="-X github.com/simonhull/lrc.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/lrc.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/lrc
var (
	gitCommit string
	buildTime string
)

// VersionInfo contains detailed version information.
type VersionInfo struct {
	// Version is the semantic version (e.g., "0.1.0")
	Version string
	// Module is the module version recorded by the go command, such as
	// "v0.1.0" when lrc is a dependency or "(devel)" in a local build.
	Module string
	// GitCommit is the commit the binary was built from.
	GitCommit string
	// BuildTime is the commit time, or the ldflags build time.
	BuildTime string
	// Modified reports uncommitted changes in the build tree.
	Modified bool
	// GoVersion is the Go version used to build
	GoVersion string
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime come from -ldflags when set. Otherwise, for
// binaries built from this module's own checkout (such as cmd/lrc), they
// come from the VCS stamps the go command embeds. Anything still unknown is
// reported as "unknown".
func GetVersionInfo() VersionInfo {
	bi, _ := debug.ReadBuildInfo()
	return resolveVersionInfo(bi, gitCommit, buildTime)
}

func resolveVersionInfo(bi *debug.BuildInfo, commit, built string) VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: commit,
		BuildTime: built,
		GoVersion: runtime.Version(),
	}

	if bi != nil {
		if bi.GoVersion != "" {
			info.GoVersion = bi.GoVersion
		}

		switch {
		case bi.Main.Path == modulePath:
			info.Module = bi.Main.Version
			// VCS stamps describe the main module only.
			for _, s := range bi.Settings {
				switch s.Key {
				case "vcs.revision":
					if info.GitCommit == "" {
						info.GitCommit = s.Value
					}
				case "vcs.time":
					if info.BuildTime == "" {
						info.BuildTime = s.Value
					}
				case "vcs.modified":
					info.Modified = s.Value == "true"
				}
			}
		default:
			for _, dep := range bi.Deps {
				if dep.Path == modulePath {
					info.Module = dep.Version
					break
				}
			}
		}
	}

	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}
