package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set at build time via ldflags. Unset values are
// filled from the module build information when available.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string
func String() string {
	info, _ := debug.ReadBuildInfo()
	v, commit, built := resolve(info)
	return fmt.Sprintf("%s (commit: %s, built: %s)", v, shortCommit(commit), built)
}

// resolve returns the version, commit and build time, preferring values set
// via ldflags over the module version and VCS settings of info.
func resolve(info *debug.BuildInfo) (version, commit, built string) {
	version, commit, built = Version, Commit, BuildTime
	if info == nil {
		return version, commit, built
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && commit == "unknown":
			commit = s.Value
		case s.Key == "vcs.time" && built == "unknown":
			built = s.Value
		}
	}
	return version, commit, built
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
