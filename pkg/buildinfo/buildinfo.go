// Package buildinfo reports the plax version.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/mapmaths/plax/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/mapmaths/plax/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/mapmaths/plax/pkg/buildinfo.Date=$(date -u +%Y-%m-%d)"
//
// Binaries installed with go install fall back to the module version and VCS
// settings recorded by the toolchain.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	fill(info)
}

func fill(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == "none":
			Commit = s.Value
			if len(Commit) > 12 {
				Commit = Commit[:12]
			}
		case s.Key == "vcs.time" && Date == "unknown":
			Date = s.Value
		}
	}
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, %s)\n", Version, Commit, Date)
}
