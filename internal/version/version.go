// Package version reports build information set at link time, e.g.
//
//	go build -ldflags "-X github.com/gateway-delegation/lookup-services/internal/version.Version=1.0.1"
package version

import "runtime/debug"

var (
	Version   = "1.0.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

type Info struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Get returns the build information. When the commit was not set with -ldflags
// the VCS revision embedded by the go toolchain is used instead.
func Get() Info {
	info := Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}

	if info.GitCommit != "unknown" {
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.GitCommit = s.Value
			case "vcs.time":
				if info.BuildDate == "unknown" {
					info.BuildDate = s.Value
				}
			}
		}
	}
	return info
}
