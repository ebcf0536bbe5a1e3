package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version reports the module version for `go install ...@version` builds and
// "devel-<VERSION>[+rev]" for builds from a checkout.
func Version() string {
	base := strings.TrimSpace(embeddedVersion)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return base
	}
	return versionFrom(base, info)
}

func versionFrom(base string, info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return "devel-" + base + "+" + s.Value[:7]
		}
	}
	return "devel-" + base
}
