// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Build information, set with -ldflags -X
var (
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
)

// used to patch over the build information embedded by the go tool during test
var readBuildInfo = debug.ReadBuildInfo

// VersionInfo describes the build of versionchanger
type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
}

// NewVersionInfo reads the build information.
//
// Values set with -ldflags take precedence. Otherwise, the module version and VCS settings
// recorded by the go tool are used.
func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GitState:  GitState,
	}
	if Version != "" {
		ver.Version = Version
		if ver.GitState == "" {
			ver.GitState = "clean"
		}
		return ver
	}

	info, ok := readBuildInfo()
	if !ok {
		return ver
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		ver.Version = strings.TrimPrefix(v, "v")
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver.GitCommit = setting.Value
		case "vcs.time":
			ver.BuildDate = setting.Value
		case "vcs.modified":
			if setting.Value == "true" {
				ver.GitState = "dirty"
			} else {
				ver.GitState = "clean"
			}
		}
	}
	return ver
}

func (v VersionInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Version: %s\n", v.Version)
	for _, field := range []struct{ label, value string }{
		{"Build date", v.BuildDate},
		{"Commit", v.GitCommit},
		{"Working tree", v.GitState},
	} {
		if field.value != "" {
			fmt.Fprintf(&b, "%s: %s\n", field.label, field.value)
		}
	}
	return b.String()
}
