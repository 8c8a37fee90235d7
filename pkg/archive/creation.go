// Copyright © 2018 One Concern

package archive

import (
	"os"
	"time"

	times "gopkg.in/djherbis/times.v1"
)

// CreationTimeOf returns the creation timestamp of a file.
//
// The birth time is used when the platform records it. Otherwise, and for file info
// which does not come from the OS (e.g. in-memory filesystems), this falls back to the
// modification time.
func CreationTimeOf(info os.FileInfo) time.Time {
	if info.Sys() == nil {
		return info.ModTime()
	}
	if ts := times.Get(info); ts.HasBirthTime() {
		return ts.BirthTime()
	}
	return info.ModTime()
}
