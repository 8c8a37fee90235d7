// Copyright © 2018 One Concern

package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2020, 8, 29, 10, 0, 0, 0, time.UTC)

type entryFixture struct {
	path    string
	content string
	dir     bool
	age     time.Duration
}

// mkTree creates entries with a modification time of epoch + age
func mkTree(t testing.TB, fs afero.Fs, entries []entryFixture) {
	t.Helper()

	for _, entry := range entries {
		if entry.dir {
			require.NoError(t, fs.MkdirAll(entry.path, 0755))
		} else {
			require.NoError(t, fs.MkdirAll(filepath.Dir(entry.path), 0755))
			require.NoError(t, afero.WriteFile(fs, entry.path, []byte(entry.content), 0644))
		}
	}
	// timestamps are set last, since creating children touches directories
	for _, entry := range entries {
		stamp := epoch.Add(entry.age)
		require.NoError(t, fs.Chtimes(entry.path, stamp, stamp))
	}
}
