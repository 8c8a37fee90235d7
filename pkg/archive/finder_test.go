// Copyright © 2018 One Concern

package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/oneconcern/versionchanger/pkg/errors"
	"github.com/oneconcern/versionchanger/pkg/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewest(t *testing.T) {
	for _, toPin := range []struct {
		name     string
		entries  []entryFixture
		expected string
	}{
		{
			name: "latest is last",
			entries: []entryFixture{
				{path: "/root/a", dir: true, age: time.Minute},
				{path: "/root/b", dir: true, age: 2 * time.Minute},
				{path: "/root/c", dir: true, age: 3 * time.Minute},
			},
			expected: "/root/c",
		},
		{
			name: "latest is first",
			entries: []entryFixture{
				{path: "/root/a", dir: true, age: 3 * time.Minute},
				{path: "/root/b", dir: true, age: 2 * time.Minute},
				{path: "/root/c", dir: true, age: time.Minute},
			},
			expected: "/root/a",
		},
		{
			name: "latest in the middle",
			entries: []entryFixture{
				{path: "/root/a", dir: true, age: time.Minute},
				{path: "/root/b", dir: true, age: time.Hour},
				{path: "/root/c", content: "file", age: 2 * time.Minute},
			},
			expected: "/root/b",
		},
		{
			name: "ties keep the first entry",
			entries: []entryFixture{
				{path: "/root/a", dir: true, age: time.Minute},
				{path: "/root/b", dir: true, age: time.Hour},
				{path: "/root/c", dir: true, age: time.Hour},
			},
			expected: "/root/b",
		},
		{
			name: "hidden entries are ignored",
			entries: []entryFixture{
				{path: "/root/.DS_Store", content: "finder", age: 24 * time.Hour},
				{path: "/root/a", dir: true, age: time.Minute},
			},
			expected: "/root/a",
		},
	} {
		fixture := toPin
		t.Run(fixture.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			mkTree(t, fs, fixture.entries)

			newest, err := NewFinder(fs).Newest("/root")
			require.NoError(t, err)
			assert.Equal(t, fixture.expected, newest)
		})
	}
}

func TestNewestNoArchive(t *testing.T) {
	fs := afero.NewMemMapFs()
	mkTree(t, fs, []entryFixture{
		{path: "/empty", dir: true},
		{path: "/hidden/.git", dir: true},
		{path: "/hidden/.DS_Store", content: "x"},
	})
	finder := NewFinder(fs)

	for _, dir := range []string{"/empty", "/hidden"} {
		_, err := finder.Newest(dir)
		require.Error(t, err)
		assert.True(t, errors.Is(err, status.ErrNoArchiveFound))
		assert.Contains(t, err.Error(), dir)
	}

	_, err := finder.Newest("/missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNoArchiveFound))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

// deniedStatFs fails to stat a given path
type deniedStatFs struct {
	afero.Fs
	denied string
}

func (d deniedStatFs) Stat(name string) (os.FileInfo, error) {
	if name == d.denied {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
	}
	return d.Fs.Stat(name)
}

func TestNewestStatError(t *testing.T) {
	fs := afero.NewMemMapFs()
	mkTree(t, fs, []entryFixture{
		{path: "/root/a", dir: true, age: time.Minute},
		{path: "/root/b", dir: true, age: time.Hour},
		{path: "/root/c", dir: true, age: 2 * time.Minute},
	})

	newest, err := NewFinder(deniedStatFs{Fs: fs, denied: "/root/b"}).Newest("/root")
	require.Error(t, err)
	assert.Empty(t, newest)
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.False(t, errors.Is(err, status.ErrNoArchiveFound))
	assert.Contains(t, err.Error(), "/root/b")

	// an unreadable archive group stops the lookup as well
	_, err = NewFinder(deniedStatFs{Fs: fs, denied: "/root/a"}).Locate("/root")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestNewestCreationTimeOption(t *testing.T) {
	fs := afero.NewMemMapFs()
	mkTree(t, fs, []entryFixture{
		{path: "/root/b-late", dir: true, age: time.Minute},
		{path: "/root/a-early", dir: true, age: time.Hour},
	})

	// ranks entries by name instead of timestamps
	byName := func(info os.FileInfo) time.Time {
		if strings.HasSuffix(info.Name(), "late") {
			return epoch.Add(time.Hour)
		}
		return epoch
	}

	newest, err := NewFinder(fs, CreationTime(byName)).Newest("/root")
	require.NoError(t, err)
	assert.Equal(t, "/root/b-late", newest)

	newest, err = NewFinder(fs, CreationTime(nil)).Newest("/root")
	require.NoError(t, err)
	assert.Equal(t, "/root/a-early", newest)
}

func TestLocate(t *testing.T) {
	fs := afero.NewMemMapFs()
	mkTree(t, fs, []entryFixture{
		{path: "/Archives/2020-08-28/Old 28-08-2020, 10.00.xcarchive/Info.plist", content: "old", age: time.Minute},
		{path: "/Archives/2020-08-28/Old 28-08-2020, 10.00.xcarchive", dir: true, age: time.Minute},
		{path: "/Archives/2020-08-28", dir: true, age: time.Minute},
		{path: "/Archives/2020-08-29/App 29-08-2020, 11.00.xcarchive", dir: true, age: 2 * time.Hour},
		{path: "/Archives/2020-08-29/App 29-08-2020, 12.00.xcarchive", dir: true, age: 3 * time.Hour},
		{path: "/Archives/2020-08-29", dir: true, age: time.Hour},
	})

	located, err := NewFinder(fs).Locate("/Archives")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/Archives", "2020-08-29", "App 29-08-2020, 12.00.xcarchive"), located)
}

func TestLocateEmptyGroup(t *testing.T) {
	fs := afero.NewMemMapFs()
	mkTree(t, fs, []entryFixture{
		{path: "/Archives/2020-08-28/App.xcarchive", dir: true, age: time.Minute},
		{path: "/Archives/2020-08-28", dir: true, age: time.Minute},
		{path: "/Archives/2020-08-29", dir: true, age: time.Hour},
	})

	_, err := NewFinder(fs).Locate("/Archives")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrNoArchiveFound))
	assert.Contains(t, err.Error(), "2020-08-29")
}
