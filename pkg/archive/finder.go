// Copyright © 2018 One Concern

package archive

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oneconcern/versionchanger/pkg/errors"
	"github.com/oneconcern/versionchanger/pkg/status"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Finder picks the most recently created entries in a directory tree
type Finder struct {
	fs           afero.Fs
	creationTime func(os.FileInfo) time.Time
	l            *zap.Logger
}

// NewFinder builds a Finder over some file system
func NewFinder(fs afero.Fs, opts ...FinderOption) *Finder {
	f := &Finder{
		fs:           fs,
		creationTime: CreationTimeOf,
		l:            zap.NewNop(),
	}
	for _, apply := range opts {
		apply(f)
	}
	return f
}

// Newest returns the path to the non-hidden entry of dir with the latest creation time.
//
// When several entries share the latest creation time, the first one in enumeration order wins.
// It fails with status.ErrNoArchiveFound if dir cannot be read or has no such entry.
// Failing to read the metadata of an entry is an error.
func (f *Finder) Newest(dir string) (string, error) {
	entries, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return "", noArchive(dir).Wrap(err)
	}

	var (
		newest     string
		newestTime time.Time
	)
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}
		pth := filepath.Join(dir, entry.Name())
		info, err := f.fs.Stat(pth)
		if err != nil {
			return "", err
		}
		created := f.creationTime(info)
		if newest == "" || newestTime.Before(created) {
			newest, newestTime = pth, created
		}
	}

	if newest == "" {
		return "", noArchive(dir)
	}
	f.l.Debug("newest entry", zap.String("dir", dir), zap.String("entry", newest), zap.Time("created", newestTime))
	return newest, nil
}

// Locate returns the latest archive in the latest archive group under root
func (f *Finder) Locate(root string) (string, error) {
	group, err := f.Newest(root)
	if err != nil {
		return "", err
	}
	return f.Newest(group)
}

func noArchive(dir string) *errors.Error {
	return status.ErrNoArchiveFound.Withf("there is no valid archive in %q", dir)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
