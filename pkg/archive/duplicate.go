// Copyright © 2018 One Concern

package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	units "github.com/docker/go-units"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	// StampLayout is the layout of the time stamp ending the name of a duplicated archive (HH.mm)
	StampLayout = "15.04"

	// stampWidth is the number of trailing characters replaced by the new time stamp
	stampWidth = 5
)

// Duplicator copies archives under a time stamped name
type Duplicator struct {
	fs  afero.Fs
	now func() time.Time
	l   *zap.Logger
}

// NewDuplicator builds a Duplicator over some file system
func NewDuplicator(fs afero.Fs, opts ...DuplicatorOption) *Duplicator {
	d := &Duplicator{
		fs:  fs,
		now: time.Now,
		l:   zap.NewNop(),
	}
	for _, apply := range opts {
		apply(d)
	}
	return d
}

// DuplicateName derives the path of the copy of an archive, next to the source.
//
// The last 5 characters of the base name (without extension) are replaced by the time
// stamp of now, formatted as HH.mm. The extension is kept.
func DuplicateName(source string, now time.Time) string {
	base := filepath.Base(source)
	ext := filepath.Ext(base)
	name := []rune(strings.TrimSuffix(base, ext))
	if len(name) > stampWidth {
		name = name[:len(name)-stampWidth]
	} else {
		name = name[:0]
	}
	return filepath.Join(filepath.Dir(source), string(name)+now.Format(StampLayout)+ext)
}

// Duplicate copies the source archive and returns the path to the copy.
//
// The copy fails if the target already exists. Nothing is cleaned up on failure.
func (d *Duplicator) Duplicate(source string) (string, error) {
	target := DuplicateName(source, d.now())
	d.l.Debug("duplicating archive", zap.String("source", source), zap.String("target", target))
	size, err := CopyTree(d.fs, source, target)
	if err != nil {
		return "", err
	}
	d.l.Info("archive duplicated", zap.String("target", target), zap.String("size", units.HumanSize(float64(size))))
	return target, nil
}

// CopyTree recursively copies a file or directory to a new location, keeping permissions.
// It returns the number of bytes copied.
func CopyTree(fs afero.Fs, source, target string) (int64, error) {
	info, err := fs.Stat(source)
	if err != nil {
		return 0, err
	}
	if _, err = fs.Stat(target); err == nil {
		return 0, &os.PathError{Op: "copy", Path: target, Err: os.ErrExist}
	} else if !os.IsNotExist(err) {
		return 0, err
	}

	if !info.IsDir() {
		return copyFile(fs, source, target, info.Mode())
	}

	var size int64
	err = afero.Walk(fs, source, func(pth string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(source, pth)
		if err != nil {
			return err
		}
		dest := filepath.Join(target, rel)

		mode := info.Mode()
		switch {
		case mode.IsDir():
			return fs.MkdirAll(dest, mode.Perm()|0700)
		case mode.IsRegular():
			n, err := copyFile(fs, pth, dest, mode)
			size += n
			return err
		case mode&os.ModeSymlink != 0:
			return copyLink(fs, pth, dest)
		default:
			return fmt.Errorf("copy %q: unsupported file mode %v", pth, mode)
		}
	})
	return size, err
}

func copyFile(fs afero.Fs, source, target string, mode os.FileMode) (n int64, err error) {
	src, err := fs.Open(source)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst, err := fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode.Perm())
	if err != nil {
		return 0, err
	}
	defer func() {
		err = multierr.Append(err, dst.Close())
	}()

	return io.Copy(dst, src)
}

func copyLink(fs afero.Fs, source, target string) error {
	reader, ok := fs.(afero.LinkReader)
	if !ok {
		return &os.LinkError{Op: "readlink", Old: source, New: target, Err: afero.ErrNoReadlink}
	}
	linker, ok := fs.(afero.Linker)
	if !ok {
		return &os.LinkError{Op: "symlink", Old: source, New: target, Err: afero.ErrNoSymlink}
	}

	dest, err := reader.ReadlinkIfPossible(source)
	if err != nil {
		return err
	}
	return linker.SymlinkIfPossible(dest, target)
}
