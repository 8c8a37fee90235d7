// Copyright © 2018 One Concern

package core

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/oneconcern/versionchanger/pkg/archive"
	"github.com/oneconcern/versionchanger/pkg/infoplist"
	"github.com/oneconcern/versionchanger/pkg/model"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Result of a run: the located archive, its copy and the patched property lists
type Result struct {
	Archive        string
	Copy           string
	PrimaryPlist   string
	SecondaryPlist string
}

// Bumper updates the version of a copy of the latest archive found under some root directory
type Bumper struct {
	fs           afero.Fs
	root         string
	now          func() time.Time
	creationTime func(os.FileInfo) time.Time
	l            *zap.Logger
}

// NewBumper builds a Bumper for archives stored under root
func NewBumper(fs afero.Fs, root string, opts ...BumperOption) *Bumper {
	b := &Bumper{
		fs:   fs,
		root: root,
		l:    zap.NewNop(),
	}
	for _, apply := range opts {
		apply(b)
	}
	return b
}

type state struct {
	name string
	run  func(*Result) error
}

// Run duplicates the latest archive and sets the version fields of its property lists.
//
// A cancelled context stops the run before the next state.
func (b *Bumper) Run(ctx context.Context, params model.Params) (Result, error) {
	var result Result
	finder := archive.NewFinder(b.fs, archive.CreationTime(b.creationTime), archive.FinderLogger(b.l))
	duplicator := archive.NewDuplicator(b.fs, archive.Clock(b.now), archive.DuplicatorLogger(b.l))

	states := []state{
		{
			name: "locate",
			run: func(r *Result) (err error) {
				r.Archive, err = finder.Locate(b.root)
				return
			},
		},
		{
			name: "duplicate",
			run: func(r *Result) (err error) {
				r.Copy, err = duplicator.Duplicate(r.Archive)
				return
			},
		},
		{
			name: "patch primary",
			run: func(r *Result) error {
				r.PrimaryPlist = archive.InfoPlistPath(b.fs, r.Copy)
				return b.patch(r.PrimaryPlist, params)
			},
		},
		{
			name: "patch secondary",
			run: func(r *Result) (err error) {
				r.SecondaryPlist, err = b.symbolPlist(r.Copy)
				if err != nil {
					return err
				}
				return b.patch(r.SecondaryPlist, params)
			},
		},
	}

	for _, s := range states {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		b.l.Debug("entering state", zap.String("state", s.name))
		if err := s.run(&result); err != nil {
			b.l.Debug("state failed", zap.String("state", s.name), zap.Error(err))
			return result, err
		}
	}

	b.l.Info("archive version updated",
		zap.String("archive", result.Copy),
		zap.String("version", params.Version),
		zap.String("build", params.BuildNumber),
		zap.String("primary", result.PrimaryPlist),
		zap.String("secondary", result.SecondaryPlist),
	)
	return result, nil
}

func (b *Bumper) symbolPlist(copied string) (string, error) {
	bundles, err := archive.SymbolBundles(b.fs, copied)
	if err != nil {
		return "", err
	}
	if len(bundles) > 1 {
		b.l.Warn("several app symbol bundles, using the first one",
			zap.String("selected", bundles[0]),
			zap.Strings("candidates", bundles),
		)
	}
	return archive.InfoPlistPath(b.fs, filepath.Join(bundles[0], archive.ContentsDir)), nil
}

// patch rewrites a property list in place, keeping its permissions
func (b *Bumper) patch(pth string, params model.Params) error {
	b.l.Debug("patching property list", zap.String("path", pth))
	data, err := infoplist.Patch(b.fs, pth, params.Version, params.BuildNumber)
	if err != nil {
		return err
	}

	info, err := b.fs.Stat(pth)
	if err != nil {
		return err
	}
	return afero.WriteFile(b.fs, pth, data, info.Mode().Perm())
}
