// Copyright © 2018 One Concern

package archive

import (
	"os"
	"time"

	"go.uber.org/zap"
)

// FinderOption is a functor to build a Finder with some options
type FinderOption func(*Finder)

// DuplicatorOption is a functor to build a Duplicator with some options
type DuplicatorOption func(*Duplicator)

// CreationTime overrides the way creation timestamps are read from file info
func CreationTime(fn func(os.FileInfo) time.Time) FinderOption {
	return func(f *Finder) {
		if fn != nil {
			f.creationTime = fn
		}
	}
}

// FinderLogger sets the logger of the finder
func FinderLogger(l *zap.Logger) FinderOption {
	return func(f *Finder) {
		if l != nil {
			f.l = l
		}
	}
}

// Clock overrides the wall clock used to name duplicates
func Clock(now func() time.Time) DuplicatorOption {
	return func(d *Duplicator) {
		if now != nil {
			d.now = now
		}
	}
}

// DuplicatorLogger sets the logger of the duplicator
func DuplicatorLogger(l *zap.Logger) DuplicatorOption {
	return func(d *Duplicator) {
		if l != nil {
			d.l = l
		}
	}
}
