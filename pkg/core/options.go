// Copyright © 2018 One Concern

package core

import (
	"os"
	"time"

	"go.uber.org/zap"
)

// BumperOption is a functor to build a Bumper with some options
type BumperOption func(*Bumper)

// Logger sets the logger
func Logger(l *zap.Logger) BumperOption {
	return func(b *Bumper) {
		if l != nil {
			b.l = l
		}
	}
}

// Clock sets the wall clock used to name archive copies
func Clock(now func() time.Time) BumperOption {
	return func(b *Bumper) {
		b.now = now
	}
}

// CreationTime sets the way creation timestamps of archives are read
func CreationTime(fn func(os.FileInfo) time.Time) BumperOption {
	return func(b *Bumper) {
		b.creationTime = fn
	}
}
