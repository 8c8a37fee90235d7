// Copyright © 2018 One Concern

// Package status declares the error kinds returned by versionchanger.
//
// Errors coming from the filesystem or the property list decoder are not
// declared here: they propagate with their own description, possibly wrapped
// by one of these sentinels.
package status

import "github.com/oneconcern/versionchanger/pkg/errors"

var (
	// ErrWrongArguments indicates that the command line does not carry exactly a version and a build number
	ErrWrongArguments = errors.New("version and build number should be specified: <version> <build number>")

	// ErrWrongVersionFormat indicates a version which is not made of 3 dot-separated integers
	ErrWrongVersionFormat = errors.New("wrong version format: should be #.#.#")

	// ErrWrongBuildNumberFormat indicates a build number which is not an integer
	ErrWrongBuildNumberFormat = errors.New("wrong build number format: should be integer")

	// ErrNoArchiveFound indicates an empty or unreadable archives directory
	ErrNoArchiveFound = errors.New("there is no valid archive in the archives directory")

	// ErrNoMatchingSymbolBundle indicates that no dSYM entry of the archive refers to an app
	ErrNoMatchingSymbolBundle = errors.New("there is no app symbol bundle in the archive")

	// ErrMalformedDocument indicates a property list with an unexpected shape
	ErrMalformedDocument = errors.New("malformed property list")
)

// IsUsage tells if an error is caused by a wrong command line
func IsUsage(err error) bool {
	return errors.Is(err, ErrWrongArguments) ||
		errors.Is(err, ErrWrongVersionFormat) ||
		errors.Is(err, ErrWrongBuildNumberFormat)
}
