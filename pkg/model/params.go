/*
 * Copyright © 2019 One Concern
 *
 */

package model

import (
	"github.com/oneconcern/versionchanger/pkg/status"
)

// Params holds the validated command line inputs
type Params struct {
	Version     string
	BuildNumber string
}

// ParseArgs validates the positional arguments, program name excluded.
func ParseArgs(args []string) (Params, error) {
	if len(args) != 2 {
		return Params{}, status.ErrWrongArguments
	}

	version, buildNumber := args[0], args[1]
	if !IsValidVersion(version) {
		return Params{}, status.ErrWrongVersionFormat.Withf("wrong version format %q: should be #.#.#", version)
	}
	if !IsValidBuildNumber(buildNumber) {
		return Params{}, status.ErrWrongBuildNumberFormat.Withf("wrong build number format %q: should be integer", buildNumber)
	}

	return Params{Version: version, BuildNumber: buildNumber}, nil
}
