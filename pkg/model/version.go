/*
 * Copyright © 2019 One Concern
 *
 */

package model

import (
	"strconv"
	"strings"
)

// VersionComponents is the number of dot-separated components in a version string (major.minor.patch)
const VersionComponents = 3

// IsValidVersion tells if s is made of exactly 3 dot-separated integers.
//
// Empty components are skipped, so "1..2.3" or ".1.2.3" are valid. Leading zeros and
// signs are accepted: each component only needs to parse as an integer.
func IsValidVersion(s string) bool {
	components := strings.FieldsFunc(s, isVersionSeparator)
	if len(components) != VersionComponents {
		return false
	}
	for _, component := range components {
		if !isInteger(component) {
			return false
		}
	}
	return true
}

// IsValidBuildNumber tells if s parses as an integer. Sign and range are not checked.
func IsValidBuildNumber(s string) bool {
	return isInteger(s)
}

func isVersionSeparator(r rune) bool {
	return r == '.'
}

func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
