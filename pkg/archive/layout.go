// Copyright © 2018 One Concern

package archive

import (
	"path/filepath"
	"strings"

	"github.com/oneconcern/versionchanger/pkg/status"
	"github.com/spf13/afero"
)

const (
	// SymbolsDir is the folder of an archive holding debug symbol bundles
	SymbolsDir = "dSYMs"

	// ContentsDir is the folder of a symbol bundle holding its property list
	ContentsDir = "Contents"

	infoPlist       = "Info.plist"
	legacyInfoPlist = "info.plist"
	appMarker       = "app"
)

// InfoPlistPath returns the path to the property list file in dir.
//
// Info.plist is preferred over info.plist, which is returned when none exists.
func InfoPlistPath(fs afero.Fs, dir string) string {
	for _, name := range []string{infoPlist, legacyInfoPlist} {
		pth := filepath.Join(dir, name)
		if _, err := fs.Stat(pth); err == nil {
			return pth
		}
	}
	return filepath.Join(dir, legacyInfoPlist)
}

// SymbolBundles lists the symbol bundles of an archive that refer to an app, in lexicographic order.
//
// It fails with status.ErrNoMatchingSymbolBundle when there is none.
func SymbolBundles(fs afero.Fs, archive string) ([]string, error) {
	dir := filepath.Join(archive, SymbolsDir)
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	var bundles []string
	for _, entry := range entries {
		if isHidden(entry.Name()) || !strings.Contains(entry.Name(), appMarker) {
			continue
		}
		bundles = append(bundles, filepath.Join(dir, entry.Name()))
	}
	if len(bundles) == 0 {
		return nil, status.ErrNoMatchingSymbolBundle.Withf("there is no app symbol bundle in %q", dir)
	}
	return bundles, nil
}

// SymbolPlistPath returns the path to the property list of the first app symbol bundle of an archive
func SymbolPlistPath(fs afero.Fs, archive string) (string, error) {
	bundles, err := SymbolBundles(fs, archive)
	if err != nil {
		return "", err
	}
	return InfoPlistPath(fs, filepath.Join(bundles[0], ContentsDir)), nil
}
