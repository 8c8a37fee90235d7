// Copyright © 2018 One Concern

package infoplist

import (
	"github.com/oneconcern/versionchanger/pkg/status"
	"github.com/spf13/afero"
)

// Keys of the version fields
const (
	ApplicationPropertiesKey = "ApplicationProperties"
	ShortVersionKey          = "CFBundleShortVersionString"
	VersionKey               = "CFBundleVersion"
)

// Apply sets the version fields of a document.
//
// When the document holds ApplicationProperties, fields are set in this dictionary,
// otherwise at the root. The layout of the document is never changed.
func Apply(doc *Document, version, buildNumber string) error {
	root := doc.Root()
	value, nested := root.Get(ApplicationPropertiesKey)
	if !nested {
		setVersion(root, version, buildNumber)
		return nil
	}

	properties, err := value.AsDict()
	if err != nil {
		return status.ErrMalformedDocument.Withf("%s should be a dictionary, but found %v", ApplicationPropertiesKey, value.Kind())
	}
	setVersion(properties, version, buildNumber)
	root.Set(ApplicationPropertiesKey, properties)

	return nil
}

func setVersion(d Dict, version, buildNumber string) {
	d.Set(ShortVersionKey, version)
	d.Set(VersionKey, buildNumber)
}

// Patch reads a property list file and returns its content with updated version fields.
//
// The file itself is left untouched: writing the result back is up to the caller.
func Patch(fs afero.Fs, pth, version, buildNumber string) ([]byte, error) {
	data, err := afero.ReadFile(fs, pth)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err = Apply(doc, version, buildNumber); err != nil {
		return nil, err
	}

	return doc.Bytes()
}
