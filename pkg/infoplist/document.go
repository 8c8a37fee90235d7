// Copyright © 2018 One Concern

package infoplist

import (
	"github.com/oneconcern/versionchanger/pkg/status"
	"howett.net/plist"
)

const indent = "\t"

// Document is a property list with a dictionary at its root
type Document struct {
	root   Dict
	format int
}

// Parse decodes a property list in any format supported by howett.net/plist.
//
// Decoding errors are returned as is. A document which root is not a dictionary
// yields status.ErrMalformedDocument.
func Parse(data []byte) (*Document, error) {
	var raw interface{}
	format, err := plist.Unmarshal(data, &raw)
	if err != nil {
		return nil, err
	}

	root, err := ValueOf(raw).AsDict()
	if err != nil {
		return nil, status.ErrMalformedDocument.Withf("the root of a property list should be a dictionary, but found %v", ValueOf(raw).Kind())
	}

	return &Document{root: root, format: format}, nil
}

// Root dictionary of the document
func (d *Document) Root() Dict {
	return d.root
}

// Format name of the document, as detected when parsing
func (d *Document) Format() string {
	return plist.FormatNames[d.format]
}

// Bytes serializes the document.
//
// Textual formats (XML, OpenStep, GNUStep) are kept. Binary documents are written as XML.
func (d *Document) Bytes() ([]byte, error) {
	format := d.format
	switch format {
	case plist.XMLFormat, plist.OpenStepFormat, plist.GNUStepFormat:
	default:
		format = plist.XMLFormat
	}
	return plist.MarshalIndent(d.root.m, format, indent)
}
