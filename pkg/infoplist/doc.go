// Copyright © 2018 One Concern

// Package infoplist reads, patches and writes back property list documents.
//
// Documents are decoded by howett.net/plist into generic values, exposed as a
// Value tagged with its Kind. Accessors are fallible: reading a value with the
// wrong kind yields status.ErrMalformedDocument rather than a panic.
//
// Only the version fields are modified: every other entry of a document is
// written back unchanged.
package infoplist
