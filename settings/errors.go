// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package settings

import "errors"

// Errors returned by this package are wrapped with context and can be
// checked with errors.Is.
var (
	// ErrInvalidIdentifier is returned when a section name or key is not an
	// identifier. See IsValidIdentifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrDuplicateKey is returned when adding a key that is already present
	// in a section, including repeated keys found while loading a file.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrDuplicateSection is returned when adding a section whose name is
	// already in use, including repeated headings found while loading a file.
	ErrDuplicateSection = errors.New("duplicate section")

	// ErrSectionNotFound is returned when a name or *Section does not
	// resolve to a section of the Document.
	ErrSectionNotFound = errors.New("section not found")

	// ErrKeyNotFound is returned by Document.Value for a missing key.
	ErrKeyNotFound = errors.New("key not found")
)
