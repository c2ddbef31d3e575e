// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package settings

import "fmt"

// An Entry is a key and its value.
type Entry struct {
	Key   string
	Value Value
}

// A Section is an ordered collection of uniquely keyed entries. Sections
// obtained from a Document remember which lines of the file they occupy.
type Section struct {
	name   string
	keys   []string
	values map[string]Value

	// doc is the owning Document, or nil once the Document has been
	// refreshed or for sections created by NewSection.
	doc *Document

	// [start, end) in the owning Document's lines. start is the heading.
	// Only meaningful when placed is true.
	start, end int
	placed     bool
}

// NewSection returns an empty section that does not belong to any Document.
func NewSection(name string) (*Section, error) {
	if !IsValidIdentifier(name) {
		return nil, fmt.Errorf("new section %q: %w", name, ErrInvalidIdentifier)
	}
	return &Section{
		name:   name,
		values: make(map[string]Value),
	}, nil
}

// Name returns the section's name.
func (s *Section) Name() string {
	return s.name
}

// AddEntry inserts a new entry at the end of the section. It fails if the key
// is not a valid identifier or is already present; use SetValue to replace
// an existing value.
func (s *Section) AddEntry(key string, v Value) error {
	if !IsValidIdentifier(key) {
		return fmt.Errorf("section %s: add %q: %w", s.name, key, ErrInvalidIdentifier)
	}
	if _, exists := s.values[key]; exists {
		return fmt.Errorf("section %s: add %q: %w", s.name, key, ErrDuplicateKey)
	}
	s.keys = append(s.keys, key)
	s.values[key] = v
	return nil
}

// SetValue sets the value for key, inserting it at the end of the section if
// it is not present.
func (s *Section) SetValue(key string, v Value) error {
	if !IsValidIdentifier(key) {
		return fmt.Errorf("section %s: set %q: %w", s.name, key, ErrInvalidIdentifier)
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
	return nil
}

// Get returns the value for key.
func (s *Section) Get(key string) (_ Value, ok bool) {
	v, ok := s.values[key]
	return v, ok
}

// Delete removes key from the section and reports whether it was present.
// The key's line stays in the file when the Document is saved.
func (s *Section) Delete(key string) bool {
	if _, exists := s.values[key]; !exists {
		return false
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of entries in the section.
func (s *Section) Len() int {
	return len(s.keys)
}

// Keys returns the section's keys in insertion order.
func (s *Section) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Entries returns a copy of the section's entries in insertion order.
func (s *Section) Entries() []Entry {
	entries := make([]Entry, 0, len(s.keys))
	for _, k := range s.keys {
		entries = append(entries, Entry{Key: k, Value: s.values[k]})
	}
	return entries
}

// Span returns the half-open range of line indices the section occupies in
// its Document, starting at its heading. ok is false if the section has not
// been written yet.
func (s *Section) Span() (start, end int, ok bool) {
	return s.start, s.end, s.placed
}
