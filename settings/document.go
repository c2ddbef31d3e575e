// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"zombiezen.com/go/log"
)

// Options holds optional parameters for Load. Nil options are treated as
// DefaultOptions. Note that the zero Options value disables all conversions,
// so every value decodes as a String.
type Options struct {
	// ParseBool decodes "true" and "false" (in any case) as Bool values.
	ParseBool bool
	// ParseInt decodes integers as Int values.
	ParseInt bool
	// ParseFloat decodes numbers containing a '.' as Float values.
	ParseFloat bool

	// MustExist makes Load fail with an error matching fs.ErrNotExist when
	// the file is absent. Otherwise Load creates an empty file.
	MustExist bool
}

// DefaultOptions returns options with every value conversion enabled.
func DefaultOptions() *Options {
	return &Options{
		ParseBool:  true,
		ParseInt:   true,
		ParseFloat: true,
	}
}

// A Document is a settings file loaded into memory. It holds the file's lines
// verbatim alongside a cleaned copy used for classification, and the sections
// parsed from them.
//
// A Document is not safe for concurrent use.
type Document struct {
	path string
	opts Options

	// raw and cleaned always have the same length.
	raw     []string
	cleaned []string

	// sections is ordered by position in the file. Sections that have not
	// been saved yet come last, in creation order.
	sections []*Section
	byName   map[string]*Section
}

// Load reads and parses the settings file at path. Nil options are treated
// as DefaultOptions.
//
// Lines before the first section heading and lines that are neither
// headings nor entries are kept in the file but not modelled. Load fails if a
// heading does not name a valid identifier, or if a section heading or a key
// within a section is repeated.
func Load(ctx context.Context, path string, opts *Options) (*Document, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	d := &Document{
		path: path,
		opts: *opts,
	}
	if err := d.load(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) load(ctx context.Context) error {
	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) && !d.opts.MustExist {
		if err := createEmpty(d.path); err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		log.Infof(ctx, "Created empty settings file %s", d.path)
		data, err = nil, nil
	}
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	raw := splitLines(string(data))
	cleaned := make([]string, len(raw))
	for i, line := range raw {
		cleaned[i] = cleanLine(line)
	}
	sections, byName, err := d.parse(cleaned)
	if err != nil {
		return fmt.Errorf("load settings %s: %w", d.path, err)
	}

	// Handles from a previous load no longer refer to these lines.
	for _, s := range d.sections {
		s.doc = nil
	}
	d.raw = raw
	d.cleaned = cleaned
	d.sections = sections
	d.byName = byName
	log.Debugf(ctx, "Loaded %s: %d lines, %d sections", d.path, len(raw), len(sections))
	return nil
}

func createEmpty(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o666)
	if err != nil {
		return err
	}
	return f.Close()
}

// parse builds sections from cleaned lines in a single pass.
func (d *Document) parse(cleaned []string) ([]*Section, map[string]*Section, error) {
	var sections []*Section
	byName := make(map[string]*Section)
	var curr *Section
	for i, line := range cleaned {
		switch {
		case isHeading(line):
			if curr != nil {
				curr.end = trimmedEnd(cleaned, curr.start, i)
			}
			name := headingName(line)
			if !IsValidIdentifier(name) {
				return nil, nil, fmt.Errorf("line %d: section %q: %w", i+1, name, ErrInvalidIdentifier)
			}
			if byName[name] != nil {
				return nil, nil, fmt.Errorf("line %d: section %s: %w", i+1, name, ErrDuplicateSection)
			}
			curr = &Section{
				name:   name,
				values: make(map[string]Value),
				doc:    d,
				start:  i,
				placed: true,
			}
			sections = append(sections, curr)
			byName[name] = curr
		case curr != nil && isEntry(line):
			key, text := splitEntry(line)
			if err := curr.AddEntry(key, Decode(text, &d.opts)); err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
	}
	if curr != nil {
		curr.end = trimmedEnd(cleaned, curr.start, len(cleaned))
	}
	return sections, byName, nil
}

// trimmedEnd moves a section's end back over trailing blank lines so that
// they are not part of its body. The heading at start is always kept.
func trimmedEnd(cleaned []string, start, end int) int {
	for end > start+1 && cleaned[end-1] == "" {
		end--
	}
	return end
}

// Path returns the file the Document is loaded from and saved to.
func (d *Document) Path() string {
	return d.path
}

// Sections returns the Document's sections: those read from the file in
// file order, then those added since in creation order.
func (d *Document) Sections() []*Section {
	return append([]*Section(nil), d.sections...)
}

// Section returns the section with the given name.
func (d *Document) Section(name string) (*Section, error) {
	s := d.byName[name]
	if s == nil {
		return nil, fmt.Errorf("section %q: %w", name, ErrSectionNotFound)
	}
	return s, nil
}

// Resolve checks that s is a current section of d. Sections obtained before
// a Refresh do not resolve.
func (d *Document) Resolve(s *Section) (*Section, error) {
	if s == nil || s.doc != d {
		name := "<nil>"
		if s != nil {
			name = s.name
		}
		return nil, fmt.Errorf("section %s: %w", name, ErrSectionNotFound)
	}
	return s, nil
}

// AddSection appends a new, empty section. The section is written at the end
// of the file on the next save.
func (d *Document) AddSection(name string) (*Section, error) {
	s, err := NewSection(name)
	if err != nil {
		return nil, err
	}
	if d.byName[name] != nil {
		return nil, fmt.Errorf("add section %s: %w", name, ErrDuplicateSection)
	}
	if d.byName == nil {
		d.byName = make(map[string]*Section)
	}
	s.doc = d
	d.sections = append(d.sections, s)
	d.byName[name] = s
	return s, nil
}

// AddEntry inserts a new entry into the named section.
// See Section.AddEntry.
func (d *Document) AddEntry(section, key string, v Value) error {
	s, err := d.Section(section)
	if err != nil {
		return err
	}
	return s.AddEntry(key, v)
}

// SetValue sets an entry's value in the named section, inserting the entry if
// needed. See Section.SetValue.
func (d *Document) SetValue(section, key string, v Value) error {
	s, err := d.Section(section)
	if err != nil {
		return err
	}
	return s.SetValue(key, v)
}

// Value returns the value of key in the named section.
func (d *Document) Value(section, key string) (Value, error) {
	s, err := d.Section(section)
	if err != nil {
		return Value{}, err
	}
	v, ok := s.Get(key)
	if !ok {
		return Value{}, fmt.Errorf("section %s: %q: %w", section, key, ErrKeyNotFound)
	}
	return v, nil
}

// ValueOr returns the value of key in the named section, or def if either
// does not exist.
func (d *Document) ValueOr(section, key string, def Value) Value {
	v, err := d.Value(section, key)
	if err != nil {
		return def
	}
	return v
}

// Refresh discards all sections, including unsaved changes, and parses the
// file again. Sections obtained before the call must not be used afterward.
// On error the Document is left unchanged.
func (d *Document) Refresh(ctx context.Context) error {
	return d.load(ctx)
}

// RefreshAndHasChanged refreshes the Document and reports whether the file's
// cleaned lines differ from those held before the call. It is used to detect
// edits made to the file by other programs.
func (d *Document) RefreshAndHasChanged(ctx context.Context) (bool, error) {
	prev := d.cleaned
	if err := d.load(ctx); err != nil {
		return false, err
	}
	return !slices.Equal(prev, d.cleaned), nil
}
