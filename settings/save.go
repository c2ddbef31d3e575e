// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package settings

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"zombiezen.com/go/log"
)

// Save writes the Document back to its path. See SaveAs.
func (d *Document) Save(ctx context.Context) error {
	return d.SaveAs(ctx, d.path)
}

// SaveAs reconciles the in-memory sections with the file's lines and writes
// the result to path, which becomes the Document's path once the write
// succeeds.
//
// Only entries whose value changed are rewritten, in the canonical
// "key = value" form. New entries are inserted at the end of their section,
// before any trailing blank lines, and new sections are appended to the end
// of the file. All other lines are written verbatim, so comments and
// formatting survive. Entries deleted from a Section keep their line.
//
// The file is overwritten in place: a failed write may leave it partially
// written.
func (d *Document) SaveAs(ctx context.Context, path string) error {
	rewritten, inserted := d.reconcile()
	if err := os.WriteFile(path, d.bytes(), 0o666); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	d.path = path
	log.Debugf(ctx, "Saved %s: %d lines rewritten, %d lines inserted", path, rewritten, inserted)
	return nil
}

// MarshalText reconciles the Document the same way Save does and returns
// the resulting file content without writing it.
func (d *Document) MarshalText() ([]byte, error) {
	d.reconcile()
	return d.bytes(), nil
}

func (d *Document) bytes() []byte {
	return []byte(strings.Join(d.raw, ""))
}

// reconcile patches the line arrays to reflect the in-memory sections and
// reports how many lines were rewritten and inserted.
func (d *Document) reconcile() (rewritten, inserted int) {
	for _, s := range d.sections {
		if !s.placed {
			inserted += d.placeHeading(s)
		}
	}
	// Unplaced sections were appended in order, so d.sections is in file
	// order and span shifts from earlier sections carry over to later ones.
	for _, s := range d.sections {
		pending := make(map[string]struct{}, len(s.keys))
		for _, k := range s.keys {
			pending[k] = struct{}{}
		}
		for i := s.start + 1; i < s.end; i++ {
			line := d.cleaned[i]
			if !isEntry(line) {
				continue
			}
			key, text := splitEntry(line)
			v, ok := s.values[key]
			if !ok {
				// Deleted in memory: the line stays.
				continue
			}
			delete(pending, key)
			if Decode(text, &d.opts) == v {
				continue
			}
			d.raw[i] = formatEntry(key, v)
			d.cleaned[i] = cleanLine(d.raw[i])
			rewritten++
		}
		for _, k := range s.keys {
			if _, ok := pending[k]; !ok {
				continue
			}
			d.insertLine(s, s.end, formatEntry(k, s.values[k]))
			inserted++
		}
	}
	return rewritten, inserted
}

// placeHeading appends a heading for a section that has never been written,
// preceded by a blank line unless the file is empty or already ends with one.
// It returns the number of lines appended.
func (d *Document) placeHeading(s *Section) int {
	n := 0
	if len(d.cleaned) > 0 && d.cleaned[len(d.cleaned)-1] != "" {
		d.insertAt(len(d.raw), "\n")
		n++
	}
	s.start = len(d.raw)
	s.end = s.start + 1
	s.placed = true
	d.insertAt(s.start, formatHeading(s.name))
	return n + 1
}

// insertLine inserts a line at index i as part of owner's body. owner grows by
// one line and every other section starting at or after i moves down by one.
func (d *Document) insertLine(owner *Section, i int, text string) {
	d.insertAt(i, text)
	owner.end++
	for _, s := range d.sections {
		if s != owner && s.placed && s.start >= i {
			s.start++
			s.end++
		}
	}
}

// insertAt inserts a line into both line arrays without adjusting any spans.
func (d *Document) insertAt(i int, text string) {
	if i > 0 && !strings.HasSuffix(d.raw[i-1], "\n") {
		d.raw[i-1] += "\n"
	}
	d.raw = slices.Insert(d.raw, i, text)
	d.cleaned = slices.Insert(d.cleaned, i, cleanLine(text))
}
