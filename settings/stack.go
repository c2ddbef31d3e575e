// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// Stack is a list of documents to obtain settings from in descending order
// of precedence. Nil documents are skipped.
type Stack []*Document

// LoadStack loads the files at the given paths as a Stack. If the returned
// error is nil, the returned stack's length will be the same as the number of
// paths. LoadStack stops on the first error, but files that do not exist are
// neither created nor reported: their element of the stack is nil.
func LoadStack(ctx context.Context, opts *Options, paths ...string) (Stack, error) {
	var strict Options
	if opts != nil {
		strict = *opts
	} else {
		strict = *DefaultOptions()
	}
	strict.MustExist = true

	stack := make(Stack, 0, len(paths))
	for _, p := range paths {
		d, err := Load(ctx, p, &strict)
		if errors.Is(err, fs.ErrNotExist) {
			stack = append(stack, nil)
			continue
		}
		if err != nil {
			return stack, fmt.Errorf("load settings stack: %w", err)
		}
		stack = append(stack, d)
	}
	return stack, nil
}

// Value returns the value of key in the named section from the first
// document that defines it.
func (stack Stack) Value(section, key string) (_ Value, ok bool) {
	for _, d := range stack {
		if d == nil {
			continue
		}
		if v, err := d.Value(section, key); err == nil {
			return v, true
		}
	}
	return Value{}, false
}

// SectionNames returns the names of sections defined in any document, in the
// order they are first seen.
func (stack Stack) SectionNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, d := range stack {
		if d == nil {
			continue
		}
		for _, s := range d.sections {
			if _, dup := seen[s.name]; dup {
				continue
			}
			seen[s.name] = struct{}{}
			names = append(names, s.name)
		}
	}
	return names
}

// SetValue sets the value in the first document, which must not be nil.
// Lower-precedence documents are left alone: saving the first document is
// enough for the new value to win.
func (stack Stack) SetValue(section, key string, v Value) error {
	if len(stack) == 0 || stack[0] == nil {
		return errors.New("set value in settings stack: no writable document")
	}
	d := stack[0]
	if _, err := d.Section(section); errors.Is(err, ErrSectionNotFound) {
		if _, err := d.AddSection(section); err != nil {
			return err
		}
	}
	return d.SetValue(section, key, v)
}
