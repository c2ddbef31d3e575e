// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package settings

import (
	"strings"
	"unicode"
)

// cleanLine strips trailing whitespace (including the line terminator) and
// removes spaces touching an equals sign. The replacement applies anywhere in
// the line, values included.
func cleanLine(raw string) string {
	line := strings.TrimRightFunc(raw, unicode.IsSpace)
	line = strings.ReplaceAll(line, "= ", "=")
	line = strings.ReplaceAll(line, " =", "=")
	return line
}

func isHeading(line string) bool {
	return len(line) >= 2 && line[0] == '[' && line[len(line)-1] == ']'
}

func headingName(line string) string {
	return line[1 : len(line)-1]
}

// isEntry reports whether a cleaned line is a key/value entry. Comments are
// rejected because their text before the '=' is not an identifier.
func isEntry(line string) bool {
	i := strings.IndexByte(line, '=')
	if i == -1 {
		return false
	}
	return IsValidIdentifier(line[:i])
}

// splitEntry splits a cleaned entry line at its first '='.
func splitEntry(line string) (key, value string) {
	key, value, _ = strings.Cut(line, "=")
	return key, value
}

// formatEntry returns the canonical line for an entry, terminator included.
func formatEntry(key string, v Value) string {
	return key + " = " + v.String() + "\n"
}

func formatHeading(name string) string {
	return "[" + name + "]\n"
}

// IsValidIdentifier reports whether name can be used as a section name or a
// key: it must be non-empty, must not start with an underscore or a digit and
// may only contain ASCII letters, digits and underscores.
func IsValidIdentifier(name string) bool {
	if name == "" || name[0] == '_' || isDigit(name[0]) {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !isDigit(c) && c != '_' && !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// splitLines splits file content into lines, keeping each line's terminator.
// A final line without a terminator is kept as is.
func splitLines(data string) []string {
	if data == "" {
		return nil
	}
	lines := strings.SplitAfter(data, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
