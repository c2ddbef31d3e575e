// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package settings reads and edits simple INI-like settings files.

This package is specifically designed for read-modify-write scenarios: a
Document remembers where every section lives in the file, so saving rewrites
only the entries whose values changed and appends only what is new. Comments,
blank lines and untouched entries are written back exactly as they were read.

Syntax

A settings file is UTF-8 text. A section is started by writing its name in
square brackets ('[' and ']') on its own line and ends at the next section
heading or the end of file:

	[general]
	name = example
	retries = 3

An entry is a key and value on a single line, separated by an equals sign
('='). Whitespace touching the equals sign is ignored. Section names and keys
must be identifiers: non-empty, made of ASCII letters, digits and underscores,
and not starting with an underscore or a digit.

Any other line, including comments such as

	# this is a comment

is kept in the file but not modelled. Entries that appear before the first
section heading are ignored the same way.

Values

Values are decoded into a Value of one of four kinds. Text equal to "true" or
"false" in any case decodes as a Bool. Otherwise text containing a '.' is
tried as a Float and other text as an Int. Anything else stays a String.
Options can turn off each of the three conversions.

Values are written back in a canonical form: "True"/"False" for booleans,
decimal digits for integers, a decimal with a '.' for floats and the verbatim
text for strings.

Limitations

The equals sign normalization is a plain substring replacement, so a value
that itself contains " =" or "= " is read back with that space removed.
Deleting a key from a Section does not remove its line from the file.
Multi-line values, escaping and nested sections are not supported.
*/
package settings
