// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package envvar provides functions to read environment variables for
// configuration.
package envvar

import (
	"os"
	"strconv"

	"github.com/yourbase/settings/settings"
)

// Get returns the value of the given environment variable. If it is empty or
// unset, it returns the default value.
func Get(key string, defaultValue string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return v
}

// Bool returns the value of a boolean environment variable. If it is empty,
// unset or not one of the values accepted by strconv.ParseBool, it returns
// the default value.
func Bool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

// List returns the comma-separated elements of an environment variable, as
// split by settings.SplitList. If it is empty or unset, it returns the
// default value.
func List(key string, defaultValue []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	return settings.SplitList(v)
}

// ParseOptions returns settings options whose value conversions can be
// turned off with the environment variables PREFIX_PARSE_BOOL,
// PREFIX_PARSE_INT and PREFIX_PARSE_FLOAT. Conversions are on by default.
func ParseOptions(prefix string) *settings.Options {
	opts := settings.DefaultOptions()
	opts.ParseBool = Bool(prefix+"_PARSE_BOOL", opts.ParseBool)
	opts.ParseInt = Bool(prefix+"_PARSE_INT", opts.ParseInt)
	opts.ParseFloat = Bool(prefix+"_PARSE_FLOAT", opts.ParseFloat)
	return opts
}
