// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// A command is a settingsctl subcommand.
type command struct {
	// flags defines command-specific flags.
	flags *flag.FlagSet

	// usage is shown after "settingsctl" in help and starts with the
	// command name. Example: "get <section> <key>".
	usage string

	// short is a one-line description for the global help listing.
	short string

	// nargs is the exact number of positional arguments, or -1 to skip the
	// check.
	nargs int

	exec func(ctx context.Context, g *globals, args []string) error
}

func (c *command) name() string {
	name, _, _ := strings.Cut(c.usage, " ")
	return name
}

func (c *command) helpLine() string {
	return fmt.Sprintf("  %-36s %s", c.usage, c.short)
}

func (c *command) printHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: settingsctl [global flags]", c.usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, c.short)
	if c.flags.HasFlags() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Flags:")
		c.flags.SetOutput(w)
		c.flags.PrintDefaults()
	}
}

// run parses flags and executes the command, returning the exit code.
func (c *command) run(ctx context.Context, g *globals, args []string) int {
	c.flags.SetOutput(io.Discard)
	if err := c.flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.printHelp(g.stdout)
			return 0
		}
		fmt.Fprintln(g.stderr, "settingsctl:", err)
		c.printHelp(g.stderr)
		return 2
	}
	if c.nargs >= 0 && c.flags.NArg() != c.nargs {
		fmt.Fprintf(g.stderr, "settingsctl: %s takes %d arguments, got %d\n", c.name(), c.nargs, c.flags.NArg())
		c.printHelp(g.stderr)
		return 2
	}
	if err := c.exec(ctx, g, c.flags.Args()); err != nil {
		fmt.Fprintln(g.stderr, "settingsctl:", err)
		return 1
	}
	return 0
}
