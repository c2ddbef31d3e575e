// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// settingsctl reads and edits settings files while keeping their comments
// and formatting.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"github.com/yourbase/settings/envvar"
	"github.com/yourbase/settings/settings"
)

// globals holds the state shared by all commands.
type globals struct {
	stdout io.Writer
	stderr io.Writer

	// files lists settings files in descending order of precedence.
	// Commands that write use only the first.
	files []string
	opts  *settings.Options
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) int {
	g := &globals{
		stdout: stdout,
		stderr: stderr,
	}
	fset := flag.NewFlagSet("settingsctl", flag.ContinueOnError)
	fset.SetInterspersed(false)
	fset.SetOutput(io.Discard)
	defaultFiles := envvar.List("SETTINGS_FILES", []string{envvar.Get("SETTINGS_FILE", "settings.ini")})
	fset.StringArrayVarP(&g.files, "file", "f", defaultFiles, "settings `file`; repeat to layer files, first wins ($SETTINGS_FILES, $SETTINGS_FILE)")
	strict := fset.Bool("strict", false, "fail instead of creating a missing settings file")
	raw := fset.Bool("raw", false, "treat all values as strings")
	cmds := commands()
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout, fset, cmds)
			return 0
		}
		fmt.Fprintln(stderr, "settingsctl:", err)
		printUsage(stderr, fset, cmds)
		return 2
	}
	if fset.NArg() == 0 {
		printUsage(stderr, fset, cmds)
		return 2
	}

	g.opts = envvar.ParseOptions("SETTINGS")
	if *raw {
		g.opts.ParseBool = false
		g.opts.ParseInt = false
		g.opts.ParseFloat = false
	}
	g.opts.MustExist = *strict

	for _, c := range cmds {
		if c.name() == fset.Arg(0) {
			return c.run(ctx, g, fset.Args()[1:])
		}
	}
	fmt.Fprintf(stderr, "settingsctl: unknown command %q\n", fset.Arg(0))
	printUsage(stderr, fset, cmds)
	return 2
}

func printUsage(w io.Writer, fset *flag.FlagSet, cmds []*command) {
	fmt.Fprintln(w, "Usage: settingsctl [global flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range cmds {
		fmt.Fprintln(w, c.helpLine())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global flags:")
	fset.SetOutput(w)
	fset.PrintDefaults()
	fset.SetOutput(io.Discard)
}
