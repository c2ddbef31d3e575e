// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/yourbase/settings/reload"
	"github.com/yourbase/settings/settings"
	"zombiezen.com/go/log"
)

func commands() []*command {
	return []*command{
		sectionsCommand(),
		getCommand(),
		setCommand(),
		addCommand(),
		watchCommand(),
	}
}

func sectionsCommand() *command {
	return &command{
		flags: flag.NewFlagSet("sections", flag.ContinueOnError),
		usage: "sections",
		short: "List section names",
		nargs: 0,
		exec: func(ctx context.Context, g *globals, args []string) error {
			stack, err := settings.LoadStack(ctx, g.opts, g.files...)
			if err != nil {
				return err
			}
			for _, name := range stack.SectionNames() {
				fmt.Fprintln(g.stdout, name)
			}
			return nil
		},
	}
}

func getCommand() *command {
	c := &command{
		flags: flag.NewFlagSet("get", flag.ContinueOnError),
		usage: "get <section> <key>",
		short: "Print the value of an entry",
		nargs: 2,
	}
	showKind := c.flags.BoolP("kind", "k", false, "print the value's kind before it")
	c.exec = func(ctx context.Context, g *globals, args []string) error {
		stack, err := settings.LoadStack(ctx, g.opts, g.files...)
		if err != nil {
			return err
		}
		v, ok := stack.Value(args[0], args[1])
		if !ok {
			return fmt.Errorf("%s.%s: %w", args[0], args[1], settings.ErrKeyNotFound)
		}
		if *showKind {
			fmt.Fprintf(g.stdout, "%v\t%v\n", v.Kind(), v)
		} else {
			fmt.Fprintln(g.stdout, v)
		}
		return nil
	}
	return c
}

func setCommand() *command {
	c := &command{
		flags: flag.NewFlagSet("set", flag.ContinueOnError),
		usage: "set <section> <key> <value>",
		short: "Set an entry, adding the section or key if needed",
		nargs: 3,
	}
	dryRun := c.flags.BoolP("dry-run", "n", false, "print the changes as a diff instead of saving")
	c.exec = func(ctx context.Context, g *globals, args []string) error {
		doc, err := settings.Load(ctx, g.files[0], g.opts)
		if err != nil {
			return err
		}
		v := settings.Decode(args[2], g.opts)
		if err := (settings.Stack{doc}).SetValue(args[0], args[1], v); err != nil {
			return err
		}
		if *dryRun {
			return printPending(g, doc)
		}
		if err := doc.Save(ctx); err != nil {
			return err
		}
		log.Debugf(ctx, "Set %s.%s = %v in %s", args[0], args[1], v, doc.Path())
		return nil
	}
	return c
}

func addCommand() *command {
	c := &command{
		flags: flag.NewFlagSet("add", flag.ContinueOnError),
		usage: "add <section> [<key> <value>]",
		short: "Add a section, or a new entry to a section",
		nargs: -1,
	}
	dryRun := c.flags.BoolP("dry-run", "n", false, "print the changes as a diff instead of saving")
	c.exec = func(ctx context.Context, g *globals, args []string) error {
		if len(args) != 1 && len(args) != 3 {
			return fmt.Errorf("add takes 1 or 3 arguments, got %d", len(args))
		}
		doc, err := settings.Load(ctx, g.files[0], g.opts)
		if err != nil {
			return err
		}
		_, err = doc.Section(args[0])
		switch {
		case errors.Is(err, settings.ErrSectionNotFound):
			if _, err := doc.AddSection(args[0]); err != nil {
				return err
			}
		case err != nil:
			return err
		case len(args) == 1:
			return fmt.Errorf("add section %s: %w", args[0], settings.ErrDuplicateSection)
		}
		if len(args) == 3 {
			if err := doc.AddEntry(args[0], args[1], settings.Decode(args[2], g.opts)); err != nil {
				return err
			}
		}
		if *dryRun {
			return printPending(g, doc)
		}
		return doc.Save(ctx)
	}
	return c
}

func watchCommand() *command {
	c := &command{
		flags: flag.NewFlagSet("watch", flag.ContinueOnError),
		usage: "watch",
		short: "Print the settings, then print them again whenever the file changes",
		nargs: 0,
	}
	interval := c.flags.DurationP("interval", "i", time.Second, "how often to check the file")
	c.exec = func(ctx context.Context, g *globals, args []string) error {
		doc, err := settings.Load(ctx, g.files[0], g.opts)
		if err != nil {
			return err
		}
		printDocument(g, doc)
		log.Infof(ctx, "Watching %s", doc.Path())
		err = reload.Poll(ctx, doc, *interval, func(ctx context.Context) error {
			fmt.Fprintln(g.stdout, "---")
			printDocument(g, doc)
			return nil
		})
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}
	return c
}

func printDocument(g *globals, doc *settings.Document) {
	for _, s := range doc.Sections() {
		fmt.Fprintf(g.stdout, "[%s]\n", s.Name())
		for _, e := range s.Entries() {
			fmt.Fprintf(g.stdout, "%s = %v\n", e.Key, e.Value)
		}
	}
}

// printPending writes a diff between the file on disk and what saving doc
// would write.
func printPending(g *globals, doc *settings.Document) error {
	before, err := os.ReadFile(doc.Path())
	if err != nil {
		return err
	}
	after, err := doc.MarshalText()
	if err != nil {
		return err
	}
	writeDiff(g.stdout, string(before), string(after))
	return nil
}
