// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// writeDiff writes a line diff from before to after in unified style, without
// hunk headers. Output is colored when w is a terminal.
func writeDiff(w io.Writer, before, after string) {
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	if !isTerminal(w) {
		added.DisableColor()
		removed.DisableColor()
	}

	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for _, d := range diffs {
		for _, line := range splitDiffText(d.Text) {
			switch d.Type {
			case diffpatch.DiffInsert:
				added.Fprintln(w, "+"+line)
			case diffpatch.DiffDelete:
				removed.Fprintln(w, "-"+line)
			default:
				fmt.Fprintln(w, " "+line)
			}
		}
	}
}

// splitDiffText splits diff text into lines without their terminators.
func splitDiffText(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
