// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package settings_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yourbase/settings/settings"
)

func ExampleLoad() {
	dir, err := os.MkdirTemp("", "settings-example")
	if err != nil {
		// handle error
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "app.ini")
	os.WriteFile(path, []byte(`# Application settings
[general]
name = example
debug = false
retries = 3
timeout = 2.5
`), 0o666)

	ctx := context.Background()
	doc, err := settings.Load(ctx, path, nil)
	if err != nil {
		// handle error
	}
	general, err := doc.Section("general")
	if err != nil {
		// handle error
	}
	for _, e := range general.Entries() {
		fmt.Printf("%s (%v) = %v\n", e.Key, e.Value.Kind(), e.Value)
	}

	// Output:
	// name (string) = example
	// debug (bool) = False
	// retries (int) = 3
	// timeout (float) = 2.5
}

func ExampleDocument_Save() {
	dir, err := os.MkdirTemp("", "settings-example")
	if err != nil {
		// handle error
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "app.ini")
	os.WriteFile(path, []byte(`# Application settings
[general]
name=example

[net]
# Network settings
port = 80
`), 0o666)

	ctx := context.Background()
	doc, err := settings.Load(ctx, path, nil)
	if err != nil {
		// handle error
	}
	doc.SetValue("net", "port", settings.IntValue(8080))
	doc.AddEntry("general", "debug", settings.BoolValue(true))
	doc.AddSection("cache")
	doc.AddEntry("cache", "dir", settings.StringValue("/tmp/cache"))
	if err := doc.Save(ctx); err != nil {
		// handle error
	}

	data, _ := os.ReadFile(path)
	os.Stdout.Write(data)

	// Output:
	// # Application settings
	// [general]
	// name=example
	// debug = True
	//
	// [net]
	// # Network settings
	// port = 8080
	//
	// [cache]
	// dir = /tmp/cache
}

func ExampleSplitList() {
	fmt.Printf("%q\n", settings.SplitList("item1, item2,item3"))

	// Output:
	// ["item1" "item2" "item3"]
}
