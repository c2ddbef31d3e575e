// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package reload provides a polling loop for picking up edits other programs
// make to a settings file.
package reload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yourbase/settings/settings"
	"zombiezen.com/go/log"
)

// Poll refreshes doc every interval and calls onChange after each refresh
// that found the file's content changed. Poll runs on the caller's goroutine
// and returns only when the Context is Done or when refreshing or onChange
// fails. In the first case it returns ctx.Err().
//
// Each refresh discards unsaved changes to doc and invalidates sections
// obtained from it, so callers should look sections up again in onChange.
func Poll(ctx context.Context, doc *settings.Document, interval time.Duration, onChange func(context.Context) error) error {
	if interval <= 0 {
		return errors.New("reload: non-positive interval")
	}
	t := time.NewTimer(interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
		case <-ctx.Done():
			return ctx.Err()
		}
		changed, err := doc.RefreshAndHasChanged(ctx)
		if err != nil {
			return fmt.Errorf("reload %s: %w", doc.Path(), err)
		}
		if changed {
			log.Infof(ctx, "Settings file %s changed", doc.Path())
			if err := onChange(ctx); err != nil {
				return fmt.Errorf("reload %s: %w", doc.Path(), err)
			}
		}
		t.Reset(interval)
	}
}
