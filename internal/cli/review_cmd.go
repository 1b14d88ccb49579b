// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// review_cmd.go - The `ptatools review` command: terminal browser over
// the generated reports and diffs.

package cli

import (
	"github.com/jeranaias/ptatools/internal/ui"
)

// HandleReview opens the report browser.
func HandleReview(args Args) error {
	if err := RequiresTTY("review reports"); err != nil {
		return err
	}

	rc, err := newRunContext(args)
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := ui.Run(rc.dir); err != nil {
		return NewCommandError("review", "browser failed", err)
	}
	return nil
}
