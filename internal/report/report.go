// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// report.go - Fixed-width cells and atomic report files.

package report

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/ptatools/internal/util"
)

// ============================================================================
// Cells
// ============================================================================

// Cell truncates s to width display columns and pads it on the right.
// Reports keep their columns by cutting long values, not by shifting the
// rest of the line.
func Cell(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}

// Pad pads s on the right to width display columns without truncating.
// Values longer than width overflow the column.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Cut truncates s to width display columns without padding.
func Cut(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

// Num formats n right-aligned in width columns.
func Num(n int, width int) string {
	return fmt.Sprintf("%*d", width, n)
}

// ============================================================================
// Headers
// ============================================================================

// Header is the two-line banner at the top of a generated report.
type Header struct {
	Title   string // e.g. "TA assignments Spring 2022 (by course)"
	Version string
	Date    time.Time
}

// String renders the banner followed by a blank separator line.
func (h Header) String() string {
	return fmt.Sprintf("%s\nVersion %s, %s\n\n", h.Title, h.Version, h.Date.Format("01/02/2006"))
}

// ============================================================================
// Files
// ============================================================================

// Save writes a finished report body to path atomically, replacing any
// previous version of the report.
func Save(path string, body []byte) error {
	if err := util.AtomicWriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}
	return nil
}
