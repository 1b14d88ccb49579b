// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// width.go - display-width-aware string formatting for fixed-width reports.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: all widths here are terminal display columns, not bytes or runes.
// Double-width characters (CJK) count as 2 columns; truncation never splits a
// multi-byte rune.

// Width returns the display width of s in terminal columns.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most max columns, appending "..." when anything
// was cut. Strings that already fit are returned unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max <= 3 {
		return runewidth.Truncate(s, max, "")
	}
	return runewidth.Truncate(s, max, "...")
}

// Fit returns s at exactly width columns: truncated with an ellipsis when too
// wide, padded with spaces on the right when too narrow. Report columns are
// built from Fit so every row lines up.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(Truncate(s, width), width)
}

// PadRight pads s with spaces to at least width columns. Unlike Fit it never
// truncates.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft pads s with spaces on the left to at least width columns. Used for
// numeric columns that align on the right edge.
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// Repeat returns a horizontal rule of n copies of s. Convenience for report
// separator lines.
func Repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}
