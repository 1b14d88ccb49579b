// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the `ptatools review` terminal browser.
//
// The browser is a two-pane bubbletea program: a list of the generated
// reports and diffs in the data directory, and a scrollable preview of
// the selection. It is strictly read-only; regeneration happens through
// the suite commands (or `ptatools watch`), and `r` rescans the
// directory to pick up their output.
package ui
