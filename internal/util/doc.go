// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for ptatools.
//
// # Key Functions
//
//   - AtomicWriteFile: crash-safe file replacement (temp + fsync + rename)
//   - Fit, Truncate, PadRight: display-width-aware column formatting
//
// Width handling goes through github.com/mattn/go-runewidth so report columns
// stay aligned when names contain double-width (CJK) characters.
package util
