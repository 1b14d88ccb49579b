// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history records ptatools runs in a local SQLite database.
//
// Every report-generating command records one run: what was run, for which
// term and draft version, which files it wrote, and whether it succeeded.
// The ledger answers "which draft produced this file" questions months
// later, when the spreadsheets have moved on.
//
// # Key Types
//
//   - Store: the open ledger, backed by one SQLite file
//   - Run: one recorded run with its output files
//
// # Usage
//
//	store, err := history.Open(cfg.HistoryPath())
//	if err != nil { ... }
//	defer store.Close()
//
//	run, err := store.Begin("assignments", "21b", "3")
//	paths, genErr := roster.Generate(...)
//	store.Finish(run, paths, genErr)
//
// Runs are looked up by unique id prefix, like git commits:
//
//	run, err := store.Get("4fa2")
package history
