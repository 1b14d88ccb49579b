// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch re-runs ptatools commands when their input spreadsheets
// change on disk.
//
// The data directory is watched with fsnotify. Change events are mapped
// back to the commands whose job specs name the changed file, debounced so
// an editor's burst of saves collapses into one rebuild, and rate-limited
// so a looping sync tool cannot spin the report generators.
//
// # Usage
//
//	w, err := watch.New(watch.Config{
//		Dir: cfg.DataDir(),
//		Inputs: map[string][]string{
//			"assignments": {job.Roster, job.Slots},
//		},
//	}, runCommand)
//	if err != nil { ... }
//	err = w.Run(ctx) // blocks until ctx is canceled
package watch
