// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// helpers.go - Shared runtime plumbing for the command handlers: config
// loading, data-directory resolution, run recording, and status lines.

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/jeranaias/ptatools/internal/config"
	"github.com/jeranaias/ptatools/internal/history"
)

// runContext is what every handler needs: the resolved configuration and
// the data directory the run operates on.
type runContext struct {
	cfg   *config.Config
	dir   string
	args  Args
	store *history.Store // nil when the history db cannot be opened
}

// newRunContext loads the tool config (honoring --config) and resolves
// the data directory (honoring --dir). The history store is opened
// best-effort: a broken ledger must not block report generation.
func newRunContext(args Args) (*runContext, error) {
	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, WrapError(err, "failed to load config")
	}

	dir := cfg.DataDir()
	if args.Dir != "" {
		dir = args.Dir
	}

	rc := &runContext{cfg: cfg, dir: dir, args: args}

	if !cfg.History.Enabled {
		return rc, nil
	}
	if path, err := cfg.HistoryPath(); err == nil {
		if store, err := history.Open(path); err == nil {
			rc.store = store
		} else if args.Verbose {
			fmt.Println(WarningStyle.Render("Warning:"), "history disabled:", err)
		}
	}
	return rc, nil
}

// Close releases the history store.
func (rc *runContext) Close() {
	if rc.store != nil {
		rc.store.Close()
	}
}

// record wraps a generating function with history bookkeeping. The
// returned paths and error are the function's own; ledger failures only
// warn in verbose mode.
func (rc *runContext) record(command, term, version string, generate func() ([]string, error)) ([]string, error) {
	var run *history.Run
	if rc.store != nil {
		if r, err := rc.store.Begin(command, term, version); err == nil {
			run = r
		}
	}

	paths, err := generate()

	if rc.store != nil && run != nil {
		names := make([]string, len(paths))
		for i, p := range paths {
			names[i] = filepath.Base(p)
		}
		if recErr := rc.store.Finish(run, names, err); recErr != nil && rc.args.Verbose {
			fmt.Println(WarningStyle.Render("Warning:"), "history not recorded:", recErr)
		}
	}
	return paths, err
}

// reportWritten prints one status line per generated file.
func (rc *runContext) reportWritten(paths []string) {
	if rc.args.Quiet {
		return
	}
	for _, p := range paths {
		fmt.Printf("%s %s\n", SuccessStyle.Render("wrote"), filepath.Base(p))
	}
}
