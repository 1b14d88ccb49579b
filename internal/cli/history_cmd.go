// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - The `ptatools history` command: list recorded runs and
// show one run's detail.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jeranaias/ptatools/internal/history"
)

// HandleHistory runs the history command.
func HandleHistory(args Args) error {
	rc, err := newRunContext(args)
	if err != nil {
		return err
	}
	defer rc.Close()

	if rc.store == nil {
		return NewCommandError("history", "run history is not available", nil)
	}

	if args.Subcommand == "show" {
		if args.ID == "" {
			return ErrMissingArgument("id", "ptatools history show 4fa2")
		}
		return showRun(rc, args.ID)
	}

	limit := args.Limit
	if limit == 0 {
		limit = rc.cfg.History.KeepRuns
	}
	return listRuns(rc, limit)
}

func listRuns(rc *runContext, limit int) error {
	runs, err := rc.store.Recent(limit)
	if err != nil {
		return NewCommandError("history", "failed to list runs", err)
	}

	if rc.args.JSON {
		return json.NewEncoder(os.Stdout).Encode(runsJSON(runs))
	}

	if len(runs) == 0 {
		fmt.Println(DimStyle.Render("no recorded runs"))
		return nil
	}

	for _, run := range runs {
		version := run.Version
		if version != "" {
			version = " v" + version
		}
		fmt.Printf("%s  %s  %-18s %s%s\n",
			RenderStatus(run.Status),
			HighlightStyle.Render(run.ID[:8]),
			run.Command,
			run.Term, version)
	}
	return nil
}

func showRun(rc *runContext, id string) error {
	run, err := rc.store.Get(id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			return ErrNotFound("run", id)
		}
		return NewCommandError("history", "failed to look up run", err)
	}

	if rc.args.JSON {
		return json.NewEncoder(os.Stdout).Encode(runJSON(*run))
	}

	fmt.Println(TitleStyle.Render("Run " + run.ID))
	fmt.Printf("  command:  %s\n", run.Command)
	if run.Term != "" {
		fmt.Printf("  term:     %s\n", run.Term)
	}
	if run.Version != "" {
		fmt.Printf("  version:  %s\n", run.Version)
	}
	fmt.Printf("  status:   %s\n", RenderStatus(run.Status))
	if run.Error != "" {
		fmt.Printf("  error:    %s\n", run.Error)
	}
	fmt.Printf("  started:  %s\n", run.Started.Format(time.RFC3339))
	if !run.Finished.IsZero() {
		fmt.Printf("  finished: %s\n", run.Finished.Format(time.RFC3339))
	}
	if len(run.Outputs) > 0 {
		fmt.Println("  outputs:")
		for _, out := range run.Outputs {
			fmt.Printf("    %s\n", out)
		}
	}
	return nil
}

// runJSON is the machine-readable shape of one run.
type runRecord struct {
	ID       string   `json:"id"`
	Command  string   `json:"command"`
	Term     string   `json:"term,omitempty"`
	Version  string   `json:"version,omitempty"`
	Status   string   `json:"status"`
	Error    string   `json:"error,omitempty"`
	Outputs  []string `json:"outputs,omitempty"`
	Started  string   `json:"started"`
	Finished string   `json:"finished,omitempty"`
}

func runJSON(run history.Run) runRecord {
	rec := runRecord{
		ID:      run.ID,
		Command: run.Command,
		Term:    run.Term,
		Version: run.Version,
		Status:  run.Status,
		Error:   run.Error,
		Outputs: run.Outputs,
		Started: run.Started.Format(time.RFC3339),
	}
	if !run.Finished.IsZero() {
		rec.Finished = run.Finished.Format(time.RFC3339)
	}
	return rec
}

func runsJSON(runs []history.Run) []runRecord {
	records := make([]runRecord, len(runs))
	for i, run := range runs {
		records[i] = runJSON(run)
	}
	return records
}
