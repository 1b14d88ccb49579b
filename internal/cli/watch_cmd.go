// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watch_cmd.go - The `ptatools watch` command: re-run commands when their
// input spreadsheets change.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/jeranaias/ptatools/internal/config"
	"github.com/jeranaias/ptatools/internal/watch"
)

// HandleWatch runs the watch command until interrupted.
func HandleWatch(args Args) error {
	rc, err := newRunContext(args)
	if err != nil {
		return err
	}
	defer rc.Close()

	inputs := watchInputs(rc.dir)
	if len(inputs) == 0 {
		return NewCommandError("watch", "no job specs found in "+rc.dir, nil)
	}

	debounce := time.Duration(rc.cfg.Watch.DebounceMs) * time.Millisecond
	minInterval := time.Minute / time.Duration(rc.cfg.Watch.MaxPerMinute)

	w, err := watch.New(watch.Config{
		Dir:         rc.dir,
		Inputs:      inputs,
		Debounce:    debounce,
		MinInterval: minInterval,
	}, func(command string) error {
		return rebuildCommand(rc, command)
	})
	if err != nil {
		return NewCommandError("watch", "failed to start watcher", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !args.Quiet {
		fmt.Printf("%s %s (", TitleStyle.Render("watching"), rc.dir)
		first := true
		for command := range inputs {
			if !first {
				fmt.Print(", ")
			}
			fmt.Print(command)
			first = false
		}
		fmt.Println(") — Ctrl-C to stop")
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case command := <-w.Rebuilds:
				if !args.Quiet {
					fmt.Printf("%s %s at %s\n", SuccessStyle.Render("rebuilt"),
						command, time.Now().Format("15:04:05"))
				}
			case err := <-w.Errors:
				fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("Error:"), err)
			}
		}
	}()

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return NewCommandError("watch", "watcher stopped", err)
	}
	if !args.Quiet {
		fmt.Println(DimStyle.Render("stopped"))
	}
	return nil
}

// watchInputs maps each command with a job spec in dir to its input
// files. Commands without a spec are simply not watched.
func watchInputs(dir string) map[string][]string {
	inputs := make(map[string][]string)

	if job, err := config.LoadAssignments(dir); err == nil && job.Validate() == nil {
		inputs["assignments"] = []string{job.Roster, job.Slots}
	}
	if job, err := config.LoadStudents(dir); err == nil && job.Validate() == nil {
		files := []string{job.Database}
		if job.Faculty != "" {
			files = append(files, job.Faculty)
		}
		if job.Committees != "" {
			files = append(files, job.Committees)
		}
		inputs["students"] = files
	}
	if job, err := config.LoadClassList(dir); err == nil && job.Validate() == nil {
		inputs["classlist"] = []string{job.Input}
	}
	if job, err := config.LoadScheduling(dir); err == nil && job.Validate() == nil {
		inputs["scheduling"] = []string{job.Responses}
	}
	if job, err := config.LoadRequests(dir); err == nil && job.Validate() == nil {
		inputs["requests"] = []string{job.Responses}
	}

	return inputs
}

// rebuildCommand re-runs one suite command. Versioned commands rebuild
// the unversioned working reports; cutting a numbered draft stays a
// deliberate, manual act.
func rebuildCommand(rc *runContext, command string) error {
	switch command {
	case "assignments":
		return runAssignments(rc, "")
	case "students":
		return runStudents(rc, "")
	case "classlist":
		return runClassList(rc)
	case "scheduling":
		return runScheduling(rc)
	case "requests":
		return runRequests(rc)
	}
	return fmt.Errorf("unknown command %q", command)
}
