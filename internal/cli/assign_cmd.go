// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// assign_cmd.go - The `ptatools assign` command: interactive session for
// filling the unassigned slots in the assignment spreadsheet.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/ptatools/internal/config"
	"github.com/jeranaias/ptatools/internal/roster"
	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

// HandleAssign runs the interactive assignment session.
func HandleAssign(args Args) error {
	if err := RequiresTTY("assign slots"); err != nil {
		return err
	}

	rc, err := newRunContext(args)
	if err != nil {
		return err
	}
	defer rc.Close()

	job, err := config.LoadAssignments(rc.dir)
	if err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return err
	}

	tas, err := roster.ReadRoster(config.Resolve(rc.dir, job.Roster))
	if err != nil {
		return WrapError(err, "roster")
	}
	keys := make([]string, 0, len(tas))
	for i := range tas {
		keys = append(keys, tas[i].Key())
	}

	// The session edits raw records rather than roster.Slot values so the
	// write-back preserves every column untouched.
	slotsPath := config.Resolve(rc.dir, job.Slots)
	records, err := spreadsheet.ReadFile(slotsPath, spreadsheet.DefaultOptions(roster.SlotFields...))
	if err != nil {
		return WrapError(err, "slots")
	}

	changed, err := assignSession(records, keys)
	if err != nil {
		return err
	}
	if changed == 0 {
		if !args.Quiet {
			fmt.Println(DimStyle.Render("nothing assigned"))
		}
		return nil
	}

	if err := spreadsheet.WriteFile(slotsPath, roster.SlotFields, records); err != nil {
		return NewCommandError("assign", "failed to write slots spreadsheet", err)
	}
	if !args.Quiet {
		fmt.Printf("%s %d assignment(s) -> %s\n", SuccessStyle.Render("saved"), changed, slotsPath)
	}
	return nil
}

// assignSession prompts for each slot still carrying an unassigned
// marker. Returns the number of slots changed.
func assignSession(records []spreadsheet.Record, keys []string) (int, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	known := make(map[string]bool, len(keys))
	for _, key := range keys {
		known[key] = true
	}
	line.SetCompleter(func(prefix string) []string {
		var matches []string
		for _, key := range keys {
			if strings.HasPrefix(strings.ToLower(key), strings.ToLower(prefix)) {
				matches = append(matches, key)
			}
		}
		return matches
	})

	fmt.Println("Enter a TA key (tab completes), X to leave unstaffed,")
	fmt.Println("'skip' for the next slot, 'done' to save and exit.")

	changed := 0
	for _, rec := range records {
		ta := rec["ta"]
		if ta != "" && ta != "?" {
			continue
		}

		prompt := fmt.Sprintf("%s %s (%s, %sh)> ",
			rec["course_section"], rec["title"], rec["role"], rec["hours"])
	retry:
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return changed, nil
			}
			return changed, WrapError(err, "prompt failed")
		}

		input = strings.TrimSpace(input)
		switch input {
		case "", "skip":
			continue
		case "done":
			return changed, nil
		case "X", "x":
			rec["ta"] = "X"
			changed++
			continue
		}

		if !known[input] {
			fmt.Println(WarningStyle.Render("unknown TA key:"), input)
			goto retry
		}
		rec["ta"] = input
		line.AppendHistory(input)
		changed++
	}
	return changed, nil
}
