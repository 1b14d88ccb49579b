// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// assignments_cmd.go - The `ptatools assignments` command: TA roster and
// teaching slots to the versioned assignment reports.

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/ptatools/internal/config"
	"github.com/jeranaias/ptatools/internal/roster"
)

// HandleAssignments runs the assignments command.
func HandleAssignments(args Args) error {
	if args.Version == "" {
		return ErrMissingArgument("version", "ptatools assignments 3")
	}

	rc, err := newRunContext(args)
	if err != nil {
		return err
	}
	defer rc.Close()

	return runAssignments(rc, args.Version)
}

// runAssignments generates one draft of the assignment reports. An empty
// version writes the unversioned working names, which is what watch mode
// regenerates on every input change.
func runAssignments(rc *runContext, version string) error {
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
	slots, err := roster.ReadSlots(config.Resolve(rc.dir, job.Slots))
	if err != nil {
		return WrapError(err, "slots")
	}

	info := roster.ReportInfo{
		TermName: TermName(job.Term),
		Version:  version,
		Date:     time.Now(),
	}

	paths, err := rc.record("assignments", job.Term, version, func() ([]string, error) {
		return roster.Generate(rc.dir, job.Term, version, info, tas, slots)
	})
	rc.reportWritten(paths)
	if err != nil {
		return NewCommandError("assignments", "report generation failed", err)
	}
	return nil
}

// TermName expands a term code like "21b" to its human name, "Fall 2021".
// Codes it cannot read come back unchanged.
func TermName(code string) string {
	if len(code) < 2 {
		return code
	}
	year := code[:len(code)-1]
	for _, r := range year {
		if r < '0' || r > '9' {
			return code
		}
	}
	switch strings.ToLower(code[len(code)-1:]) {
	case "a":
		return fmt.Sprintf("Spring 20%s", year)
	case "b":
		return fmt.Sprintf("Fall 20%s", year)
	}
	return code
}
