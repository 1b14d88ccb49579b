// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// students_cmd.go - The `ptatools students` command: graduate-student
// database to the status, advising, and TA planning reports.

package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/ptatools/internal/config"
	"github.com/jeranaias/ptatools/internal/students"
)

// HandleStudents runs the students command.
func HandleStudents(args Args) error {
	if args.Version == "" {
		return ErrMissingArgument("version", "ptatools students 1")
	}

	rc, err := newRunContext(args)
	if err != nil {
		return err
	}
	defer rc.Close()

	return runStudents(rc, args.Version)
}

func runStudents(rc *runContext, version string) error {
	job, err := config.LoadStudents(rc.dir)
	if err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return err
	}

	db, err := students.ReadDatabase(config.Resolve(rc.dir, job.Database))
	if err != nil {
		return WrapError(err, "student database")
	}

	var faculty []string
	if job.Faculty != "" {
		faculty, err = students.ReadFaculty(config.Resolve(rc.dir, job.Faculty))
		if err != nil {
			return WrapError(err, "faculty list")
		}
	}

	if job.Committees != "" {
		if err := students.AugmentCommittees(db, config.Resolve(rc.dir, job.Committees)); err != nil {
			return WrapError(err, "committee supplement")
		}
	}

	if !rc.args.Quiet {
		for _, warning := range students.Validate(db) {
			fmt.Println(WarningStyle.Render("Warning:"), warning)
		}
	}

	opts := students.GenerateOptions{
		Date:              time.Now(),
		ResearchCommittee: job.ResearchCommittee,
		TA:                job.TATerm != "",
		TATerm:            taTermCode(job.TATerm),
	}

	paths, err := rc.record("students", job.Term, version, func() ([]string, error) {
		return students.Generate(rc.dir, opts, db, faculty)
	})
	rc.reportWritten(paths)
	if err != nil {
		return NewCommandError("students", "report generation failed", err)
	}
	return nil
}

// taTermCode normalizes a spec's TA term ("Spring", "Fall", "a", "b") to
// the single-letter code the funding columns use.
func taTermCode(term string) string {
	switch strings.ToLower(term) {
	case "spring", "a":
		return "a"
	case "fall", "b":
		return "b"
	}
	return term
}
