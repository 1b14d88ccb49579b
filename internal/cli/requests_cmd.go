// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// requests_cmd.go - The `ptatools requests` command: course-request
// survey to the by-faculty and by-course request reports.

package cli

import (
	"github.com/jeranaias/ptatools/internal/config"
	"github.com/jeranaias/ptatools/internal/survey"
)

// HandleRequests runs the requests command.
func HandleRequests(args Args) error {
	rc, err := newRunContext(args)
	if err != nil {
		return err
	}
	defer rc.Close()

	return runRequests(rc)
}

func runRequests(rc *runContext) error {
	job, err := config.LoadRequests(rc.dir)
	if err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return err
	}

	termName := job.TermName
	if termName == "" {
		termName = TermName(job.TermTag)
	}

	paths, err := rc.record("requests", job.TermTag, "", func() ([]string, error) {
		return survey.RequestsGenerate(rc.dir, termName, job.TermTag,
			config.Resolve(rc.dir, job.Responses), job.Courses)
	})
	rc.reportWritten(paths)
	if err != nil {
		return NewCommandError("requests", "report generation failed", err)
	}
	return nil
}
