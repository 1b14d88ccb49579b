// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// scheduling_cmd.go - The `ptatools scheduling` command: availability
// survey to the respondent-by-date exam scheduling grid.

package cli

import (
	"path/filepath"

	"github.com/jeranaias/ptatools/internal/config"
	"github.com/jeranaias/ptatools/internal/survey"
)

// HandleScheduling runs the scheduling command.
func HandleScheduling(args Args) error {
	rc, err := newRunContext(args)
	if err != nil {
		return err
	}
	defer rc.Close()

	return runScheduling(rc)
}

func runScheduling(rc *runContext) error {
	job, err := config.LoadScheduling(rc.dir)
	if err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return err
	}

	opts := survey.SchedulingOptions{
		Dates:         job.Dates,
		ResponseCodes: job.Codes,
		NameWidth:     job.NameWidth,
		DateWidth:     job.DateWidth,
	}

	reportPath := filepath.Join(rc.dir, "exam-scheduling-"+job.Term+".txt")
	paths, err := rc.record("scheduling", job.Term, "", func() ([]string, error) {
		genErr := survey.SchedulingGenerate(config.Resolve(rc.dir, job.Responses), reportPath, opts)
		if genErr != nil {
			return nil, genErr
		}
		return []string{reportPath}, nil
	})
	rc.reportWritten(paths)
	if err != nil {
		return NewCommandError("scheduling", "grid generation failed", err)
	}
	return nil
}
