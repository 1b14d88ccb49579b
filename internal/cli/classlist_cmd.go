// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// classlist_cmd.go - The `ptatools classlist` command: CourseLeaf
// registrar export to the class report and the normalized classes CSV.

package cli

import (
	"time"

	"github.com/jeranaias/ptatools/internal/config"
	"github.com/jeranaias/ptatools/internal/registrar"
)

// HandleClassList runs the classlist command.
func HandleClassList(args Args) error {
	rc, err := newRunContext(args)
	if err != nil {
		return err
	}
	defer rc.Close()

	return runClassList(rc)
}

func runClassList(rc *runContext) error {
	job, err := config.LoadClassList(rc.dir)
	if err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return err
	}

	listings, err := registrar.ReadClassList(config.Resolve(rc.dir, job.Input), job.Blacklist)
	if err != nil {
		return WrapError(err, "registrar export")
	}

	paths, err := rc.record("classlist", job.Term, "", func() ([]string, error) {
		return registrar.Generate(rc.dir, job.Term, time.Now(), listings)
	})
	rc.reportWritten(paths)
	if err != nil {
		return NewCommandError("classlist", "report generation failed", err)
	}
	return nil
}
