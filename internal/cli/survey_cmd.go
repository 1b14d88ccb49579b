// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// survey_cmd.go - The `ptatools survey <kind>` command: TA preference and
// feedback surveys to per-respondent text reports.

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jeranaias/ptatools/internal/config"
	"github.com/jeranaias/ptatools/internal/survey"
)

// HandleSurvey runs the survey command.
func HandleSurvey(args Args) error {
	extraction, ok := survey.Extractions[survey.Kind(args.Kind)]
	if !ok {
		return &ValidationError{
			Field:   "kind",
			Value:   args.Kind,
			Reason:  "unknown survey kind",
			Example: "ptatools survey " + strings.Join(surveyKinds(), "|"),
		}
	}

	rc, err := newRunContext(args)
	if err != nil {
		return err
	}
	defer rc.Close()

	return runSurvey(rc, extraction)
}

func runSurvey(rc *runContext, extraction survey.Extraction) error {
	job, err := config.LoadSurvey(rc.dir, string(extraction.Kind))
	if err != nil {
		return err
	}
	if err := job.Validate(); err != nil {
		return err
	}

	// The survey tool occasionally renames or reorders export columns
	// between terms; the spec can pin the current layout.
	if len(job.Fields) > 0 {
		extraction.Fields = job.Fields
	}

	command := fmt.Sprintf("survey %s", extraction.Kind)
	paths, err := rc.record(command, job.Term, "", func() ([]string, error) {
		path, genErr := extraction.Generate(rc.dir, job.Term, config.Resolve(rc.dir, job.Responses))
		if genErr != nil {
			return nil, genErr
		}
		return []string{path}, nil
	})
	rc.reportWritten(paths)
	if err != nil {
		return NewCommandError("survey", "extraction failed", err)
	}
	return nil
}

func surveyKinds() []string {
	kinds := make([]string, 0, len(survey.Extractions))
	for kind := range survey.Extractions {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	return kinds
}
