// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// diffrun.go - Version-to-version diffs of the assignment reports.

package diffrun

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jeranaias/ptatools/internal/roster"
	"github.com/jeranaias/ptatools/internal/util"
)

// Whole-file context: 999 lines exceeds any report, so every diff shows
// the complete report with change markers.
const contextLines = 999

// Categories lists the report categories diffed, in run order.
var Categories = []string{roster.CategoryTA, roster.CategoryCourse}

// OutputName returns the diff filename for a category.
func OutputName(versionA, versionB, category string) string {
	return "diff-v" + versionA + "-v" + versionB + "-" + category + ".txt"
}

// Result describes the outcome for one category.
type Result struct {
	Category string
	FileA    string // input report filename, version A
	FileB    string // input report filename, version B
	Output   string // diff filename
	Written  bool
	Changed  bool // diff body is non-empty
	Err      error
}

// Run diffs each report category between two versions in dir. Categories
// are independent: a failed category is reported in its Result and joined
// into the returned error, but never stops the remaining categories.
func Run(dir, term, versionA, versionB string) ([]Result, error) {
	results := make([]Result, 0, len(Categories))
	var errs []error
	for _, category := range Categories {
		res := runCategory(dir, term, versionA, versionB, category)
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

func runCategory(dir, term, versionA, versionB, category string) Result {
	res := Result{
		Category: category,
		FileA:    roster.OutputName(term, versionA, category),
		FileB:    roster.OutputName(term, versionB, category),
		Output:   OutputName(versionA, versionB, category),
	}

	body, err := Diff(filepath.Join(dir, res.FileA), filepath.Join(dir, res.FileB), res.FileA, res.FileB)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", category, err)
		return res
	}
	res.Changed = len(body) > 0

	if err := util.AtomicWriteFile(filepath.Join(dir, res.Output), body, 0o644); err != nil {
		res.Err = fmt.Errorf("%s: failed to write %s: %w", category, res.Output, err)
		return res
	}
	res.Written = true
	return res
}

// Diff returns the unified diff between two files, labeled with the given
// names in the --- and +++ headers. Identical files yield an empty diff.
func Diff(pathA, pathB, labelA, labelB string) ([]byte, error) {
	a, err := os.ReadFile(pathA)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		return nil, err
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: labelA,
		ToFile:   labelB,
		Context:  contextLines,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s against %s: %w", labelA, labelB, err)
	}
	return []byte(text), nil
}
