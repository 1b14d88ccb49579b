// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// survey.go - shared survey loading, filtering, and ordering.

package survey

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jeranaias/ptatools/internal/report"
	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

// Load reads a survey export whose columns map positionally onto fields,
// dropping the single header row.
func Load(path string, fields []string) ([]spreadsheet.Record, error) {
	return spreadsheet.ReadFile(path, spreadsheet.DefaultOptions(fields...))
}

// DropTestSubmissions removes rows submitted while testing the form,
// identified by the value TEST in any of the named fields.
func DropTestSubmissions(recs []spreadsheet.Record, keys ...string) []spreadsheet.Record {
	test := map[string]bool{"TEST": true}
	for _, key := range keys {
		recs = spreadsheet.FilterByField(recs, key, test, true)
	}
	return recs
}

// SortByRespondent orders rows by case-insensitive (last, first), then by
// the tiebreak fields in their raw form. Feedback surveys tiebreak on the
// submission timestamp so repeat submissions keep their order.
func SortByRespondent(recs []spreadsheet.Record, tiebreaks ...string) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if al, bl := strings.ToUpper(a["last"]), strings.ToUpper(b["last"]); al != bl {
			return al < bl
		}
		if af, bf := strings.ToUpper(a["first"]), strings.ToUpper(b["first"]); af != bf {
			return af < bf
		}
		for _, key := range tiebreaks {
			if a[key] != b[key] {
				return a[key] < b[key]
			}
		}
		return false
	})
}

// clone deep-copies records so a report's cell reshaping stays local to
// that report.
func clone(recs []spreadsheet.Record) []spreadsheet.Record {
	out := make([]spreadsheet.Record, len(recs))
	for i, rec := range recs {
		c := make(spreadsheet.Record, len(rec))
		for k, v := range rec {
			c[k] = v
		}
		out[i] = c
	}
	return out
}

func respondentName(rec spreadsheet.Record) string {
	return rec["last"] + ", " + rec["first"]
}

// ============================================================================
// TA survey registry
// ============================================================================

// Kind selects one of the TA survey extractions.
type Kind string

const (
	StudentPreferences Kind = "student-prefs"
	FacultyPreferences Kind = "faculty-prefs"
	StudentFeedback    Kind = "student-feedback"
	FacultyFeedback    Kind = "faculty-feedback"
)

// Extraction describes one TA survey: its export columns, its report
// renderer, and the stem of the report filename.
type Extraction struct {
	Kind   Kind
	Fields []string
	Report func([]spreadsheet.Record) []byte
	Stem   string
}

// Extractions maps survey kinds to their extraction.
var Extractions = map[Kind]Extraction{
	StudentPreferences: {
		Kind:   StudentPreferences,
		Fields: StudentPreferenceFields,
		Report: StudentPreferencesReport,
		Stem:   "ta-student-preferences",
	},
	FacultyPreferences: {
		Kind:   FacultyPreferences,
		Fields: FacultyPreferenceFields,
		Report: FacultyPreferencesReport,
		Stem:   "ta-faculty-preferences",
	},
	StudentFeedback: {
		Kind:   StudentFeedback,
		Fields: StudentFeedbackFields,
		Report: StudentFeedbackReport,
		Stem:   "ta-student-feedback",
	},
	FacultyFeedback: {
		Kind:   FacultyFeedback,
		Fields: FacultyFeedbackFields,
		Report: FacultyFeedbackReport,
		Stem:   "ta-faculty-feedback",
	},
}

// OutputName returns the report filename for a term code.
func (e Extraction) OutputName(term string) string {
	return fmt.Sprintf("%s-%s.txt", e.Stem, term)
}

// Generate reads the responses export and writes the extraction's report
// into dir, returning the path written.
func (e Extraction) Generate(dir, term, responsePath string) (string, error) {
	recs, err := Load(responsePath, e.Fields)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, e.OutputName(term))
	if err := report.Save(path, e.Report(recs)); err != nil {
		return "", err
	}
	return path, nil
}
