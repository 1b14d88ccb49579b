// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// requests.go - faculty course-request survey for the course offering
// committee.

package survey

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jeranaias/ptatools/internal/report"
	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

// RequestFields returns the course-request export columns: the fixed
// leading block, one column per offered course, and a trailing free
// request column. The course list changes every term, so it comes from
// the job spec.
func RequestFields(courses []string) []string {
	fields := []string{"timestamp", "first", "last", "continue", "agreement", "requests"}
	fields = append(fields, courses...)
	return append(fields, "other")
}

// convertCourses rewrites each course cell on a cloned table as an
// indented "course: response" line, pruning courses the respondent
// skipped.
func convertCourses(recs []spreadsheet.Record, courses []string) []spreadsheet.Record {
	recs = clone(recs)
	for _, rec := range recs {
		spreadsheet.ConvertFieldsToTaggedLines(rec, courses, "    ", "\n", true)
	}
	return recs
}

// RequestsByFacultyReport renders one block per respondent, ordered by
// case-insensitive name. A respondent submitting twice keeps only the
// later submission.
func RequestsByFacultyReport(termName string, recs []spreadsheet.Record, courses []string) []byte {
	recs = convertCourses(recs, courses)

	var b bytes.Buffer
	fmt.Fprintf(&b, "Teaching requests by faculty member\n%s\n\n", termName)

	blocks := make(map[string]string, len(recs))
	for _, rec := range recs {
		var prefs strings.Builder
		for _, course := range courses {
			prefs.WriteString(rec[course])
		}
		blocks[strings.ToUpper(respondentName(rec))] = fmt.Sprintf(
			"Name: %s\nDidn't ask to change? %s\nAgreement? %s\nRequests? %s\nPreferences:\n%sOther: %s\n",
			respondentName(rec),
			rec["continue"], rec["agreement"], rec["requests"],
			prefs.String(), rec["other"])
	}

	keys := make([]string, 0, len(blocks))
	for key := range blocks {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteString(blocks[key])
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// RequestsByCourseReport renders one block per offered course listing who
// asked for it and at what rank. Ranks compare as strings, matching the
// single-digit rankings the form collects.
func RequestsByCourseReport(termName string, recs []spreadsheet.Record, courses []string) []byte {
	recs = convertCourses(recs, courses)

	var b bytes.Buffer
	fmt.Fprintf(&b, "Teaching requests by course\n%s\n\n", termName)

	sorted := make([]string, len(courses))
	copy(sorted, courses)
	sort.Strings(sorted)

	type prefKey struct {
		ranking string
		name    string
	}
	for _, course := range sorted {
		lines := make(map[prefKey]string)
		for _, rec := range recs {
			if rec[course] == "" {
				continue
			}
			// The cell is already a tagged line, so the rank the
			// respondent entered is its last word.
			words := strings.Fields(rec[course])
			ranking := words[len(words)-1]
			name := respondentName(rec)
			key := prefKey{ranking: ranking, name: strings.ToUpper(name)}
			lines[key] = fmt.Sprintf("    %s: %s\n", name, ranking)
		}

		keys := make([]prefKey, 0, len(lines))
		for key := range lines {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].ranking != keys[j].ranking {
				return keys[i].ranking < keys[j].ranking
			}
			return keys[i].name < keys[j].name
		})

		fmt.Fprintf(&b, "%s\n", course)
		for _, key := range keys {
			b.WriteString(lines[key])
		}
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// RequestsGenerate reads the course-request export and writes both
// request reports into dir, returning the paths written.
func RequestsGenerate(dir, termName, termTag, responsePath string, courses []string) ([]string, error) {
	recs, err := Load(responsePath, RequestFields(courses))
	if err != nil {
		return nil, err
	}

	byFaculty := filepath.Join(dir, fmt.Sprintf("requests-by-faculty-%s.txt", termTag))
	if err := report.Save(byFaculty, RequestsByFacultyReport(termName, recs, courses)); err != nil {
		return nil, err
	}

	byCourse := filepath.Join(dir, fmt.Sprintf("requests-by-course-%s.txt", termTag))
	if err := report.Save(byCourse, RequestsByCourseReport(termName, recs, courses)); err != nil {
		return []string{byFaculty}, err
	}
	return []string{byFaculty, byCourse}, nil
}
