// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// preferences.go - TA preference surveys (students and faculty).

package survey

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

// StudentPreferenceFields names the columns of the student preference
// export, in form order.
var StudentPreferenceFields = []string{
	"timestamp", "username",
	"last", "first",
	"preferred",
	"class-conflict",
	"sem-conflict",
	"other",
	"exclude",
}

// Multi-select checkboxes, exported as one ";"-delimited cell each.
var studentPreferenceCheckboxFields = []string{
	"preferred",
	"class-conflict",
	"sem-conflict",
}

// StudentPreferencesReport renders one block per student with the
// multi-select cells broken out one selection per line.
func StudentPreferencesReport(recs []spreadsheet.Record) []byte {
	recs = clone(DropTestSubmissions(recs, "last"))
	SortByRespondent(recs)

	var b bytes.Buffer
	for _, rec := range recs {
		spreadsheet.SplitCheckboxResponses(rec, studentPreferenceCheckboxFields, ";", "   ", "\n")
		fmt.Fprintf(&b,
			"%s, %s\nPreferred types:\n%sConflicts:\n%s%sOther: %s\nExclude: %s\n\n",
			rec["last"], rec["first"],
			rec["preferred"],
			rec["class-conflict"], rec["sem-conflict"],
			rec["other"], rec["exclude"])
	}
	return b.Bytes()
}

// FacultyPreferenceFields names the columns of the faculty preference
// export. The flag tags abbreviate the assignment-type grid columns:
// homework, written-work, and exam grading, help sessions, office hours,
// then the no-solutions (NS) variants, attending lectures, and other.
var FacultyPreferenceFields = []string{
	"timestamp", "username",
	"last", "first",
	"number", "name",
	"enrollment",
	"GH", "GW", "GE", "H", "O", "common",
	"GH-NS", "GE-NS", "A", "X", "uncommon",
	"other",
}

// Radio-button grid columns, nonempty when selected.
var facultyPreferenceFlagFields = []string{
	"GH", "GW", "GE", "H", "O",
	"GH-NS", "GE-NS", "A", "X",
}

// FacultyPreferencesReport renders one block per course request, led by a
// Submitted: line naming the respondents for the reminder e-mail.
func FacultyPreferencesReport(recs []spreadsheet.Record) []byte {
	recs = clone(DropTestSubmissions(recs, "last", "name"))
	SortByRespondent(recs)

	var b bytes.Buffer
	fmt.Fprintf(&b, "Submitted: %s\n\n", strings.Join(submitterNames(recs), ", "))
	for _, rec := range recs {
		spreadsheet.ConvertFieldsToFlags(rec, facultyPreferenceFlagFields, " ")
		fmt.Fprintf(&b,
			"%s, %s\nCourse: %s / %s (%s)\nCommon: %s%s%s%s%s\nNotes: %s\nUncommon: %s%s%s%s\nNotes: %s\nOther: %s\n\n",
			rec["last"], rec["first"],
			rec["number"], rec["name"], rec["enrollment"],
			rec["GH"], rec["GW"], rec["GE"], rec["H"], rec["O"],
			rec["common"],
			rec["GH-NS"], rec["GE-NS"], rec["A"], rec["X"],
			rec["uncommon"],
			rec["other"])
	}
	return b.Bytes()
}

// submitterNames returns the distinct respondent last names, title cased
// and sorted.
func submitterNames(recs []spreadsheet.Record) []string {
	caser := cases.Title(language.English)
	seen := make(map[string]bool, len(recs))
	var names []string
	for _, rec := range recs {
		name := caser.String(rec["last"])
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
