// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// feedback.go - end-of-term TA feedback surveys (students and faculty).

package survey

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

// StudentFeedbackFields names the columns of the student feedback export,
// one per duty the form asks about.
var StudentFeedbackFields = []string{
	"timestamp", "username",
	"last", "first",
	"name", "number",
	"Lab-prep", "Lab-contact", "Lab-grading",
	"Tut-prep", "Tut-contact", "Tut-grading",
	"HW-grading", "Written-grading", "Exam-grading", "Proctoring", "Office-help",
	"HW-grading-NS", "Exam-grading-NS", "Proctoring-NS", "Attending", "Other",
	"comments",
}

// Free-text duty columns, printed as "duty: text" and pruned when empty.
var studentFeedbackTaggedFields = []string{
	"Lab-prep", "Lab-contact", "Lab-grading",
	"Tut-prep", "Tut-contact", "Tut-grading",
	"HW-grading", "Written-grading", "Exam-grading", "Proctoring", "Office-help",
	"HW-grading-NS", "Exam-grading-NS", "Proctoring-NS", "Attending", "Other",
}

// StudentFeedbackReport renders one block per submission, keeping only the
// duties the TA reported on.
func StudentFeedbackReport(recs []spreadsheet.Record) []byte {
	recs = clone(DropTestSubmissions(recs, "last"))
	SortByRespondent(recs, "timestamp")

	var b bytes.Buffer
	for _, rec := range recs {
		spreadsheet.ConvertFieldsToTaggedLines(rec, studentFeedbackTaggedFields, "", "\n", true)
		fmt.Fprintf(&b, "%s, %s\nCourse: %s\n", rec["last"], rec["first"], rec["number"])
		for _, field := range studentFeedbackTaggedFields {
			b.WriteString(rec[field])
		}
		fmt.Fprintf(&b, "Comments: %s\n\n", rec["comments"])
	}
	return b.Bytes()
}

// FacultyFeedbackFields names the columns of the faculty feedback export.
var FacultyFeedbackFields = []string{
	"timestamp", "username",
	"number", "name",
	"last", "first",
	"role", "special",
	"comments",
}

// FacultyFeedbackReport renders one block per evaluation. A multi-valued
// special-identification cell is cut at its first comma.
func FacultyFeedbackReport(recs []spreadsheet.Record) []byte {
	recs = DropTestSubmissions(recs, "last")
	SortByRespondent(recs, "number", "timestamp")

	var b bytes.Buffer
	for _, rec := range recs {
		special, _, _ := strings.Cut(rec["special"], ",")
		fmt.Fprintf(&b,
			"%s, %s\nCourse: PHYS %s / %s / %s\nRole: %s\nSpecial: %s\nComments: %s\n\n",
			rec["last"], rec["first"],
			rec["number"], rec["name"], rec["username"],
			rec["role"], special, rec["comments"])
	}
	return b.Bytes()
}
