// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// scheduling.go - availability survey to a respondent-by-date grid.

package survey

import (
	"bytes"
	"fmt"

	"github.com/jeranaias/ptatools/internal/report"
	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

// SchedulingOptions lays out the availability grid.
type SchedulingOptions struct {
	// Dates are the survey's availability columns, in form order. The
	// labels double as the grid column headers.
	Dates []string

	// ResponseCodes maps response text to a short grid code. Responses
	// without a mapping pass through unchanged.
	ResponseCodes map[string]string

	NameWidth int // respondent column width, 20 when zero
	DateWidth int // date column width, 6 when zero
}

// SchedulingFields returns the export columns for the availability
// survey, which carries one column per meeting date.
func SchedulingFields(dates []string) []string {
	fields := []string{"timestamp", "username", "last", "first"}
	fields = append(fields, dates...)
	return append(fields, "comments")
}

// SchedulingReport renders the respondent-by-date grid with any comment
// trailing the row.
func SchedulingReport(recs []spreadsheet.Record, opts SchedulingOptions) []byte {
	if opts.NameWidth == 0 {
		opts.NameWidth = 20
	}
	if opts.DateWidth == 0 {
		opts.DateWidth = 6
	}
	recs = DropTestSubmissions(recs, "last")
	SortByRespondent(recs)

	var b bytes.Buffer
	fmt.Fprintf(&b, "%-*s ", opts.NameWidth, "")
	for _, date := range opts.Dates {
		fmt.Fprintf(&b, "%-*s", opts.DateWidth, date)
	}
	b.WriteByte('\n')

	for _, rec := range recs {
		fmt.Fprintf(&b, "%-*s ", opts.NameWidth, respondentName(rec))
		for _, date := range opts.Dates {
			code, ok := opts.ResponseCodes[rec[date]]
			if !ok {
				code = rec[date]
			}
			fmt.Fprintf(&b, "%-*s", opts.DateWidth, code)
		}
		b.WriteString(rec["comments"])
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// SchedulingGenerate reads the availability export and writes the grid
// report to reportPath.
func SchedulingGenerate(responsePath, reportPath string, opts SchedulingOptions) error {
	recs, err := Load(responsePath, SchedulingFields(opts.Dates))
	if err != nil {
		return err
	}
	return report.Save(reportPath, SchedulingReport(recs, opts))
}
