// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// roster.go - TA roster records and loading.

package roster

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

// RosterFields lists the TA roster spreadsheet columns in order. The roster
// export carries no header line.
var RosterFields = []string{
	"last", "first", "year", "netid", "advisor", "area", "status", "quota", "notes",
}

// TA is one row of the TA roster.
type TA struct {
	Last    string
	First   string
	Year    string
	NetID   string
	Advisor string
	Area    string
	Status  string // funding status for the term, e.g. "TA" or "RA"
	Quota   int    // teaching hours budgeted for the term
	Notes   string
}

// Key returns the roster key used to reference the TA from the assignment
// spreadsheet, e.g. "Curie:Marie".
func (t *TA) Key() string { return t.Last + ":" + t.First }

// FullName returns the display name used in reports, e.g. "Curie, Marie (4)".
func (t *TA) FullName() string {
	return fmt.Sprintf("%s, %s (%s)", t.Last, t.First, t.Year)
}

// ReadRoster loads the TA roster spreadsheet. Rows without a last name are
// dropped; the spreadsheet uses them as spacers between cohorts. A blank
// quota counts as zero so a half-populated roster still loads.
func ReadRoster(path string) ([]TA, error) {
	records, err := spreadsheet.ReadFile(path, spreadsheet.Options{Fields: RosterFields, RestVal: ""})
	if err != nil {
		return nil, fmt.Errorf("failed to read TA roster: %w", err)
	}

	tas := make([]TA, 0, len(records))
	for _, rec := range records {
		if rec["last"] == "" {
			continue
		}
		quota := 0
		if rec["quota"] != "" {
			q, convErr := strconv.Atoi(rec["quota"])
			if convErr != nil {
				return nil, fmt.Errorf("invalid quota %q for TA %s:%s", rec["quota"], rec["last"], rec["first"])
			}
			quota = q
		}
		tas = append(tas, TA{
			Last:    rec["last"],
			First:   rec["first"],
			Year:    rec["year"],
			NetID:   rec["netid"],
			Advisor: rec["advisor"],
			Area:    rec["area"],
			Status:  rec["status"],
			Quota:   quota,
			Notes:   rec["notes"],
		})
	}
	return tas, nil
}
