// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package roster turns the TA roster and TA assignment spreadsheets into
// the fixed-width assignment reports.
//
// # Key Types
//
//   - TA: one row of the TA roster, keyed "Last:First"
//   - Slot: one schedulable duty on a course section
//   - Index: lookup from assignment-cell values to roster entries
//   - Assignments: the fully indexed assignment database
//   - ReportInfo: banner fields stamped on every generated report
//
// # Usage
//
//	tas, _ := roster.ReadRoster("ta-roster.csv")
//	slots, _ := roster.ReadSlots("ta-assignments.csv")
//	db, err := roster.Build(tas, slots)
//	if err != nil {
//		return err
//	}
//	body := roster.CourseReport(db, info, false)
//
// The TA column of the assignment spreadsheet may carry placeholder values
// instead of a TA name: "" and "?" mark slots still waiting on a decision,
// "X" marks slots intentionally left unstaffed, and "." marks slots hidden
// from the published reports. Placeholders never resolve to roster entries
// and never contribute assigned hours.
package roster
