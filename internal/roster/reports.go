// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// reports.go - Fixed-width assignment reports and input dumps.

package roster

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jeranaias/ptatools/internal/report"
)

// Report column widths.
const (
	titleWidth      = 25
	instructorWidth = 15
	nameWidth       = 28
	roleWidth       = 24
	taRoleWidth     = 21
)

// Report categories, used in output filenames.
const (
	CategoryCourse     = "course"
	CategoryTA         = "ta"
	CategoryTANetID    = "ta-netid"
	CategoryHours      = "hours"
	CategoryRosterDump = "roster-dump"
	CategorySlotsDump  = "slots-dump"
)

// OutputName returns the filename for a report category. Versioned runs
// carry the term code and version so successive drafts can be diffed.
func OutputName(term, version, category string) string {
	if version == "" {
		return fmt.Sprintf("assignments-%s.txt", category)
	}
	return fmt.Sprintf("assignments-%s-v%s-%s.txt", term, version, category)
}

// ReportInfo carries the banner fields stamped on every report.
type ReportInfo struct {
	TermName string // e.g. "Spring 2022"
	Version  string // draft version label, "0" for unversioned runs
	Date     time.Time
}

func (info ReportInfo) header(view string) string {
	h := report.Header{
		Title:   fmt.Sprintf("TA assignments %s (%s)", info.TermName, view),
		Version: info.Version,
		Date:    info.Date,
	}
	return h.String()
}

// ============================================================================
// Reports
// ============================================================================

// CourseReport renders the assignments grouped by course. With showNetIDs
// each entry also carries the section CRN and the TA's netid, in the form
// handed to the registrar.
func CourseReport(a *Assignments, info ReportInfo, showNetIDs bool) []byte {
	var b bytes.Buffer
	b.WriteString(info.header("by course"))

	for _, course := range a.Courses {
		slots := a.ByCourse[course]

		// First slot of the group carries the general course info.
		first := &slots[0]
		fmt.Fprintf(&b, "%s / %s / %s\n", first.CourseLabel(), first.Title, first.Instructor)

		for i := range slots {
			slot := &slots[i]
			if suppressedTA(slot.TA) {
				continue
			}

			name := ""
			netid := ""
			if !excludedTA(slot.TA) {
				if ta, ok := a.Index.Lookup(slot.TA); ok {
					name = ta.FullName()
					netid = ta.NetID
				}
			} else if slot.TA == "?" {
				name = "????????"
			}

			netidField := ""
			if showNetIDs {
				netidField = fmt.Sprintf("  [%-5s / %-8s]", slot.CRN, netid)
			}

			fmt.Fprintf(&b, "   %s %s %s %2d   %s%s   %s\n",
				report.Pad(slot.CourseLabel(), 9), report.Pad(slot.SectionLabel(), 2),
				report.Cell(slot.Role, roleWidth), slot.Hours,
				report.Pad(name, nameWidth), netidField, slot.Schedule())
		}
		b.WriteString("\n")
	}
	return b.Bytes()
}

// TAReport renders each TA's assigned slots. TAs with no assigned slots are
// omitted, even when they already carry hours from zero-hour duties.
func TAReport(a *Assignments, info ReportInfo) []byte {
	return taReport(a, info, false)
}

// HoursReport renders each TA's assigned hours against quota, with markers
// for full ("="), one-short (".") and over-quota ("***") schedules. TAs
// with no quota and no assignments are omitted.
func HoursReport(a *Assignments, info ReportInfo) []byte {
	return taReport(a, info, true)
}

func taReport(a *Assignments, info ReportInfo, quotaOnly bool) []byte {
	var b bytes.Buffer
	b.WriteString(info.header("by TA"))

	totalHours := 0
	totalQuota := 0
	for _, key := range a.Index.Keys {
		ta, _ := a.Index.Lookup(key)
		hours := a.Hours[key]
		assigned := len(a.ByTA[key]) > 0
		totalHours += hours
		totalQuota += ta.Quota

		marker := ""
		if hours == ta.Quota {
			marker = "="
		}
		if hours == ta.Quota-1 {
			marker = "."
		} else if hours > ta.Quota {
			marker = "***"
		}

		if quotaOnly {
			if ta.Quota == 0 && !assigned {
				continue
			}
			fmt.Fprintf(&b, "%s %2d / %2d %s\n",
				report.Pad(ta.FullName(), nameWidth), hours, ta.Quota, report.Pad(marker, 3))
			continue
		}

		if !assigned {
			continue
		}
		fmt.Fprintf(&b, "%s\n", report.Pad(ta.FullName(), nameWidth))
		for i := range a.ByTA[key] {
			slot := &a.ByTA[key][i]
			fmt.Fprintf(&b, "   %s %s %s   %s   %s %2d   %s\n",
				report.Pad(slot.CourseLabel(), 9), report.Pad(slot.SectionLabel(), 2),
				report.Cell(slot.Title, titleWidth), report.Cell(slot.Instructor, instructorWidth),
				report.Cell(slot.Role, taRoleWidth), slot.Hours, slot.Schedule())
		}
		b.WriteString("\n")
	}

	if quotaOnly {
		fmt.Fprintf(&b, "\n    %d assigned / %d available\n", totalHours, totalQuota)
	}
	return b.Bytes()
}

// ============================================================================
// Input dumps
// ============================================================================

// RosterDump lists the parsed roster rows with their lookup keys, for
// checking what the spreadsheet actually loaded as.
func RosterDump(roster []TA) []byte {
	var b bytes.Buffer
	for i := range roster {
		ta := &roster[i]
		fmt.Fprintf(&b, "%s %s %2d %s\n",
			report.Cell(ta.Last, 20), report.Cell(ta.First, 20), ta.Quota, report.Pad(ta.Key(), 20))
	}
	return b.Bytes()
}

// SlotsDump lists the parsed slot rows.
func SlotsDump(slots []Slot) []byte {
	var b bytes.Buffer
	for i := range slots {
		s := &slots[i]
		fmt.Fprintf(&b, "%s %s %s %s %s %s %2d %s %s %s\n",
			report.Pad(s.CourseLabel(), 9), report.Pad(s.Section, 2),
			report.Cell(s.Title, titleWidth), report.Cell(s.Instructor, instructorWidth),
			report.Cell(s.When, 20), report.Cell(s.Role, roleWidth),
			s.Hours, s.TA, s.Notes, s.History)
	}
	return b.Bytes()
}

// ============================================================================
// Generation
// ============================================================================

// Generate writes the input dumps, builds the assignment database, and
// writes the four reports into dir. The dumps land before indexing so they
// are available for debugging when a bad TA reference aborts the run.
// Returns the paths written, which is partial on error.
func Generate(dir, term, version string, info ReportInfo, tas []TA, slots []Slot) ([]string, error) {
	var paths []string
	write := func(category string, body []byte) error {
		path := filepath.Join(dir, OutputName(term, version, category))
		if err := report.Save(path, body); err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	}

	if err := write(CategoryRosterDump, RosterDump(tas)); err != nil {
		return paths, err
	}
	if err := write(CategorySlotsDump, SlotsDump(slots)); err != nil {
		return paths, err
	}

	a, err := Build(tas, slots)
	if err != nil {
		return paths, err
	}

	if err := write(CategoryCourse, CourseReport(a, info, false)); err != nil {
		return paths, err
	}
	if err := write(CategoryTA, TAReport(a, info)); err != nil {
		return paths, err
	}
	if err := write(CategoryTANetID, CourseReport(a, info, true)); err != nil {
		return paths, err
	}
	if err := write(CategoryHours, HoursReport(a, info)); err != nil {
		return paths, err
	}
	return paths, nil
}
