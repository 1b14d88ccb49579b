// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// slots.go - TA assignment slot records and loading.

package roster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

// SlotFields lists the TA assignment spreadsheet columns in order. The
// first line of the spreadsheet is a header and is skipped on read.
var SlotFields = []string{
	"course_section", "title", "credits",
	"enrollment_status", "enrollment_max", "enrollment_open",
	"crosslisted", "crn", "instructor", "when",
	"start_date", "end_date", "where",
	"section_and_when_relevant", "exams", "role", "hours", "ta",
	"conflicts", "notes", "history",
}

// Course numbers alphabetically above the threshold are reserved for
// placeholder duties (grading pools, floaters) and are masked in reports.
const (
	placeholderCourseThreshold = "PHYS99900"
	placeholderCourseLabel     = "PHYSXXXXX"
)

// Slot is one schedulable duty on a course section.
type Slot struct {
	Course  string // course part of the section id, e.g. "PHYS 17200"
	Section string // section number with any trailing "*" dropped
	Title   string
	Credits string

	EnrollmentStatus string
	EnrollmentMax    string
	EnrollmentOpen   string

	Crosslisted string
	CRN         string
	Instructor  string
	When        string
	StartDate   string
	EndDate     string
	Where       string

	ScheduleRelevant bool // section and meeting time apply to this duty
	Exams            string
	Role             string
	Hours            int
	TA               string

	Conflicts string
	Notes     string
	History   string
}

// CourseLabel returns the course number as shown in reports. Placeholder
// course numbers are masked.
func (s *Slot) CourseLabel() string {
	if s.Course > placeholderCourseThreshold {
		return placeholderCourseLabel
	}
	return s.Course
}

// SectionLabel returns the section number as shown in reports, empty when
// the section is not relevant to the duty.
func (s *Slot) SectionLabel() string {
	if !s.ScheduleRelevant {
		return ""
	}
	return s.Section
}

// Schedule returns the meeting time shown in reports: the compressed
// registrar timeslot when the schedule is relevant, otherwise the exam
// commitment, otherwise empty.
func (s *Slot) Schedule() string {
	if s.ScheduleRelevant {
		return CompressTimeslot(s.When)
	}
	if s.Exams != "" {
		return s.Exams
	}
	return ""
}

// Unassigned reports whether the slot still needs a TA decision. "X" means
// intentionally unstaffed and "." hides the slot, so neither counts.
func (s *Slot) Unassigned() bool { return s.TA == "" || s.TA == "?" }

// excludedTA reports whether a TA cell value is a placeholder rather than a
// reference to a roster entry.
func excludedTA(v string) bool {
	switch v {
	case "", "?", "X", ".":
		return true
	}
	return false
}

// suppressedTA reports whether a TA cell value hides the slot from the
// published reports.
func suppressedTA(v string) bool { return v == "." }

// ReadSlots loads the TA assignment spreadsheet. Rows without a course
// section are dropped. Blank hours count as zero, which happens routinely
// before the spreadsheet is fully populated.
func ReadSlots(path string) ([]Slot, error) {
	records, err := spreadsheet.ReadFile(path, spreadsheet.DefaultOptions(SlotFields...))
	if err != nil {
		return nil, fmt.Errorf("failed to read TA assignments: %w", err)
	}

	slots := make([]Slot, 0, len(records))
	for _, rec := range records {
		if rec["course_section"] == "" {
			continue
		}
		course, section := splitCourseSection(rec["course_section"])
		hours := 0
		if rec["hours"] != "" {
			h, convErr := strconv.Atoi(rec["hours"])
			if convErr != nil {
				return nil, fmt.Errorf("invalid hours %q for %s", rec["hours"], rec["course_section"])
			}
			hours = h
		}
		slots = append(slots, Slot{
			Course:           course,
			Section:          section,
			Title:            rec["title"],
			Credits:          rec["credits"],
			EnrollmentStatus: rec["enrollment_status"],
			EnrollmentMax:    rec["enrollment_max"],
			EnrollmentOpen:   rec["enrollment_open"],
			Crosslisted:      rec["crosslisted"],
			CRN:              rec["crn"],
			Instructor:       strings.ReplaceAll(rec["instructor"], "/", "&"),
			When:             rec["when"],
			StartDate:        rec["start_date"],
			EndDate:          rec["end_date"],
			Where:            rec["where"],
			ScheduleRelevant: rec["section_and_when_relevant"] == "X",
			Exams:            rec["exams"],
			Role:             rec["role"],
			Hours:            hours,
			TA:               rec["ta"],
			Conflicts:        rec["conflicts"],
			Notes:            rec["notes"],
			History:          rec["history"],
		})
	}
	return slots, nil
}

// splitCourseSection splits a registrar section id like "PHYS 17200-001"
// into course and section. A trailing "*" on the section, used to flag
// tentative sections, is dropped.
func splitCourseSection(cs string) (course, section string) {
	parts := strings.Split(cs, "-")
	course = parts[0]
	if len(parts) > 1 {
		section = strings.TrimRight(parts[1], "*")
	}
	return course, section
}
