// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testFixture() ([]TA, []Slot) {
	roster := []TA{
		{Last: "Curie", First: "Marie", Year: "4", NetID: "mcurie", Quota: 3},
		{Last: "Dirac", First: "Paul", Year: "2", NetID: "pdirac", Quota: 3},
		{Last: "Fermi", First: "E", Year: "5", NetID: "efermi", Quota: 1},
		{Last: "Pauli", First: "W", Year: "1", NetID: "wpauli", Quota: 0},
	}
	slots := []Slot{
		{Course: "PHYS 17200", Section: "001", Title: "Modern Mechanics", Instructor: "Smith",
			CRN: "12345", When: "M W F - 11:30A - 12:20P", ScheduleRelevant: true,
			Role: "Recitation instructor", Hours: 2, TA: "Curie"},
		{Course: "PHYS 17200", Section: "002", Title: "Modern Mechanics", Instructor: "Smith",
			CRN: "12346", When: "T R - 1:30P - 2:45P", ScheduleRelevant: true,
			Role: "Grader", Hours: 1, TA: "?"},
		{Course: "PHYS 17200", Section: "003", Title: "Modern Mechanics", Instructor: "Smith",
			CRN: "12347", When: "TBD", ScheduleRelevant: true,
			Role: "Reserved", Hours: 1, TA: "."},
		{Course: "PHYS 27200", Section: "001", Title: "Electricity And Magnetism Honors", Instructor: "Jones & Lee",
			CRN: "22345", Exams: "final only",
			Role: "Exam grader", Hours: 1, TA: "Curie:Marie"},
		{Course: "PHYS 27200", Section: "002", Title: "Electricity And Magnetism Honors", Instructor: "Jones & Lee",
			CRN: "22346", When: "TBD", ScheduleRelevant: true,
			Role: "Unstaffed", Hours: 0, TA: "X"},
		{Course: "PHYSZZZ99", Title: "Grading pool", Instructor: "Staff",
			Role: "Pool grader", Hours: 2, TA: "Dirac"},
		{Course: "PHYSZZZ99", Title: "Grading pool", Instructor: "Staff",
			Role: "Pool grader", Hours: 2, TA: "Fermi"},
	}
	return roster, slots
}

func testInfo() ReportInfo {
	return ReportInfo{
		TermName: "Spring 2022",
		Version:  "2",
		Date:     time.Date(2022, time.January, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestCourseReport(t *testing.T) {
	tas, slots := testFixture()
	a, err := Build(tas, slots)
	require.NoError(t, err)

	body := string(CourseReport(a, testInfo(), false))
	lines := strings.Split(body, "\n")
	require.Len(t, lines, 16)

	require.Equal(t, "TA assignments Spring 2022 (by course)", lines[0])
	require.Equal(t, "Version 2, 01/14/2022", lines[1])
	require.Equal(t, "", lines[2])

	require.Equal(t, "PHYS 17200 / Modern Mechanics / Smith", lines[3])
	require.Equal(t,
		fmt.Sprintf("   %-9s %-2s %-24s %2d   %-28s   %s",
			"PHYS 17200", "001", "Recitation instructor", 2, "Curie, Marie (4)", "MWF 11:30A-12:20P"),
		lines[4])
	require.Equal(t,
		fmt.Sprintf("   %-9s %-2s %-24s %2d   %-28s   %s",
			"PHYS 17200", "002", "Grader", 1, "????????", "TR 1:30P-2:45P"),
		lines[5])
	require.Equal(t, "", lines[6])

	// The hidden "." slot is suppressed entirely.
	require.NotContains(t, body, "Reserved")

	require.Equal(t, "PHYS 27200 / Electricity And Magnetism Honors / Jones & Lee", lines[7])
	require.Equal(t,
		fmt.Sprintf("   %-9s %-2s %-24s %2d   %-28s   %s",
			"PHYS 27200", "", "Exam grader", 1, "Curie, Marie (4)", "final only"),
		lines[8])
	require.Equal(t,
		fmt.Sprintf("   %-9s %-2s %-24s %2d   %-28s   %s",
			"PHYS 27200", "002", "Unstaffed", 0, "", "TBD"),
		lines[9])

	require.Equal(t, "PHYSXXXXX / Grading pool / Staff", lines[11])
	require.Equal(t,
		fmt.Sprintf("   %-9s %-2s %-24s %2d   %-28s   %s",
			"PHYSXXXXX", "", "Pool grader", 2, "Dirac, Paul (2)", ""),
		lines[12])
	require.Equal(t,
		fmt.Sprintf("   %-9s %-2s %-24s %2d   %-28s   %s",
			"PHYSXXXXX", "", "Pool grader", 2, "Fermi, E (5)", ""),
		lines[13])
}

func TestCourseReportNetIDs(t *testing.T) {
	tas, slots := testFixture()
	a, err := Build(tas, slots)
	require.NoError(t, err)

	body := string(CourseReport(a, testInfo(), true))

	require.Contains(t, body, "  [12345 / mcurie  ]")
	// Placeholder slots carry the CRN with a blank netid.
	require.Contains(t, body, "  [12346 /          ]")
}

func TestTAReport(t *testing.T) {
	tas, slots := testFixture()
	a, err := Build(tas, slots)
	require.NoError(t, err)

	body := string(TAReport(a, testInfo()))
	lines := strings.Split(body, "\n")
	require.Len(t, lines, 14)

	require.Equal(t, "TA assignments Spring 2022 (by TA)", lines[0])
	require.Equal(t, "Version 2, 01/14/2022", lines[1])

	require.Equal(t, fmt.Sprintf("%-28s", "Curie, Marie (4)"), lines[3])
	require.Equal(t,
		fmt.Sprintf("   %-9s %-2s %-25s   %-15s   %-21s %2d   %s",
			"PHYS 17200", "001", "Modern Mechanics", "Smith", "Recitation instructor", 2, "MWF 11:30A-12:20P"),
		lines[4])
	require.Equal(t,
		fmt.Sprintf("   %-9s %-2s %-25s   %-15s   %-21s %2d   %s",
			"PHYS 27200", "", "Electricity And Magnetism", "Jones & Lee", "Exam grader", 1, "final only"),
		lines[5])
	require.Equal(t, "", lines[6])

	require.Equal(t, fmt.Sprintf("%-28s", "Dirac, Paul (2)"), lines[7])
	require.Equal(t,
		fmt.Sprintf("   %-9s %-2s %-25s   %-15s   %-21s %2d   %s",
			"PHYSXXXXX", "", "Grading pool", "Staff", "Pool grader", 2, ""),
		lines[8])

	require.Equal(t, fmt.Sprintf("%-28s", "Fermi, E (5)"), lines[10])

	// Pauli has neither quota nor assignments and is omitted.
	require.NotContains(t, body, "Pauli")
}

func TestHoursReport(t *testing.T) {
	tas, slots := testFixture()
	a, err := Build(tas, slots)
	require.NoError(t, err)

	body := string(HoursReport(a, testInfo()))
	lines := strings.Split(body, "\n")
	require.Len(t, lines, 9)

	require.Equal(t, fmt.Sprintf("%-28s %2d / %2d %-3s", "Curie, Marie (4)", 3, 3, "="), lines[3])
	require.Equal(t, fmt.Sprintf("%-28s %2d / %2d %-3s", "Dirac, Paul (2)", 2, 3, "."), lines[4])
	require.Equal(t, fmt.Sprintf("%-28s %2d / %2d %-3s", "Fermi, E (5)", 2, 1, "***"), lines[5])
	require.Equal(t, "", lines[6])
	require.Equal(t, "    7 assigned / 7 available", lines[7])

	require.NotContains(t, body, "Pauli")
}

func TestDumps(t *testing.T) {
	tas, slots := testFixture()

	rosterDump := string(RosterDump(tas))
	require.Contains(t, rosterDump,
		fmt.Sprintf("%-20s %-20s %2d %-20s", "Curie", "Marie", 3, "Curie:Marie"))

	slotsDump := string(SlotsDump(slots))
	require.Contains(t, slotsDump,
		fmt.Sprintf("%-9s %-2s %-25s %-15s %-20s %-24s %2d %s %s %s",
			"PHYSXXXXX", "", "Grading pool", "Staff", "", "Pool grader", 2, "Dirac", "", ""))
	// Dumps show the raw registrar timeslot, truncated to its column.
	require.Contains(t, slotsDump, "M W F - 11:30A - 12:")
	// All rows appear in the dump, including hidden and unstaffed slots.
	require.Contains(t, slotsDump, "Reserved")
	require.Equal(t, len(slots), strings.Count(slotsDump, "\n"))
}

func TestOutputName(t *testing.T) {
	require.Equal(t, "assignments-22a-v2-course.txt", OutputName("22a", "2", CategoryCourse))
	require.Equal(t, "assignments-ta-netid.txt", OutputName("22a", "", CategoryTANetID))
}

func TestGenerate(t *testing.T) {
	tas, slots := testFixture()
	dir := t.TempDir()

	paths, err := Generate(dir, "22a", "2", testInfo(), tas, slots)
	require.NoError(t, err)
	require.Len(t, paths, 6)

	for _, category := range []string{
		CategoryRosterDump, CategorySlotsDump,
		CategoryCourse, CategoryTA, CategoryTANetID, CategoryHours,
	} {
		path := filepath.Join(dir, OutputName("22a", "2", category))
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr, "missing report %s", category)
		require.NotEmpty(t, data)
	}
}

func TestGenerateBadReference(t *testing.T) {
	tas, slots := testFixture()
	slots = append(slots, Slot{Course: "PHYS 17200", Section: "004", TA: "Feynman", Hours: 1})
	dir := t.TempDir()

	paths, err := Generate(dir, "22a", "2", testInfo(), tas, slots)
	require.Error(t, err)
	// The input dumps are still written for debugging.
	require.Len(t, paths, 2)
}
