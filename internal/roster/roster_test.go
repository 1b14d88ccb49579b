// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestReadRoster(t *testing.T) {
	content := "Curie,Marie,4,mcurie,Prof A,AMO,TA,3,\n" +
		",,,,,,,,\n" +
		"Dirac,Paul,2,pdirac,Prof B,Theory,TA,,\n"
	path := writeTempCSV(t, "ta-roster.csv", content)

	tas, err := ReadRoster(path)
	if err != nil {
		t.Fatalf("ReadRoster() error = %v", err)
	}
	if len(tas) != 2 {
		t.Fatalf("ReadRoster() returned %d TAs, want 2 (spacer row dropped)", len(tas))
	}

	if tas[0].Key() != "Curie:Marie" {
		t.Errorf("Key() = %q, want %q", tas[0].Key(), "Curie:Marie")
	}
	if tas[0].Quota != 3 {
		t.Errorf("Quota = %d, want 3", tas[0].Quota)
	}
	if tas[0].NetID != "mcurie" {
		t.Errorf("NetID = %q, want %q", tas[0].NetID, "mcurie")
	}
	if tas[1].Quota != 0 {
		t.Errorf("blank quota = %d, want 0", tas[1].Quota)
	}
	if got := tas[0].FullName(); got != "Curie, Marie (4)" {
		t.Errorf("FullName() = %q, want %q", got, "Curie, Marie (4)")
	}
}

func TestReadRosterBadQuota(t *testing.T) {
	path := writeTempCSV(t, "ta-roster.csv", "Bad,Row,1,brow,Prof,Area,TA,three,\n")

	if _, err := ReadRoster(path); err == nil {
		t.Fatal("ReadRoster() expected error for non-numeric quota")
	}
}

func TestReadSlots(t *testing.T) {
	content := "Section,Title,Credits,Status,Max,Open,Cross,CRN,Instructor,When,Start,End,Where,Rel,Exams,Role,Hours,TA,Conflicts,Notes,History\n" +
		"PHYS 17200-001,Modern Mechanics,4,A,100,5,,12345,Smith / Jones,M W F - 11:30A - 12:20P,,,,X,,Recitation instructor,2,Curie,,,\n" +
		"PHYS 17200-002*,Modern Mechanics,4,A,100,5,,12346,Smith,,,,,,final only,Exam grader,,?,,,\n" +
		",,,,,,,,,,,,,,,,,,,,\n"
	path := writeTempCSV(t, "ta-assignments.csv", content)

	slots, err := ReadSlots(path)
	if err != nil {
		t.Fatalf("ReadSlots() error = %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("ReadSlots() returned %d slots, want 2 (blank section row dropped)", len(slots))
	}

	first := slots[0]
	if first.Course != "PHYS 17200" || first.Section != "001" {
		t.Errorf("course/section = %q/%q, want %q/%q", first.Course, first.Section, "PHYS 17200", "001")
	}
	if first.Instructor != "Smith & Jones" {
		t.Errorf("Instructor = %q, want %q", first.Instructor, "Smith & Jones")
	}
	if !first.ScheduleRelevant {
		t.Error("ScheduleRelevant = false, want true for X marker")
	}
	if first.Hours != 2 {
		t.Errorf("Hours = %d, want 2", first.Hours)
	}

	second := slots[1]
	if second.Section != "002" {
		t.Errorf("tentative section = %q, want %q (trailing * dropped)", second.Section, "002")
	}
	if second.ScheduleRelevant {
		t.Error("ScheduleRelevant = true, want false for blank marker")
	}
	if second.Hours != 0 {
		t.Errorf("blank hours = %d, want 0", second.Hours)
	}
	if second.TA != "?" {
		t.Errorf("TA = %q, want %q", second.TA, "?")
	}
}

func TestSlotLabels(t *testing.T) {
	tests := []struct {
		name       string
		slot       Slot
		course     string
		section    string
		schedule   string
		unassigned bool
	}{
		{
			name:       "regular section",
			slot:       Slot{Course: "PHYS 17200", Section: "001", When: "M W F - 11:30A - 12:20P", ScheduleRelevant: true, TA: "Curie"},
			course:     "PHYS 17200",
			section:    "001",
			schedule:   "MWF 11:30A-12:20P",
			unassigned: false,
		},
		{
			name:       "placeholder course masked",
			slot:       Slot{Course: "PHYSZZZ99", Section: "001", Exams: "final only", TA: "?"},
			course:     "PHYSXXXXX",
			section:    "",
			schedule:   "final only",
			unassigned: true,
		},
		{
			name:       "threshold course not masked",
			slot:       Slot{Course: "PHYS99900", TA: "X"},
			course:     "PHYS99900",
			section:    "",
			schedule:   "",
			unassigned: false,
		},
		{
			name:       "unfilled slot",
			slot:       Slot{Course: "PHYS 27200", Section: "002", ScheduleRelevant: true, When: "TBD", TA: ""},
			course:     "PHYS 27200",
			section:    "002",
			schedule:   "TBD",
			unassigned: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.slot.CourseLabel(); got != tt.course {
				t.Errorf("CourseLabel() = %q, want %q", got, tt.course)
			}
			if got := tt.slot.SectionLabel(); got != tt.section {
				t.Errorf("SectionLabel() = %q, want %q", got, tt.section)
			}
			if got := tt.slot.Schedule(); got != tt.schedule {
				t.Errorf("Schedule() = %q, want %q", got, tt.schedule)
			}
			if got := tt.slot.Unassigned(); got != tt.unassigned {
				t.Errorf("Unassigned() = %v, want %v", got, tt.unassigned)
			}
		})
	}
}

func TestIndexResolve(t *testing.T) {
	roster := []TA{
		{Last: "Curie", First: "Marie", Quota: 3},
		{Last: "Dirac", First: "Paul", Quota: 2},
	}
	ix := NewIndex(roster)

	tests := []struct {
		name    string
		alias   string
		wantKey string
		wantOK  bool
	}{
		{"bare last name", "Curie", "Curie:Marie", true},
		{"full key", "Dirac:Paul", "Dirac:Paul", true},
		{"unknown name", "Feynman", "", false},
		{"empty string", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := ix.Resolve(tt.alias)
			if ok != tt.wantOK || key != tt.wantKey {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.alias, key, ok, tt.wantKey, tt.wantOK)
			}
		})
	}

	if ta, ok := ix.Lookup("Curie"); !ok || ta.Quota != 3 {
		t.Errorf("Lookup(Curie) = (%v, %v), want quota 3 record", ta, ok)
	}
}

func TestTallyHours(t *testing.T) {
	roster := []TA{
		{Last: "Curie", First: "Marie", Quota: 3},
		{Last: "Dirac", First: "Paul", Quota: 2},
	}
	ix := NewIndex(roster)
	slots := []Slot{
		{Course: "PHYS 17200", TA: "Curie", Hours: 2},
		{Course: "PHYS 27200", TA: "Curie:Marie", Hours: 1},
		{Course: "PHYS 17200", TA: "?", Hours: 1},
		{Course: "PHYS 17200", TA: "X", Hours: 1},
		{Course: "PHYS 17200", TA: ".", Hours: 1},
	}

	hours, err := TallyHours(slots, ix)
	if err != nil {
		t.Fatalf("TallyHours() error = %v", err)
	}
	if hours["Curie:Marie"] != 3 {
		t.Errorf("hours[Curie:Marie] = %d, want 3", hours["Curie:Marie"])
	}
	if got, ok := hours["Dirac:Paul"]; !ok || got != 0 {
		t.Errorf("hours[Dirac:Paul] = (%d, %v), want zero entry present", got, ok)
	}
}

func TestTallyHoursUnknownTA(t *testing.T) {
	ix := NewIndex([]TA{{Last: "Curie", First: "Marie"}})
	slots := []Slot{{Course: "PHYS 17200", TA: "Feynman", Hours: 2}}

	_, err := TallyHours(slots, ix)
	if err == nil {
		t.Fatal("TallyHours() expected error for unknown TA")
	}
	if !strings.Contains(err.Error(), "unrecognized TA identifier") ||
		!strings.Contains(err.Error(), "Feynman") ||
		!strings.Contains(err.Error(), "PHYS 17200") {
		t.Errorf("error %q should name the identifier and the course", err)
	}
}

func TestCollectByTA(t *testing.T) {
	roster := []TA{
		{Last: "Curie", First: "Marie"},
		{Last: "Dirac", First: "Paul"},
	}
	ix := NewIndex(roster)
	slots := []Slot{
		{Course: "PHYS 27200", Section: "001", TA: "Curie"},
		{Course: "PHYS 17200", Section: "002", TA: "Curie"},
		{Course: "PHYS 17200", Section: "001", TA: "?"},
	}

	byTA, err := CollectByTA(slots, ix)
	if err != nil {
		t.Fatalf("CollectByTA() error = %v", err)
	}

	curie := byTA["Curie:Marie"]
	if len(curie) != 2 {
		t.Fatalf("len(byTA[Curie:Marie]) = %d, want 2", len(curie))
	}
	if curie[0].Course != "PHYS 17200" || curie[1].Course != "PHYS 27200" {
		t.Errorf("slots not sorted by course: %q then %q", curie[0].Course, curie[1].Course)
	}
	if got, ok := byTA["Dirac:Paul"]; !ok || len(got) != 0 {
		t.Errorf("unassigned TA entry = (%v, %v), want present and empty", got, ok)
	}
}

func TestBuild(t *testing.T) {
	roster := []TA{{Last: "Curie", First: "Marie", Quota: 3}}
	slots := []Slot{
		{Course: "PHYSZZZ99", TA: "Curie", Hours: 1},
		{Course: "PHYS 17200", Section: "001", TA: "Curie", Hours: 2},
	}

	a, err := Build(roster, slots)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(a.Courses) != 2 || a.Courses[0] != "PHYS 17200" || a.Courses[1] != "PHYSZZZ99" {
		t.Errorf("Courses = %v, want sorted [PHYS 17200 PHYSZZZ99]", a.Courses)
	}
	if a.Hours["Curie:Marie"] != 3 {
		t.Errorf("Hours = %d, want 3", a.Hours["Curie:Marie"])
	}
}
