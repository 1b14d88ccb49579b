// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// committees.go - Committee supplements and advising aggregation.

package students

import (
	"fmt"

	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

var supplementFields = []string{
	"last", "first", "committee1", "committee2", "committee3", "chair",
}

// AugmentCommittees merges newly proposed committee members from the
// committee additions spreadsheet into the database. Added members are
// remembered per student so reports can flag them.
func AugmentCommittees(db []Student, path string) error {
	byKey := make(map[string]*Student, len(db))
	for i := range db {
		byKey[db[i].Key()] = &db[i]
	}

	records, err := spreadsheet.ReadFile(path, spreadsheet.DefaultOptions(supplementFields...))
	if err != nil {
		return fmt.Errorf("failed to read committee additions: %w", err)
	}

	for _, rec := range records {
		if rec["last"] == "" {
			continue
		}
		key := rec["last"] + ":" + rec["first"]
		entry, ok := byKey[key]
		if !ok {
			return fmt.Errorf("unrecognized student key %q in committee additions", key)
		}

		supplement := make(map[string]bool)
		if rec["chair"] != "" {
			if entry.Chair != "" {
				return fmt.Errorf("conflicting chair assignment for %s", key)
			}
			entry.Chair = rec["chair"]
			supplement[RegularizeName(rec["chair"])] = true
		}
		for _, field := range []string{"committee1", "committee2", "committee3"} {
			if rec[field] != "" {
				supplement[RegularizeName(rec[field])] = true
			}
		}

		entry.SupplementCommittee = supplement
		for member := range supplement {
			entry.Committee[member] = true
		}
	}
	return nil
}

// TallyAdvising counts advising, coadvising, and committee roles per
// faculty member. Every base faculty member is present in all three
// tallies even with no students; other names appear as encountered.
// Defended students are not counted against the current load.
func TallyAdvising(db []Student, faculty []string) (advisor, coadvisor, committee map[string]int) {
	advisor = make(map[string]int)
	coadvisor = make(map[string]int)
	committee = make(map[string]int)
	for _, member := range faculty {
		advisor[member] = 0
		coadvisor[member] = 0
		committee[member] = 0
	}

	for i := range db {
		s := &db[i]
		if s.CandidacyStatus == "D" {
			continue
		}
		advisor[s.Advisor]++
		if s.Coadvisor != "" {
			coadvisor[s.Coadvisor]++
		}
		for member := range s.Committee {
			committee[member]++
		}
	}
	return advisor, coadvisor, committee
}

// CollectAdvising groups students under every faculty member involved
// with them, whether as advisor, coadvisor, or committee member. Every
// base faculty member is present even with no students.
func CollectAdvising(db []Student, faculty []string) map[string][]*Student {
	assignments := make(map[string][]*Student)
	for _, member := range faculty {
		assignments[member] = nil
	}

	for i := range db {
		s := &db[i]
		involved := make(map[string]bool, len(s.Committee)+2)
		for member := range s.Committee {
			involved[member] = true
		}
		if s.Advisor != "" {
			involved[s.Advisor] = true
		}
		if s.Coadvisor != "" {
			involved[s.Coadvisor] = true
		}
		for member := range involved {
			assignments[member] = append(assignments[member], s)
		}
	}
	return assignments
}

// roleString tags the faculty member's relationship to a student in the
// advising reports.
func roleString(name string, s *Student) string {
	switch name {
	case s.Advisor:
		return "-- Advisor"
	case s.Coadvisor:
		return "-- Coadvisor"
	case s.Chair:
		return "*"
	}
	return ""
}

// supplementFlag marks newly proposed committee members.
func supplementFlag(name string, s *Student) string {
	if s.SupplementCommittee[name] {
		return "#"
	}
	return ""
}

// tenureFlag marks tenured and tenure-track physics faculty.
func tenureFlag(name string, faculty map[string]bool) string {
	if faculty[name] {
		return "@"
	}
	return ""
}
