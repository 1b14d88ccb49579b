// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// index.go - Roster indexing and assignment aggregation.

package roster

import (
	"fmt"
	"sort"
)

// ============================================================================
// Index
// ============================================================================

// Index resolves values of the assignment spreadsheet's TA column to roster
// entries. Both bare last names and full "Last:First" keys resolve; when
// two TAs share a last name the later roster entry owns the bare-name
// alias, so disambiguate those in the spreadsheet with full keys.
type Index struct {
	Keys []string // roster order

	tas     map[string]*TA
	aliases map[string]string
}

// NewIndex builds the lookup index over a roster.
func NewIndex(roster []TA) *Index {
	ix := &Index{
		tas:     make(map[string]*TA, len(roster)),
		aliases: make(map[string]string, 2*len(roster)),
	}
	for i := range roster {
		ta := &roster[i]
		key := ta.Key()
		ix.Keys = append(ix.Keys, key)
		ix.tas[key] = ta
		ix.aliases[ta.Last] = key
		ix.aliases[key] = key
	}
	return ix
}

// Resolve maps an assignment cell value to a roster key.
func (ix *Index) Resolve(name string) (string, bool) {
	key, ok := ix.aliases[name]
	return key, ok
}

// Lookup returns the roster entry for an alias or key.
func (ix *Index) Lookup(name string) (*TA, bool) {
	key, ok := ix.aliases[name]
	if !ok {
		return nil, false
	}
	return ix.tas[key], true
}

// ============================================================================
// Aggregation
// ============================================================================

// TallyHours sums assigned hours per roster key. Every key is present in
// the result even when nothing is assigned. A TA cell value that is neither
// a placeholder nor a known roster entry is an error.
func TallyHours(slots []Slot, ix *Index) (map[string]int, error) {
	hours := make(map[string]int, len(ix.Keys))
	for _, key := range ix.Keys {
		hours[key] = 0
	}
	for i := range slots {
		slot := &slots[i]
		if excludedTA(slot.TA) {
			continue
		}
		key, ok := ix.Resolve(slot.TA)
		if !ok {
			return nil, fmt.Errorf("unrecognized TA identifier %q in entry for course %q", slot.TA, slot.Course)
		}
		hours[key] += slot.Hours
	}
	return hours, nil
}

// CollectByTA groups assigned slots per roster key, sorted by course and
// section. Every key is present in the result.
func CollectByTA(slots []Slot, ix *Index) (map[string][]Slot, error) {
	byTA := make(map[string][]Slot, len(ix.Keys))
	for _, key := range ix.Keys {
		byTA[key] = nil
	}
	for i := range slots {
		slot := &slots[i]
		if excludedTA(slot.TA) {
			continue
		}
		key, ok := ix.Resolve(slot.TA)
		if !ok {
			return nil, fmt.Errorf("unrecognized TA identifier %q in entry for course %q", slot.TA, slot.Course)
		}
		byTA[key] = append(byTA[key], slots[i])
	}
	for _, key := range ix.Keys {
		sortSlots(byTA[key])
	}
	return byTA, nil
}

// CollectByCourse groups slots by their raw course number, sorted by course
// and section within each group. Placeholder courses group by their raw
// number and are only masked at display time.
func CollectByCourse(slots []Slot) map[string][]Slot {
	byCourse := make(map[string][]Slot)
	for i := range slots {
		byCourse[slots[i].Course] = append(byCourse[slots[i].Course], slots[i])
	}
	for course := range byCourse {
		sortSlots(byCourse[course])
	}
	return byCourse
}

func sortSlots(slots []Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Course != slots[j].Course {
			return slots[i].Course < slots[j].Course
		}
		return slots[i].Section < slots[j].Section
	})
}

// ============================================================================
// Assignments
// ============================================================================

// Assignments is the fully indexed assignment database.
type Assignments struct {
	Roster []TA
	Slots  []Slot

	Index    *Index
	Courses  []string // sorted raw course numbers
	Hours    map[string]int
	ByTA     map[string][]Slot
	ByCourse map[string][]Slot
}

// Build indexes the roster and aggregates the slot assignments.
func Build(roster []TA, slots []Slot) (*Assignments, error) {
	ix := NewIndex(roster)
	hours, err := TallyHours(slots, ix)
	if err != nil {
		return nil, err
	}
	byTA, err := CollectByTA(slots, ix)
	if err != nil {
		return nil, err
	}
	byCourse := CollectByCourse(slots)
	courses := make([]string, 0, len(byCourse))
	for course := range byCourse {
		courses = append(courses, course)
	}
	sort.Strings(courses)

	return &Assignments{
		Roster:   roster,
		Slots:    slots,
		Index:    ix,
		Courses:  courses,
		Hours:    hours,
		ByTA:     byTA,
		ByCourse: byCourse,
	}, nil
}
