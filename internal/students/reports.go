// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// reports.go - Student status, advising, and TA planning reports.

package students

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jeranaias/ptatools/internal/report"
)

const statusLegend = "Student progress status codes:\n" +
	"  [ ] = precandidacy\n" +
	"  [I] = invited to take candidacy exam\n" +
	"  [W] = written candidacy exam complete\n" +
	"  [C] = candidacy complete (or oral scheduled)\n" +
	"  [D] = defended (or defense scheduled)\n"

const facultyLegendBase = "  * = out-of-area member / committee chair\n"

const facultyLegendTenure = facultyLegendBase +
	"  @ = tenured & tenure track (in physics)\n"

// ============================================================================
// Status reports
// ============================================================================

// StatusSort selects the ordering of a status report.
type StatusSort int

const (
	// SortByYear lists students by decreasing seniority, then name.
	SortByYear StatusSort = iota
	// SortByGroupAdvisor groups students by research group and advisor,
	// with banner lines at each group change.
	SortByGroupAdvisor
)

// StatusOptions selects the columns and ordering of a status report.
type StatusOptions struct {
	Sorting   StatusSort
	Area      bool
	Funding   bool
	Meeting   bool
	Email     bool
	StartYear float64 // lowest year to include
}

// StatusReport renders the student status listing.
func StatusReport(db []Student, date time.Time, opts StatusOptions) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Notre Dame physics graduate students\n%s\n\n%s\n\n",
		date.Format("01/02/2006"), statusLegend)

	type taggedLine struct {
		s    *Student
		line string
	}
	var entries []taggedLine
	for i := range db {
		s := &db[i]
		if s.YearValue < opts.StartYear {
			continue
		}
		entries = append(entries, taggedLine{s: s, line: statusLine(s, opts)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return statusLess(entries[i].s, entries[j].s, opts.Sorting)
	})

	// Control breaks: banner per research group, blank line per advisor.
	lastGroup := "\x00"
	lastAdvisor := "\x00"
	rule := strings.Repeat("-", 64)
	for _, e := range entries {
		if opts.Sorting == SortByGroupAdvisor {
			group := e.s.Area + "\x00" + e.s.TheoryExpt
			if group != lastGroup {
				fmt.Fprintf(&b, "\n%s\n%s\n%s\n\n", rule, AreaDescription(e.s.Area, e.s.TheoryExpt), rule)
			} else if e.s.Advisor != lastAdvisor {
				b.WriteString("\n")
			}
			lastGroup = group
			lastAdvisor = e.s.Advisor
		}
		b.WriteString(e.line)
		b.WriteString("\n")
	}
	return b.Bytes()
}

func statusLine(s *Student, opts StatusOptions) string {
	var line strings.Builder
	fmt.Fprintf(&line, "%-28s %s %-20s ", s.StudentYearString(), s.CandidacyStatus, s.ShortAdvisorComposite())
	if opts.Area {
		fmt.Fprintf(&line, "%-3s %-1s ", s.Area, s.theoryExptCode())
	}
	if opts.Funding {
		fmt.Fprintf(&line, "  %-1s %-20s %-1s %-20s",
			TAStatusFlag(s.FundingFall), s.FundingFall, TAStatusFlag(s.FundingSpring), s.FundingSpring)
	}
	if opts.Meeting {
		fmt.Fprintf(&line, "%-10s %-10s %-10s ", s.MeetingPriorYear2, s.MeetingPriorYear, s.MeetingDate)
	}
	if opts.Email {
		line.WriteString(s.EmailString())
	}
	return line.String()
}

func statusLess(a, b *Student, sorting StatusSort) bool {
	if sorting == SortByGroupAdvisor {
		// Unaffiliated students sort to the end.
		areaA, areaB := a.Area, b.Area
		if areaA == "" {
			areaA = "ZZZ"
		}
		if areaB == "" {
			areaB = "ZZZ"
		}
		if areaA != areaB {
			return areaA < areaB
		}
		if a.TheoryExpt != b.TheoryExpt {
			return a.TheoryExpt < b.TheoryExpt
		}
		advA, advB := strings.ToUpper(a.Advisor), strings.ToUpper(b.Advisor)
		if advA != advB {
			return advA < advB
		}
	}
	if a.YearValue != b.YearValue {
		return a.YearValue > b.YearValue
	}
	lastA, lastB := strings.ToUpper(a.Last), strings.ToUpper(b.Last)
	if lastA != lastB {
		return lastA < lastB
	}
	return strings.ToUpper(a.First) < strings.ToUpper(b.First)
}

// ============================================================================
// Advising reports
// ============================================================================

// AdvisingLoadReport renders each faculty member's advising and committee
// load as "advisor +coadvisor / committee".
func AdvisingLoadReport(db []Student, faculty []string, date time.Time) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Advising and research committee loads\n\n  %s\n\n  advisor + coadvisor / committee\n  %s\n",
		date.Format("01/02/2006"), facultyLegendTenure)

	advisorTally, coadvisorTally, committeeTally := TallyAdvising(db, faculty)

	nameSet := make(map[string]bool)
	for name := range advisorTally {
		nameSet[name] = true
	}
	for name := range coadvisorTally {
		nameSet[name] = true
	}
	for name := range committeeTally {
		nameSet[name] = true
	}
	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	sortFacultyNames(names)

	facultySet := toSet(faculty)
	for _, name := range names {
		coadvisorStr := ""
		if n, ok := coadvisorTally[name]; ok {
			coadvisorStr = fmt.Sprintf("+%1d", n)
		}
		fmt.Fprintf(&b, "%-34s %2d %-2s / %-2d %-1s\n",
			name, advisorTally[name], coadvisorStr, committeeTally[name], tenureFlag(name, facultySet))
	}
	return b.Bytes()
}

// FacultyReportOptions controls the advising-by-faculty report variants.
// The committee-assignment variant excludes defended students and
// advising roles and flags tenure so recipients can judge loads.
type FacultyReportOptions struct {
	IncludeDefended bool
	IncludeAdvising bool
	FlagTenured     bool
}

// AdvisingByFacultyReport renders each faculty member's students grouped
// under their name, ordered by role, seniority, and name.
func AdvisingByFacultyReport(db []Student, faculty []string, date time.Time, opts FacultyReportOptions) []byte {
	var b bytes.Buffer
	title := "Advising and research committees\n  by faculty member\n"
	if !opts.IncludeAdvising {
		title = "Research committees by faculty member\n  excludes defended students\n\n"
	}
	legend := facultyLegendBase
	if opts.FlagTenured {
		legend = facultyLegendTenure
	}
	fmt.Fprintf(&b, "%s%s\n\n%s\n%s\n\n", title, date.Format("01/02/2006"), statusLegend, legend)

	assignments := CollectAdvising(db, faculty)
	names := make([]string, 0, len(assignments))
	for name := range assignments {
		names = append(names, name)
	}
	sortFacultyNames(names)

	facultySet := toSet(faculty)
	for _, name := range names {
		type taggedEntry struct {
			role string
			s    *Student
			line string
		}
		var entries []taggedEntry
		for _, s := range assignments[name] {
			role := "committee"
			if s.Advisor == name {
				role = "advisor"
			} else if s.Coadvisor == name {
				role = "coadvisor"
			}
			if !opts.IncludeDefended && s.CandidacyStatus == "D" {
				continue
			}
			if !opts.IncludeAdvising && role != "committee" {
				continue
			}
			entries = append(entries, taggedEntry{
				role: role,
				s:    s,
				line: fmt.Sprintf("%-1s %-28s [%s] %s %-9s",
					supplementFlag(name, s), s.StudentYearString(), s.CandidacyStatus,
					s.ShortAdvisorComposite(), roleString(name, s)),
			})
		}
		if len(entries) == 0 {
			continue
		}
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].role != entries[j].role {
				return entries[i].role < entries[j].role
			}
			if entries[i].s.YearValue != entries[j].s.YearValue {
				return entries[i].s.YearValue > entries[j].s.YearValue
			}
			if entries[i].s.Last != entries[j].s.Last {
				return entries[i].s.Last < entries[j].s.Last
			}
			return entries[i].s.First < entries[j].s.First
		})

		flag := ""
		if opts.FlagTenured {
			flag = tenureFlag(name, facultySet)
		}
		fmt.Fprintf(&b, "%s %s\n", name, flag)
		for _, e := range entries {
			b.WriteString(e.line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.Bytes()
}

// AdvisingByStudentReport renders each student's advisor, coadvisor, and
// committee as a block.
func AdvisingByStudentReport(db []Student, date time.Time) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "Advising and research committees\n  by student\n\n  %s\n\n%s\n",
		date.Format("01/02/2006"), facultyLegendBase)

	order := make([]int, len(db))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b2 := &db[order[i]], &db[order[j]]
		if a.Last != b2.Last {
			return a.Last < b2.Last
		}
		if a.First != b2.First {
			return a.First < b2.First
		}
		return a.YearValue < b2.YearValue
	})

	for _, idx := range order {
		s := &db[idx]
		fmt.Fprintf(&b, "%-28s\n", s.StudentYearString())

		var members []string
		if s.Advisor != "" {
			members = append(members, s.Advisor)
		}
		if s.Coadvisor != "" {
			members = append(members, s.Coadvisor)
		}
		committee := make([]string, 0, len(s.Committee))
		for member := range s.Committee {
			committee = append(committee, member)
		}
		sort.Strings(committee)
		members = append(members, committee...)

		for _, member := range members {
			fmt.Fprintf(&b, "%-1s %s %s\n", supplementFlag(member, s), member, roleString(member, s))
		}
		b.WriteString("\n")
	}
	return b.Bytes()
}

// ============================================================================
// TA planning reports
// ============================================================================

// FundingForTerm returns the funding entry that governs TA status for a
// term code: "a" is spring, anything else is fall.
func FundingForTerm(s *Student, term string) string {
	if term == "a" {
		return s.FundingSpring
	}
	return s.FundingFall
}

// taOrder lists database indexes for the TA reports: special year-0
// students cut, ordered by name then year.
func taOrder(db []Student) []int {
	var order []int
	for i := range db {
		if db[i].YearValue == 0 {
			continue
		}
		order = append(order, i)
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := &db[order[i]], &db[order[j]]
		lastA, lastB := strings.ToUpper(a.Last), strings.ToUpper(b.Last)
		if lastA != lastB {
			return lastA < lastB
		}
		firstA, firstB := strings.ToUpper(a.First), strings.ToUpper(b.First)
		if firstA != firstB {
			return firstA < firstB
		}
		return a.YearValue < b.YearValue
	})
	return order
}

// TAListReport renders the TA list distributed with the preference
// survey.
func TAListReport(db []Student, date time.Time, term string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "TA list\n%s\n\n  * = TA support\n  ? = possible TA support (TBD)\n\n",
		date.Format("01/02/2006"))

	for _, idx := range taOrder(db) {
		s := &db[idx]
		fmt.Fprintf(&b, "%-1s %s, %s\n", TAStatusFlag(FundingForTerm(s, term)), s.Last, s.First)
	}
	return b.Bytes()
}

// TARosterNotesReport renders the working grid for noting TA preferences
// during the assignment process. Students with no teaching duty are
// omitted.
func TARosterNotesReport(db []Student, term string) []byte {
	var b bytes.Buffer
	b.WriteString("                                             |NS|He|Tu|Ex|Ma|La|De|Ob|Gr|Notes\n")
	b.WriteString("                                             +--+--+--+--+--+--+--+--+--+-------\n")

	for _, idx := range taOrder(db) {
		s := &db[idx]
		funding := FundingForTerm(s, term)
		hours := TAHours(funding, s.Year)
		if hours == "0" {
			continue
		}
		fmt.Fprintf(&b, "%-28s %-3s %-3s %-1s %-1s %3s |__|__|__|__|__|__|__|__|__|_______\n",
			s.StudentYearString(), report.Cut(s.ShortAdvisorComposite(), 3), s.Area,
			s.theoryExptCode(), TAStatusFlag(funding), hours)
	}
	return b.Bytes()
}

// TARosterTemplate renders the roster spreadsheet template fed into the
// assignment machinery, one CSV row per student with the estimated hour
// quota.
func TARosterTemplate(db []Student, term string) []byte {
	var b bytes.Buffer
	for _, idx := range taOrder(db) {
		s := &db[idx]
		funding := FundingForTerm(s, term)
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			s.Last, s.First, s.Year, s.NetID, s.ShortAdvisorComposite(), s.Area,
			funding, TAHours(funding, s.Year), TAStatusFlag(funding))
	}
	return b.Bytes()
}

// ============================================================================
// Generation
// ============================================================================

// GenerateOptions selects which report families a run produces.
type GenerateOptions struct {
	Date              time.Time
	ResearchCommittee bool   // working reports for committee assignment
	TA                bool   // working reports for TA assignment
	TATerm            string // "a" spring, "b" fall
}

// Generate writes the student reports into dir and returns the paths
// written. Filenames carry the database date as yymmdd.
func Generate(dir string, opts GenerateOptions, db []Student, faculty []string) ([]string, error) {
	dateCode := opts.Date.Format("060102")

	type output struct {
		name string
		body []byte
	}
	outputs := []output{
		{fmt.Sprintf("student-status-contact-%s.txt", dateCode),
			StatusReport(db, opts.Date, StatusOptions{Area: true, Email: true})},
		{fmt.Sprintf("student-status-group-advisor-funding-%s.txt", dateCode),
			StatusReport(db, opts.Date, StatusOptions{Sorting: SortByGroupAdvisor, Area: true, Funding: true, StartYear: 0.5})},
		{fmt.Sprintf("student-status-group-advisor-contact-%s.txt", dateCode),
			StatusReport(db, opts.Date, StatusOptions{Sorting: SortByGroupAdvisor, Area: true, Email: true, StartYear: 0.5})},
		{fmt.Sprintf("student-status-meeting-%s.txt", dateCode),
			StatusReport(db, opts.Date, StatusOptions{Area: true, Meeting: true})},
		{fmt.Sprintf("advising-by-faculty-%s.txt", dateCode),
			AdvisingByFacultyReport(db, faculty, opts.Date, FacultyReportOptions{IncludeDefended: true, IncludeAdvising: true})},
		{fmt.Sprintf("advising-by-student-%s.txt", dateCode),
			AdvisingByStudentReport(db, opts.Date)},
	}
	if opts.ResearchCommittee {
		outputs = append(outputs,
			output{fmt.Sprintf("advising-load-%s.txt", dateCode),
				AdvisingLoadReport(db, faculty, opts.Date)},
			output{fmt.Sprintf("research-committees-by-faculty-%s.txt", dateCode),
				AdvisingByFacultyReport(db, faculty, opts.Date, FacultyReportOptions{FlagTenured: true})},
		)
	}
	if opts.TA {
		outputs = append(outputs,
			output{fmt.Sprintf("ta-list-%s.txt", dateCode),
				TAListReport(db, opts.Date, opts.TATerm)},
			output{fmt.Sprintf("ta-roster-notes-%s.txt", dateCode),
				TARosterNotesReport(db, opts.TATerm)},
			output{fmt.Sprintf("ta-roster-TEMPLATE-%s.csv", dateCode),
				TARosterTemplate(db, opts.TATerm)},
		)
	}

	var paths []string
	for _, out := range outputs {
		path := filepath.Join(dir, out.name)
		if err := report.Save(path, out.body); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
