// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// students.go - Student database records and loading.

package students

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jeranaias/ptatools/internal/report"
	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

// DatabaseFields lists the student database snapshot columns in order.
var DatabaseFields = []string{
	"last", "first", "nickname", "gender",
	"advisor_composite",
	"committee1", "committee2", "committee3", "chair",
	"area", "theory_expt", "year", "program", "gre_phys",
	"candidacy_invited", "candidacy_invitation_date",
	"candidacy_written_date", "candidacy_oral_date", "defense_date",
	"funding_fall", "funding_spring",
	"ndid", "netid",
	"meeting_date_prior_year_4", "meeting_date_prior_year_3",
	"meeting_date_prior_year_2", "meeting_date_prior_year", "meeting_date",
	"experimental_proficiency",
}

// Student is one postprocessed row of the student database.
type Student struct {
	Last     string
	First    string
	Nickname string
	Gender   string

	Advisor   string // regularized "Last, First"
	Coadvisor string
	Chair     string          // raw chair column value
	Committee map[string]bool // regularized committee member names

	// SupplementCommittee holds newly proposed members merged in from the
	// committee additions spreadsheet, flagged "#" in reports.
	SupplementCommittee map[string]bool

	Area       string
	TheoryExpt string
	Year       string
	YearValue  float64 // parsed Year, 0 when unparseable
	Program    string
	GREPhys    string

	CandidacyInvited        string
	CandidacyInvitationDate string
	CandidacyWrittenDate    string
	CandidacyOralDate       string
	DefenseDate             string
	CandidacyStatus         string // "D", "C", "W", "I", or " "

	FundingFall   string
	FundingSpring string

	NDID  string
	NetID string

	MeetingPriorYear4 string
	MeetingPriorYear3 string
	MeetingPriorYear2 string
	MeetingPriorYear  string
	MeetingDate       string

	ExperimentalProficiency string
}

// Key returns the lookup key "Last:First".
func (s *Student) Key() string { return s.Last + ":" + s.First }

// StudentYearString returns the listing form "Last, First (year)", with a
// special program shown in place of the year.
func (s *Student) StudentYearString() string {
	short := report.Cut(s.Last+", "+s.First, 23)
	label := s.Year
	if s.Program != "" {
		label = s.Program
	}
	return fmt.Sprintf("%s (%s)", short, label)
}

// EmailString returns the contact form "First Last <netid@nd.edu>".
func (s *Student) EmailString() string {
	return fmt.Sprintf("%s %s <%s@nd.edu>", s.First, s.Last, s.NetID)
}

// ShortAdvisorComposite returns the abbreviated advisor column, advisor
// and coadvisor last names joined by "/".
func (s *Student) ShortAdvisorComposite() string {
	short := shortFacultyName(s.Advisor)
	if co := shortFacultyName(s.Coadvisor); co != "" {
		return short + "/" + co
	}
	return short
}

func (s *Student) theoryExptCode() string {
	if s.TheoryExpt == "" {
		return ""
	}
	return s.TheoryExpt[:1]
}

func shortFacultyName(name string) string {
	last, _, _ := strings.Cut(name, ",")
	return report.Cut(last, 11)
}

// ReadDatabase loads the student database snapshot and derives the
// advisor split, committee set, candidacy status, and year value.
func ReadDatabase(path string) ([]Student, error) {
	records, err := spreadsheet.ReadFile(path, spreadsheet.DefaultOptions(DatabaseFields...))
	if err != nil {
		return nil, fmt.Errorf("failed to read student database: %w", err)
	}

	db := make([]Student, 0, len(records))
	for _, rec := range records {
		s := Student{
			Last:     rec["last"],
			First:    rec["first"],
			Nickname: rec["nickname"],
			Gender:   rec["gender"],
			Chair:    rec["chair"],

			Area:       rec["area"],
			TheoryExpt: rec["theory_expt"],
			Year:       rec["year"],
			Program:    rec["program"],
			GREPhys:    rec["gre_phys"],

			CandidacyInvited:        rec["candidacy_invited"],
			CandidacyInvitationDate: rec["candidacy_invitation_date"],
			CandidacyWrittenDate:    rec["candidacy_written_date"],
			CandidacyOralDate:       rec["candidacy_oral_date"],
			DefenseDate:             rec["defense_date"],

			FundingFall:   rec["funding_fall"],
			FundingSpring: rec["funding_spring"],

			NDID:  rec["ndid"],
			NetID: strings.ToLower(rec["netid"]),

			MeetingPriorYear4: rec["meeting_date_prior_year_4"],
			MeetingPriorYear3: rec["meeting_date_prior_year_3"],
			MeetingPriorYear2: rec["meeting_date_prior_year_2"],
			MeetingPriorYear:  rec["meeting_date_prior_year"],
			MeetingDate:       rec["meeting_date"],

			ExperimentalProficiency: rec["experimental_proficiency"],
		}

		s.Advisor, s.Coadvisor = splitAdvisors(rec["advisor_composite"])

		s.Committee = make(map[string]bool)
		for _, member := range []string{rec["chair"], rec["committee1"], rec["committee2"], rec["committee3"]} {
			if member != "" {
				s.Committee[RegularizeName(member)] = true
			}
		}

		if y, convErr := strconv.ParseFloat(s.Year, 64); convErr == nil {
			s.YearValue = y
		}

		s.CandidacyStatus = candidacyStatus(&s)

		db = append(db, s)
	}
	return db, nil
}

// splitAdvisors derives advisor and coadvisor from the composite column.
// Coadvisors are separated by "/", or by " and " in legacy rows. The
// legacy marker "DGS" means no research advisor.
func splitAdvisors(composite string) (advisor, coadvisor string) {
	composite = strings.TrimSpace(composite)

	slashParts := splitTrim(composite, "/")
	andParts := splitTrim(composite, " and ")

	var advisors []string
	switch {
	case len(slashParts) == 2:
		advisors = slashParts
	case len(andParts) == 2:
		advisors = andParts
	case composite != "" && composite != "DGS":
		advisors = []string{composite}
	}

	if len(advisors) >= 1 {
		advisor = RegularizeName(advisors[0])
	}
	if len(advisors) == 2 {
		coadvisor = RegularizeName(advisors[1])
	}
	return advisor, coadvisor
}

func splitTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// candidacyStatus derives the progress code from the milestone dates:
// defended, candidacy complete, written exam complete, invited, or
// precandidacy.
func candidacyStatus(s *Student) string {
	switch {
	case s.DefenseDate != "":
		return "D"
	case s.CandidacyOralDate != "":
		return "C"
	case s.CandidacyWrittenDate != "":
		return "W"
	case s.CandidacyInvitationDate != "":
		return "I"
	}
	return " "
}

// ReadFaculty loads the tenured and tenure-track faculty list, one name
// per line, regularized to last-name-first form. Blank lines are skipped.
func ReadFaculty(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read faculty list: %w", err)
	}
	defer f.Close()

	var faculty []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		faculty = append(faculty, RegularizeName(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read faculty list: %w", err)
	}
	return faculty, nil
}

// Validate checks the database for suspect field values and returns one
// warning per finding.
func Validate(db []Student) []string {
	var warnings []string
	for i := range db {
		s := &db[i]
		if _, err := strconv.ParseFloat(s.Year, 64); err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid year %q for %s, %s", s.Year, s.Last, s.First))
		}
		if s.CandidacyInvited != "Yes" && s.CandidacyInvited != "No" {
			warnings = append(warnings, fmt.Sprintf("invalid candidacy invitation %q for %s, %s", s.CandidacyInvited, s.Last, s.First))
		}
		if s.CandidacyInvited == "Yes" && s.CandidacyInvitationDate == "" {
			warnings = append(warnings, fmt.Sprintf("missing candidacy invitation date for %s, %s", s.Last, s.First))
		}
		if s.CandidacyInvited == "No" &&
			(s.CandidacyInvitationDate != "" || s.CandidacyWrittenDate != "" || s.CandidacyOralDate != "") {
			warnings = append(warnings, fmt.Sprintf("inconsistent candidacy status for %s, %s", s.Last, s.First))
		}
	}
	return warnings
}
