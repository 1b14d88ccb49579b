// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package students

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jeranaias/ptatools/internal/roster"
)

func reportFixture() ([]Student, []string) {
	db := []Student{
		{Last: "Curie", First: "Irene", Year: "5", YearValue: 5, NetID: "icurie",
			Area: "NUC", TheoryExpt: "Experimental", CandidacyStatus: "C",
			Advisor: "Bohr, Niels", Chair: "Fermi, Enrico",
			FundingFall: "RA", FundingSpring: "RA",
			Committee:           map[string]bool{"Fermi, Enrico": true, "Langevin, Paul": true},
			SupplementCommittee: map[string]bool{"Langevin, Paul": true}},
		{Last: "Meitner", First: "Lise", Year: "5", YearValue: 5, NetID: "lmeitner",
			Area: "NUC", TheoryExpt: "Experimental", CandidacyStatus: "D",
			Advisor: "Bohr, Niels", FundingFall: "G", FundingSpring: "G",
			Committee: map[string]bool{"Fermi, Enrico": true}},
		{Last: "Strassmann", First: "Fritz", Year: "3", YearValue: 3, NetID: "fstrass",
			Area: "NUC", TheoryExpt: "Experimental", CandidacyStatus: "W",
			Advisor: "Fermi, Enrico", FundingFall: "TA", FundingSpring: "TA"},
		{Last: "Dirac", First: "Paul", Year: "2", YearValue: 2, NetID: "pdirac",
			Area: "HE", TheoryExpt: "Theory", CandidacyStatus: " ",
			Advisor: "Fermi, Enrico", Coadvisor: "Bohr, Niels",
			FundingFall: "TA", FundingSpring: "Fellow-univ"},
		{Last: "Noether", First: "Emmy", Program: "GLOBES", NetID: "enoether",
			CandidacyStatus: " "},
	}
	faculty := []string{"Bohr, Niels", "Fermi, Enrico"}
	return db, faculty
}

func reportDate() time.Time {
	return time.Date(2021, time.August, 15, 0, 0, 0, 0, time.UTC)
}

func TestStatusReportByYear(t *testing.T) {
	db, _ := reportFixture()

	body := string(StatusReport(db, reportDate(), StatusOptions{Area: true, Email: true}))
	lines := strings.Split(body, "\n")
	require.Len(t, lines, 17)

	require.Equal(t, "Notre Dame physics graduate students", lines[0])
	require.Equal(t, "08/15/2021", lines[1])
	require.Equal(t, "Student progress status codes:", lines[3])
	require.Equal(t, "  [D] = defended (or defense scheduled)", lines[8])
	require.Equal(t, "", lines[9])
	require.Equal(t, "", lines[10])

	format := "%-28s %s %-20s %-3s %-1s %s"
	require.Equal(t, fmt.Sprintf(format, "Curie, Irene (5)", "C", "Bohr", "NUC", "E", "Irene Curie <icurie@nd.edu>"), lines[11])
	require.Equal(t, fmt.Sprintf(format, "Meitner, Lise (5)", "D", "Bohr", "NUC", "E", "Lise Meitner <lmeitner@nd.edu>"), lines[12])
	require.Equal(t, fmt.Sprintf(format, "Strassmann, Fritz (3)", "W", "Fermi", "NUC", "E", "Fritz Strassmann <fstrass@nd.edu>"), lines[13])
	require.Equal(t, fmt.Sprintf(format, "Dirac, Paul (2)", " ", "Fermi/Bohr", "HE", "T", "Paul Dirac <pdirac@nd.edu>"), lines[14])
	require.Equal(t, fmt.Sprintf(format, "Noether, Emmy (GLOBES)", " ", "", "", "", "Emmy Noether <enoether@nd.edu>"), lines[15])
}

func TestStatusReportGroupAdvisor(t *testing.T) {
	db, _ := reportFixture()

	body := string(StatusReport(db, reportDate(), StatusOptions{
		Sorting:   SortByGroupAdvisor,
		Area:      true,
		Funding:   true,
		StartYear: 0.5,
	}))

	rule := strings.Repeat("-", 64)
	require.Contains(t, body, "\n"+rule+"\nHigh energy theory\n"+rule+"\n\n")
	require.Contains(t, body, "\n"+rule+"\nNuclear experiment\n"+rule+"\n\n")
	require.Less(t, strings.Index(body, "High energy theory"), strings.Index(body, "Nuclear experiment"))
	require.NotContains(t, body, "Noether")

	format := "%-28s %s %-20s %-3s %-1s   %-1s %-20s %-1s %-20s"
	curie := fmt.Sprintf(format, "Curie, Irene (5)", "C", "Bohr", "NUC", "E", "", "RA", "", "RA")
	meitner := fmt.Sprintf(format, "Meitner, Lise (5)", "D", "Bohr", "NUC", "E", "", "G", "", "G")
	strassmann := fmt.Sprintf(format, "Strassmann, Fritz (3)", "W", "Fermi", "NUC", "E", "*", "TA", "*", "TA")
	require.Contains(t, body, fmt.Sprintf(format, "Dirac, Paul (2)", " ", "Fermi/Bohr", "HE", "T", "*", "TA", "", "Fellow-univ"))

	// Same advisor runs together; an advisor change inserts a blank line.
	require.Contains(t, body, curie+"\n"+meitner+"\n")
	require.Contains(t, body, meitner+"\n\n"+strassmann+"\n")
}

func TestAdvisingLoadReport(t *testing.T) {
	db, faculty := reportFixture()

	body := string(AdvisingLoadReport(db, faculty, reportDate()))

	wantHeader := "Advising and research committee loads\n\n  08/15/2021\n\n" +
		"  advisor + coadvisor / committee\n" +
		"    * = out-of-area member / committee chair\n" +
		"  @ = tenured & tenure track (in physics)\n\n"
	require.True(t, strings.HasPrefix(body, wantHeader), "header = %q", body[:len(wantHeader)])

	// Meitner has defended and is not counted.
	format := "%-34s %2d %-2s / %-2d %-1s"
	require.Contains(t, body, fmt.Sprintf(format, "Bohr, Niels", 1, "+1", 0, "@"))
	require.Contains(t, body, fmt.Sprintf(format, "Fermi, Enrico", 2, "+0", 1, "@"))
	require.Contains(t, body, fmt.Sprintf(format, "Langevin, Paul", 0, "", 1, ""))
}

func TestAdvisingByFacultyReport(t *testing.T) {
	db, faculty := reportFixture()

	body := string(AdvisingByFacultyReport(db, faculty, reportDate(), FacultyReportOptions{
		IncludeDefended: true,
		IncludeAdvising: true,
	}))

	require.True(t, strings.HasPrefix(body, "Advising and research committees\n  by faculty member\n08/15/2021\n\n"))
	require.NotContains(t, body, "@ = tenured")

	format := "%-1s %-28s [%s] %s %-9s"
	bohrBlock := "Bohr, Niels \n" +
		fmt.Sprintf(format, "", "Curie, Irene (5)", "C", "Bohr", "-- Advisor") + "\n" +
		fmt.Sprintf(format, "", "Meitner, Lise (5)", "D", "Bohr", "-- Advisor") + "\n" +
		fmt.Sprintf(format, "", "Dirac, Paul (2)", " ", "Fermi/Bohr", "-- Coadvisor") + "\n\n"
	require.Contains(t, body, bohrBlock)

	fermiBlock := "Fermi, Enrico \n" +
		fmt.Sprintf(format, "", "Strassmann, Fritz (3)", "W", "Fermi", "-- Advisor") + "\n" +
		fmt.Sprintf(format, "", "Dirac, Paul (2)", " ", "Fermi/Bohr", "-- Advisor") + "\n" +
		fmt.Sprintf(format, "", "Curie, Irene (5)", "C", "Bohr", "*") + "\n" +
		fmt.Sprintf(format, "", "Meitner, Lise (5)", "D", "Bohr", "") + "\n\n"
	require.Contains(t, body, fermiBlock)

	// Langevin is a newly proposed member, flagged on the entry.
	langevinBlock := "Langevin, Paul \n" +
		fmt.Sprintf(format, "#", "Curie, Irene (5)", "C", "Bohr", "") + "\n\n"
	require.Contains(t, body, langevinBlock)
}

func TestResearchCommitteesByFaculty(t *testing.T) {
	db, faculty := reportFixture()

	body := string(AdvisingByFacultyReport(db, faculty, reportDate(), FacultyReportOptions{
		FlagTenured: true,
	}))

	require.True(t, strings.HasPrefix(body, "Research committees by faculty member\n  excludes defended students\n\n08/15/2021\n\n"))
	require.Contains(t, body, "@ = tenured")
	require.NotContains(t, body, "-- Advisor")
	require.NotContains(t, body, "Meitner")

	format := "%-1s %-28s [%s] %s %-9s"
	require.Contains(t, body, "Fermi, Enrico @\n"+fmt.Sprintf(format, "", "Curie, Irene (5)", "C", "Bohr", "*")+"\n\n")
	require.Contains(t, body, "Langevin, Paul \n"+fmt.Sprintf(format, "#", "Curie, Irene (5)", "C", "Bohr", "")+"\n\n")

	// Bohr only advises, so he has no block at all.
	require.NotContains(t, body, "\nBohr, Niels \n")
}

func TestAdvisingByStudentReport(t *testing.T) {
	db, _ := reportFixture()

	body := string(AdvisingByStudentReport(db, reportDate()))

	require.True(t, strings.HasPrefix(body, "Advising and research committees\n  by student\n\n  08/15/2021\n\n"))

	curieBlock := fmt.Sprintf("%-28s", "Curie, Irene (5)") + "\n" +
		fmt.Sprintf("%-1s %s %s", "", "Bohr, Niels", "-- Advisor") + "\n" +
		fmt.Sprintf("%-1s %s %s", "", "Fermi, Enrico", "*") + "\n" +
		fmt.Sprintf("%-1s %s %s", "#", "Langevin, Paul", "") + "\n\n"
	require.Contains(t, body, curieBlock)

	// No advisor and no committee leaves a bare name block.
	require.Contains(t, body, fmt.Sprintf("%-28s", "Noether, Emmy (GLOBES)")+"\n\n")

	diracBlock := fmt.Sprintf("%-28s", "Dirac, Paul (2)") + "\n" +
		fmt.Sprintf("%-1s %s %s", "", "Fermi, Enrico", "-- Advisor") + "\n" +
		fmt.Sprintf("%-1s %s %s", "", "Bohr, Niels", "-- Coadvisor") + "\n\n"
	require.Contains(t, body, diracBlock)
}

func TestTAListReport(t *testing.T) {
	db, _ := reportFixture()

	body := string(TAListReport(db, reportDate(), "b"))

	require.True(t, strings.HasPrefix(body, "TA list\n08/15/2021\n\n  * = TA support\n  ? = possible TA support (TBD)\n\n"))
	require.NotContains(t, body, "Noether")

	want := "  Curie, Irene\n* Dirac, Paul\n  Meitner, Lise\n* Strassmann, Fritz\n"
	require.True(t, strings.HasSuffix(body, want), "body = %q", body)
}

func TestTARosterNotesReport(t *testing.T) {
	db, _ := reportFixture()

	body := string(TARosterNotesReport(db, "b"))
	lines := strings.Split(body, "\n")
	require.Len(t, lines, 5)

	require.Equal(t, strings.Repeat(" ", 45)+"|NS|He|Tu|Ex|Ma|La|De|Ob|Gr|Notes", lines[0])
	require.Equal(t, strings.Repeat(" ", 45)+"+--+--+--+--+--+--+--+--+--+-------", lines[1])

	// Nonteaching students are left off the working grid.
	format := "%-28s %-3s %-3s %-1s %-1s %3s |__|__|__|__|__|__|__|__|__|_______"
	require.Equal(t, fmt.Sprintf(format, "Dirac, Paul (2)", "Fer", "HE", "T", "*", "15"), lines[2])
	require.Equal(t, fmt.Sprintf(format, "Strassmann, Fritz (3)", "Fer", "NUC", "E", "*", "15"), lines[3])
}

func TestTARosterTemplate(t *testing.T) {
	db, _ := reportFixture()

	body := TARosterTemplate(db, "b")

	want := "Curie,Irene,5,icurie,Bohr,NUC,RA,0,\n" +
		"Dirac,Paul,2,pdirac,Fermi/Bohr,HE,TA,15,*\n" +
		"Meitner,Lise,5,lmeitner,Bohr,NUC,G,0,\n" +
		"Strassmann,Fritz,3,fstrass,Fermi,NUC,TA,15,*\n"
	require.Equal(t, want, string(body))

	// The template is the roster input for the assignment reports.
	path := filepath.Join(t.TempDir(), "ta-roster.csv")
	require.NoError(t, os.WriteFile(path, body, 0o644))
	tas, err := roster.ReadRoster(path)
	require.NoError(t, err)
	require.Len(t, tas, 4)
	require.Equal(t, "Strassmann:Fritz", tas[3].Key())
	require.Equal(t, 15, tas[3].Quota)
	require.Equal(t, 0, tas[0].Quota)
}

func TestGenerate(t *testing.T) {
	db, faculty := reportFixture()
	dir := t.TempDir()

	paths, err := Generate(dir, GenerateOptions{
		Date:              reportDate(),
		ResearchCommittee: true,
		TA:                true,
		TATerm:            "b",
	}, db, faculty)
	require.NoError(t, err)

	wantNames := []string{
		"student-status-contact-210815.txt",
		"student-status-group-advisor-funding-210815.txt",
		"student-status-group-advisor-contact-210815.txt",
		"student-status-meeting-210815.txt",
		"advising-by-faculty-210815.txt",
		"advising-by-student-210815.txt",
		"advising-load-210815.txt",
		"research-committees-by-faculty-210815.txt",
		"ta-list-210815.txt",
		"ta-roster-notes-210815.txt",
		"ta-roster-TEMPLATE-210815.csv",
	}
	require.Len(t, paths, len(wantNames))
	for i, name := range wantNames {
		require.Equal(t, filepath.Join(dir, name), paths[i])
		_, statErr := os.Stat(paths[i])
		require.NoError(t, statErr)
	}
}

func TestGenerateWithoutOptionalReports(t *testing.T) {
	db, faculty := reportFixture()
	dir := t.TempDir()

	paths, err := Generate(dir, GenerateOptions{Date: reportDate()}, db, faculty)
	require.NoError(t, err)
	require.Len(t, paths, 6)
	for _, path := range paths {
		require.NotContains(t, path, "ta-")
		require.NotContains(t, path, "advising-load")
	}
}
