// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// registrar.go - CourseLeaf class-list parsing and the class reports.

package registrar

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/ptatools/internal/report"
	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

// Listing is one section row of the registrar's CourseLeaf export.
type Listing struct {
	Course          string
	Section         string
	CRN             string
	Enrollment      string
	MaxEnrollment   string
	CrossListings   string
	Title           string
	Instructor      string // "Last, First & Last, First"
	ShortInstructor string // "Last & Last"
	When            string
	Where           string
}

// CourseLeaf export geometry: two annotation lines, then the field tag
// line with a blank first cell, then rows grouped by class. A group
// leads with the class title in the first cell; its section rows follow
// with the first cell blank.
const courseLeafHeaderRows = 3

// ReadClassList loads the CourseLeaf export at path, dropping sections
// whose course number is blacklisted.
func ReadClassList(path string, blacklist []string) ([]Listing, error) {
	rows, err := spreadsheet.ReadTable(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class list: %w", err)
	}
	if len(rows) < courseLeafHeaderRows {
		return nil, fmt.Errorf("%s: class list export is missing its header rows", path)
	}

	fields := rows[courseLeafHeaderRows-1][1:]

	blacklisted := make(map[string]bool, len(blacklist))
	for _, course := range blacklist {
		blacklisted[course] = true
	}

	var listings []Listing
	for _, row := range rows[courseLeafHeaderRows:] {
		if len(row) == 0 || row[0] != "" {
			continue // class title row
		}
		cells := make(map[string]string, len(fields))
		for i, name := range fields {
			if i+1 < len(row) {
				cells[name] = row[i+1]
			}
		}

		l := Listing{
			Course:        cells["Course"],
			Section:       cells["Section #"],
			CRN:           cells["CRN"],
			Enrollment:    cells["Enrollment"],
			MaxEnrollment: cells["Maximum Enrollment"],
			CrossListings: cells["Cross-listings"],
			Title:         cells["Course Title"],
			When:          cells["Meeting Pattern"],
			Where:         cells["Room"],
		}
		l.Instructor, l.ShortInstructor = parseInstructors(cells["Instructor"])
		if blacklisted[l.Course] {
			continue
		}
		listings = append(listings, l)
	}
	return listings, nil
}

// parseInstructors reduces a CourseLeaf instructor cell like
// "Howk, Chris (JHOWK) [Primary, 50%]; Rudenga, Kristi (KRUDENGA) [50%]"
// to "Howk, Chris & Rudenga, Kristi" and "Howk & Rudenga".
func parseInstructors(raw string) (full, short string) {
	var fullNames, shortNames []string
	for _, part := range strings.Split(raw, ";") {
		if strings.Contains(part, "To Be Determined") {
			fullNames = append(fullNames, "TBD")
			shortNames = append(shortNames, "TBD")
			continue
		}
		part = strings.TrimSpace(part)
		last, rest, _ := strings.Cut(part, ", ")
		first, _, _ := strings.Cut(rest, " ")
		fullNames = append(fullNames, last+", "+first)
		shortNames = append(shortNames, last)
	}
	return strings.Join(fullNames, " & "), strings.Join(shortNames, " & ")
}

// ============================================================================
// Reports
// ============================================================================

var spreadsheetFields = []string{
	"course", "section", "crn", "enrollment", "max_enrollment", "xlist",
	"title", "instructor", "when", "where",
}

// ClassReport renders the one-line-per-section listing circulated while
// planning TA assignments.
func ClassReport(listings []Listing) []byte {
	var b bytes.Buffer
	for _, l := range listings {
		fmt.Fprintf(&b, "%s / %s / %s / %s\n", l.Course, l.Title, l.ShortInstructor, l.When)
	}
	return b.Bytes()
}

// ClassSpreadsheet writes the normalized section table as CSV, the
// starting point for the assignment slots spreadsheet.
func ClassSpreadsheet(path string, listings []Listing) error {
	rows := make([][]string, 0, len(listings)+1)
	rows = append(rows, spreadsheetFields)
	for _, l := range listings {
		rows = append(rows, []string{
			l.Course, l.Section, l.CRN, l.Enrollment, l.MaxEnrollment,
			l.CrossListings, l.Title, l.Instructor, l.When, l.Where,
		})
	}
	return spreadsheet.WriteTable(path, rows)
}

// OutputNames returns the report and spreadsheet filenames for a term
// code and date.
func OutputNames(term string, date time.Time) (reportName, sheetName string) {
	dateCode := date.Format("060102")
	return fmt.Sprintf("classes-%s-%s.txt", term, dateCode),
		fmt.Sprintf("classes-%s-%s.csv", term, dateCode)
}

// Generate writes both outputs into dir and returns the paths written.
func Generate(dir, term string, date time.Time, listings []Listing) ([]string, error) {
	reportName, sheetName := OutputNames(term, date)

	reportPath := filepath.Join(dir, reportName)
	if err := report.Save(reportPath, ClassReport(listings)); err != nil {
		return nil, err
	}

	sheetPath := filepath.Join(dir, sheetName)
	if err := ClassSpreadsheet(sheetPath, listings); err != nil {
		return []string{reportPath}, err
	}
	return []string{reportPath, sheetPath}, nil
}
