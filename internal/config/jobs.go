// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// jobs.go - Per-job YAML specs for ptatools commands.
//
// Each suite command reads one spec file from the data directory describing
// the run: the term, the input spreadsheets, and command-specific knobs.
// The spec files are small, hand-edited YAML:
//
//	assignments.yml      roster/slots inputs for `ptatools assignments`
//	students.yml         student database inputs for `ptatools students`
//	classlist.yml        registrar export for `ptatools classlist`
//	scheduling.yml       availability survey for `ptatools scheduling`
//	survey-<kind>.yml    survey export for `ptatools survey <kind>`
//	requests.yml         course-request survey for `ptatools requests`
//
// A missing spec is a configuration error naming the expected path, not a
// silent fallback: these files are how a run is described at all.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// JOB SPEC ERRORS
// =============================================================================

// JobSpecError reports a missing or unreadable job spec file.
type JobSpecError struct {
	Path string // Spec file that was expected
	Err  error  // Underlying error
}

func (e *JobSpecError) Error() string {
	if os.IsNotExist(e.Err) {
		return fmt.Sprintf("job spec not found: %s", e.Path)
	}
	return fmt.Sprintf("job spec %s: %v", e.Path, e.Err)
}

func (e *JobSpecError) Unwrap() error {
	return e.Err
}

// loadJob reads and unmarshals one YAML spec file.
func loadJob(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &JobSpecError{Path: path, Err: err}
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return &JobSpecError{Path: path, Err: err}
	}
	return nil
}

// Resolve joins a spec-relative input path onto the data directory.
// Absolute paths pass through unchanged.
func Resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// =============================================================================
// ASSIGNMENTS
// =============================================================================

// AssignmentsJob describes one `ptatools assignments` run.
type AssignmentsJob struct {
	// Term is the term stamp used in output names (e.g., "21b")
	Term string `yaml:"term"`
	// Roster is the TA roster CSV (relative to the data directory)
	Roster string `yaml:"roster"`
	// Slots is the teaching-slots CSV
	Slots string `yaml:"slots"`
	// ShowNetIDs adds the ta-netid report variant
	ShowNetIDs bool `yaml:"show_netids"`
}

// Validate checks the spec for required fields.
func (j *AssignmentsJob) Validate() error {
	if j.Term == "" {
		return fmt.Errorf("assignments spec: term is required")
	}
	if j.Roster == "" {
		return fmt.Errorf("assignments spec: roster is required")
	}
	if j.Slots == "" {
		return fmt.Errorf("assignments spec: slots is required")
	}
	return nil
}

// LoadAssignments loads <dir>/assignments.yml.
func LoadAssignments(dir string) (*AssignmentsJob, error) {
	var job AssignmentsJob
	if err := loadJob(filepath.Join(dir, "assignments.yml"), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// =============================================================================
// STUDENTS
// =============================================================================

// StudentsJob describes one `ptatools students` run.
type StudentsJob struct {
	// Term is the term stamp used in output names
	Term string `yaml:"term"`
	// Database is the graduate-student database CSV
	Database string `yaml:"database"`
	// Faculty is the faculty list file (one name per line)
	Faculty string `yaml:"faculty"`
	// Committees optionally supplements the database's committee columns
	Committees string `yaml:"committees"`
	// TATerm selects the funding column for TA reports (e.g., "Fall", "Spring");
	// empty skips the TA reports
	TATerm string `yaml:"ta_term"`
	// ResearchCommittee includes the research-committee reports
	ResearchCommittee bool `yaml:"research_committee"`
}

// Validate checks the spec for required fields.
func (j *StudentsJob) Validate() error {
	if j.Term == "" {
		return fmt.Errorf("students spec: term is required")
	}
	if j.Database == "" {
		return fmt.Errorf("students spec: database is required")
	}
	return nil
}

// LoadStudents loads <dir>/students.yml.
func LoadStudents(dir string) (*StudentsJob, error) {
	var job StudentsJob
	if err := loadJob(filepath.Join(dir, "students.yml"), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// =============================================================================
// CLASS LIST
// =============================================================================

// ClassListJob describes one `ptatools classlist` run.
type ClassListJob struct {
	// Term is the term stamp used in output names
	Term string `yaml:"term"`
	// Input is the CourseLeaf registrar export CSV
	Input string `yaml:"input"`
	// Blacklist lists course numbers to skip (e.g., thesis placeholders)
	Blacklist []string `yaml:"blacklist"`
}

// Validate checks the spec for required fields.
func (j *ClassListJob) Validate() error {
	if j.Term == "" {
		return fmt.Errorf("classlist spec: term is required")
	}
	if j.Input == "" {
		return fmt.Errorf("classlist spec: input is required")
	}
	return nil
}

// LoadClassList loads <dir>/classlist.yml.
func LoadClassList(dir string) (*ClassListJob, error) {
	var job ClassListJob
	if err := loadJob(filepath.Join(dir, "classlist.yml"), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// =============================================================================
// SCHEDULING
// =============================================================================

// SchedulingJob describes one `ptatools scheduling` run.
type SchedulingJob struct {
	// Term is the term stamp used in the output name
	Term string `yaml:"term"`
	// Responses is the availability-survey CSV export
	Responses string `yaml:"responses"`
	// Dates are the exam dates surveyed, in column order
	Dates []string `yaml:"dates"`
	// Codes maps survey response text to single-character grid codes
	Codes map[string]string `yaml:"codes"`
	// NameWidth and DateWidth override the grid column widths (0 = default)
	NameWidth int `yaml:"name_width"`
	DateWidth int `yaml:"date_width"`
}

// Validate checks the spec for required fields.
func (j *SchedulingJob) Validate() error {
	if j.Term == "" {
		return fmt.Errorf("scheduling spec: term is required")
	}
	if j.Responses == "" {
		return fmt.Errorf("scheduling spec: responses is required")
	}
	if len(j.Dates) == 0 {
		return fmt.Errorf("scheduling spec: dates is required")
	}
	return nil
}

// LoadScheduling loads <dir>/scheduling.yml.
func LoadScheduling(dir string) (*SchedulingJob, error) {
	var job SchedulingJob
	if err := loadJob(filepath.Join(dir, "scheduling.yml"), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// =============================================================================
// SURVEYS
// =============================================================================

// SurveyJob describes one `ptatools survey <kind>` run.
type SurveyJob struct {
	// Term is the term stamp used in the output name
	Term string `yaml:"term"`
	// Responses is the survey CSV export
	Responses string `yaml:"responses"`
	// Fields optionally overrides the extraction's field list when the survey
	// tool reordered or renamed its columns
	Fields []string `yaml:"fields"`
}

// Validate checks the spec for required fields.
func (j *SurveyJob) Validate() error {
	if j.Term == "" {
		return fmt.Errorf("survey spec: term is required")
	}
	if j.Responses == "" {
		return fmt.Errorf("survey spec: responses is required")
	}
	return nil
}

// LoadSurvey loads <dir>/survey-<kind>.yml.
func LoadSurvey(dir, kind string) (*SurveyJob, error) {
	var job SurveyJob
	if err := loadJob(filepath.Join(dir, "survey-"+kind+".yml"), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// =============================================================================
// COURSE REQUESTS
// =============================================================================

// RequestsJob describes one `ptatools requests` run.
type RequestsJob struct {
	// TermName is the human term name used in report headers (e.g., "Fall 2021")
	TermName string `yaml:"term_name"`
	// TermTag is the short stamp used in output names (e.g., "21b")
	TermTag string `yaml:"term_tag"`
	// Responses is the course-request survey CSV export
	Responses string `yaml:"responses"`
	// Courses are the course numbers ranked in the survey, in column order
	Courses []string `yaml:"courses"`
}

// Validate checks the spec for required fields.
func (j *RequestsJob) Validate() error {
	if j.TermTag == "" {
		return fmt.Errorf("requests spec: term_tag is required")
	}
	if j.Responses == "" {
		return fmt.Errorf("requests spec: responses is required")
	}
	if len(j.Courses) == 0 {
		return fmt.Errorf("requests spec: courses is required")
	}
	return nil
}

// LoadRequests loads <dir>/requests.yml.
func LoadRequests(dir string) (*RequestsJob, error) {
	var job RequestsJob
	if err := loadJob(filepath.Join(dir, "requests.yml"), &job); err != nil {
		return nil, err
	}
	return &job, nil
}
