// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package survey

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/ptatools/internal/spreadsheet"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestDropTestSubmissions(t *testing.T) {
	recs := []spreadsheet.Record{
		{"last": "Curie", "name": "Quantum Mechanics I"},
		{"last": "TEST", "name": "whatever"},
		{"last": "Fermi", "name": "TEST"},
	}

	kept := DropTestSubmissions(recs, "last")
	if len(kept) != 2 {
		t.Fatalf("DropTestSubmissions(last) kept %d records, want 2", len(kept))
	}

	kept = DropTestSubmissions(recs, "last", "name")
	if len(kept) != 1 || kept[0]["last"] != "Curie" {
		t.Fatalf("DropTestSubmissions(last, name) = %v, want only Curie", kept)
	}
}

func TestSortByRespondent(t *testing.T) {
	recs := []spreadsheet.Record{
		{"last": "strassmann", "first": "Fritz", "timestamp": "2"},
		{"last": "Curie", "first": "Irene", "timestamp": "3"},
		{"last": "Curie", "first": "Irene", "timestamp": "1"},
		{"last": "CURIE", "first": "Eve", "timestamp": "4"},
	}
	SortByRespondent(recs, "timestamp")

	var got []string
	for _, rec := range recs {
		got = append(got, rec["first"]+"/"+rec["timestamp"])
	}
	want := []string{"Eve/4", "Irene/1", "Irene/3", "Fritz/2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v, want %v", got, want)
		}
	}
}

const studentPreferencesFixture = "Timestamp,Username,Last name,First Name,Preferred,Class conflicts,Seminar conflicts,Additional,Exclude\n" +
	"8/10/2021 10:12:33,fstrass@nd.edu,Strassmann,Fritz,Grading homework;Office hours,PHYS 70007,,none,\n" +
	"8/09/2021 09:00:00,icurie@nd.edu,Curie,Irene,Lab sections,,Journal club,,Prof. Hahn\n" +
	"8/01/2021 08:00:00,test@nd.edu,TEST,Form,,,,,\n"

func TestStudentPreferencesReport(t *testing.T) {
	path := writeTempCSV(t, "responses.csv", studentPreferencesFixture)
	recs, err := Load(path, StudentPreferenceFields)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := "Curie, Irene\n" +
		"Preferred types:\n" +
		"   Lab sections\n" +
		"Conflicts:\n" +
		"   Journal club\n" +
		"Other: \n" +
		"Exclude: Prof. Hahn\n" +
		"\n" +
		"Strassmann, Fritz\n" +
		"Preferred types:\n" +
		"   Grading homework\n" +
		"   Office hours\n" +
		"Conflicts:\n" +
		"   PHYS 70007\n" +
		"Other: none\n" +
		"Exclude: \n" +
		"\n"
	if got := string(StudentPreferencesReport(recs)); got != want {
		t.Errorf("StudentPreferencesReport() =\n%q\nwant\n%q", got, want)
	}

	// The report works on its own copy of the table.
	if recs[0]["preferred"] != "Grading homework;Office hours" {
		t.Errorf("input record mutated: preferred = %q", recs[0]["preferred"])
	}
}

const facultyPreferencesFixture = "Timestamp,Username,Last name,First name,Course ID,Course name,Expected enrollment,GH,GW,GE,H,O,Common details,GH-NS,GE-NS,A,X,Uncommon details,Other\n" +
	"1/12/2021 14:00:00,efermi@nd.edu,FERMI,Enrico,PHYS 20210,Physics for Life Sciences I,90,weekly,,2 exams,,,Solutions on Fridays,,,weekly,,need lecture attendance,none\n" +
	"1/11/2021 09:30:00,nbohr@nd.edu,Bohr,Niels,PHYS 70007,Quantum Mechanics I,25,,,,,,,,,,,,\n" +
	"1/10/2021 08:00:00,asommer@nd.edu,Sommerfeld,Arnold,PHYS 99999,TEST,0,,,,,,,,,,,,\n"

func TestFacultyPreferencesReport(t *testing.T) {
	path := writeTempCSV(t, "responses.csv", facultyPreferencesFixture)
	recs, err := Load(path, FacultyPreferenceFields)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := "Submitted: Bohr, Fermi\n" +
		"\n" +
		"Bohr, Niels\n" +
		"Course: PHYS 70007 / Quantum Mechanics I (25)\n" +
		"Common: \n" +
		"Notes: \n" +
		"Uncommon: \n" +
		"Notes: \n" +
		"Other: \n" +
		"\n" +
		"FERMI, Enrico\n" +
		"Course: PHYS 20210 / Physics for Life Sciences I (90)\n" +
		"Common: GH GE \n" +
		"Notes: Solutions on Fridays\n" +
		"Uncommon: A \n" +
		"Notes: need lecture attendance\n" +
		"Other: none\n" +
		"\n"
	if got := string(FacultyPreferencesReport(recs)); got != want {
		t.Errorf("FacultyPreferencesReport() =\n%q\nwant\n%q", got, want)
	}
}

const studentFeedbackFixture = "Timestamp,Username,Last name,First name,Course name,Course number,Lab preparation,Lab contact,Lab grading,Tutorial preparation,Tutorial contact,Tutorial grading,Homework grading,Written grading,Exam grading,Proctoring,Office hours,Homework grading (no solutions),Exam grading (no solutions),Proctoring (unsupervised),Attending lectures,Other,Feedback\n" +
	"12/15/2021 10:00:00,pdirac@nd.edu,Dirac,Paul,Electromagnetism,60050,,,,,,,2 hrs/week,,1 exam,,,,,,,,Good balance\n" +
	"12/11/2021 09:00:00,icurie@nd.edu,Curie,Irene,Quantum Field Theory I,80003,,,,,,,,,,,,,,,weekly,,second term\n" +
	"12/10/2021 09:00:00,icurie@nd.edu,Curie,Irene,Intro Lab,10310,Setup took long,,,,,,,,,,,,,,,,first term\n"

func TestStudentFeedbackReport(t *testing.T) {
	path := writeTempCSV(t, "responses.csv", studentFeedbackFixture)
	recs, err := Load(path, StudentFeedbackFields)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := "Curie, Irene\n" +
		"Course: 10310\n" +
		"Lab-prep: Setup took long\n" +
		"Comments: first term\n" +
		"\n" +
		"Curie, Irene\n" +
		"Course: 80003\n" +
		"Attending: weekly\n" +
		"Comments: second term\n" +
		"\n" +
		"Dirac, Paul\n" +
		"Course: 60050\n" +
		"HW-grading: 2 hrs/week\n" +
		"Exam-grading: 1 exam\n" +
		"Comments: Good balance\n" +
		"\n"
	if got := string(StudentFeedbackReport(recs)); got != want {
		t.Errorf("StudentFeedbackReport() =\n%q\nwant\n%q", got, want)
	}
}

const facultyFeedbackFixture = "Timestamp,Username,Course number,Course name,Last name,First name,Role,Special,Comments\n" +
	"12/20/2021 08:00:00,efermi@nd.edu,20210,Physics for Life Sciences I,Strassmann,Fritz,Grader,\"Excellent, consistent\",Raise his pay\n" +
	"12/18/2021 07:00:00,nbohr@nd.edu,70007,Quantum Mechanics I,Dirac,Paul,Tutorial leader,,Did well\n"

func TestFacultyFeedbackReport(t *testing.T) {
	path := writeTempCSV(t, "responses.csv", facultyFeedbackFixture)
	recs, err := Load(path, FacultyFeedbackFields)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := "Dirac, Paul\n" +
		"Course: PHYS 70007 / Quantum Mechanics I / nbohr@nd.edu\n" +
		"Role: Tutorial leader\n" +
		"Special: \n" +
		"Comments: Did well\n" +
		"\n" +
		"Strassmann, Fritz\n" +
		"Course: PHYS 20210 / Physics for Life Sciences I / efermi@nd.edu\n" +
		"Role: Grader\n" +
		"Special: Excellent\n" +
		"Comments: Raise his pay\n" +
		"\n"
	if got := string(FacultyFeedbackReport(recs)); got != want {
		t.Errorf("FacultyFeedbackReport() =\n%q\nwant\n%q", got, want)
	}
}

func TestExtractionOutputNames(t *testing.T) {
	wants := map[Kind]string{
		StudentPreferences: "ta-student-preferences-22a.txt",
		FacultyPreferences: "ta-faculty-preferences-22a.txt",
		StudentFeedback:    "ta-student-feedback-22a.txt",
		FacultyFeedback:    "ta-faculty-feedback-22a.txt",
	}
	for kind, want := range wants {
		e, ok := Extractions[kind]
		if !ok {
			t.Fatalf("Extractions missing kind %q", kind)
		}
		if got := e.OutputName("22a"); got != want {
			t.Errorf("OutputName(%q) = %q, want %q", kind, got, want)
		}
	}
}

func TestExtractionGenerate(t *testing.T) {
	responses := writeTempCSV(t, "responses.csv", studentPreferencesFixture)
	dir := t.TempDir()

	path, err := Extractions[StudentPreferences].Generate(dir, "21b", responses)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if want := filepath.Join(dir, "ta-student-preferences-21b.txt"); path != want {
		t.Fatalf("Generate() path = %q, want %q", path, want)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(body), "Curie, Irene\n") {
		t.Errorf("report starts with %q", strings.SplitN(string(body), "\n", 2)[0])
	}
	if strings.Contains(string(body), "TEST") {
		t.Error("report still carries the test submission")
	}
}
