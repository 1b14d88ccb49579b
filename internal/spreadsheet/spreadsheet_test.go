// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package spreadsheet reads the CSV exports the suite consumes.
package spreadsheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// =============================================================================
// ASCII PROJECTION TESTS
// =============================================================================

func TestTransliterate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii unchanged", "Smith, John", "Smith, John"},
		{"accents stripped", "Dupré, René", "Dupre, Rene"},
		{"umlaut stripped", "Müller", "Muller"},
		{"curly quotes", "“quoted” and ‘single’", `"quoted" and 'single'`},
		{"dashes", "range 9–10 — roughly", "range 9-10 - roughly"},
		{"no-break space", "a b", "a b"},
		{"nul dropped", "a\x00b", "ab"},
		{"unmappable dropped", "snow☃man", "snowman"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transliterate(tt.in)
			if got != tt.want {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// =============================================================================
// READER TESTS
// =============================================================================

func TestRead_Basic(t *testing.T) {
	input := "last,first,year\n" +
		"Smith,John,3\n" +
		"Dupré,René,1\n"

	recs, err := Read(strings.NewReader(input), DefaultOptions("last", "first", "year"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0]["last"] != "Smith" || recs[0]["year"] != "3" {
		t.Errorf("record 0 = %v", recs[0])
	}
	if recs[1]["last"] != "Dupre" || recs[1]["first"] != "Rene" {
		t.Errorf("accents not projected: %v", recs[1])
	}
}

func TestRead_ShortRowPadded(t *testing.T) {
	input := "header\n" +
		"Smith,John\n"

	opts := Options{
		Fields:    []string{"last", "first", "notes"},
		SkipLines: 1,
		RestVal:   "?",
	}
	recs, err := Read(strings.NewReader(input), opts)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if recs[0]["notes"] != "?" {
		t.Errorf("missing field = %q, want %q", recs[0]["notes"], "?")
	}
}

func TestRead_LongRowCollectsExtras(t *testing.T) {
	input := "header\n" +
		"a,b,extra\n"

	recs, err := Read(strings.NewReader(input), DefaultOptions("one", "two"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if recs[0]["one"] != "a" {
		t.Errorf("one = %q, want %q", recs[0]["one"], "a")
	}
	if recs[0]["two"] != "b, extra" {
		t.Errorf("two = %q, want %q", recs[0]["two"], "b, extra")
	}
}

func TestRead_LongRowManyExtras(t *testing.T) {
	input := "header\n" +
		"Smith,John,likes PHYS 172, not 272,ok\n"

	recs, err := Read(strings.NewReader(input), DefaultOptions("last", "first", "notes"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if recs[0]["notes"] != "likes PHYS 172, not 272, ok" {
		t.Errorf("notes = %q, want %q", recs[0]["notes"], "likes PHYS 172, not 272, ok")
	}
}

func TestRead_EmbeddedNewlines(t *testing.T) {
	input := "header\n" +
		"Smith,\"line one\nline two\"\n"

	recs, err := Read(strings.NewReader(input), DefaultOptions("last", "notes"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if recs[0]["notes"] != "line one | line two" {
		t.Errorf("notes = %q, want %q", recs[0]["notes"], "line one | line two")
	}
}

func TestRead_SkipMultipleHeaders(t *testing.T) {
	input := "title line\nblank line\ncolumn line\nval1,val2\n"

	opts := Options{Fields: []string{"a", "b"}, SkipLines: 3}
	recs, err := Read(strings.NewReader(input), opts)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(recs) != 1 || recs[0]["a"] != "val1" {
		t.Errorf("records = %v", recs)
	}
}

func TestRead_HeaderOnly(t *testing.T) {
	recs, err := Read(strings.NewReader("just,a,header\n"), DefaultOptions("a", "b", "c"))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("got %d records, want 0", len(recs))
	}
}

func TestRead_NoFields(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n"), Options{})
	if err == nil {
		t.Fatal("Read should require a field list")
	}
}

func TestReadTable_Raw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classes.csv")
	input := "annotation line\n" +
		",CRN,Course\n" +
		"PHYS 17200 Modern Mechanics,,\n" +
		",12345 ,PHYS 17200\n"
	if err := os.WriteFile(path, []byte(input), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	rows, err := ReadTable(path)
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	if len(rows[0]) != 1 {
		t.Errorf("ragged row not preserved: %v", rows[0])
	}
	if rows[1][1] != "CRN" {
		t.Errorf("rows[1] = %v", rows[1])
	}
	if rows[3][1] != "12345" {
		t.Errorf("cell not cleaned: %q", rows[3][1])
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		replace bool
		want    string
	}{
		{"trims whitespace", "  padded  ", true, "padded"},
		{"collapses newlines", "a\nb", true, "a | b"},
		{"collapses crlf", "a\r\nb", true, "a | b"},
		{"keeps newlines when asked", "a\nb", false, "a\nb"},
		{"empty", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanCell(tt.in, tt.replace)
			if got != tt.want {
				t.Errorf("CleanCell(%q, %v) = %q, want %q", tt.in, tt.replace, got, tt.want)
			}
		})
	}
}

// =============================================================================
// FIELD POSTPROCESSING TESTS
// =============================================================================

func TestConvertFieldsToFlags(t *testing.T) {
	rec := Record{"He": "Yes, I can help", "Tu": "", "Gr": "x"}
	ConvertFieldsToFlags(rec, []string{"He", "Tu", "Gr"}, " ")

	if rec["He"] != "He " {
		t.Errorf("He = %q", rec["He"])
	}
	if rec["Tu"] != "" {
		t.Errorf("empty field should stay empty, got %q", rec["Tu"])
	}
	if rec["Gr"] != "Gr " {
		t.Errorf("Gr = %q", rec["Gr"])
	}
}

func TestConvertFieldsToTaggedLines(t *testing.T) {
	rec := Record{"Comments": "all good", "Concerns": ""}
	ConvertFieldsToTaggedLines(rec, []string{"Comments", "Concerns"}, "  ", "\n", true)

	if rec["Comments"] != "  Comments: all good\n" {
		t.Errorf("Comments = %q", rec["Comments"])
	}
	if rec["Concerns"] != "" {
		t.Errorf("pruned field should be empty, got %q", rec["Concerns"])
	}

	// Without pruning the empty field still prints its tag.
	rec2 := Record{"Concerns": ""}
	ConvertFieldsToTaggedLines(rec2, []string{"Concerns"}, "", "\n", false)
	if rec2["Concerns"] != "Concerns: \n" {
		t.Errorf("unpruned field = %q", rec2["Concerns"])
	}
}

func TestSplitCheckboxResponses(t *testing.T) {
	rec := Record{"courses": "PHYS 172;PHYS 241;PHYS 344", "none": "  "}
	SplitCheckboxResponses(rec, []string{"courses", "none"}, ";", "   ", "\n")

	want := "   PHYS 172\n   PHYS 241\n   PHYS 344\n"
	if rec["courses"] != want {
		t.Errorf("courses = %q, want %q", rec["courses"], want)
	}
	if rec["none"] != "" {
		t.Errorf("blank cell should produce no lines, got %q", rec["none"])
	}
}

// =============================================================================
// SELECTION TESTS
// =============================================================================

func TestFilterByField(t *testing.T) {
	records := []Record{
		{"status": "TA"},
		{"status": "RA"},
		{"status": "TA/RA"},
	}
	teaching := map[string]bool{"TA": true, "TA/RA": true}

	got := FilterByField(records, "status", teaching, false)
	if len(got) != 2 {
		t.Errorf("filter = %d records, want 2", len(got))
	}

	negated := FilterByField(records, "status", teaching, true)
	if len(negated) != 1 || negated[0]["status"] != "RA" {
		t.Errorf("negated filter = %v", negated)
	}
}

func TestTallyByFieldValue(t *testing.T) {
	records := []Record{
		{"advisor": "Garcia"},
		{"advisor": "Garcia"},
		{"advisor": "Chen"},
	}
	tally := TallyByFieldValue(records, "advisor")
	if tally["Garcia"] != 2 || tally["Chen"] != 1 {
		t.Errorf("tally = %v", tally)
	}
}

// =============================================================================
// WRITER TESTS
// =============================================================================

func TestWriteFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.csv")
	fields := []string{"last", "first", "netid"}
	records := []Record{
		{"last": "Smith", "first": "John", "netid": "jsmith"},
		{"last": "Lee", "first": "Ana", "netid": "alee"},
	}

	if err := WriteFile(path, fields, records); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	back, err := ReadFile(path, DefaultOptions(fields...))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("got %d records, want 2", len(back))
	}
	if back[0]["netid"] != "jsmith" || back[1]["last"] != "Lee" {
		t.Errorf("round trip mismatch: %v", back)
	}
}
