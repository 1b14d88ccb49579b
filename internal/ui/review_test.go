// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, dir, name string, mod time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(name+"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) error = %v", name, err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("Chtimes(%s) error = %v", name, err)
	}
}

func TestScanReports(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	touch(t, dir, "assignments-21b-v2-ta.txt", base)
	touch(t, dir, "diff-v2-v3-ta.txt", base.Add(2*time.Minute))
	touch(t, dir, "classes-21b-210801.txt", base.Add(time.Minute))
	// Inputs and specs must stay out of the browser.
	touch(t, dir, "ta-roster.csv", base)
	touch(t, dir, "assignments.yml", base)
	touch(t, dir, "notes.txt", base)

	items, err := scanReports(dir)
	if err != nil {
		t.Fatalf("scanReports() error = %v", err)
	}

	got := make([]string, len(items))
	for i, item := range items {
		got[i] = item.name
	}
	want := []string{
		"diff-v2-v3-ta.txt",
		"classes-21b-210801.txt",
		"assignments-21b-v2-ta.txt",
		"ta-roster.csv", // ta- prefix: roster dumps are reports too
	}
	if len(got) != len(want) {
		t.Fatalf("scanReports() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("scanReports()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsReportName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"assignments-21b-v3-course.txt", true},
		{"diff-v2-v3-ta.txt", true},
		{"requests-by-faculty-21b.txt", true},
		{"students.csv", false},
		{"assignments.yml", false},
		{"readme.md", false},
	}
	for _, tt := range tests {
		if got := isReportName(tt.name); got != tt.want {
			t.Errorf("isReportName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
