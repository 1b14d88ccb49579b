// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// writer.go - CSV export for templates and write-back.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jeranaias/ptatools/internal/util"
)

// WriteTable writes raw rows to a CSV file atomically.
func WriteTable(path string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to encode csv: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteFile writes records to a CSV file with a header row built from
// fields. Reading the result back with SkipLines set to 1 and the same
// field list round-trips the data.
func WriteFile(path string, fields []string, records []Record) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, fields)
	for _, rec := range records {
		row := make([]string, len(fields))
		for i, name := range fields {
			row[i] = rec[name]
		}
		rows = append(rows, row)
	}
	return WriteTable(path, rows)
}
