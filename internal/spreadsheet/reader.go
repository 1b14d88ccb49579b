// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// reader.go - CSV ingestion into named-field records.
package spreadsheet

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one spreadsheet row, keyed by field name.
type Record map[string]string

// Options controls how a spreadsheet is read.
type Options struct {
	// Fields names the columns, in order. Required.
	Fields []string

	// SkipLines is the number of leading header lines to drop.
	SkipLines int

	// RestVal fills fields missing from short rows. Spreadsheets whose
	// trailing column is an often-empty comment should set this to "".
	RestVal string

	// KeepNewlines leaves embedded newlines in cells instead of collapsing
	// them to " | ".
	KeepNewlines bool
}

// DefaultOptions returns Options with the usual single header line.
func DefaultOptions(fields ...string) Options {
	return Options{Fields: fields, SkipLines: 1}
}

// ReadFile reads the CSV file at path into records. See Read.
func ReadFile(path string, opts Options) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()
	recs, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// ReadTable reads the CSV file at path into raw rows, with the same ASCII
// projection and cell cleanup as Read but no header skipping and no field
// mapping. Ragged rows are returned as is; exports whose header geometry
// varies (the registrar's CourseLeaf dump) are parsed positionally by the
// caller.
func ReadTable(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(NewASCIIReader(f))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: failed to parse row %d: %w", path, len(rows)+1, err)
		}
		for i := range cells {
			cells[i] = CleanCell(cells[i], true)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// Read parses CSV rows from r into records. Input is projected onto ASCII,
// the configured header lines are skipped, and every cell is cleaned. Rows
// shorter than the field list are padded with RestVal; rows longer than the
// field list collect the extra cells into the final field, so a stray comma
// in a free-text trailing column does not kill the run.
func Read(r io.Reader, opts Options) ([]Record, error) {
	if len(opts.Fields) == 0 {
		return nil, errors.New("spreadsheet: no fields declared")
	}

	br := bufio.NewReader(NewASCIIReader(r))
	for i := 0; i < opts.SkipLines; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil, nil // nothing but headers
			}
			return nil, fmt.Errorf("failed to skip header: %w", err)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var records []Record
	row := 0
	for {
		cells, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse row %d: %w", row+1, err)
		}
		row++

		rec := make(Record, len(opts.Fields))
		last := len(opts.Fields) - 1
		for i, name := range opts.Fields {
			switch {
			case i == last && len(cells) > len(opts.Fields):
				extras := make([]string, len(cells)-last)
				for j, cell := range cells[last:] {
					extras[j] = CleanCell(cell, !opts.KeepNewlines)
				}
				rec[name] = strings.Join(extras, ", ")
			case i < len(cells):
				rec[name] = CleanCell(cells[i], !opts.KeepNewlines)
			default:
				rec[name] = opts.RestVal
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// CleanCell trims surrounding whitespace and, when replaceNewlines is set,
// collapses embedded newlines to " | " so the cell prints on one line.
func CleanCell(s string, replaceNewlines bool) string {
	s = strings.TrimSpace(s)
	if replaceNewlines {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\n", " | ")
	}
	return s
}
