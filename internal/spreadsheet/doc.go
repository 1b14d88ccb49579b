// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package spreadsheet reads the CSV exports the suite consumes (registrar
// dumps, survey results, roster and slot tables) into named-field records,
// applying the cell cleanup every downstream report depends on.
//
// # Key Types
//
//   - Record: one row as a field-name -> cell map
//   - Options: field list, header skip, and cleanup controls
//
// # Ingestion Pipeline
//
// Input bytes are transliterated to ASCII (curly quotes, dashes, and
// accented letters from web forms are projected onto their plain
// equivalents), NUL bytes are dropped, the configured number of header lines
// is skipped, and each cell is trimmed with embedded newlines collapsed to
// " | " so a cell always fits on one report line.
//
// # Usage
//
//	recs, err := spreadsheet.ReadFile("ta-roster.csv", spreadsheet.Options{
//	    Fields:  []string{"last", "first", "year", "netid"},
//	    RestVal: "?",
//	})
//
// Post-processing helpers (ConvertFieldsToFlags, SplitCheckboxResponses,
// ConvertFieldsToTaggedLines) reshape survey cells for report printing.
package spreadsheet
