// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// fields.go - in-place record reshaping for survey report printing.
//
// Survey exports encode answers three ways: radio buttons (one column per
// option, the chosen one nonempty), checkboxes (one column holding a
// delimited multi-select), and free text. Each helper rewrites the raw cell
// into its printable form, so a report body can be assembled by plain
// concatenation of fields.
package spreadsheet

import (
	"fmt"
	"strings"
)

// ConvertFieldsToFlags replaces each nonempty cell in keys with the field
// name itself plus padding. A row of radio-button columns then prints as a
// compact flag line like "He Tu Gr ".
func ConvertFieldsToFlags(rec Record, keys []string, padding string) {
	for _, key := range keys {
		if rec[key] != "" {
			rec[key] = key + padding
		}
	}
}

// ConvertFieldsToTaggedLines rewrites each cell in keys as "tag: text" with
// the given prefix and terminal padding. With prune set, empty cells become
// empty strings so they disappear from the printed block entirely.
func ConvertFieldsToTaggedLines(rec Record, keys []string, prefix, padding string, prune bool) {
	for _, key := range keys {
		if prune && rec[key] == "" {
			rec[key] = ""
			continue
		}
		rec[key] = fmt.Sprintf("%s%s: %s%s", prefix, key, rec[key], padding)
	}
}

// SplitCheckboxResponses breaks a delimited multi-select cell into one
// prefixed line per selection. An empty cell yields an empty string, not a
// single blank line.
func SplitCheckboxResponses(rec Record, keys []string, delimiter, prefix, padding string) {
	for _, key := range keys {
		cell := strings.TrimSpace(rec[key])
		if cell == "" {
			rec[key] = ""
			continue
		}
		var b strings.Builder
		for _, value := range strings.Split(cell, delimiter) {
			b.WriteString(prefix)
			b.WriteString(value)
			b.WriteString(padding)
		}
		rec[key] = b.String()
	}
}
