// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// select.go - record filtering and field extraction.
package spreadsheet

// FilterByField selects the records whose value for key is in values.
// With negate set, selects the records whose value is not in values.
func FilterByField(records []Record, key string, values map[string]bool, negate bool) []Record {
	var out []Record
	for _, rec := range records {
		if values[rec[key]] != negate {
			out = append(out, rec)
		}
	}
	return out
}

// FieldValues extracts the value of key from every record, in order.
func FieldValues(records []Record, key string) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec[key])
	}
	return out
}

// TallyByFieldValue counts how many records carry each distinct value of key.
func TallyByFieldValue(records []Record, key string) map[string]int {
	tally := make(map[string]int)
	for _, rec := range records {
		tally[rec[key]]++
	}
	return tally
}
