// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// funding.go - Funding codes and TA status heuristics.

package students

import "strings"

// TeachingStatusByFundingCode maps a funding code to whether it implies a
// departmental TA assignment.
var TeachingStatusByFundingCode = map[string]bool{
	// standard codes
	"TA":          true,  // TA funding from GA funds
	"TA-univ":     false, // teaching role supervised and paid by a university source
	"RA":          false, // RA from advisor's research funds
	"RA-ext":      false, // RA paid directly by an external source
	"RA-intern":   false, // internship paid directly by an external source
	"RA-univ":     false, // RA paid by another part of the university
	"Fellow-dept": false, // departmental endowed fellowship
	"Fellow-univ": false, // university fellowship covering base stipend
	"Fellow-ext":  false, // external fellowship
	"NS":          false, // no support
	"G":           false, // graduated
	// legacy codes
	"Fellow":        false,
	"TA-NA":         false,
	"Fellow-remote": false,
	// hybrid support
	"TA/RA":         true,
	"RA/Fellow-ext": false,
}

// TAStatusFlag classifies a funding entry from the teaching preference
// perspective: "*" for TA duty, "" for no teaching duty, "?" for an
// unrecognized or empty code.
func TAStatusFlag(funding string) string {
	fields := strings.Fields(funding)
	base := ""
	if len(fields) > 0 {
		base = fields[0]
	}

	teaching, known := TeachingStatusByFundingCode[base]
	switch {
	case !known:
		return "?"
	case teaching:
		return "*"
	}
	return ""
}

// TAHours estimates the TA hour quota from the funding entry: "0" for
// nonteaching roles, "9" for early-year fellowship TAs with reduced duty,
// "15" for regular TAs, "???" when the hours need a manual decision.
// Years compare as strings since the roster convention is single digits.
func TAHours(funding, year string) string {
	fields := strings.Fields(funding)
	base, annotation := "", ""
	if len(fields) >= 1 {
		base = fields[0]
	}
	if len(fields) >= 2 {
		annotation = fields[1]
	}

	if teaching, known := TeachingStatusByFundingCode[base]; known && !teaching {
		return "0"
	}
	if base == "TA" {
		if (annotation == "(Schmitt)" || annotation == "(Notebaert)") && year <= "2" {
			return "9"
		}
		return "15"
	}
	return "???"
}
