// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// timeslot.go - Registrar meeting time compression.

package roster

import (
	"regexp"
	"strings"
)

// Registrar exports spell out meeting times as "M W F - 11:30A - 12:20P".
// Reports compress them to "MWF 11:30A-12:20P". A section meeting at
// different times on different days carries several timeslots joined by "/".
var timeslotPattern = regexp.MustCompile(`^([MTWRF\s]+) - (\S+ - \S+)`)

// CompressTimeslot rewrites a registrar meeting time in compact form.
// "TBD" and values that do not parse pass through unchanged.
func CompressTimeslot(timeslot string) string {
	parts := strings.Split(timeslot, "/")
	for i, part := range parts {
		parts[i] = compressSingleTimeslot(part)
	}
	return strings.Join(parts, " / ")
}

func compressSingleTimeslot(timeslot string) string {
	timeslot = strings.TrimSpace(timeslot)
	if timeslot == "TBD" {
		return timeslot
	}
	m := timeslotPattern.FindStringSubmatch(timeslot)
	if m == nil {
		return timeslot
	}
	days := strings.ReplaceAll(m[1], " ", "")
	times := strings.ReplaceAll(m[2], " ", "")
	return days + " " + times
}
