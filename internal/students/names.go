// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// names.go - Faculty name regularization and area descriptions.

package students

import (
	"sort"
	"strings"
)

// RegularizeName rewrites a faculty name into last-name-first form.
// Accepted inputs are "Last, First [Middle]", "First [Middle] Last", and
// "Prof. First [Middle] Last". One-word special names like "DGS" pass
// through unchanged.
func RegularizeName(name string) string {
	tokens := strings.Fields(name)
	switch {
	case len(tokens) == 0:
		return ""
	case len(tokens) == 1:
		return tokens[0]
	case strings.HasSuffix(tokens[0], ","):
		return strings.Join(tokens, " ")
	case tokens[0] == "Prof.":
		return tokens[len(tokens)-1] + ", " + strings.Join(tokens[1:len(tokens)-1], " ")
	}
	return tokens[len(tokens)-1] + ", " + strings.Join(tokens[:len(tokens)-1], " ")
}

var areaNames = map[string]string{
	"As":  "Astrophysics",
	"BP":  "Biophysics",
	"CM":  "Condensed matter",
	"HE":  "High energy",
	"NS":  "Network science",
	"NUC": "Nuclear",
}

// AreaDescription returns the plain-language research group name for the
// database area and theory/experiment codes.
func AreaDescription(area, theoryExpt string) string {
	name, ok := areaNames[area]
	if !ok {
		name = "Unaffiliated"
	}

	qualifier := ""
	switch {
	case area == "As" && theoryExpt == "Experimental":
		qualifier = "observation"
	case theoryExpt == "Experimental":
		qualifier = "experiment"
	case theoryExpt == "Theory":
		qualifier = "theory"
	}
	return name + " " + qualifier
}

// dgsSortKey sorts faculty names, pushing one-word special names such as
// "DGS" and "TBD" to the end of the list.
func dgsSortKey(name string) string {
	if !strings.Contains(name, " ") {
		return "ZZZZZ" + name
	}
	return name
}

func sortFacultyNames(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return dgsSortKey(names[i]) < dgsSortKey(names[j])
	})
}
