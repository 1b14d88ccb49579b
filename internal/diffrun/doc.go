// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diffrun compares two versions of the generated assignment
// reports and writes one unified diff file per report category.
//
// The diffs carry the whole report as context, so a reader sees the
// complete assignment listing with change markers rather than isolated
// hunks. Output files contain no timestamps: rerunning the same
// comparison produces byte-identical files.
//
// The two categories are independent. A missing input report fails only
// its own category; the other diff is still produced.
package diffrun
