// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package survey extracts web-survey CSV exports into the text reports
// circulated during TA assignment and course scheduling.
//
// # Key Types
//
//   - Kind: which TA survey an extraction handles
//   - Extraction: column list, report renderer, and filename stem per Kind
//   - SchedulingOptions: grid layout for the availability survey
//
// All extractions share one shape: load the export with a positional
// field list, drop test submissions, sort respondents case-insensitively,
// reshape the form cells (checkbox splits, radio flags, tagged lines),
// and print one block or grid row per respondent. The four TA surveys are
// table-driven through Extractions; the availability grid and the
// course-request reports carry their own entry points because their
// column lists come from the job spec rather than a fixed form.
package survey
