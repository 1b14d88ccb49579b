// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report provides the shared pieces of the fixed-width text reports:
// column cells, headers, and atomic report files.
//
// Report bodies are assembled by the domain packages (roster, students,
// registrar, survey) into a buffer and saved through Save, so a regenerated
// report is never observable half-written.
package report
