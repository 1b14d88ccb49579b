// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package students turns the graduate student database snapshot into
// status, advising, and TA-planning reports.
//
// # Key Types
//
//   - Student: one postprocessed row of the student database
//   - StatusOptions: column and sorting selection for the status reports
//   - GenerateOptions: which report families a run produces
//
// The database snapshot is a registrar CSV export. Reading it derives the
// advisor/coadvisor split, the research committee set, the candidacy
// status code (D/C/W/I or blank), and the per-term funding status. The
// reports built on top feed three processes: general reference listings,
// research committee assignment, and the TA assignment machinery (whose
// roster template becomes the ta-roster.csv consumed by the assignments
// reports).
package students
