// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package registrar parses the registrar's CourseLeaf class-list export
// and produces the term class report plus the normalized class
// spreadsheet that seeds the TA assignment slots.
package registrar
