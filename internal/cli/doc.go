// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements argument parsing, command dispatch, and the
// command handlers for the ptatools binary.
//
// Every handler follows the same shape: Parse produces a Command and its
// Args, main routes to a Handle* function, and the handler returns an
// error that HandleErrorAndExit maps to a process exit code. Handlers
// never call os.Exit themselves.
package cli
