// ptadiff - Diff two versions of the TA assignment reports.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Standalone counterpart to `ptatools diff` for use in shell pipelines:
// it takes its arguments positionally and works on the current directory.
package main

import (
	"fmt"
	"os"

	"github.com/jeranaias/ptatools/internal/diffrun"
)

const usage = "ptadiff <term> <version_a> <version_b>"

func main() {
	args := os.Args[1:]
	if len(args) < 3 || args[0] == "-h" || args[0] == "--help" {
		fmt.Println(usage)
		os.Exit(0)
	}

	results, runErr := diffrun.Run(".", args[0], args[1], args[2])
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "ptadiff: %v\n", res.Err)
		}
	}
	if runErr != nil {
		os.Exit(1)
	}
}
