// ptatools - TA assignment planning reports for a physics department.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"

	"github.com/jeranaias/ptatools/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.4.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse(os.Args[1:])

	if args.NoColor {
		cli.DisableColors()
	}

	switch cmd {
	case cli.CmdAssignments:
		cli.HandleErrorAndExit(cli.HandleAssignments(args))
	case cli.CmdStudents:
		cli.HandleErrorAndExit(cli.HandleStudents(args))
	case cli.CmdClassList:
		cli.HandleErrorAndExit(cli.HandleClassList(args))
	case cli.CmdScheduling:
		cli.HandleErrorAndExit(cli.HandleScheduling(args))
	case cli.CmdSurvey:
		cli.HandleErrorAndExit(cli.HandleSurvey(args))
	case cli.CmdRequests:
		cli.HandleErrorAndExit(cli.HandleRequests(args))
	case cli.CmdDiff:
		cli.HandleErrorAndExit(cli.HandleDiff(args))
	case cli.CmdHistory:
		cli.HandleErrorAndExit(cli.HandleHistory(args))
	case cli.CmdWatch:
		cli.HandleErrorAndExit(cli.HandleWatch(args))
	case cli.CmdReview:
		cli.HandleErrorAndExit(cli.HandleReview(args))
	case cli.CmdAssign:
		cli.HandleErrorAndExit(cli.HandleAssign(args))
	case cli.CmdVersion:
		cli.PrintVersion(args.JSON)
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		cli.PrintUsage()
	}
}
