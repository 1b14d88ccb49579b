// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for ptatools.
package cli

import (
	"fmt"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdHelp Command = iota
	CmdAssignments
	CmdStudents
	CmdClassList
	CmdScheduling
	CmdSurvey
	CmdRequests
	CmdDiff
	CmdHistory
	CmdWatch
	CmdReview
	CmdAssign
	CmdVersion
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Dir        string // data directory override (--dir)
	ConfigPath string // tool config override (--config)
	Quiet      bool
	Verbose    bool
	NoColor    bool
	JSON       bool // machine output for version/history

	// Command-specific
	Version    string // draft version for assignments/students
	Term       string // diff: term code
	VersionA   string // diff: left version
	VersionB   string // diff: right version
	Kind       string // survey: extraction kind
	Subcommand string // history: "show"
	ID         string // history show: run id prefix
	Limit      int    // history: --limit
	Preview    bool   // diff: --preview

	// Raw args (remaining after flag parsing)
	Raw []string

	// Options holds command-specific named options
	Options map[string]string
}

const usageText = `ptatools - TA assignment planning reports for a physics department

Ptatools turns the registrar's and survey tools' CSV exports into the
fixed-width text reports used to plan teaching assignments each term,
and keeps successive drafts of those reports diffable.

Usage:
  ptatools assignments <version>   Roster + slots -> assignment reports
  ptatools students <version>      Student database -> status/advising reports
  ptatools classlist               Registrar CourseLeaf export -> class list
  ptatools scheduling              Availability survey -> exam scheduling grid
  ptatools survey <kind>           TA survey export -> per-respondent report
  ptatools requests                Course-request survey -> request reports
  ptatools diff <term> <va> <vb>   Diff two assignment report drafts
  ptatools history [show <id>]     List recorded runs / show one run
  ptatools watch                   Re-run commands when inputs change
  ptatools review                  Browse generated reports in the terminal
  ptatools assign                  Interactively fill unassigned slots
  ptatools version                 Show version information
  ptatools help                    Show this help

Survey kinds:
  student-prefs      TA course preferences from students
  faculty-prefs      TA requests from faculty
  student-feedback   End-of-term feedback from TAs
  faculty-feedback   End-of-term feedback from faculty

Command flags:
  diff --preview        Print the diffs to the terminal after writing them
  diff --dir DIR        Diff reports in DIR instead of the data directory
  history --limit N     Show the last N runs (default: 20)

Global flags:
  --dir DIR       Data directory (overrides the config)
  --config FILE   Tool config file (default: ~/.ptatools/config.toml)
  -q, --quiet     Minimal output
  -v, --verbose   Debug output
  --no-color      Disable colored output
  --json          Machine-readable output (version, history)

Every suite command reads its inputs from a YAML job spec in the data
directory (assignments.yml, students.yml, classlist.yml, scheduling.yml,
survey-<kind>.yml, requests.yml).

Examples:
  ptatools assignments 3          Write draft 3 of the assignment reports
  ptatools diff 21b 2 3           Diff drafts 2 and 3 for term 21b
  ptatools diff 21b 2 3 --preview Diff and page the result, highlighted
  ptatools history show 4fa2      Show the run whose id starts with 4fa2
`

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion prints version information.
func PrintVersion(jsonMode bool) {
	if jsonMode {
		fmt.Printf(`{"version":%q,"commit":%q,"built":%q,"go":%q}`+"\n",
			Version, GitCommit, BuildDate, runtime.Version())
		return
	}
	fmt.Printf("ptatools %s\n", Version)
	fmt.Printf("  commit: %s\n", GitCommit)
	fmt.Printf("  built:  %s\n", BuildDate)
	fmt.Printf("  go:     %s\n", runtime.Version())
}

// Parse parses os.Args-style arguments into a command and its Args.
func Parse(argv []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(argv)

	if len(remaining) == 0 {
		return CmdHelp, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "assignments", "assign-reports":
		parseVersionArg(&parsedArgs, remaining)
		return CmdAssignments, parsedArgs

	case "students":
		parseVersionArg(&parsedArgs, remaining)
		return CmdStudents, parsedArgs

	case "classlist", "classes":
		return CmdClassList, parsedArgs

	case "scheduling":
		return CmdScheduling, parsedArgs

	case "survey", "surveys":
		if len(remaining) > 0 {
			parsedArgs.Kind = strings.ToLower(remaining[0])
		}
		return CmdSurvey, parsedArgs

	case "requests":
		return CmdRequests, parsedArgs

	case "diff":
		parseDiffArgs(&parsedArgs, remaining)
		return CmdDiff, parsedArgs

	case "history", "runs":
		parseHistoryArgs(&parsedArgs, remaining)
		return CmdHistory, parsedArgs

	case "watch":
		return CmdWatch, parsedArgs

	case "review", "browse":
		return CmdReview, parsedArgs

	case "assign":
		return CmdAssign, parsedArgs

	case "version", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Unknown command: show usage rather than guessing.
		parsedArgs.Raw = append([]string{cmd}, remaining...)
		return CmdHelp, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	parsedArgs := Args{
		Options: make(map[string]string),
	}

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--no-color":
			parsedArgs.NoColor = true
		case "--json":
			parsedArgs.JSON = true
		case "--dir":
			if i+1 < len(args) {
				i++
				parsedArgs.Dir = args[i]
			}
		case "--config":
			if i+1 < len(args) {
				i++
				parsedArgs.ConfigPath = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--dir="):
				parsedArgs.Dir = strings.TrimPrefix(arg, "--dir=")
			case strings.HasPrefix(arg, "--config="):
				parsedArgs.ConfigPath = strings.TrimPrefix(arg, "--config=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parseVersionArg picks up the draft-version positional used by the
// assignments and students commands.
func parseVersionArg(args *Args, remaining []string) {
	for _, arg := range remaining {
		if !strings.HasPrefix(arg, "-") {
			args.Version = arg
			return
		}
	}
}

// parseDiffArgs parses `diff <term> <version_a> <version_b> [--preview]`.
func parseDiffArgs(args *Args, remaining []string) {
	var positional []string
	for _, arg := range remaining {
		switch arg {
		case "--preview", "-p":
			args.Preview = true
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) > 0 {
		args.Term = positional[0]
	}
	if len(positional) > 1 {
		args.VersionA = positional[1]
	}
	if len(positional) > 2 {
		args.VersionB = positional[2]
	}
}

// parseHistoryArgs parses `history [show <id>] [--limit N]`.
func parseHistoryArgs(args *Args, remaining []string) {
	parser := NewArgParser(remaining)
	args.Limit = parser.FlagIntOrDefault("limit", 0)
	if strings.ToLower(parser.Subcommand()) == "show" {
		args.Subcommand = "show"
		args.ID = parser.Positional(1)
	}
}
