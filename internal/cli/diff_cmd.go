// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// diff_cmd.go - The `ptatools diff` command: version-to-version diffs of
// the assignment reports, with an optional highlighted preview.

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/jeranaias/ptatools/internal/diffrun"
)

// HandleDiff runs the diff command.
func HandleDiff(args Args) error {
	if args.Term == "" || args.VersionA == "" || args.VersionB == "" {
		return ErrMissingArgument("term/version_a/version_b", "ptatools diff 21b 2 3")
	}

	rc, err := newRunContext(args)
	if err != nil {
		return err
	}
	defer rc.Close()

	results, runErr := diffrun.Run(rc.dir, args.Term, args.VersionA, args.VersionB)

	var written []string
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("Error:"), res.Err)
			continue
		}
		written = append(written, res.Output)
		if !args.Quiet {
			change := DimStyle.Render("(no changes)")
			if res.Changed {
				change = HighlightStyle.Render("(changed)")
			}
			fmt.Printf("%s %s %s\n", SuccessStyle.Render("wrote"), res.Output, change)
		}
	}

	if rc.store != nil {
		if run, err := rc.store.Begin("diff", args.Term, args.VersionA+".."+args.VersionB); err == nil {
			rc.store.Finish(run, written, runErr)
		}
	}

	if args.Preview {
		for _, res := range results {
			if res.Err != nil || !res.Changed {
				continue
			}
			if err := previewDiff(rc.dir, res.Output); err != nil {
				fmt.Fprintf(os.Stderr, "%s preview of %s failed: %v\n",
					WarningStyle.Render("Warning:"), res.Output, err)
			}
		}
	}

	if runErr != nil {
		return NewCommandError("diff", "one or more categories failed", runErr)
	}
	return nil
}

// previewDiff prints one written diff to the terminal with syntax
// highlighting, falling back to plain text when colors are off.
func previewDiff(dir, name string) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(TitleStyle.Render("== " + name + " =="))

	if !ColorsEnabled() {
		fmt.Print(string(data))
		return nil
	}

	lexer := lexers.Get("diff")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(data))
	if err != nil {
		return err
	}
	return formatter.Format(os.Stdout, style, iterator)
}
