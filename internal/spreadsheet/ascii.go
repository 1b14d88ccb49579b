// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ascii.go - ASCII projection of spreadsheet input.
//
// Web survey exports arrive full of curly quotes, long dashes, no-break
// spaces, and accented names. Reports are plain fixed-width ASCII, so all
// input is projected onto ASCII before parsing.
package spreadsheet

import (
	"io"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuation and whitespace lookalikes that should survive the projection
// as their plain ASCII forms rather than being dropped.
var asciiSubstitutes = map[rune]rune{
	'‘': '\'', // left single quote
	'’': '\'', // right single quote
	'‚': '\'',
	'′': '\'', // prime
	'“': '"', // left double quote
	'”': '"', // right double quote
	'„': '"',
	'″': '"', // double prime
	'‐': '-', // hyphen
	'–': '-', // en dash
	'—': '-', // em dash
	'−': '-', // minus sign
	'…': '.', // ellipsis
	' ': ' ', // no-break space
	'•': '*', // bullet
}

// asciiProjection maps arbitrary text onto ASCII: punctuation lookalikes are
// substituted, accented letters are decomposed and stripped of their
// combining marks, and whatever remains outside ASCII (plus NUL, which
// breaks CSV parsing) is removed.
var asciiProjection = transform.Chain(
	runes.ReplaceIllFormed(),
	runes.Map(func(r rune) rune {
		if sub, ok := asciiSubstitutes[r]; ok {
			return sub
		}
		return r
	}),
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool {
		return r == 0 || r > unicode.MaxASCII
	})),
)

// Transliterate projects s onto plain ASCII. "Dupré" becomes "Dupre",
// typographic quotes become straight quotes, and unmappable characters are
// dropped.
func Transliterate(s string) string {
	out, _, err := transform.String(asciiProjection, s)
	if err != nil {
		return s
	}
	return out
}

// NewASCIIReader wraps r so everything read through it is projected onto
// ASCII. The CSV reader consumes input through this wrapper.
func NewASCIIReader(r io.Reader) io.Reader {
	return transform.NewReader(r, asciiProjection)
}
