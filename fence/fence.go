//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of Presmark.
//
// Presmark is licensed under the latest version of the EUPL (European
// Union Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2025-present Detlef Stern
//-----------------------------------------------------------------------------

// Package fence splits a text into slide regions, delimited by fence lines.
//
// A fence line starts with a glyph repeated at least some minimum number of
// times, optionally followed by spaces and a comment token like "intro",
// ".intro", or "{.intro}". A region starts after an opening fence line and
// ends directly before the next fence line with at least as many glyphs.
// That closing fence line is also the opening fence line of the next region.
package fence

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Constants for the default fence.
const (
	DefaultGlyph = '…'
	DefaultMin   = 5
)

// Default is the scanner with the default fence glyph and repetition count.
var Default = Scanner{Glyph: DefaultGlyph, Min: DefaultMin}

// Scanner finds fenced regions. The zero value behaves like Default.
type Scanner struct {
	Glyph rune
	Min   int
}

// Region is one fenced region of a text.
type Region struct {
	Comment string // Comment token of the opening fence, without braces and dot
	Text    string // Enclosed text, including the line ending before the closing fence
}

// Regions returns the sequence of fenced regions in the given text, in the
// order of their occurrence. An opening fence line without a closing fence
// line ends the sequence, the remaining text is not part of any region.
func (sc Scanner) Regions(text string) iter.Seq[Region] {
	sc = sc.normalize()
	return func(yield func(Region) bool) {
		pos := 0
		for {
			reg, next, found := sc.next(text, pos)
			if !found || !yield(reg) {
				return
			}
			pos = next
		}
	}
}

// All returns all fenced regions as a slice.
func (sc Scanner) All(text string) []Region {
	var result []Region
	for reg := range sc.Regions(text) {
		result = append(result, reg)
	}
	return result
}

func (sc Scanner) normalize() Scanner {
	if sc.Glyph == 0 {
		sc.Glyph = DefaultGlyph
	}
	if sc.Min <= 0 {
		sc.Min = DefaultMin
	}
	return sc
}

// next searches the first region, whose opening fence starts at a line
// start at or after pos. It returns the region and the position of the
// closing fence, where the search for the next region resumes.
func (sc Scanner) next(text string, pos int) (Region, int, bool) {
	for start := pos; start < len(text); {
		if comment, count, bodyStart, ok := sc.openingLine(text, start); ok {
			closeStart, found := sc.findClose(text, bodyStart, count)
			if !found {
				return Region{}, 0, false
			}
			return Region{Comment: comment, Text: text[bodyStart:closeStart]}, closeStart, true
		}
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			break
		}
		start += nl + 1
	}
	return Region{}, 0, false
}

// openingLine checks for an opening fence line at position start. An opening
// fence line must be terminated by a line ending. It returns the comment,
// the number of fence glyphs, and the start of the region text.
func (sc Scanner) openingLine(text string, start int) (string, int, int, bool) {
	comment, count, end, ok := sc.fenceLine(text, start)
	if !ok || end >= len(text) {
		return "", 0, 0, false
	}
	return comment, count, end + 1, true
}

// findClose returns the start of the first fence line after bodyStart, that
// has at least minCount glyphs. Shorter fence lines belong to the region.
func (sc Scanner) findClose(text string, bodyStart, minCount int) (int, bool) {
	for start := bodyStart; start < len(text); {
		if _, count, _, ok := sc.fenceLine(text, start); ok && count >= minCount {
			return start, true
		}
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			break
		}
		start += nl + 1
	}
	return 0, false
}

// fenceLine parses a fence line at position start. It returns the comment
// token, the number of glyphs, and the position of the terminating line
// ending (or len(text)).
func (sc Scanner) fenceLine(text string, start int) (string, int, int, bool) {
	pos, count := start, 0
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if r != sc.Glyph {
			break
		}
		pos += size
		count++
	}
	if count < sc.Min {
		return "", 0, 0, false
	}
	pos = skipSpaces(text, pos)

	if pos < len(text) && text[pos] == '{' {
		pos++
	}
	if pos < len(text) && text[pos] == '.' {
		pos++
	}
	commentStart := pos
	for pos < len(text) && isCommentChar(text[pos]) {
		pos++
	}
	comment := text[commentStart:pos]
	if pos < len(text) && text[pos] == '}' {
		pos++
	}
	pos = skipSpaces(text, pos)

	if pos < len(text) && text[pos] == '\r' {
		pos++
	}
	if pos < len(text) && text[pos] != '\n' {
		return "", 0, 0, false
	}
	return comment, count, pos, true
}

func skipSpaces(text string, pos int) int {
	for pos < len(text) && text[pos] == ' ' {
		pos++
	}
	return pos
}

func isCommentChar(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9') ||
		ch == '_' || ch == '-'
}
