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

package directive

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Marker glyph of the line-oriented open and close markers.
const MarkerGlyph = "∂"

var (
	reOpenMarker  = regexp.MustCompile(`(?m)^∂∂+[ \t]*([A-Za-z0-9_\-]+)[ \t]*\r?$`)
	reCloseMarker = regexp.MustCompile(`(?m)^∂∂+[ \t]*/([A-Za-z0-9_\-]*)[ \t]*\r?$`)
)

// RewriteMarkers replaces every open marker line "∂∂ id" by the block
// action {{presenter "id"}} and every close marker line "∂∂ /id" by
// {{endpresenter}}. The identifier of a close marker is not checked.
func RewriteMarkers(src string) string {
	if !strings.Contains(src, MarkerGlyph+MarkerGlyph) {
		return src
	}
	src = reOpenMarker.ReplaceAllString(src, `{{`+funcBlockOpen+` "$1"}}`)
	return reCloseMarker.ReplaceAllLiteralString(src, `{{`+funcBlockClose+`}}`)
}

var (
	reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reBlockOpen  = regexp.MustCompile(`\{\{\s*` + funcBlockOpen + `\s+(.+?)\s*\}\}`)
	reBlockClose = regexp.MustCompile(`\{\{\s*` + funcBlockClose + `\s*\}\}`)
)

type blockAction struct {
	start, end int
	args       string // empty for a close action
}

// hoist moves the body of every presenter block into its own associated
// template. The block itself is replaced by a call of the internal block
// function, that executes the body template with the current data. A bare
// identifier as first argument, which is not a function name, is the
// presentation id itself.
func hoist(src string, isFunc func(string) bool) (string, error) {
	actions := blockActions(src)
	if len(actions) == 0 {
		return src, nil
	}
	var sb, defs strings.Builder
	last, num := 0, 0
	var open *blockAction
	for i := range actions {
		act := &actions[i]
		if act.args != "" {
			if open != nil {
				return "", fmt.Errorf("%w: nested %s at offset %d", ErrUnbalanced, funcBlockOpen, act.start)
			}
			open = act
			continue
		}
		if open == nil {
			return "", fmt.Errorf("%w: %s without %s at offset %d", ErrUnbalanced, funcBlockClose, funcBlockOpen, act.start)
		}
		name := fmt.Sprintf("%s%d", bodyPrefix, num)
		num++
		sb.WriteString(src[last:open.start])
		fmt.Fprintf(&sb, "{{%s %q . %s}}", funcBlock, name, quoteIdentifier(open.args, isFunc))
		fmt.Fprintf(&defs, "{{define %q}}%s{{end}}", name, src[open.end:act.start])
		last = act.end
		open = nil
	}
	if open != nil {
		return "", fmt.Errorf("%w: %s at offset %d is not closed", ErrUnbalanced, funcBlockOpen, open.start)
	}
	sb.WriteString(src[last:])
	sb.WriteString(defs.String())
	return sb.String(), nil
}

func blockActions(src string) []blockAction {
	var result []blockAction
	for _, loc := range reBlockOpen.FindAllStringSubmatchIndex(src, -1) {
		result = append(result, blockAction{start: loc[0], end: loc[1], args: src[loc[2]:loc[3]]})
	}
	for _, loc := range reBlockClose.FindAllStringIndex(src, -1) {
		result = append(result, blockAction{start: loc[0], end: loc[1]})
	}
	slices.SortFunc(result, func(a, b blockAction) int { return a.start - b.start })
	return result
}

func quoteIdentifier(args string, isFunc func(string) bool) string {
	first, rest := args, ""
	if pos := strings.IndexAny(args, " \t"); pos >= 0 {
		first, rest = args[:pos], args[pos:]
	}
	if !reIdentifier.MatchString(first) || (isFunc != nil && isFunc(first)) {
		return args
	}
	return strconv.Quote(first) + rest
}
