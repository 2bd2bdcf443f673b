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

// Package markup renders elements as HTML text.
//
// Render produces the legacy form: attribute values in single quotes, not
// escaped. Sx builds an sx tree of the same element, which sxhtml renders
// with escaped attribute values.
package markup

import (
	"strings"

	"zettelstore.de/contrib/presmark/attrs"
)

// StartTag returns the start tag of an element, e.g. "<div id='x'>".
func StartTag(tag string, a *attrs.Map) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(tag)
	for key, val := range a.All() {
		sb.WriteByte(' ')
		sb.WriteString(key)
		sb.WriteString("='")
		sb.WriteString(attrs.String(val))
		sb.WriteByte('\'')
	}
	sb.WriteByte('>')
	return sb.String()
}

// EndTag returns the end tag of an element.
func EndTag(tag string) string { return "</" + tag + ">" }

// Render returns the start tag, the body, and the end tag, each separated
// by a line ending.
func Render(tag string, a *attrs.Map, body string) string {
	return StartTag(tag, a) + "\n" + body + "\n" + EndTag(tag)
}

// Element is an HTML element with a textual body.
type Element struct {
	Tag   string
	Attrs *attrs.Map
	Body  string
}

// HTML renders the element.
func (e *Element) HTML() string { return Render(e.Tag, e.Attrs, e.Body) }
