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

package markup

import (
	"io"
	"strings"

	"t73f.de/r/sx"
	"t73f.de/r/sxwebs/sxhtml"

	"zettelstore.de/contrib/presmark/attrs"
)

// Sx returns the element as an sx list: (tag (@ (key . val) ...) content...).
// Content objects are appended unchanged.
func Sx(tag string, a *attrs.Map, content ...sx.Object) *sx.Pair {
	result := sx.MakeList(sx.MakeSymbol(tag))
	curr := result
	if a.Len() > 0 {
		attrList := sx.MakeList(sxhtml.SymAttr)
		attrCurr := attrList
		for key, val := range a.All() {
			attrCurr = attrCurr.AppendBang(sx.Cons(sx.MakeSymbol(key), sx.MakeString(attrs.String(val))))
		}
		curr = curr.AppendBang(attrList)
	}
	for _, obj := range content {
		curr = curr.AppendBang(obj)
	}
	return result
}

// Raw returns an sx object for already rendered HTML text, which must not
// be escaped.
func Raw(text string) *sx.Pair {
	return sx.MakeList(sxhtml.SymNoEscape, sx.MakeString(text))
}

// WriteSx writes the HTML representation of an sx tree.
func WriteSx(w io.Writer, obj sx.Object) {
	g := sxhtml.NewGenerator(sxhtml.WithNewline)
	g.WriteHTML(w, obj)
}

// SxString returns the HTML representation of an sx tree as a string.
func SxString(obj sx.Object) string {
	var sb strings.Builder
	WriteSx(&sb, obj)
	return sb.String()
}
