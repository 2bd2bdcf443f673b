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
	"t73f.de/r/sx"
	"t73f.de/r/sxwebs/sxhtml"
	"t73f.de/r/zsc/shtml"
)

// Generator is the value of the generator meta element of a document.
const Generator = "Presmark"

// Document returns a complete HTML document with the given body content.
// Language and title are omitted, if empty.
func Document(lang, title string, content ...sx.Object) *sx.Pair {
	var langAttr *sx.Pair
	if lang != "" {
		langAttr = sx.MakeList(sxhtml.SymAttr, sx.Cons(shtml.SymAttrLang, sx.MakeString(lang)))
	}
	head := documentHead()
	if title != "" {
		head.LastPair().AppendBang(sx.MakeList(shtml.SymTitle, sx.MakeString(title)))
	}
	body := sx.MakeList(shtml.SymBody)
	curr := body
	for _, obj := range content {
		curr = curr.AppendBang(obj)
	}
	return sx.MakeList(
		sxhtml.SymDoctype,
		sx.MakeList(shtml.SymHtml, langAttr, head, body),
	)
}

func documentHead() *sx.Pair {
	return sx.MakeList(
		shtml.SymHead,
		sx.MakeList(shtml.SymMeta, sx.MakeList(sxhtml.SymAttr, sx.Cons(sx.MakeSymbol("charset"), sx.MakeString("utf-8")))),
		sx.MakeList(shtml.SymMeta, sx.MakeList(
			sxhtml.SymAttr,
			sx.Cons(sx.MakeSymbol("name"), sx.MakeString("viewport")),
			sx.Cons(sx.MakeSymbol("content"), sx.MakeString("width=device-width, initial-scale=1.0")),
		)),
		sx.MakeList(shtml.SymMeta, sx.MakeList(
			sxhtml.SymAttr,
			sx.Cons(sx.MakeSymbol("name"), sx.MakeString("generator")),
			sx.Cons(sx.MakeSymbol("content"), sx.MakeString(Generator)),
		)),
	)
}
