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

package markup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"zettelstore.de/contrib/presmark/attrs"
	"zettelstore.de/contrib/presmark/markup"
)

func TestStartTag(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "<div>", markup.StartTag("div", nil))
	assert.Equal(t, "<div>", markup.StartTag("div", &attrs.Map{}))
	a := attrs.Make("id", "x", "class", "a b", "data-x", 100)
	assert.Equal(t, "<section id='x' class='a b' data-x='100'>", markup.StartTag("section", a))
	assert.Equal(t, "</section>", markup.EndTag("section"))
}

func TestRender(t *testing.T) {
	t.Parallel()
	a := attrs.Make("title", "it's <raw>")
	assert.Equal(t, "<p title='it's <raw>'>\nbody\n</p>", markup.Render("p", a, "body"))
	e := markup.Element{Tag: "div", Body: ""}
	assert.Equal(t, "<div>\n\n</div>", e.HTML())
}

func TestSx(t *testing.T) {
	t.Parallel()
	a := attrs.Make("id", "x", "title", `a"b`)
	obj := markup.Sx("div", a, markup.Raw("<em>hi</em>"))
	html := markup.SxString(obj)
	assert.True(t, strings.Contains(html, "<div"), html)
	assert.True(t, strings.Contains(html, "<em>hi</em>"), html)
	assert.False(t, strings.Contains(html, `"a"b"`), html)
	assert.True(t, strings.Contains(html, "</div>"), html)
}

func TestDocument(t *testing.T) {
	t.Parallel()
	html := markup.SxString(markup.Document("de", "Talk", markup.Raw("<p>x</p>")))
	assert.True(t, strings.Contains(html, "<title>Talk</title>"), html)
	assert.True(t, strings.Contains(html, "<p>x</p>"), html)
	assert.True(t, strings.Contains(html, markup.Generator), html)

	html = markup.SxString(markup.Document("", ""))
	assert.False(t, strings.Contains(html, "<title>"), html)
	assert.False(t, strings.Contains(html, "lang="), html)
}
