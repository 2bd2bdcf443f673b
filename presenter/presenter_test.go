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

package presenter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zettelstore.de/contrib/presmark/config"
	"zettelstore.de/contrib/presmark/fence"
	"zettelstore.de/contrib/presmark/filter"
	"zettelstore.de/contrib/presmark/presenter"
)

const f = "…………………"

func TestEndToEnd(t *testing.T) {
	t.Parallel()
	text := f + "\nHello\n" + f + "\n---\nid: second\n---\nWorld\n" + f
	p := presenter.New(nil, nil, nil)
	pres := p.Build(nil, "", "", text)
	slides := pres.Slides()
	require.Len(t, slides, 2)
	assert.Equal(t, 0, slides[0].Index())
	assert.Equal(t, 1, slides[1].Index())
	id, _ := slides[1].Attrs().GetString("id")
	assert.Equal(t, "second", id)
	assert.Equal(t,
		"<div>\n<div>\nHello\n\n</div>\n<div id='second'>\n\nWorld\n\n</div>\n</div>",
		pres.HTML())
}

func TestNoSlides(t *testing.T) {
	t.Parallel()
	p := presenter.New(nil, nil, nil)
	pres := p.Build(nil, "deck", "", "no fences here")
	assert.Empty(t, pres.Slides())
	assert.Equal(t, "", pres.Text())
	assert.Equal(t, "<div id='deck'>\n\n</div>", pres.HTML())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	body := "Some *text*\nwith lines\n"
	p := presenter.New(nil, nil, nil)
	pres := p.Build(nil, "", "", f+"\n"+body+f+"\n")
	require.Len(t, pres.Slides(), 1)
	sl := pres.Slides()[0]
	assert.Equal(t, body, sl.Body())
	assert.Equal(t, body, sl.Raw())
	assert.Equal(t, body, sl.Text())
}

const siteYAML = `
presenter:
  default:
    element: section
    slides:
      element: article
      class: slide
  deck:
    class: deck
    meta:
      data-transition: fade
    slides:
      id_N: "deck-%d"
      filter: markdown
`

func newPresenter(t *testing.T) *presenter.Presenter {
	site, err := config.Parse([]byte(siteYAML), "yaml")
	require.NoError(t, err)
	return presenter.New(site, filter.NewDefault(), nil)
}

func TestSiteConfig(t *testing.T) {
	t.Parallel()
	p := newPresenter(t)
	text := f + "\nfirst\n" + f + "\nelement: aside\nclass: big\n---\nsecond\n" + f + "\n"
	pres := p.Build(nil, "deck", "", text)
	assert.Equal(t, "section", pres.Element())
	assert.Equal(t, []string{"id", "class", "data-transition"}, pres.Attrs().Keys())

	slides := pres.Slides()
	require.Len(t, slides, 2)
	assert.Equal(t, "article", slides[0].Element())
	assert.Equal(t, "aside", slides[1].Element())
	assert.Equal(t, "markdown", slides[0].Filter())

	id, _ := slides[0].Attrs().GetString("id")
	assert.Equal(t, "deck-0", id)
	cls, _ := slides[0].Attrs().GetString("class")
	assert.Equal(t, "slide", cls)
	cls, _ = slides[1].Attrs().GetString("class")
	assert.Equal(t, "big slide", cls)
	assert.Equal(t, "<p>second</p>\n", slides[1].Text())

	other := p.Build(nil, "other", "", text)
	assert.Equal(t, "", other.Slides()[0].Filter())
	_, found := other.Slides()[0].Attrs().Get("id")
	assert.False(t, found)
}

func TestHeaderKeyCase(t *testing.T) {
	t.Parallel()
	p := newPresenter(t)
	pres := p.Build(nil, "other", "", f+"\nClass: big\nElement: aside\n---\nbody\n"+f+"\n")
	sl := pres.Slides()[0]
	assert.Equal(t, "aside", sl.Element())
	assert.Equal(t, []string{"class"}, sl.Attrs().Keys())
	cls, _ := sl.Attrs().GetString("class")
	assert.Equal(t, "big slide", cls)
}

func TestResourcePrecedence(t *testing.T) {
	t.Parallel()
	p := newPresenter(t)
	meta, err := config.ParseFrontMatter([]byte(`
presenter:
  element: main
  deck:
    element: nav
    slides:
      element: figure
      filter: escape
`))
	require.NoError(t, err)
	res := presenter.NewResource("index.html", meta)
	pres := p.Build(res, "deck", "", f+"\n<b>\n"+f+"\n")
	assert.Equal(t, "main", pres.Element())
	sl := pres.Slides()[0]
	assert.Equal(t, "figure", sl.Element())
	assert.Equal(t, "&lt;b&gt;\n", sl.Text())
}

func TestResourceList(t *testing.T) {
	t.Parallel()
	p := presenter.New(nil, nil, nil)
	res := presenter.NewResource("page", nil)
	first := p.Build(res, "a", "", "")
	second := p.Build(res, "b", "", "")
	assert.Equal(t, []*presenter.Presentation{first, second}, res.Presentations())
	res.Reset()
	assert.Empty(t, res.Presentations())
}

func TestImpress(t *testing.T) {
	t.Parallel()
	p := presenter.New(nil, nil, nil)
	text := f + "\none\n" + f + "\nclass: step wide\n---\ntwo\n" + f + "\nclass: wide\n---\nthree\n" + f + "\n"
	pres := p.Build(nil, "impress", "", text)
	var classes []string
	for _, sl := range pres.Slides() {
		cls, _ := sl.Attrs().GetString("class")
		classes = append(classes, cls)
	}
	assert.Equal(t, []string{"step", "step wide", "wide step"}, classes)
}

func TestCommentAndFilter(t *testing.T) {
	t.Parallel()
	reg := filter.NewRegistry()
	reg.Register("upper", func(s string) (string, error) { return strings.ToUpper(s), nil })
	p := presenter.New(nil, reg, nil)
	text := f + " {.intro}\nfilter: upper\n---\nhello\n" + f + "\nfilter: unknown\n---\nworld\n" + f + "\n"
	slides := p.Build(nil, "", "", text).Slides()
	require.Len(t, slides, 2)
	assert.Equal(t, "intro", slides[0].Comment())
	assert.Equal(t, "<!-- intro -->\n\nHELLO\n", slides[0].Text())
	assert.Equal(t, "\nworld\n", slides[1].Text())
	assert.False(t, slides[0].Attrs().Has("filter"))
}

func TestCustomScanner(t *testing.T) {
	t.Parallel()
	p := presenter.New(nil, nil, nil).SetScanner(fence.Scanner{Glyph: '=', Min: 3})
	pres := p.Build(nil, "", "", "===\nA\n===\nB\n===\n")
	assert.Len(t, pres.Slides(), 2)
}

func TestSafeHTML(t *testing.T) {
	t.Parallel()
	p := presenter.New(nil, nil, nil)
	pres := p.Build(nil, "deck", "", f+"\ntitle: \"<x>\"\n---\n<em>hi</em>\n"+f+"\n")
	safe := pres.SafeHTML()
	assert.True(t, strings.Contains(safe, "<em>hi</em>"), safe)
	assert.True(t, strings.Contains(safe, "title="), safe)
	assert.False(t, strings.Contains(safe, "title='<x>'"), safe)
	assert.True(t, strings.Contains(pres.HTML(), "title='<x>'"))
}
