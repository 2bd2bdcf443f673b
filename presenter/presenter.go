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

// Package presenter builds presentations from fenced slide text.
//
// A presentation is an outer HTML element that contains one element per
// slide. Attributes of both are resolved from the slide header, the
// metadata of the resource, the site configuration, and hard-coded defaults.
package presenter

import (
	"log/slog"

	"zettelstore.de/contrib/presmark/attrs"
	"zettelstore.de/contrib/presmark/config"
	"zettelstore.de/contrib/presmark/fence"
	"zettelstore.de/contrib/presmark/filter"
	"zettelstore.de/contrib/presmark/header"
)

// KeyDefault names the site-wide defaults within the presenter namespace.
const KeyDefault = "default"

// Presenter builds presentations. It is safe for concurrent use, as long as
// every resource is processed by only one goroutine.
type Presenter struct {
	site    *config.Site
	filters *filter.Registry
	scanner fence.Scanner
	logger  *slog.Logger
}

// New creates a presenter with the given site configuration and content
// filters. Both may be nil.
func New(site *config.Site, filters *filter.Registry, logger *slog.Logger) *Presenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Presenter{
		site:    site,
		filters: filters,
		scanner: fence.Default,
		logger:  logger.With("system", "presenter"),
	}
}

// SetScanner changes the fence used to separate slides.
func (p *Presenter) SetScanner(sc fence.Scanner) *Presenter { p.scanner = sc; return p }

// Filters returns the registry of content filters.
func (p *Presenter) Filters() *filter.Registry { return p.filters }

// Build creates a presentation from the given slide text. If a resource is
// given, its metadata is consulted and the presentation is appended to its
// list of presentations.
func (p *Presenter) Build(res *Resource, id, classes, raw string) *Presentation {
	var resMeta config.Tree
	if res != nil {
		resMeta = res.Meta.Sub(config.KeyPresenter)
	}
	siteMeta := p.site.Presenter()

	st := attrs.ResolvePresentation(attrs.PresentationInput{
		ID:      id,
		Classes: classes,
		Sources: []attrs.Source{
			resMeta,
			resMeta.Sub(id),
			siteMeta.Sub(id),
			siteMeta.Sub(KeyDefault),
		},
	})
	slideSources := []attrs.Source{
		resMeta.Sub(attrs.KeySlides),
		resMeta.Sub(id, attrs.KeySlides),
		siteMeta.Sub(id, attrs.KeySlides),
		siteMeta.Sub(KeyDefault, attrs.KeySlides),
	}

	pres := &Presentation{
		id:      id,
		element: st.Element,
		attrs:   st.Attrs,
	}
	impress := attrs.IsImpress(id)
	idx := 0
	for reg := range p.scanner.Regions(raw) {
		pres.slides = append(pres.slides, p.newSlide(reg, idx, slideSources, impress))
		idx++
	}
	if res != nil {
		res.add(pres)
	}
	p.logger.Debug("Build", "id", id, "element", pres.element, "slides", len(pres.slides))
	return pres
}

// Render builds a presentation and returns its HTML text.
func (p *Presenter) Render(res *Resource, id, classes, raw string) string {
	return p.Build(res, id, classes, raw).HTML()
}

func (p *Presenter) newSlide(reg fence.Region, idx int, sources []attrs.Source, impress bool) *Slide {
	hdr := header.Split(reg.Text)
	if hdr.Malformed {
		p.logger.Debug("Header is not a mapping, using it as text", "slide", idx)
	}
	st := attrs.ResolveSlide(attrs.SlideInput{
		Header:  hdr.Meta,
		Sources: sources,
		Index:   idx,
		Impress: impress,
	})
	return &Slide{
		index:   idx,
		comment: reg.Comment,
		raw:     reg.Text,
		body:    hdr.Body,
		header:  hdr.Meta,
		element: st.Element,
		filter:  st.Filter,
		attrs:   st.Attrs,
		filters: p.filters,
		logger:  p.logger,
	}
}
