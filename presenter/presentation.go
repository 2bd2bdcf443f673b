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

package presenter

import (
	"log/slog"
	"slices"
	"strings"

	"t73f.de/r/sx"

	"zettelstore.de/contrib/presmark/attrs"
	"zettelstore.de/contrib/presmark/filter"
	"zettelstore.de/contrib/presmark/markup"
)

// Presentation is the outer element, containing a sequence of slides.
type Presentation struct {
	id      string
	element string
	attrs   *attrs.Map
	slides  []*Slide
}

// ID returns the presentation id, as given by the directive.
func (p *Presentation) ID() string { return p.id }

// Element returns the name of the outer HTML element.
func (p *Presentation) Element() string { return p.element }

// Attrs returns a copy of the resolved attributes.
func (p *Presentation) Attrs() *attrs.Map { return p.attrs.Clone() }

// Slides returns the slides in their order.
func (p *Presentation) Slides() []*Slide { return slices.Clone(p.slides) }

// Text returns the HTML text of all slides, separated by a line ending.
func (p *Presentation) Text() string {
	var sb strings.Builder
	for i, sl := range p.slides {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(sl.HTML())
	}
	return sb.String()
}

// HTML returns the presentation element with all its slides.
func (p *Presentation) HTML() string { return markup.Render(p.element, p.attrs, p.Text()) }

// Sx returns the presentation as an sx tree.
func (p *Presentation) Sx() *sx.Pair {
	content := make([]sx.Object, len(p.slides))
	for i, sl := range p.slides {
		content[i] = sl.Sx()
	}
	return markup.Sx(p.element, p.attrs, content...)
}

// SafeHTML returns the presentation as HTML with escaped attribute values.
// Slide text is not escaped.
func (p *Presentation) SafeHTML() string { return markup.SxString(p.Sx()) }

// Slide is one slide of a presentation.
type Slide struct {
	index   int
	comment string
	raw     string
	body    string
	header  *attrs.Map
	element string
	filter  string
	attrs   *attrs.Map
	filters *filter.Registry
	logger  *slog.Logger
}

// Index returns the zero-based position of the slide.
func (s *Slide) Index() int { return s.index }

// Comment returns the comment token of the opening fence.
func (s *Slide) Comment() string { return s.comment }

// Raw returns the fenced text of the slide, including the header.
func (s *Slide) Raw() string { return s.raw }

// Body returns the slide text without header, before filtering.
func (s *Slide) Body() string { return s.body }

// Header returns a copy of the header values.
func (s *Slide) Header() *attrs.Map { return s.header.Clone() }

// Element returns the name of the HTML element.
func (s *Slide) Element() string { return s.element }

// Filter returns the name of the resolved content filter.
func (s *Slide) Filter() string { return s.filter }

// Attrs returns a copy of the resolved attributes.
func (s *Slide) Attrs() *attrs.Map { return s.attrs.Clone() }

// Text returns the comment, if any, and the filtered body.
func (s *Slide) Text() string {
	if s.comment == "" {
		return s.filtered()
	}
	return "<!-- " + s.comment + " -->\n" + s.filtered()
}

func (s *Slide) filtered() string {
	fn, found := s.filters.Lookup(s.filter)
	if !found {
		if s.filter != "" {
			s.logger.Debug("Unknown filter", "filter", s.filter, "slide", s.index)
		}
		return s.body
	}
	text, err := fn(s.body)
	if err != nil {
		s.logger.Warn("Filter failed", "filter", s.filter, "slide", s.index, "error", err)
		return s.body
	}
	return text
}

// HTML returns the slide element.
func (s *Slide) HTML() string { return markup.Render(s.element, s.attrs, s.Text()) }

// Sx returns the slide as an sx list.
func (s *Slide) Sx() *sx.Pair { return markup.Sx(s.element, s.attrs, markup.Raw(s.Text())) }
