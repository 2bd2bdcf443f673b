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

package attrs

import (
	"slices"
	"strings"
)

// Constants for recognized configuration and header keys.
const (
	KeyElement = "element"
	KeyFilter  = "filter"
	KeyClass   = "class"
	KeyID      = "id"
	KeyMeta    = "meta"
	KeyIDN     = "id_N"
	KeyClassN  = "class_N"
	KeySlides  = "slides"
)

// Constants for hard-coded defaults.
const (
	DefaultElement = "div"
	ImpressID      = "impress" // Presentation id, that enables impress.js mode
	ImpressClass   = "step"    // Class of every slide in impress.js mode
)

// Settings is the resolved configuration of one presentation or slide.
type Settings struct {
	Element string // Name of the HTML element
	Filter  string // Name of the content filter, may be empty
	Attrs   *Map   // Attributes to be rendered, "id" and "class" first
}

// Fallback returns the hard-coded defaults, the last source of every chain.
func Fallback() Values { return Values{KeyElement: DefaultElement} }

// reserved keys configure the element, they are never rendered as attributes.
var reserved = []string{KeyElement, KeyFilter, KeyMeta, KeyIDN, KeyClassN, KeySlides}

func isReserved(key string) bool {
	return slices.ContainsFunc(reserved, func(r string) bool { return strings.EqualFold(r, key) })
}

// SlideInput contains everything needed to resolve the settings of a slide.
type SlideInput struct {
	Header  *Map     // Per-slide header, the most specific source
	Sources []Source // Slide configuration, most specific first
	Index   int      // Zero-based position of the slide within its presentation
	Impress bool     // Presentation is an impress.js presentation
}

// ResolveSlide merges the header and the configuration sources of a slide.
//
// Element and filter are taken from the first source defining them. The
// class attribute accumulates the classes of the header and of all sources,
// followed by the class template and, in impress mode, the class "step". The
// id is taken from the header, from a "meta" map, or from the id template.
// Placeholders in id and class values are replaced by the slide index.
func ResolveSlide(in SlideInput) Settings {
	chain := make([]Source, 0, len(in.Sources)+2)
	chain = append(chain, in.Header)
	chain = append(chain, in.Sources...)
	chain = append(chain, Fallback())

	result := &Map{}
	metas := metaSources(in.Sources)
	if id, found := Resolve(KeyID, append([]Source{in.Header}, metas...)...); found {
		result.Set(KeyID, substituteIndex(String(id), in.Index))
	} else if idN, foundN := Resolve(KeyIDN, in.Sources...); foundN {
		result.Set(KeyID, substituteIndex(String(idN), in.Index))
	}

	var cl classList
	for _, val := range Collect(KeyClass, in.Header) {
		cl.add(substituteIndex(String(val), in.Index))
	}
	for _, src := range in.Sources {
		for _, val := range Collect(KeyClass, src, metaSource(src)) {
			cl.add(substituteIndex(String(val), in.Index))
		}
	}
	if classN, found := Resolve(KeyClassN, in.Sources...); found {
		cl.add(substituteIndex(String(classN), in.Index))
	}
	if in.Impress {
		cl.add(ImpressClass)
	}
	if !cl.isEmpty() {
		result.Set(KeyClass, cl.String())
	}

	for key, val := range in.Header.All() {
		if key == KeyMeta {
			addEntries(result, Entries(val))
			continue
		}
		if isReserved(key) || result.Has(key) || isIDOrClass(key) {
			continue
		}
		result.Set(key, val)
	}
	for _, src := range metas {
		addEntries(result, Entries(src.(*Map)))
	}

	return Settings{
		Element: ResolveString(KeyElement, DefaultElement, chain...),
		Filter:  ResolveString(KeyFilter, "", chain...),
		Attrs:   result,
	}
}

// PresentationInput contains everything needed to resolve the settings of
// a presentation.
type PresentationInput struct {
	ID      string   // Presentation id, given by the directive
	Classes string   // Additional classes, given by the directive
	Sources []Source // Presentation configuration, most specific first
}

// ResolvePresentation merges the configuration sources of a presentation.
// The presentation id overrides any configured id, classes accumulate. A
// presentation has no index, so placeholders are kept.
func ResolvePresentation(in PresentationInput) Settings {
	chain := append(slices.Clone(in.Sources), Fallback())
	result := &Map{}
	metas := metaSources(in.Sources)
	if in.ID != "" {
		result.Set(KeyID, in.ID)
	} else if id, found := Resolve(KeyID, metas...); found {
		result.Set(KeyID, String(id))
	}

	var cl classList
	cl.add(in.Classes)
	for _, src := range in.Sources {
		for _, val := range Collect(KeyClass, src, metaSource(src)) {
			cl.add(String(val))
		}
	}
	if !cl.isEmpty() {
		result.Set(KeyClass, cl.String())
	}
	for _, src := range metas {
		addEntries(result, Entries(src.(*Map)))
	}
	return Settings{
		Element: ResolveString(KeyElement, DefaultElement, chain...),
		Attrs:   result,
	}
}

// IsImpress returns true, if the presentation id enables impress.js mode.
func IsImpress(id string) bool { return id == ImpressID }

func metaSource(src Source) Source {
	if src == nil {
		return nil
	}
	val, found := src.Lookup(KeyMeta)
	if !found {
		return nil
	}
	entries := Entries(val)
	if len(entries) == 0 {
		return nil
	}
	m := &Map{}
	for _, e := range entries {
		m.Set(e.Key, e.Val)
	}
	return m
}

func metaSources(sources []Source) []Source {
	var result []Source
	for _, src := range sources {
		if meta := metaSource(src); meta != nil {
			result = append(result, meta)
		}
	}
	return result
}

func addEntries(m *Map, entries []Entry) {
	for _, e := range entries {
		if isReserved(e.Key) || isIDOrClass(e.Key) || m.Has(e.Key) || e.Val == nil {
			continue
		}
		m.Set(e.Key, e.Val)
	}
}

func isIDOrClass(key string) bool {
	return strings.EqualFold(key, KeyID) || strings.EqualFold(key, KeyClass)
}

func substituteIndex(s string, idx int) string {
	if result, ok := Substitute(s, idx); ok {
		return result
	}
	return s
}

// classList accumulates class names, every name only once.
type classList struct{ names []string }

func (cl *classList) add(classes string) {
	for _, name := range strings.Fields(classes) {
		if !slices.Contains(cl.names, name) {
			cl.names = append(cl.names, name)
		}
	}
}
func (cl *classList) isEmpty() bool  { return len(cl.names) == 0 }
func (cl *classList) String() string { return strings.Join(cl.names, " ") }
