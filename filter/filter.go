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

// Package filter manages named content filters, that transform the text of
// a slide before it is rendered.
package filter

import (
	"bytes"
	"html"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Func transforms the text of a slide.
type Func func(text string) (string, error)

// Names of the built-in filters.
const (
	NameMarkdown     = "markdown"
	NameSanitize     = "sanitize"
	NameMarkdownSafe = "markdown-safe"
	NameEscape       = "escape"
	NameTrim         = "trim"
)

// Registry maps filter names to filter functions.
type Registry struct {
	mx      sync.RWMutex
	filters map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{filters: map[string]Func{}}
}

// NewDefault creates a registry with all built-in filters.
func NewDefault() *Registry {
	reg := NewRegistry()
	md := newMarkdown()
	policy := bluemonday.UGCPolicy()
	reg.Register(NameMarkdown, md)
	reg.Register(NameSanitize, func(text string) (string, error) { return policy.Sanitize(text), nil })
	reg.Register(NameMarkdownSafe, func(text string) (string, error) {
		result, err := md(text)
		if err != nil {
			return "", err
		}
		return policy.Sanitize(result), nil
	})
	reg.Register(NameEscape, func(text string) (string, error) { return html.EscapeString(text), nil })
	reg.Register(NameTrim, func(text string) (string, error) { return strings.TrimSpace(text), nil })
	return reg
}

// Register stores a filter under the given name, replacing a previous one.
func (reg *Registry) Register(name string, fn Func) {
	reg.mx.Lock()
	if reg.filters == nil {
		reg.filters = map[string]Func{}
	}
	reg.filters[name] = fn
	reg.mx.Unlock()
}

// Lookup returns the filter with the given name. A nil registry has no
// filters.
func (reg *Registry) Lookup(name string) (Func, bool) {
	if reg == nil || name == "" {
		return nil, false
	}
	reg.mx.RLock()
	fn, found := reg.filters[name]
	reg.mx.RUnlock()
	return fn, found && fn != nil
}

// Names returns the sorted names of all registered filters.
func (reg *Registry) Names() []string {
	if reg == nil {
		return nil
	}
	reg.mx.RLock()
	defer reg.mx.RUnlock()
	return slices.Sorted(maps.Keys(reg.filters))
}

func newMarkdown() Func {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
	return func(text string) (string, error) {
		var buf bytes.Buffer
		if err := md.Convert([]byte(text), &buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}
