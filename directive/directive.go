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

// Package directive binds the presenter to Go text templates.
//
// A template marks a presentation with a block action:
//
//	{{presenter "impress" "deck dark"}}
//	…………… slide text ……………
//	{{endpresenter}}
//
// The first argument is the presentation id, the optional second argument
// contains additional classes. Alternatively, the block is marked by lines
// "∂∂ impress" and "∂∂ /impress". The function "presentation" renders a
// presentation from any string: {{presentation "deck" .Slides}}.
package directive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/template"

	"zettelstore.de/contrib/presmark/presenter"
)

// ErrUnbalanced is returned, if a presenter block is not properly closed.
var ErrUnbalanced = errors.New("unbalanced presenter block")

const (
	funcBlockOpen    = "presenter"
	funcBlockClose   = "endpresenter"
	funcBlock        = "presenterBlock"
	funcPresentation = "presentation"
	bodyPrefix       = "presenter-body-"
)

// Binding is a template with the presenter directive.
type Binding struct {
	p      *presenter.Presenter
	logger *slog.Logger
	funcs  template.FuncMap
	tmpl   *template.Template
}

// New creates a new binding that uses the given presenter.
func New(p *presenter.Presenter, logger *slog.Logger) *Binding {
	if logger == nil {
		logger = slog.Default()
	}
	return &Binding{
		p:      p,
		logger: logger.With("system", "directive"),
		funcs:  template.FuncMap{},
	}
}

// Funcs adds functions to the template. It must be called before Parse.
func (b *Binding) Funcs(fm template.FuncMap) *Binding {
	for name, fn := range fm {
		b.funcs[name] = fn
	}
	return b
}

// Parse rewrites the markers of the given template source and parses it.
func (b *Binding) Parse(name, src string) error {
	text, err := hoist(RewriteMarkers(src), b.isFunc)
	if err != nil {
		return fmt.Errorf("template %q: %w", name, err)
	}
	t := template.New(name).Funcs(b.funcs).Funcs(b.funcMap(nil, nil))
	if _, err = t.Parse(text); err != nil {
		return err
	}
	b.tmpl = t
	return nil
}

// Execute applies the template to the data and writes the result to w. All
// presentations are attached to the given resource, which may be nil.
func (b *Binding) Execute(w io.Writer, res *presenter.Resource, data any) error {
	if b.tmpl == nil {
		return errors.New("no template parsed")
	}
	t, err := b.tmpl.Clone()
	if err != nil {
		return err
	}
	t.Funcs(b.funcMap(t, res))
	return t.Execute(w, data)
}

// ExecuteString applies the template to the data and returns the result.
func (b *Binding) ExecuteString(res *presenter.Resource, data any) (string, error) {
	var sb strings.Builder
	if err := b.Execute(&sb, res, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (b *Binding) isFunc(name string) bool {
	if _, found := b.funcs[name]; found {
		return true
	}
	_, found := predefined[name]
	return found
}

// predefined names of text/template, that must not be quoted.
var predefined = map[string]struct{}{
	"true": {}, "false": {}, "nil": {},
	"and": {}, "call": {}, "html": {}, "index": {}, "slice": {}, "js": {}, "len": {},
	"not": {}, "or": {}, "print": {}, "printf": {}, "println": {}, "urlquery": {},
	"eq": {}, "ge": {}, "gt": {}, "le": {}, "lt": {}, "ne": {},
	funcBlock: {}, funcPresentation: {},
}

func (b *Binding) funcMap(t *template.Template, res *presenter.Resource) template.FuncMap {
	return template.FuncMap{
		funcBlock: func(name string, data any, args ...any) (string, error) {
			id, classes, err := blockArgs(args)
			if err != nil {
				return "", err
			}
			var buf bytes.Buffer
			if err = t.ExecuteTemplate(&buf, name, data); err != nil {
				return "", err
			}
			b.logger.Debug("Presenter", "id", id, "classes", classes)
			return b.p.Render(res, id, classes, strings.TrimSpace(buf.String())), nil
		},
		funcPresentation: func(id any, text string) string {
			return b.p.Render(res, fmt.Sprint(id), "", strings.TrimSpace(text))
		},
	}
}

func blockArgs(args []any) (string, string, error) {
	switch len(args) {
	case 1:
		return fmt.Sprint(args[0]), "", nil
	case 2:
		return fmt.Sprint(args[0]), fmt.Sprint(args[1]), nil
	}
	return "", "", fmt.Errorf("%s expects an id and optional classes, got %d arguments", funcBlockOpen, len(args))
}
