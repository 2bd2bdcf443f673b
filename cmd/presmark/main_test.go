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

package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasVersion(t *testing.T) {
	t.Parallel()
	assert.True(t, hasVersion(0, 19))
	assert.True(t, hasVersion(1, 25))
	assert.True(t, hasVersion(1, 0))
	assert.False(t, hasVersion(0, 18))
	assert.False(t, hasVersion(-1, 30))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func setFlag(t *testing.T, p *string, val string) {
	t.Helper()
	old := *p
	*p = val
	t.Cleanup(func() { *p = old })
}

func setBoolFlag(t *testing.T, p *bool, val bool) {
	t.Helper()
	old := *p
	*p = val
	t.Cleanup(func() { *p = old })
}

const slides = "…………………\nfirst\n…………………\nclass: big\n---\nsecond\n…………………\n"

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "slides.txt", slides)
	site := writeFile(t, dir, "site.yaml", "presenter:\n  default:\n    element: section\n")
	meta := writeFile(t, dir, "meta.yaml", "presenter:\n  slides:\n    element: article\n")
	setFlag(t, sConfig, site)
	setFlag(t, sMeta, meta)
	setFlag(t, sID, "deck")

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), slog.Default(), &buf, input))
	assert.Equal(t,
		"<section id='deck'>\n<article>\nfirst\n\n</article>\n<article class='big'>\n\nsecond\n\n</article>\n</section>\n",
		buf.String())
}

func TestRunTemplate(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "page.tmpl", "<h1>{{.title}}</h1>\n∂∂ impress\n"+slides+"∂∂ /impress\n")
	meta := writeFile(t, dir, "meta.yaml", "title: Talk\n")
	setFlag(t, sMeta, meta)
	setBoolFlag(t, bTmpl, true)

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), slog.Default(), &buf, input))
	assert.Equal(t,
		"<h1>Talk</h1>\n<div id='impress'>\n<div class='step'>\nfirst\n\n</div>\n<div class='big step'>\n\nsecond\n\n</div>\n</div>\n",
		buf.String())
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	assert.Error(t, run(context.Background(), slog.Default(), &buf, filepath.Join(dir, "missing.txt")))

	setFlag(t, sConfig, filepath.Join(dir, "missing.yaml"))
	assert.Error(t, run(context.Background(), slog.Default(), &buf, writeFile(t, dir, "in.txt", slides)))
}

func TestRunDocument(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "slides.txt", slides)
	meta := writeFile(t, dir, "meta.yaml", "title: Talk\nlang: de\n")
	setFlag(t, sMeta, meta)
	setBoolFlag(t, bDoc, true)

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), slog.Default(), &buf, input))
	out := buf.String()
	assert.True(t, strings.Contains(out, "<title>Talk</title>"), out)
	assert.True(t, strings.Contains(out, "<div class='big'>\n\nsecond\n\n</div>"), out)
}

func TestPreviewHandler(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "slides.txt", slides)
	h := makeHandler(slog.Default(), input)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "<div>\nfirst\n\n</div>"), rec.Body.String())

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	h = makeHandler(slog.Default(), filepath.Join(dir, "missing.txt"))
	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServeNeedsFile(t *testing.T) {
	assert.Error(t, serve(slog.Default(), ":0", ""))
}

func TestPreviewServer(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "slides.txt", slides)
	s := newPreviewServer(slog.Default(), ":0", input, false)
	assert.Equal(t, 5*time.Second, s.ReadTimeout)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Presmark", rec.Header().Get("Server"))

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	s = newPreviewServer(slog.Default(), ":0", input, true)
	assert.Zero(t, s.ReadTimeout)
}
