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

package filter_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zettelstore.de/contrib/presmark/filter"
)

func TestDefaultFilters(t *testing.T) {
	t.Parallel()
	reg := filter.NewDefault()
	assert.Equal(t, []string{"escape", "markdown", "markdown-safe", "sanitize", "trim"}, reg.Names())

	md, found := reg.Lookup(filter.NameMarkdown)
	require.True(t, found)
	out, err := md("slide **two** text")
	require.NoError(t, err)
	assert.Equal(t, "<p>slide <strong>two</strong> text</p>\n", out)

	safe, found := reg.Lookup(filter.NameMarkdownSafe)
	require.True(t, found)
	out, err = safe("hi <script>alert(1)</script>")
	require.NoError(t, err)
	assert.False(t, strings.Contains(out, "<script>"), out)

	esc, _ := reg.Lookup(filter.NameEscape)
	out, _ = esc("<b>")
	assert.Equal(t, "&lt;b&gt;", out)

	trim, _ := reg.Lookup(filter.NameTrim)
	out, _ = trim("\n x \n")
	assert.Equal(t, "x", out)
}

func TestLookupMiss(t *testing.T) {
	t.Parallel()
	reg := filter.NewRegistry()
	_, found := reg.Lookup("unknown")
	assert.False(t, found)
	_, found = reg.Lookup("")
	assert.False(t, found)

	var nilReg *filter.Registry
	_, found = nilReg.Lookup("markdown")
	assert.False(t, found)
	assert.Empty(t, nilReg.Names())
}

func TestRegister(t *testing.T) {
	t.Parallel()
	reg := filter.NewRegistry()
	errFail := errors.New("fail")
	reg.Register("upper", func(s string) (string, error) { return strings.ToUpper(s), nil })
	reg.Register("fail", func(string) (string, error) { return "", errFail })
	up, found := reg.Lookup("upper")
	require.True(t, found)
	out, err := up("abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)

	fail, _ := reg.Lookup("fail")
	_, err = fail("x")
	assert.ErrorIs(t, err, errFail)
}
