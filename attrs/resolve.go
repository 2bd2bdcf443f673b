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
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Source is one place, where attribute values may be defined.
type Source interface {
	// Lookup returns the value of the given key, and whether it is defined.
	Lookup(key string) (any, bool)
}

// Values is a source backed by a plain map, e.g. for hard-coded defaults.
type Values map[string]any

// Lookup implements Source.
func (v Values) Lookup(key string) (any, bool) {
	val, found := v[key]
	return val, found
}

// Resolve returns the value of the first source that defines the key.
// Sources are given in order of precedence, most specific first. A nil
// source or a nil value does not define a key.
func Resolve(key string, sources ...Source) (any, bool) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		if val, found := src.Lookup(key); found && val != nil {
			return val, true
		}
	}
	return nil, false
}

// ResolveString returns the string value of the first source that defines
// the key, or the given default.
func ResolveString(key, def string, sources ...Source) string {
	if val, found := Resolve(key, sources...); found {
		if s := String(val); s != "" {
			return s
		}
	}
	return def
}

// Collect returns the values of all sources that define the key, most
// specific first.
func Collect(key string, sources ...Source) []any {
	var result []any
	for _, src := range sources {
		if src == nil {
			continue
		}
		if val, found := src.Lookup(key); found && val != nil {
			result = append(result, val)
		}
	}
	return result
}

// String returns the textual representation of an attribute value. Lists
// are joined with a space, as needed for class-like attributes.
func String(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, elem := range v {
			if s := String(elem); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(val)
}

// Entry is one key/value pair of an attribute collection.
type Entry struct {
	Key string
	Val any
}

// Entries returns the key/value pairs of a map-like value. An attribute map
// keeps its order, a plain map is sorted by key.
func Entries(val any) []Entry {
	switch v := val.(type) {
	case *Map:
		result := make([]Entry, 0, v.Len())
		for key, val := range v.All() {
			result = append(result, Entry{key, val})
		}
		return result
	case map[string]any:
		result := make([]Entry, 0, len(v))
		for _, key := range slices.Sorted(maps.Keys(v)) {
			result = append(result, Entry{key, v[key]})
		}
		return result
	case Values:
		return Entries(map[string]any(v))
	}
	return nil
}

// Substitute replaces the single printf-style placeholder of the template
// with the given index. Supported placeholders are %d, %i, %u, %x, %X, %o,
// and %s, with optional flags, width, and precision. "%%" denotes a percent
// sign. If the template contains no placeholder, more than one placeholder,
// or an unsupported one, it is returned unchanged together with false.
func Substitute(tmpl string, idx int) (string, bool) {
	var sb strings.Builder
	verbs := 0
	for i := 0; i < len(tmpl); i++ {
		ch := tmpl[i]
		if ch != '%' {
			sb.WriteByte(ch)
			continue
		}
		i++
		if i >= len(tmpl) {
			return tmpl, false
		}
		if tmpl[i] == '%' {
			sb.WriteByte('%')
			continue
		}
		j := i
		for j < len(tmpl) && strings.IndexByte("-+ #0", tmpl[j]) >= 0 {
			j++
		}
		for j < len(tmpl) && isDigit(tmpl[j]) {
			j++
		}
		if j < len(tmpl) && tmpl[j] == '.' {
			j++
			for j < len(tmpl) && isDigit(tmpl[j]) {
				j++
			}
		}
		if j >= len(tmpl) {
			return tmpl, false
		}
		format := tmpl[i:j]
		verbs++
		if verbs > 1 {
			return tmpl, false
		}
		switch verb := tmpl[j]; verb {
		case 'd', 'i', 'u':
			fmt.Fprintf(&sb, "%"+format+"d", idx)
		case 'x', 'X', 'o':
			fmt.Fprintf(&sb, "%"+format+string(verb), idx)
		case 's':
			fmt.Fprintf(&sb, "%"+format+"s", strconv.Itoa(idx))
		default:
			return tmpl, false
		}
		i = j
	}
	if verbs == 0 {
		return tmpl, false
	}
	return sb.String(), true
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
