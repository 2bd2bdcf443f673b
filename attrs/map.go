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

// Package attrs provides ordered attribute maps and the resolution of
// attribute values from a chain of configuration sources.
package attrs

import (
	"iter"
	"slices"
)

// Map is an attribute map that remembers the insertion order of its keys.
// The zero value is an empty map, ready to use.
type Map struct {
	keys []string
	vals map[string]any
}

// Make builds a map from alternating key and value arguments.
func Make(kv ...any) *Map {
	m := &Map{}
	for i := 0; i+1 < len(kv); i += 2 {
		if key, isString := kv[i].(string); isString {
			m.Set(key, kv[i+1])
		}
	}
	return m
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Has returns true, if the key is stored in the map.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, found := m.vals[key]
	return found
}

// Get returns the value of the given key.
func (m *Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	val, found := m.vals[key]
	return val, found
}

// GetString returns the value of the given key as a string.
func (m *Map) GetString(key string) (string, bool) {
	val, found := m.Get(key)
	if !found {
		return "", false
	}
	return String(val), true
}

// Lookup implements Source.
func (m *Map) Lookup(key string) (any, bool) { return m.Get(key) }

// Set stores the value under the key. A new key is appended to the order,
// an existing key keeps its position.
func (m *Map) Set(key string, val any) {
	if m.vals == nil {
		m.vals = map[string]any{}
	}
	if _, found := m.vals[key]; !found {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = val
}

// Delete removes the key and returns its previous value.
func (m *Map) Delete(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	val, found := m.vals[key]
	if !found {
		return nil, false
	}
	delete(m.vals, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
	return val, true
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All returns an iterator over all key/value pairs in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for _, key := range m.keys {
			if !yield(key, m.vals[key]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the map.
func (m *Map) Clone() *Map {
	result := &Map{}
	for key, val := range m.All() {
		result.Set(key, val)
	}
	return result
}

// Equal returns true, if both maps contain the same keys in the same order,
// with the same string representation of their values.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	if m.Len() == 0 {
		return true
	}
	if !slices.Equal(m.keys, other.keys) {
		return false
	}
	for _, key := range m.keys {
		if String(m.vals[key]) != String(other.vals[key]) {
			return false
		}
	}
	return true
}
