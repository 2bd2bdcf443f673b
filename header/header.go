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

// Package header separates the structured header of a slide from its body.
//
// A header is a YAML mapping at the top of the slide text, terminated by a
// line that consists of "---". A leading "---" line is allowed, it starts
// the YAML document.
package header

import (
	"strings"

	"gopkg.in/yaml.v3"

	"zettelstore.de/contrib/presmark/attrs"
)

// Delimiter terminates the header.
const Delimiter = "---"

// Result is the outcome of splitting a slide text.
type Result struct {
	Meta      *attrs.Map // Header values, never nil
	Body      string     // Slide text without header
	Found     bool       // A valid header was found
	Malformed bool       // A delimiter was found, but the header is not a mapping
}

// Split separates the header of the given slide text from its body. If
// there is no delimiter line, or the header is not a YAML mapping, the
// whole text is the body and the header values are empty.
func Split(raw string) Result {
	pos := findDelimiter(raw)
	if pos < 0 {
		return Result{Meta: &attrs.Map{}, Body: raw}
	}
	block := raw[:pos]
	block = strings.TrimSuffix(block, "\n")
	block = strings.TrimSuffix(block, "\r")
	meta, ok := Parse(block)
	if !ok {
		return Result{Meta: &attrs.Map{}, Body: raw, Malformed: true}
	}
	return Result{Meta: meta, Body: raw[pos+len(Delimiter):], Found: true}
}

// findDelimiter returns the position of the first delimiter line, that does
// not start at the beginning of the text. The search starts after the length
// of the delimiter, so that an opening "---" does not terminate an empty
// header.
func findDelimiter(raw string) int {
	for start := len(Delimiter); start < len(raw); {
		pos := strings.Index(raw[start:], Delimiter)
		if pos < 0 {
			return -1
		}
		pos += start
		if raw[pos-1] == '\n' && isLineEnd(raw, pos+len(Delimiter)) {
			return pos
		}
		start = pos + 1
	}
	return -1
}

func isLineEnd(raw string, pos int) bool {
	rest := raw[pos:]
	return rest == "" || rest[0] == '\n' || strings.HasPrefix(rest, "\r\n")
}

// Parse decodes a header block into an ordered attribute map. Keys are
// stored in lower case, like configuration keys. It returns
// false, if the block is not valid YAML, or if it is not a mapping. An empty
// block or a block consisting only of comments results in an empty map.
func Parse(block string) (*attrs.Map, bool) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, false
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &attrs.Map{}, true
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return &attrs.Map{}, true
	}
	if root.Kind != yaml.MappingNode {
		return nil, false
	}
	return decodeMapping(root), true
}

func decodeMapping(node *yaml.Node) *attrs.Map {
	m := &attrs.Map{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		m.Set(strings.ToLower(keyNode.Value), decodeValue(valNode))
	}
	return m
}

func decodeValue(node *yaml.Node) any {
	switch node.Kind {
	case yaml.MappingNode:
		return decodeMapping(node)
	case yaml.AliasNode:
		if node.Alias != nil {
			return decodeValue(node.Alias)
		}
		return nil
	case yaml.SequenceNode:
		result := make([]any, 0, len(node.Content))
		for _, elem := range node.Content {
			result = append(result, decodeValue(elem))
		}
		return result
	}
	var val any
	if err := node.Decode(&val); err != nil {
		return node.Value
	}
	return val
}
