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

// Package config provides read-only configuration data: the site
// configuration and the metadata of a resource.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// KeyPresenter is the namespace of all presentation related configuration.
const KeyPresenter = "presenter"

// ErrNoConfig is returned, if no configuration file was given.
var ErrNoConfig = errors.New("no configuration file")

// Tree is a nested configuration map. All keys are stored in lower case,
// nested maps are of type map[string]any. Lookups ignore case.
type Tree map[string]any

// NewTree returns a normalized deep copy of the given map.
func NewTree(m map[string]any) Tree {
	if m == nil {
		return nil
	}
	return Tree(normalizeMap(m))
}

func normalizeMap(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for key, val := range m {
		result[strings.ToLower(key)] = normalizeValue(val)
	}
	return result
}

func normalizeValue(val any) any {
	switch v := val.(type) {
	case Tree:
		return normalizeMap(v)
	case map[string]any:
		return normalizeMap(v)
	case map[any]any:
		m := make(map[string]any, len(v))
		for key, elem := range v {
			m[fmt.Sprint(key)] = elem
		}
		return normalizeMap(m)
	case []any:
		result := make([]any, len(v))
		for i, elem := range v {
			result[i] = normalizeValue(elem)
		}
		return result
	}
	return val
}

// Lookup returns the value of the given key.
func (t Tree) Lookup(key string) (any, bool) {
	val, found := t[strings.ToLower(key)]
	return val, found
}

// Get returns the value found by following the given path of keys.
func (t Tree) Get(path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	curr := t
	for _, key := range path[:len(path)-1] {
		if curr = curr.Sub(key); curr == nil {
			return nil, false
		}
	}
	return curr.Lookup(path[len(path)-1])
}

// Sub returns the nested tree found by following the given path of keys, or
// nil if there is no such tree.
func (t Tree) Sub(path ...string) Tree {
	curr := t
	for _, key := range path {
		if key == "" {
			return nil
		}
		val, found := curr.Lookup(key)
		if !found {
			return nil
		}
		m, isMap := val.(map[string]any)
		if !isMap {
			return nil
		}
		curr = Tree(m)
	}
	return curr
}

// Site is the immutable snapshot of the site configuration. It is created
// once, before any presentation is built.
type Site struct {
	tree Tree
}

// NewSite creates a site configuration from the given settings.
func NewSite(settings map[string]any) *Site {
	return &Site{tree: NewTree(settings)}
}

// Presenter returns the presenter namespace of the site configuration.
func (s *Site) Presenter() Tree {
	if s == nil {
		return nil
	}
	return s.tree.Sub(KeyPresenter)
}

// Get returns the configuration value found by following the path of keys.
func (s *Site) Get(path ...string) (any, bool) {
	if s == nil {
		return nil, false
	}
	return s.tree.Get(path...)
}

// Load reads the site configuration from the given file. The file type is
// derived from the file extension.
func Load(path string) (*Site, error) {
	if path == "" {
		return nil, ErrNoConfig
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	return NewSite(v.AllSettings()), nil
}

// Parse reads the site configuration from data of the given type, e.g.
// "yaml", "json", or "toml".
func Parse(data []byte, configType string) (*Site, error) {
	v := viper.New()
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", configType, err)
	}
	return NewSite(v.AllSettings()), nil
}

// ParseFrontMatter reads the metadata of a resource, given as YAML.
func ParseFrontMatter(data []byte) (Tree, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse front matter: %w", err)
	}
	if m == nil {
		return Tree{}, nil
	}
	return NewTree(m), nil
}
