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
	"slices"
	"sync"

	"zettelstore.de/contrib/presmark/config"
)

// Resource is the page that is currently built. It collects all
// presentations built for it.
type Resource struct {
	Name string
	Meta config.Tree

	mx   sync.Mutex
	pres []*Presentation
}

// NewResource creates a resource with the given name and metadata.
func NewResource(name string, meta config.Tree) *Resource {
	return &Resource{Name: name, Meta: meta}
}

func (r *Resource) add(p *Presentation) {
	r.mx.Lock()
	r.pres = append(r.pres, p)
	r.mx.Unlock()
}

// Presentations returns all presentations built for the resource, in the
// order of their creation.
func (r *Resource) Presentations() []*Presentation {
	r.mx.Lock()
	defer r.mx.Unlock()
	return slices.Clone(r.pres)
}

// Reset forgets all presentations, to start a new build pass.
func (r *Resource) Reset() {
	r.mx.Lock()
	r.pres = nil
	r.mx.Unlock()
}
