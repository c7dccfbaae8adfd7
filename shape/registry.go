// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/base/keylist"

// Registry is the ordered collection of shapes in a sketch. Shapes are
// iterated in insertion order, which makes snap point extraction and
// snapping deterministic. The zero value is usable. A Registry must be
// used from a single goroutine, which is the normal situation of being
// driven by a UI event loop.
type Registry struct {

	// List is the ordered list of shapes, keyed by [ID]. Iterate over
	// List.Values for all shapes in insertion order.
	List keylist.List[ID, Shape]

	// lastID is the last assigned ID.
	lastID ID
}

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{}
}

// Add adds the given shape to the registry, assigning and returning
// its [ID].
func (r *Registry) Add(sh Shape) ID {
	r.lastID++
	id := r.lastID
	sh.AsBase().ID = id
	r.List.Set(id, sh)
	return id
}

// At returns the shape with the given [ID], or nil if it is not in
// the registry.
func (r *Registry) At(id ID) Shape {
	return r.List.At(id)
}

// Delete removes the shape with the given [ID], returning whether it
// was present. The relative order of the remaining shapes is
// preserved. The ID is not reused.
func (r *Registry) Delete(id ID) bool {
	return r.List.DeleteByKey(id)
}

// Len returns the number of shapes in the registry.
func (r *Registry) Len() int {
	return r.List.Len()
}

// Reset removes all shapes. Subsequent [Registry.Add] calls continue
// the ID sequence.
func (r *Registry) Reset() {
	r.List.Reset()
}
