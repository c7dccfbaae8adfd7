// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides the 2D shape model for sketch: rectangles and
// lines with positions in scene coordinates, stable identities managed
// by a [Registry], and the snap points they contribute for object
// alignment.
package shape

//go:generate core generate

import "cogentcore.org/core/math32"

// ID is the stable identity of a shape within a [Registry].
// IDs are assigned when a shape is added and are never reused.
// The zero ID means no shape; the world origin snap point uses it.
type ID int64

// SnapKinds are the kinds of snap points that shapes contribute.
type SnapKinds int32 //enums:enum -transform kebab

const (
	// Origin is the world origin (0,0), which is always available
	// as a snap target.
	Origin SnapKinds = iota

	// Corner is one of the four corners of a rectangle.
	Corner

	// Endpoint is an endpoint of a line.
	Endpoint
)

// SnapPoint is one point of interest for snap alignment, derived from
// the current geometry of a shape, or the world origin. Snap points
// are recomputed whenever geometry changes; they are never stored.
type SnapPoint struct {

	// Pos is the position of the point in scene coordinates.
	Pos math32.Vector2

	// Shape is the [ID] of the shape this point belongs to,
	// or 0 for the world origin.
	Shape ID

	// Kind is the kind of snap point.
	Kind SnapKinds
}

// Shape is the interface for all shapes in a [Registry].
type Shape interface {

	// AsBase returns the common shape data.
	AsBase() *Base

	// Position returns the position of the shape in scene coordinates:
	// the top-left corner for rectangles, the start point for lines.
	Position() math32.Vector2

	// SetPosition moves the shape so that [Shape.Position] is at the
	// given point, preserving its size and orientation.
	SetPosition(p math32.Vector2)

	// SnapPoints returns the snap points of the shape at its current
	// position: the four corners for rectangles, both endpoints for
	// lines. The order is fixed per shape type, so snapping is
	// deterministic.
	SnapPoints() []SnapPoint

	// BBox returns the axis-aligned bounding box of the shape,
	// normalized so that Min is less than or equal to Max.
	BBox() math32.Box2

	// Contains reports whether the given scene point hits the shape.
	// Points within the given tolerance of the shape also hit, which
	// makes zero-area shapes such as lines selectable.
	Contains(p math32.Vector2, tolerance float32) bool
}

// Base is the common data for all shapes. Shape types embed it.
type Base struct {

	// ID is the registry-assigned identity of the shape.
	// It is set by [Registry.Add] and must not be changed.
	ID ID

	// Name is an optional display name for the shape.
	Name string

	// Temporary marks an in-progress shape that is still being drawn.
	// Temporary shapes contribute no snap points and are not exported.
	Temporary bool
}

// AsBase returns the common shape data.
func (b *Base) AsBase() *Base { return b }
