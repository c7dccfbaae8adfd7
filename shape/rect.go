// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Rect is an axis-aligned rectangle, positioned by its top-left corner
// in scene coordinates.
type Rect struct {
	Base

	// Pos is the top-left corner.
	Pos math32.Vector2

	// Size is the width and height. A zero size is allowed;
	// the corners then coincide.
	Size math32.Vector2
}

// NewRect returns a new [Rect] with the given top-left corner position
// and size.
func NewRect(x, y, w, h float32) *Rect {
	return &Rect{Pos: math32.Vec2(x, y), Size: math32.Vec2(w, h)}
}

func (r *Rect) Position() math32.Vector2 { return r.Pos }

func (r *Rect) SetPosition(p math32.Vector2) { r.Pos = p }

// SnapPoints returns the four corners, in top-left, top-right,
// bottom-left, bottom-right order.
func (r *Rect) SnapPoints() []SnapPoint {
	return []SnapPoint{
		{Pos: r.Pos, Shape: r.ID, Kind: Corner},
		{Pos: r.Pos.Add(math32.Vec2(r.Size.X, 0)), Shape: r.ID, Kind: Corner},
		{Pos: r.Pos.Add(math32.Vec2(0, r.Size.Y)), Shape: r.ID, Kind: Corner},
		{Pos: r.Pos.Add(r.Size), Shape: r.ID, Kind: Corner},
	}
}

func (r *Rect) BBox() math32.Box2 {
	return math32.B2(r.Pos.X, r.Pos.Y, r.Pos.X+r.Size.X, r.Pos.Y+r.Size.Y).Canon()
}

func (r *Rect) Contains(p math32.Vector2, tolerance float32) bool {
	b := r.BBox()
	return b.ContainsPoint(p) || b.DistanceToPoint(p) <= tolerance
}
