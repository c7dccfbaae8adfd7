// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "cogentcore.org/core/math32"

// Line is a straight segment between two points in scene coordinates.
type Line struct {
	Base

	// Start and End are the endpoints.
	Start math32.Vector2
	End   math32.Vector2
}

// NewLine returns a new [Line] with the given endpoints.
func NewLine(x0, y0, x1, y1 float32) *Line {
	return &Line{Start: math32.Vec2(x0, y0), End: math32.Vec2(x1, y1)}
}

func (l *Line) Position() math32.Vector2 { return l.Start }

// SetPosition moves the start point to p and translates the end point
// by the same amount, preserving the direction and length.
func (l *Line) SetPosition(p math32.Vector2) {
	l.End = l.End.Add(p.Sub(l.Start))
	l.Start = p
}

// SnapPoints returns the two endpoints, start first.
func (l *Line) SnapPoints() []SnapPoint {
	return []SnapPoint{
		{Pos: l.Start, Shape: l.ID, Kind: Endpoint},
		{Pos: l.End, Shape: l.ID, Kind: Endpoint},
	}
}

func (l *Line) BBox() math32.Box2 {
	var b math32.Box2
	b.SetFromPoints([]math32.Vector2{l.Start, l.End})
	return b
}

func (l *Line) Contains(p math32.Vector2, tolerance float32) bool {
	if l.Start == l.End {
		return l.Start.DistanceTo(p) <= tolerance
	}
	ln := math32.NewLine2(l.Start, l.End)
	return ln.ClosestPointToPoint(p).DistanceTo(p) <= tolerance
}
