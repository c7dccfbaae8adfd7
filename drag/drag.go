// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drag implements the drag controller that moves a shape with
// the pointer and snaps it to the snap points of the other shapes and
// the world origin.
package drag

//go:generate core generate

import (
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/sketch/shape"
	"cogentcore.org/sketch/snap"
)

// States are the states of a drag [Session].
type States int32 //enums:enum -transform kebab

const (
	// Idle means no drag is in progress: the zero value, and the state
	// after [Session.End].
	Idle States = iota

	// Started means [Begin] has been called but the pointer has not
	// moved yet, so the fixed snap point set has not been captured.
	Started

	// Dragging means the pointer has moved at least once and the fixed
	// snap point set is frozen for the rest of the session.
	Dragging
)

// Session is one drag of a single shape, from pointer press to pointer
// release. Create one with [Begin], call [Session.Update] on every
// pointer move, and finish with [Session.End]. A Session is driven by
// a single goroutine, normally a UI event loop, and at most one shape
// is dragged at a time.
type Session struct {

	// Shape is the shape being dragged.
	Shape shape.Shape

	// Offset is the pointer position minus the shape position, captured
	// at [Begin] and constant for the whole session, so the shape does
	// not jump to put its position under the pointer.
	Offset math32.Vector2

	// Radius is the snap detection radius in scene units, compared to
	// the Manhattan distance between snap points. It can be changed
	// before the first [Session.Update]; it defaults to
	// [snap.DefaultRadius].
	Radius float32

	// State is the current state of the session.
	State States

	// Fixed is the snap points of all other shapes plus the world
	// origin, captured once on the first [Session.Update] and frozen
	// for the rest of the session. The dragged shape is excluded, so
	// it cannot snap to itself.
	Fixed []shape.SnapPoint

	// Snapped is whether the last [Session.Update] ended in a snap.
	Snapped bool

	// Target is the fixed point the shape snapped to on the last
	// [Session.Update], valid only when Snapped is true. UIs can use
	// it to highlight the active snap point.
	Target shape.SnapPoint

	reg *shape.Registry
}

// Begin starts dragging the given shape, with the pointer at the given
// scene position. The offset from the shape position to the pointer is
// captured now; the fixed snap points are not captured until the first
// [Session.Update], so shapes added between the press and the first
// move still participate.
func Begin(reg *shape.Registry, sh shape.Shape, pointer math32.Vector2) *Session {
	s := &Session{
		Shape:  sh,
		Offset: pointer.Sub(sh.Position()),
		Radius: snap.DefaultRadius,
		State:  Started,
		reg:    reg,
	}
	slog.Debug("drag: begin", "shape", sh.AsBase().ID, "pos", sh.Position(), "offset", s.Offset)
	return s
}

// Update applies one pointer move to the session and returns the
// position given to the shape. The candidate position is the pointer
// minus the captured offset. The shape's snap points are recomputed at
// the candidate and compared against the frozen fixed set, fixed
// points in the outer loop: the first pair within [Session.Radius]
// snaps the shape by the pair's difference, and the rest of the scan
// is skipped, so each move snaps at most once. With no pair in range
// the shape stays at the candidate. Update panics if the session is
// not active.
func (s *Session) Update(pointer math32.Vector2) math32.Vector2 {
	switch s.State {
	case Started:
		s.Fixed = snap.FixedPoints(s.reg, s.Shape.AsBase().ID)
		s.State = Dragging
	case Dragging:
	default:
		panic("drag: Update on a session that is not active")
	}
	pos := pointer.Sub(s.Offset)
	s.Shape.SetPosition(pos)
	s.Snapped = false
	s.Target = shape.SnapPoint{}
	moving := s.Shape.SnapPoints()
	for _, fp := range s.Fixed {
		for _, mp := range moving {
			if snap.Manhattan(fp.Pos, mp.Pos) > s.Radius {
				continue
			}
			pos = pos.Add(fp.Pos.Sub(mp.Pos))
			s.Shape.SetPosition(pos)
			s.Snapped = true
			s.Target = fp
			return pos
		}
	}
	return pos
}

// End finishes the session, leaving the shape at its current position
// and releasing the frozen snap points. Ending right after [Begin],
// without any move, is allowed. End panics if the session is not
// active, and any further Update or End panics as well.
func (s *Session) End() {
	if s.State == Idle {
		panic("drag: End on a session that is not active")
	}
	s.Fixed = nil
	s.Snapped = false
	s.Target = shape.SnapPoint{}
	s.State = Idle
	slog.Debug("drag: end", "shape", s.Shape.AsBase().ID, "pos", s.Shape.Position())
}
