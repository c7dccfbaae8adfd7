// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sketch implements a headless interactive 2D drafting
// surface: a shape registry, two-click and dimension-entry drawing of
// rectangles and lines, and pointer-driven dragging of shapes with
// snap alignment to the corners, endpoints, and world origin of the
// other shapes. It consumes pointer positions in scene coordinates
// from a UI layer and updates geometry; it does no rendering and no
// event handling of its own. See [cogentcore.org/sketch/dxf] for
// exporting the result.
package sketch

//go:generate core generate

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/sketch/drag"
	"cogentcore.org/sketch/shape"
	"cogentcore.org/sketch/snap"
)

// Modes are the interaction modes of a [Sketch].
type Modes int32 //enums:enum -transform kebab

const (
	// Select selects and drags existing shapes.
	Select Modes = iota

	// DrawRect draws rectangles by two clicks or entered dimensions.
	DrawRect

	// DrawLine draws lines by two clicks or entered dimensions.
	DrawLine
)

// DefaultHitTolerance is the default pointer hit test slop for
// selecting shapes, in scene units.
const DefaultHitTolerance float32 = 4

// Sketch is a headless drafting surface. A UI layer drives it with
// [Sketch.Press], [Sketch.Move], and [Sketch.Release] in scene
// coordinates, plus [Sketch.SetDims] and [Sketch.Finalize] for
// dimension entry, and renders [Sketch.Registry] however it wants.
// All methods must be called from a single goroutine, normally the UI
// event loop.
type Sketch struct {

	// Registry holds the shapes.
	Registry shape.Registry

	// Mode is the current interaction mode. Use [Sketch.SetMode] to
	// change it so that in-progress drawing is cleaned up.
	Mode Modes

	// SnapRadius is the snap detection radius for dragging, in scene
	// units of Manhattan distance. Defaults to [snap.DefaultRadius].
	SnapRadius float32

	// HitTolerance is the pointer hit test slop for selecting shapes,
	// in scene units. Defaults to [DefaultHitTolerance].
	HitTolerance float32

	// Drag is the active drag session, or nil when no shape is being
	// dragged.
	Drag *drag.Session

	// anchor is the first click of an in-progress drawing.
	anchor math32.Vector2

	// pending is the in-progress temporary shape, nil if none.
	pending shape.Shape
}

// New returns a new [Sketch] with default settings, in [Select] mode.
func New() *Sketch {
	return &Sketch{SnapRadius: snap.DefaultRadius, HitTolerance: DefaultHitTolerance}
}

// SetMode sets the interaction mode, canceling any in-progress
// drawing.
func (sk *Sketch) SetMode(m Modes) {
	if sk.Mode == m {
		return
	}
	sk.Cancel()
	sk.Mode = m
	slog.Debug("sketch: mode", "mode", m)
}

// Press handles a pointer press at the given scene position. In the
// drawing modes, the first press anchors a new temporary shape and the
// second press finalizes it. In [Select] mode, a press over a shape
// starts dragging it.
func (sk *Sketch) Press(p math32.Vector2) {
	switch sk.Mode {
	case DrawRect, DrawLine:
		if sk.pending == nil {
			sk.start(p)
			return
		}
		sk.setSecond(p)
		sk.finalize()
	case Select:
		if sk.Drag != nil {
			return
		}
		if sh := sk.Hit(p); sh != nil {
			sk.Drag = drag.Begin(&sk.Registry, sh, p)
			sk.Drag.Radius = sk.SnapRadius
		}
	}
}

// Move handles a pointer move at the given scene position, updating
// the drag in progress or the live geometry of the shape being drawn.
func (sk *Sketch) Move(p math32.Vector2) {
	switch {
	case sk.Drag != nil:
		sk.Drag.Update(p)
	case sk.pending != nil:
		sk.setSecond(p)
	}
}

// Release handles a pointer release at the given scene position,
// ending the drag in progress if there is one.
func (sk *Sketch) Release(p math32.Vector2) {
	if sk.Drag == nil {
		return
	}
	sk.Drag.End()
	sk.Drag = nil
}

// SetDims sets the second point of the shape being drawn from entered
// dimensions instead of a pointer position: the anchor plus (length,
// width) for rectangles, or plus (dx, dy) for lines. It updates the
// live preview; [Sketch.Finalize] commits it. It does nothing if no
// drawing is in progress.
func (sk *Sketch) SetDims(length, width float32) {
	if sk.pending == nil {
		return
	}
	sk.setSecond(sk.anchor.Add(math32.Vec2(length, width)))
}

// Finalize commits the shape being drawn, ending the drawing and
// returning the shape. It returns an error if no drawing is in
// progress, such as dimensions being entered before the first click.
func (sk *Sketch) Finalize() (shape.Shape, error) {
	if sk.pending == nil {
		return nil, errors.New("sketch: no shape is being drawn")
	}
	return sk.finalize(), nil
}

// Cancel aborts any in-progress drawing, removing the temporary shape
// from the registry.
func (sk *Sketch) Cancel() {
	if sk.pending == nil {
		return
	}
	sk.Registry.Delete(sk.pending.AsBase().ID)
	sk.pending = nil
}

// Hit returns the topmost shape at the given scene position, or nil.
// Shapes added later are on top. The shape being drawn cannot be hit.
func (sk *Sketch) Hit(p math32.Vector2) shape.Shape {
	vals := sk.Registry.List.Values
	for i := len(vals) - 1; i >= 0; i-- {
		sh := vals[i]
		if sh.AsBase().Temporary {
			continue
		}
		if sh.Contains(p, sk.HitTolerance) {
			return sh
		}
	}
	return nil
}

// NearestSnap returns the snap point nearest to the given scene
// position within [Sketch.SnapRadius], and whether there is one, for
// hover highlighting in the UI.
func (sk *Sketch) NearestSnap(p math32.Vector2) (shape.SnapPoint, bool) {
	return snap.List(snap.FixedPoints(&sk.Registry, 0)).Nearest(p, sk.SnapRadius)
}

// start begins drawing at the given anchor point, adding the
// temporary shape to the registry so the UI can render the preview.
func (sk *Sketch) start(p math32.Vector2) {
	sk.anchor = p
	switch sk.Mode {
	case DrawRect:
		r := &shape.Rect{Pos: p}
		r.Temporary = true
		sk.Registry.Add(r)
		sk.pending = r
	case DrawLine:
		l := &shape.Line{Start: p, End: p}
		l.Temporary = true
		sk.Registry.Add(l)
		sk.pending = l
	}
}

// setSecond updates the in-progress geometry from the anchor to the
// given second point. Rectangles are normalized, so drawing from any
// corner works; lines keep their direction.
func (sk *Sketch) setSecond(p math32.Vector2) {
	switch sh := sk.pending.(type) {
	case *shape.Rect:
		b := math32.B2(sk.anchor.X, sk.anchor.Y, p.X, p.Y).Canon()
		sh.Pos = b.Min
		sh.Size = b.Size()
	case *shape.Line:
		sh.End = p
	}
}

func (sk *Sketch) finalize() shape.Shape {
	sh := sk.pending
	sh.AsBase().Temporary = false
	sk.pending = nil
	slog.Debug("sketch: add", "shape", sh.AsBase().ID, "pos", sh.Position())
	return sh
}
