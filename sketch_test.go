// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sketch

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/sketch/shape"
	"cogentcore.org/sketch/snap"
	"github.com/stretchr/testify/assert"
)

func TestDrawRect(t *testing.T) {
	sk := New()
	sk.SetMode(DrawRect)

	sk.Press(math32.Vec2(10, 10))
	assert.Equal(t, 1, sk.Registry.Len())
	r := sk.Registry.List.Values[0].(*shape.Rect)
	assert.True(t, r.Temporary)

	sk.Move(math32.Vec2(60, 40))
	assert.Equal(t, math32.Vec2(10, 10), r.Pos)
	assert.Equal(t, math32.Vec2(50, 30), r.Size)

	sk.Press(math32.Vec2(80, 60))
	assert.False(t, r.Temporary)
	assert.Equal(t, math32.Vec2(10, 10), r.Pos)
	assert.Equal(t, math32.Vec2(70, 50), r.Size)
	assert.Equal(t, 1, sk.Registry.Len())
}

func TestDrawRectReversed(t *testing.T) {
	sk := New()
	sk.SetMode(DrawRect)
	sk.Press(math32.Vec2(100, 100))
	sk.Press(math32.Vec2(20, 40))

	r := sk.Registry.List.Values[0].(*shape.Rect)
	assert.Equal(t, math32.Vec2(20, 40), r.Pos)
	assert.Equal(t, math32.Vec2(80, 60), r.Size)
}

func TestDrawLine(t *testing.T) {
	sk := New()
	sk.SetMode(DrawLine)
	sk.Press(math32.Vec2(0, 0))
	sk.Move(math32.Vec2(30, 30))
	sk.Press(math32.Vec2(50, 10))

	l := sk.Registry.List.Values[0].(*shape.Line)
	assert.False(t, l.Temporary)
	assert.Equal(t, math32.Vec2(0, 0), l.Start)
	assert.Equal(t, math32.Vec2(50, 10), l.End)
}

func TestDims(t *testing.T) {
	sk := New()
	sk.SetMode(DrawRect)
	sk.Press(math32.Vec2(10, 10))
	sk.SetDims(100, 50)

	sh, err := sk.Finalize()
	assert.NoError(t, err)
	r := sh.(*shape.Rect)
	assert.False(t, r.Temporary)
	assert.Equal(t, math32.Vec2(10, 10), r.Pos)
	assert.Equal(t, math32.Vec2(100, 50), r.Size)
}

func TestDimsNegative(t *testing.T) {
	sk := New()
	sk.SetMode(DrawRect)
	sk.Press(math32.Vec2(10, 10))
	sk.SetDims(-20, -10)

	sh, err := sk.Finalize()
	assert.NoError(t, err)
	r := sh.(*shape.Rect)
	assert.Equal(t, math32.Vec2(-10, 0), r.Pos)
	assert.Equal(t, math32.Vec2(20, 10), r.Size)
}

func TestFinalizeNone(t *testing.T) {
	sk := New()
	sk.SetMode(DrawRect)
	_, err := sk.Finalize()
	assert.Error(t, err)
	sk.SetDims(10, 10) // no-op without a first click
	assert.Equal(t, 0, sk.Registry.Len())
}

func TestCancel(t *testing.T) {
	sk := New()
	sk.SetMode(DrawRect)
	sk.Press(math32.Vec2(0, 0))
	assert.Equal(t, 1, sk.Registry.Len())

	sk.Cancel()
	assert.Equal(t, 0, sk.Registry.Len())
	_, err := sk.Finalize()
	assert.Error(t, err)
}

func TestModeSwitchCancels(t *testing.T) {
	sk := New()
	sk.SetMode(DrawRect)
	sk.Press(math32.Vec2(0, 0))
	sk.SetMode(DrawLine)
	assert.Equal(t, 0, sk.Registry.Len())
}

func TestTemporaryExcluded(t *testing.T) {
	sk := New()
	sk.Registry.Add(shape.NewRect(200, 200, 10, 10))
	sk.SetMode(DrawRect)
	sk.Press(math32.Vec2(0, 0))
	sk.Move(math32.Vec2(100, 100))

	// only the origin and the finalized rect contribute snap points
	pts := snap.FixedPoints(&sk.Registry, 0)
	assert.Equal(t, 5, len(pts))
}

func TestSelectDrag(t *testing.T) {
	sk := New()
	sk.Registry.Add(shape.NewRect(50, 50, 100, 100))
	b := shape.NewRect(0, 0, 40, 40)
	sk.Registry.Add(b)

	sk.Press(math32.Vec2(10, 10))
	assert.NotNil(t, sk.Drag)
	assert.Equal(t, shape.Shape(b), sk.Drag.Shape)

	sk.Move(math32.Vec2(58, 58))
	assert.True(t, sk.Drag.Snapped)
	assert.Equal(t, math32.Vec2(50, 50), b.Pos)

	sk.Release(math32.Vec2(58, 58))
	assert.Nil(t, sk.Drag)
	assert.Equal(t, math32.Vec2(50, 50), b.Pos)
}

func TestPressOverNothing(t *testing.T) {
	sk := New()
	sk.Registry.Add(shape.NewRect(50, 50, 10, 10))

	sk.Press(math32.Vec2(200, 200))
	assert.Nil(t, sk.Drag)
	sk.Move(math32.Vec2(210, 210))
	sk.Release(math32.Vec2(210, 210))
}

func TestHit(t *testing.T) {
	sk := New()
	bottom := shape.NewRect(0, 0, 100, 100)
	sk.Registry.Add(bottom)
	top := shape.NewRect(50, 50, 100, 100)
	sk.Registry.Add(top)

	assert.Equal(t, shape.Shape(top), sk.Hit(math32.Vec2(75, 75)))
	assert.Equal(t, shape.Shape(bottom), sk.Hit(math32.Vec2(10, 10)))
	assert.Nil(t, sk.Hit(math32.Vec2(300, 300)))

	l := shape.NewLine(0, 200, 100, 200)
	sk.Registry.Add(l)
	assert.Equal(t, shape.Shape(l), sk.Hit(math32.Vec2(50, 203)))
	assert.Nil(t, sk.Hit(math32.Vec2(50, 210)))
}

func TestHitSkipsTemporary(t *testing.T) {
	sk := New()
	sk.SetMode(DrawRect)
	sk.Press(math32.Vec2(0, 0))
	sk.Move(math32.Vec2(100, 100))

	assert.Nil(t, sk.Hit(math32.Vec2(50, 50)))
}

func TestNearestSnap(t *testing.T) {
	sk := New()
	sk.Registry.Add(shape.NewRect(100, 100, 50, 50))

	sp, ok := sk.NearestSnap(math32.Vec2(98, 103))
	assert.True(t, ok)
	assert.Equal(t, math32.Vec2(100, 100), sp.Pos)

	_, ok = sk.NearestSnap(math32.Vec2(400, 400))
	assert.False(t, ok)

	sk.SnapRadius = 5
	_, ok = sk.NearestSnap(math32.Vec2(98, 103))
	assert.True(t, ok)
	_, ok = sk.NearestSnap(math32.Vec2(90, 103))
	assert.False(t, ok)
}

func TestModesString(t *testing.T) {
	assert.Equal(t, "select", Select.String())
	assert.Equal(t, "draw-rect", DrawRect.String())
	assert.Equal(t, "draw-line", DrawLine.String())
	var m Modes
	assert.NoError(t, m.SetString("draw-line"))
	assert.Equal(t, DrawLine, m)
}
