// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestRectSnapPoints(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	r.ID = 3
	pts := r.SnapPoints()
	assert.Equal(t, 4, len(pts))
	assert.Equal(t, math32.Vec2(10, 20), pts[0].Pos)
	assert.Equal(t, math32.Vec2(110, 20), pts[1].Pos)
	assert.Equal(t, math32.Vec2(10, 70), pts[2].Pos)
	assert.Equal(t, math32.Vec2(110, 70), pts[3].Pos)
	for _, p := range pts {
		assert.Equal(t, ID(3), p.Shape)
		assert.Equal(t, Corner, p.Kind)
	}
}

func TestRectDegenerate(t *testing.T) {
	r := NewRect(5, 5, 0, 0)
	pts := r.SnapPoints()
	assert.Equal(t, 4, len(pts))
	for _, p := range pts {
		assert.Equal(t, math32.Vec2(5, 5), p.Pos)
	}
}

func TestRectSetPosition(t *testing.T) {
	r := NewRect(0, 0, 30, 40)
	r.SetPosition(math32.Vec2(7, -2))
	assert.Equal(t, math32.Vec2(7, -2), r.Position())
	assert.Equal(t, math32.Vec2(30, 40), r.Size)
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	assert.True(t, r.Contains(math32.Vec2(50, 50), 0))
	assert.True(t, r.Contains(math32.Vec2(0, 0), 0))
	assert.False(t, r.Contains(math32.Vec2(105, 50), 0))
	assert.True(t, r.Contains(math32.Vec2(103, 50), 4))
}

func TestRectBBox(t *testing.T) {
	r := &Rect{Pos: math32.Vec2(10, 10), Size: math32.Vec2(-4, -6)}
	b := r.BBox()
	assert.Equal(t, math32.Vec2(6, 4), b.Min)
	assert.Equal(t, math32.Vec2(10, 10), b.Max)
}

func TestLineSnapPoints(t *testing.T) {
	l := NewLine(1, 2, 3, 4)
	l.ID = 7
	pts := l.SnapPoints()
	assert.Equal(t, 2, len(pts))
	assert.Equal(t, math32.Vec2(1, 2), pts[0].Pos)
	assert.Equal(t, math32.Vec2(3, 4), pts[1].Pos)
	for _, p := range pts {
		assert.Equal(t, ID(7), p.Shape)
		assert.Equal(t, Endpoint, p.Kind)
	}
}

func TestLineSetPosition(t *testing.T) {
	l := NewLine(10, 10, 40, 50)
	l.SetPosition(math32.Vec2(0, 0))
	assert.Equal(t, math32.Vec2(0, 0), l.Start)
	assert.Equal(t, math32.Vec2(30, 40), l.End)
}

func TestLineContains(t *testing.T) {
	l := NewLine(0, 0, 100, 0)
	assert.True(t, l.Contains(math32.Vec2(50, 0), 0))
	assert.True(t, l.Contains(math32.Vec2(50, 3), 4))
	assert.False(t, l.Contains(math32.Vec2(50, 5), 4))
	assert.False(t, l.Contains(math32.Vec2(110, 0), 4))
}

func TestSnapKindsString(t *testing.T) {
	assert.Equal(t, "origin", Origin.String())
	assert.Equal(t, "corner", Corner.String())
	assert.Equal(t, "endpoint", Endpoint.String())
	var k SnapKinds
	assert.NoError(t, k.SetString("endpoint"))
	assert.Equal(t, Endpoint, k)
	assert.Error(t, k.SetString("edge"))
}
