// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snap implements snap point extraction and proximity queries
// for aligning shapes to each other and to the world origin while they
// are dragged.
package snap

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/sketch/shape"
)

// DefaultRadius is the default snap detection radius, in scene units.
const DefaultRadius float32 = 50

// Manhattan returns the Manhattan distance |dx| + |dy| between the two
// points. Snapping uses Manhattan rather than Euclidean distance, so
// the effective snap region around a point is diamond shaped.
func Manhattan(a, b math32.Vector2) float32 {
	return math32.Abs(a.X-b.X) + math32.Abs(a.Y-b.Y)
}

// FixedPoints returns the snap points of every shape in the registry
// except the excluded one, in registry order, with the world origin
// (0,0) always first. Pass 0 to exclude no shape. Temporary shapes
// contribute no points. The same position can occur more than once,
// such as a corner sitting on the origin. The result reflects the
// registry at the time of the call; callers needing a stable set
// across moves must hold on to it.
func FixedPoints(reg *shape.Registry, exclude shape.ID) []shape.SnapPoint {
	pts := []shape.SnapPoint{{Kind: shape.Origin}}
	for _, sh := range reg.List.Values {
		sb := sh.AsBase()
		if sb.ID == exclude || sb.Temporary {
			continue
		}
		pts = append(pts, sh.SnapPoints()...)
	}
	return pts
}

// Nearest returns the candidate point nearest to p by Manhattan
// distance, scanning in order so that the earliest candidate wins
// exact ties. It returns false if there are no candidates or the
// nearest one is farther than radius. A distance exactly equal to
// radius is within it.
func Nearest(p math32.Vector2, candidates []shape.SnapPoint, radius float32) (shape.SnapPoint, bool) {
	if len(candidates) == 0 {
		return shape.SnapPoint{}, false
	}
	best := candidates[0]
	bestD := Manhattan(p, best.Pos)
	for _, sp := range candidates[1:] {
		if d := Manhattan(p, sp.Pos); d < bestD {
			best, bestD = sp, d
		}
	}
	if bestD > radius {
		return shape.SnapPoint{}, false
	}
	return best, true
}
