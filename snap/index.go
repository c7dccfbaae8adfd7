// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snap

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/sketch/shape"
)

// Index is a queryable collection of snap points. The base
// implementation is [List], a linear scan, which is fast enough for
// the shape counts of interactive sketches. Callers that depend on
// Index can be given an accelerated spatial structure instead without
// changing, as long as it preserves the ordered tie behavior of
// [Nearest].
type Index interface {

	// Nearest returns the point nearest to p by Manhattan distance
	// within the given radius, and whether there is one.
	Nearest(p math32.Vector2, radius float32) (shape.SnapPoint, bool)
}

// List is the linear [Index]: a slice of snap points scanned in order.
type List []shape.SnapPoint

func (l List) Nearest(p math32.Vector2, radius float32) (shape.SnapPoint, bool) {
	return Nearest(p, l, radius)
}
