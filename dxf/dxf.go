// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dxf writes the shapes of a sketch as a minimal DXF R12
// (AC1009) ASCII document: one LINE entity per line, one closed
// POLYLINE per rectangle, all on layer 0, with the drawing extents in
// the header. The subset is what plain drafting interchange needs;
// there is no styling, no blocks, and no tables section.
package dxf

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/sketch/shape"
)

// Write writes the registry's shapes to w in DXF R12 format.
// Temporary shapes are skipped. An empty registry produces a valid
// document with zero extents.
func Write(reg *shape.Registry, w io.Writer) error {
	d := &writer{w: bufio.NewWriter(w)}
	d.header(extents(reg))
	d.entities(reg)
	d.pair(0, "EOF")
	if d.err != nil {
		return d.err
	}
	return d.w.Flush()
}

// Save writes the registry's shapes to the given file in DXF R12
// format. See [Write].
func Save(reg *shape.Registry, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	return errors.Log(Write(reg, fp))
}

// writer emits DXF group code and value pairs, keeping the first
// error.
type writer struct {
	w   *bufio.Writer
	err error
}

func (d *writer) pair(code int, value string) {
	if d.err != nil {
		return
	}
	_, d.err = d.w.WriteString(strconv.Itoa(code) + "\n" + value + "\n")
}

func (d *writer) num(code int, v float32) {
	d.pair(code, strconv.FormatFloat(float64(v), 'f', -1, 32))
}

// point writes the x and y group codes for a point, with the given
// base code: 10/20 for primary points, 11/21 for the second point of
// a LINE.
func (d *writer) point(code int, p math32.Vector2) {
	d.num(code, p.X)
	d.num(code+10, p.Y)
}

func (d *writer) header(ext math32.Box2) {
	d.pair(0, "SECTION")
	d.pair(2, "HEADER")
	d.pair(9, "$ACADVER")
	d.pair(1, "AC1009")
	d.pair(9, "$EXTMIN")
	d.point(10, ext.Min)
	d.pair(9, "$EXTMAX")
	d.point(10, ext.Max)
	d.pair(0, "ENDSEC")
}

func (d *writer) entities(reg *shape.Registry) {
	d.pair(0, "SECTION")
	d.pair(2, "ENTITIES")
	for _, sh := range reg.List.Values {
		if sh.AsBase().Temporary {
			continue
		}
		switch sh := sh.(type) {
		case *shape.Line:
			d.line(sh)
		case *shape.Rect:
			d.rect(sh)
		}
	}
	d.pair(0, "ENDSEC")
}

func (d *writer) line(l *shape.Line) {
	d.pair(0, "LINE")
	d.pair(8, "0")
	d.point(10, l.Start)
	d.point(11, l.End)
}

// rect writes a rectangle as a closed POLYLINE with four vertices in
// perimeter order.
func (d *writer) rect(r *shape.Rect) {
	b := r.BBox()
	d.pair(0, "POLYLINE")
	d.pair(8, "0")
	d.pair(66, "1")
	d.pair(70, "1")
	for _, p := range []math32.Vector2{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	} {
		d.pair(0, "VERTEX")
		d.pair(8, "0")
		d.point(10, p)
	}
	d.pair(0, "SEQEND")
}

// extents returns the bounding box of the non-temporary shapes, or a
// zero box for an empty registry.
func extents(reg *shape.Registry) math32.Box2 {
	b := math32.B2Empty()
	for _, sh := range reg.List.Values {
		if sh.AsBase().Temporary {
			continue
		}
		b.ExpandByBox(sh.BBox())
	}
	if b.IsEmpty() {
		return math32.Box2{}
	}
	return b
}
