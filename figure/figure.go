// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package figure provides the draw-command buffer that windows fill during
// composition and the compositor that replays it onto a device surface.
//
// # Queue
//
// A Queue is a flat sequence of draw items interleaved with group markers.
// Each group carries a coordinate offset and a clip rectangle, and groups
// nest like a stack:
//
//	q := figure.NewQueue()
//	q.BeginGroup(geom.Vec(10, 10), geom.R(10, 10, 200, 100))
//	q.Append(geom.Vector{}, &figure.Background{Rect: geom.R(0, 0, 200, 100), Color: color.White})
//	q.EndGroup()
//
// Every begin marker stores the index of its end marker and vice versa, so
// the compositor can skip a clipped-out group without visiting its
// contents.
//
// # Compositor
//
// Compositor.Draw walks a queue once, maintaining an (offset, clip) stack.
// Figures whose region misses the current clip are culled without a device
// call; groups whose clip becomes empty are jumped over entirely.
//
// # Figures
//
// Figure is the widget-layer contract. The package ships a small reference
// set (Background, Rectangle, RoundedRectangle, Ellipse, Line, Text,
// Bitmap) rasterized with golang.org/x/image.
package figure

import (
	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
)

// Figure is an atomic drawable item.
type Figure interface {
	// Region returns the bounds the figure may touch, in its own
	// coordinates.
	Region() geom.Rect

	// DrawOn draws the figure onto s translated by offset.
	DrawOn(s surface.Surface, offset geom.Vector)
}
