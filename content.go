// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wnd

import (
	"github.com/gogpu/wnd/figure"
	"github.com/gogpu/wnd/geom"
)

// Content is the widget behind a window. The window tree decides when
// layout and paint happen; Content decides what they produce.
type Content interface {
	// UpdateContentLayout is called during reflow with the window's client
	// size and returns the new accessible region. It may reposition
	// children with SetRegionOnParent; those children are reflowed later in
	// the same commit.
	UpdateContentLayout(client geom.Size) geom.Rect

	// Paint appends the window's own figures, in window coordinates, for
	// the area invalid. Figures outside invalid may be appended; they are
	// culled by the compositor.
	Paint(q *figure.Queue, invalid geom.Rect)
}

// ContentFuncs adapts a pair of functions to Content. A nil Layout keeps
// the accessible region at the client size; a nil Draw paints nothing.
type ContentFuncs struct {
	Layout func(client geom.Size) geom.Rect
	Draw   func(q *figure.Queue, invalid geom.Rect)
}

// UpdateContentLayout calls Layout.
func (c ContentFuncs) UpdateContentLayout(client geom.Size) geom.Rect {
	if c.Layout == nil {
		return geom.RectOf(geom.Point{}, client)
	}
	return c.Layout(client)
}

// Paint calls Draw.
func (c ContentFuncs) Paint(q *figure.Queue, invalid geom.Rect) {
	if c.Draw != nil {
		c.Draw(q, invalid)
	}
}

// Figures is content made of a fixed list of figures. Its accessible region
// is the bounding box of the figures and the client area.
type Figures []figure.Figure

// UpdateContentLayout returns the union of the client area and the figures.
func (fs Figures) UpdateContentLayout(client geom.Size) geom.Rect {
	r := geom.RectOf(geom.Point{}, client)
	for _, f := range fs {
		r = r.Union(f.Region())
	}
	return r
}

// Paint appends the figures that touch invalid.
func (fs Figures) Paint(q *figure.Queue, invalid geom.Rect) {
	for _, f := range fs {
		if f.Region().Intersects(invalid) {
			q.Append(geom.Vector{}, f)
		}
	}
}
