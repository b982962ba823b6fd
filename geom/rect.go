// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned rectangle given by its top-left corner and size.
// The right and bottom edges are exclusive.
type Rect struct {
	X, Y int // top-left corner
	W, H int // width and height
}

// R is shorthand for Rect{X: x, Y: y, W: w, H: h}.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectOf builds a rectangle from a corner and a size.
func RectOf(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.Width, H: s.Height}
}

// FromImage converts an image.Rectangle.
func FromImage(r image.Rectangle) Rect {
	return Rect{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Point returns the top-left corner.
func (r Rect) Point() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the extent of r.
func (r Rect) Size() Size { return Size{Width: r.W, Height: r.H} }

// Left returns the x of the left edge.
func (r Rect) Left() int { return r.X }

// Top returns the y of the top edge.
func (r Rect) Top() int { return r.Y }

// Right returns the x just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// IsEmpty reports whether r covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns the number of pixels covered by r.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.W * r.H
}

// Offset returns r translated by v.
func (r Rect) Offset(v Vector) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r.
// An empty rectangle is contained in every rectangle.
func (r Rect) ContainsRect(o Rect) bool {
	if o.IsEmpty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o share at least one pixel.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).IsEmpty()
}

// Intersect returns the overlap of r and o.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle covering both r and o.
// Empty operands are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		if o.IsEmpty() {
			return Rect{}
		}
		return o
	}
	if o.IsEmpty() {
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.Right(), o.Right())
	y1 := max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Sub returns r with o removed, as at most four disjoint rectangles.
// The pieces are ordered top, bottom, left, right.
func (r Rect) Sub(o Rect) []Rect {
	if r.IsEmpty() {
		return nil
	}
	in := r.Intersect(o)
	if in.IsEmpty() {
		return []Rect{r}
	}
	pieces := make([]Rect, 0, 4)
	if in.Y > r.Y {
		pieces = append(pieces, Rect{X: r.X, Y: r.Y, W: r.W, H: in.Y - r.Y})
	}
	if in.Bottom() < r.Bottom() {
		pieces = append(pieces, Rect{X: r.X, Y: in.Bottom(), W: r.W, H: r.Bottom() - in.Bottom()})
	}
	if in.X > r.X {
		pieces = append(pieces, Rect{X: r.X, Y: in.Y, W: in.X - r.X, H: in.H})
	}
	if in.Right() < r.Right() {
		pieces = append(pieces, Rect{X: in.Right(), Y: in.Y, W: r.Right() - in.Right(), H: in.H})
	}
	return pieces
}

// Canon returns r unchanged when it is non-empty and the zero Rect otherwise,
// so empty rectangles compare equal.
func (r Rect) Canon() Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	return r
}

// String returns a compact representation, e.g. "(0,0)+100x50".
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)+%dx%d", r.X, r.Y, r.W, r.H)
}
