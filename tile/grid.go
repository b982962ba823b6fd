// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tile

import (
	"fmt"

	"github.com/gogpu/wnd/geom"
)

// ID is a tile's integer grid coordinate. Tile (0,0) covers
// [0, TileSize.Width) x [0, TileSize.Height) in the owning window's
// coordinate space; negative coordinates are valid.
type ID struct {
	X, Y int
}

// String returns a compact representation, e.g. "[1,2]".
func (id ID) String() string {
	return fmt.Sprintf("[%d,%d]", id.X, id.Y)
}

// Range is a half-open rectangle of tile ids: MinX <= X < MaxX and
// MinY <= Y < MaxY.
type Range struct {
	MinX, MinY int
	MaxX, MaxY int
}

// IsEmpty reports whether the range contains no ids.
func (r Range) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Len returns the number of ids in the range.
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// Contains reports whether id lies in the range.
func (r Range) Contains(id ID) bool {
	return id.X >= r.MinX && id.X < r.MaxX && id.Y >= r.MinY && id.Y < r.MaxY
}

// Intersect returns the ids present in both ranges.
func (r Range) Intersect(o Range) Range {
	out := Range{
		MinX: max(r.MinX, o.MinX),
		MinY: max(r.MinY, o.MinY),
		MaxX: min(r.MaxX, o.MaxX),
		MaxY: min(r.MaxY, o.MaxY),
	}
	if out.IsEmpty() {
		return Range{}
	}
	return out
}

// Inflate grows the range by n tiles on every side. An empty range stays
// empty.
func (r Range) Inflate(n int) Range {
	if r.IsEmpty() {
		return Range{}
	}
	return Range{MinX: r.MinX - n, MinY: r.MinY - n, MaxX: r.MaxX + n, MaxY: r.MaxY + n}
}

// Distance returns the Chebyshev grid distance from id to the nearest id in
// the range: 0 inside, 1 for the ring just outside, and so on. The
// distance to an empty range is -1.
func (r Range) Distance(id ID) int {
	if r.IsEmpty() {
		return -1
	}
	dx := 0
	if id.X < r.MinX {
		dx = r.MinX - id.X
	} else if id.X >= r.MaxX {
		dx = id.X - r.MaxX + 1
	}
	dy := 0
	if id.Y < r.MinY {
		dy = r.MinY - id.Y
	} else if id.Y >= r.MaxY {
		dy = id.Y - r.MaxY + 1
	}
	return max(dx, dy)
}

// IDs returns the ids of the range in row-major order.
func (r Range) IDs() []ID {
	out := make([]ID, 0, r.Len())
	for y := r.MinY; y < r.MaxY; y++ {
		for x := r.MinX; x < r.MaxX; x++ {
			out = append(out, ID{X: x, Y: y})
		}
	}
	return out
}

// String returns a compact representation, e.g. "[0,0]-[2,3]".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]-[%d,%d]", r.MinX, r.MinY, r.MaxX, r.MaxY)
}

// TileRect returns the pixel rectangle covered by tile id.
func TileRect(id ID, size geom.Size) geom.Rect {
	return geom.R(id.X*size.Width, id.Y*size.Height, size.Width, size.Height)
}

// RangeOf returns the smallest range whose tiles cover r.
func RangeOf(r geom.Rect, size geom.Size) Range {
	if r.IsEmpty() || size.IsEmpty() {
		return Range{}
	}
	return Range{
		MinX: floorDiv(r.X, size.Width),
		MinY: floorDiv(r.Y, size.Height),
		MaxX: floorDiv(r.Right()-1, size.Width) + 1,
		MaxY: floorDiv(r.Bottom()-1, size.Height) + 1,
	}
}

// RangeRect returns the pixel rectangle covered by every tile of r.
func RangeRect(r Range, size geom.Size) geom.Rect {
	if r.IsEmpty() {
		return geom.Rect{}
	}
	return geom.R(r.MinX*size.Width, r.MinY*size.Height,
		(r.MaxX-r.MinX)*size.Width, (r.MaxY-r.MinY)*size.Height)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
