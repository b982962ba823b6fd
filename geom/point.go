// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom provides the integer geometry shared by the window tree, the
// tile cache and the compositor: points, vectors, sizes, rectangles and
// rectilinear regions.
//
// All coordinates are device pixels. The origin is at the top-left, X grows
// to the right and Y grows downward. Every operation is total: degenerate
// inputs (zero or negative extents) produce empty results, never errors.
package geom

import (
	"fmt"
	"image"
)

// Point is a position in some window's coordinate space.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector that moves q onto p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vector returns p as a displacement from the origin.
func (p Point) Vector() Vector {
	return Vector(p)
}

// Image converts p to an image.Point.
func (p Point) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// String returns a compact representation, e.g. "(10,20)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Vector is a displacement between two points.
type Vector struct {
	X, Y int
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v minus w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns the opposite vector.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// IsZero reports whether v is the zero vector.
func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Point returns the point reached by moving v from the origin.
func (v Vector) Point() Point {
	return Point(v)
}

// String returns a compact representation, e.g. "<3,-4>".
func (v Vector) String() string {
	return fmt.Sprintf("<%d,%d>", v.X, v.Y)
}

// Size is a width/height pair. Non-positive components make the size empty.
type Size struct {
	Width, Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// IsEmpty reports whether the size covers no pixels.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Area returns the number of pixels covered, or 0 for empty sizes.
func (s Size) Area() int {
	if s.IsEmpty() {
		return 0
	}
	return s.Width * s.Height
}

// String returns a compact representation, e.g. "640x480".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
