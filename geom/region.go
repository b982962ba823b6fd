// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

// Region is a rectilinear area stored as a list of pairwise-disjoint
// rectangles. The zero value is an empty region ready for use.
//
// Keeping the pieces disjoint makes IsEmpty, Area and Intersect exact without
// a separate normalisation pass. Adjacent pieces are not merged; callers that
// need a single rectangle use BoundingRect.
type Region struct {
	rects []Rect
}

// RegionOf returns a region covering the given rectangles.
func RegionOf(rects ...Rect) Region {
	var g Region
	for _, r := range rects {
		g.Union(r)
	}
	return g
}

// IsEmpty reports whether the region covers no pixels.
func (g *Region) IsEmpty() bool {
	return len(g.rects) == 0
}

// Rects returns the disjoint pieces of the region.
// The returned slice MUST NOT be mutated by the caller.
func (g *Region) Rects() []Rect {
	return g.rects
}

// Len returns the number of disjoint pieces.
func (g *Region) Len() int {
	return len(g.rects)
}

// Area returns the number of pixels covered.
func (g *Region) Area() int {
	area := 0
	for _, r := range g.rects {
		area += r.Area()
	}
	return area
}

// BoundingRect returns the smallest rectangle covering the region.
func (g *Region) BoundingRect() Rect {
	var b Rect
	for _, r := range g.rects {
		b = b.Union(r)
	}
	return b
}

// Contains reports whether p lies inside the region.
func (g *Region) Contains(p Point) bool {
	for _, r := range g.rects {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Intersects reports whether the region shares a pixel with r.
func (g *Region) Intersects(r Rect) bool {
	for _, piece := range g.rects {
		if piece.Intersects(r) {
			return true
		}
	}
	return false
}

// Clear empties the region, keeping its storage.
func (g *Region) Clear() {
	g.rects = g.rects[:0]
}

// Union adds r to the region. Only the parts of r not already covered are
// stored, so the pieces stay disjoint.
func (g *Region) Union(r Rect) {
	if r.IsEmpty() {
		return
	}
	pending := []Rect{r}
	for _, have := range g.rects {
		next := pending[:0:0]
		for _, p := range pending {
			next = append(next, p.Sub(have)...)
		}
		pending = next
		if len(pending) == 0 {
			return
		}
	}
	g.rects = append(g.rects, pending...)
}

// UnionRegion adds every piece of o to the region.
func (g *Region) UnionRegion(o Region) {
	for _, r := range o.rects {
		g.Union(r)
	}
}

// Subtract removes r from the region.
func (g *Region) Subtract(r Rect) {
	if r.IsEmpty() || len(g.rects) == 0 {
		return
	}
	out := make([]Rect, 0, len(g.rects))
	for _, piece := range g.rects {
		out = append(out, piece.Sub(r)...)
	}
	g.rects = out
}

// Intersect returns the part of the region inside r.
func (g *Region) Intersect(r Rect) Region {
	var out Region
	for _, piece := range g.rects {
		if in := piece.Intersect(r); !in.IsEmpty() {
			// Pieces of a disjoint set clipped by one rectangle stay disjoint.
			out.rects = append(out.rects, in)
		}
	}
	return out
}

// IntersectRegion returns the area covered by both regions.
func (g *Region) IntersectRegion(o Region) Region {
	var out Region
	for _, r := range o.rects {
		part := g.Intersect(r)
		out.rects = append(out.rects, part.rects...)
	}
	return out
}

// Offset returns a copy of the region translated by v.
func (g *Region) Offset(v Vector) Region {
	out := Region{rects: make([]Rect, len(g.rects))}
	for i, r := range g.rects {
		out.rects[i] = r.Offset(v)
	}
	return out
}

// Clone returns an independent copy of the region.
func (g *Region) Clone() Region {
	return Region{rects: append([]Rect(nil), g.rects...)}
}

// Take returns the region's contents and leaves it empty.
func (g *Region) Take() Region {
	out := Region{rects: g.rects}
	g.rects = nil
	return out
}
