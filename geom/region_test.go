// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package geom

import (
	"testing"
)

// =============================================================================
// Rect
// =============================================================================

func TestRect_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", R(0, 0, 100, 100), R(50, 50, 100, 100), R(50, 50, 50, 50)},
		{"contained", R(0, 0, 100, 100), R(10, 10, 20, 20), R(10, 10, 20, 20)},
		{"touching edge", R(0, 0, 10, 10), R(10, 0, 10, 10), Rect{}},
		{"disjoint", R(0, 0, 10, 10), R(200, 0, 50, 50), Rect{}},
		{"negative origin", R(-20, -20, 40, 40), R(0, 0, 100, 100), R(0, 0, 20, 20)},
		{"empty operand", R(0, 0, 0, 10), R(0, 0, 10, 10), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("Intersect() not symmetric: %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	if got := R(0, 0, 10, 10).Union(R(20, 20, 10, 10)); got != R(0, 0, 30, 30) {
		t.Errorf("Union() = %v, want (0,0)+30x30", got)
	}
	if got := (Rect{}).Union(R(5, 5, 1, 1)); got != R(5, 5, 1, 1) {
		t.Errorf("Union(empty, r) = %v", got)
	}
	if got := R(5, 5, 1, 1).Union(R(100, 100, -3, 4)); got != R(5, 5, 1, 1) {
		t.Errorf("Union(r, negative) = %v", got)
	}
}

func TestRect_Sub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		wantArea int
		wantN    int
	}{
		{"hole in middle", R(0, 0, 30, 30), R(10, 10, 10, 10), 800, 4},
		{"disjoint", R(0, 0, 10, 10), R(20, 20, 5, 5), 100, 1},
		{"covered", R(10, 10, 5, 5), R(0, 0, 100, 100), 0, 0},
		{"left half", R(0, 0, 10, 10), R(0, 0, 5, 10), 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := tt.a.Sub(tt.b)
			if len(pieces) != tt.wantN {
				t.Errorf("len(Sub()) = %d, want %d", len(pieces), tt.wantN)
			}
			area := 0
			for i, p := range pieces {
				area += p.Area()
				if p.Intersects(tt.b) {
					t.Errorf("piece %v overlaps subtrahend %v", p, tt.b)
				}
				if !tt.a.ContainsRect(p) {
					t.Errorf("piece %v escapes %v", p, tt.a)
				}
				for _, q := range pieces[i+1:] {
					if p.Intersects(q) {
						t.Errorf("pieces %v and %v overlap", p, q)
					}
				}
			}
			if area != tt.wantArea {
				t.Errorf("area = %d, want %d", area, tt.wantArea)
			}
		})
	}
}

// =============================================================================
// Region
// =============================================================================

func TestRegion_ZeroValue(t *testing.T) {
	var g Region
	if !g.IsEmpty() {
		t.Error("zero Region should be empty")
	}
	if !g.BoundingRect().IsEmpty() {
		t.Errorf("BoundingRect() = %v, want empty", g.BoundingRect())
	}
	in := g.Intersect(R(0, 0, 10, 10))
	if !in.IsEmpty() {
		t.Error("Intersect on empty region should be empty")
	}
}

func TestRegion_UnionKeepsPiecesDisjoint(t *testing.T) {
	var g Region
	g.Union(R(0, 0, 100, 100))
	g.Union(R(50, 50, 100, 100))
	g.Union(R(0, 0, 10, 10)) // already covered

	if got, want := g.Area(), 100*100*2-50*50; got != want {
		t.Errorf("Area() = %d, want %d", got, want)
	}
	rects := g.Rects()
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Intersects(rects[j]) {
				t.Errorf("pieces %v and %v overlap", rects[i], rects[j])
			}
		}
	}
	if got := g.BoundingRect(); got != R(0, 0, 150, 150) {
		t.Errorf("BoundingRect() = %v, want (0,0)+150x150", got)
	}
}

func TestRegion_IntersectIsExact(t *testing.T) {
	g := RegionOf(R(0, 0, 10, 10), R(20, 0, 10, 10))

	// The bounding rect overlaps (12,0,6,10) but the region does not.
	gap := g.Intersect(R(12, 0, 6, 10))
	if !gap.IsEmpty() {
		t.Errorf("Intersect(gap) = %v, want empty", gap.Rects())
	}

	hit := g.Intersect(R(5, 5, 20, 20))
	if got := hit.Area(); got != 5*5+5*5 {
		t.Errorf("Intersect().Area() = %d, want 50", got)
	}
}

func TestRegion_Subtract(t *testing.T) {
	g := RegionOf(R(0, 0, 100, 100))
	g.Subtract(R(0, 0, 100, 50))
	if got := g.BoundingRect(); got != R(0, 50, 100, 50) {
		t.Errorf("BoundingRect() = %v, want (0,50)+100x50", got)
	}
	g.Subtract(R(-10, -10, 500, 500))
	if !g.IsEmpty() {
		t.Errorf("region should be empty after subtracting a superset, got %v", g.Rects())
	}
}

func TestRegion_UnionRegionAndOffset(t *testing.T) {
	a := RegionOf(R(0, 0, 10, 10))
	b := RegionOf(R(5, 0, 10, 10))
	a.UnionRegion(b)
	if got := a.Area(); got != 150 {
		t.Errorf("Area() = %d, want 150", got)
	}
	moved := a.Offset(Vec(100, 0))
	if got := moved.BoundingRect(); got != R(100, 0, 15, 10) {
		t.Errorf("Offset().BoundingRect() = %v", got)
	}
	if got := a.BoundingRect(); got != R(0, 0, 15, 10) {
		t.Errorf("Offset mutated receiver: %v", got)
	}
}

func TestRegion_Algebra(t *testing.T) {
	rects := []Rect{
		R(0, 0, 10, 10),
		R(5, 5, 10, 10),
		R(10, 0, 10, 10),
		R(100, 100, 1, 1),
		R(-5, -5, 3, 30),
		R(0, 0, 0, 0),
		R(3, 3, -2, 4),
	}

	for _, a := range rects {
		for _, b := range rects {
			// A.Union(B).Intersect(A) covers A exactly.
			u := RegionOf(a, b)
			back := u.Intersect(a)
			if got, want := back.Area(), a.Area(); got != want {
				t.Errorf("(%v ∪ %v) ∩ %v area = %d, want %d", a, b, a, got, want)
			}

			// A ∩ B is empty iff A and B do not overlap.
			ga := RegionOf(a)
			inter := ga.Intersect(b)
			overlap := a.Intersects(b)
			if inter.IsEmpty() == overlap {
				t.Errorf("%v ∩ %v empty=%v but Intersects=%v", a, b, inter.IsEmpty(), overlap)
			}

			// Union area is inclusion-exclusion.
			if got, want := u.Area(), a.Area()+b.Area()-a.Intersect(b).Area(); got != want {
				t.Errorf("|%v ∪ %v| = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestRegion_Take(t *testing.T) {
	g := RegionOf(R(0, 0, 4, 4))
	taken := g.Take()
	if !g.IsEmpty() {
		t.Error("Take() should leave the region empty")
	}
	if taken.Area() != 16 {
		t.Errorf("taken.Area() = %d, want 16", taken.Area())
	}
}

func BenchmarkRegion_Union(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var g Region
		for j := 0; j < 32; j++ {
			g.Union(R(j*7, j*5, 40, 40))
		}
	}
}
