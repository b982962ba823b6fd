// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package figure

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"

	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func render(f Figure, w, h int, offset geom.Vector) *image.RGBA {
	s := surface.NewImageSurface(w, h)
	f.DrawOn(s, offset)
	return s.Snapshot()
}

func TestBackground(t *testing.T) {
	img := render(&Background{Rect: geom.R(2, 2, 4, 4), Color: red}, 10, 10, geom.Vec(1, 0))
	if got := img.RGBAAt(3, 2); got != red {
		t.Errorf("pixel (3,2) = %v, want red", got)
	}
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("pixel (2,2) = %v, want transparent", got)
	}
}

func TestRectangleBorder(t *testing.T) {
	r := &Rectangle{Rect: geom.R(0, 0, 10, 10), Fill: green, Border: blue, BorderWidth: 2}
	img := render(r, 10, 10, geom.Vector{})

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, blue},
		{1, 5, blue},
		{9, 9, blue},
		{8, 5, blue},
		{2, 2, green},
		{7, 7, green},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestEllipseCoverage(t *testing.T) {
	e := Circle(geom.Pt(10, 10), 10, red)
	if got := e.Region(); got != geom.R(0, 0, 20, 20) {
		t.Fatalf("Region() = %v", got)
	}
	img := render(e, 20, 20, geom.Vector{})
	if got := img.RGBAAt(10, 10); got != red {
		t.Errorf("center = %v, want red", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
}

func TestRoundedRectangleCorners(t *testing.T) {
	r := &RoundedRectangle{Rect: geom.R(0, 0, 40, 20), Radius: 8, Fill: red}
	img := render(r, 40, 20, geom.Vector{})
	if got := img.RGBAAt(20, 10); got != red {
		t.Errorf("center = %v, want red", got)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}
	if got := img.RGBAAt(20, 0); got.A == 0 {
		t.Error("top edge midpoint should be covered")
	}
}

func TestLine(t *testing.T) {
	l := &Line{From: geom.Pt(2, 10), To: geom.Pt(18, 10), Width: 4, Color: blue}
	if r := l.Region(); !r.ContainsRect(geom.R(2, 8, 16, 4)) {
		t.Errorf("Region() = %v does not cover the stroke", r)
	}
	img := render(l, 20, 20, geom.Vector{})
	if got := img.RGBAAt(10, 10); got != blue {
		t.Errorf("pixel on line = %v, want blue", got)
	}
	if got := img.RGBAAt(10, 2); got.A != 0 {
		t.Errorf("pixel off line = %v, want transparent", got)
	}
}

func TestText(t *testing.T) {
	txt := NewText(geom.Pt(5, 5), "Hi", red)
	r := txt.Region()
	// basicfont.Face7x13: 7px advance, 11 ascent + 2 descent.
	if r != geom.R(5, 5, 14, 13) {
		t.Fatalf("Region() = %v, want (5,5)+14x13", r)
	}

	img := render(txt, 40, 40, geom.Vector{})
	inked := 0
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if img.RGBAAt(x, y).A != 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("text drew no pixels")
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("pixel outside text = %v", got)
	}
}

func TestBitmapScaling(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, green)
		}
	}

	natural := NewBitmap(geom.Pt(1, 1), src)
	if natural.Region() != geom.R(1, 1, 2, 2) {
		t.Errorf("NewBitmap region = %v", natural.Region())
	}

	b := &Bitmap{Rect: geom.R(0, 0, 8, 8), Image: src, Scaler: draw.NearestNeighbor}
	img := render(b, 10, 10, geom.Vector{})
	if got := img.RGBAAt(7, 7); got != green {
		t.Errorf("scaled corner = %v, want green", got)
	}
	if got := img.RGBAAt(8, 8); got.A != 0 {
		t.Errorf("outside scaled bitmap = %v", got)
	}
}
