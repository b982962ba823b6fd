// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/wnd/geom"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

// TestNewImageSurface tests surface creation.
func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(100, 50)
	if got := s.Size(); got != geom.Sz(100, 50) {
		t.Errorf("Size() = %v, want 100x50", got)
	}
	if got := s.Clip(); got != geom.R(0, 0, 100, 50) {
		t.Errorf("Clip() = %v, want full surface", got)
	}
}

// TestNewImageSurfaceInvalidSize tests handling of invalid dimensions.
func TestNewImageSurfaceInvalidSize(t *testing.T) {
	s := NewImageSurface(0, -3)
	if got := s.Size(); got != geom.Sz(1, 1) {
		t.Errorf("expected 1x1, got %v", got)
	}
}

// TestImageSurfaceClear tests the Clear operation.
func TestImageSurfaceClear(t *testing.T) {
	s := NewImageSurface(10, 10)
	s.Clear(red)
	s.PushClip(geom.R(0, 0, 2, 2))
	s.Clear(color.Transparent)
	s.PopClip()

	img := s.Snapshot()
	if got := img.RGBAAt(9, 9); got != red {
		t.Errorf("pixel (9,9) = %v, want %v", got, red)
	}
	if got := img.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("pixel (1,1) = %v, want transparent (Clear replaces inside clip)", got)
	}
}

func TestImageSurfaceFillRectClipped(t *testing.T) {
	s := NewImageSurface(20, 20)
	s.Clear(white)
	s.PushClip(geom.R(5, 5, 10, 10))
	s.FillRect(geom.R(0, 0, 20, 20), red)
	s.PopClip()

	img := s.Snapshot()
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, white},
		{4, 4, white},
		{5, 5, red},
		{14, 14, red},
		{15, 15, white},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestImageSurfaceNestedClipOnlyShrinks(t *testing.T) {
	s := NewImageSurface(100, 100)
	s.PushClip(geom.R(0, 0, 50, 50))
	s.PushClip(geom.R(25, 25, 100, 100))

	if got := s.Clip(); got != geom.R(25, 25, 25, 25) {
		t.Errorf("Clip() = %v, want (25,25)+25x25", got)
	}
	if s.ClipDepth() != 2 {
		t.Errorf("ClipDepth() = %d, want 2", s.ClipDepth())
	}

	s.PopClip()
	if got := s.Clip(); got != geom.R(0, 0, 50, 50) {
		t.Errorf("after PopClip Clip() = %v", got)
	}
	s.PopClip()
	s.PopClip() // extra pop is a no-op
	if got := s.Clip(); got != geom.R(0, 0, 100, 100) {
		t.Errorf("after all pops Clip() = %v", got)
	}
}

func TestImageSurfaceDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 14))
	for y := 10; y < 14; y++ {
		for x := 10; x < 14; x++ {
			src.SetRGBA(x, y, blue)
		}
	}

	s := NewImageSurface(10, 10)
	s.PushClip(geom.R(0, 0, 4, 10))
	s.DrawImage(src, geom.Pt(2, 2))

	img := s.Snapshot()
	if got := img.RGBAAt(2, 2); got != blue {
		t.Errorf("pixel (2,2) = %v, want blue", got)
	}
	if got := img.RGBAAt(3, 5); got != blue {
		t.Errorf("pixel (3,5) = %v, want blue", got)
	}
	if got := img.RGBAAt(4, 2); got.A != 0 {
		t.Errorf("pixel (4,2) = %v, want transparent (clipped)", got)
	}
}

func TestImageSurfaceDrawMask(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 2, 1))
	mask.SetAlpha(0, 0, color.Alpha{A: 255})

	s := NewImageSurface(4, 4)
	s.DrawMask(mask, geom.Pt(1, 1), red)

	img := s.Snapshot()
	if got := img.RGBAAt(1, 1); got != red {
		t.Errorf("pixel (1,1) = %v, want red", got)
	}
	if got := img.RGBAAt(2, 1); got.A != 0 {
		t.Errorf("pixel (2,1) = %v, want transparent", got)
	}
}

func TestImageSurfaceFromSubImage(t *testing.T) {
	backing := image.NewRGBA(image.Rect(0, 0, 10, 10))
	sub := backing.SubImage(image.Rect(5, 5, 10, 10)).(*image.RGBA)

	s := NewImageSurfaceFromImage(sub)
	if got := s.Size(); got != geom.Sz(5, 5) {
		t.Fatalf("Size() = %v, want 5x5", got)
	}
	s.FillRect(geom.R(0, 0, 1, 1), red)

	if got := backing.RGBAAt(5, 5); got != red {
		t.Errorf("backing (5,5) = %v, want red", got)
	}
	if got := s.Snapshot().RGBAAt(0, 0); got != red {
		t.Errorf("snapshot (0,0) = %v, want red", got)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := NewImageSurface(2, 2)
	snap := s.Snapshot()
	snap.SetRGBA(0, 0, red)
	if got := s.Image().RGBAAt(0, 0); got.A != 0 {
		t.Error("modifying snapshot changed the surface")
	}
}

func TestImageAllocator(t *testing.T) {
	tests := []struct {
		name    string
		alloc   ImageAllocator
		size    geom.Size
		wantErr error
	}{
		{"ok", ImageAllocator{}, geom.Sz(256, 256), nil},
		{"zero width", ImageAllocator{}, geom.Sz(0, 10), ErrInvalidSize},
		{"negative height", ImageAllocator{}, geom.Sz(10, -1), ErrInvalidSize},
		{"too large", ImageAllocator{MaxDimension: 64}, geom.Sz(65, 10), ErrTargetTooLarge},
		{"at limit", ImageAllocator{MaxDimension: 64}, geom.Sz(64, 64), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := tt.alloc.NewTarget(tt.size)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if target.Size() != tt.size {
				t.Errorf("Size() = %v, want %v", target.Size(), tt.size)
			}
		})
	}
}

func TestTargetDrawOn(t *testing.T) {
	target, err := ImageAllocator{}.NewTarget(geom.Sz(4, 4))
	if err != nil {
		t.Fatal(err)
	}
	target.Surface().PushClip(geom.R(0, 0, 1, 1))
	target.Clear(blue)
	if got := target.Surface().Clip(); got != target.Bounds() {
		t.Errorf("Clear should reset clips, Clip() = %v", got)
	}

	dst := NewImageSurface(10, 10)
	target.DrawOn(dst, geom.Vec(6, 6))

	img := dst.Snapshot()
	if got := img.RGBAAt(6, 6); got != blue {
		t.Errorf("pixel (6,6) = %v, want blue", got)
	}
	if got := img.RGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel (5,5) = %v, want transparent", got)
	}
}

func TestClipStack(t *testing.T) {
	cs := NewClipStack(geom.R(0, 0, 100, 100))
	if got := cs.Push(geom.R(200, 0, 50, 50)); !got.IsEmpty() {
		t.Errorf("Push(outside) = %v, want empty", got)
	}
	if cs.IsVisible(geom.Pt(10, 10)) {
		t.Error("nothing should be visible under an empty clip")
	}
	if !cs.Pop() {
		t.Error("Pop() = false, want true")
	}
	if cs.Pop() {
		t.Error("Pop() on empty stack = true, want false")
	}
	cs.Push(geom.R(10, 10, 10, 10))
	cs.Reset(geom.R(0, 0, 5, 5))
	if cs.Depth() != 0 || cs.Bounds() != geom.R(0, 0, 5, 5) {
		t.Errorf("Reset: depth %d bounds %v", cs.Depth(), cs.Bounds())
	}
}
