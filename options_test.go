// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wnd

import (
	"image/color"
	"testing"

	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
)

// TestNewDesktopDefaults tests the options a desktop gets without arguments.
func TestNewDesktopDefaults(t *testing.T) {
	d := NewDesktop()
	if d.opts.tileSize != geom.Sz(256, 256) {
		t.Errorf("tileSize = %v, want 256x256", d.opts.tileSize)
	}
	if d.opts.maxCapacity != 32 {
		t.Errorf("maxCapacity = %d, want 32", d.opts.maxCapacity)
	}
	if d.opts.allocator == nil {
		t.Error("allocator is nil")
	}
	if d.opts.observer != nil {
		t.Error("observer should be nil by default")
	}
	if d.Root().Depth() != 0 || !d.Root().IsRooted() {
		t.Error("root should be rooted at depth 0")
	}
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	d := NewDesktop(
		WithTileSize(geom.Sz(0, 64)),
		WithMaxCapacity(-1),
		WithAllocator(nil),
		WithClearColor(nil),
	)
	if d.opts.tileSize != geom.Sz(256, 256) {
		t.Errorf("tileSize = %v, want default", d.opts.tileSize)
	}
	if d.opts.maxCapacity != 32 {
		t.Errorf("maxCapacity = %d, want default", d.opts.maxCapacity)
	}
	if d.opts.allocator == nil || d.opts.clearColor == nil {
		t.Error("nil options should keep defaults")
	}
}

// TestLayerInheritsDesktopOptions tests that layers are built from the
// desktop's tile options.
func TestLayerInheritsDesktopOptions(t *testing.T) {
	allocated := 0
	alloc := surface.AllocatorFunc(func(size geom.Size) (*surface.Target, error) {
		allocated++
		return surface.ImageAllocator{}.NewTarget(size)
	})

	d, f, _ := newFrame(t, KindLeaf, 40, 40,
		WithTileSize(geom.Sz(16, 16)),
		WithMaxCapacity(7),
		WithAllocator(alloc),
	)
	layer := f.AllocateLayer()
	if got := layer.Cache().TileSize(); got != geom.Sz(16, 16) {
		t.Errorf("TileSize() = %v, want 16x16", got)
	}
	if got := layer.Cache().MaxCapacity(); got != 7 {
		t.Errorf("MaxCapacity() = %d, want 7", got)
	}
	mustCommit(t, d)

	// 40x40 over 16x16 tiles is a 3x3 grid.
	if allocated != 9 {
		t.Errorf("allocated %d tiles, want 9", allocated)
	}
}

func TestWithClearColor(t *testing.T) {
	d, _, s := newFrame(t, KindLeaf, 4, 4, WithClearColor(green))
	mustCommit(t, d)
	if got := pixel(s, 1, 1); got != green {
		t.Errorf("pixel = %v, want clear color %v", got, green)
	}

	d2, _, s2 := newFrame(t, KindLeaf, 4, 4)
	s2.Clear(red)
	mustCommit(t, d2)
	if got := pixel(s2, 1, 1); got != (color.RGBA{}) {
		t.Errorf("pixel = %v, want transparent", got)
	}
}
