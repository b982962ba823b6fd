// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the device drawing contract used by the
// compositor and the render targets that back cached tiles.
//
// # Surface
//
// Surface is an integer-pixel canvas with a rectangular clip stack. The
// compositor calls PushClip, PopClip and Flush; figures draw with
// FillRect, DrawImage and DrawMask. Rasterizing shapes into masks is the
// job of figures.
//
// ImageSurface is the software implementation, backed by *image.RGBA and
// golang.org/x/image/draw.
//
// # Targets
//
// A Target is an offscreen bitmap with exactly one owner. Targets are
// obtained from an Allocator so a device backend can place them in its own
// memory:
//
//	t, err := surface.ImageAllocator{}.NewTarget(geom.Sz(256, 256))
//	if err != nil {
//	    return err
//	}
//	t.Surface().FillRect(geom.R(0, 0, 10, 10), color.Black)
//	t.DrawOn(frame, geom.Vec(100, 0))
//
// # Registry
//
// Allocator backends register under a name and priority. The built-in
// "image" backend is always present:
//
//	a, err := surface.AllocatorByName("image")
//
// # Thread Safety
//
// Surfaces and targets are NOT thread-safe. The registry is safe for
// concurrent use.
package surface
