// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/wnd/geom"
)

// Surface is the device drawing target a figure queue is composited onto.
//
// All coordinates are integer device pixels. Every drawing operation is
// clipped to the current clip rectangle, which starts as the full surface
// and only shrinks as clips are pushed.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s := surface.NewImageSurface(800, 600)
//
//	s.Clear(color.White)
//	s.PushClip(geom.R(10, 10, 100, 100))
//	s.FillRect(geom.R(0, 0, 50, 50), color.RGBA{255, 0, 0, 255})
//	s.PopClip()
//	img := s.Snapshot()
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() geom.Size

	// Clear replaces every pixel inside the current clip with c, without
	// blending.
	Clear(c color.Color)

	// PushClip intersects the current clip with r and saves the previous
	// clip so PopClip can restore it.
	PushClip(r geom.Rect)

	// PopClip restores the clip saved by the matching PushClip.
	// Popping an empty stack is a no-op.
	PopClip()

	// Clip returns the current clip rectangle.
	Clip() geom.Rect

	// FillRect fills r with c using source-over blending.
	FillRect(r geom.Rect, c color.Color)

	// DrawImage draws img with its bounds' minimum point placed at at.
	DrawImage(img image.Image, at geom.Point)

	// DrawMask fills c through the alpha channel of mask, with the mask's
	// minimum point placed at at.
	DrawMask(mask image.Image, at geom.Point, c color.Color)

	// Flush ensures all pending drawing operations are complete.
	// For CPU surfaces, this is typically a no-op.
	Flush() error

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect the surface.
	Snapshot() *image.RGBA
}
