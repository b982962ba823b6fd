// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/wnd/geom"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Blending is done with golang.org/x/image/draw using source-over
// composition. This is the default surface implementation and the backing
// store of every Target.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	s.Clear(color.White)
//	s.FillRect(geom.R(10, 10, 100, 50), color.RGBA{255, 0, 0, 255})
//	img := s.Snapshot()
type ImageSurface struct {
	img    *image.RGBA
	origin image.Point // img.Rect.Min, surface (0,0) maps here
	size   geom.Size
	clip   *ClipStack
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface renders into the provided image directly; surface coordinate
// (0,0) is the image's minimum point.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	b := img.Bounds()
	size := geom.Sz(b.Dx(), b.Dy())
	return &ImageSurface{
		img:    img,
		origin: b.Min,
		size:   size,
		clip:   NewClipStack(geom.RectOf(geom.Point{}, size)),
	}
}

// Size returns the surface dimensions.
func (s *ImageSurface) Size() geom.Size {
	return s.size
}

// Clear replaces the pixels inside the current clip with c.
func (s *ImageSurface) Clear(c color.Color) {
	dst := s.clip.Bounds()
	if dst.IsEmpty() {
		return
	}
	draw.Draw(s.img, s.device(dst), image.NewUniform(c), image.Point{}, draw.Src)
}

// PushClip intersects the current clip with r.
func (s *ImageSurface) PushClip(r geom.Rect) {
	s.clip.Push(r)
}

// PopClip restores the previous clip.
func (s *ImageSurface) PopClip() {
	s.clip.Pop()
}

// Clip returns the current clip rectangle.
func (s *ImageSurface) Clip() geom.Rect {
	return s.clip.Bounds()
}

// ClipDepth returns the number of clips currently pushed.
func (s *ImageSurface) ClipDepth() int {
	return s.clip.Depth()
}

// FillRect fills r with c.
func (s *ImageSurface) FillRect(r geom.Rect, c color.Color) {
	dst := r.Intersect(s.clip.Bounds())
	if dst.IsEmpty() {
		return
	}
	draw.Draw(s.img, s.device(dst), image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawImage draws img with its minimum point at at.
func (s *ImageSurface) DrawImage(img image.Image, at geom.Point) {
	b := img.Bounds()
	dst := geom.RectOf(at, geom.Sz(b.Dx(), b.Dy())).Intersect(s.clip.Bounds())
	if dst.IsEmpty() {
		return
	}
	sp := b.Min.Add(dst.Point().Sub(at).Point().Image())
	draw.Draw(s.img, s.device(dst), img, sp, draw.Over)
}

// DrawMask fills c through mask's alpha with the mask's minimum point at at.
func (s *ImageSurface) DrawMask(mask image.Image, at geom.Point, c color.Color) {
	b := mask.Bounds()
	dst := geom.RectOf(at, geom.Sz(b.Dx(), b.Dy())).Intersect(s.clip.Bounds())
	if dst.IsEmpty() {
		return
	}
	mp := b.Min.Add(dst.Point().Sub(at).Point().Image())
	draw.DrawMask(s.img, s.device(dst), image.NewUniform(c), image.Point{}, mask, mp, draw.Over)
}

// Flush is a no-op for image surfaces.
func (s *ImageSurface) Flush() error {
	return nil
}

// Snapshot returns a copy of the surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, s.size.Width, s.size.Height))
	draw.Draw(out, out.Bounds(), s.img, s.origin, draw.Src)
	return out
}

// Image returns the underlying image directly.
// Modifications to the returned image affect the surface.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// device converts a surface rectangle into backing image coordinates.
func (s *ImageSurface) device(r geom.Rect) image.Rectangle {
	return r.Image().Add(s.origin)
}
