// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package figure

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
)

// Bitmap draws an image stretched to Rect. When the image size differs
// from Rect the scaled copy is computed once with Scaler and cached.
type Bitmap struct {
	Rect   geom.Rect
	Image  image.Image
	Scaler draw.Scaler // nil selects draw.ApproxBiLinear

	scaled image.Image
}

// NewBitmap creates a bitmap figure drawn at its natural size.
func NewBitmap(at geom.Point, img image.Image) *Bitmap {
	b := img.Bounds()
	return &Bitmap{Rect: geom.R(at.X, at.Y, b.Dx(), b.Dy()), Image: img}
}

// Region returns the destination rectangle.
func (b *Bitmap) Region() geom.Rect { return b.Rect }

// DrawOn draws the (possibly scaled) image.
func (b *Bitmap) DrawOn(s surface.Surface, offset geom.Vector) {
	if b.Image == nil || b.Rect.IsEmpty() {
		return
	}
	if b.scaled == nil {
		b.scaled = b.scale()
	}
	s.DrawImage(b.scaled, b.Rect.Point().Add(offset))
}

func (b *Bitmap) scale() image.Image {
	src := b.Image.Bounds()
	if src.Dx() == b.Rect.W && src.Dy() == b.Rect.H {
		return b.Image
	}
	scaler := b.Scaler
	if scaler == nil {
		scaler = draw.ApproxBiLinear
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Rect.W, b.Rect.H))
	scaler.Scale(dst, dst.Bounds(), b.Image, src, draw.Src, nil)
	return dst
}
