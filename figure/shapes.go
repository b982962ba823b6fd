// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package figure

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
)

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498

// Background fills a rectangle with a solid color.
type Background struct {
	Rect  geom.Rect
	Color color.Color
}

// Region returns the filled rectangle.
func (b *Background) Region() geom.Rect { return b.Rect }

// DrawOn fills the rectangle.
func (b *Background) DrawOn(s surface.Surface, offset geom.Vector) {
	if b.Color == nil {
		return
	}
	s.FillRect(b.Rect.Offset(offset), b.Color)
}

// Rectangle is an axis-aligned rectangle with an optional fill and an
// optional inner border.
type Rectangle struct {
	Rect        geom.Rect
	Fill        color.Color // nil for no fill
	Border      color.Color // nil for no border
	BorderWidth int
}

// Region returns the rectangle.
func (r *Rectangle) Region() geom.Rect { return r.Rect }

// DrawOn fills the interior and then paints the border strips on top.
func (r *Rectangle) DrawOn(s surface.Surface, offset geom.Vector) {
	rect := r.Rect.Offset(offset)
	if r.Fill != nil {
		s.FillRect(rect, r.Fill)
	}
	if r.Border == nil || r.BorderWidth <= 0 {
		return
	}
	bw := min(r.BorderWidth, (rect.W+1)/2, (rect.H+1)/2)
	s.FillRect(geom.R(rect.X, rect.Y, rect.W, bw), r.Border)
	s.FillRect(geom.R(rect.X, rect.Bottom()-bw, rect.W, bw), r.Border)
	s.FillRect(geom.R(rect.X, rect.Y+bw, bw, rect.H-2*bw), r.Border)
	s.FillRect(geom.R(rect.Right()-bw, rect.Y+bw, bw, rect.H-2*bw), r.Border)
}

// RoundedRectangle is a filled rectangle with circular corners.
type RoundedRectangle struct {
	Rect   geom.Rect
	Radius float32
	Fill   color.Color

	mask *image.Alpha
}

// Region returns the bounding rectangle.
func (r *RoundedRectangle) Region() geom.Rect { return r.Rect }

// DrawOn fills the rounded rectangle through an anti-aliased mask.
func (r *RoundedRectangle) DrawOn(s surface.Surface, offset geom.Vector) {
	if r.Fill == nil || r.Rect.IsEmpty() {
		return
	}
	if r.mask == nil {
		w, h := float32(r.Rect.W), float32(r.Rect.H)
		rad := min(r.Radius, w/2, h/2)
		k := rad * (1 - kappa)
		r.mask = rasterize(r.Rect.Size(), func(z *vector.Rasterizer) {
			z.MoveTo(rad, 0)
			z.LineTo(w-rad, 0)
			z.CubeTo(w-k, 0, w, k, w, rad)
			z.LineTo(w, h-rad)
			z.CubeTo(w, h-k, w-k, h, w-rad, h)
			z.LineTo(rad, h)
			z.CubeTo(k, h, 0, h-k, 0, h-rad)
			z.LineTo(0, rad)
			z.CubeTo(0, k, k, 0, rad, 0)
			z.ClosePath()
		})
	}
	s.DrawMask(r.mask, r.Rect.Point().Add(offset), r.Fill)
}

// Ellipse is a filled ellipse inscribed in Rect.
type Ellipse struct {
	Rect geom.Rect
	Fill color.Color

	mask *image.Alpha
}

// Circle returns an ellipse inscribed in the square of the given radius
// around center.
func Circle(center geom.Point, radius int, fill color.Color) *Ellipse {
	return &Ellipse{
		Rect: geom.R(center.X-radius, center.Y-radius, 2*radius, 2*radius),
		Fill: fill,
	}
}

// Region returns the bounding rectangle.
func (e *Ellipse) Region() geom.Rect { return e.Rect }

// DrawOn fills the ellipse through an anti-aliased mask.
func (e *Ellipse) DrawOn(s surface.Surface, offset geom.Vector) {
	if e.Fill == nil || e.Rect.IsEmpty() {
		return
	}
	if e.mask == nil {
		rx, ry := float32(e.Rect.W)/2, float32(e.Rect.H)/2
		kx, ky := rx*kappa, ry*kappa
		e.mask = rasterize(e.Rect.Size(), func(z *vector.Rasterizer) {
			z.MoveTo(2*rx, ry)
			z.CubeTo(2*rx, ry+ky, rx+kx, 2*ry, rx, 2*ry)
			z.CubeTo(rx-kx, 2*ry, 0, ry+ky, 0, ry)
			z.CubeTo(0, ry-ky, rx-kx, 0, rx, 0)
			z.CubeTo(rx+kx, 0, 2*rx, ry-ky, 2*rx, ry)
			z.ClosePath()
		})
	}
	s.DrawMask(e.mask, e.Rect.Point().Add(offset), e.Fill)
}

// Line is a straight segment of the given width with butt caps.
type Line struct {
	From, To geom.Point
	Width    float32
	Color    color.Color

	mask   *image.Alpha
	bounds geom.Rect
}

// Region returns the bounds of the stroked segment.
func (l *Line) Region() geom.Rect {
	pad := int(math.Ceil(float64(l.Width)/2)) + 1
	minX, maxX := min(l.From.X, l.To.X), max(l.From.X, l.To.X)
	minY, maxY := min(l.From.Y, l.To.Y), max(l.From.Y, l.To.Y)
	return geom.R(minX-pad, minY-pad, maxX-minX+2*pad, maxY-minY+2*pad)
}

// DrawOn strokes the segment through an anti-aliased mask.
func (l *Line) DrawOn(s surface.Surface, offset geom.Vector) {
	if l.Color == nil || l.Width <= 0 || l.From == l.To {
		return
	}
	if l.mask == nil {
		l.bounds = l.Region()
		o := l.bounds.Point()
		x0, y0 := float32(l.From.X-o.X), float32(l.From.Y-o.Y)
		x1, y1 := float32(l.To.X-o.X), float32(l.To.Y-o.Y)
		dx, dy := x1-x0, y1-y0
		length := float32(math.Hypot(float64(dx), float64(dy)))
		nx, ny := -dy/length*l.Width/2, dx/length*l.Width/2
		l.mask = rasterize(l.bounds.Size(), func(z *vector.Rasterizer) {
			z.MoveTo(x0+nx, y0+ny)
			z.LineTo(x1+nx, y1+ny)
			z.LineTo(x1-nx, y1-ny)
			z.LineTo(x0-nx, y0-ny)
			z.ClosePath()
		})
	}
	s.DrawMask(l.mask, l.bounds.Point().Add(offset), l.Color)
}

// rasterize builds a coverage mask of the given size from a path.
func rasterize(size geom.Size, build func(z *vector.Rasterizer)) *image.Alpha {
	z := vector.NewRasterizer(size.Width, size.Height)
	build(z)
	mask := image.NewAlpha(image.Rect(0, 0, size.Width, size.Height))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
