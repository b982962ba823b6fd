// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package figure

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
)

// Text is a single line of text whose top-left corner is At. Glyphs are
// rendered once into an alpha mask and reused on every draw.
//
// Shaping is out of scope: runes are drawn left to right with the face's
// advances and kerning.
type Text struct {
	At    geom.Point
	Text  string
	Color color.Color
	Face  font.Face // nil selects basicfont.Face7x13

	mask     *image.Alpha
	region   geom.Rect
	measured bool
}

// NewText creates a text figure using the default bitmap face.
func NewText(at geom.Point, s string, c color.Color) *Text {
	return &Text{At: at, Text: s, Color: c}
}

func (t *Text) face() font.Face {
	if t.Face == nil {
		return basicfont.Face7x13
	}
	return t.Face
}

// Region returns the line box: advance width by ascent plus descent.
func (t *Text) Region() geom.Rect {
	if !t.measured {
		f := t.face()
		m := f.Metrics()
		w := font.MeasureString(f, t.Text).Ceil()
		h := (m.Ascent + m.Descent).Ceil()
		t.region = geom.R(t.At.X, t.At.Y, w, h)
		t.measured = true
	}
	return t.region
}

// DrawOn draws the text through its glyph mask.
func (t *Text) DrawOn(s surface.Surface, offset geom.Vector) {
	r := t.Region()
	if t.Color == nil || r.IsEmpty() {
		return
	}
	if t.mask == nil {
		f := t.face()
		t.mask = image.NewAlpha(image.Rect(0, 0, r.W, r.H))
		d := &font.Drawer{
			Dst:  t.mask,
			Src:  image.Opaque,
			Face: f,
			Dot:  fixed.P(0, f.Metrics().Ascent.Ceil()),
		}
		d.DrawString(t.Text)
	}
	s.DrawMask(t.mask, r.Point().Add(offset), t.Color)
}
