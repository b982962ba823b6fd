// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wnd

import (
	"github.com/gogpu/wnd/figure"
	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
	"github.com/gogpu/wnd/tile"
)

// Layer caches the pixels of one window and its flattened descendants in a
// tile cache. Descendants with their own layer are overlays: they are
// composited on top of the tiles instead of being painted into them.
// Plain descendants that come after the first overlay in paint order are
// painted directly over the overlays on every composite, so siblings keep
// their back-to-front order.
//
// A Layer implements tile.Renderer for its cache.
type Layer struct {
	owner *Window
	cache *tile.Cache

	queue      *figure.Queue
	compositor *figure.Compositor

	dirty    bool
	queuedOn *Desktop
	flat     map[*Window]bool
	live     map[*Window]bool

	flattened []*Window
	overlays  []*Window
	above     []*Window
}

func newLayer(owner *Window, cache *tile.Cache) *Layer {
	return &Layer{
		owner:      owner,
		cache:      cache,
		queue:      figure.NewQueue(),
		compositor: figure.NewCompositor(),
		dirty:      true,
	}
}

// Owner returns the window the layer belongs to.
func (l *Layer) Owner() *Window { return l.owner }

// Cache returns the tile cache.
func (l *Layer) Cache() *tile.Cache { return l.cache }

// Flattened returns the descendants painted into the layer's tiles.
func (l *Layer) Flattened() []*Window {
	l.refresh()
	return l.flattened
}

// Overlays returns the nearest layered descendants, composited over the
// layer's tiles.
func (l *Layer) Overlays() []*Window {
	l.refresh()
	return l.overlays
}

// Above returns the plain descendants that follow an overlay in paint
// order. They are painted over the overlays instead of into the tiles.
func (l *Layer) Above() []*Window {
	l.refresh()
	return l.above
}

// markDirty marks the window lists stale and queues the layer for a
// restack in the next Commit of its desktop.
func (l *Layer) markDirty() {
	l.dirty = true
	if d := l.owner.desktop; d != nil && l.queuedOn != d {
		l.queuedOn = d
		d.restack = append(d.restack, l)
	}
}

// paintsLive reports whether child, a child of the owner, is painted over
// the overlays rather than into the tiles.
func (l *Layer) paintsLive(child *Window) bool {
	return !l.dirty && l.live[child]
}

// refresh rebuilds the window lists. When a window moves between the tiles
// and the live set, the owner is invalidated so the tiles are rewritten.
func (l *Layer) refresh() {
	if !l.dirty {
		return
	}
	l.dirty = false
	prevFlat, prevLive := l.flat, l.live
	l.flat = make(map[*Window]bool)
	l.live = make(map[*Window]bool)
	l.flattened = l.flattened[:0]
	l.overlays = l.overlays[:0]
	l.above = l.above[:0]

	split := false
	var walk func(w *Window)
	walk = func(w *Window) {
		for _, c := range w.children {
			switch {
			case c.layer != nil:
				l.overlays = append(l.overlays, c)
				split = true
				continue
			case split:
				l.live[c] = true
				l.above = append(l.above, c)
			default:
				l.flat[c] = true
				l.flattened = append(l.flattened, c)
			}
			walk(c)
		}
	}
	walk(l.owner)

	moved := false
	for c := range l.flat {
		moved = moved || prevLive[c]
	}
	for c := range l.live {
		moved = moved || prevFlat[c]
	}
	if moved {
		l.owner.Invalidate(l.owner.accessible)
	}
}

// RenderTile paints the owner and its flattened descendants into dst.
// region is the tile rectangle in the owner's coordinates.
func (l *Layer) RenderTile(dst *surface.Target, region geom.Rect) error {
	l.refresh()
	l.queue.Reset()
	l.queue.BeginGroup(geom.Vec(-region.X, -region.Y), geom.RectOf(geom.Point{}, region.Size()))
	l.owner.paintFlattened(l.queue, l, region)
	l.queue.EndGroup()
	_, err := l.compositor.Draw(dst.Surface(), l.queue)
	return err
}

// emitTiles appends one figure per tile covering rect ∩ visible region.
func (l *Layer) emitTiles(q *figure.Queue, rect geom.Rect) error {
	rect = rect.Intersect(l.owner.visible)
	if rect.IsEmpty() {
		return nil
	}
	for _, id := range l.cache.RangeOf(rect).IDs() {
		t, err := l.cache.ReadTile(id, l)
		if err != nil {
			return err
		}
		q.Append(geom.Vector{}, &tileFigure{target: t, rect: l.cache.TileRect(id)})
	}
	return nil
}

// tileFigure draws a tile target at its place in the owner's coordinates.
type tileFigure struct {
	target *surface.Target
	rect   geom.Rect
}

func (f *tileFigure) Region() geom.Rect { return f.rect }

func (f *tileFigure) DrawOn(s surface.Surface, offset geom.Vector) {
	f.target.DrawOn(s, offset.Add(geom.Vec(f.rect.X, f.rect.Y)))
}
