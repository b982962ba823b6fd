// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tile implements the per-layer tile cache.
//
// A Cache partitions a window's coordinate space into fixed-size tiles and
// keeps a rendered Target for each tile it has seen, keyed by ID. Because
// tiles are keyed in the window's own coordinates, scrolling only changes
// which tiles are composited, never their contents.
//
// The cache is read-through: ReadTile renders a missing tile on demand
// through a Renderer. WriteTile forces a re-render after invalidation.
//
// # Cached region
//
// SetCachedRegion tells the cache which part of the window is visible. The
// cached range is the visible tile range plus a one-tile margin, clipped to
// the accessible region. Tiles outside it are dropped, and reads outside it
// render into a scratch target that is never stored.
//
// # Eviction
//
// When more than MaxCapacity tiles are stored, the tile farthest from the
// visible range (Chebyshev grid distance) is evicted first; ties go to the
// least recently used tile. Visible tiles are never evicted: the effective
// capacity is raised to the visible tile count.
//
// The cache is NOT thread-safe.
package tile

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/internal/lru"
	"github.com/gogpu/wnd/surface"
)

// Renderer paints the content of region into dst. dst has the cache's tile
// size and has been cleared; region is in the window's coordinate space and
// maps onto dst's origin.
type Renderer interface {
	RenderTile(dst *surface.Target, region geom.Rect) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(dst *surface.Target, region geom.Rect) error

// RenderTile calls f(dst, region).
func (f RendererFunc) RenderTile(dst *surface.Target, region geom.Rect) error {
	return f(dst, region)
}

// ErrNilRenderer is returned when a tile must be rendered without a renderer.
var ErrNilRenderer = errors.New("tile: nil renderer")

// Stats contains cache statistics for monitoring.
type Stats struct {
	// Tiles is the number of stored tiles.
	Tiles int
	// Renders counts every tile render, scratch renders included.
	Renders uint64
	// ScratchRenders counts reads outside the cached range.
	ScratchRenders uint64
	// Hits is the number of reads served from a stored tile.
	Hits uint64
	// Misses is the number of reads that had to render.
	Misses uint64
	// Evictions counts tiles dropped by capacity or by a range change.
	Evictions uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before any read.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// entry is one stored tile.
type entry struct {
	target *surface.Target
	node   *lru.Node[ID]
}

// Cache is a tile cache owned by a single layer.
type Cache struct {
	baseSize    geom.Size
	tileSize    geom.Size
	maxCapacity int
	alloc       surface.Allocator
	logger      *slog.Logger

	entries map[ID]*entry
	order   *lru.List[ID]

	accessible   geom.Rect
	visible      geom.Rect
	visibleRange Range
	cachedRange  Range
	cachedRegion geom.Rect

	scratch *surface.Target
	stats   Stats
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Cache{
		baseSize:    o.tileSize,
		tileSize:    o.tileSize,
		maxCapacity: o.maxCapacity,
		alloc:       o.allocator,
		logger:      o.logger,
		entries:     make(map[ID]*entry),
		order:       lru.New[ID](),
	}
}

// TileSize returns the current tile size.
func (c *Cache) TileSize() geom.Size {
	return c.tileSize
}

// TileRect returns the pixel rectangle of tile id at the current tile size.
func (c *Cache) TileRect(id ID) geom.Rect {
	return TileRect(id, c.tileSize)
}

// RangeOf returns the tiles covering r at the current tile size.
func (c *Cache) RangeOf(r geom.Rect) Range {
	return RangeOf(r, c.tileSize)
}

// MaxCapacity returns the configured capacity.
func (c *Cache) MaxCapacity() int {
	return c.maxCapacity
}

// SetMaxCapacity changes the capacity and evicts down to it.
func (c *Cache) SetMaxCapacity(n int) {
	if n <= 0 {
		return
	}
	c.maxCapacity = n
	c.evict()
}

// Len returns the number of stored tiles.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Contains reports whether tile id is stored.
func (c *Cache) Contains(id ID) bool {
	_, ok := c.entries[id]
	return ok
}

// IDs returns the stored tile ids from least to most recently used.
func (c *Cache) IDs() []ID {
	out := make([]ID, 0, len(c.entries))
	for n := c.order.Oldest(); n != nil; n = n.Newer() {
		out = append(out, n.Key)
	}
	return out
}

// CachedRange returns the range of tiles that may be stored.
func (c *Cache) CachedRange() Range {
	return c.cachedRange
}

// VisibleRange returns the tiles covering the visible region.
func (c *Cache) VisibleRange() Range {
	return c.visibleRange
}

// CachedRegion returns the pixel area whose tiles may be stored: the cached
// range clipped to the accessible region.
func (c *Cache) CachedRegion() geom.Rect {
	return c.cachedRegion
}

// Stats returns a snapshot of the cache statistics.
func (c *Cache) Stats() Stats {
	s := c.stats
	s.Tiles = len(c.entries)
	return s
}

// ResetTileSize recomputes the tile size for a layer of the given size and
// reports whether it changed. The tile size is the base size, doubled along
// each axis until the layer spans at most four tiles on that axis or the
// next doubling would pass MaxTileDimension. On a change every stored tile
// is dropped and the cached range recomputed.
func (c *Cache) ResetTileSize(layerSize geom.Size) bool {
	size := geom.Sz(
		growTile(c.baseSize.Width, layerSize.Width),
		growTile(c.baseSize.Height, layerSize.Height),
	)
	if size == c.tileSize {
		return false
	}

	c.logger.Debug("tile: size changed", "from", c.tileSize, "to", size)
	c.tileSize = size
	c.scratch = nil
	c.Clear()
	c.updateRanges(c.accessible, c.visible)
	return true
}

// growTile doubles base until extent fits in maxTilesPerAxis tiles,
// stopping at MaxTileDimension.
func growTile(base, extent int) int {
	for extent > maxTilesPerAxis*base && base*2 <= MaxTileDimension {
		base *= 2
	}
	return base
}

// SetCachedRegion recomputes the visible and cached ranges, drops tiles
// outside the new cached range, then evicts down to capacity.
func (c *Cache) SetCachedRegion(accessible, visible geom.Rect) {
	c.updateRanges(accessible, visible)

	for n := c.order.Oldest(); n != nil; {
		next := n.Newer()
		if !c.cachedRange.Contains(n.Key) {
			c.remove(n.Key)
			c.stats.Evictions++
		}
		n = next
	}
	c.evict()
}

func (c *Cache) updateRanges(accessible, visible geom.Rect) {
	c.accessible = accessible
	c.visible = visible
	c.visibleRange = c.RangeOf(visible.Intersect(accessible))
	c.cachedRange = c.visibleRange.Inflate(prefetchMargin).Intersect(c.RangeOf(accessible))
	c.cachedRegion = RangeRect(c.cachedRange, c.tileSize).Intersect(accessible)
}

// ReadTile returns the content of tile id, rendering it with r on a miss.
//
// Tiles inside the cached range are stored after rendering. Tiles outside
// it are rendered into a shared scratch target that is overwritten by the
// next such read.
func (c *Cache) ReadTile(id ID, r Renderer) (*surface.Target, error) {
	if e, ok := c.entries[id]; ok {
		c.stats.Hits++
		c.order.Touch(e.node)
		return e.target, nil
	}
	c.stats.Misses++
	return c.renderNew(id, r)
}

// WriteTile re-renders tile id with r and returns its target. A stored tile
// is re-rendered in place; a missing tile inside the cached range is
// allocated and stored.
func (c *Cache) WriteTile(id ID, r Renderer) (*surface.Target, error) {
	if e, ok := c.entries[id]; ok {
		c.order.Touch(e.node)
		if err := c.render(e.target, id, r); err != nil {
			c.remove(id)
			return nil, err
		}
		return e.target, nil
	}
	return c.renderNew(id, r)
}

// InvalidateRect returns the stored tiles intersecting rect, most recently
// used first. The caller rewrites them with WriteTile.
func (c *Cache) InvalidateRect(rect geom.Rect) []ID {
	var out []ID
	for n := c.order.Oldest(); n != nil; n = n.Newer() {
		if c.TileRect(n.Key).Intersects(rect) {
			out = append(out, n.Key)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// DropRect removes every stored tile intersecting rect.
func (c *Cache) DropRect(rect geom.Rect) int {
	dropped := 0
	for n := c.order.Oldest(); n != nil; {
		next := n.Newer()
		if c.TileRect(n.Key).Intersects(rect) {
			c.remove(n.Key)
			dropped++
		}
		n = next
	}
	return dropped
}

// Clear removes every stored tile.
func (c *Cache) Clear() {
	clear(c.entries)
	c.order.Clear()
}

func (c *Cache) renderNew(id ID, r Renderer) (*surface.Target, error) {
	if !c.cachedRange.Contains(id) {
		t, err := c.scratchTarget()
		if err != nil {
			return nil, err
		}
		c.stats.ScratchRenders++
		if err := c.render(t, id, r); err != nil {
			return nil, err
		}
		return t, nil
	}

	t, err := c.alloc.NewTarget(c.tileSize)
	if err != nil {
		return nil, fmt.Errorf("tile: allocate %v: %w", id, err)
	}
	if err := c.render(t, id, r); err != nil {
		return nil, err
	}
	c.entries[id] = &entry{target: t, node: c.order.PushFront(id)}
	c.evict()
	return t, nil
}

func (c *Cache) scratchTarget() (*surface.Target, error) {
	if c.scratch != nil && c.scratch.Size() == c.tileSize {
		return c.scratch, nil
	}
	t, err := c.alloc.NewTarget(c.tileSize)
	if err != nil {
		return nil, fmt.Errorf("tile: allocate scratch: %w", err)
	}
	c.scratch = t
	return t, nil
}

func (c *Cache) render(t *surface.Target, id ID, r Renderer) error {
	if r == nil {
		return ErrNilRenderer
	}
	t.Clear(color.Transparent)
	rect := c.TileRect(id)
	c.stats.Renders++
	if err := r.RenderTile(t, rect); err != nil {
		return fmt.Errorf("tile: render %v: %w", id, err)
	}
	c.logger.Debug("tile: rendered", "id", id, "rect", rect)
	return nil
}

// capacity is the configured capacity raised to cover the visible range.
func (c *Cache) capacity() int {
	return max(c.maxCapacity, c.visibleRange.Len())
}

// evict drops tiles until the cache fits its capacity. The victim is the
// tile farthest from the visible range; among equally distant tiles the
// least recently used one goes first. Visible tiles are never victims.
func (c *Cache) evict() {
	limit := c.capacity()
	for len(c.entries) > limit {
		var victim *lru.Node[ID]
		best := 0
		for n := c.order.Oldest(); n != nil; n = n.Newer() {
			d := c.visibleRange.Distance(n.Key)
			if d < 0 {
				d = 1
			}
			if d > best {
				victim, best = n, d
			}
		}
		if victim == nil {
			return
		}
		c.logger.Debug("tile: evicted", "id", victim.Key, "distance", best)
		c.remove(victim.Key)
		c.stats.Evictions++
	}
}

func (c *Cache) remove(id ID) {
	e, ok := c.entries[id]
	if !ok {
		return
	}
	c.order.Remove(e.node)
	delete(c.entries, id)
}
