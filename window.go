// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wnd

import (
	"image/color"
	"slices"

	"github.com/gogpu/wnd/figure"
	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/internal/depthq"
	"github.com/gogpu/wnd/tile"
)

// InvalidDepth is the depth of a window that is not attached to a desktop.
const InvalidDepth = ^uint(0)

// Kind selects how many children a window accepts.
type Kind uint8

const (
	// KindLeaf windows have no children.
	KindLeaf Kind = iota

	// KindSingle windows have at most one child.
	KindSingle

	// KindMulti windows have any number of children.
	KindMulti
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindSingle:
		return "Single"
	case KindMulti:
		return "Multi"
	default:
		return "Unknown"
	}
}

// Window is one rectangular node of the window tree.
//
// A window has its own coordinate space. The accessible region is the full
// scrollable extent in that space, the display offset is the top-left
// corner of the part shown to the parent, and the region on parent places
// the shown part in the parent's coordinate space.
//
// Windows are not safe for concurrent use. All tree mutation happens on the
// goroutine that calls Desktop.Commit.
type Window struct {
	kind       Kind
	content    Content
	background color.Color

	accessible     geom.Rect
	displayOffset  geom.Point
	regionOnParent geom.Rect
	visible        geom.Rect
	invalid        geom.Region

	depth    uint
	parent   *Window
	children []*Window

	layer   *Layer
	desktop *Desktop
	frame   *frame

	reflowHandle depthq.Handle
	redrawHandle depthq.Handle
}

// NewWindow creates a detached window. content may be nil for windows that
// only host children.
func NewWindow(kind Kind, content Content) *Window {
	return &Window{
		kind:    kind,
		content: content,
		depth:   InvalidDepth,
	}
}

// Kind returns the window kind.
func (w *Window) Kind() Kind { return w.kind }

// Content returns the window content.
func (w *Window) Content() Content { return w.content }

// Parent returns the parent window, or nil.
func (w *Window) Parent() *Window { return w.parent }

// Children returns the children in back-to-front order.
func (w *Window) Children() []*Window { return slices.Clone(w.children) }

// Depth returns the distance from the desktop root, or InvalidDepth.
func (w *Window) Depth() uint { return w.depth }

// IsRooted reports whether the window is attached to a desktop.
func (w *Window) IsRooted() bool { return w.desktop != nil }

// Desktop returns the desktop the window is attached to, or nil.
func (w *Window) Desktop() *Desktop { return w.desktop }

// AccessibleRegion returns the scrollable extent in window coordinates.
func (w *Window) AccessibleRegion() geom.Rect { return w.accessible }

// DisplayOffset returns the scroll position.
func (w *Window) DisplayOffset() geom.Point { return w.displayOffset }

// DisplayRegion returns the part of the accessible region shown to the
// parent, in window coordinates.
func (w *Window) DisplayRegion() geom.Rect {
	return geom.RectOf(w.displayOffset, w.regionOnParent.Size())
}

// RegionOnParent returns the placement in parent coordinates.
func (w *Window) RegionOnParent() geom.Rect { return w.regionOnParent }

// VisibleRegion returns the part of the accessible region the parent
// composites, in window coordinates.
func (w *Window) VisibleRegion() geom.Rect { return w.visible }

// InvalidRegion returns a copy of the area waiting to be redrawn.
func (w *Window) InvalidRegion() geom.Region { return w.invalid.Clone() }

// Layer returns the window's layer, or nil.
func (w *Window) Layer() *Layer { return w.layer }

// HasLayer reports whether the window renders through its own tile cache.
func (w *Window) HasLayer() bool { return w.layer != nil }

// Background returns the background color, or nil.
func (w *Window) Background() color.Color { return w.background }

// OffsetFromParent maps parent coordinates to window coordinates:
// own = parent + OffsetFromParent.
func (w *Window) OffsetFromParent() geom.Vector {
	return w.displayOffset.Sub(w.regionOnParent.Point())
}

// SetBackground sets a solid color painted under the content. nil removes
// it.
func (w *Window) SetBackground(c color.Color) {
	w.background = c
	w.Invalidate(w.accessible)
}

// SetAccessibleRegion replaces the scrollable extent.
//
// The region is grown if it cannot hold the display size, and the display
// offset is clamped into it. Cached tiles over removed area are dropped and
// newly exposed area is invalidated.
func (w *Window) SetAccessibleRegion(a geom.Rect) {
	old := w.accessible
	oldOffset := w.displayOffset

	size := w.regionOnParent.Size()
	a.W = max(a.W, size.Width)
	a.H = max(a.H, size.Height)
	w.accessible = a
	w.displayOffset = w.clampOffset(w.displayOffset)

	if w.layer != nil {
		for _, gone := range old.Sub(a) {
			w.layer.cache.DropRect(gone)
		}
	}
	w.invalid = w.invalid.Intersect(a)
	w.updateVisibleRegion()

	for _, exposed := range a.Sub(old) {
		w.Invalidate(exposed)
	}
	if w.displayOffset != oldOffset {
		w.propagate(w.DisplayRegion(), w.layer == nil)
	}
}

// SetDisplayOffset scrolls to p, clamped so the display region stays inside
// the accessible region, and returns the delta actually applied.
//
// Scrolling never re-renders the window's own tiles: only the parent's
// composite area is invalidated.
func (w *Window) SetDisplayOffset(p geom.Point) geom.Vector {
	p = w.clampOffset(p)
	delta := p.Sub(w.displayOffset)
	if delta.IsZero() {
		return delta
	}
	w.displayOffset = p
	w.updateVisibleRegion()
	w.propagate(w.DisplayRegion(), w.layer == nil)
	return delta
}

// SetRegionOnParent moves or resizes the window on its parent.
//
// A size change resets the tile size of the layer and queues the window for
// reflow. Both the old and new placement are invalidated on the parent.
func (w *Window) SetRegionOnParent(r geom.Rect) {
	old := w.regionOnParent
	if r == old {
		return
	}
	w.regionOnParent = r

	if r.Size() != old.Size() {
		w.fitDisplay()
		if w.layer != nil {
			w.layer.cache.ResetTileSize(r.Size())
		}
		w.queueReflow()
	}
	w.updateVisibleRegion()

	if w.parent != nil {
		content := w.layer == nil
		w.parent.invalidateFromChild(w, old, content)
		w.parent.invalidateFromChild(w, r, content)
	}
}

// Invalidate marks r, in window coordinates, for redraw. The first
// invalidation since the last commit queues the window on the redraw queue.
// The damage is forwarded to the layer that holds the window's pixels and
// up to the frame.
func (w *Window) Invalidate(r geom.Rect) {
	r = r.Intersect(w.accessible)
	if r.IsEmpty() {
		return
	}
	w.invalid.Union(r)
	w.queueRedraw()
	w.propagate(r, w.layer == nil)
}

// RequestReflow queues the window for layout in the next commit, for
// content whose layout changed without a size change.
func (w *Window) RequestReflow() error {
	if w.desktop == nil {
		return ErrNotRooted
	}
	w.queueReflow()
	return nil
}

// AddChild attaches child at region, in this window's coordinates, on top
// of the existing children.
func (w *Window) AddChild(child *Window, region geom.Rect) error {
	if child == nil {
		return ErrNilWindow
	}
	switch w.kind {
	case KindLeaf:
		return ErrLeafChild
	case KindSingle:
		if len(w.children) > 0 {
			return ErrSingleOccupied
		}
	}
	if child.parent != nil || (child.desktop != nil && child.desktop.root == child) {
		return ErrHasParent
	}
	for a := w; a != nil; a = a.parent {
		if a == child {
			return ErrCycle
		}
	}

	child.parent = w
	w.children = append(w.children, child)
	child.regionOnParent = region
	child.fitDisplay()
	if child.layer != nil {
		child.layer.cache.ResetTileSize(region.Size())
	}
	if w.desktop != nil {
		child.attach(w.desktop, w.depth+1)
	}
	child.updateVisibleRegion()
	child.queueRedraw()
	w.markLayersDirty()

	w.invalidateFromChild(child, region, child.layer == nil)
	return nil
}

// RemoveChild detaches child and its subtree. The subtree leaves both
// commit queues and its depth becomes InvalidDepth.
func (w *Window) RemoveChild(child *Window) error {
	i := slices.Index(w.children, child)
	if child == nil || i < 0 {
		return ErrNotChild
	}

	w.invalidateFromChild(child, child.regionOnParent, child.layer == nil)
	w.children = slices.Delete(w.children, i, i+1)
	child.parent = nil
	if child.frame != nil {
		if d := child.desktop; d != nil {
			d.dropFrame(child.frame)
		}
		child.frame = nil
	}
	child.detach()
	child.updateVisibleRegion()
	w.markLayersDirty()
	return nil
}

// AllocateLayer gives the window its own tile cache and returns the layer.
// Options are applied after the desktop's layer options. Calling it on a
// layered window returns the existing layer.
func (w *Window) AllocateLayer(opts ...tile.Option) *Layer {
	if w.layer != nil {
		return w.layer
	}
	var base []tile.Option
	if w.desktop != nil {
		base = w.desktop.opts.tileOptions()
	} else {
		base = []tile.Option{tile.WithLogger(Logger())}
	}
	w.layer = newLayer(w, tile.New(append(base, opts...)...))
	w.layer.cache.ResetTileSize(w.regionOnParent.Size())
	w.updateVisibleRegion()
	w.markLayersDirty()

	// The window's pixels move out of the host layer into its own.
	w.propagate(w.DisplayRegion(), true)
	return w.layer
}

// ReleaseLayer drops the window's tile cache. Its content is painted into
// the nearest layered ancestor again.
func (w *Window) ReleaseLayer() {
	if w.layer == nil {
		return
	}
	w.layer.cache.Clear()
	w.layer = nil
	w.markLayersDirty()
	w.updateVisibleRegion()
	w.propagate(w.DisplayRegion(), true)
}

// Composite appends the window to q.
//
// clientOffset maps the parent's coordinates to the coordinates q is
// currently in, and parentInvalid is the damaged area in parent
// coordinates. The window opens a group clipped to its placement, emits
// its tiles (layered) or its own figures (plain), recurses into its
// children back to front and closes the group.
func (w *Window) Composite(q *figure.Queue, clientOffset geom.Vector, parentInvalid geom.Rect) error {
	invalid, ok := w.beginGroup(q, clientOffset, parentInvalid)
	if !ok {
		return nil
	}
	defer q.EndGroup()

	if w.layer != nil {
		if err := w.layer.emitTiles(q, invalid); err != nil {
			return err
		}
		if len(w.layer.Overlays()) == 0 {
			return nil
		}
		for _, c := range w.children {
			if err := c.compositeOverlay(q, w.layer, invalid); err != nil {
				return err
			}
		}
		return nil
	}

	w.paintOwn(q, invalid)
	switch w.kind {
	case KindSingle, KindMulti:
		for _, c := range w.children {
			if err := c.Composite(q, geom.Vector{}, invalid); err != nil {
				return err
			}
		}
	}
	return nil
}

// compositeOverlay composites the windows below w that are not in the
// tiles of host: overlays and the plain windows painted over them.
// Flattened windows only contribute their group.
func (w *Window) compositeOverlay(q *figure.Queue, host *Layer, parentInvalid geom.Rect) error {
	if w.layer != nil || host.live[w] {
		return w.Composite(q, geom.Vector{}, parentInvalid)
	}
	if !w.hasLayeredDescendant() {
		return nil
	}
	invalid, ok := w.beginGroup(q, geom.Vector{}, parentInvalid)
	if !ok {
		return nil
	}
	defer q.EndGroup()
	for _, c := range w.children {
		if err := c.compositeOverlay(q, host, invalid); err != nil {
			return err
		}
	}
	return nil
}

// paintFlattened appends w and the descendants flattened into host for a
// tile render. region is in window coordinates.
func (w *Window) paintFlattened(q *figure.Queue, host *Layer, region geom.Rect) {
	w.paintOwn(q, region)
	for _, c := range w.children {
		if c.layer != nil || host.live[c] {
			continue
		}
		invalid, ok := c.beginGroup(q, geom.Vector{}, region)
		if !ok {
			continue
		}
		c.paintFlattened(q, host, invalid)
		q.EndGroup()
	}
}

// paintOwn appends the background and content figures.
func (w *Window) paintOwn(q *figure.Queue, invalid geom.Rect) {
	if w.background != nil {
		q.Append(geom.Vector{}, &figure.Background{Rect: w.accessible, Color: w.background})
	}
	if w.content != nil {
		w.content.Paint(q, invalid)
	}
}

// beginGroup opens the group for w and returns the damaged area in window
// coordinates. It opens nothing when the placement misses parentInvalid.
func (w *Window) beginGroup(q *figure.Queue, clientOffset geom.Vector, parentInvalid geom.Rect) (geom.Rect, bool) {
	clip := w.regionOnParent.Intersect(parentInvalid)
	if clip.IsEmpty() {
		return geom.Rect{}, false
	}
	offset := w.regionOnParent.Point().Sub(w.displayOffset).Add(clientOffset)
	q.BeginGroup(offset, clip.Offset(clientOffset))
	return clip.Offset(w.OffsetFromParent()), true
}

// reflow recomputes the layout and invalidates the whole window.
func (w *Window) reflow() {
	a := w.accessible
	if w.content != nil {
		a = w.content.UpdateContentLayout(w.regionOnParent.Size())
	}
	w.SetAccessibleRegion(a)
	w.Invalidate(w.accessible)
}

// redraw rewrites the stored tiles under the invalid region and clears it.
func (w *Window) redraw() error {
	defer w.invalid.Clear()
	if w.layer == nil {
		return nil
	}
	seen := make(map[tile.ID]bool)
	var ids []tile.ID
	for _, r := range w.invalid.Rects() {
		for _, id := range w.layer.cache.InvalidateRect(r) {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	for _, id := range ids {
		if _, err := w.layer.cache.WriteTile(id, w.layer); err != nil {
			return err
		}
	}
	return nil
}

// propagate forwards r, in window coordinates, to the parent. content
// reports whether the window's pixels live in a host layer that must be
// re-rendered, as opposed to only being re-composited.
func (w *Window) propagate(r geom.Rect, content bool) {
	if w.parent == nil {
		return
	}
	pr := r.Intersect(w.DisplayRegion()).Offset(w.OffsetFromParent().Neg())
	if pr.IsEmpty() {
		return
	}
	w.parent.invalidateFromChild(w, pr, content)
}

// invalidateFromChild receives damage r, in w's coordinates, from child.
func (w *Window) invalidateFromChild(child *Window, r geom.Rect, content bool) {
	switch {
	case child.frame != nil:
		child.frame.pending.Union(r)
	case content && w.layer != nil && w.layer.paintsLive(child):
		w.propagate(r, false)
	case content && w.layer != nil:
		w.Invalidate(r)
	default:
		w.propagate(r, content)
	}
}

// cachedRegion is the area children may be composited from, in window
// coordinates.
func (w *Window) cachedRegion() geom.Rect {
	if w.layer != nil {
		return w.layer.cache.CachedRegion()
	}
	return w.visible
}

// updateVisibleRegion recomputes the visible region of w and its subtree
// and moves layer footprints along.
func (w *Window) updateVisibleRegion() {
	switch {
	case w.desktop != nil && w.desktop.root == w:
		w.visible = w.accessible
	case w.parent == nil:
		w.visible = geom.Rect{}
	default:
		v := w.parent.cachedRegion().Intersect(w.regionOnParent)
		w.visible = v.Offset(w.OffsetFromParent()).Intersect(w.accessible)
	}
	if w.layer != nil {
		w.layer.cache.SetCachedRegion(w.accessible, w.visible)
	}
	for _, c := range w.children {
		c.updateVisibleRegion()
	}
}

// fitDisplay grows the accessible region to hold the display size and
// clamps the display offset.
func (w *Window) fitDisplay() {
	size := w.regionOnParent.Size()
	w.accessible.W = max(w.accessible.W, size.Width)
	w.accessible.H = max(w.accessible.H, size.Height)
	w.displayOffset = w.clampOffset(w.displayOffset)
}

func (w *Window) clampOffset(p geom.Point) geom.Point {
	size := w.regionOnParent.Size()
	maxX := w.accessible.Right() - max(size.Width, 0)
	maxY := w.accessible.Bottom() - max(size.Height, 0)
	p.X = max(w.accessible.X, min(p.X, maxX))
	p.Y = max(w.accessible.Y, min(p.Y, maxY))
	return p
}

// attach sets the desktop and depth of the subtree and queues it for
// reflow. Pending invalidations are queued for redraw.
func (w *Window) attach(d *Desktop, depth uint) {
	w.desktop = d
	w.depth = depth
	w.queueReflow()
	if !w.invalid.IsEmpty() {
		w.queueRedraw()
	}
	if w.layer != nil && w.layer.dirty {
		w.layer.markDirty()
	}
	for _, c := range w.children {
		c.attach(d, depth+1)
	}
}

// detach removes the subtree from both queues and the desktop.
func (w *Window) detach() {
	if w.desktop != nil {
		w.desktop.reflow.Remove(&w.reflowHandle)
		w.desktop.redraw.Remove(&w.redrawHandle)
	}
	w.desktop = nil
	w.depth = InvalidDepth
	for _, c := range w.children {
		c.detach()
	}
}

func (w *Window) queueReflow() {
	if w.desktop != nil {
		w.desktop.reflow.Add(w, int(w.depth), &w.reflowHandle)
	}
}

func (w *Window) queueRedraw() {
	if w.desktop != nil {
		w.desktop.redraw.Add(w, int(w.depth), &w.redrawHandle)
	}
}

// markLayersDirty marks the layer lists of w and its ancestors stale.
func (w *Window) markLayersDirty() {
	for a := w; a != nil; a = a.parent {
		if a.layer != nil {
			a.layer.markDirty()
		}
	}
}

func (w *Window) hasLayeredDescendant() bool {
	for _, c := range w.children {
		if c.layer != nil || c.hasLayeredDescendant() {
			return true
		}
	}
	return false
}
