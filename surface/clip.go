// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/gogpu/wnd/geom"

// ClipStack manages nested rectangular clip regions with push/pop
// operations. Each push stores the previous bounds so Pop restores them
// exactly, which keeps the stack depth at a pop equal to the depth at its
// push.
type ClipStack struct {
	entries []geom.Rect // saved bounds, one per push
	bounds  geom.Rect
}

// NewClipStack creates a new clip stack with the given bounds.
// The bounds represent the maximum clipping area (typically the surface size).
func NewClipStack(bounds geom.Rect) *ClipStack {
	return &ClipStack{
		entries: make([]geom.Rect, 0, 8),
		bounds:  bounds,
	}
}

// Push intersects the current bounds with r and returns the new bounds.
func (cs *ClipStack) Push(r geom.Rect) geom.Rect {
	cs.entries = append(cs.entries, cs.bounds)
	cs.bounds = cs.bounds.Intersect(r)
	return cs.bounds
}

// Pop removes the most recent clip region from the stack.
// It reports false if the stack was already empty.
func (cs *ClipStack) Pop() bool {
	if len(cs.entries) == 0 {
		return false
	}
	last := len(cs.entries) - 1
	cs.bounds = cs.entries[last]
	cs.entries = cs.entries[:last]
	return true
}

// Bounds returns the current effective clip bounds.
// This is the intersection of all pushed clip regions.
func (cs *ClipStack) Bounds() geom.Rect {
	return cs.bounds
}

// IsVisible returns true if p is within the current clip region.
func (cs *ClipStack) IsVisible(p geom.Point) bool {
	return cs.bounds.Contains(p)
}

// Depth returns the current depth of the clip stack.
func (cs *ClipStack) Depth() int {
	return len(cs.entries)
}

// Reset clears all clip entries and restores the given bounds.
func (cs *ClipStack) Reset(bounds geom.Rect) {
	cs.entries = cs.entries[:0]
	cs.bounds = bounds
}
