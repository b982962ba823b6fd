// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package figure

import "github.com/gogpu/wnd/geom"

// EntryKind identifies the type of a queue entry.
type EntryKind uint8

const (
	KindDraw  EntryKind = iota // Draw a figure
	KindBegin                  // Open a group
	KindEnd                    // Close a group
)

var entryKindNames = [...]string{
	KindDraw:  "Draw",
	KindBegin: "Begin",
	KindEnd:   "End",
}

// String returns the string representation of an EntryKind.
func (k EntryKind) String() string {
	if int(k) < len(entryKindNames) {
		return entryKindNames[k]
	}
	return "Unknown"
}

// Entry is one element of a Queue.
//
// For KindDraw, Figure and Offset are set. For KindBegin, Offset is the
// translation from the group's coordinates to the enclosing coordinates and
// Clip is the group's bounding clip in enclosing coordinates. Match is the
// index of the matching marker for KindBegin and KindEnd, -1 otherwise.
type Entry struct {
	Kind   EntryKind
	Figure Figure
	Offset geom.Vector
	Clip   geom.Rect
	Match  int
}

// Queue is an append-only buffer of draw items and group markers. It is
// built fresh for each repaint pass, consumed once by a Compositor, then
// reset or discarded.
//
// Queue is not safe for concurrent use.
type Queue struct {
	entries []Entry
	open    []int // indices of unclosed begin markers
	groups  int
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		entries: make([]Entry, 0, 64),
		open:    make([]int, 0, 8),
	}
}

// Append adds a draw item. A nil figure is ignored.
func (q *Queue) Append(offset geom.Vector, f Figure) {
	if f == nil {
		return
	}
	q.entries = append(q.entries, Entry{Kind: KindDraw, Figure: f, Offset: offset, Match: -1})
}

// BeginGroup opens a group and returns the index of its begin marker.
func (q *Queue) BeginGroup(offset geom.Vector, clip geom.Rect) int {
	idx := len(q.entries)
	q.entries = append(q.entries, Entry{Kind: KindBegin, Offset: offset, Clip: clip, Match: -1})
	q.open = append(q.open, idx)
	q.groups++
	return idx
}

// EndGroup closes the innermost open group and links both markers.
// It panics if no group is open.
func (q *Queue) EndGroup() {
	if len(q.open) == 0 {
		panic("figure: EndGroup without matching BeginGroup")
	}
	begin := q.open[len(q.open)-1]
	q.open = q.open[:len(q.open)-1]

	end := len(q.entries)
	q.entries = append(q.entries, Entry{Kind: KindEnd, Match: begin})
	q.entries[begin].Match = end
}

// Len returns the number of entries, markers included.
func (q *Queue) Len() int {
	return len(q.entries)
}

// Groups returns the number of groups opened since the last Reset.
func (q *Queue) Groups() int {
	return q.groups
}

// Depth returns the number of currently open groups.
func (q *Queue) Depth() int {
	return len(q.open)
}

// Balanced reports whether every opened group has been closed.
func (q *Queue) Balanced() bool {
	return len(q.open) == 0
}

// At returns the entry at index i.
func (q *Queue) At(i int) Entry {
	return q.entries[i]
}

// Entries returns the queue contents. The slice must not be modified.
func (q *Queue) Entries() []Entry {
	return q.entries
}

// Reset empties the queue, keeping allocated capacity.
func (q *Queue) Reset() {
	clear(q.entries)
	q.entries = q.entries[:0]
	q.open = q.open[:0]
	q.groups = 0
}
