// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package depthq implements a depth-bucketed work queue.
//
// Items are grouped by an integer depth and drained in ascending depth
// order. Each item carries a Handle that records where it sits in the queue,
// which makes Add idempotent and Remove O(1).
//
// The queue is NOT thread-safe. It is designed for the single-threaded
// commit loop of the window tree.
package depthq

import "container/list"

// Handle records an item's position in a Queue. The zero value means
// "not queued". A Handle must be used with at most one Queue.
type Handle struct {
	depth int
	elem  *list.Element
}

// Queued reports whether the handle is currently in a queue.
func (h *Handle) Queued() bool {
	return h.elem != nil
}

// Depth returns the bucket the handle was queued at, or -1.
func (h *Handle) Depth() int {
	if h.elem == nil {
		return -1
	}
	return h.depth
}

// Queue is a depth-bucketed FIFO. Within one depth, items drain in the
// order they were added.
type Queue[T any] struct {
	buckets []*list.List
	next    int // lowest bucket that may be non-empty
	size    int
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	return q.size
}

// LenAt returns the number of items queued at depth.
func (q *Queue[T]) LenAt(depth int) int {
	if depth < 0 || depth >= len(q.buckets) || q.buckets[depth] == nil {
		return 0
	}
	return q.buckets[depth].Len()
}

// Add queues v at depth and stores its position in h.
// Adding an item whose handle is already queued is a no-op.
// Negative depths are ignored.
func (q *Queue[T]) Add(v T, depth int, h *Handle) {
	if h.elem != nil || depth < 0 {
		return
	}
	for len(q.buckets) <= depth {
		q.buckets = append(q.buckets, nil)
	}
	b := q.buckets[depth]
	if b == nil {
		b = list.New()
		q.buckets[depth] = b
	}
	h.depth = depth
	h.elem = b.PushBack(v)
	q.size++
	if depth < q.next {
		// Work added above the drain cursor is still drained in this pass.
		q.next = depth
	}
}

// Remove takes the item out of the queue. Removing an unqueued handle is a
// no-op.
func (q *Queue[T]) Remove(h *Handle) {
	if h.elem == nil {
		return
	}
	q.buckets[h.depth].Remove(h.elem)
	h.elem = nil
	q.size--
}

// pop returns the front element of the lowest non-empty bucket, advancing
// the cursor past empty buckets.
func (q *Queue[T]) pop() (*list.Element, int, bool) {
	for q.next < len(q.buckets) {
		b := q.buckets[q.next]
		if b != nil && b.Len() > 0 {
			return b.Front(), q.next, true
		}
		q.next++
	}
	return nil, 0, false
}

// Drain repeatedly removes the front item of the lowest non-empty bucket and
// passes it to fn, until the queue is empty. handle must return the Handle
// the item was added with; Drain clears it before calling fn so fn may
// re-queue the item.
//
// Items that fn adds at a deeper level are drained in the same call, after
// the current level. Items added at a shallower level move the cursor back.
func (q *Queue[T]) Drain(handle func(T) *Handle, fn func(v T, depth int)) {
	q.next = 0
	for {
		e, depth, ok := q.pop()
		if !ok {
			break
		}
		v := e.Value.(T)
		h := handle(v)
		q.buckets[depth].Remove(e)
		q.size--
		if h != nil && h.elem == e {
			h.elem = nil
		}
		fn(v, depth)
	}
	q.next = 0
}

// Clear drops every queued item. Handles of dropped items are reset through
// the handle callback.
func (q *Queue[T]) Clear(handle func(T) *Handle) {
	for _, b := range q.buckets {
		if b == nil {
			continue
		}
		for e := b.Front(); e != nil; e = e.Next() {
			if h := handle(e.Value.(T)); h != nil && h.elem == e {
				h.elem = nil
			}
		}
		b.Init()
	}
	q.size = 0
	q.next = 0
}

// Items returns the queued items in drain order without removing them.
func (q *Queue[T]) Items() []T {
	out := make([]T, 0, q.size)
	for _, b := range q.buckets {
		if b == nil {
			continue
		}
		for e := b.Front(); e != nil; e = e.Next() {
			out = append(out, e.Value.(T))
		}
	}
	return out
}
