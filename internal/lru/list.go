// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package lru provides an intrusive doubly-linked recency list.
//
// The list only tracks order; callers keep their own map from key to *Node.
// The front is the most recently used key and the back the least recently
// used. The list is not thread-safe.
package lru

// Node is an element of a List. It stores the key so the owner can find the
// map entry from the list side.
type Node[K comparable] struct {
	Key  K
	prev *Node[K]
	next *Node[K]
	list *List[K]
}

// Newer returns the next more recently used node, or nil at the front.
func (n *Node[K]) Newer() *Node[K] {
	return n.prev
}

// List is a doubly-linked recency list.
type List[K comparable] struct {
	head *Node[K] // most recently used
	tail *Node[K] // least recently used
	len  int
}

// New creates an empty list.
func New[K comparable]() *List[K] {
	return &List[K]{}
}

// Len returns the number of nodes in the list.
func (l *List[K]) Len() int {
	return l.len
}

// PushFront adds key as the most recently used entry and returns its node.
func (l *List[K]) PushFront(key K) *Node[K] {
	node := &Node[K]{Key: key, list: l}
	l.linkFront(node)
	return node
}

// Touch moves node to the front.
func (l *List[K]) Touch(node *Node[K]) {
	if node == nil || node.list != l || node == l.head {
		return
	}
	l.unlink(node)
	node.list = l
	l.linkFront(node)
}

// Remove unlinks node. Removing a node that is not in l is a no-op.
func (l *List[K]) Remove(node *Node[K]) {
	if node == nil || node.list != l {
		return
	}
	l.unlink(node)
}

// Oldest returns the least recently used node, or nil when empty.
func (l *List[K]) Oldest() *Node[K] {
	return l.tail
}

// Clear removes all nodes from the list.
func (l *List[K]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next, n.list = nil, nil, nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

func (l *List[K]) linkFront(node *Node[K]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// unlink removes a node from the list and clears its pointers.
func (l *List[K]) unlink(node *Node[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	node.list = nil
	l.len--
}
