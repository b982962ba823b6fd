// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wnd

import "errors"

// Tree errors.
var (
	// ErrNotChild is returned by RemoveChild when the argument is not a
	// child of the receiver.
	ErrNotChild = errors.New("wnd: window is not a child")

	// ErrHasParent is returned when attaching a window that already has a
	// parent or is a desktop root.
	ErrHasParent = errors.New("wnd: window already has a parent")

	// ErrCycle is returned when a window would become its own ancestor.
	ErrCycle = errors.New("wnd: window is an ancestor of the parent")

	// ErrLeafChild is returned when adding a child to a KindLeaf window.
	ErrLeafChild = errors.New("wnd: leaf window cannot have children")

	// ErrSingleOccupied is returned when adding a second child to a
	// KindSingle window.
	ErrSingleOccupied = errors.New("wnd: single-child window already has a child")

	// ErrNilWindow is returned when a nil window is passed where one is
	// required.
	ErrNilWindow = errors.New("wnd: nil window")
)

// Desktop errors.
var (
	// ErrNotRooted is returned when an operation needs a window attached to
	// a desktop.
	ErrNotRooted = errors.New("wnd: window is not attached to a desktop")

	// ErrNotFrame is returned by RemoveFrame for a window that is not a
	// frame of the desktop.
	ErrNotFrame = errors.New("wnd: window is not a frame")

	// ErrCommitInProgress is returned by a re-entrant Commit.
	ErrCommitInProgress = errors.New("wnd: commit already in progress")

	// ErrClosed is returned after Desktop.Close.
	ErrClosed = errors.New("wnd: desktop is closed")
)
