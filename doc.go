// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wnd provides a retained-mode window tree with incremental layout,
// damage tracking and tiled layer caching.
//
// # Overview
//
// A Desktop owns a root window and the top-level frames presented on device
// surfaces. Windows form a tree; each window has an accessible region (its
// scrollable extent), a display offset (scroll position) and a region on
// its parent. Mutations mark parts of the tree stale, and Desktop.Commit
// brings every frame up to date in three steps:
//
//  1. Reflow: windows whose size changed or that were just attached run
//     their content layout, in ascending depth.
//  2. Redraw: windows with invalid regions flush them, in ascending depth.
//     Layered windows re-render the affected cached tiles.
//  3. Composite: each frame with damage replays its tree into a figure
//     queue that the compositor draws onto the frame's surface.
//
// # Quick Start
//
//	d := wnd.NewDesktop()
//	top := wnd.NewWindow(wnd.KindMulti, nil)
//	top.SetBackground(color.White)
//
//	s := surface.NewImageSurface(640, 480)
//	if err := d.AddFrame(top, geom.R(0, 0, 640, 480), s); err != nil {
//	    log.Fatal(err)
//	}
//
//	label := wnd.NewWindow(wnd.KindLeaf, wnd.Figures{
//	    figure.NewText(geom.Pt(4, 4), "hello", color.Black),
//	})
//	_ = top.AddChild(label, geom.R(20, 20, 200, 24))
//
//	if err := d.Commit(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Layers
//
// AllocateLayer gives a window a tile cache. The window and its plain
// descendants are painted into tiles once and reused: scrolling a layered
// window only recomposes its tiles at a new offset. Layered descendants of
// a layered window are overlays, composited on top of its tiles. Plain
// windows that come after an overlay in back-to-front order are painted
// over it on every composite instead of into the tiles.
//
// # Coordinates
//
// Every window has its own coordinate space. A child's region on parent is
// in the parent's coordinate space, so own = parent + OffsetFromParent().
// The root window's coordinates are desktop coordinates.
//
// # Thread Safety
//
// A desktop and its windows are single-threaded. The event loop mutates
// the tree and calls Commit from one goroutine; Commit is not re-entrant.
package wnd
