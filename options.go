// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wnd

import (
	"image/color"

	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
	"github.com/gogpu/wnd/tile"
)

// Option configures a Desktop during creation.
//
// Example:
//
//	d := wnd.NewDesktop(
//	    wnd.WithTileSize(geom.Sz(128, 128)),
//	    wnd.WithMaxCapacity(64),
//	)
type Option func(*options)

// options holds optional configuration for Desktop creation.
type options struct {
	tileSize    geom.Size
	maxCapacity int
	allocator   surface.Allocator
	clearColor  color.Color
	observer    CommitObserver
}

// defaultOptions returns the default desktop options.
func defaultOptions() options {
	return options{
		tileSize:    geom.Sz(tile.DefaultTileWidth, tile.DefaultTileHeight),
		maxCapacity: tile.DefaultMaxCapacity,
		allocator:   surface.ImageAllocator{},
		clearColor:  color.Transparent,
	}
}

// tileOptions returns the options for layer caches created by the desktop.
func (o *options) tileOptions() []tile.Option {
	return []tile.Option{
		tile.WithTileSize(o.tileSize),
		tile.WithMaxCapacity(o.maxCapacity),
		tile.WithAllocator(o.allocator),
		tile.WithLogger(Logger()),
	}
}

// WithTileSize sets the base tile size of layers on the desktop.
func WithTileSize(size geom.Size) Option {
	return func(o *options) {
		if !size.IsEmpty() {
			o.tileSize = size
		}
	}
}

// WithMaxCapacity sets how many tiles each layer keeps before evicting.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxCapacity = n
		}
	}
}

// WithAllocator sets the allocator layer tiles are obtained from. Use it to
// place tiles in a device backend's memory.
func WithAllocator(a surface.Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.allocator = a
		}
	}
}

// WithClearColor sets the color damaged frame areas are reset to before
// composition. The default is transparent.
func WithClearColor(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.clearColor = c
		}
	}
}

// WithCommitObserver installs a callback that sees every window processed
// by Commit, in processing order.
func WithCommitObserver(fn CommitObserver) Option {
	return func(o *options) {
		o.observer = fn
	}
}
