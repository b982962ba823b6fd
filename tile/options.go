// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tile

import (
	"log/slog"

	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
)

// Default cache configuration constants.
const (
	// DefaultTileWidth is the default tile width in pixels.
	DefaultTileWidth = 256
	// DefaultTileHeight is the default tile height in pixels.
	DefaultTileHeight = 256
	// DefaultMaxCapacity is the default number of tiles kept per cache.
	DefaultMaxCapacity = 32

	// maxTilesPerAxis bounds how many tiles a layer spans along one axis
	// before ResetTileSize doubles the tile dimension.
	maxTilesPerAxis = 4
	// MaxTileDimension caps the doubling done by ResetTileSize. A base
	// size above it is kept as is.
	MaxTileDimension = 2048
	// prefetchMargin is the ring of tiles around the visible range that
	// stays cacheable.
	prefetchMargin = 1
)

// Option configures a Cache during creation.
//
// Example:
//
//	c := tile.New(
//	    tile.WithTileSize(geom.Sz(128, 128)),
//	    tile.WithMaxCapacity(64),
//	)
type Option func(*options)

// options holds optional configuration for Cache creation.
type options struct {
	tileSize    geom.Size
	maxCapacity int
	allocator   surface.Allocator
	logger      *slog.Logger
}

// defaultOptions returns the default cache options.
func defaultOptions() options {
	return options{
		tileSize:    geom.Sz(DefaultTileWidth, DefaultTileHeight),
		maxCapacity: DefaultMaxCapacity,
		allocator:   surface.ImageAllocator{},
		logger:      slog.New(slog.DiscardHandler),
	}
}

// WithTileSize sets the base tile size. Empty sizes are ignored.
func WithTileSize(size geom.Size) Option {
	return func(o *options) {
		if !size.IsEmpty() {
			o.tileSize = size
		}
	}
}

// WithMaxCapacity sets the number of tiles the cache keeps before evicting.
// Non-positive values are ignored.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxCapacity = n
		}
	}
}

// WithAllocator sets the allocator tile targets are obtained from.
func WithAllocator(a surface.Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.allocator = a
		}
	}
}

// WithLogger sets the logger used for render and eviction diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
