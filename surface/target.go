// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/wnd/geom"
)

// Errors returned by allocators.
var (
	// ErrInvalidSize is returned when a target is requested with a
	// non-positive width or height.
	ErrInvalidSize = errors.New("surface: invalid target size")

	// ErrTargetTooLarge is returned when a requested target exceeds the
	// allocator's maximum dimension.
	ErrTargetTooLarge = errors.New("surface: target too large")
)

// DefaultMaxDimension is the largest width or height ImageAllocator hands
// out when MaxDimension is zero.
const DefaultMaxDimension = 16384

// Target is an offscreen bitmap owned by exactly one holder, typically a
// tile cache entry. It can be drawn into through its Surface and composited
// onto another surface with DrawOn.
type Target struct {
	surf *ImageSurface
}

// NewTarget wraps an image surface in a Target.
func NewTarget(s *ImageSurface) *Target {
	return &Target{surf: s}
}

// Size returns the target dimensions.
func (t *Target) Size() geom.Size {
	return t.surf.Size()
}

// Bounds returns the target rectangle at the origin.
func (t *Target) Bounds() geom.Rect {
	return geom.RectOf(geom.Point{}, t.surf.Size())
}

// Surface returns the surface that draws into the target.
func (t *Target) Surface() *ImageSurface {
	return t.surf
}

// Image returns the backing bitmap.
func (t *Target) Image() *image.RGBA {
	return t.surf.Image()
}

// Clear resets the whole target to c and drops any pushed clips.
func (t *Target) Clear(c color.Color) {
	t.surf.clip.Reset(t.Bounds())
	t.surf.Clear(c)
}

// DrawOn composites the target onto dst with its top-left corner at offset.
func (t *Target) DrawOn(dst Surface, offset geom.Vector) {
	dst.DrawImage(t.surf.Image(), offset.Point())
}

// Allocator creates render targets. Device backends implement it to hand
// out targets in their own memory; ImageAllocator is the CPU default.
type Allocator interface {
	NewTarget(size geom.Size) (*Target, error)
}

// AllocatorFunc adapts a function to the Allocator interface.
type AllocatorFunc func(size geom.Size) (*Target, error)

// NewTarget calls f(size).
func (f AllocatorFunc) NewTarget(size geom.Size) (*Target, error) {
	return f(size)
}

// ImageAllocator allocates targets backed by *image.RGBA.
type ImageAllocator struct {
	// MaxDimension bounds the width and height of a single target.
	// Zero means DefaultMaxDimension.
	MaxDimension int
}

// NewTarget allocates a transparent target of the given size.
func (a ImageAllocator) NewTarget(size geom.Size) (*Target, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	limit := a.MaxDimension
	if limit <= 0 {
		limit = DefaultMaxDimension
	}
	if size.Width > limit || size.Height > limit {
		return nil, fmt.Errorf("%w: %v exceeds %d", ErrTargetTooLarge, size, limit)
	}
	return NewTarget(NewImageSurface(size.Width, size.Height)), nil
}
