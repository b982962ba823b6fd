// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wnd

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
	"github.com/gogpu/wnd/tile"
)

// Config is the file form of the desktop options.
//
// Example config.toml:
//
//	backend = "image"
//	clear_color = "#202020"
//
//	[tile]
//	width = 128
//	height = 128
//	max_capacity = 64
type Config struct {
	// Backend names the registered allocator layer tiles come from.
	// Empty selects the best available backend.
	Backend string `toml:"backend"`

	// ClearColor is a "#rrggbb" or "#rrggbbaa" color. Empty is transparent.
	ClearColor string `toml:"clear_color"`

	Tile TileConfig `toml:"tile"`
}

// TileConfig configures layer tile caches.
type TileConfig struct {
	Width       int `toml:"width"`
	Height      int `toml:"height"`
	MaxCapacity int `toml:"max_capacity"`
}

// DefaultConfig returns the configuration NewDesktop uses without options.
func DefaultConfig() Config {
	return Config{
		Tile: TileConfig{
			Width:       tile.DefaultTileWidth,
			Height:      tile.DefaultTileHeight,
			MaxCapacity: tile.DefaultMaxCapacity,
		},
	}
}

// LoadConfig reads a TOML config file. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("wnd: load config: %w", err)
	}
	defer f.Close()
	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("wnd: load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses TOML config data. Missing keys keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	return DecodeConfig(bytes.NewReader(data))
}

// DecodeConfig decodes TOML config from r. Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("wnd: parse config: %w", err)
	}
	return cfg, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Options converts the config to desktop options.
func (c Config) Options() ([]Option, error) {
	var opts []Option
	if c.Tile.Width != 0 || c.Tile.Height != 0 {
		size := geom.Sz(c.Tile.Width, c.Tile.Height)
		if size.IsEmpty() {
			return nil, fmt.Errorf("wnd: invalid tile size %v", size)
		}
		opts = append(opts, WithTileSize(size))
	}
	if c.Tile.MaxCapacity < 0 {
		return nil, fmt.Errorf("wnd: invalid tile max_capacity %d", c.Tile.MaxCapacity)
	}
	if c.Tile.MaxCapacity > 0 {
		opts = append(opts, WithMaxCapacity(c.Tile.MaxCapacity))
	}

	var (
		alloc surface.Allocator
		err   error
	)
	if c.Backend == "" {
		alloc, err = surface.DefaultAllocator()
	} else {
		alloc, err = surface.AllocatorByName(c.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("wnd: config backend: %w", err)
	}
	opts = append(opts, WithAllocator(alloc))

	if c.ClearColor != "" {
		col, err := ParseHexColor(c.ClearColor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithClearColor(col))
	}
	return opts, nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading '#'
// is optional.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("wnd: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("wnd: invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
