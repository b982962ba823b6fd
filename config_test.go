// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wnd

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
backend = "image"
clear_color = "#10203040"

[tile]
width = 128
height = 64
max_capacity = 12
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	want := Config{
		Backend:    "image",
		ClearColor: "#10203040",
		Tile:       TileConfig{Width: 128, Height: 64, MaxCapacity: 12},
	}
	if cfg != want {
		t.Errorf("ParseConfig() = %+v, want %+v", cfg, want)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	d := NewDesktop(opts...)
	if d.opts.tileSize != geom.Sz(128, 64) {
		t.Errorf("tileSize = %v", d.opts.tileSize)
	}
	if d.opts.maxCapacity != 12 {
		t.Errorf("maxCapacity = %d", d.opts.maxCapacity)
	}
	if d.opts.clearColor != (color.NRGBA{0x10, 0x20, 0x30, 0x40}) {
		t.Errorf("clearColor = %v", d.opts.clearColor)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("ParseConfig(nil): %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("empty config = %+v, want defaults", cfg)
	}

	cfg, err = ParseConfig([]byte("[tile]\nmax_capacity = 5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tile.Width != 256 || cfg.Tile.MaxCapacity != 5 {
		t.Errorf("partial config = %+v", cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "tile_size = 3\n"},
		{"bad syntax", "backend = \n"},
		{"wrong type", "[tile]\nwidth = \"wide\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); err == nil {
				t.Error("ParseConfig() succeeded, want error")
			}
		})
	}
}

func TestConfigOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown backend", Config{Backend: "vulkan"}},
		{"half tile size", Config{Tile: TileConfig{Width: 64}}},
		{"negative capacity", Config{Tile: TileConfig{MaxCapacity: -1}}},
		{"bad color", Config{ClearColor: "#12"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Options(); err == nil {
				t.Error("Options() succeeded, want error")
			}
		})
	}

	_, err := Config{Backend: "vulkan"}.Options()
	var notFound *surface.BackendNotFoundError
	if !errors.As(err, &notFound) || notFound.Name != "vulkan" {
		t.Errorf("Options() = %v, want BackendNotFoundError", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wnd.toml")

	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Tile.MaxCapacity = 48
	cfg.ClearColor = "#fff"
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != cfg {
		t.Errorf("LoadConfig() = %+v, want %+v", got, cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig(missing) = %v, want ErrNotExist", err)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}, false},
		{"102030", color.NRGBA{0x10, 0x20, 0x30, 0xff}, false},
		{"#10203040", color.NRGBA{0x10, 0x20, 0x30, 0x40}, false},
		{"#12", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
