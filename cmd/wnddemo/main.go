// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command wnddemo builds a small window tree, commits it, scrolls a layered
// list and writes every frame as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/wnd"
	"github.com/gogpu/wnd/figure"
	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
)

func main() {
	var (
		width   = flag.Int("width", 640, "frame width")
		height  = flag.Int("height", 480, "frame height")
		output  = flag.String("output", "frames", "output directory")
		config  = flag.String("config", "", "TOML config file")
		steps   = flag.Int("steps", 4, "number of scroll steps")
		step    = flag.Int("scroll", 90, "pixels scrolled per step")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		wnd.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := wnd.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = wnd.LoadConfig(*config); err != nil {
			log.Fatal(err)
		}
	}
	opts, err := cfg.Options()
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*output, 0o755); err != nil {
		log.Fatal(err)
	}

	d := wnd.NewDesktop(opts...)
	defer d.Close()

	s := surface.NewImageSurface(*width, *height)
	top, list := buildTree(*width, *height)
	if err := d.AddFrame(top, geom.R(0, 0, *width, *height), s); err != nil {
		log.Fatal(err)
	}

	for i := 0; i <= *steps; i++ {
		if i > 0 {
			delta := list.SetDisplayOffset(list.DisplayOffset().Add(geom.Vec(0, *step)))
			log.Printf("scrolled by %v", delta)
		}
		if err := d.Commit(); err != nil {
			log.Fatalf("commit: %v", err)
		}

		name := filepath.Join(*output, fmt.Sprintf("frame%02d.png", i))
		if err := savePNG(name, s); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}

		st := list.Layer().Cache().Stats()
		log.Printf("%s: draws=%d culled=%d tiles=%d renders=%d hit rate=%.2f",
			name, d.Stats().Figures.Draws, d.Stats().Figures.Culled, st.Tiles, st.Renders, st.HitRate())
	}
}

// buildTree creates a frame with a title bar, a sidebar and a layered,
// scrollable list. It returns the frame and the list.
func buildTree(w, h int) (*wnd.Window, *wnd.Window) {
	const titleHeight, sidebarWidth = 28, 140

	top := wnd.NewWindow(wnd.KindMulti, nil)
	top.SetBackground(color.RGBA{32, 34, 40, 255})

	title := wnd.NewWindow(wnd.KindLeaf, wnd.Figures{
		figure.NewText(geom.Pt(10, 8), "wnd demo", color.White),
	})
	title.SetBackground(color.RGBA{58, 92, 160, 255})
	mustAdd(top, title, geom.R(0, 0, w, titleHeight))

	sidebar := wnd.NewWindow(wnd.KindLeaf, sidebarContent())
	sidebar.SetBackground(color.RGBA{44, 47, 56, 255})
	mustAdd(top, sidebar, geom.R(0, titleHeight, sidebarWidth, h-titleHeight))

	list := wnd.NewWindow(wnd.KindLeaf, listContent(w-sidebarWidth, 60))
	list.SetBackground(color.RGBA{250, 250, 250, 255})
	mustAdd(top, list, geom.R(sidebarWidth, titleHeight, w-sidebarWidth, h-titleHeight))
	list.AllocateLayer()

	return top, list
}

func sidebarContent() wnd.Figures {
	var fs wnd.Figures
	for i, name := range []string{"Inbox", "Drafts", "Sent", "Archive"} {
		y := 12 + i*26
		fs = append(fs,
			figure.Circle(geom.Pt(16, y+6), 5, color.RGBA{120, 200, 120, 255}),
			figure.NewText(geom.Pt(28, y), name, color.RGBA{220, 220, 220, 255}),
		)
	}
	return fs
}

// listContent lays out n rows of width w.
func listContent(w, n int) wnd.Figures {
	const rowHeight = 36
	fs := wnd.Figures{&figure.Background{Rect: geom.R(0, 0, w, n*rowHeight)}}
	for i := range n {
		y := i * rowHeight
		fill := color.RGBA{255, 255, 255, 255}
		if i%2 == 1 {
			fill = color.RGBA{238, 241, 246, 255}
		}
		fs = append(fs,
			&figure.Rectangle{Rect: geom.R(0, y, w, rowHeight), Fill: fill},
			&figure.RoundedRectangle{Rect: geom.R(8, y+6, 24, 24), Radius: 6, Fill: color.RGBA{uint8(40 * (i % 6)), 120, 200, 255}},
			figure.NewText(geom.Pt(42, y+12), fmt.Sprintf("Message %d", i+1), color.Black),
			&figure.Line{From: geom.Pt(0, y+rowHeight-1), To: geom.Pt(w, y+rowHeight-1), Width: 1, Color: color.RGBA{210, 214, 222, 255}},
		)
	}
	return fs
}

func mustAdd(parent, child *wnd.Window, r geom.Rect) {
	if err := parent.AddChild(child, r); err != nil {
		log.Fatal(err)
	}
}

func savePNG(path string, s surface.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Snapshot()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
