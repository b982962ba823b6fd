// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wnd

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"github.com/gogpu/wnd/figure"
	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/internal/depthq"
	"github.com/gogpu/wnd/surface"
)

// desktopExtent is half the side of the root window's square extent.
const desktopExtent = 1 << 20

// Phase names a step of Desktop.Commit.
type Phase uint8

const (
	// PhaseReflow is the layout step.
	PhaseReflow Phase = iota

	// PhaseRedraw is the paint step.
	PhaseRedraw

	// PhaseComposite is the frame composition step.
	PhaseComposite
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReflow:
		return "Reflow"
	case PhaseRedraw:
		return "Redraw"
	case PhaseComposite:
		return "Composite"
	default:
		return "Unknown"
	}
}

// CommitObserver is called for every window Commit processes.
type CommitObserver func(phase Phase, w *Window)

// CommitStats describes the work done by the last Commit.
type CommitStats struct {
	Reflowed int          // windows laid out
	Redrawn  int          // windows whose invalid region was flushed
	Frames   int          // frames composited
	Figures  figure.Stats // compositor totals across frames
}

// frame binds a top-level window to a device surface. pending is the
// damaged area in desktop coordinates.
type frame struct {
	window  *Window
	surface surface.Surface
	pending geom.Region
}

// Desktop is the context a window tree is committed in. It owns the root
// window, the reflow and redraw queues, and the frames that present
// top-level windows on device surfaces.
//
// A Desktop is not safe for concurrent use. The event loop calls Commit
// once per batch of input, after every handler for the batch has run.
type Desktop struct {
	root   *Window
	reflow *depthq.Queue[*Window]
	redraw *depthq.Queue[*Window]
	frames []*frame

	// restack holds layers whose window lists changed since the last Commit.
	restack []*Layer

	opts       options
	queue      *figure.Queue
	compositor *figure.Compositor

	committing bool
	closed     bool
	stats      CommitStats
}

// NewDesktop creates an empty desktop.
func NewDesktop(opts ...Option) *Desktop {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Desktop{
		reflow:     depthq.New[*Window](),
		redraw:     depthq.New[*Window](),
		opts:       o,
		queue:      figure.NewQueue(),
		compositor: figure.NewCompositor(),
	}

	extent := geom.R(-desktopExtent, -desktopExtent, 2*desktopExtent, 2*desktopExtent)
	root := NewWindow(KindMulti, nil)
	root.accessible = extent
	root.regionOnParent = extent
	root.displayOffset = extent.Point()
	root.visible = extent
	root.desktop = d
	root.depth = 0
	d.root = root

	return d
}

// Root returns the root window. Its coordinates are desktop coordinates.
func (d *Desktop) Root() *Window { return d.root }

// AddFrame attaches w to the root at region, in desktop coordinates, and
// presents it on s. The surface origin maps to the top-left corner of
// region.
func (d *Desktop) AddFrame(w *Window, region geom.Rect, s surface.Surface) error {
	if d.closed {
		return ErrClosed
	}
	if w == nil {
		return ErrNilWindow
	}
	if w.frame != nil || w.parent != nil {
		return ErrHasParent
	}
	f := &frame{window: w, surface: s}
	w.frame = f
	if err := d.root.AddChild(w, region); err != nil {
		w.frame = nil
		return err
	}
	d.frames = append(d.frames, f)
	Logger().Info("wnd: frame added", "region", region, "frames", len(d.frames))
	return nil
}

// RemoveFrame detaches a frame window from the desktop. Removing the
// window from the root directly has the same effect.
func (d *Desktop) RemoveFrame(w *Window) error {
	if w == nil || w.frame == nil || w.desktop != d {
		return ErrNotFrame
	}
	return d.root.RemoveChild(w)
}

// dropFrame unbinds f from its surface.
func (d *Desktop) dropFrame(f *frame) {
	i := slices.Index(d.frames, f)
	if i < 0 {
		return
	}
	d.frames = slices.Delete(d.frames, i, i+1)
	Logger().Info("wnd: frame removed", "frames", len(d.frames))
}

// Frames returns the frame windows in the order they were added.
func (d *Desktop) Frames() []*Window {
	out := make([]*Window, len(d.frames))
	for i, f := range d.frames {
		out[i] = f.window
	}
	return out
}

// Pending reports whether a Commit has work to do.
func (d *Desktop) Pending() bool {
	if d.reflow.Len() > 0 || d.redraw.Len() > 0 {
		return true
	}
	for _, f := range d.frames {
		if !f.pending.IsEmpty() {
			return true
		}
	}
	return false
}

// Stats returns the statistics of the last Commit.
func (d *Desktop) Stats() CommitStats { return d.stats }

// Commit brings every frame up to date.
//
// The reflow queue drains first, then the redraw queue, each in ascending
// depth. Windows queued during a drain are processed in the same Commit.
// Finally every frame with damage is composited onto its surface: the
// damaged area is reset to the clear color and the tree is replayed into
// it. Errors from individual frames are joined; frames that fail keep
// their damage for the next Commit.
func (d *Desktop) Commit() error {
	if d.closed {
		return ErrClosed
	}
	if d.committing {
		return ErrCommitInProgress
	}
	d.committing = true
	defer func() { d.committing = false }()

	var stats CommitStats
	d.reflow.Drain(reflowHandle, func(w *Window, _ int) {
		d.observe(PhaseReflow, w)
		w.reflow()
		stats.Reflowed++
	})

	d.restackLayers()

	var errs []error
	d.redraw.Drain(redrawHandle, func(w *Window, _ int) {
		d.observe(PhaseRedraw, w)
		if err := w.redraw(); err != nil {
			errs = append(errs, fmt.Errorf("wnd: redraw: %w", err))
		}
		stats.Redrawn++
	})

	for _, f := range d.frames {
		if f.pending.IsEmpty() {
			continue
		}
		d.observe(PhaseComposite, f.window)
		fs, err := d.compositeFrame(f)
		if err != nil {
			Logger().Warn("wnd: frame composition failed", "region", f.window.regionOnParent, "err", err)
			errs = append(errs, err)
			continue
		}
		stats.Frames++
		stats.Figures = stats.Figures.Add(fs)
	}

	d.stats = stats
	Logger().Debug("wnd: commit",
		"reflowed", stats.Reflowed,
		"redrawn", stats.Redrawn,
		"frames", stats.Frames,
		"draws", stats.Figures.Draws,
		"culled", stats.Figures.Culled,
		"skipped_groups", stats.Figures.SkippedGroups)
	return errors.Join(errs...)
}

func (d *Desktop) compositeFrame(f *frame) (figure.Stats, error) {
	damage := f.pending.Take()
	w := f.window
	bounds := damage.BoundingRect().Intersect(w.regionOnParent)
	if bounds.IsEmpty() {
		return figure.Stats{}, nil
	}
	origin := geom.Vec(-w.regionOnParent.X, -w.regionOnParent.Y)

	d.queue.Reset()
	if err := w.Composite(d.queue, origin, bounds); err != nil {
		f.pending.UnionRegion(damage)
		return figure.Stats{}, fmt.Errorf("wnd: composite frame: %w", err)
	}

	s := f.surface
	s.PushClip(bounds.Offset(origin))
	defer s.PopClip()
	s.Clear(d.clearColor())
	fs, err := d.compositor.Draw(s, d.queue)
	if err != nil {
		f.pending.UnionRegion(damage)
		return fs, err
	}
	return fs, nil
}

// restackLayers rebuilds the window lists of changed layers. Layers whose
// tiles no longer match the lists are queued for redraw.
func (d *Desktop) restackLayers() {
	for _, l := range d.restack {
		if l.queuedOn != d {
			continue
		}
		l.queuedOn = nil
		if l.owner.layer == l {
			l.refresh()
		}
	}
	clear(d.restack)
	d.restack = d.restack[:0]
}

func (d *Desktop) clearColor() color.Color {
	if d.opts.clearColor == nil {
		return color.Transparent
	}
	return d.opts.clearColor
}

func (d *Desktop) observe(p Phase, w *Window) {
	if d.opts.observer != nil {
		d.opts.observer(p, w)
	}
}

// Close detaches every frame and empties both queues. Commit returns
// ErrClosed afterwards.
func (d *Desktop) Close() {
	if d.closed {
		return
	}
	for len(d.frames) > 0 {
		_ = d.RemoveFrame(d.frames[len(d.frames)-1].window)
	}
	for _, c := range slices.Clone(d.root.children) {
		_ = d.root.RemoveChild(c)
	}
	d.reflow.Clear(reflowHandle)
	d.redraw.Clear(redrawHandle)
	for _, l := range d.restack {
		if l.queuedOn == d {
			l.queuedOn = nil
		}
	}
	d.restack = nil
	d.closed = true
	Logger().Info("wnd: desktop closed")
}

func reflowHandle(w *Window) *depthq.Handle { return &w.reflowHandle }

func redrawHandle(w *Window) *depthq.Handle { return &w.redrawHandle }
