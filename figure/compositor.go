// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package figure

import (
	"errors"
	"fmt"

	"github.com/gogpu/wnd/geom"
	"github.com/gogpu/wnd/surface"
)

// ErrUnbalanced is returned when a queue with open groups is composited.
var ErrUnbalanced = errors.New("figure: queue has unclosed groups")

// Stats counts the work done by one Draw call.
type Stats struct {
	Draws         int // figures handed to the surface
	Culled        int // figures outside the current clip
	Groups        int // groups entered
	SkippedGroups int // groups jumped over because their clip was empty
}

// Add returns the sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Draws:         s.Draws + o.Draws,
		Culled:        s.Culled + o.Culled,
		Groups:        s.Groups + o.Groups,
		SkippedGroups: s.SkippedGroups + o.SkippedGroups,
	}
}

// scope is one level of the compositor's offset and clip stack.
type scope struct {
	offset geom.Vector
	clip   geom.Rect
}

// Compositor replays figure queues onto surfaces. The zero value is ready
// to use. A Compositor reuses its stack between calls and must not be used
// concurrently.
type Compositor struct {
	stack []scope
}

// NewCompositor creates a compositor.
func NewCompositor() *Compositor {
	return &Compositor{stack: make([]scope, 0, 16)}
}

// Draw composites q onto s in a single pass.
//
// The initial scope is the surface's current clip with a zero offset. A
// draw item is issued with the accumulated offset only if its region
// intersects the current clip. A begin marker narrows the clip to
// current ∩ (group clip + current offset); if that is empty the whole group,
// nested groups included, is skipped. Every entered group is mirrored on the
// surface with PushClip and PopClip.
func (c *Compositor) Draw(s surface.Surface, q *Queue) (Stats, error) {
	var st Stats
	if !q.Balanced() {
		return st, ErrUnbalanced
	}

	c.stack = c.stack[:0]
	cur := scope{clip: s.Clip()}
	entries := q.Entries()

	for i := 0; i < len(entries); i++ {
		e := &entries[i]
		switch e.Kind {
		case KindDraw:
			off := cur.offset.Add(e.Offset)
			if !e.Figure.Region().Offset(off).Intersects(cur.clip) {
				st.Culled++
				continue
			}
			e.Figure.DrawOn(s, off)
			st.Draws++

		case KindBegin:
			clip := cur.clip.Intersect(e.Clip.Offset(cur.offset))
			if clip.IsEmpty() {
				st.SkippedGroups++
				i = e.Match
				continue
			}
			c.stack = append(c.stack, cur)
			cur = scope{offset: cur.offset.Add(e.Offset), clip: clip}
			s.PushClip(clip)
			st.Groups++

		case KindEnd:
			last := len(c.stack) - 1
			cur = c.stack[last]
			c.stack = c.stack[:last]
			s.PopClip()
		}
	}

	if err := s.Flush(); err != nil {
		return st, fmt.Errorf("figure: flush: %w", err)
	}
	return st, nil
}
