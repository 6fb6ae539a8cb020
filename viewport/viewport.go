// Package viewport implements pan and zoom interaction state for viewing
// a 2D model in normalized device coordinates.
package viewport

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

const (
	// MinScale and MaxScale bound the zoom factor.
	MinScale = 0.25
	MaxScale = 200
	// ZoomStep is the zoom factor applied per scroll wheel notch.
	ZoomStep = 1.1
)

// State is the viewport's zoom and pan state. Input handlers take a State
// and return the updated one; the zero value is not useful, use New.
type State struct {
	// Scale is the zoom factor applied after translation.
	Scale float32
	// Translate is the pan offset in model coordinates.
	Translate ms2.Vec

	dragging bool
	// last cursor position in window pixels while dragging.
	last ms2.Vec
}

// New returns an unzoomed, centered viewport.
func New() State {
	return State{Scale: 1}
}

// Scroll zooms by ZoomStep per unit of vertical scroll offset.
func (s State) Scroll(yoffset float64) State {
	s.Scale *= math32.Pow(ZoomStep, float32(yoffset))
	s.Scale = math32.Max(MinScale, math32.Min(s.Scale, MaxScale))
	return s
}

// Press starts a drag at cursor, in window pixels.
func (s State) Press(cursor ms2.Vec) State {
	s.dragging = true
	s.last = cursor
	return s
}

// Release ends a drag.
func (s State) Release() State {
	s.dragging = false
	return s
}

// Dragging reports whether a drag is in progress.
func (s State) Dragging() bool { return s.dragging }

// Move pans the view by the cursor displacement since the last event when
// dragging. window is the window size in pixels. Pixel displacement is
// converted to normalized device units and divided by Scale so the model
// follows the cursor at any zoom. Window y grows downward.
func (s State) Move(cursor, window ms2.Vec) State {
	if !s.dragging || window.X <= 0 || window.Y <= 0 {
		return s
	}
	d := ms2.Sub(cursor, s.last)
	d = ms2.Vec{X: d.X * 2 / window.X, Y: -d.Y * 2 / window.Y}
	s.Translate = ms2.Add(s.Translate, ms2.Scale(1/s.Scale, d))
	s.last = cursor
	return s
}

// Transform maps model point p to normalized device coordinates for a
// framebuffer of the given resolution. The shorter framebuffer side spans
// [-1, 1] so the model keeps its aspect ratio.
func (s State) Transform(p, resolution ms2.Vec) ms2.Vec {
	q := ms2.Scale(s.Scale, ms2.Add(p, s.Translate))
	if resolution.X <= 0 || resolution.Y <= 0 {
		return q
	}
	if resolution.X > resolution.Y {
		q.X *= resolution.Y / resolution.X
	} else {
		q.Y *= resolution.X / resolution.Y
	}
	return q
}
