package viewport

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

func TestScroll(t *testing.T) {
	const tol = 1e-5
	for _, test := range []struct {
		offsets []float64
		want    float32
	}{
		{offsets: []float64{1}, want: 1.1},
		{offsets: []float64{-1}, want: 1 / 1.1},
		{offsets: []float64{2, -2}, want: 1},
		{offsets: []float64{100}, want: MaxScale},
		{offsets: []float64{-100}, want: MinScale},
		{offsets: []float64{-100, 1}, want: MinScale * 1.1},
	} {
		s := New()
		for _, off := range test.offsets {
			s = s.Scroll(off)
		}
		if math32.Abs(s.Scale-test.want) > tol {
			t.Errorf("scroll %v: got scale %g, want %g", test.offsets, s.Scale, test.want)
		}
	}
}

func TestDrag(t *testing.T) {
	window := ms2.Vec{X: 800, Y: 800}
	s := New()
	s = s.Move(ms2.Vec{X: 500, Y: 500}, window)
	if s.Translate != (ms2.Vec{}) {
		t.Fatalf("moved without press: %v", s.Translate)
	}
	s = s.Press(ms2.Vec{X: 100, Y: 100})
	if !s.Dragging() {
		t.Fatal("not dragging after press")
	}
	s = s.Move(ms2.Vec{X: 150, Y: 100}, window)
	if want := (ms2.Vec{X: 0.125}); s.Translate != want {
		t.Fatalf("got translate %v, want %v", s.Translate, want)
	}
	// Moving the cursor down moves the model down.
	s = s.Move(ms2.Vec{X: 150, Y: 200}, window)
	if want := (ms2.Vec{X: 0.125, Y: -0.25}); s.Translate != want {
		t.Fatalf("got translate %v, want %v", s.Translate, want)
	}
	s = s.Release()
	before := s.Translate
	s = s.Move(ms2.Vec{X: 0, Y: 0}, window)
	if s.Dragging() || s.Translate != before {
		t.Fatalf("moved after release: %v", s.Translate)
	}
}

func TestDragScaled(t *testing.T) {
	s := New()
	s.Scale = 2
	s = s.Press(ms2.Vec{X: 0, Y: 0})
	s = s.Move(ms2.Vec{X: 100, Y: 0}, ms2.Vec{X: 400, Y: 200})
	if want := (ms2.Vec{X: 0.25}); s.Translate != want {
		t.Errorf("got translate %v, want %v", s.Translate, want)
	}
}

func TestMoveZeroWindow(t *testing.T) {
	s := New().Press(ms2.Vec{})
	s = s.Move(ms2.Vec{X: 10, Y: 10}, ms2.Vec{X: 0, Y: 600})
	if s.Translate != (ms2.Vec{}) {
		t.Errorf("got translate %v for zero width window", s.Translate)
	}
}

func TestValueSemantics(t *testing.T) {
	s := New()
	zoomed := s.Scroll(3)
	if s.Scale != 1 {
		t.Errorf("original state mutated: scale %g", s.Scale)
	}
	if zoomed.Scale <= 1 {
		t.Errorf("got scale %g after zooming in", zoomed.Scale)
	}
}

func TestTransform(t *testing.T) {
	s := New()
	s.Translate = ms2.Vec{X: 0.5, Y: -0.5}
	s.Scale = 2
	for _, test := range []struct {
		p, res, want ms2.Vec
	}{
		{p: ms2.Vec{}, res: ms2.Vec{X: 100, Y: 100}, want: ms2.Vec{X: 1, Y: -1}},
		{p: ms2.Vec{X: -0.5, Y: 0.5}, res: ms2.Vec{X: 100, Y: 100}, want: ms2.Vec{}},
		{p: ms2.Vec{X: 0.5, Y: 1}, res: ms2.Vec{X: 800, Y: 400}, want: ms2.Vec{X: 1, Y: 1}},
		{p: ms2.Vec{X: 0.5, Y: 1}, res: ms2.Vec{X: 400, Y: 800}, want: ms2.Vec{X: 2, Y: 0.5}},
		{p: ms2.Vec{X: 0.5, Y: 1}, res: ms2.Vec{}, want: ms2.Vec{X: 2, Y: 1}},
	} {
		if got := s.Transform(test.p, test.res); got != test.want {
			t.Errorf("Transform(%v, %v): got %v, want %v", test.p, test.res, got, test.want)
		}
	}
}
