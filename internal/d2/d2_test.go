package d2

import (
	"math"
	"testing"

	"github.com/soypat/glgl/math/ms2"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestSetBoundsAndLength(t *testing.T) {
	const tol = 1e-12
	s := Points([]ms2.Vec{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: -4}, {X: 0, Y: 0}})
	bb := s.Bounds()
	want := Box{Min: r2.Vec{X: 0, Y: -4}, Max: r2.Vec{X: 3, Y: 0}}
	if !bb.Equals(want, tol) {
		t.Errorf("got bounds %v, want %v", bb, want)
	}
	if got := s.Length(); math.Abs(got-12) > tol {
		t.Errorf("got length %g, want 12", got)
	}
	if !bb.Contains(bb.Center()) {
		t.Error("box does not contain its center")
	}
	if bb.Contains(r2.Vec{X: 3.5}) {
		t.Error("box contains point outside bounds")
	}
}

func TestSegmentsShortSet(t *testing.T) {
	if seg := Points([]ms2.Vec{{X: 1, Y: 1}}).Segments(); seg != nil {
		t.Errorf("single point got segments %v", seg)
	}
	if l := (Set{}).Length(); l != 0 {
		t.Errorf("empty set got length %g", l)
	}
}
