// Package hilbert generates the Hilbert space-filling curve as a polyline
// and extrudes it into a triangle strip ribbon for drawing on the GPU.
package hilbert

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// MaxOrder is the largest recursion order whose strip vertex count
// fits in an int32, the vertex count type of GL draw calls.
const MaxOrder = 13

// ErrAlloc is wrapped by the panic value of Curve and NumPoints when the
// requested curve cannot be allocated.
var ErrAlloc = errors.New("hilbert: vertex buffer allocation failed")

// Polyline is an open path of connected points.
type Polyline []ms2.Vec

// Clone returns a copy of the polyline. Extrude mutates the endpoints of the
// polyline it is given, so callers that keep the curve should extrude a clone.
func (p Polyline) Clone() Polyline {
	return append(Polyline(nil), p...)
}

// Strip is a triangle strip ribbon. Vertices are stored as left/right
// pairs, one pair per polyline point.
type Strip []ms2.Vec

// Pair returns the left and right vertices emitted for polyline point i.
func (s Strip) Pair(i int) (left, right ms2.Vec) {
	return s[2*i], s[2*i+1]
}

// NumSegments returns the number of polyline segments the strip was
// extruded from.
func NumSegments(s Strip) int {
	return len(s)/2 - 1
}

// NumPoints returns the number of points of a curve of the given order, 4^(order+1).
func NumPoints(order int) int {
	if order < 0 {
		panic("hilbert: negative order")
	}
	if order > MaxOrder {
		panic(fmt.Errorf("%w: order %d too large", ErrAlloc, order))
	}
	return 1 << (2 * (order + 1))
}

// HalfWidth returns the default ribbon half width for a curve of the given
// order. It is a quarter of the spacing between adjacent curve points.
func HalfWidth(order int) float32 {
	return math32.Ldexp(0.25, -order)
}

// AxisAligned reports whether every segment of p is horizontal or vertical.
// Degenerate zero length segments are accepted. Extrude only produces a
// uniform width ribbon for axis aligned polylines.
func AxisAligned(p Polyline) bool {
	for i := 1; i < len(p); i++ {
		d := ms2.Sub(p[i], p[i-1])
		if d.X != 0 && d.Y != 0 {
			return false
		}
	}
	return true
}
