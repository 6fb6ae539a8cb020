package hilbert

import "github.com/soypat/glgl/math/ms2"

// base is the order 0 curve: three sides of the unit square centered at the origin.
var base = [4]ms2.Vec{
	{X: -0.5, Y: -0.5},
	{X: -0.5, Y: 0.5},
	{X: 0.5, Y: 0.5},
	{X: 0.5, Y: -0.5},
}

// Curve returns the Hilbert curve of the given recursion order as a freshly
// allocated polyline of 4^(order+1) points. Points lie on a square grid of
// spacing 2^-order centered at the origin, with extent ±(1 - 2^-(order+1)).
// Consecutive points are joined by horizontal or vertical segments.
//
// Curve panics on negative order. Orders above MaxOrder panic with an error
// wrapping ErrAlloc.
func Curve(order int) Polyline {
	n := NumPoints(order)
	verts := make(Polyline, n)
	copy(verts, base[:])
	for prev := len(base); prev < n; prev *= 4 {
		// Lay out four copies of the previous order's curve, then move each
		// copy into its quadrant. The quarter is picked by index alone.
		for q := 1; q < 4; q++ {
			copy(verts[q*prev:], verts[:prev])
		}
		subdivide(verts[:4*prev], prev)
	}
	return verts
}

// subdivide transforms the four quarters of verts, each of length quarterLen,
// into the quadrants of the unit square and halves the result.
func subdivide(verts Polyline, quarterLen int) {
	for i, v := range verts {
		switch i / quarterLen {
		case 0:
			// Mirror about y=x, bottom left.
			v = ms2.Vec{X: v.Y - 1, Y: v.X - 1}
		case 1:
			v = ms2.Vec{X: v.X - 1, Y: v.Y + 1}
		case 2:
			v = ms2.Vec{X: v.X + 1, Y: v.Y + 1}
		case 3:
			// Mirror about y=-x, bottom right.
			v = ms2.Vec{X: -v.Y + 1, Y: -v.X - 1}
		}
		verts[i] = ms2.Scale(0.5, v)
	}
}
