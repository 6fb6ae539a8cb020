package hilbert

import "github.com/soypat/glgl/math/ms2"

// Extrude converts path into a triangle strip ribbon of half width w.
// Two vertices are emitted per path point, left then right of the path.
//
// The endpoints of path are first moved outward by CapEnds to square off
// the ribbon ends, so path is modified. Clone it beforehand if the
// original curve is still needed.
//
// Offsets are chosen by the sign of the segments adjacent to each point
// instead of a true perpendicular, which is only exact when all segments
// of path are axis aligned (see AxisAligned). A zero w is valid and
// produces a zero area strip lying on path.
func Extrude(path Polyline, w float32) Strip {
	CapEnds(path, w)
	strip := make(Strip, 2*len(path))
	for i, p := range path {
		in, out := adjacent(path, i)
		posY := in.Y > 0 || out.Y > 0
		negY := in.Y < 0 || out.Y < 0
		posX := in.X > 0 || out.X > 0
		negX := in.X < 0 || out.X < 0
		offset := ms2.Vec{
			X: -w*b2f(posY) + w*b2f(negY),
			Y: w*b2f(posX) - w*b2f(negX),
		}
		strip[2*i] = ms2.Add(p, offset)
		strip[2*i+1] = ms2.Sub(p, offset)
	}
	return strip
}

// CapEnds moves the endpoints of path in place by w to approximate square
// caps. On each axis the first point is pulled back when the first segment
// runs towards positive values. The last point is pushed towards positive x
// when the last segment runs towards positive x and towards negative y when
// it runs towards negative y.
func CapEnds(path Polyline, w float32) {
	n := len(path)
	if n < 2 {
		return
	}
	out := ms2.Sub(path[1], path[0])
	in := ms2.Sub(path[n-1], path[n-2])
	path[0].X -= w * b2f(out.X > 0)
	path[0].Y -= w * b2f(out.Y > 0)
	path[n-1].X += w * b2f(in.X > 0)
	path[n-1].Y -= w * b2f(in.Y < 0)
}

// adjacent returns the incoming and outgoing segment vectors at point i.
// The vector is zero where there is no segment.
func adjacent(path Polyline, i int) (in, out ms2.Vec) {
	if i > 0 {
		in = ms2.Sub(path[i], path[i-1])
	}
	if i < len(path)-1 {
		out = ms2.Sub(path[i+1], path[i])
	}
	return in, out
}

func b2f(b bool) float32 {
	if b {
		return 1
	}
	return 0
}
