package d2

import (
	"math"

	"github.com/soypat/glgl/math/ms2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Vec converts a float32 vertex to float64 precision.
func Vec(v ms2.Vec) r2.Vec {
	return r2.Vec{X: float64(v.X), Y: float64(v.Y)}
}

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Set is an ordered set of points, usually the vertices of a path.
type Set []r2.Vec

// Points converts float32 vertices to a Set.
func Points(verts []ms2.Vec) Set {
	s := make(Set, len(verts))
	for i, v := range verts {
		s[i] = Vec(v)
	}
	return s
}

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Bounds returns the smallest box containing all points. Panics on empty set.
func (a Set) Bounds() Box {
	return Box{Min: a.Min(), Max: a.Max()}
}

// Segments returns the length of each segment joining consecutive points.
func (a Set) Segments() []float64 {
	if len(a) < 2 {
		return nil
	}
	lengths := make([]float64, len(a)-1)
	for i := range lengths {
		lengths[i] = r2.Norm(r2.Sub(a[i+1], a[i]))
	}
	return lengths
}

// Length returns the length of the path through the points.
func (a Set) Length() float64 {
	return floats.Sum(a.Segments())
}
