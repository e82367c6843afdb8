package kernel

import "gonum.org/v1/gonum/spatial/r3"

// Face is a planar triangular face. The stored point order defines
// the face's winding; when Reversed is set the effective orientation
// is flipped, and tessellation emits the triangle as (v1, v3, v2) so
// the outward normal is preserved regardless of the flag.
type Face struct {
	attr     Attrs
	P        [3]r3.Vec
	Reversed bool
}

// MakeFace constructs a planar triangular face from three points.
// The face may be degenerate (zero area); callers that cannot accept
// degenerate faces must check Area.
func MakeFace(a, b, c r3.Vec) *Face {
	return &Face{P: [3]r3.Vec{a, b, c}}
}

// Attrs returns the face's mutable display attributes.
func (f *Face) Attrs() *Attrs { return &f.attr }

// Area returns the face area.
func (f *Face) Area() float64 {
	e1 := r3.Sub(f.P[1], f.P[0])
	e2 := r3.Sub(f.P[2], f.P[0])
	return r3.Norm(r3.Cross(e1, e2)) / 2
}

// Normal returns the unit normal of the face's effective orientation,
// or the zero vector for a degenerate face.
func (f *Face) Normal() r3.Vec {
	n := r3.Cross(r3.Sub(f.P[1], f.P[0]), r3.Sub(f.P[2], f.P[0]))
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	n = r3.Unit(n)
	if f.Reversed {
		n = r3.Scale(-1, n)
	}
	return n
}

// corners returns the face corners in effective winding order.
func (f *Face) corners() [3]r3.Vec {
	if f.Reversed {
		return [3]r3.Vec{f.P[0], f.P[2], f.P[1]}
	}
	return f.P
}

// Triangulate returns the face as a single-triangle mesh. A planar
// face meets any deflection with one triangle, so the tolerances are
// not consulted.
func (f *Face) Triangulate(linear, angular float64, parallel bool) ([]FaceMesh, error) {
	tri := [3]int{0, 1, 2}
	if f.Reversed {
		tri = [3]int{0, 2, 1}
	}
	return []FaceMesh{{
		Points:    []r3.Vec{f.P[0], f.P[1], f.P[2]},
		Triangles: [][3]int{tri},
	}}, nil
}
