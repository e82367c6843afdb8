package kernel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// maxSegments caps the facet count of revolved primitives so a very
// small deflection cannot request an unbounded tessellation.
const maxSegments = 512

// Box constructs an axis-aligned rectangular solid with its minimum
// corner at the origin, so placement translations work intuitively.
// The twelve triangular faces are sewn into a single closed shell.
func Box(x, y, z float64) *Solid {
	var faces []*Face
	quad := func(a, b, c, d r3.Vec) {
		faces = append(faces, MakeFace(a, b, c), MakeFace(a, c, d))
	}
	p := func(i, j, k float64) r3.Vec { return r3.Vec{X: i, Y: j, Z: k} }
	quad(p(0, 0, 0), p(0, y, 0), p(x, y, 0), p(x, 0, 0)) // bottom, -z
	quad(p(0, 0, z), p(x, 0, z), p(x, y, z), p(0, y, z)) // top, +z
	quad(p(0, 0, 0), p(x, 0, 0), p(x, 0, z), p(0, 0, z)) // front, -y
	quad(p(0, y, 0), p(0, y, z), p(x, y, z), p(x, y, 0)) // back, +y
	quad(p(0, 0, 0), p(0, 0, z), p(0, y, z), p(0, y, 0)) // left, -x
	quad(p(x, 0, 0), p(x, y, 0), p(x, y, z), p(x, 0, z)) // right, +x
	return MakeSolid(Sew(faces, Tolerance)...)
}

// Cylinder is a parametric right circular cylinder along the Z axis
// with its base circle centered at the origin. Unlike Box it is not
// pre-faceted: the facet count is derived from the deflection
// tolerances at tessellation time.
type Cylinder struct {
	attr   Attrs
	Radius float64
	Height float64
}

// Attrs returns the cylinder's mutable display attributes.
func (c *Cylinder) Attrs() *Attrs { return &c.attr }

// Segments returns the number of circular facets needed to meet the
// given deflections: the angular deflection bounds the arc per facet,
// the linear deflection bounds the sagitta of each chord.
func (c *Cylinder) Segments(linear, angular float64) int {
	n := 3
	if angular > 0 {
		if m := int(math.Ceil(2 * math.Pi / angular)); m > n {
			n = m
		}
	}
	if linear > 0 && linear < c.Radius {
		if m := int(math.Ceil(math.Pi / math.Acos(1-linear/c.Radius))); m > n {
			n = m
		}
	}
	if n > maxSegments {
		n = maxSegments
	}
	return n
}

// Triangulate facets the cylinder: one quad face mesh per side
// segment and one triangle fan per cap.
func (c *Cylinder) Triangulate(linear, angular float64, parallel bool) ([]FaceMesh, error) {
	n := c.Segments(linear, angular)
	ring := func(z float64) []r3.Vec {
		pts := make([]r3.Vec, n)
		for i := 0; i < n; i++ {
			t := 2 * math.Pi * float64(i) / float64(n)
			pts[i] = r3.Vec{X: c.Radius * math.Cos(t), Y: c.Radius * math.Sin(t), Z: z}
		}
		return pts
	}
	bottom := ring(0)
	top := ring(c.Height)

	out := make([]FaceMesh, 0, n+2)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		out = append(out, FaceMesh{
			Points:    []r3.Vec{bottom[i], bottom[j], top[j], top[i]},
			Triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
		})
	}
	out = append(out, capFan(r3.Vec{}, bottom, false))
	out = append(out, capFan(r3.Vec{Z: c.Height}, top, true))
	return out, nil
}

// capFan builds a triangle fan over a ring around a center point. The
// up flag selects the winding so the fan's normal points away from
// the cylinder body.
func capFan(center r3.Vec, ring []r3.Vec, up bool) FaceMesh {
	n := len(ring)
	pts := make([]r3.Vec, 0, n+1)
	pts = append(pts, center)
	pts = append(pts, ring...)
	tris := make([][3]int, 0, n)
	for i := 0; i < n; i++ {
		j := (i+1)%n + 1
		if up {
			tris = append(tris, [3]int{0, i + 1, j})
		} else {
			tris = append(tris, [3]int{0, j, i + 1})
		}
	}
	return FaceMesh{Points: pts, Triangles: tris}
}
