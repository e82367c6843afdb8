// Package kernel provides the geometry kernel behind the mesher:
// planar triangular faces, shells sewn from faces, solids promoted
// from closed shells, and tessellation of shapes into triangle soup.
// The kernel abstraction allows alternate shape backends (for example
// the SDF adapter in the sdfx subpackage) without changing the rest
// of the system.
package kernel

// Tolerance is the library-wide geometric tolerance, in model length
// units. Two points closer than this on every axis are considered
// coincident by the welding and sewing operations.
const Tolerance = 1e-4

// Shape is tessellatable geometry with display attributes.
// Implementations must not mutate the shape during Triangulate, so a
// shape can be shared and tessellated repeatedly without side effects.
type Shape interface {
	// Triangulate approximates the shape's boundary within the given
	// linear and angular deflection tolerances, producing one FaceMesh
	// per boundary face in deterministic face order. The parallel flag
	// permits meshing independent faces concurrently; it never changes
	// the result or its ordering.
	Triangulate(linear, angular float64, parallel bool) ([]FaceMesh, error)

	// Attrs returns the shape's mutable display attributes.
	Attrs() *Attrs
}

// Attrs holds the display attributes a shape can carry through mesh
// export and import.
type Attrs struct {
	Label string
	Color *Color // nil when the shape has no color
}
