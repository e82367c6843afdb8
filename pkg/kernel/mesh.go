package kernel

import "gonum.org/v1/gonum/spatial/r3"

// FaceMesh is the triangulation of a single face: a local point array
// and triangles indexing into it. Point order and triangle order are
// deterministic for a given shape and deflection.
type FaceMesh struct {
	Points    []r3.Vec
	Triangles [][3]int
}

// PointCount returns the number of points in the face mesh.
func (fm FaceMesh) PointCount() int {
	return len(fm.Points)
}

// TriangleCount returns the number of triangles in the face mesh.
func (fm FaceMesh) TriangleCount() int {
	return len(fm.Triangles)
}

// IsEmpty returns true if the face mesh has no geometry.
func (fm FaceMesh) IsEmpty() bool {
	return len(fm.Points) == 0
}
