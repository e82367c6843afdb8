// Package sdfx adapts solids from the github.com/deadsy/sdfx SDF-based
// CAD library to the kernel.Shape interface, so signed-distance models
// can be exported through the same mesh pipeline as BRep shapes.
package sdfx

import (
	"github.com/chazu/resin/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Compile-time interface check.
var _ kernel.Shape = (*Solid)(nil)

// Marching cubes resolution bounds. The cell count is derived from
// the linear deflection but kept within these limits.
const (
	minMeshCells = 16
	maxMeshCells = 200
)

// Solid wraps an sdf.SDF3 as a tessellatable shape.
type Solid struct {
	attr kernel.Attrs
	s    sdf.SDF3
}

// Wrap creates a kernel shape from an sdf.SDF3.
func Wrap(s sdf.SDF3) *Solid {
	return &Solid{s: s}
}

// SDF returns the underlying signed distance field.
func (s *Solid) SDF() sdf.SDF3 { return s.s }

// Attrs returns the solid's mutable display attributes.
func (s *Solid) Attrs() *kernel.Attrs { return &s.attr }

// Triangulate meshes the SDF with uniform marching cubes. The cell
// count grows as the linear deflection shrinks relative to the solid's
// bounding box. An SDF has no face structure, so the whole triangle
// soup is returned as a single face mesh; the angular deflection and
// parallel flag have no effect here.
func (s *Solid) Triangulate(linear, angular float64, parallel bool) ([]kernel.FaceMesh, error) {
	cells := meshCells(s.s, linear)
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s.s, renderer)
	if len(triangles) == 0 {
		return nil, nil
	}

	fm := kernel.FaceMesh{
		Points:    make([]r3.Vec, 0, len(triangles)*3),
		Triangles: make([][3]int, 0, len(triangles)),
	}
	for i, tri := range triangles {
		for j := 0; j < 3; j++ {
			v := tri[j]
			fm.Points = append(fm.Points, r3.Vec{X: v.X, Y: v.Y, Z: v.Z})
		}
		fm.Triangles = append(fm.Triangles, [3]int{i * 3, i*3 + 1, i*3 + 2})
	}
	return []kernel.FaceMesh{fm}, nil
}

// meshCells picks the marching cubes grid resolution for the solid's
// largest bounding box dimension at the given linear deflection.
func meshCells(s sdf.SDF3, linear float64) int {
	bb := s.BoundingBox()
	size := bb.Max.Sub(bb.Min)
	maxDim := size.X
	if size.Y > maxDim {
		maxDim = size.Y
	}
	if size.Z > maxDim {
		maxDim = size.Z
	}
	if linear <= 0 || maxDim <= 0 {
		return maxMeshCells
	}
	cells := int(maxDim / linear)
	if cells < minMeshCells {
		return minMeshCells
	}
	if cells > maxMeshCells {
		return maxMeshCells
	}
	return cells
}
