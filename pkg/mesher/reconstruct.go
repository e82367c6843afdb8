package mesher

import (
	"errors"
	"fmt"

	"github.com/chazu/resin/pkg/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// minFaceArea is the area below which a reconstructed triangular face
// is treated as zero-area and discarded. Meshes from third-party
// tools may contain such facets even though the exporter's own
// filtering never emits them.
const minFaceArea = 1e-12

// Reconstruct rebuilds shell and solid topology from an indexed
// triangle mesh. Faces are built per triangle, zero-area faces are
// discarded, and the survivors are sewn into shells at the library
// tolerance. The result is the richest topology the data supports:
//
//   - every sewn shell manifold: a single *kernel.Solid holding all
//     shells, so internal voids stay attached to their solid;
//   - one shell, not manifold: the open *kernel.Shell itself;
//   - several shells, not all manifold: a *kernel.Compound of shells.
//
// Topology problems never produce an error; callers needing a closed
// solid must check the result's type or manifold flag. Only malformed
// input errors: no vertices at all, or an index out of range.
func Reconstruct(points []r3.Vec, triangles [][3]int) (kernel.Shape, error) {
	if len(points) == 0 {
		return nil, errors.New("mesher: mesh has no vertices")
	}

	var faces []*kernel.Face
	for i, t := range triangles {
		for _, idx := range t {
			if idx < 0 || idx >= len(points) {
				return nil, fmt.Errorf("mesher: triangle %d references vertex %d of %d", i, idx, len(points))
			}
		}
		f := kernel.MakeFace(points[t[0]], points[t[1]], points[t[2]])
		if f.Area() <= minFaceArea {
			continue
		}
		faces = append(faces, f)
	}

	shells := kernel.Sew(faces, kernel.Tolerance)
	if len(shells) == 0 {
		return &kernel.Shell{}, nil
	}

	manifold := true
	for _, sh := range shells {
		if !sh.IsManifold() {
			manifold = false
			break
		}
	}
	if manifold {
		return kernel.MakeSolid(shells...), nil
	}
	if len(shells) == 1 {
		return shells[0], nil
	}
	comp := &kernel.Compound{}
	for _, sh := range shells {
		comp.Shapes = append(comp.Shapes, sh)
	}
	return comp, nil
}
