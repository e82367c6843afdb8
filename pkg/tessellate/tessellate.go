// Package tessellate flattens a shape's per-face triangulations into
// a single raw vertex and triangle soup with shape-global indices.
// The soup typically contains duplicate vertices where faces meet; the
// mesher welds them afterwards.
package tessellate

import (
	"fmt"

	"github.com/chazu/resin/pkg/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tessellate meshes the shape within the linear and angular deflection
// tolerances and concatenates the per-face results, offsetting each
// face's triangle indices by the vertices accumulated before it. The
// output order is deterministic (face order, then within-face order)
// whether or not faces are meshed in parallel.
func Tessellate(s kernel.Shape, linear, angular float64, parallel bool) ([]r3.Vec, [][3]int, error) {
	if s == nil {
		return nil, nil, nil
	}
	faces, err := s.Triangulate(linear, angular, parallel)
	if err != nil {
		return nil, nil, fmt.Errorf("tessellate: %w", err)
	}

	var (
		points    []r3.Vec
		triangles [][3]int
		offset    int
	)
	for _, fm := range faces {
		points = append(points, fm.Points...)
		for _, t := range fm.Triangles {
			triangles = append(triangles, [3]int{t[0] + offset, t[1] + offset, t[2] + offset})
		}
		offset += len(fm.Points)
	}
	return points, triangles, nil
}
