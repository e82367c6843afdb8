package mesher

import (
	"errors"
	"fmt"

	"github.com/hpinc/go3mf"
)

// validateMesh checks the structural validity of a mesh resource:
// at least three vertices and one triangle, every index in range, and
// no triangle with repeated corners. Failure here is fatal to the
// export call.
func validateMesh(mesh *go3mf.Mesh) error {
	n := len(mesh.Vertices.Vertex)
	if n < 3 {
		return fmt.Errorf("mesh has %d vertices, need at least 3", n)
	}
	if len(mesh.Triangles.Triangle) == 0 {
		return errors.New("mesh has no triangles")
	}
	for i, t := range mesh.Triangles.Triangle {
		if int(t.V1) >= n || int(t.V2) >= n || int(t.V3) >= n {
			return fmt.Errorf("triangle %d references vertex out of range", i)
		}
		if t.V1 == t.V2 || t.V2 == t.V3 || t.V3 == t.V1 {
			return fmt.Errorf("triangle %d has repeated vertices", i)
		}
	}
	return nil
}

// manifoldAndOriented reports whether every edge of the mesh is
// shared by exactly two triangles traversing it in opposite
// directions.
func manifoldAndOriented(mesh *go3mf.Mesh) bool {
	type edge struct{ a, b uint32 }
	counts := make(map[edge]int)
	add := func(from, to uint32) {
		if from < to {
			counts[edge{from, to}]++
		} else {
			counts[edge{to, from}] += 1 << 16
		}
	}
	for _, t := range mesh.Triangles.Triangle {
		add(t.V1, t.V2)
		add(t.V2, t.V3)
		add(t.V3, t.V1)
	}
	for _, c := range counts {
		if c != 1+1<<16 {
			return false
		}
	}
	return len(counts) > 0
}
