package mesher

import (
	"math"
	"testing"

	"github.com/chazu/resin/pkg/kernel"
	"github.com/chazu/resin/pkg/tessellate"
	"gonum.org/v1/gonum/spatial/r3"
)

// cubeMesh returns an indexed unit cube mesh via tessellation and
// welding, the same path AddShape takes.
func cubeMesh(t *testing.T) ([]r3.Vec, [][3]int) {
	t.Helper()
	points, triangles, err := tessellate.Tessellate(kernel.Box(1, 1, 1), 0.001, 0.1, false)
	if err != nil {
		t.Fatalf("Tessellate() error = %v", err)
	}
	welded, table := Weld(points, kernel.Tolerance)
	return welded, FilterDegenerate(triangles, table)
}

func TestReconstructCube(t *testing.T) {
	points, triangles := cubeMesh(t)
	shape, err := Reconstruct(points, triangles)
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	solid, ok := shape.(*kernel.Solid)
	if !ok {
		t.Fatalf("Reconstruct() = %T, want *kernel.Solid", shape)
	}
	if len(solid.Shells) != 1 {
		t.Errorf("solid has %d shells, want 1", len(solid.Shells))
	}
	if v := solid.Volume(); math.Abs(v-1) > 1e-9 {
		t.Errorf("Volume() = %g, want 1", v)
	}
}

func TestReconstructOpenShell(t *testing.T) {
	points, triangles := cubeMesh(t)
	shape, err := Reconstruct(points, triangles[1:]) // one triangle missing
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	shell, ok := shape.(*kernel.Shell)
	if !ok {
		t.Fatalf("Reconstruct() = %T, want *kernel.Shell", shape)
	}
	if shell.IsClosed() {
		t.Error("shell with a missing triangle reports closed")
	}
	if shell.IsManifold() {
		t.Error("shell with a missing triangle reports manifold")
	}
}

func TestReconstructDisjointSolids(t *testing.T) {
	points, triangles := cubeMesh(t)

	// Second unit cube translated well away from the first.
	n := len(points)
	combined := make([]r3.Vec, 0, 2*n)
	combined = append(combined, points...)
	for _, p := range points {
		combined = append(combined, r3.Vec{X: p.X + 5, Y: p.Y, Z: p.Z})
	}
	allTris := make([][3]int, 0, 2*len(triangles))
	allTris = append(allTris, triangles...)
	for _, tri := range triangles {
		allTris = append(allTris, [3]int{tri[0] + n, tri[1] + n, tri[2] + n})
	}

	shape, err := Reconstruct(combined, allTris)
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	solid, ok := shape.(*kernel.Solid)
	if !ok {
		t.Fatalf("Reconstruct() = %T, want *kernel.Solid", shape)
	}
	if len(solid.Shells) != 2 {
		t.Errorf("solid has %d shells, want 2", len(solid.Shells))
	}
	if v := solid.Volume(); math.Abs(v-2) > 1e-9 {
		t.Errorf("Volume() = %g, want 2", v)
	}
}

func TestReconstructSkipsZeroAreaFaces(t *testing.T) {
	points, triangles := cubeMesh(t)

	// Three coincident extra vertices forming a zero-area triangle.
	n := len(points)
	p := r3.Vec{X: 10, Y: 10, Z: 10}
	points = append(points, p, p, p)
	triangles = append(triangles, [3]int{n, n + 1, n + 2})

	shape, err := Reconstruct(points, triangles)
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	solid, ok := shape.(*kernel.Solid)
	if !ok {
		t.Fatalf("Reconstruct() = %T, want *kernel.Solid (zero-area face discarded)", shape)
	}
	if len(solid.Shells) != 1 {
		t.Errorf("solid has %d shells, want 1", len(solid.Shells))
	}
}

func TestReconstructNoTriangles(t *testing.T) {
	shape, err := Reconstruct([]r3.Vec{{X: 1}}, nil)
	if err != nil {
		t.Fatalf("Reconstruct() error = %v", err)
	}
	shell, ok := shape.(*kernel.Shell)
	if !ok {
		t.Fatalf("Reconstruct() = %T, want empty *kernel.Shell", shape)
	}
	if len(shell.Faces) != 0 {
		t.Errorf("shell has %d faces, want 0", len(shell.Faces))
	}
}

func TestReconstructErrors(t *testing.T) {
	if _, err := Reconstruct(nil, nil); err == nil {
		t.Error("Reconstruct() with no vertices: error = nil, want error")
	}
	points := []r3.Vec{{}, {X: 1}, {Y: 1}}
	if _, err := Reconstruct(points, [][3]int{{0, 1, 3}}); err == nil {
		t.Error("Reconstruct() with out-of-range index: error = nil, want error")
	}
	if _, err := Reconstruct(points, [][3]int{{0, 1, -1}}); err == nil {
		t.Error("Reconstruct() with negative index: error = nil, want error")
	}
}
