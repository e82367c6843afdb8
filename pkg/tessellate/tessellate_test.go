package tessellate

import (
	"testing"

	"github.com/chazu/resin/pkg/kernel"
)

func TestTessellateBox(t *testing.T) {
	points, triangles, err := Tessellate(kernel.Box(1, 1, 1), 0.001, 0.1, false)
	if err != nil {
		t.Fatalf("Tessellate() error = %v", err)
	}
	if len(points) != 36 {
		t.Errorf("got %d raw points, want 36 (3 per triangular face)", len(points))
	}
	if len(triangles) != 12 {
		t.Errorf("got %d triangles, want 12", len(triangles))
	}
	for i, tri := range triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(points) {
				t.Fatalf("triangle %d index %d out of range [0, %d)", i, idx, len(points))
			}
		}
	}
}

func TestTessellateOffsetsAreGlobal(t *testing.T) {
	points, triangles, err := Tessellate(kernel.Box(1, 1, 1), 0.001, 0.1, false)
	if err != nil {
		t.Fatalf("Tessellate() error = %v", err)
	}
	// Each face contributes 3 points and one triangle indexing only
	// its own block.
	for i, tri := range triangles {
		base := i * 3
		for _, idx := range tri {
			if idx < base || idx >= base+3 {
				t.Errorf("triangle %d = %v, want indices in [%d, %d)", i, tri, base, base+3)
			}
		}
	}
	_ = points
}

func TestTessellateParallelDeterministic(t *testing.T) {
	shape := kernel.Box(2, 3, 4)
	p1, t1, err := Tessellate(shape, 0.001, 0.1, false)
	if err != nil {
		t.Fatalf("serial Tessellate() error = %v", err)
	}
	p2, t2, err := Tessellate(shape, 0.001, 0.1, true)
	if err != nil {
		t.Fatalf("parallel Tessellate() error = %v", err)
	}
	if len(p1) != len(p2) || len(t1) != len(t2) {
		t.Fatalf("parallel result sizes differ: %d/%d points, %d/%d triangles",
			len(p1), len(p2), len(t1), len(t2))
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("point %d differs between serial and parallel runs", i)
		}
	}
	for i := range t1 {
		if t1[i] != t2[i] {
			t.Fatalf("triangle %d differs between serial and parallel runs", i)
		}
	}
}

func TestTessellateNilShape(t *testing.T) {
	points, triangles, err := Tessellate(nil, 0.001, 0.1, false)
	if err != nil {
		t.Fatalf("Tessellate(nil) error = %v", err)
	}
	if points != nil || triangles != nil {
		t.Errorf("Tessellate(nil) = %v, %v, want nil, nil", points, triangles)
	}
}
