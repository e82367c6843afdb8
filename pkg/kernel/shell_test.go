package kernel

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSewGroupsConnectedFaces(t *testing.T) {
	shared := [2]r3.Vec{{X: 1}, {Y: 1}}
	tests := []struct {
		name  string
		faces []*Face
		want  int // shell count
	}{
		{
			"two faces sharing an edge",
			[]*Face{
				MakeFace(r3.Vec{}, shared[0], shared[1]),
				MakeFace(shared[0], r3.Vec{X: 1, Y: 1}, shared[1]),
			},
			1,
		},
		{
			"two disjoint faces",
			[]*Face{
				MakeFace(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1}),
				MakeFace(r3.Vec{X: 10}, r3.Vec{X: 11}, r3.Vec{X: 10, Y: 1}),
			},
			2,
		},
		{
			"vertex contact only stays separate",
			[]*Face{
				MakeFace(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1}),
				MakeFace(r3.Vec{}, r3.Vec{X: -1}, r3.Vec{Y: -1}),
			},
			2,
		},
		{
			"no faces",
			nil,
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shells := Sew(tt.faces, Tolerance)
			if len(shells) != tt.want {
				t.Fatalf("Sew() = %d shells, want %d", len(shells), tt.want)
			}
			total := 0
			for _, sh := range shells {
				total += len(sh.Faces)
			}
			if total != len(tt.faces) {
				t.Errorf("shells hold %d faces, want %d", total, len(tt.faces))
			}
		})
	}
}

func TestSewWeldsNearbyEdges(t *testing.T) {
	// The second face's shared edge is offset by less than the
	// tolerance grid, so sewing must still join the faces.
	const eps = 1e-6
	faces := []*Face{
		MakeFace(r3.Vec{}, r3.Vec{X: 1}, r3.Vec{Y: 1}),
		MakeFace(r3.Vec{X: 1 + eps}, r3.Vec{X: 1, Y: 1}, r3.Vec{X: eps, Y: 1}),
	}
	if shells := Sew(faces, Tolerance); len(shells) != 1 {
		t.Errorf("Sew() = %d shells, want 1", len(shells))
	}
}

func TestBoxShellManifold(t *testing.T) {
	box := Box(1, 1, 1)
	if len(box.Shells) != 1 {
		t.Fatalf("Box() has %d shells, want 1", len(box.Shells))
	}
	sh := box.Shells[0]
	if !sh.IsClosed() {
		t.Error("IsClosed() = false for a box shell")
	}
	if !sh.IsManifold() {
		t.Error("IsManifold() = false for a box shell")
	}
}

func TestOpenShellNotManifold(t *testing.T) {
	box := Box(1, 1, 1)
	open := &Shell{Faces: box.Shells[0].Faces[1:]} // drop one triangle
	if open.IsClosed() {
		t.Error("IsClosed() = true for a shell with a missing triangle")
	}
	if open.IsManifold() {
		t.Error("IsManifold() = true for a shell with a missing triangle")
	}
}

func TestEmptyShell(t *testing.T) {
	var sh Shell
	if sh.IsManifold() {
		t.Error("IsManifold() = true for an empty shell")
	}
	if sh.IsClosed() {
		t.Error("IsClosed() = true for an empty shell")
	}
}

func TestShellTriangulateParallelMatchesSerial(t *testing.T) {
	sh := Box(2, 3, 4).Shells[0]
	serial, err := sh.Triangulate(0.001, 0.1, false)
	if err != nil {
		t.Fatalf("serial Triangulate() error = %v", err)
	}
	parallel, err := sh.Triangulate(0.001, 0.1, true)
	if err != nil {
		t.Fatalf("parallel Triangulate() error = %v", err)
	}
	if len(serial) != len(parallel) {
		t.Fatalf("face mesh counts differ: %d vs %d", len(serial), len(parallel))
	}
	for i := range serial {
		if len(serial[i].Points) != len(parallel[i].Points) {
			t.Fatalf("face %d point counts differ", i)
		}
		for j := range serial[i].Points {
			if serial[i].Points[j] != parallel[i].Points[j] {
				t.Errorf("face %d point %d differs", i, j)
			}
		}
	}
}
