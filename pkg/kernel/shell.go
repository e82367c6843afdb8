package kernel

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r3"
)

// Shell is a collection of faces forming a connected surface. A shell
// produced by Sew has its faces joined along coincident edges; whether
// it is closed or manifold is a property of the data, not a guarantee
// of the type.
type Shell struct {
	attr  Attrs
	Faces []*Face
}

// Attrs returns the shell's mutable display attributes.
func (s *Shell) Attrs() *Attrs { return &s.attr }

// Triangulate meshes every face of the shell. With parallel set,
// faces are meshed concurrently; output order is face order either way.
func (s *Shell) Triangulate(linear, angular float64, parallel bool) ([]FaceMesh, error) {
	return triangulateFaces(s.Faces, linear, angular, parallel)
}

// IsManifold reports whether every edge of the shell is shared by
// exactly two faces with consistent orientation. A manifold shell is
// necessarily closed and admits a well-defined inside and outside.
func (s *Shell) IsManifold() bool {
	edges, ok := s.edgeUses()
	if !ok {
		return false
	}
	for _, use := range edges {
		if use.forward != 1 || use.backward != 1 {
			return false
		}
	}
	return len(edges) > 0
}

// IsClosed reports whether the shell has no boundary edge, that is,
// no edge used by exactly one face.
func (s *Shell) IsClosed() bool {
	edges, ok := s.edgeUses()
	if !ok {
		return false
	}
	for _, use := range edges {
		if use.forward+use.backward == 1 {
			return false
		}
	}
	return len(edges) > 0
}

// edgeUse counts how often an undirected edge is traversed in each
// direction by the faces' effective windings.
type edgeUse struct {
	forward, backward int
}

type edgeKey struct {
	a, b int // canonical corner ids, a < b
}

// edgeUses builds the welded edge map of the shell. The second return
// is false when the shell contains a face with collapsed corners.
func (s *Shell) edgeUses() (map[edgeKey]edgeUse, bool) {
	corners := cornerIDs(s.Faces, Tolerance)
	edges := make(map[edgeKey]edgeUse)
	for _, c := range corners {
		if c[0] == c[1] || c[1] == c[2] || c[2] == c[0] {
			return nil, false
		}
		for e := 0; e < 3; e++ {
			from, to := c[e], c[(e+1)%3]
			key := edgeKey{from, to}
			if key.a > key.b {
				key.a, key.b = key.b, key.a
			}
			use := edges[key]
			if from < to {
				use.forward++
			} else {
				use.backward++
			}
			edges[key] = use
		}
	}
	return edges, true
}

// Sew merges faces along coincident edges (within the positional
// tolerance) and groups them into connected shells. One shell is
// returned per connected component, faces in input order. Faces that
// touch only at a vertex remain in separate shells.
func Sew(faces []*Face, tol float64) []*Shell {
	if len(faces) == 0 {
		return nil
	}
	corners := cornerIDs(faces, tol)

	parent := make([]int, len(faces))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(i, j int) {
		ri, rj := find(i), find(j)
		if ri != rj {
			parent[rj] = ri
		}
	}

	firstFace := make(map[edgeKey]int)
	for i, c := range corners {
		for e := 0; e < 3; e++ {
			key := edgeKey{c[e], c[(e+1)%3]}
			if key.a > key.b {
				key.a, key.b = key.b, key.a
			}
			if j, seen := firstFace[key]; seen {
				union(i, j)
			} else {
				firstFace[key] = i
			}
		}
	}

	// Collect components preserving face input order.
	byRoot := make(map[int]*Shell)
	var shells []*Shell
	for i, f := range faces {
		root := find(i)
		sh, ok := byRoot[root]
		if !ok {
			sh = &Shell{}
			byRoot[root] = sh
			shells = append(shells, sh)
		}
		sh.Faces = append(sh.Faces, f)
	}
	return shells
}

// cornerIDs assigns a canonical id to every face corner by quantizing
// its position to the tolerance grid. Corners welded to the same grid
// cell share an id. Ids are returned in each face's effective winding
// order.
func cornerIDs(faces []*Face, tol float64) [][3]int {
	if tol <= 0 {
		tol = Tolerance
	}
	// Same grid precision rule as vertex welding: truncate the
	// tolerance exponent after rounding it to one decimal.
	digits := -int(math.Round(math.Log10(tol)*10) / 10)
	scale := math.Pow(10, float64(digits))
	type cell [3]int64
	ids := make(map[cell]int)
	out := make([][3]int, len(faces))
	for i, f := range faces {
		c := f.corners()
		for j, p := range c {
			k := cell{
				int64(math.Round(p.X * scale)),
				int64(math.Round(p.Y * scale)),
				int64(math.Round(p.Z * scale)),
			}
			id, ok := ids[k]
			if !ok {
				id = len(ids)
				ids[k] = id
			}
			out[i][j] = id
		}
	}
	return out
}

// triangulateFaces meshes a face list, optionally concurrently.
// Results are stored by face index, so order is deterministic.
func triangulateFaces(faces []*Face, linear, angular float64, parallel bool) ([]FaceMesh, error) {
	out := make([]FaceMesh, len(faces))
	if !parallel {
		for i, f := range faces {
			fms, err := f.Triangulate(linear, angular, false)
			if err != nil {
				return nil, err
			}
			out[i] = fms[0]
		}
		return out, nil
	}
	var wg sync.WaitGroup
	errs := make([]error, len(faces))
	for i, f := range faces {
		wg.Add(1)
		go func(i int, f *Face) {
			defer wg.Done()
			fms, err := f.Triangulate(linear, angular, false)
			if err != nil {
				errs[i] = err
				return
			}
			out[i] = fms[0]
		}(i, f)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// volumeOfFaces returns the signed volume enclosed by the faces,
// computed by the divergence theorem over their effective windings.
func volumeOfFaces(faces []*Face) float64 {
	var v float64
	for _, f := range faces {
		c := f.corners()
		v += r3.Dot(c[0], r3.Cross(c[1], c[2]))
	}
	return v / 6
}
