package kernel

// Solid is a volume bounded by one or more closed shells. The first
// shell bounds the outer volume; additional shells describe internal
// voids, wound so their signed volume subtracts.
type Solid struct {
	attr   Attrs
	Shells []*Shell
}

// MakeSolid promotes closed shells to a solid. The shells are not
// re-validated here; callers promote only shells they have checked
// with IsManifold.
func MakeSolid(shells ...*Shell) *Solid {
	return &Solid{Shells: shells}
}

// Attrs returns the solid's mutable display attributes.
func (s *Solid) Attrs() *Attrs { return &s.attr }

// Volume returns the signed volume enclosed by the solid's shells.
// Void shells contribute negatively through their winding.
func (s *Solid) Volume() float64 {
	var v float64
	for _, sh := range s.Shells {
		v += volumeOfFaces(sh.Faces)
	}
	return v
}

// Triangulate meshes every face of every shell, in shell order.
func (s *Solid) Triangulate(linear, angular float64, parallel bool) ([]FaceMesh, error) {
	var out []FaceMesh
	for _, sh := range s.Shells {
		fms, err := sh.Triangulate(linear, angular, parallel)
		if err != nil {
			return nil, err
		}
		out = append(out, fms...)
	}
	return out, nil
}
