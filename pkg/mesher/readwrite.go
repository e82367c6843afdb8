package mesher

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/resin/pkg/kernel"
	"github.com/google/uuid"
	"github.com/hpinc/go3mf"
	"github.com/hschendel/stl"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrFormat is returned by Read and Write for any file extension
// other than .3mf or .stl.
var ErrFormat = errors.New("unsupported file format")

// Read loads a mesh container and reconstructs one shape per mesh
// object, carrying over label and color where bound. Reading a 3MF
// file replaces the container's contents and updates the model unit;
// an STL file appends a single mesh object and leaves the unit
// untouched, since STL declares none. A missing file propagates the
// OS error unchanged.
func (m *Mesher) Read(path string) ([]kernel.Shape, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".3mf":
		return m.read3MF(path)
	case ".stl":
		return m.readSTL(path)
	default:
		return nil, fmt.Errorf("mesher: %w %q", ErrFormat, ext)
	}
}

// Write persists the full container to the path. The encoding is
// buffered in memory first, so a failed encode never leaves a partial
// file behind.
func (m *Mesher) Write(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".3mf":
		return m.write3MF(path)
	case ".stl":
		return m.writeSTL(path)
	default:
		return fmt.Errorf("mesher: %w %q", ErrFormat, ext)
	}
}

func (m *Mesher) write3MF(path string) error {
	var buf bytes.Buffer
	if err := go3mf.NewEncoder(&buf).Encode(m.model); err != nil {
		return fmt.Errorf("mesher: encoding 3mf: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func (m *Mesher) writeSTL(path string) error {
	var sol stl.Solid
	for _, e := range m.entries {
		if sol.Name == "" {
			sol.Name = e.obj.Name
		}
		points, triangles := meshArrays(e.obj.Mesh)
		for _, t := range triangles {
			a, b, c := points[t[0]], points[t[1]], points[t[2]]
			sol.Triangles = append(sol.Triangles, stl.Triangle{
				Normal:   stlVec(triangleNormal(a, b, c)),
				Vertices: [3]stl.Vec3{stlVec(a), stlVec(b), stlVec(c)},
			})
		}
	}
	return sol.WriteFile(path)
}

func (m *Mesher) read3MF(path string) ([]kernel.Shape, error) {
	r, err := go3mf.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	model := new(go3mf.Model)
	if err := r.Decode(model); err != nil {
		return nil, fmt.Errorf("mesher: decoding 3mf: %w", err)
	}
	m.model = model
	m.unit = unitFromModel[model.Units]
	m.entries = nil
	m.lastID = maxResourceID(model)

	var shapes []kernel.Shape
	for _, obj := range model.Resources.Objects {
		if obj.Mesh == nil {
			continue
		}
		e := &entry{obj: obj}
		if md, ok := m.MetaDataByKey(metaNamespace, uuidMetaName(obj.ID)); ok {
			if id, err := uuid.Parse(md.Value); err == nil {
				e.id = id
				e.hasID = true
			}
		}
		m.entries = append(m.entries, e)

		shape, err := m.shapeFromObject(obj)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

func (m *Mesher) readSTL(path string) ([]kernel.Shape, error) {
	sol, err := stl.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// STL is raw triangle soup: weld it into an indexed mesh object so
	// it joins the container like any 3MF mesh.
	raw := make([]r3.Vec, 0, len(sol.Triangles)*3)
	triangles := make([][3]int, 0, len(sol.Triangles))
	for i, t := range sol.Triangles {
		for _, v := range t.Vertices {
			raw = append(raw, r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])})
		}
		triangles = append(triangles, [3]int{i * 3, i*3 + 1, i*3 + 2})
	}
	welded, table := Weld(raw, kernel.Tolerance)
	kept := FilterDegenerate(triangles, table)

	obj := &go3mf.Object{
		ID:   m.newResourceID(),
		Mesh: buildMesh(welded, kept),
	}
	if sol.Name != "" {
		obj.Name = sol.Name
	}
	m.model.Resources.Objects = append(m.model.Resources.Objects, obj)
	m.model.Build.Items = append(m.model.Build.Items, &go3mf.Item{
		ObjectID:  obj.ID,
		Transform: go3mf.Identity(),
	})
	m.entries = append(m.entries, &entry{obj: obj})

	shape, err := m.shapeFromObject(obj)
	if err != nil {
		return nil, err
	}
	return []kernel.Shape{shape}, nil
}

// shapeFromObject reconstructs a shape from a mesh object and attaches
// the object's label and bound color.
func (m *Mesher) shapeFromObject(obj *go3mf.Object) (kernel.Shape, error) {
	points, triangles := meshArrays(obj.Mesh)
	shape, err := Reconstruct(points, triangles)
	if err != nil {
		return nil, fmt.Errorf("mesher: reconstructing object %d: %w", obj.ID, err)
	}
	attrs := shape.Attrs()
	attrs.Label = obj.Name
	if c, ok := m.objectColor(obj); ok {
		attrs.Color = &c
	}
	return shape, nil
}

// maxResourceID scans the model so ids allocated after a Read never
// collide with decoded resources.
func maxResourceID(model *go3mf.Model) uint32 {
	var max uint32
	for _, obj := range model.Resources.Objects {
		if obj.ID > max {
			max = obj.ID
		}
	}
	for _, asset := range model.Resources.Assets {
		if id := asset.Identify(); id > max {
			max = id
		}
	}
	return max
}

func triangleNormal(a, b, c r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

func stlVec(v r3.Vec) stl.Vec3 {
	return stl.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
