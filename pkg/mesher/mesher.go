package mesher

import (
	"errors"
	"fmt"
	"log"

	"github.com/chazu/resin/pkg/kernel"
	"github.com/chazu/resin/pkg/tessellate"
	"github.com/google/uuid"
	"github.com/hpinc/go3mf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Version is the library version surfaced in tooling and metadata.
const Version = "0.1.0"

// Default deflection tolerances for AddShape. The linear deflection
// bounds the chordal error of curved surfaces; the angular deflection
// bounds the angle between adjacent facet normals, in radians.
const (
	DefaultLinearDeflection  = 0.001
	DefaultAngularDeflection = 0.1
)

// Mesher exports shapes to and imports shapes from 3MF and STL mesh
// containers. A Mesher owns one container model; repeated AddShape
// calls accumulate mesh objects in it. A Mesher is not safe for
// concurrent use.
type Mesher struct {
	unit    Unit
	model   *go3mf.Model
	entries []*entry
	lastID  uint32
}

// entry tracks one mesh object in the container together with the
// bookkeeping that does not live in the 3MF resource itself.
type entry struct {
	obj   *go3mf.Object
	id    uuid.UUID
	hasID bool
}

// New creates a Mesher whose container uses the given length unit.
func New(unit Unit) *Mesher {
	model := new(go3mf.Model)
	model.Units = unitToModel[unit]
	return &Mesher{unit: unit, model: model}
}

// Unit returns the container's current length unit. Read updates it
// to the unit declared by a 3MF file.
func (m *Mesher) Unit() Unit { return m.unit }

// MeshCount returns the number of mesh entries in the container.
func (m *Mesher) MeshCount() int { return len(m.entries) }

// TriangleCounts returns the triangle count of each mesh entry.
func (m *Mesher) TriangleCounts() []int {
	counts := make([]int, len(m.entries))
	for i, e := range m.entries {
		counts[i] = len(e.obj.Mesh.Triangles.Triangle)
	}
	return counts
}

// VertexCounts returns the vertex count of each mesh entry.
func (m *Mesher) VertexCounts() []int {
	counts := make([]int, len(m.entries))
	for i, e := range m.entries {
		counts[i] = len(e.obj.Mesh.Vertices.Vertex)
	}
	return counts
}

// MeshProperties describes one mesh entry of the container.
type MeshProperties struct {
	Name       string
	PartNumber string
	Role       Role
	ID         uuid.UUID
	HasID      bool
}

// MeshProperties returns the properties of every mesh entry.
func (m *Mesher) MeshProperties() []MeshProperties {
	props := make([]MeshProperties, len(m.entries))
	for i, e := range m.entries {
		props[i] = MeshProperties{
			Name:       e.obj.Name,
			PartNumber: e.obj.PartNumber,
			Role:       roleFromModel[e.obj.Type],
			ID:         e.id,
			HasID:      e.hasID,
		}
	}
	return props
}

// AddOptions controls how AddShape meshes and tags a shape. The zero
// value selects the default deflections, RoleModel, and no part
// number or identifier.
type AddOptions struct {
	LinearDeflection  float64   // 0 selects DefaultLinearDeflection
	AngularDeflection float64   // 0 selects DefaultAngularDeflection
	Role              Role      // mesh role tag, default RoleModel
	PartNumber        string    // optional part number
	ID                uuid.UUID // optional identifier, uuid.Nil = unset
}

// AddShape tessellates the shape and appends one mesh entry per leaf
// to the container. Compounds are expanded into their leaves. A leaf
// that degenerates under welding (fewer than three welded vertices or
// no surviving triangles) is skipped with a warning; a mesh object
// that fails the validity check aborts the call with an error, since
// it indicates a corrupt geometry pipeline rather than a data-quality
// issue. A valid but non-manifold mesh only warns: open shells are
// legitimate exports.
func (m *Mesher) AddShape(shape kernel.Shape, opts *AddOptions) error {
	if shape == nil {
		return errors.New("mesher: nil shape")
	}
	var o AddOptions
	if opts != nil {
		o = *opts
	}
	if o.LinearDeflection == 0 {
		o.LinearDeflection = DefaultLinearDeflection
	}
	if o.AngularDeflection == 0 {
		o.AngularDeflection = DefaultAngularDeflection
	}
	for _, leaf := range kernel.Leaves(shape) {
		if err := m.addLeaf(leaf, o); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mesher) addLeaf(leaf kernel.Shape, o AddOptions) error {
	label := leaf.Attrs().Label

	points, triangles, err := tessellate.Tessellate(leaf, o.LinearDeflection, o.AngularDeflection, true)
	if err != nil {
		return fmt.Errorf("mesher: tessellating shape %q: %w", label, err)
	}

	welded, table := Weld(points, kernel.Tolerance)
	kept := FilterDegenerate(triangles, table)
	if len(welded) < 3 || len(kept) == 0 {
		log.Printf("mesher: degenerate shape %q skipped", label)
		return nil
	}

	obj := &go3mf.Object{
		ID:   m.newResourceID(),
		Type: roleToModel[o.Role],
		Mesh: buildMesh(welded, kept),
	}
	if label != "" {
		obj.Name = label
	}
	if o.PartNumber != "" {
		obj.PartNumber = o.PartNumber
	}
	if c := leaf.Attrs().Color; c != nil {
		m.bindColor(obj, *c)
	}

	if err := validateMesh(obj.Mesh); err != nil {
		return fmt.Errorf("mesher: invalid mesh for shape %q: %w", label, err)
	}
	if !manifoldAndOriented(obj.Mesh) {
		log.Printf("mesher: mesh for shape %q is not manifold", label)
	}

	m.model.Resources.Objects = append(m.model.Resources.Objects, obj)
	m.model.Build.Items = append(m.model.Build.Items, &go3mf.Item{
		ObjectID:  obj.ID,
		Transform: go3mf.Identity(),
	})

	e := &entry{obj: obj}
	if o.ID != uuid.Nil {
		e.id = o.ID
		e.hasID = true
		m.AddMetaData(metaNamespace, uuidMetaName(obj.ID), o.ID.String(), "xs:string", false)
	}
	m.entries = append(m.entries, e)
	return nil
}

// newResourceID allocates the next free resource id in the model.
// Mesh objects and material groups draw from the same id space.
func (m *Mesher) newResourceID() uint32 {
	m.lastID++
	return m.lastID
}

// buildMesh converts welded vertices and filtered triangles into a
// 3MF mesh resource.
func buildMesh(vertices []r3.Vec, triangles [][3]int) *go3mf.Mesh {
	mesh := new(go3mf.Mesh)
	mesh.Vertices.Vertex = make([]go3mf.Point3D, len(vertices))
	for i, v := range vertices {
		mesh.Vertices.Vertex[i] = go3mf.Point3D{float32(v.X), float32(v.Y), float32(v.Z)}
	}
	mesh.Triangles.Triangle = make([]go3mf.Triangle, len(triangles))
	for i, t := range triangles {
		mesh.Triangles.Triangle[i] = go3mf.Triangle{
			V1: uint32(t[0]), V2: uint32(t[1]), V3: uint32(t[2]),
		}
	}
	return mesh
}

// meshArrays converts a 3MF mesh resource back to vertex and triangle
// slices for reconstruction.
func meshArrays(mesh *go3mf.Mesh) ([]r3.Vec, [][3]int) {
	points := make([]r3.Vec, len(mesh.Vertices.Vertex))
	for i, v := range mesh.Vertices.Vertex {
		points[i] = r3.Vec{X: float64(v.X()), Y: float64(v.Y()), Z: float64(v.Z())}
	}
	triangles := make([][3]int, len(mesh.Triangles.Triangle))
	for i, t := range mesh.Triangles.Triangle {
		triangles[i] = [3]int{int(t.V1), int(t.V2), int(t.V3)}
	}
	return points, triangles
}
