package mesher

import (
	"github.com/chazu/resin/pkg/kernel"
	"github.com/hpinc/go3mf"
)

// bindColor attaches the shape's color to the mesh object: a base
// material group with one entry whose display color is the shape's
// RGBA value, referenced as the object-level property.
func (m *Mesher) bindColor(obj *go3mf.Object, c kernel.Color) {
	group := &go3mf.BaseMaterials{ID: m.newResourceID()}
	group.Materials = append(group.Materials, go3mf.Base{
		Name:  c.String(),
		Color: c.RGBA(),
	})
	m.model.Resources.Assets = append(m.model.Resources.Assets, group)
	obj.PID = group.ID
	obj.PIndex = 0
}

// objectColor resolves a mesh object's object-level property back to
// an RGBA color. An object without a bound material is a normal state,
// reported by the second return, not an error.
func (m *Mesher) objectColor(obj *go3mf.Object) (kernel.Color, bool) {
	if obj.PID == 0 {
		return kernel.Color{}, false
	}
	for _, asset := range m.model.Resources.Assets {
		group, ok := asset.(*go3mf.BaseMaterials)
		if !ok || group.ID != obj.PID {
			continue
		}
		if int(obj.PIndex) >= len(group.Materials) {
			return kernel.Color{}, false
		}
		return kernel.ColorFromRGBA(group.Materials[obj.PIndex].Color), true
	}
	return kernel.Color{}, false
}
