package kernel

// Compound groups shapes without merging their geometry. Exporters
// flatten compounds with Leaves and emit one mesh object per leaf.
type Compound struct {
	attr   Attrs
	Shapes []Shape
}

// Attrs returns the compound's mutable display attributes.
func (c *Compound) Attrs() *Attrs { return &c.attr }

// Triangulate meshes every child shape, in child order.
func (c *Compound) Triangulate(linear, angular float64, parallel bool) ([]FaceMesh, error) {
	var out []FaceMesh
	for _, s := range c.Shapes {
		fms, err := s.Triangulate(linear, angular, parallel)
		if err != nil {
			return nil, err
		}
		out = append(out, fms...)
	}
	return out, nil
}

// Leaves expands nested compounds into their leaf shapes. A non-compound
// shape is its own single leaf.
func Leaves(s Shape) []Shape {
	c, ok := s.(*Compound)
	if !ok {
		return []Shape{s}
	}
	var out []Shape
	for _, child := range c.Shapes {
		out = append(out, Leaves(child)...)
	}
	return out
}
