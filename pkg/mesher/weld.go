package mesher

import (
	"math"

	"github.com/chazu/resin/pkg/kernel"
	"gonum.org/v1/gonum/spatial/r3"
)

// Weld deduplicates raw tessellation vertices. Each vertex is
// quantized to a decimal grid derived from the tolerance; vertices
// landing in the same grid cell share one canonical output vertex.
// The returned vertices keep their original (unrounded) coordinates
// in first-occurrence order, and the table maps every raw index to
// its canonical index. A non-positive tolerance selects the library
// tolerance.
//
// The grid model means welding never moves a vertex by more than half
// a grid step per axis, but points within tolerance across a cell
// boundary stay distinct.
func Weld(points []r3.Vec, tolerance float64) ([]r3.Vec, []int) {
	if tolerance <= 0 {
		tolerance = kernel.Tolerance
	}
	// One shared rounding precision for the whole call. The digit
	// count truncates the tolerance exponent after rounding it to one
	// decimal, so a tolerance of 2e-5 still welds on the 1e-4 grid.
	digits := -int(math.Round(math.Log10(tolerance)*10) / 10)
	scale := math.Pow(10, float64(digits))

	type cell [3]int64
	seen := make(map[cell]int, len(points))
	welded := make([]r3.Vec, 0, len(points))
	table := make([]int, len(points))
	for i, p := range points {
		k := cell{
			int64(math.Round(p.X * scale)),
			int64(math.Round(p.Y * scale)),
			int64(math.Round(p.Z * scale)),
		}
		idx, ok := seen[k]
		if !ok {
			idx = len(welded)
			seen[k] = idx
			welded = append(welded, p)
		}
		table[i] = idx
	}
	return welded, table
}

// FilterDegenerate maps raw triangle indices through the welding
// table and keeps only triangles whose three canonical indices are
// pairwise distinct. Welding collapses a triangle to zero area when
// it merges two of its corners; such triangles must not reach the
// output mesh. Surviving triangles keep their input order.
func FilterDegenerate(triangles [][3]int, toCanonical []int) [][3]int {
	kept := make([][3]int, 0, len(triangles))
	for _, t := range triangles {
		a, b, c := toCanonical[t[0]], toCanonical[t[1]], toCanonical[t[2]]
		if a != b && b != c && c != a {
			kept = append(kept, [3]int{a, b, c})
		}
	}
	return kept
}
