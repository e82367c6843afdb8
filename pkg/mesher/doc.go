// Package mesher converts between BRep shapes and the indexed triangle
// meshes stored in 3MF and STL containers. Export tessellates each
// shape, welds near-duplicate vertices, drops triangles that collapse
// during welding, and fills a 3MF model object with geometry, role,
// label, part number, identifier, and color. Import reads a container
// and reconstructs the richest topology the triangle data supports:
// solids when the sewn shells are manifold, open shells otherwise.
package mesher
