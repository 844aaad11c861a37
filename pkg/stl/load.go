package stl

import (
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Load parses an STL file and builds an indexed mesh from it, welding
// vertices that coincide within the weld threshold. STL stores each
// triangle's corners independently, so welding is what reconstructs the
// shared-vertex connectivity the analysis layer needs.
func Load(filename string, weld float64) (*mesh.Mesh, error) {
	model, err := Parse(filename)
	if err != nil {
		return nil, err
	}
	return mesh.FromTriangles(model.Triangles, weld), nil
}
