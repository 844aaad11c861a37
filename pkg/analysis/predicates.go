package analysis

import (
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// FaceClass classifies a face by its loop length
type FaceClass int

const (
	Tri FaceClass = iota
	Quad
	NGon
)

func (c FaceClass) String() string {
	switch c {
	case Tri:
		return "triangle"
	case Quad:
		return "quad"
	default:
		return "ngon"
	}
}

// Classify returns the face class for a vertex loop: 3 is a triangle,
// 4 a quad, anything longer an n-gon.
func Classify(f *mesh.Face) FaceClass {
	switch {
	case len(f.Verts) <= 3:
		return Tri
	case len(f.Verts) == 4:
		return Quad
	default:
		return NGon
	}
}

// IsConcave reports whether the polygon formed by a face's vertices is
// not convex. Loops shorter than 4 vertices are convex by definition.
// The loop is projected onto the face plane and walked in cyclic triples;
// the face is concave iff the 2D cross products at the triples are
// neither all non-negative nor all non-positive. Collinear triples
// (exactly zero) never by themselves make a face concave. Faces that
// cannot yield a valid projection basis are treated as convex.
func IsConcave(m *mesh.Mesh, f *mesh.Face) bool {
	if len(f.Verts) < 4 {
		return false
	}

	pts := m.FacePoints(f)
	center := geometry.Centroid(pts)

	normal := f.Normal
	if normal.Length() == 0 {
		normal = geometry.PolygonNormal(pts)
	}
	u, v, ok := geometry.PlaneBasis(normal)
	if !ok {
		return false
	}

	projected := make([]geometry.Vector2, len(pts))
	for i, p := range pts {
		projected[i] = geometry.Project(p, center, u, v)
	}

	allPos, allNeg := true, true
	n := len(projected)
	for i := 0; i < n; i++ {
		e1 := projected[(i+1)%n].Sub(projected[i])
		e2 := projected[(i+2)%n].Sub(projected[(i+1)%n])
		cross := e1.Cross(e2)
		if cross < 0 {
			allPos = false
		}
		if cross > 0 {
			allNeg = false
		}
	}
	return !(allPos || allNeg)
}

// IsNonManifold reports whether any of a face's edges has an incident
// face count other than two.
func IsNonManifold(m *mesh.Mesh, f *mesh.Face) bool {
	n := len(f.Verts)
	for i, a := range f.Verts {
		b := f.Verts[(i+1)%n]
		ei := m.EdgeBetween(a, b)
		if ei < 0 || len(m.Edges[ei].Faces) != 2 {
			return true
		}
	}
	return false
}
