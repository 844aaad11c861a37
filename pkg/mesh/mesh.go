package mesh

import (
	"fmt"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// Vertex is a mesh vertex. Incident edges and faces are weak, index-based
// back-references; vertices do not own their neighbors.
type Vertex struct {
	Position geometry.Vector3
	Edges    []int
	Faces    []int
	Selected bool
	Hidden   bool
}

// Edge connects exactly two vertices. A manifold edge has exactly two
// incident faces; any other count marks it non-manifold.
type Edge struct {
	V        [2]int
	Faces    []int
	Selected bool
	Hidden   bool
}

// Face is an ordered, cyclic loop of at least 3 vertex indices plus a
// derived normal. Loop length classifies the face: 3 = triangle,
// 4 = quad, more = n-gon.
type Face struct {
	Verts    []int
	Normal   geometry.Vector3
	Selected bool
	Hidden   bool
}

// Mesh owns the vertex, edge and face arrays. All connectivity is
// expressed via indices into these arrays, never via embedded pointers.
// Indices are stable across read-only operations; structural mutations
// compact the arrays and rebuild connectivity.
type Mesh struct {
	Verts []Vertex
	Edges []Edge
	Faces []Face

	edgeIndex map[[2]int]int
}

// NewMesh creates an empty mesh
func NewMesh() *Mesh {
	return &Mesh{edgeIndex: make(map[[2]int]int)}
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(p geometry.Vector3) int {
	m.Verts = append(m.Verts, Vertex{Position: p})
	return len(m.Verts) - 1
}

// AddEdge adds a wire edge between two vertices and returns its index.
// Adding an existing edge returns the existing index.
func (m *Mesh) AddEdge(a, b int) (int, error) {
	if a < 0 || a >= len(m.Verts) || b < 0 || b >= len(m.Verts) {
		return -1, fmt.Errorf("edge endpoint out of range: %d-%d", a, b)
	}
	if a == b {
		return -1, fmt.Errorf("degenerate edge %d-%d", a, b)
	}
	return m.ensureEdge(a, b), nil
}

func (m *Mesh) ensureEdge(a, b int) int {
	key := edgeKey(a, b)
	if idx, ok := m.edgeIndex[key]; ok {
		return idx
	}
	idx := len(m.Edges)
	m.Edges = append(m.Edges, Edge{V: key})
	m.edgeIndex[key] = idx
	m.Verts[key[0]].Edges = append(m.Verts[key[0]].Edges, idx)
	m.Verts[key[1]].Edges = append(m.Verts[key[1]].Edges, idx)
	return idx
}

// AddFace appends a face over the given vertex loop, creating any missing
// edges, and returns the face index. The loop must have at least three
// distinct vertices.
func (m *Mesh) AddFace(loop ...int) (int, error) {
	if len(loop) < 3 {
		return -1, fmt.Errorf("face needs at least 3 vertices, got %d", len(loop))
	}
	seen := make(map[int]bool, len(loop))
	for _, vi := range loop {
		if vi < 0 || vi >= len(m.Verts) {
			return -1, fmt.Errorf("face vertex out of range: %d", vi)
		}
		if seen[vi] {
			return -1, fmt.Errorf("face repeats vertex %d", vi)
		}
		seen[vi] = true
	}

	verts := make([]int, len(loop))
	copy(verts, loop)
	face := Face{Verts: verts, Normal: m.loopNormal(verts)}
	idx := len(m.Faces)
	m.Faces = append(m.Faces, face)

	for i, vi := range verts {
		next := verts[(i+1)%len(verts)]
		ei := m.ensureEdge(vi, next)
		m.Edges[ei].Faces = append(m.Edges[ei].Faces, idx)
		m.Verts[vi].Faces = append(m.Verts[vi].Faces, idx)
	}
	return idx, nil
}

// EdgeBetween returns the index of the edge between two vertices, or -1
func (m *Mesh) EdgeBetween(a, b int) int {
	if idx, ok := m.edgeIndex[edgeKey(a, b)]; ok {
		return idx
	}
	return -1
}

// FacePoints returns the positions of a face's vertex loop
func (m *Mesh) FacePoints(f *Face) []geometry.Vector3 {
	pts := make([]geometry.Vector3, len(f.Verts))
	for i, vi := range f.Verts {
		pts[i] = m.Verts[vi].Position
	}
	return pts
}

func (m *Mesh) loopNormal(loop []int) geometry.Vector3 {
	pts := make([]geometry.Vector3, len(loop))
	for i, vi := range loop {
		pts[i] = m.Verts[vi].Position
	}
	return geometry.PolygonNormal(pts)
}

// rebuildLinks recomputes all back-references (vertex->edge, vertex->face,
// edge->face) and the edge lookup table from the element arrays, creating
// edges that face loops require but the edge array lost. Callers mutate
// the arrays first, then restore the invariants here.
func (m *Mesh) rebuildLinks() {
	for i := range m.Verts {
		m.Verts[i].Edges = m.Verts[i].Edges[:0]
		m.Verts[i].Faces = m.Verts[i].Faces[:0]
	}
	m.edgeIndex = make(map[[2]int]int, len(m.Edges))

	kept := m.Edges
	m.Edges = m.Edges[:0]
	for _, e := range kept {
		key := edgeKey(e.V[0], e.V[1])
		if _, dup := m.edgeIndex[key]; dup {
			continue
		}
		e.V = key
		e.Faces = e.Faces[:0]
		idx := len(m.Edges)
		m.Edges = append(m.Edges, e)
		m.edgeIndex[key] = idx
		m.Verts[key[0]].Edges = append(m.Verts[key[0]].Edges, idx)
		m.Verts[key[1]].Edges = append(m.Verts[key[1]].Edges, idx)
	}

	for fi := range m.Faces {
		loop := m.Faces[fi].Verts
		for i, vi := range loop {
			next := loop[(i+1)%len(loop)]
			ei := m.ensureEdge(vi, next)
			m.Edges[ei].Faces = append(m.Edges[ei].Faces, fi)
			m.Verts[vi].Faces = append(m.Verts[vi].Faces, fi)
		}
	}
}

// FromTriangles builds an indexed mesh from a triangle soup, welding
// vertices that fall into the same grid cell at the weld threshold.
// A weld threshold <= 0 welds exact positions only.
func FromTriangles(tris []geometry.Triangle, weld float64) *Mesh {
	m := NewMesh()
	byKey := make(map[geometry.GridKey]int)
	byPos := make(map[geometry.Vector3]int)

	lookup := func(p geometry.Vector3) int {
		if weld > 0 {
			key := geometry.Quantize(p, weld)
			if idx, ok := byKey[key]; ok {
				return idx
			}
			idx := m.AddVertex(p)
			byKey[key] = idx
			return idx
		}
		if idx, ok := byPos[p]; ok {
			return idx
		}
		idx := m.AddVertex(p)
		byPos[p] = idx
		return idx
	}

	for _, t := range tris {
		a := lookup(t.V1)
		b := lookup(t.V2)
		c := lookup(t.V3)
		if a == b || b == c || a == c {
			continue // triangle collapsed by welding
		}
		m.AddFace(a, b, c)
	}
	return m
}

// Triangles exports the mesh as a triangle soup, fan-triangulating
// non-triangle faces.
func (m *Mesh) Triangles() []geometry.Triangle {
	var tris []geometry.Triangle
	for fi := range m.Faces {
		f := &m.Faces[fi]
		for i := 1; i < len(f.Verts)-1; i++ {
			tris = append(tris, geometry.NewTriangle(
				f.Normal,
				m.Verts[f.Verts[0]].Position,
				m.Verts[f.Verts[i]].Position,
				m.Verts[f.Verts[i+1]].Position,
			))
		}
	}
	return tris
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for i := range m.Verts {
		bbox.Extend(m.Verts[i].Position)
	}
	return bbox
}

// SurfaceArea sums the area of all faces
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for _, t := range m.Triangles() {
		total += t.Area()
	}
	return total
}
