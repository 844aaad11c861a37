package mesh

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gomesh/pkg/geometry"
)

// TriangulateFaces fan-triangulates every face with more than three
// vertices (or only the selected ones) and returns how many faces were
// split. New triangles inherit the source face's selection and
// visibility flags.
func (m *Mesh) TriangulateFaces(onlySelected bool) int {
	split := 0
	newFaces := make([]Face, 0, len(m.Faces))
	for fi := range m.Faces {
		f := m.Faces[fi]
		if len(f.Verts) <= 3 || (onlySelected && !f.Selected) {
			newFaces = append(newFaces, f)
			continue
		}
		split++
		for i := 1; i < len(f.Verts)-1; i++ {
			tri := Face{
				Verts:    []int{f.Verts[0], f.Verts[i], f.Verts[i+1]},
				Selected: f.Selected,
				Hidden:   f.Hidden,
			}
			tri.Normal = m.loopNormal(tri.Verts)
			newFaces = append(newFaces, tri)
		}
	}
	if split == 0 {
		return 0
	}
	m.Faces = newFaces
	m.rebuildLinks()
	return split
}

// TrisToQuads joins pairs of adjacent triangles into quads where the two
// face normals agree within angleLimit (radians) and the merged quad is
// convex. With onlySelected, only pairs of selected triangles are joined.
// Pairs with the smallest normal deviation are joined first. Returns the
// number of quads created.
func (m *Mesh) TrisToQuads(angleLimit float64, onlySelected bool) int {
	type candidate struct {
		edge  int
		angle float64
	}
	var candidates []candidate
	for ei := range m.Edges {
		e := &m.Edges[ei]
		if len(e.Faces) != 2 {
			continue
		}
		f1, f2 := e.Faces[0], e.Faces[1]
		if len(m.Faces[f1].Verts) != 3 || len(m.Faces[f2].Verts) != 3 {
			continue
		}
		if onlySelected && (!m.Faces[f1].Selected || !m.Faces[f2].Selected) {
			continue
		}
		angle := normalAngle(m.Faces[f1].Normal, m.Faces[f2].Normal)
		if angle > angleLimit {
			continue
		}
		candidates = append(candidates, candidate{edge: ei, angle: angle})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].angle < candidates[j].angle
	})

	used := make([]bool, len(m.Faces))
	deadFaces := make(map[int]bool)
	deadEdges := make(map[int]bool)
	var quads []Face

	for _, c := range candidates {
		e := &m.Edges[c.edge]
		f1, f2 := e.Faces[0], e.Faces[1]
		if used[f1] || used[f2] {
			continue
		}
		loop, ok := m.mergedQuad(f1, f2, e.V[0], e.V[1])
		if !ok {
			continue
		}
		used[f1], used[f2] = true, true
		deadFaces[f1], deadFaces[f2] = true, true
		deadEdges[c.edge] = true
		quad := Face{
			Verts:    loop,
			Normal:   m.loopNormal(loop),
			Selected: m.Faces[f1].Selected || m.Faces[f2].Selected,
			Hidden:   m.Faces[f1].Hidden && m.Faces[f2].Hidden,
		}
		quads = append(quads, quad)
	}
	if len(quads) == 0 {
		return 0
	}

	kept := make([]Face, 0, len(m.Faces))
	for fi := range m.Faces {
		if !deadFaces[fi] {
			kept = append(kept, m.Faces[fi])
		}
	}
	m.Faces = append(kept, quads...)
	m.dropEdges(deadEdges)
	m.rebuildLinks()
	return len(quads)
}

// mergedQuad builds the quad loop formed by two triangles sharing the
// edge a-b, preserving the first triangle's winding. ok is false when
// the resulting quad would not be convex.
func (m *Mesh) mergedQuad(f1, f2, a, b int) ([]int, bool) {
	if !m.traversesForward(f1, a, b) {
		a, b = b, a
	}
	if !m.traversesForward(f1, a, b) {
		return nil, false
	}
	c := thirdVertex(m.Faces[f1].Verts, a, b)
	d := thirdVertex(m.Faces[f2].Verts, a, b)
	if c < 0 || d < 0 || c == d {
		return nil, false
	}
	loop := []int{a, d, b, c}

	normal := m.Faces[f1].Normal.Add(m.Faces[f2].Normal).Normalize()
	pts := make([]geometry.Vector3, 4)
	for i, vi := range loop {
		pts[i] = m.Verts[vi].Position
	}
	for i := 0; i < 4; i++ {
		e1 := pts[(i+1)%4].Sub(pts[i])
		e2 := pts[(i+2)%4].Sub(pts[(i+1)%4])
		if e1.Cross(e2).Dot(normal) <= 0 {
			return nil, false
		}
	}
	return loop, true
}

func thirdVertex(loop []int, a, b int) int {
	for _, vi := range loop {
		if vi != a && vi != b {
			return vi
		}
	}
	return -1
}

func normalAngle(n1, n2 geometry.Vector3) float64 {
	dot := n1.Dot(n2)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot)
}

// RotateEdge replaces the diagonal shared by two triangles with the
// opposite diagonal of their merged quad.
func (m *Mesh) RotateEdge(ei int) error {
	if ei < 0 || ei >= len(m.Edges) {
		return fmt.Errorf("edge index out of range: %d", ei)
	}
	e := &m.Edges[ei]
	if len(e.Faces) != 2 {
		return fmt.Errorf("edge %d-%d is not shared by exactly two faces", e.V[0], e.V[1])
	}
	f1, f2 := e.Faces[0], e.Faces[1]
	if len(m.Faces[f1].Verts) != 3 || len(m.Faces[f2].Verts) != 3 {
		return fmt.Errorf("edge %d-%d is not between two triangles", e.V[0], e.V[1])
	}
	a, b := e.V[0], e.V[1]
	if !m.traversesForward(f1, a, b) {
		a, b = b, a
	}
	c := thirdVertex(m.Faces[f1].Verts, a, b)
	d := thirdVertex(m.Faces[f2].Verts, a, b)
	if c < 0 || d < 0 || c == d {
		return fmt.Errorf("edge %d-%d has degenerate triangles", e.V[0], e.V[1])
	}
	if m.EdgeBetween(c, d) >= 0 {
		return fmt.Errorf("rotated edge %d-%d already exists", c, d)
	}

	sel := m.Faces[f1].Selected || m.Faces[f2].Selected
	hid := m.Faces[f1].Hidden && m.Faces[f2].Hidden
	// Quad loop is a, d, b, c; the new diagonal is d-c.
	m.Faces[f1] = Face{Verts: []int{a, d, c}, Selected: sel, Hidden: hid}
	m.Faces[f2] = Face{Verts: []int{d, b, c}, Selected: sel, Hidden: hid}
	m.Faces[f1].Normal = m.loopNormal(m.Faces[f1].Verts)
	m.Faces[f2].Normal = m.loopNormal(m.Faces[f2].Verts)

	m.dropEdges(map[int]bool{ei: true})
	m.rebuildLinks()
	return nil
}

// MirrorX appends a mirror copy of the mesh across the YZ plane with
// reversed winding, so the copy faces the opposite way.
func (m *Mesh) MirrorX() {
	nv := len(m.Verts)
	nf := len(m.Faces)
	ne := len(m.Edges)

	for vi := 0; vi < nv; vi++ {
		p := m.Verts[vi].Position
		p.X = -p.X
		m.AddVertex(p)
	}
	for fi := 0; fi < nf; fi++ {
		src := m.Faces[fi].Verts
		loop := make([]int, len(src))
		for i, vi := range src {
			loop[len(src)-1-i] = vi + nv
		}
		m.AddFace(loop...)
	}
	for ei := 0; ei < ne; ei++ {
		e := m.Edges[ei]
		if len(e.Faces) == 0 {
			m.AddEdge(e.V[0]+nv, e.V[1]+nv)
		}
	}
}

// DissolvePlanar merges regions of adjacent faces whose normals agree
// within angleLimit (radians) into single faces, the way a planar
// decimate (dissolve) modifier does. Regions whose outer boundary is not
// a single simple loop are left untouched. Returns the number of faces
// dissolved away.
func (m *Mesh) DissolvePlanar(angleLimit float64) int {
	parent := make([]int, len(m.Faces))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for ei := range m.Edges {
		e := &m.Edges[ei]
		if len(e.Faces) != 2 {
			continue
		}
		if normalAngle(m.Faces[e.Faces[0]].Normal, m.Faces[e.Faces[1]].Normal) <= angleLimit {
			union(e.Faces[0], e.Faces[1])
		}
	}

	regions := make(map[int][]int)
	for fi := range m.Faces {
		root := find(fi)
		regions[root] = append(regions[root], fi)
	}

	preLoose := make(map[int]bool)
	for vi := range m.Verts {
		if len(m.Verts[vi].Edges) == 0 && len(m.Verts[vi].Faces) == 0 {
			preLoose[vi] = true
		}
	}

	deadFaces := make(map[int]bool)
	deadEdges := make(map[int]bool)
	var mergedFaces []Face
	dissolved := 0

	for _, region := range regions {
		if len(region) < 2 {
			continue
		}
		inRegion := make(map[int]bool, len(region))
		for _, fi := range region {
			inRegion[fi] = true
		}

		next := make(map[int]int)
		var interior []int
		simple := true
		for _, fi := range region {
			loop := m.Faces[fi].Verts
			for i, a := range loop {
				b := loop[(i+1)%len(loop)]
				ei := m.EdgeBetween(a, b)
				e := &m.Edges[ei]
				if len(e.Faces) == 2 && inRegion[e.Faces[0]] && inRegion[e.Faces[1]] {
					interior = append(interior, ei)
					continue
				}
				if _, dup := next[a]; dup {
					simple = false
					break
				}
				next[a] = b
			}
			if !simple {
				break
			}
		}
		if !simple || len(next) < 3 {
			continue
		}

		var start int
		for v := range next {
			start = v
			break
		}
		loop := []int{start}
		ok := true
		for v := next[start]; v != start; {
			loop = append(loop, v)
			if len(loop) > len(next) {
				ok = false
				break
			}
			nv, exists := next[v]
			if !exists {
				ok = false
				break
			}
			v = nv
		}
		if !ok || len(loop) != len(next) {
			continue // boundary has holes or multiple loops
		}

		for _, fi := range region {
			deadFaces[fi] = true
		}
		for _, ei := range interior {
			deadEdges[ei] = true
		}
		first := m.Faces[region[0]]
		merged := Face{
			Verts:    loop,
			Normal:   m.loopNormal(loop),
			Selected: first.Selected,
			Hidden:   first.Hidden,
		}
		mergedFaces = append(mergedFaces, merged)
		dissolved += len(region) - 1
	}
	if dissolved == 0 {
		return 0
	}

	kept := make([]Face, 0, len(m.Faces))
	for fi := range m.Faces {
		if !deadFaces[fi] {
			kept = append(kept, m.Faces[fi])
		}
	}
	m.Faces = append(kept, mergedFaces...)
	m.dropEdges(deadEdges)
	m.rebuildLinks()

	// Interior vertices of dissolved regions are now unreferenced.
	dead := make(map[int]bool)
	for vi := range m.Verts {
		v := &m.Verts[vi]
		if len(v.Edges) == 0 && len(v.Faces) == 0 && !preLoose[vi] {
			dead[vi] = true
		}
	}
	m.removeVertices(dead)
	return dissolved
}

// dropEdges removes the given edges from the edge array without
// touching faces; callers rebuild links afterwards.
func (m *Mesh) dropEdges(dead map[int]bool) {
	if len(dead) == 0 {
		return
	}
	kept := make([]Edge, 0, len(m.Edges))
	for ei := range m.Edges {
		if !dead[ei] {
			kept = append(kept, m.Edges[ei])
		}
	}
	m.Edges = kept
}
