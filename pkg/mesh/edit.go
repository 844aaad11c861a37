package mesh

// DeselectAll clears the selection flag on every element
func (m *Mesh) DeselectAll() {
	for i := range m.Verts {
		m.Verts[i].Selected = false
	}
	for i := range m.Edges {
		m.Edges[i].Selected = false
	}
	for i := range m.Faces {
		m.Faces[i].Selected = false
	}
}

// SelectAllFaces marks every face as selected
func (m *Mesh) SelectAllFaces() {
	for i := range m.Faces {
		m.Faces[i].Selected = true
	}
}

// RevealAll clears the hidden flag on every element
func (m *Mesh) RevealAll() {
	for i := range m.Verts {
		m.Verts[i].Hidden = false
	}
	for i := range m.Edges {
		m.Edges[i].Hidden = false
	}
	for i := range m.Faces {
		m.Faces[i].Hidden = false
	}
}

// AnyHiddenFaces reports whether any face is currently hidden
func (m *Mesh) AnyHiddenFaces() bool {
	for i := range m.Faces {
		if m.Faces[i].Hidden {
			return true
		}
	}
	return false
}

// HideUnselectedFaces hides every unselected face, then hides the edges
// and vertices that are not part of any visible face.
func (m *Mesh) HideUnselectedFaces() {
	for i := range m.Faces {
		if !m.Faces[i].Selected {
			m.Faces[i].Hidden = true
		}
	}
	visibleVert := make([]bool, len(m.Verts))
	for i := range m.Faces {
		if m.Faces[i].Hidden {
			continue
		}
		for _, vi := range m.Faces[i].Verts {
			visibleVert[vi] = true
		}
	}
	for i := range m.Verts {
		if !visibleVert[i] {
			m.Verts[i].Hidden = true
		}
	}
	for i := range m.Edges {
		e := &m.Edges[i]
		if !visibleVert[e.V[0]] || !visibleVert[e.V[1]] {
			e.Hidden = true
		}
	}
}

// HideUnselectedVertices hides every unselected vertex, then hides the
// edges and faces that touch a hidden vertex.
func (m *Mesh) HideUnselectedVertices() {
	for i := range m.Verts {
		if !m.Verts[i].Selected {
			m.Verts[i].Hidden = true
		}
	}
	for i := range m.Edges {
		e := &m.Edges[i]
		if m.Verts[e.V[0]].Hidden || m.Verts[e.V[1]].Hidden {
			e.Hidden = true
		}
	}
	for i := range m.Faces {
		f := &m.Faces[i]
		for _, vi := range f.Verts {
			if m.Verts[vi].Hidden {
				f.Hidden = true
				break
			}
		}
	}
}

// DeleteFaces removes the faces with the given indices. Edges and
// vertices are left in place; use the loose-element deletions to sweep
// anything that became unreferenced.
func (m *Mesh) DeleteFaces(indices []int) int {
	if len(indices) == 0 {
		return 0
	}
	dead := make(map[int]bool, len(indices))
	for _, fi := range indices {
		if fi >= 0 && fi < len(m.Faces) {
			dead[fi] = true
		}
	}
	if len(dead) == 0 {
		return 0
	}
	kept := make([]Face, 0, len(m.Faces)-len(dead))
	for fi := range m.Faces {
		if !dead[fi] {
			kept = append(kept, m.Faces[fi])
		}
	}
	removed := len(m.Faces) - len(kept)
	m.Faces = kept
	m.rebuildLinks()
	return removed
}

// DeleteLooseVertices removes vertices with no incident edges and no
// incident faces, returning how many were removed.
func (m *Mesh) DeleteLooseVertices() int {
	dead := make(map[int]bool)
	for vi := range m.Verts {
		v := &m.Verts[vi]
		if len(v.Edges) == 0 && len(v.Faces) == 0 {
			dead[vi] = true
		}
	}
	return m.removeVertices(dead)
}

// DeleteLooseEdges removes edges with no incident faces, returning how
// many were removed.
func (m *Mesh) DeleteLooseEdges() int {
	kept := make([]Edge, 0, len(m.Edges))
	for ei := range m.Edges {
		if len(m.Edges[ei].Faces) > 0 {
			kept = append(kept, m.Edges[ei])
		}
	}
	removed := len(m.Edges) - len(kept)
	if removed == 0 {
		return 0
	}
	m.Edges = kept
	m.rebuildLinks()
	return removed
}

// removeVertices drops the given vertices, remapping all face loops and
// edge endpoints onto the compacted vertex array. Faces and edges that
// still reference a dead vertex are dropped with it.
func (m *Mesh) removeVertices(dead map[int]bool) int {
	if len(dead) == 0 {
		return 0
	}
	remap := make([]int, len(m.Verts))
	keptVerts := make([]Vertex, 0, len(m.Verts)-len(dead))
	for vi := range m.Verts {
		if dead[vi] {
			remap[vi] = -1
			continue
		}
		remap[vi] = len(keptVerts)
		keptVerts = append(keptVerts, m.Verts[vi])
	}
	removed := len(m.Verts) - len(keptVerts)
	m.Verts = keptVerts

	keptFaces := m.Faces[:0]
	for fi := range m.Faces {
		f := m.Faces[fi]
		ok := true
		for i, vi := range f.Verts {
			if remap[vi] < 0 {
				ok = false
				break
			}
			f.Verts[i] = remap[vi]
		}
		if ok {
			keptFaces = append(keptFaces, f)
		}
	}
	m.Faces = keptFaces

	keptEdges := make([]Edge, 0, len(m.Edges))
	for ei := range m.Edges {
		e := m.Edges[ei]
		if remap[e.V[0]] < 0 || remap[e.V[1]] < 0 {
			continue
		}
		e.V[0], e.V[1] = remap[e.V[0]], remap[e.V[1]]
		keptEdges = append(keptEdges, e)
	}
	m.Edges = keptEdges

	m.rebuildLinks()
	return removed
}

// MergeVertexGroups unifies every duplicate vertex onto its canonical
// vertex: face loops and edge endpoints are rewritten, faces whose loops
// collapse below three distinct vertices are dropped along with
// degenerate and duplicate edges, and the duplicate vertices are removed.
// Returns the number of vertices merged away.
func (m *Mesh) MergeVertexGroups(groups map[int][]int) int {
	remap := make([]int, len(m.Verts))
	for vi := range remap {
		remap[vi] = vi
	}
	dead := make(map[int]bool)
	for canon, dups := range groups {
		for _, d := range dups {
			if d >= 0 && d < len(m.Verts) && canon >= 0 && canon < len(m.Verts) && d != canon {
				remap[d] = canon
				dead[d] = true
			}
		}
	}
	if len(dead) == 0 {
		return 0
	}

	keptFaces := m.Faces[:0]
	for fi := range m.Faces {
		f := m.Faces[fi]
		loop := make([]int, 0, len(f.Verts))
		for _, vi := range f.Verts {
			loop = append(loop, remap[vi])
		}
		loop = collapseLoop(loop)
		if len(loop) < 3 || hasRepeats(loop) {
			continue // face degenerated by the merge
		}
		f.Verts = loop
		f.Normal = m.loopNormal(loop)
		keptFaces = append(keptFaces, f)
	}
	m.Faces = keptFaces

	seen := make(map[[2]int]bool, len(m.Edges))
	keptEdges := make([]Edge, 0, len(m.Edges))
	for ei := range m.Edges {
		e := m.Edges[ei]
		a, b := remap[e.V[0]], remap[e.V[1]]
		if a == b {
			continue
		}
		key := edgeKey(a, b)
		if seen[key] {
			continue
		}
		seen[key] = true
		e.V = key
		keptEdges = append(keptEdges, e)
	}
	m.Edges = keptEdges

	return m.removeVertices(dead)
}

// collapseLoop removes consecutive duplicate entries from a cyclic loop
func collapseLoop(loop []int) []int {
	out := loop[:0]
	for _, vi := range loop {
		if len(out) > 0 && out[len(out)-1] == vi {
			continue
		}
		out = append(out, vi)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}

func hasRepeats(loop []int) bool {
	seen := make(map[int]bool, len(loop))
	for _, vi := range loop {
		if seen[vi] {
			return true
		}
		seen[vi] = true
	}
	return false
}
