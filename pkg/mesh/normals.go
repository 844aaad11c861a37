package mesh

// RecalculateNormals makes face winding consistent across every connected
// manifold component and orients closed components outward. Winding is
// propagated from a seed face across shared manifold edges, flipping any
// face that disagrees; a component whose signed volume comes out negative
// is flipped as a whole.
func (m *Mesh) RecalculateNormals() {
	for fi := range m.Faces {
		m.Faces[fi].Normal = m.loopNormal(m.Faces[fi].Verts)
	}

	visited := make([]bool, len(m.Faces))
	for seed := range m.Faces {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		component := []int{seed}
		queue := []int{seed}
		closed := true

		for len(queue) > 0 {
			fi := queue[0]
			queue = queue[1:]
			loop := m.Faces[fi].Verts
			for i, a := range loop {
				b := loop[(i+1)%len(loop)]
				ei := m.EdgeBetween(a, b)
				if ei < 0 || len(m.Edges[ei].Faces) != 2 {
					closed = false
					continue // winding only propagates across manifold edges
				}
				other := m.Edges[ei].Faces[0]
				if other == fi {
					other = m.Edges[ei].Faces[1]
				}
				if visited[other] {
					continue
				}
				// Consistent neighbors traverse a shared edge in
				// opposite directions.
				if m.traversesForward(other, a, b) {
					m.flipFace(other)
				}
				visited[other] = true
				component = append(component, other)
				queue = append(queue, other)
			}
		}

		// Outward orientation is only well defined for closed
		// components; open surfaces keep the seed's winding.
		if closed && m.signedVolume(component) < 0 {
			for _, fi := range component {
				m.flipFace(fi)
			}
		}
	}
}

// traversesForward reports whether face fi walks the directed edge a->b
func (m *Mesh) traversesForward(fi, a, b int) bool {
	loop := m.Faces[fi].Verts
	for i, vi := range loop {
		if vi == a && loop[(i+1)%len(loop)] == b {
			return true
		}
	}
	return false
}

func (m *Mesh) flipFace(fi int) {
	loop := m.Faces[fi].Verts
	for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
		loop[i], loop[j] = loop[j], loop[i]
	}
	m.Faces[fi].Normal = m.Faces[fi].Normal.Mul(-1)
}

// signedVolume computes the signed volume enclosed by a set of faces via
// the divergence theorem. Positive means outward-facing winding for a
// closed surface.
func (m *Mesh) signedVolume(faces []int) float64 {
	vol := 0.0
	for _, fi := range faces {
		loop := m.Faces[fi].Verts
		p0 := m.Verts[loop[0]].Position
		for i := 1; i < len(loop)-1; i++ {
			p1 := m.Verts[loop[i]].Position
			p2 := m.Verts[loop[i+1]].Position
			vol += p0.Dot(p1.Cross(p2)) / 6.0
		}
	}
	return vol
}
