package toolkit

import (
	"math"

	"github.com/philipparndt/gomesh/pkg/analysis"
)

// trisToQuadsAngle is the normal deviation tolerance used when pairing
// triangles back into quads.
const trisToQuadsAngle = 40.0 * math.Pi / 180.0

// Cleanup runs the fixed cleanup sequence on every selected object:
// merge overlapping vertices at the session threshold, remove duplicate
// faces, remove loose vertices, remove loose edges, then recalculate
// normals for consistent outward winding. Steps are best effort and
// independent; a failing object is reported and the loop continues.
func (s *Session) Cleanup() Result {
	objs := s.selectedObjects()
	if len(objs) == 0 {
		return cancelled("no mesh objects selected")
	}
	res := finished()

	for _, obj := range objs {
		s.Active = obj
		s.Mode = ModeEdit
		m := obj.Mesh

		merged := m.MergeVertexGroups(analysis.OverlappingVertices(m, s.Threshold))

		dupFaces := analysis.Duplicates(analysis.OverlappingFaces(m, s.Threshold))
		removedFaces := m.DeleteFaces(dupFaces)

		looseVerts := m.DeleteLooseVertices()
		looseEdges := m.DeleteLooseEdges()

		prev := s.SelectMode
		s.SelectMode = selectFaces
		m.SelectAllFaces()
		m.RecalculateNormals()
		s.SelectMode = prev

		if merged > 0 || removedFaces > 0 || looseVerts > 0 || looseEdges > 0 {
			res.infof("%s: merged %d verts, removed %d faces, %d loose verts, %d loose edges",
				obj.Name, merged, removedFaces, looseVerts, looseEdges)
		}
	}

	s.Mode = ModeObject
	return res
}

// FixNgons triangulates every n-gon on the selected objects and converts
// the resulting triangles back to quads where possible.
func (s *Session) FixNgons() Result {
	objs := s.selectedObjects()
	if len(objs) == 0 {
		return cancelled("no mesh objects selected")
	}

	for _, obj := range objs {
		s.Active = obj
		s.Mode = ModeEdit
		m := obj.Mesh

		for fi := range m.Faces {
			m.Faces[fi].Selected = len(m.Faces[fi].Verts) > 4
		}
		m.TriangulateFaces(true)
		// The new triangles inherit the n-gons' selection, so only they
		// are paired back into quads.
		m.TrisToQuads(trisToQuadsAngle, true)
		s.Mode = ModeObject
	}
	return finished()
}

// Triangulate converts the active object's quads and n-gons to
// triangles. In edit mode only the selected faces are split; in object
// mode the whole mesh is.
func (s *Session) Triangulate() Result {
	obj := s.Active
	if obj == nil || obj.Mesh == nil {
		return cancelled("no active mesh object")
	}

	if s.Mode == ModeEdit {
		obj.Mesh.TriangulateFaces(true)
	} else {
		s.Mode = ModeEdit
		obj.Mesh.SelectAllFaces()
		obj.Mesh.TriangulateFaces(false)
		s.Mode = ModeObject
	}
	return finished()
}

// TrisToQuads converts the active object's triangles back to quads
// where possible. In edit mode only selected triangle pairs are joined;
// in object mode the whole mesh is.
func (s *Session) TrisToQuads() Result {
	obj := s.Active
	if obj == nil || obj.Mesh == nil {
		return cancelled("no active mesh object")
	}

	if s.Mode == ModeEdit {
		obj.Mesh.TrisToQuads(trisToQuadsAngle, true)
	} else {
		s.Mode = ModeEdit
		obj.Mesh.SelectAllFaces()
		obj.Mesh.TrisToQuads(trisToQuadsAngle, false)
		s.Mode = ModeObject
	}
	return finished()
}

// RotateEdge rotates every selected edge of the active object to its
// alternate diagonal. Edges that cannot rotate are reported and skipped.
func (s *Session) RotateEdge() Result {
	obj := s.Active
	if obj == nil || obj.Mesh == nil {
		return cancelled("no active mesh object")
	}
	m := obj.Mesh

	var selected []int
	for ei := range m.Edges {
		if m.Edges[ei].Selected {
			selected = append(selected, ei)
		}
	}
	if len(selected) == 0 {
		return cancelled("no edges selected")
	}

	res := finished()
	// Rotate back to front so surviving indices stay valid while the
	// edge array is reshuffled.
	for i := len(selected) - 1; i >= 0; i-- {
		if err := m.RotateEdge(selected[i]); err != nil {
			res.warnf("%s: %v", obj.Name, err)
		}
	}
	return res
}
