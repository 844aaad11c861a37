package toolkit

import (
	"github.com/philipparndt/gomesh/pkg/analysis"
)

// IsolateMode identifies what an isolate view filters for
type IsolateMode int

const (
	IsolateNone IsolateMode = iota
	IsolateTris
	IsolateNGons
	IsolateNonManifold
	IsolateConcave
	IsolateOverlapVerts
	IsolateOverlapFaces
)

func (m IsolateMode) String() string {
	switch m {
	case IsolateTris:
		return "TRIS"
	case IsolateNGons:
		return "NGONS"
	case IsolateNonManifold:
		return "NON_MANIFOLD"
	case IsolateConcave:
		return "CONCAVE"
	case IsolateOverlapVerts:
		return "OVERLAP_VERTS"
	case IsolateOverlapFaces:
		return "OVERLAP_FACES"
	default:
		return ""
	}
}

// IsolateState tracks the single active isolate of a session along with
// the display state saved when the isolate was entered. It is
// overwritten, never stacked, across chained isolate calls: entering a
// second isolate without reverting the first keeps the save taken before
// the first one.
type IsolateState struct {
	Mode            IsolateMode
	savedShading    Shading
	savedSelectMode SelectMode
}

// ToggleIsolate enters the requested isolate view, or reverts it when it
// is already active. Entering deselects everything, selects the elements
// matching the mode's predicate on every selected object and either
// hides the rest (solid shading) or leaves geometry visible in wireframe
// shading, depending on the session's wireframe toggle. Reverting
// reveals all hidden geometry, clears the selection and restores the
// shading and selection mode saved when the chain of isolates began.
func (s *Session) ToggleIsolate(mode IsolateMode) Result {
	if mode == IsolateNone {
		return cancelled("no isolate mode requested")
	}
	objs := s.selectedObjects()
	if len(objs) == 0 {
		return cancelled("no mesh objects selected")
	}
	s.Mode = ModeEdit

	// Same isolate toggled again: revert to the saved state.
	if s.Isolate.Mode == mode {
		for _, obj := range objs {
			obj.Mesh.RevealAll()
			obj.Mesh.DeselectAll()
		}
		s.Shading = s.Isolate.savedShading
		s.SelectMode = s.Isolate.savedSelectMode
		s.Isolate = IsolateState{}
		return finished()
	}

	// Different isolate already active, or stray hidden geometry:
	// reveal and deselect first so isolates never stack. The saved
	// display state is not restored here; the save about to be taken
	// belongs to the new transition.
	anyHidden := false
	for _, obj := range objs {
		if obj.Mesh.AnyHiddenFaces() {
			anyHidden = true
			break
		}
	}
	if s.Isolate.Mode != IsolateNone || anyHidden {
		for _, obj := range objs {
			obj.Mesh.RevealAll()
			obj.Mesh.DeselectAll()
		}
	}

	s.Isolate.savedShading = s.Shading
	s.Isolate.savedSelectMode = s.SelectMode

	if mode == IsolateOverlapVerts {
		s.SelectMode = selectVerts
	} else {
		s.SelectMode = selectFaces
	}

	for _, obj := range objs {
		m := obj.Mesh
		m.DeselectAll()
		switch mode {
		case IsolateTris:
			for fi := range m.Faces {
				m.Faces[fi].Selected = len(m.Faces[fi].Verts) == 3
			}
		case IsolateNGons:
			for fi := range m.Faces {
				m.Faces[fi].Selected = len(m.Faces[fi].Verts) > 4
			}
		case IsolateNonManifold:
			for fi := range m.Faces {
				m.Faces[fi].Selected = analysis.IsNonManifold(m, &m.Faces[fi])
			}
		case IsolateConcave:
			for fi := range m.Faces {
				m.Faces[fi].Selected = analysis.IsConcave(m, &m.Faces[fi])
			}
		case IsolateOverlapVerts:
			set := analysis.DuplicateSet(analysis.OverlappingVertices(m, s.Threshold))
			for vi := range set {
				m.Verts[vi].Selected = true
			}
		case IsolateOverlapFaces:
			set := analysis.DuplicateSet(analysis.OverlappingFaces(m, s.Threshold))
			for fi := range set {
				m.Faces[fi].Selected = true
			}
		}
	}

	if s.ShowWireIsolate {
		s.Shading = ShadingWireframe
	} else {
		for _, obj := range objs {
			if mode == IsolateOverlapVerts {
				obj.Mesh.HideUnselectedVertices()
			} else {
				obj.Mesh.HideUnselectedFaces()
			}
		}
		s.Shading = ShadingSolid
	}

	s.Isolate.Mode = mode
	return finished()
}
