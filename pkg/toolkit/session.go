package toolkit

import "github.com/philipparndt/gomesh/pkg/mesh"

// Shading is the viewport shading mode
type Shading int

const (
	ShadingSolid Shading = iota
	ShadingWireframe
)

func (s Shading) String() string {
	if s == ShadingWireframe {
		return "WIREFRAME"
	}
	return "SOLID"
}

// EditMode distinguishes whole-object mode from element editing
type EditMode int

const (
	ModeObject EditMode = iota
	ModeEdit
)

// SelectMode is the selection granularity triple (vertex, edge, face)
type SelectMode struct {
	Vertex, Edge, Face bool
}

var (
	selectVerts = SelectMode{Vertex: true}
	selectFaces = SelectMode{Face: true}
)

// DefaultThreshold is the distance below which two positions are treated
// as coincident for deduplication.
const DefaultThreshold = 1e-4

// Object is one editable mesh object in a session
type Object struct {
	Name      string
	Mesh      *mesh.Mesh
	Selected  bool
	Modifiers []*Modifier
}

// Session owns all state shared across operations for one editing
// session: the object list, display and selection modes, the tool
// settings and the isolate state. Operations mutate it exclusively for
// the duration of a call; there is no concurrent access.
type Session struct {
	Objects []*Object
	Active  *Object

	Mode       EditMode
	Shading    Shading
	SelectMode SelectMode

	ShowWireIsolate bool
	Threshold       float64
	DecimateAngle   float64 // degrees, clamped 0-30

	Isolate IsolateState
}

// NewSession creates a session with the toolkit defaults
func NewSession() *Session {
	return &Session{
		Shading:         ShadingSolid,
		SelectMode:      selectFaces,
		ShowWireIsolate: true,
		Threshold:       DefaultThreshold,
		DecimateAngle:   1.0,
	}
}

// AddObject adds a mesh object to the session. New objects start
// selected; the first one becomes the active object.
func (s *Session) AddObject(name string, m *mesh.Mesh) *Object {
	obj := &Object{Name: name, Mesh: m, Selected: true}
	s.Objects = append(s.Objects, obj)
	if s.Active == nil {
		s.Active = obj
	}
	return obj
}

// selectedObjects returns the selected mesh objects, making sure the
// active object is one of them when any exist.
func (s *Session) selectedObjects() []*Object {
	var objs []*Object
	for _, obj := range s.Objects {
		if obj.Selected && obj.Mesh != nil {
			objs = append(objs, obj)
		}
	}
	if len(objs) > 0 {
		active := false
		for _, obj := range objs {
			if obj == s.Active {
				active = true
				break
			}
		}
		if !active {
			s.Active = objs[0]
		}
	}
	return objs
}
