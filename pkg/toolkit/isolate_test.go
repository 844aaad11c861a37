package toolkit

import (
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mixedMesh builds a flat strip holding one triangle, one quad and one
// pentagon side by side.
func mixedMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	add := func(x, y float64) int { return m.AddVertex(geometry.NewVector3(x, y, 0)) }

	a := add(0, 0)
	b := add(1, 0)
	c := add(1, 1)
	_, err := m.AddFace(a, b, c)
	require.NoError(t, err)

	d := add(2, 0)
	e := add(3, 0)
	f := add(3, 1)
	g := add(2, 1)
	_, err = m.AddFace(d, e, f, g)
	require.NoError(t, err)

	h := add(4, 0)
	i := add(5, 0)
	j := add(5.5, 0.5)
	k := add(5, 1)
	l := add(4, 1)
	_, err = m.AddFace(h, i, j, k, l)
	require.NoError(t, err)

	return m
}

func sessionWith(t *testing.T, m *mesh.Mesh) *Session {
	t.Helper()
	s := NewSession()
	s.AddObject("test", m)
	return s
}

func selectedFaces(m *mesh.Mesh) []int {
	var out []int
	for fi := range m.Faces {
		if m.Faces[fi].Selected {
			out = append(out, fi)
		}
	}
	return out
}

func hiddenFaces(m *mesh.Mesh) []int {
	var out []int
	for fi := range m.Faces {
		if m.Faces[fi].Hidden {
			out = append(out, fi)
		}
	}
	return out
}

func TestToggleIsolateNoObjects(t *testing.T) {
	s := NewSession()
	res := s.ToggleIsolate(IsolateTris)
	assert.Equal(t, Cancelled, res.Outcome)
}

func TestToggleIsolateNoneMode(t *testing.T) {
	s := sessionWith(t, mixedMesh(t))
	res := s.ToggleIsolate(IsolateNone)
	assert.Equal(t, Cancelled, res.Outcome)
}

func TestToggleIsolateTrisWireframe(t *testing.T) {
	m := mixedMesh(t)
	s := sessionWith(t, m)

	res := s.ToggleIsolate(IsolateTris)
	assert.Equal(t, Finished, res.Outcome)
	assert.Equal(t, IsolateTris, s.Isolate.Mode)
	assert.Equal(t, ModeEdit, s.Mode)
	assert.Equal(t, ShadingWireframe, s.Shading)
	assert.Equal(t, selectFaces, s.SelectMode)
	assert.Equal(t, []int{0}, selectedFaces(m))
	assert.Empty(t, hiddenFaces(m), "wireframe isolate hides nothing")
}

func TestToggleIsolateSolidHides(t *testing.T) {
	m := mixedMesh(t)
	s := sessionWith(t, m)
	s.ShowWireIsolate = false

	res := s.ToggleIsolate(IsolateNGons)
	assert.Equal(t, Finished, res.Outcome)
	assert.Equal(t, ShadingSolid, s.Shading)
	assert.Equal(t, []int{2}, selectedFaces(m))
	assert.Equal(t, []int{0, 1}, hiddenFaces(m))
}

func TestToggleIsolateRoundTrip(t *testing.T) {
	m := mixedMesh(t)
	s := sessionWith(t, m)
	s.ShowWireIsolate = false

	require.Equal(t, Finished, s.ToggleIsolate(IsolateNGons).Outcome)
	require.NotEmpty(t, hiddenFaces(m))

	// Toggling the same mode again reverts everything.
	res := s.ToggleIsolate(IsolateNGons)
	assert.Equal(t, Finished, res.Outcome)
	assert.Equal(t, IsolateNone, s.Isolate.Mode)
	assert.Equal(t, ShadingSolid, s.Shading)
	assert.Equal(t, selectFaces, s.SelectMode)
	assert.Empty(t, selectedFaces(m))
	assert.Empty(t, hiddenFaces(m))
	assert.False(t, m.AnyHiddenFaces())
}

func TestToggleIsolateRestoresShadingAndSelectMode(t *testing.T) {
	m := mixedMesh(t)
	s := sessionWith(t, m)
	s.Shading = ShadingSolid
	s.SelectMode = SelectMode{Edge: true}

	require.Equal(t, Finished, s.ToggleIsolate(IsolateOverlapVerts).Outcome)
	assert.Equal(t, selectVerts, s.SelectMode)
	assert.Equal(t, ShadingWireframe, s.Shading)

	require.Equal(t, Finished, s.ToggleIsolate(IsolateOverlapVerts).Outcome)
	assert.Equal(t, SelectMode{Edge: true}, s.SelectMode)
	assert.Equal(t, ShadingSolid, s.Shading)
}

func TestToggleIsolateChainSwitchesCleanly(t *testing.T) {
	m := mixedMesh(t)
	s := sessionWith(t, m)
	s.ShowWireIsolate = false

	require.Equal(t, Finished, s.ToggleIsolate(IsolateTris).Outcome)
	require.Equal(t, Finished, s.ToggleIsolate(IsolateNGons).Outcome)

	// Only the second isolate's selection and hiding remain.
	assert.Equal(t, IsolateNGons, s.Isolate.Mode)
	assert.Equal(t, []int{2}, selectedFaces(m))
	assert.Equal(t, []int{0, 1}, hiddenFaces(m))
}

func TestToggleIsolateChainKeepsFirstSave(t *testing.T) {
	m := mixedMesh(t)
	s := sessionWith(t, m)
	s.Shading = ShadingSolid

	require.Equal(t, Finished, s.ToggleIsolate(IsolateTris).Outcome)
	require.Equal(t, ShadingWireframe, s.Shading)

	// Chaining overwrites the save with the state at the transition,
	// which by now is the wireframe the first isolate set.
	require.Equal(t, Finished, s.ToggleIsolate(IsolateNGons).Outcome)
	require.Equal(t, Finished, s.ToggleIsolate(IsolateNGons).Outcome)
	assert.Equal(t, ShadingWireframe, s.Shading)
}

func TestToggleIsolateOverlapVerts(t *testing.T) {
	m := mesh.NewMesh()
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 1, 0))
	m.AddVertex(geometry.NewVector3(0, 0, 0)) // duplicate of 0
	_, err := m.AddFace(0, 1, 2)
	require.NoError(t, err)

	s := sessionWith(t, m)
	res := s.ToggleIsolate(IsolateOverlapVerts)
	assert.Equal(t, Finished, res.Outcome)
	assert.Equal(t, selectVerts, s.SelectMode)
	assert.True(t, m.Verts[0].Selected)
	assert.True(t, m.Verts[3].Selected)
	assert.False(t, m.Verts[1].Selected)
	assert.False(t, m.Verts[2].Selected)
}

func TestToggleIsolateOverlapFaces(t *testing.T) {
	m := mesh.NewMesh()
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 1, 0))
	m.AddVertex(geometry.NewVector3(5, 0, 0))
	m.AddVertex(geometry.NewVector3(6, 0, 0))
	m.AddVertex(geometry.NewVector3(6, 1, 0))
	_, err := m.AddFace(0, 1, 2)
	require.NoError(t, err)
	_, err = m.AddFace(3, 4, 5)
	require.NoError(t, err)
	_, err = m.AddFace(2, 1, 0) // reverse-wound duplicate
	require.NoError(t, err)

	s := sessionWith(t, m)
	res := s.ToggleIsolate(IsolateOverlapFaces)
	assert.Equal(t, Finished, res.Outcome)
	// Canonical and duplicate are both selected, the unrelated face not.
	assert.Equal(t, []int{0, 2}, selectedFaces(m))
}

func TestToggleIsolateConcave(t *testing.T) {
	m := mesh.NewMesh()
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(2, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0.25, 0))
	m.AddVertex(geometry.NewVector3(1, 2, 0))
	_, err := m.AddFace(0, 1, 2, 3) // dart
	require.NoError(t, err)
	m.AddVertex(geometry.NewVector3(5, 0, 0))
	m.AddVertex(geometry.NewVector3(6, 0, 0))
	m.AddVertex(geometry.NewVector3(6, 1, 0))
	m.AddVertex(geometry.NewVector3(5, 1, 0))
	_, err = m.AddFace(4, 5, 6, 7) // square
	require.NoError(t, err)

	s := sessionWith(t, m)
	res := s.ToggleIsolate(IsolateConcave)
	assert.Equal(t, Finished, res.Outcome)
	assert.Equal(t, []int{0}, selectedFaces(m))
}

func TestToggleIsolateNonManifold(t *testing.T) {
	m := mixedMesh(t)
	s := sessionWith(t, m)

	// The strip is all border edges, so every face qualifies.
	res := s.ToggleIsolate(IsolateNonManifold)
	assert.Equal(t, Finished, res.Outcome)
	assert.Equal(t, []int{0, 1, 2}, selectedFaces(m))
}

func TestToggleIsolateRevealsStrayHidden(t *testing.T) {
	m := mixedMesh(t)
	s := sessionWith(t, m)
	s.ShowWireIsolate = true
	m.Faces[1].Hidden = true

	require.Equal(t, Finished, s.ToggleIsolate(IsolateTris).Outcome)
	assert.Empty(t, hiddenFaces(m))
	assert.Equal(t, []int{0}, selectedFaces(m))
}

func TestIsolateModeStrings(t *testing.T) {
	assert.Equal(t, "TRIS", IsolateTris.String())
	assert.Equal(t, "NGONS", IsolateNGons.String())
	assert.Equal(t, "NON_MANIFOLD", IsolateNonManifold.String())
	assert.Equal(t, "CONCAVE", IsolateConcave.String())
	assert.Equal(t, "OVERLAP_VERTS", IsolateOverlapVerts.String())
	assert.Equal(t, "OVERLAP_FACES", IsolateOverlapFaces.String())
	assert.Equal(t, "", IsolateNone.String())
}
