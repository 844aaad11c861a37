package analysis

import (
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCleanQuad(t *testing.T) {
	m := mesh.NewMesh()
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 1, 0))
	m.AddVertex(geometry.NewVector3(0, 1, 0))
	_, err := m.AddFace(0, 1, 2, 3)
	require.NoError(t, err)

	r := Analyze(m, 1e-4)
	assert.Equal(t, 4, r.VertexCount)
	assert.Equal(t, 4, r.EdgeCount)
	assert.Equal(t, 1, r.FaceCount)
	assert.Equal(t, 1, r.Quads)
	assert.Zero(t, r.Triangles)
	assert.Zero(t, r.NGons)
	assert.InDelta(t, 1.0, r.SurfaceArea, 1e-10)
	assert.InDelta(t, 1.0, r.MinEdgeLength, 1e-10)
	assert.InDelta(t, 1.0, r.MaxEdgeLength, 1e-10)
	assert.Equal(t, geometry.NewVector3(1, 1, 0), r.Dimensions)

	// Open surface: every border edge counts as non-manifold.
	assert.Equal(t, 1, r.NonManifold)
	assert.False(t, r.Clean())
}

func TestAnalyzeFindsProblems(t *testing.T) {
	m := mesh.NewMesh()
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(2, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0.25, 0))
	m.AddVertex(geometry.NewVector3(1, 2, 0))
	_, err := m.AddFace(0, 1, 2, 3) // concave dart
	require.NoError(t, err)
	m.AddVertex(geometry.NewVector3(9, 9, 9)) // loose
	m.AddVertex(geometry.NewVector3(0, 0, 0)) // duplicate of 0

	r := Analyze(m, 1e-4)
	assert.Equal(t, 1, r.Concave)
	assert.Equal(t, 2, r.LooseVertices)
	assert.Equal(t, 1, r.OverlapVertexGroups)
	assert.Equal(t, 1, r.OverlapVertices)
	assert.False(t, r.Clean())
}

func TestAnalyzeClosedCubeIsClean(t *testing.T) {
	m := mesh.NewMesh()
	coords := [][3]float64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	for _, c := range coords {
		m.AddVertex(geometry.NewVector3(c[0], c[1], c[2]))
	}
	loops := [][]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}
	for _, loop := range loops {
		_, err := m.AddFace(loop...)
		require.NoError(t, err)
	}

	r := Analyze(m, 1e-4)
	assert.True(t, r.Clean())
	assert.InDelta(t, 6.0, r.SurfaceArea, 1e-10)
	assert.InDelta(t, 1.0, r.AvgEdgeLength, 1e-10)
}

func TestFormatVector(t *testing.T) {
	assert.Equal(t, "(1.000000, 2.500000, -3.000000)",
		FormatVector(geometry.NewVector3(1, 2.5, -3)))
}
