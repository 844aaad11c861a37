package analysis

import (
	"testing"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// polygon builds a mesh holding a single face with the given XY-plane loop
func polygon(t *testing.T, pts ...[2]float64) *mesh.Mesh {
	t.Helper()
	m := mesh.NewMesh()
	loop := make([]int, len(pts))
	for i, p := range pts {
		loop[i] = m.AddVertex(geometry.NewVector3(p[0], p[1], 0))
	}
	_, err := m.AddFace(loop...)
	require.NoError(t, err)
	return m
}

func TestClassify(t *testing.T) {
	cases := []struct {
		verts int
		want  FaceClass
	}{
		{3, Tri},
		{4, Quad},
		{5, NGon},
		{8, NGon},
	}
	for _, c := range cases {
		f := &mesh.Face{Verts: make([]int, c.verts)}
		assert.Equal(t, c.want, Classify(f), "loop length %d", c.verts)
	}
}

func TestIsConcaveTriangleAlwaysConvex(t *testing.T) {
	// Even a degenerate sliver triangle is convex by definition.
	m := polygon(t, [2]float64{0, 0}, [2]float64{10, 0}, [2]float64{5, 0.001})
	assert.False(t, IsConcave(m, &m.Faces[0]))
}

func TestIsConcaveSquare(t *testing.T) {
	m := polygon(t, [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1})
	assert.False(t, IsConcave(m, &m.Faces[0]))
}

func TestIsConcaveDart(t *testing.T) {
	// Quad with one reflex vertex pulled into the interior.
	m := polygon(t, [2]float64{0, 0}, [2]float64{2, 0}, [2]float64{1, 0.25}, [2]float64{1, 2})
	assert.True(t, IsConcave(m, &m.Faces[0]))
}

func TestIsConcavePentagonWithNotch(t *testing.T) {
	m := polygon(t,
		[2]float64{0, 0}, [2]float64{2, 0}, [2]float64{2, 2},
		[2]float64{1, 0.5}, // notch
		[2]float64{0, 2})
	assert.True(t, IsConcave(m, &m.Faces[0]))
}

func TestIsConcaveRegularPentagon(t *testing.T) {
	m := polygon(t,
		[2]float64{1, 0}, [2]float64{0.309, 0.951}, [2]float64{-0.809, 0.588},
		[2]float64{-0.809, -0.588}, [2]float64{0.309, -0.951})
	assert.False(t, IsConcave(m, &m.Faces[0]))
}

func TestIsConcaveCollinearVertices(t *testing.T) {
	// A square with a redundant vertex on one edge: a collinear triple
	// produces an exactly-zero cross product, which is not concave.
	m := polygon(t,
		[2]float64{0, 0}, [2]float64{1, 0}, [2]float64{2, 0},
		[2]float64{2, 2}, [2]float64{0, 2})
	assert.False(t, IsConcave(m, &m.Faces[0]))
}

func TestIsConcaveCyclicRotationInvariant(t *testing.T) {
	pts := [][2]float64{{0, 0}, {2, 0}, {1, 0.25}, {1, 2}}
	for shift := 0; shift < len(pts); shift++ {
		rotated := append(append([][2]float64{}, pts[shift:]...), pts[:shift]...)
		m := polygon(t, rotated...)
		assert.True(t, IsConcave(m, &m.Faces[0]), "rotation %d", shift)
	}
}

func TestIsConcaveWindingInvariant(t *testing.T) {
	m := polygon(t, [2]float64{1, 2}, [2]float64{1, 0.25}, [2]float64{2, 0}, [2]float64{0, 0})
	assert.True(t, IsConcave(m, &m.Faces[0]))
}

func TestIsConcaveTiltedPlane(t *testing.T) {
	// Same dart shape, embedded in a slanted plane.
	m := mesh.NewMesh()
	u := geometry.NewVector3(1, 0, 1).Normalize()
	v := geometry.NewVector3(0, 1, 0)
	shape := [][2]float64{{0, 0}, {2, 0}, {1, 0.25}, {1, 2}}
	loop := make([]int, len(shape))
	for i, p := range shape {
		pos := u.Mul(p[0]).Add(v.Mul(p[1]))
		loop[i] = m.AddVertex(pos)
	}
	_, err := m.AddFace(loop...)
	require.NoError(t, err)

	assert.True(t, IsConcave(m, &m.Faces[0]))
}

func TestIsNonManifold(t *testing.T) {
	m := mesh.NewMesh()
	m.AddVertex(geometry.NewVector3(0, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 0, 0))
	m.AddVertex(geometry.NewVector3(1, 1, 0))
	m.AddVertex(geometry.NewVector3(0, 1, 0))
	_, err := m.AddFace(0, 1, 2)
	require.NoError(t, err)

	// Border edges have a single incident face.
	assert.True(t, IsNonManifold(m, &m.Faces[0]))

	// Closing the fan still leaves the outer border open.
	_, err = m.AddFace(0, 2, 3)
	require.NoError(t, err)
	assert.True(t, IsNonManifold(m, &m.Faces[0]))
	assert.True(t, IsNonManifold(m, &m.Faces[1]))
}

func TestIsNonManifoldClosedSolid(t *testing.T) {
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

	for fi := range m.Faces {
		assert.False(t, IsNonManifold(m, &m.Faces[fi]), "face %d", fi)
	}

	// A fin glued onto one edge makes that edge triple-incident.
	a := m.AddVertex(geometry.NewVector3(0.5, -1, 0.5))
	_, err := m.AddFace(0, 1, a)
	require.NoError(t, err)
	assert.True(t, IsNonManifold(m, &m.Faces[2]))
}
