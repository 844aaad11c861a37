package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Report contains the measurements and problem counts of a mesh
type Report struct {
	VertexCount int
	EdgeCount   int
	FaceCount   int

	Triangles   int
	Quads       int
	NGons       int
	Concave     int
	NonManifold int

	LooseVertices int
	LooseEdges    int

	OverlapVertexGroups int
	OverlapVertices     int
	OverlapFaceGroups   int
	OverlapFaces        int

	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3
	SurfaceArea float64

	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Analyze measures a mesh and counts the geometry problems the toolkit
// can isolate or clean up, using the given overlap distance threshold.
func Analyze(m *mesh.Mesh, threshold float64) *Report {
	r := &Report{
		VertexCount: len(m.Verts),
		EdgeCount:   len(m.Edges),
		FaceCount:   len(m.Faces),
		BoundingBox: m.BoundingBox(),
		SurfaceArea: m.SurfaceArea(),
	}
	r.Dimensions = r.BoundingBox.Size()

	for fi := range m.Faces {
		f := &m.Faces[fi]
		switch Classify(f) {
		case Tri:
			r.Triangles++
		case Quad:
			r.Quads++
		default:
			r.NGons++
		}
		if IsConcave(m, f) {
			r.Concave++
		}
		if IsNonManifold(m, f) {
			r.NonManifold++
		}
	}

	for vi := range m.Verts {
		v := &m.Verts[vi]
		if len(v.Edges) == 0 && len(v.Faces) == 0 {
			r.LooseVertices++
		}
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	for ei := range m.Edges {
		e := &m.Edges[ei]
		if len(e.Faces) == 0 {
			r.LooseEdges++
		}
		length := m.Verts[e.V[0]].Position.Distance(m.Verts[e.V[1]].Position)
		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}
	if len(m.Edges) > 0 {
		r.MinEdgeLength = minLength
		r.MaxEdgeLength = maxLength
		r.AvgEdgeLength = totalLength / float64(len(m.Edges))
	}

	vertGroups := OverlappingVertices(m, threshold)
	r.OverlapVertexGroups = len(vertGroups)
	r.OverlapVertices = len(Duplicates(vertGroups))
	faceGroups := OverlappingFaces(m, threshold)
	r.OverlapFaceGroups = len(faceGroups)
	r.OverlapFaces = len(Duplicates(faceGroups))

	return r
}

// Clean reports whether the analysis found nothing to fix
func (r *Report) Clean() bool {
	return r.NGons == 0 && r.Concave == 0 && r.NonManifold == 0 &&
		r.LooseVertices == 0 && r.LooseEdges == 0 &&
		r.OverlapVertices == 0 && r.OverlapFaces == 0
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
