package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/mesh"
)

// OverlappingVertices finds vertices whose positions coincide within the
// distance threshold t. Positions are quantized onto a grid of cell size
// t; vertices are enumerated in index order and the first vertex in each
// cell is the canonical representative. The result maps each canonical
// vertex to the duplicates found for it; vertices without duplicates do
// not appear. Single pass, O(n).
func OverlappingVertices(m *mesh.Mesh, t float64) map[int][]int {
	groups := make(map[int][]int)
	seen := make(map[geometry.GridKey]int, len(m.Verts))
	for vi := range m.Verts {
		key := geometry.Quantize(m.Verts[vi].Position, t)
		if canon, ok := seen[key]; ok {
			groups[canon] = append(groups[canon], vi)
		} else {
			seen[key] = vi
		}
	}
	return groups
}

// OverlappingFaces finds faces whose quantized vertex sets coincide at
// threshold t. The face key is the sorted multiset of the loop's vertex
// grid keys, which makes it invariant to the loop's starting offset and
// winding direction: a face and its reverse-wound duplicate collide.
// First-seen faces are canonical, later ones duplicates.
func OverlappingFaces(m *mesh.Mesh, t float64) map[int][]int {
	groups := make(map[int][]int)
	seen := make(map[string]int, len(m.Faces))
	for fi := range m.Faces {
		key := faceKey(m, &m.Faces[fi], t)
		if canon, ok := seen[key]; ok {
			groups[canon] = append(groups[canon], fi)
		} else {
			seen[key] = fi
		}
	}
	return groups
}

func faceKey(m *mesh.Mesh, f *mesh.Face, t float64) string {
	keys := make([]geometry.GridKey, len(f.Verts))
	for i, vi := range f.Verts {
		keys[i] = geometry.Quantize(m.Verts[vi].Position, t)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%d,%d,%d;", k.X, k.Y, k.Z)
	}
	return b.String()
}

// DuplicateSet flattens duplicate groups into the set of every involved
// element: canonical representatives and their duplicates. Callers that
// select or merge pairs need both sides.
func DuplicateSet(groups map[int][]int) map[int]bool {
	set := make(map[int]bool)
	for canon, dups := range groups {
		set[canon] = true
		for _, d := range dups {
			set[d] = true
		}
	}
	return set
}

// Duplicates flattens duplicate groups into the duplicates only,
// leaving the canonical representative of each group out.
func Duplicates(groups map[int][]int) []int {
	var out []int
	for _, dups := range groups {
		out = append(out, dups...)
	}
	sort.Ints(out)
	return out
}

// overlappingVerticesBrute is the O(n²) pairwise-distance reference for
// OverlappingVertices. It is not on any primary path; it exists to
// cross-check the hashed implementation.
func overlappingVerticesBrute(m *mesh.Mesh, t float64) map[int]bool {
	flagged := make(map[int]bool)
	for i := range m.Verts {
		for j := i + 1; j < len(m.Verts); j++ {
			if m.Verts[i].Position.Distance(m.Verts[j].Position) <= t {
				flagged[i] = true
				flagged[j] = true
			}
		}
	}
	return flagged
}
