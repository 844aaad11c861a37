package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gomesh/pkg/toolkit"
	"github.com/spf13/cobra"
)

var (
	isolateThreshold float64
	isolateWire      bool
)

var isolateModes = map[string]toolkit.IsolateMode{
	"tris":          toolkit.IsolateTris,
	"ngons":         toolkit.IsolateNGons,
	"non-manifold":  toolkit.IsolateNonManifold,
	"concave":       toolkit.IsolateConcave,
	"overlap-verts": toolkit.IsolateOverlapVerts,
	"overlap-faces": toolkit.IsolateOverlapFaces,
}

var isolateCmd = &cobra.Command{
	Use:   "isolate [mode] [file]",
	Short: "List the elements an isolate view would select",
	Long: `Enter the given isolate view on the mesh and report what it selects.
Modes: tris, ngons, non-manifold, concave, overlap-verts, overlap-faces.`,
	Args: cobra.ExactArgs(2),
	Run:  runIsolate,
}

func init() {
	rootCmd.AddCommand(isolateCmd)

	isolateCmd.Flags().Float64VarP(&isolateThreshold, "threshold", "t", 1e-4, "Distance to consider positions overlapping")
	isolateCmd.Flags().BoolVarP(&isolateWire, "wireframe", "w", true, "Keep unmatched geometry visible (wireframe view)")
}

func runIsolate(cmd *cobra.Command, args []string) {
	mode, ok := isolateModes[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown isolate mode: %s\n", args[0])
		os.Exit(1)
	}
	filename := args[1]
	session, m := loadMesh(filename, isolateThreshold)
	session.ShowWireIsolate = isolateWire

	printResult(session.ToggleIsolate(mode))

	selectedFaces, selectedVerts, hidden := 0, 0, 0
	for fi := range m.Faces {
		if m.Faces[fi].Selected {
			selectedFaces++
		}
		if m.Faces[fi].Hidden {
			hidden++
		}
	}
	for vi := range m.Verts {
		if m.Verts[vi].Selected {
			selectedVerts++
		}
	}

	fmt.Printf("Isolate %s on %s\n", mode, filename)
	if mode == toolkit.IsolateOverlapVerts {
		fmt.Printf("  Selected vertices: %d / %d\n", selectedVerts, len(m.Verts))
	} else {
		fmt.Printf("  Selected faces: %d / %d\n", selectedFaces, len(m.Faces))
	}
	fmt.Printf("  Hidden faces: %d\n", hidden)
	fmt.Printf("  Shading: %s\n", session.Shading)
}
