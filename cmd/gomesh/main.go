package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gomesh/pkg/mesh"
	"github.com/philipparndt/gomesh/pkg/stl"
	"github.com/philipparndt/gomesh/pkg/toolkit"
	"github.com/philipparndt/gomesh/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gomesh",
	Short: "A CLI toolkit for analyzing and cleaning up polygon meshes",
	Long: `gomesh is a command-line toolkit for preparing mesh assets for real-time
rendering. It finds and fixes the usual modeling problems: n-gons, concave
and non-manifold faces, overlapping vertices and faces, loose geometry and
inconsistent normals. It reads and writes both ASCII and binary STL.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadMesh parses an STL file into a session with a single object.
// Only exactly coincident corners are welded on load; merging
// near-duplicates is the cleanup pipeline's job, at the session
// threshold.
func loadMesh(filename string, threshold float64) (*toolkit.Session, *mesh.Mesh) {
	m, err := stl.Load(filename, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		os.Exit(1)
	}
	session := toolkit.NewSession()
	session.Threshold = threshold
	session.AddObject(filename, m)
	return session, m
}

// printResult reports an operation outcome the way the toolkit surfaces
// it: outcome plus warning/info messages.
func printResult(res toolkit.Result) {
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	for _, i := range res.Infos {
		fmt.Println(i)
	}
	if res.Outcome == toolkit.Cancelled {
		fmt.Fprintln(os.Stderr, "Cancelled")
		os.Exit(1)
	}
}
