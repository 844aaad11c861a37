package main

import (
	"fmt"
	"os"
	"time"

	"github.com/philipparndt/gomesh/pkg/analysis"
	"github.com/philipparndt/gomesh/pkg/stl"
	"github.com/philipparndt/gomesh/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	checkThreshold float64
	checkWatch     bool
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a mesh file for modeling problems",
	Long: `Report n-gons, concave faces, non-manifold faces, overlapping vertices
and faces, and loose geometry. With --watch the file is re-checked every
time it changes.`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Float64VarP(&checkThreshold, "threshold", "t", 1e-4, "Distance to consider positions overlapping")
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Re-check whenever the file changes")
}

func runCheck(cmd *cobra.Command, args []string) {
	filename := args[0]

	clean := checkOnce(filename)

	if checkWatch {
		fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating watcher: %v\n", err)
			os.Exit(1)
		}
		defer fw.Close()

		if err := fw.Watch([]string{filename}, func(path string) {
			fmt.Println()
			checkOnce(path)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error watching file: %v\n", err)
			os.Exit(1)
		}
		fw.Start()
		fmt.Println("\nWatching for changes, press Ctrl+C to stop...")
		select {}
	}

	if !clean {
		os.Exit(1)
	}
}

func checkOnce(filename string) bool {
	m, err := stl.Load(filename, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing STL file: %v\n", err)
		return false
	}

	result := analysis.Analyze(m, checkThreshold)

	fmt.Printf("Checked %s (%d verts, %d edges, %d faces)\n",
		filename, result.VertexCount, result.EdgeCount, result.FaceCount)

	if result.Clean() {
		fmt.Println("No problems found")
		return true
	}

	report := func(count int, what string) {
		if count > 0 {
			fmt.Printf("  %d %s\n", count, what)
		}
	}
	report(result.NGons, "nGons")
	report(result.Concave, "concave faces")
	report(result.NonManifold, "non-manifold faces")
	report(result.OverlapVertices, "overlapping vertices")
	report(result.OverlapFaces, "overlapping faces")
	report(result.LooseVertices, "loose vertices")
	report(result.LooseEdges, "loose edges")
	return false
}
