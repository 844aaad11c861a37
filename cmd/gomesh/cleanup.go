package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gomesh/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	cleanupThreshold float64
	cleanupOutput    string
	cleanupBinary    bool
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup [file]",
	Short: "Clean up a mesh file",
	Long: `Merge overlapping vertices, remove duplicate faces and loose elements,
then recalculate normals for consistent outward winding. The result is
written to the output file, or back to the input when none is given.`,
	Args: cobra.ExactArgs(1),
	Run:  runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)

	cleanupCmd.Flags().Float64VarP(&cleanupThreshold, "threshold", "t", 1e-4, "Threshold for merging overlapping vertices")
	cleanupCmd.Flags().StringVarP(&cleanupOutput, "output", "o", "", "Output file (defaults to the input file)")
	cleanupCmd.Flags().BoolVarP(&cleanupBinary, "binary", "b", false, "Write binary STL instead of ASCII")
}

func runCleanup(cmd *cobra.Command, args []string) {
	filename := args[0]
	session, m := loadMesh(filename, cleanupThreshold)

	printResult(session.Cleanup())

	output := cleanupOutput
	if output == "" {
		output = filename
	}
	write := stl.Write
	if cleanupBinary {
		write = stl.WriteBinary
	}
	if err := write(output, "gomesh cleanup", m); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing STL file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", output)
}
