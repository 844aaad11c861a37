package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gomesh/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	fixNgonsOutput string
	fixNgonsBinary bool
)

var fixNgonsCmd = &cobra.Command{
	Use:   "fix-ngons [file]",
	Short: "Triangulate n-gons and convert back to quads where possible",
	Args:  cobra.ExactArgs(1),
	Run:   runFixNgons,
}

func init() {
	rootCmd.AddCommand(fixNgonsCmd)

	fixNgonsCmd.Flags().StringVarP(&fixNgonsOutput, "output", "o", "", "Output file (defaults to the input file)")
	fixNgonsCmd.Flags().BoolVarP(&fixNgonsBinary, "binary", "b", false, "Write binary STL instead of ASCII")
}

func runFixNgons(cmd *cobra.Command, args []string) {
	filename := args[0]
	session, m := loadMesh(filename, 1e-4)

	printResult(session.FixNgons())

	output := fixNgonsOutput
	if output == "" {
		output = filename
	}
	write := stl.Write
	if fixNgonsBinary {
		write = stl.WriteBinary
	}
	if err := write(output, "gomesh fix-ngons", m); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing STL file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", output)
}
