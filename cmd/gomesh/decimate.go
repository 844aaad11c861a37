package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gomesh/pkg/stl"
	"github.com/spf13/cobra"
)

var (
	decimateAngle  float64
	decimateOutput string
	decimateBinary bool
)

var decimateCmd = &cobra.Command{
	Use:   "decimate [file]",
	Short: "Apply a planar decimate to a mesh file",
	Long: `Merge adjacent coplanar faces within the angle limit, the way a planar
(dissolve) decimate modifier does. The angle is in degrees, clamped 0-30.`,
	Args: cobra.ExactArgs(1),
	Run:  runDecimate,
}

func init() {
	rootCmd.AddCommand(decimateCmd)

	decimateCmd.Flags().Float64VarP(&decimateAngle, "angle", "a", 1.0, "Planar decimate angle limit in degrees")
	decimateCmd.Flags().StringVarP(&decimateOutput, "output", "o", "", "Output file (defaults to the input file)")
	decimateCmd.Flags().BoolVarP(&decimateBinary, "binary", "b", false, "Write binary STL instead of ASCII")
}

func runDecimate(cmd *cobra.Command, args []string) {
	filename := args[0]
	session, m := loadMesh(filename, 1e-4)

	faces := len(m.Faces)
	printResult(session.AddPlanarDecimate(decimateAngle))
	printResult(session.ApplyPlanarDecimate())
	fmt.Printf("Faces: %d -> %d\n", faces, len(m.Faces))

	output := decimateOutput
	if output == "" {
		output = filename
	}
	write := stl.Write
	if decimateBinary {
		write = stl.WriteBinary
	}
	if err := write(output, "gomesh decimate", m); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing STL file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", output)
}
