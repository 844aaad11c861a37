package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/gomesh/pkg/mesh"
)

// Write saves a mesh as an ASCII STL file, fan-triangulating any
// non-triangle faces.
func Write(filename, name string, m *mesh.Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := writeASCII(w, name, m); err != nil {
		return err
	}
	return w.Flush()
}

func writeASCII(w io.Writer, name string, m *mesh.Mesh) error {
	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return fmt.Errorf("error writing ASCII STL: %w", err)
	}
	for _, t := range m.Triangles() {
		n := t.Normal
		if n.Length() == 0 {
			n = t.CalculateNormal()
		}
		fmt.Fprintf(w, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintf(w, "    outer loop\n")
		fmt.Fprintf(w, "      vertex %g %g %g\n", t.V1.X, t.V1.Y, t.V1.Z)
		fmt.Fprintf(w, "      vertex %g %g %g\n", t.V2.X, t.V2.Y, t.V2.Z)
		fmt.Fprintf(w, "      vertex %g %g %g\n", t.V3.X, t.V3.Y, t.V3.Z)
		fmt.Fprintf(w, "    endloop\n")
		fmt.Fprintf(w, "  endfacet\n")
	}
	if _, err := fmt.Fprintf(w, "endsolid %s\n", name); err != nil {
		return fmt.Errorf("error writing ASCII STL: %w", err)
	}
	return nil
}

// WriteBinary saves a mesh as a binary STL file
func WriteBinary(filename, name string, m *mesh.Mesh) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	header := make([]byte, 80)
	copy(header, name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	tris := m.Triangles()
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tris))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, t := range tris {
		n := t.Normal
		if n.Length() == 0 {
			n = t.CalculateNormal()
		}
		data := []float32{
			float32(n.X), float32(n.Y), float32(n.Z),
			float32(t.V1.X), float32(t.V1.Y), float32(t.V1.Z),
			float32(t.V2.X), float32(t.V2.Y), float32(t.V2.Z),
			float32(t.V3.X), float32(t.V3.Y), float32(t.V3.Z),
		}
		if err := binary.Write(w, binary.LittleEndian, data); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("failed to write attribute for triangle %d: %w", i, err)
		}
	}
	return w.Flush()
}
