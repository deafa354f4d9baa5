package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipparndt/govtu/pkg/geometry"
)

// WriteFile writes the model to filename in ASCII or binary format
func WriteFile(m *Model, filename string, asBinary bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	w := bufio.NewWriter(file)
	if asBinary {
		err = WriteBinary(w, m)
	} else {
		err = WriteASCII(w, m)
	}
	if err == nil {
		err = w.Flush()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

// WriteASCII writes the model as an ASCII STL solid
func WriteASCII(w io.Writer, m *Model) error {
	name := strings.TrimSpace(m.Name)
	if _, err := fmt.Fprintf(w, "solid %s\n", name); err != nil {
		return err
	}
	for _, f := range m.Facets {
		_, err := fmt.Fprintf(w,
			"  facet normal %s\n    outer loop\n      vertex %s\n      vertex %s\n      vertex %s\n    endloop\n  endfacet\n",
			formatVector(f.Normal), formatVector(f.V1), formatVector(f.V2), formatVector(f.V3))
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "endsolid %s\n", name)
	return err
}

// WriteBinary writes the model in little-endian binary STL format
func WriteBinary(w io.Writer, m *Model) error {
	var header [80]byte
	// A binary header must not start with "solid" or readers take it for ASCII
	copy(header[:], "binary "+m.Name)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Facets))); err != nil {
		return err
	}
	for _, f := range m.Facets {
		record := binaryFacet{
			Normal: f.Normal.Float32(),
			V1:     f.V1.Float32(),
			V2:     f.V2.Float32(),
			V3:     f.V3.Float32(),
		}
		if err := binary.Write(w, binary.LittleEndian, &record); err != nil {
			return err
		}
	}
	return nil
}

func formatVector(v geometry.Vector3) string {
	return fmt.Sprintf("%e %e %e", v.X, v.Y, v.Z)
}
