package mesh

import (
	"errors"
	"fmt"
	"io"

	"github.com/philipparndt/govtu/pkg/vtu"
)

// LoadFile reads a VTU file and assembles it, see Load.
func LoadFile(filename string, fieldName string) (*Mesh, error) {
	doc, err := vtu.ParseFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return FromDocument(doc, fieldName)
}

// Load reads a complete VTU document from r and assembles it. An empty
// fieldName selects the first point-scalar field; if the file has none the
// mesh is returned without colors.
func Load(r io.Reader, fieldName string) (*Mesh, error) {
	doc, err := vtu.ParseReader(r)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc, fieldName)
}

// FromDocument extracts geometry, topology and the requested field from doc
// and assembles a mesh. Nothing is returned unless every step succeeds.
func FromDocument(doc *vtu.Document, fieldName string) (*Mesh, error) {
	points, err := vtu.ExtractPoints(doc)
	if err != nil {
		return nil, err
	}
	block, err := vtu.ExtractCellBlock(doc)
	if err != nil {
		return nil, err
	}

	if fieldName == "" {
		fieldName, err = vtu.DefaultScalarFieldName(doc)
		if errors.Is(err, vtu.ErrNoScalarData) {
			return AssembleGeometry(points, block)
		}
	}

	values, ok, err := vtu.ExtractScalarField(doc, fieldName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownField, fieldName, vtu.ListScalarFieldNames(doc))
	}
	return Assemble(points, block, ScalarField{Name: fieldName, Values: values})
}

// SelectField re-reads another scalar field from doc and returns m colored by it.
func SelectField(m *Mesh, doc *vtu.Document, fieldName string) (*Mesh, error) {
	values, ok, err := vtu.ExtractScalarField(doc, fieldName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, fieldName)
	}
	return m.WithField(ScalarField{Name: fieldName, Values: values})
}
