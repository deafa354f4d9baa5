package vtu

import (
	"fmt"
	"strconv"

	"github.com/philipparndt/govtu/pkg/cell"
)

// ListScalarFieldNames returns the names of all single-component point-data
// arrays in document order. It returns an empty slice when there are none.
func ListScalarFieldNames(doc *Document) []string {
	names := make([]string, 0)
	for _, arr := range pointScalarArrays(doc) {
		names = append(names, arr.Attr("Name"))
	}
	return names
}

// DefaultScalarFieldName returns the first point-scalar field, for callers
// that need one to drive a color map.
func DefaultScalarFieldName(doc *Document) (string, error) {
	names := ListScalarFieldNames(doc)
	if len(names) == 0 {
		return "", ErrNoScalarData
	}
	return names[0], nil
}

// ExtractPoints returns the flat XYZ coordinate buffer of the first Points section.
func ExtractPoints(doc *Document) ([]float64, error) {
	section := doc.Root.Find("Points")
	if section == nil {
		return nil, fmt.Errorf("%w: no Points section", ErrMissingGeometry)
	}
	arr := section.Find("DataArray")
	if arr == nil {
		return nil, fmt.Errorf("%w: Points section has no DataArray", ErrMissingGeometry)
	}

	coords, err := arr.Floats()
	if err != nil {
		return nil, fmt.Errorf("failed to read points: %w", err)
	}
	if len(coords)%3 != 0 {
		return nil, fmt.Errorf("%w: %d coordinates is not a multiple of 3", ErrMissingGeometry, len(coords))
	}
	return coords, nil
}

// ExtractCellBlock returns the connectivity, offsets and types arrays of the
// first Cells section. All three are required.
func ExtractCellBlock(doc *Document) (*CellBlock, error) {
	section := doc.Root.Find("Cells")
	if section == nil {
		return nil, fmt.Errorf("%w: no Cells section", ErrMissingTopology)
	}

	arrays := make(map[string]*Element, 3)
	for _, name := range []string{"connectivity", "offsets", "types"} {
		arr := section.FindByAttr("DataArray", "Name", name)
		if arr == nil {
			return nil, fmt.Errorf("%w: no %q array", ErrMissingTopology, name)
		}
		arrays[name] = arr
	}

	connectivity, err := arrays["connectivity"].Ints()
	if err != nil {
		return nil, fmt.Errorf("failed to read connectivity: %w", err)
	}
	offsets, err := arrays["offsets"].Ints()
	if err != nil {
		return nil, fmt.Errorf("failed to read offsets: %w", err)
	}
	codes, err := arrays["types"].Ints()
	if err != nil {
		return nil, fmt.Errorf("failed to read types: %w", err)
	}

	types := make([]cell.Type, len(codes))
	for i, c := range codes {
		types[i] = cell.Type(c)
	}

	return &CellBlock{
		Connectivity: connectivity,
		Offsets:      offsets,
		Types:        types,
	}, nil
}

// ExtractScalarField looks up a point-scalar array by exact name. ok is false,
// with a nil error, when no array has that name.
func ExtractScalarField(doc *Document, name string) (values []float64, ok bool, err error) {
	for _, arr := range pointScalarArrays(doc) {
		if arr.Attr("Name") != name {
			continue
		}
		values, err = arr.Floats()
		if err != nil {
			return nil, false, fmt.Errorf("failed to read field %q: %w", name, err)
		}
		return values, true, nil
	}
	return nil, false, nil
}

// pointScalarArrays returns the named single-component DataArrays of every
// PointData section.
func pointScalarArrays(doc *Document) []*Element {
	var out []*Element
	for _, section := range doc.Root.FindAll("PointData") {
		for _, arr := range section.FindAll("DataArray") {
			if arr.Attr("Name") == "" || components(arr) != 1 {
				continue
			}
			out = append(out, arr)
		}
	}
	return out
}

// components returns NumberOfComponents, which defaults to 1.
func components(arr *Element) int {
	raw := arr.Attr("NumberOfComponents")
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
