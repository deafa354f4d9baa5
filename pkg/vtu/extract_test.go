package vtu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/govtu/pkg/cell"
)

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestListScalarFieldNames(t *testing.T) {
	doc := mustParse(t, twoCells)

	// velocity has three components and is not a scalar field.
	assert.Equal(t, []string{"temperature", "pressure"}, ListScalarFieldNames(doc))
}

func TestListScalarFieldNames_None(t *testing.T) {
	doc := mustParse(t, `<VTKFile><Points><DataArray>0 0 0</DataArray></Points></VTKFile>`)

	names := ListScalarFieldNames(doc)
	assert.NotNil(t, names)
	assert.Empty(t, names)

	_, err := DefaultScalarFieldName(doc)
	assert.ErrorIs(t, err, ErrNoScalarData)
}

func TestDefaultScalarFieldName(t *testing.T) {
	name, err := DefaultScalarFieldName(mustParse(t, twoCells))
	require.NoError(t, err)
	assert.Equal(t, "temperature", name)
}

func TestExtractPoints(t *testing.T) {
	points, err := ExtractPoints(mustParse(t, twoCells))
	require.NoError(t, err)

	assert.Len(t, points, 15)
	assert.Equal(t, []float64{2, 0, 0}, points[12:15])
}

func TestExtractPoints_Missing(t *testing.T) {
	tests := map[string]string{
		"no section":   `<VTKFile><Cells/></VTKFile>`,
		"no array":     `<VTKFile><Points></Points></VTKFile>`,
		"not a triple": `<VTKFile><Points><DataArray>0 0 0 1</DataArray></Points></VTKFile>`,
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractPoints(mustParse(t, src))
			assert.ErrorIs(t, err, ErrMissingGeometry)
		})
	}
}

func TestExtractCellBlock(t *testing.T) {
	block, err := ExtractCellBlock(mustParse(t, twoCells))
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 1, 2, 3, 1, 4, 2}, block.Connectivity)
	assert.Equal(t, []int64{4, 7}, block.Offsets)
	assert.Equal(t, []cell.Type{cell.Quad, cell.Triangle}, block.Types)
	assert.Equal(t, 2, block.Len())

	typ, ids := block.Cell(1)
	assert.Equal(t, cell.Triangle, typ)
	assert.Equal(t, []int64{1, 4, 2}, ids)
}

func TestExtractCellBlock_MissingArrays(t *testing.T) {
	tests := map[string]string{
		"no cells": `<VTKFile/>`,
		"no connectivity": `<VTKFile><Cells>
			<DataArray Name="offsets">3</DataArray>
			<DataArray Name="types">5</DataArray></Cells></VTKFile>`,
		"no offsets": `<VTKFile><Cells>
			<DataArray Name="connectivity">0 1 2</DataArray>
			<DataArray Name="types">5</DataArray></Cells></VTKFile>`,
		"no types": `<VTKFile><Cells>
			<DataArray Name="connectivity">0 1 2</DataArray>
			<DataArray Name="offsets">3</DataArray></Cells></VTKFile>`,
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			block, err := ExtractCellBlock(mustParse(t, src))
			assert.ErrorIs(t, err, ErrMissingTopology)
			assert.Nil(t, block)
		})
	}
}

func TestExtractCellBlock_WideTypeCodes(t *testing.T) {
	src := `<VTKFile><Cells>
		<DataArray Name="connectivity">0 1 2 3 4 0 1 2</DataArray>
		<DataArray Name="offsets">5 8</DataArray>
		<DataArray Name="types">300 -7</DataArray></Cells></VTKFile>`

	block, err := ExtractCellBlock(mustParse(t, src))
	require.NoError(t, err)
	assert.Equal(t, []cell.Type{300, -7}, block.Types)

	// Unknown codes are not errors; they fall back to a fan.
	buf := cell.TessellateBlock(block)
	assert.Equal(t, 4, buf.Len())
	assert.Equal(t, [3]int64{0, 1, 2}, buf.Triangle(0))
	assert.Equal(t, [3]int64{0, 3, 4}, buf.Triangle(2))
}

func TestExtractScalarField(t *testing.T) {
	doc := mustParse(t, twoCells)

	values, ok, err := ExtractScalarField(doc, "pressure")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []float64{-1.5, 0, 1.5, 3, 4.5}, values)

	values, ok, err = ExtractScalarField(doc, "Pressure")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, values)
}

func TestCellBlock_Validate(t *testing.T) {
	valid := &CellBlock{
		Connectivity: []int64{0, 1, 2, 3, 1, 4, 2},
		Offsets:      []int64{4, 7},
		Types:        []cell.Type{cell.Quad, cell.Triangle},
	}
	assert.NoError(t, valid.Validate(5))
	assert.Error(t, valid.Validate(4), "index 4 is out of range for 4 points")

	tests := map[string]*CellBlock{
		"count mismatch": {Connectivity: []int64{0, 1, 2}, Offsets: []int64{3}, Types: []cell.Type{5, 5}},
		"decreasing":     {Connectivity: []int64{0, 1, 2}, Offsets: []int64{3, 2}, Types: []cell.Type{5, 5}},
		"short offsets":  {Connectivity: []int64{0, 1, 2, 3}, Offsets: []int64{3}, Types: []cell.Type{5}},
		"negative index": {Connectivity: []int64{0, -1, 2}, Offsets: []int64{3}, Types: []cell.Type{5}},
	}
	for name, block := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, block.Validate(5))
		})
	}
}
