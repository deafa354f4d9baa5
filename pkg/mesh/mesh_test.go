package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/govtu/pkg/cell"
	"github.com/philipparndt/govtu/pkg/vtu"
)

// strip is a quad (0,1,4,3) followed by a triangle (1,2,4) over five points.
func strip() (PointSet, *vtu.CellBlock) {
	points := PointSet{
		0, 0, 0,
		1, 0, 0,
		2, 0, 0,
		0, 1, 0,
		1, 1, 0,
	}
	block := &vtu.CellBlock{
		Connectivity: []int64{0, 1, 4, 3, 1, 2, 4},
		Offsets:      []int64{4, 7},
		Types:        []cell.Type{cell.Quad, cell.Triangle},
	}
	return points, block
}

func TestAssemble(t *testing.T) {
	points, block := strip()
	field := ScalarField{Name: "t", Values: []float64{0, 10, 5, 2.5, 7.5}}

	m, err := Assemble(points, block, field)
	require.NoError(t, err)

	assert.Equal(t, 5, m.Points().Len())
	assert.Equal(t, 3, m.Triangles().Len())
	assert.Equal(t, [3]int64{0, 1, 4}, m.Triangles().Triangle(0))
	assert.Equal(t, [3]int64{0, 4, 3}, m.Triangles().Triangle(1))
	assert.Equal(t, [3]int64{1, 2, 4}, m.Triangles().Triangle(2))
	assert.Equal(t, "t", m.Field().Name)

	min, max := m.Colors().Range()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 10.0, max)
	assert.Equal(t, Surface, m.Representation())
}

func TestAssemble_IndicesWithinPointSet(t *testing.T) {
	points, block := strip()
	m, err := Assemble(points, block, ScalarField{Name: "t", Values: make([]float64, 5)})
	require.NoError(t, err)

	for _, idx := range m.Triangles().Indices() {
		assert.Less(t, int(idx), m.Points().Len())
	}
}

func TestAssemble_EmptyField(t *testing.T) {
	points, block := strip()

	_, err := Assemble(points, block, ScalarField{Name: "t"})
	assert.ErrorIs(t, err, ErrEmptyScalarField)
}

func TestAssemble_FieldLengthMismatch(t *testing.T) {
	points, block := strip()

	_, err := Assemble(points, block, ScalarField{Name: "t", Values: []float64{1, 2}})
	assert.ErrorIs(t, err, ErrFieldLength)
}

func TestAssemble_InvalidTopology(t *testing.T) {
	points, block := strip()
	block.Connectivity[6] = 9

	m, err := Assemble(points, block, ScalarField{Name: "t", Values: make([]float64, 5)})
	assert.ErrorIs(t, err, ErrInvalidTopology)
	assert.Nil(t, m)
}

func TestAssembleGeometry(t *testing.T) {
	points, block := strip()

	m, err := AssembleGeometry(points, block)
	require.NoError(t, err)

	assert.Nil(t, m.Field())
	assert.True(t, m.Colors().IsZero())
	assert.Equal(t, 3, m.Triangles().Len())
}

func TestWithField_LeavesSourceUntouched(t *testing.T) {
	points, block := strip()
	first, err := Assemble(points, block, ScalarField{Name: "a", Values: []float64{0, 1, 2, 3, 4}})
	require.NoError(t, err)

	second, err := first.WithField(ScalarField{Name: "b", Values: []float64{-5, 0, 5, 0, 0}})
	require.NoError(t, err)

	assert.Equal(t, "a", first.Field().Name)
	assert.Equal(t, "b", second.Field().Name)
	min, max := second.Colors().Range()
	assert.Equal(t, -5.0, min)
	assert.Equal(t, 5.0, max)
	min, _ = first.Colors().Range()
	assert.Equal(t, 0.0, min)
}

func TestSetRepresentation(t *testing.T) {
	points, block := strip()
	m, err := AssembleGeometry(points, block)
	require.NoError(t, err)

	m.SetRepresentation(Wireframe)

	assert.Equal(t, Wireframe, m.Representation())
	assert.Equal(t, 3, m.Triangles().Len())
}

func TestFacet(t *testing.T) {
	points, block := strip()
	m, err := AssembleGeometry(points, block)
	require.NoError(t, err)

	facet := m.Facet(2)
	assert.Equal(t, 1.0, facet.V1.X)
	assert.Equal(t, 2.0, facet.V2.X)
	assert.InDelta(t, 0.5, facet.Area(), 1e-12)
}

func TestParseRepresentation(t *testing.T) {
	for _, r := range []Representation{Surface, SurfaceWithEdges, Wireframe, Points} {
		parsed, err := ParseRepresentation(strings.ToUpper(r.String()))
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseRepresentation("volume")
	assert.Error(t, err)
	assert.Equal(t, "Representation(9)", Representation(9).String())
}

func TestAssemble_KeepsCells(t *testing.T) {
	points, block := strip()
	m, err := Assemble(points, block, ScalarField{Name: "t", Values: []float64{0, 10, 5, 2.5, 7.5}})
	require.NoError(t, err)

	assert.Same(t, block, m.Cells())

	filtered, err := Threshold(m, 1)
	require.NoError(t, err)
	assert.Nil(t, filtered.Cells())
}
