package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/philipparndt/govtu/pkg/cell"
	"github.com/philipparndt/govtu/pkg/colormap"
	"github.com/philipparndt/govtu/pkg/geometry"
	"github.com/philipparndt/govtu/pkg/vtu"
)

// PointSet is a flat XYZ coordinate buffer; point i occupies [3i, 3i+3).
type PointSet []float64

// Len returns the number of points.
func (p PointSet) Len() int {
	return len(p) / 3
}

// At returns point i.
func (p PointSet) At(i int) geometry.Vector3 {
	return geometry.VectorAt(p, i)
}

// Bounds returns the axis-aligned bounding box of all points.
func (p PointSet) Bounds() geometry.BoundingBox {
	return geometry.BoundsOf(p)
}

// ScalarField is a named value per point.
type ScalarField struct {
	Name   string
	Values []float64
}

// Range returns the minimum and maximum value. It fails with
// ErrEmptyScalarField when there are no values.
func (f ScalarField) Range() (min, max float64, err error) {
	if len(f.Values) == 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrEmptyScalarField, f.Name)
	}
	return floats.Min(f.Values), floats.Max(f.Values), nil
}

// Mesh is a renderable triangulated surface.
type Mesh struct {
	points         PointSet
	triangles      *cell.TriangleBuffer
	field          *ScalarField
	colors         colormap.TransferFunction
	representation Representation

	// cells is the topology the triangles were built from. Meshes derived by
	// filtering no longer match it and leave it nil.
	cells *vtu.CellBlock
}

// Assemble tessellates block over points and colors the result by field.
// Assemble takes ownership of its arguments; callers must not modify them
// afterwards.
func Assemble(points PointSet, block *vtu.CellBlock, field ScalarField) (*Mesh, error) {
	m, err := AssembleGeometry(points, block)
	if err != nil {
		return nil, err
	}
	return m.WithField(field)
}

// AssembleGeometry tessellates block over points without any scalar field.
func AssembleGeometry(points PointSet, block *vtu.CellBlock) (*Mesh, error) {
	if len(points)%3 != 0 {
		return nil, fmt.Errorf("%w: %d coordinates is not a multiple of 3", ErrInvalidTopology, len(points))
	}
	if err := block.Validate(points.Len()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTopology, err)
	}
	return &Mesh{
		points:    points,
		triangles: cell.TessellateBlock(block),
		cells:     block,
	}, nil
}

// WithField returns a copy of m whose active field is field, with a color
// transfer function spanning the field's range.
func (m *Mesh) WithField(field ScalarField) (*Mesh, error) {
	if len(field.Values) != m.points.Len() && len(field.Values) != 0 {
		return nil, fmt.Errorf("%w: field %q has %d values for %d points",
			ErrFieldLength, field.Name, len(field.Values), m.points.Len())
	}
	min, max, err := field.Range()
	if err != nil {
		return nil, err
	}
	colors, err := colormap.Build(min, max)
	if err != nil {
		return nil, fmt.Errorf("failed to build color map for %q: %w", field.Name, err)
	}

	next := *m
	next.field = &field
	next.colors = colors
	return &next, nil
}

// Points returns the point set. It must be treated as read-only.
func (m *Mesh) Points() PointSet {
	return m.points
}

// Triangles returns the tessellated triangle buffer.
func (m *Mesh) Triangles() *cell.TriangleBuffer {
	return m.triangles
}

// Cells returns the cell topology the mesh was assembled from, or nil for a
// filtered mesh.
func (m *Mesh) Cells() *vtu.CellBlock {
	return m.cells
}

// Field returns the active scalar field, or nil for a colorless mesh.
func (m *Mesh) Field() *ScalarField {
	return m.field
}

// Colors returns the transfer function of the active field. It is the zero
// TransferFunction for a colorless mesh.
func (m *Mesh) Colors() colormap.TransferFunction {
	return m.colors
}

// Representation returns the display style flag.
func (m *Mesh) Representation() Representation {
	return m.representation
}

// SetRepresentation changes the display style flag.
func (m *Mesh) SetRepresentation(r Representation) {
	m.representation = r
}

// Facet resolves triangle i against the point set.
func (m *Mesh) Facet(i int) geometry.Triangle {
	tri := m.triangles.Triangle(i)
	return geometry.NewTriangle(
		m.points.At(int(tri[0])),
		m.points.At(int(tri[1])),
		m.points.At(int(tri[2])),
	)
}
