package stl

import (
	"github.com/philipparndt/govtu/pkg/geometry"
	"github.com/philipparndt/govtu/pkg/mesh"
)

// Facet is one STL triangle with its stored normal
type Facet struct {
	Normal geometry.Vector3
	geometry.Triangle
}

// Model represents a complete STL model
type Model struct {
	Name   string
	Facets []Facet
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:   name,
		Facets: make([]Facet, 0),
	}
}

// FromMesh converts the triangulated surface of a mesh into an STL model,
// computing one normal per facet from its winding.
func FromMesh(m *mesh.Mesh, name string) *Model {
	model := &Model{
		Name:   name,
		Facets: make([]Facet, 0, m.Triangles().Len()),
	}
	for i := 0; i < m.Triangles().Len(); i++ {
		tri := m.Facet(i)
		model.AddFacet(Facet{Normal: tri.Normal(), Triangle: tri})
	}
	return model
}

// AddFacet adds a facet to the model
func (m *Model) AddFacet(facet Facet) {
	m.Facets = append(m.Facets, facet)
}

// FacetCount returns the number of facets in the model
func (m *Model) FacetCount() int {
	return len(m.Facets)
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	total := 0.0
	for _, f := range m.Facets {
		total += f.Area()
	}
	return total
}
