package cell

import "fmt"

// Type is a VTK cell type code as stored in the "types" array of a VTU file.
// Codes without a face table, including negative ones, are tessellated as fans.
type Type int64

// Cell types with a dedicated decomposition. Any other code is tessellated as a fan.
const (
	Triangle   Type = 5
	Quad       Type = 9
	Tetra      Type = 10
	Hexahedron Type = 12
	Wedge      Type = 13
	Pyramid    Type = 14
)

// String returns the VTK name of the cell type.
func (t Type) String() string {
	switch t {
	case Triangle:
		return "triangle"
	case Quad:
		return "quad"
	case Tetra:
		return "tetra"
	case Hexahedron:
		return "hexahedron"
	case Wedge:
		return "wedge"
	case Pyramid:
		return "pyramid"
	default:
		return fmt.Sprintf("type(%d)", int64(t))
	}
}

// Known reports whether t has a dedicated face table.
func (t Type) Known() bool {
	_, ok := topologies[t]
	return ok
}

// PointCount returns the number of points a cell of type t carries,
// or 0 for types without a face table.
func (t Type) PointCount() int {
	return topologies[t].points
}
