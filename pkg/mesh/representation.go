package mesh

import (
	"fmt"
	"strings"
)

// Representation selects how a renderer draws a mesh. It carries no geometry.
type Representation int

const (
	// Surface draws filled triangles.
	Surface Representation = iota
	// SurfaceWithEdges draws filled triangles with their edges on top.
	SurfaceWithEdges
	// Wireframe draws triangle edges only.
	Wireframe
	// Points draws the point set only.
	Points
)

var representationNames = map[Representation]string{
	Surface:          "surface",
	SurfaceWithEdges: "surface-with-edges",
	Wireframe:        "wireframe",
	Points:           "points",
}

// String returns the flag name of the representation.
func (r Representation) String() string {
	if name, ok := representationNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Representation(%d)", int(r))
}

// ParseRepresentation parses a representation name as printed by String.
func ParseRepresentation(s string) (Representation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range representationNames {
		if name == s {
			return r, nil
		}
	}
	return Surface, fmt.Errorf("unknown representation %q (expected surface, surface-with-edges, wireframe or points)", s)
}
