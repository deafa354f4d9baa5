package mesh

import (
	"github.com/philipparndt/govtu/pkg/cell"
)

// Threshold returns a new mesh holding only the points whose active scalar
// value is strictly greater than threshold, in their original order.
//
// The triangle buffer and scalar values are rebuilt to match: a triangle is
// kept only when all three of its corners pass, and its indices are renumbered
// into the filtered point set. The color transfer function and representation
// are carried over from m so colors stay comparable between both meshes.
func Threshold(m *Mesh, threshold float64) (*Mesh, error) {
	if m.field == nil {
		return nil, ErrNoActiveField
	}

	n := m.points.Len()
	remap := make([]int64, n)
	kept := 0
	for i := 0; i < n; i++ {
		if m.field.Values[i] > threshold {
			remap[i] = int64(kept)
			kept++
		} else {
			remap[i] = -1
		}
	}

	points := make(PointSet, 0, 3*kept)
	values := make([]float64, 0, kept)
	for i := 0; i < n; i++ {
		if remap[i] < 0 {
			continue
		}
		points = append(points, m.points[3*i:3*i+3]...)
		values = append(values, m.field.Values[i])
	}

	triangles := cell.NewTriangleBuffer(0)
	m.triangles.Each(func(_ int, tri [3]int64) {
		a, b, c := remap[tri[0]], remap[tri[1]], remap[tri[2]]
		if a < 0 || b < 0 || c < 0 {
			return
		}
		triangles.Append(a, b, c)
	})

	return &Mesh{
		points:         points,
		triangles:      triangles,
		field:          &ScalarField{Name: m.field.Name, Values: values},
		colors:         m.colors,
		representation: m.representation,
	}, nil
}
