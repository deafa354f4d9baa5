package cell

// topology describes a cell type's boundary as an ordered list of faces over
// cell-local point indices. A face has three corners (a triangle) or four
// (a quadrilateral, split along its 0-2 diagonal).
type topology struct {
	points int
	faces  [][]int
}

// triangles returns how many output triangles the topology produces.
func (t topology) triangles() int {
	n := 0
	for _, f := range t.faces {
		n += len(f) - 2
	}
	return n
}

var topologies = map[Type]topology{
	Triangle: {
		points: 3,
		faces:  [][]int{{0, 1, 2}},
	},
	Quad: {
		points: 4,
		faces:  [][]int{{0, 1, 2, 3}},
	},
	Tetra: {
		points: 4,
		faces:  [][]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}},
	},
	Hexahedron: {
		points: 8,
		faces: [][]int{
			{0, 4, 7, 3},
			{1, 2, 6, 5},
			{0, 1, 5, 4},
			{3, 7, 6, 2},
			{0, 3, 2, 1},
			{4, 5, 6, 7},
		},
	},
	// End caps, then sides.
	Wedge: {
		points: 6,
		faces: [][]int{
			{0, 1, 2}, {3, 5, 4},
			{0, 3, 4, 1}, {1, 4, 5, 2}, {2, 5, 3, 0},
		},
	},
	// Base, then sides.
	Pyramid: {
		points: 5,
		faces: [][]int{
			{0, 3, 2, 1},
			{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4},
		},
	},
}
