package cell

// TriangleMarker precedes every triangle in a TriangleBuffer. It is the point
// count of a triangle cell, matching the VTK polygon-list layout.
const TriangleMarker = 3

// recordSize is the marker plus three point indices.
const recordSize = 4

// TriangleBuffer is an append-only list of triangles stored as flat
// [3, a, b, c] records referencing global point indices.
type TriangleBuffer struct {
	data []int64
}

// NewTriangleBuffer creates a buffer with room for n triangles.
func NewTriangleBuffer(n int) *TriangleBuffer {
	return &TriangleBuffer{data: make([]int64, 0, n*recordSize)}
}

// Append adds one triangle.
func (b *TriangleBuffer) Append(i0, i1, i2 int64) {
	b.data = append(b.data, TriangleMarker, i0, i1, i2)
}

// Len returns the number of triangles.
func (b *TriangleBuffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data) / recordSize
}

// Triangle returns the point indices of the i-th triangle.
func (b *TriangleBuffer) Triangle(i int) [3]int64 {
	o := i*recordSize + 1
	return [3]int64{b.data[o], b.data[o+1], b.data[o+2]}
}

// Raw returns a copy of the marker-prefixed records.
func (b *TriangleBuffer) Raw() []int64 {
	if b == nil {
		return nil
	}
	out := make([]int64, len(b.data))
	copy(out, b.data)
	return out
}

// Indices returns the triangle corners without markers, three per triangle,
// in the uint32 layout renderers upload as an index buffer.
func (b *TriangleBuffer) Indices() []uint32 {
	n := b.Len()
	out := make([]uint32, 0, 3*n)
	for i := 0; i < n; i++ {
		tri := b.Triangle(i)
		out = append(out, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
	}
	return out
}

// Each calls fn for every triangle in order.
func (b *TriangleBuffer) Each(fn func(i int, tri [3]int64)) {
	n := b.Len()
	for i := 0; i < n; i++ {
		fn(i, b.Triangle(i))
	}
}
