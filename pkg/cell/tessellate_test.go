package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangles collects the triangles of one tessellated cell.
func triangles(t Type, ids ...int64) [][3]int64 {
	buf := NewTriangleBuffer(0)
	Tessellate(t, ids, buf)
	var out [][3]int64
	buf.Each(func(_ int, tri [3]int64) {
		out = append(out, tri)
	})
	return out
}

func TestTessellate_Triangle(t *testing.T) {
	assert.Equal(t, [][3]int64{{2, 5, 9}}, triangles(Triangle, 2, 5, 9))
}

func TestTessellate_Quad(t *testing.T) {
	assert.Equal(t, [][3]int64{{0, 1, 2}, {0, 2, 3}}, triangles(Quad, 0, 1, 2, 3))
}

func TestTessellate_QuadRemapsGlobalIndices(t *testing.T) {
	assert.Equal(t, [][3]int64{{10, 11, 12}, {10, 12, 13}}, triangles(Quad, 10, 11, 12, 13))
}

func TestTessellate_Tetra(t *testing.T) {
	got := triangles(Tetra, 0, 1, 2, 3)

	assert.Equal(t, [][3]int64{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}}, got)
}

func TestTessellate_Hexahedron(t *testing.T) {
	got := triangles(Hexahedron, 10, 11, 12, 13, 14, 15, 16, 17)

	require.Len(t, got, 12)
	assert.Equal(t, [3]int64{10, 14, 17}, got[0])
	assert.Equal(t, [3]int64{10, 17, 13}, got[1])
	assert.Equal(t, [3]int64{14, 16, 17}, got[11])

	// Every corner is used and no index leaks outside the cell.
	seen := map[int64]bool{}
	for _, tri := range got {
		for _, id := range tri {
			assert.GreaterOrEqual(t, id, int64(10))
			assert.LessOrEqual(t, id, int64(17))
			seen[id] = true
		}
	}
	assert.Len(t, seen, 8)
}

func TestTessellate_Wedge(t *testing.T) {
	got := triangles(Wedge, 0, 1, 2, 3, 4, 5)

	require.Len(t, got, 8)
	assert.Equal(t, [3]int64{0, 1, 2}, got[0])
	assert.Equal(t, [3]int64{3, 5, 4}, got[1])
	assert.Equal(t, [3]int64{0, 3, 4}, got[2])
	assert.Equal(t, [3]int64{0, 4, 1}, got[3])
}

func TestTessellate_Pyramid(t *testing.T) {
	got := triangles(Pyramid, 0, 1, 2, 3, 4)

	// The base quad comes first, then the four sides.
	want := [][3]int64{
		{0, 3, 2}, {0, 2, 1},
		{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4},
	}
	assert.Equal(t, want, got)
}

func TestTessellate_UnknownTypeFans(t *testing.T) {
	got := triangles(Type(1), 0, 1, 2, 3, 4)

	assert.Equal(t, [][3]int64{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}, got)
}

func TestTessellate_WideAndNegativeTypesFan(t *testing.T) {
	assert.Equal(t, [][3]int64{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}, triangles(Type(300), 0, 1, 2, 3, 4))
	assert.Equal(t, [][3]int64{{4, 5, 6}}, triangles(Type(-1), 4, 5, 6))
	assert.Equal(t, 3, TriangleCount(Type(300), 5))
	assert.Equal(t, "type(300)", Type(300).String())
}

func TestTessellate_ShortWindowFans(t *testing.T) {
	// A hexahedron with only four points cannot use its face table.
	got := triangles(Hexahedron, 7, 8, 9, 10)

	assert.Equal(t, [][3]int64{{7, 8, 9}, {7, 9, 10}}, got)
}

func TestTessellate_TooFewPoints(t *testing.T) {
	assert.Empty(t, triangles(Type(3), 0, 1))
	assert.Empty(t, triangles(Triangle, 0, 1))
	assert.Empty(t, triangles(Type(1)))
}

func TestTriangleCount(t *testing.T) {
	tests := []struct {
		typ  Type
		n    int
		want int
	}{
		{Triangle, 3, 1},
		{Quad, 4, 2},
		{Tetra, 4, 4},
		{Hexahedron, 8, 12},
		{Wedge, 6, 8},
		{Pyramid, 5, 6},
		{Type(7), 6, 4},
		{Type(3), 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, TriangleCount(tt.typ, tt.n))
			ids := make([]int64, tt.n)
			for i := range ids {
				ids[i] = int64(i)
			}
			assert.Len(t, triangles(tt.typ, ids...), tt.want)
		})
	}
}

type testBlock struct {
	types []Type
	cells [][]int64
}

func (b testBlock) Len() int { return len(b.types) }

func (b testBlock) Cell(i int) (Type, []int64) { return b.types[i], b.cells[i] }

func TestTessellateBlock(t *testing.T) {
	b := testBlock{
		types: []Type{Triangle, Quad, Type(42)},
		cells: [][]int64{{0, 1, 2}, {2, 3, 4, 5}, {0, 5}},
	}

	buf := TessellateBlock(b)

	require.Equal(t, 3, buf.Len())
	assert.Equal(t, []int64{3, 0, 1, 2, 3, 2, 3, 4, 3, 2, 4, 5}, buf.Raw())
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 4, 2, 4, 5}, buf.Indices())
	assert.Equal(t, 3, EstimateTriangles(b))
}

func TestTriangleBuffer_RawIsACopy(t *testing.T) {
	buf := NewTriangleBuffer(1)
	buf.Append(1, 2, 3)

	raw := buf.Raw()
	raw[1] = 99

	assert.Equal(t, [3]int64{1, 2, 3}, buf.Triangle(0))
}

func TestTriangleBuffer_Nil(t *testing.T) {
	var buf *TriangleBuffer

	assert.Equal(t, 0, buf.Len())
	assert.Nil(t, buf.Raw())
	assert.Empty(t, buf.Indices())
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "hexahedron", Hexahedron.String())
	assert.Equal(t, "type(7)", Type(7).String())
	assert.True(t, Wedge.Known())
	assert.False(t, Type(7).Known())
	assert.Equal(t, 5, Pyramid.PointCount())
}
