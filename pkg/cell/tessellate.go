package cell

// Block is the cell topology of a mesh: a type and a point-index window per cell.
type Block interface {
	Len() int
	Cell(i int) (Type, []int64)
}

// Tessellate appends the triangles of one cell to out. ids holds the cell's
// global point indices in VTK local order.
func Tessellate(t Type, ids []int64, out *TriangleBuffer) {
	topo, ok := topologies[t]
	if !ok || len(ids) < topo.points {
		fan(ids, out)
		return
	}
	for _, f := range topo.faces {
		if len(f) == 4 {
			splitQuad(ids[f[0]], ids[f[1]], ids[f[2]], ids[f[3]], out)
			continue
		}
		out.Append(ids[f[0]], ids[f[1]], ids[f[2]])
	}
}

// TessellateBlock tessellates every cell of b into a new buffer.
func TessellateBlock(b Block) *TriangleBuffer {
	out := NewTriangleBuffer(EstimateTriangles(b))
	for i := 0; i < b.Len(); i++ {
		t, ids := b.Cell(i)
		Tessellate(t, ids, out)
	}
	return out
}

// TriangleCount returns how many triangles Tessellate emits for a cell of
// type t with n points.
func TriangleCount(t Type, n int) int {
	if topo, ok := topologies[t]; ok && n >= topo.points {
		return topo.triangles()
	}
	if n < 3 {
		return 0
	}
	return n - 2
}

// EstimateTriangles returns the exact triangle count of a block.
func EstimateTriangles(b Block) int {
	total := 0
	for i := 0; i < b.Len(); i++ {
		t, ids := b.Cell(i)
		total += TriangleCount(t, len(ids))
	}
	return total
}

// splitQuad emits (a, b, c) and (a, c, d).
func splitQuad(a, b, c, d int64, out *TriangleBuffer) {
	out.Append(a, b, c)
	out.Append(a, c, d)
}

// fan triangulates an arbitrary polygon around its first point. It is a
// visual approximation and is only exact for convex planar polygons.
func fan(ids []int64, out *TriangleBuffer) {
	for j := 0; j+2 < len(ids); j++ {
		out.Append(ids[0], ids[j+1], ids[j+2])
	}
}
