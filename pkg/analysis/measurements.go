package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/philipparndt/govtu/pkg/cell"
	"github.com/philipparndt/govtu/pkg/geometry"
	"github.com/philipparndt/govtu/pkg/mesh"
)

// FieldStats summarizes the values of one point-scalar field
type FieldStats struct {
	Name   string
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// CellTypeCount is the number of cells of one type
type CellTypeCount struct {
	Type  cell.Type
	Count int
}

// MeasurementResult contains various measurements of an assembled mesh
type MeasurementResult struct {
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	PointCount     int
	CellCount      int
	CellTypes      []CellTypeCount
	TriangleCount  int
	SurfaceArea    float64
	EdgeCount      int
	MinEdgeLength  float64
	MaxEdgeLength  float64
	AvgEdgeLength  float64
	Representation mesh.Representation
	Field          *FieldStats
}

// AnalyzeMesh performs comprehensive analysis on a mesh. Cell counts are
// left empty for filtered meshes, which no longer carry their cells.
func AnalyzeMesh(m *mesh.Mesh) *MeasurementResult {
	points := m.Points()
	result := &MeasurementResult{
		BoundingBox:    points.Bounds(),
		PointCount:     points.Len(),
		TriangleCount:  m.Triangles().Len(),
		Representation: m.Representation(),
	}
	result.Dimensions = result.BoundingBox.Size()

	if block := m.Cells(); block != nil {
		result.CellCount = block.Len()
		result.CellTypes = CountCellTypes(block.Types)
	}

	for i := 0; i < result.TriangleCount; i++ {
		result.SurfaceArea += m.Facet(i).Area()
	}

	lengths := uniqueEdgeLengths(m)
	result.EdgeCount = len(lengths)
	if len(lengths) > 0 {
		result.MinEdgeLength = floats.Min(lengths)
		result.MaxEdgeLength = floats.Max(lengths)
		result.AvgEdgeLength = stat.Mean(lengths, nil)
	}

	if f := m.Field(); f != nil {
		stats := AnalyzeField(f.Name, f.Values)
		result.Field = &stats
	}

	return result
}

// AnalyzeField computes summary statistics of a field's values. An empty
// field reports NaN for every statistic.
func AnalyzeField(name string, values []float64) FieldStats {
	stats := FieldStats{Name: name, Count: len(values)}
	if len(values) == 0 {
		stats.Min, stats.Max, stats.Mean, stats.StdDev = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return stats
	}
	stats.Min = floats.Min(values)
	stats.Max = floats.Max(values)
	stats.Mean, stats.StdDev = stat.PopMeanStdDev(values, nil)
	return stats
}

// CountCellTypes returns how many cells of each type occur, ordered by type code
func CountCellTypes(types []cell.Type) []CellTypeCount {
	counts := lo.CountValues(types)
	keys := lo.Keys(counts)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return lo.Map(keys, func(t cell.Type, _ int) CellTypeCount {
		return CellTypeCount{Type: t, Count: counts[t]}
	})
}

// uniqueEdgeLengths measures every distinct triangle edge once
func uniqueEdgeLengths(m *mesh.Mesh) []float64 {
	seen := make(map[[2]int64]bool)
	var lengths []float64
	points := m.Points()

	m.Triangles().Each(func(_ int, tri [3]int64) {
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]int64{a, b}
			if seen[key] {
				continue
			}
			seen[key] = true
			lengths = append(lengths, points.At(int(a)).Sub(points.At(int(b))).Length())
		}
	})
	return lengths
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
