package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/philipparndt/govtu/internal/config"
	"github.com/philipparndt/govtu/pkg/analysis"
)

var (
	triCount    int
	triLargest  bool
	triSmallest bool
)

type triangleInfo struct {
	Index    int
	Area     float64
	Scalar   float64
	Color    string
	Vertices string
}

var trianglesCmd = &cobra.Command{
	Use:   "triangles [file]",
	Short: "Analyze the tessellated triangles of a VTU file",
	Long:  "Display the triangles produced from the cells, with area, mean scalar value, mapped color and vertex positions.",
	Args:  cobra.ExactArgs(1),
	Run:   runTriangles,
}

func init() {
	rootCmd.AddCommand(trianglesCmd)

	trianglesCmd.Flags().IntVarP(&triCount, "count", "n", 10, "Number of triangles to display")
	trianglesCmd.Flags().BoolVarP(&triLargest, "largest", "l", false, "Show largest triangles by area")
	trianglesCmd.Flags().BoolVarP(&triSmallest, "smallest", "s", false, "Show smallest triangles by area")
}

func runTriangles(cmd *cobra.Command, args []string) {
	cfg := settings(cmd, config.Flags{})
	source := loadInput(cmd, args[0], cfg)
	m := applyThreshold(cmd, source, cfg)

	field := m.Field()
	colors := m.Colors()
	buf := m.Triangles()

	triangles := make([]triangleInfo, 0, buf.Len())
	totalArea := 0.0
	minArea := math.MaxFloat64
	maxArea := 0.0

	buf.Each(func(i int, tri [3]int64) {
		facet := m.Facet(i)
		area := facet.Area()

		info := triangleInfo{
			Index:  i,
			Area:   area,
			Scalar: math.NaN(),
			Vertices: fmt.Sprintf("%s, %s, %s",
				analysis.FormatVector(facet.V1),
				analysis.FormatVector(facet.V2),
				analysis.FormatVector(facet.V3)),
		}
		if field != nil {
			info.Scalar = (field.Values[tri[0]] + field.Values[tri[1]] + field.Values[tri[2]]) / 3
			c := colors.MapColor(info.Scalar)
			info.Color = fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		}
		triangles = append(triangles, info)

		totalArea += area
		minArea = math.Min(minArea, area)
		maxArea = math.Max(maxArea, area)
	})

	out := cmd.OutOrStdout()
	if len(triangles) == 0 {
		fmt.Fprintln(out, "No triangles")
		return
	}

	if triLargest {
		sort.Slice(triangles, func(i, j int) bool {
			return triangles[i].Area > triangles[j].Area
		})
	} else if triSmallest {
		sort.Slice(triangles, func(i, j int) bool {
			return triangles[i].Area < triangles[j].Area
		})
	}

	var title string
	if triLargest {
		title = fmt.Sprintf("Top %d Largest Triangles", triCount)
	} else if triSmallest {
		title = fmt.Sprintf("Top %d Smallest Triangles", triCount)
	} else {
		title = fmt.Sprintf("First %d Triangles", triCount)
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Total triangles: %d\n", len(triangles))
	fmt.Fprintf(out, "Total surface area: %.6f square units\n", totalArea)
	fmt.Fprintf(out, "Min triangle area: %.6f square units\n", minArea)
	fmt.Fprintf(out, "Max triangle area: %.6f square units\n", maxArea)
	fmt.Fprintf(out, "Avg triangle area: %.6f square units\n\n", totalArea/float64(len(triangles)))

	for i := 0; i < triCount && i < len(triangles); i++ {
		tri := triangles[i]
		fmt.Fprintf(out, "Triangle #%d:\n", tri.Index)
		fmt.Fprintf(out, "  Area: %.6f square units\n", tri.Area)
		if field != nil {
			fmt.Fprintf(out, "  %s (mean): %g %s\n", field.Name, tri.Scalar, tri.Color)
		}
		fmt.Fprintf(out, "  Vertices: %s\n\n", tri.Vertices)
	}
}
