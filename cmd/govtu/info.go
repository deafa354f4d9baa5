package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/philipparndt/govtu/internal/config"
	"github.com/philipparndt/govtu/pkg/analysis"
	"github.com/philipparndt/govtu/pkg/mesh"
	"github.com/philipparndt/govtu/pkg/watcher"
)

var infoWatch bool

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a VTU file",
	Long:  "Show point and cell counts, cell types, triangle count, surface area, dimensions, edge statistics and the active scalar field.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVarP(&infoWatch, "watch", "w", false, "Reload and print again whenever the file changes")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]
	cfg := settings(cmd, config.Flags{})
	m := loadInput(cmd, filename, cfg)

	out := cmd.OutOrStdout()
	printInfo(out, filename, analysis.AnalyzeMesh(m))

	if !infoWatch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := watchInfo(ctx, cmd, filename, cfg); err != nil {
		fail(cmd, "%v", err)
	}
}

// watchInfo reprints the report after every change until ctx is cancelled
func watchInfo(ctx context.Context, cmd *cobra.Command, filename string, cfg config.Config) error {
	out := cmd.OutOrStdout()

	load := func(path string) (*mesh.Mesh, error) {
		return loadMesh(path, cfg)
	}

	mw, err := watcher.New(cfg.Watch.Debounce, load, func(path string, m *mesh.Mesh, err error) {
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Reload failed: %v\n", err)
			return
		}
		fmt.Fprintf(out, "\nReloaded %s\n\n", path)
		printInfo(out, path, analysis.AnalyzeMesh(m))
	})
	if err != nil {
		return err
	}
	defer mw.Close()

	if err := mw.Add(filename); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nWatching %s for changes (Ctrl+C to stop)\n", filename)
	if err := mw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printInfo(out io.Writer, filename string, result *analysis.MeasurementResult) {
	fmt.Fprintln(out, "VTU File Information")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Mesh Statistics:")
	fmt.Fprintf(out, "  Points: %d\n", result.PointCount)
	fmt.Fprintf(out, "  Cells: %d\n", result.CellCount)
	for _, ct := range result.CellTypes {
		fmt.Fprintf(out, "    %s: %d\n", ct.Type, ct.Count)
	}
	fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n", result.SurfaceArea)
	fmt.Fprintf(out, "  Representation: %s\n\n", result.Representation)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Fprintf(out, "  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Fprintf(out, "  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n", result.AvgEdgeLength)

	if result.Field == nil {
		fmt.Fprintln(out, "\nScalar Field: none")
		return
	}
	f := result.Field
	fmt.Fprintf(out, "\nScalar Field: %s\n", f.Name)
	fmt.Fprintf(out, "  Values: %d\n", f.Count)
	fmt.Fprintf(out, "  Range: [%g, %g]\n", f.Min, f.Max)
	fmt.Fprintf(out, "  Mean: %g\n", f.Mean)
	fmt.Fprintf(out, "  Std Dev: %g\n", f.StdDev)
}
