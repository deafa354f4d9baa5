package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/govtu/internal/config"
	"github.com/philipparndt/govtu/pkg/stl"
)

var (
	exportBinary    bool
	exportThreshold float64
)

var exportCmd = &cobra.Command{
	Use:   "export [file] [output.stl]",
	Short: "Export the triangulated surface as STL",
	Long:  "Write the tessellated surface, optionally thresholded, to an ASCII or binary STL file.",
	Args:  cobra.ExactArgs(2),
	Run:   runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVarP(&exportBinary, "binary", "b", false, "Write binary STL instead of ASCII")
	exportCmd.Flags().Float64VarP(&exportThreshold, "threshold", "t", 0, "Only export triangles whose points are above this scalar value")
}

func runExport(cmd *cobra.Command, args []string) {
	filename, output := args[0], args[1]

	cfg := settings(cmd, config.Flags{
		Threshold: thresholdFlag(cmd, "threshold", exportThreshold),
		Binary:    exportBinary,
	})
	source := loadInput(cmd, filename, cfg)
	m := applyThreshold(cmd, source, cfg)

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	model := stl.FromMesh(m, name)

	if err := stl.WriteFile(model, output, cfg.Export.Binary); err != nil {
		fail(cmd, "writing STL file: %v", err)
	}

	format := "ASCII"
	if cfg.Export.Binary {
		format = "binary"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d facets (%s) to %s\n", model.FacetCount(), format, output)
}
