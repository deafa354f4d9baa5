package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/govtu/version"
)

var (
	configPath         string
	fieldName          string
	representationName string
)

var rootCmd = &cobra.Command{
	Use:   "govtu",
	Short: "A CLI tool for inspecting and converting VTU meshes",
	Long: `govtu reads VTK unstructured grid files (.vtu) with inline ASCII data,
decomposes their cells into a triangle surface and colors it by a point scalar
field. It reports mesh statistics, exports STL and renders color legends.`,
	Version: version.GetFullVersion(),
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&fieldName, "field", "f", "", "Point scalar field used for coloring (default: first field)")
	rootCmd.PersistentFlags().StringVarP(&representationName, "representation", "r", "", "Representation: surface, surface-with-edges, wireframe or points")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
