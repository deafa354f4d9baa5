package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/govtu/internal/config"
)

var colormapCmd = &cobra.Command{
	Use:   "colormap [file]",
	Short: "Print the color transfer function of a scalar field",
	Long:  "Print the control points of the blue-to-red color ramp built over the active field's value range.",
	Args:  cobra.ExactArgs(1),
	Run:   runColormap,
}

func init() {
	rootCmd.AddCommand(colormapCmd)
}

func runColormap(cmd *cobra.Command, args []string) {
	cfg := settings(cmd, config.Flags{})
	source := loadInput(cmd, args[0], cfg)

	field := source.Field()
	if field == nil {
		fail(cmd, "%s has no point scalar fields", args[0])
	}

	out := cmd.OutOrStdout()
	colors := source.Colors()
	min, max := colors.Range()

	fmt.Fprintf(out, "Color Map: %s\n", field.Name)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Range: [%g, %g]\n\n", min, max)

	for i, p := range colors.Points() {
		c := p.Color.NRGBA()
		fmt.Fprintf(out, "  %d: %-14g #%02x%02x%02x  (%.4f, %.4f, %.4f)\n",
			i, p.Value, c.R, c.G, c.B, p.Color.R, p.Color.G, p.Color.B)
	}
}
