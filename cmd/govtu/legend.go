package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/spf13/cobra"

	"github.com/philipparndt/govtu/internal/config"
	"github.com/philipparndt/govtu/pkg/colormap"
)

var legendWidth, legendHeight int

var legendCmd = &cobra.Command{
	Use:   "legend [file] [output]",
	Short: "Render the color legend of a scalar field",
	Long: `Render a horizontal color bar with the minimum, middle and maximum value of the
active field. The image format follows the output extension (.png or .webp) and
falls back to the configured legend format.`,
	Args: cobra.ExactArgs(2),
	Run:  runLegend,
}

func init() {
	rootCmd.AddCommand(legendCmd)

	legendCmd.Flags().IntVar(&legendWidth, "width", 0, "Image width in pixels (default from config)")
	legendCmd.Flags().IntVar(&legendHeight, "height", 0, "Image height in pixels (default from config)")
}

func runLegend(cmd *cobra.Command, args []string) {
	filename, output := args[0], args[1]

	cfg := settings(cmd, config.Flags{})
	if legendWidth > 0 {
		cfg.Legend.Width = legendWidth
	}
	if legendHeight > 0 {
		cfg.Legend.Height = legendHeight
	}

	source := loadInput(cmd, filename, cfg)
	if source.Field() == nil {
		fail(cmd, "%s has no point scalar fields", filename)
	}

	img := colormap.Legend(source.Colors(), cfg.Legend.Width, cfg.Legend.Height)

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
	if format != "png" && format != "webp" {
		format = strings.ToLower(cfg.Legend.Format)
	}
	if err := writeImage(output, img, format); err != nil {
		fail(cmd, "writing legend: %v", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dx%d %s legend for %s to %s\n",
		cfg.Legend.Width, cfg.Legend.Height, format, source.Field().Name, output)
}

func writeImage(path string, img image.Image, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	switch format {
	case "webp":
		err = nativewebp.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return f.Close()
}
