package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/philipparndt/govtu/internal/config"
	"github.com/philipparndt/govtu/pkg/mesh"
)

var thresholdCmd = &cobra.Command{
	Use:   "threshold [file] [value]",
	Short: "Keep only the points above a scalar value",
	Long: `Filter the mesh to the points whose active scalar value is strictly greater
than value and report what remains. Triangles survive only when all three of
their corners pass. Without value the threshold from the config file is used.`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runThreshold,
}

func init() {
	rootCmd.AddCommand(thresholdCmd)
}

func runThreshold(cmd *cobra.Command, args []string) {
	var flags config.Flags
	if len(args) == 2 {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fail(cmd, "invalid threshold %q: %v", args[1], err)
		}
		flags.Threshold = &value
	}

	cfg := settings(cmd, flags)
	if cfg.Threshold == nil {
		fail(cmd, "no threshold value given")
	}

	source := loadInput(cmd, args[0], cfg)
	filtered, err := mesh.Threshold(source, *cfg.Threshold)
	if err != nil {
		fail(cmd, "applying threshold: %v", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Threshold: %s > %g\n", source.Field().Name, *cfg.Threshold)
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "  Points: %d -> %d\n", source.Points().Len(), filtered.Points().Len())
	fmt.Fprintf(out, "  Triangles: %d -> %d\n", source.Triangles().Len(), filtered.Triangles().Len())

	if f := filtered.Field(); f != nil && len(f.Values) > 0 {
		min, max, _ := f.Range()
		fmt.Fprintf(out, "  Remaining range: [%g, %g]\n", min, max)
	}
	min, max := filtered.Colors().Range()
	fmt.Fprintf(out, "  Color range: [%g, %g]\n", min, max)
}
