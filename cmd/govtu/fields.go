package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/philipparndt/govtu/pkg/analysis"
	"github.com/philipparndt/govtu/pkg/vtu"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields [file]",
	Short: "List the point scalar fields of a VTU file",
	Long:  "List every single-component point data array in document order with its value range. The default coloring field is marked with '*'.",
	Args:  cobra.ExactArgs(1),
	Run:   runFields,
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

func runFields(cmd *cobra.Command, args []string) {
	filename := args[0]

	doc, err := vtu.ParseFile(filename)
	if err != nil {
		fail(cmd, "parsing VTU file: %v", err)
	}

	out := cmd.OutOrStdout()
	names := vtu.ListScalarFieldNames(doc)
	if len(names) == 0 {
		fmt.Fprintf(out, "No point scalar fields in %s\n", filename)
		return
	}

	width := lo.Max(lo.Map(names, func(name string, _ int) int { return len(name) }))

	fmt.Fprintf(out, "Point Scalar Fields (%d)\n", len(names))
	fmt.Fprintln(out, "====================")
	for i, name := range names {
		values, _, err := vtu.ExtractScalarField(doc, name)
		if err != nil {
			fail(cmd, "reading field %q: %v", name, err)
		}
		stats := analysis.AnalyzeField(name, values)

		marker := " "
		if i == 0 {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-*s  %6d values  [%g, %g]\n", marker, width, name, stats.Count, stats.Min, stats.Max)
	}
}
