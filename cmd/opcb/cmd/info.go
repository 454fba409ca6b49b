package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/board"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

var infoCmd = &cobra.Command{
	Use:   "info <board_file>",
	Short: "Show board summary",
	Long:  `Display counts of footprints, nets, traces, vias and zones, plus the outline size.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	doc, err := loadBoard(args[0])
	if err != nil {
		return err
	}

	heading := color.New(color.FgCyan, color.Bold)
	heading.Printf("Board: %s\n", args[0])

	fmt.Printf("  Footprints: %d\n", len(doc.Footprints()))
	fmt.Printf("  Nets:       %d\n", len(doc.Nets()))
	fmt.Printf("  Traces:     %d segments, %d vias\n", len(doc.Segments()), len(doc.Vias()))
	fmt.Printf("  Zones:      %d\n", len(doc.Zones()))

	vertices := doc.OutlineVertices()
	if len(vertices) == 0 {
		fmt.Println("  Outline:    none")
		return nil
	}
	bbox := board.NewBBox()
	for _, v := range vertices {
		bbox.Expand(v)
	}
	fmt.Printf("  Outline:    %d vertices, %.2f x %.2f mm\n",
		len(vertices), bbox.Width(), bbox.Height())

	if verbose {
		heading.Println("Footprints:")
		for _, fp := range doc.Footprints() {
			if at, ok := sexp.GetAt(fp); ok {
				fmt.Printf("  %-8s %-20s at (%.2f, %.2f) rot %.0f\n",
					board.Reference(fp), fp.ArgText(0), at.X, at.Y, at.Rotation)
			}
		}
	}
	return nil
}
