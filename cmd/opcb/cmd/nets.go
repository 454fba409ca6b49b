package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/board"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

var netsCmd = &cobra.Command{
	Use:   "nets <board_file> [net_name]",
	Short: "Show net information",
	Long: `Display information about nets in a board file.

Without net_name: lists all nets with pad/segment/via counts
With net_name: shows the pads, segments and vias on that net`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNets,
}

func init() {
	rootCmd.AddCommand(netsCmd)
}

func runNets(cmd *cobra.Command, args []string) error {
	doc, err := loadBoard(args[0])
	if err != nil {
		return err
	}
	if len(args) == 2 {
		return showNetDetails(doc, args[1])
	}
	listAllNets(doc)
	return nil
}

// netTally counts the conductors assigned to each net number.
type netTally struct {
	pads     int
	segments int
	vias     int
}

func tallyNets(doc *board.Document) map[int]*netTally {
	tally := map[int]*netTally{}
	bump := func(num int) *netTally {
		t := tally[num]
		if t == nil {
			t = &netTally{}
			tally[num] = t
		}
		return t
	}
	for _, fp := range doc.Footprints() {
		for _, pad := range board.Pads(fp) {
			bump(board.PadNetNumber(pad)).pads++
		}
	}
	for _, seg := range doc.Segments() {
		if num, ok := sexp.GetPairInt(seg, "net"); ok {
			bump(num).segments++
		}
	}
	for _, via := range doc.Vias() {
		if num, ok := sexp.GetPairInt(via, "net"); ok {
			bump(num).vias++
		}
	}
	return tally
}

func listAllNets(doc *board.Document) {
	nets := doc.Nets()
	color.New(color.FgCyan, color.Bold).Printf("Board: %d nets\n\n", len(nets))
	fmt.Printf("%5s %-24s %6s %9s %6s\n", "Net", "Name", "Pads", "Segments", "Vias")

	tally := tallyNets(doc)
	sorted := make([]*sexp.Node, len(nets))
	copy(sorted, nets)
	sort.Slice(sorted, func(i, j int) bool {
		a, _ := sorted[i].ArgInt(0)
		b, _ := sorted[j].ArgInt(0)
		return a < b
	})

	for _, net := range sorted {
		num, _ := net.ArgInt(0)
		name := net.ArgText(1)
		if name == "" {
			name = "(unconnected)"
		}
		t := tally[num]
		if t == nil {
			t = &netTally{}
		}
		fmt.Printf("%5d %-24s %6d %9d %6d\n", num, name, t.pads, t.segments, t.vias)
	}
}

func showNetDetails(doc *board.Document, name string) error {
	num, ok := doc.NetNumber(name)
	if !ok {
		return fmt.Errorf("net %q not found", name)
	}

	color.New(color.FgCyan, color.Bold).Printf("Net: %s (number %d)\n\n", name, num)

	fmt.Println("Pads:")
	for _, fp := range doc.Footprints() {
		ref := board.Reference(fp)
		fpAt, _ := sexp.GetAt(fp)
		for _, pad := range board.Pads(fp) {
			if board.PadNetNumber(pad) != num {
				continue
			}
			at, _ := sexp.GetAt(pad)
			pos := board.RotatePoint(board.Point{X: at.X, Y: at.Y}, fpAt.Rotation)
			fmt.Printf("  %s:%s at (%.2f, %.2f)\n",
				ref, board.PadNumber(pad), fpAt.X+pos.X, fpAt.Y+pos.Y)
		}
	}

	fmt.Println("\nSegments:")
	for _, seg := range doc.Segments() {
		if n, ok := sexp.GetPairInt(seg, "net"); !ok || n != num {
			continue
		}
		layer, _ := sexp.GetPairValue(seg, "layer")
		width, _ := sexp.GetPairFloat(seg, "width")
		start, _ := sexp.FindChild(seg, "start")
		end, _ := sexp.FindChild(seg, "end")
		sx, _ := start.ArgFloat(0)
		sy, _ := start.ArgFloat(1)
		ex, _ := end.ArgFloat(0)
		ey, _ := end.ArgFloat(1)
		fmt.Printf("  %.2f mm on %s from (%.2f, %.2f) to (%.2f, %.2f)\n",
			width, layer, sx, sy, ex, ey)
	}

	fmt.Println("\nVias:")
	for _, via := range doc.Vias() {
		if n, ok := sexp.GetPairInt(via, "net"); !ok || n != num {
			continue
		}
		at, _ := sexp.GetAt(via)
		size, _ := sexp.GetPairFloat(via, "size")
		drill, _ := sexp.GetPairFloat(via, "drill")
		fmt.Printf("  %.2f mm diameter, %.2f mm drill at (%.2f, %.2f)\n",
			size, drill, at.X, at.Y)
	}
	return nil
}
