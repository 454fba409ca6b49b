package board

import (
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/netlist"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

// twoResistors is a minimal two-layer board: R1 at (10,10) and R2 at (20,10),
// both with 2x2 mm courtyards.
const twoResistors = `(kicad_pcb (version 20211014) (generator opentracepcb)
	(net 0 "")
	(net 1 "GND")
	(footprint "R_0603"
		(layer "F.Cu")
		(at 10 10)
		(property "Reference" "R1")
		(property "Value" "10k")
		(fp_rect (start -1 -1) (end 1 1) (layer "F.CrtYd"))
		(pad "1" smd rect (at -0.8 0) (size 0.8 0.9) (layers "F.Cu" "F.Mask") (net 1 "GND"))
		(pad "2" smd rect (at 0.8 0) (size 0.8 0.9) (layers "F.Cu" "F.Mask")))
	(footprint "R_0603"
		(layer "F.Cu")
		(at 20 10)
		(property "Reference" "R2")
		(property "Value" "1k")
		(fp_rect (start -1 -1) (end 1 1) (layer "F.CrtYd"))
		(pad "1" smd rect (at -0.8 0) (size 0.8 0.9) (layers "F.Cu" "F.Mask") (net 1 "GND"))
		(pad "2" smd rect (at 0.8 0) (size 0.8 0.9) (layers "F.Cu" "F.Mask"))))`

func loadDoc(t *testing.T, input string) *Document {
	t.Helper()
	root, err := sexp.ParseString(input)
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return New(root)
}

func TestFootprintLookup(t *testing.T) {
	doc := loadDoc(t, twoResistors)

	fp, found := doc.Footprint("R2")
	if !found {
		t.Fatal("R2 should be found")
	}
	at, _ := sexp.GetAt(fp)
	if at.X != 20 || at.Y != 10 {
		t.Errorf("R2 at (%v, %v), want (20, 10)", at.X, at.Y)
	}

	if _, found := doc.Footprint("R99"); found {
		t.Error("unknown reference should not be found")
	}
}

func TestNetTable(t *testing.T) {
	doc := loadDoc(t, twoResistors)

	if num, ok := doc.NetNumber("GND"); !ok || num != 1 {
		t.Errorf("NetNumber(GND) = %d, %v", num, ok)
	}
	if name, ok := doc.NetName(1); !ok || name != "GND" {
		t.Errorf("NetName(1) = %q, %v", name, ok)
	}

	// EnsureNet reuses existing declarations
	if num := doc.EnsureNet("GND"); num != 1 {
		t.Errorf("EnsureNet(GND) = %d, want 1", num)
	}

	// and allocates the next free number for new ones
	num := doc.EnsureNet("VCC")
	if num != 2 {
		t.Errorf("EnsureNet(VCC) = %d, want 2", num)
	}
	if name, _ := doc.NetName(2); name != "VCC" {
		t.Errorf("NetName(2) = %q, want VCC", name)
	}
}

func TestApplyNetlist(t *testing.T) {
	doc := loadDoc(t, twoResistors)

	nl := netlist.Extract([]netlist.Connection{
		{A: "R1:2", B: "R2:2"},
	}, map[string]string{"R1:2": "SIG"})

	doc.ApplyNetlist(nl)

	num, ok := doc.NetNumber("SIG")
	if !ok {
		t.Fatal("SIG net should be declared")
	}

	fp, _ := doc.Footprint("R1")
	for _, pad := range Pads(fp) {
		if PadNumber(pad) == "2" {
			if got := PadNetNumber(pad); got != num {
				t.Errorf("R1 pad 2 net = %d, want %d", got, num)
			}
		}
	}
}

func TestCourtyard(t *testing.T) {
	doc := loadDoc(t, twoResistors)
	fp, _ := doc.Footprint("R1")

	box, ok := Courtyard(fp)
	if !ok {
		t.Fatal("R1 should have a courtyard")
	}
	if box.Min.X != 9 || box.Min.Y != 9 || box.Max.X != 11 || box.Max.Y != 11 {
		t.Errorf("courtyard = %+v, want [9,9]-[11,11]", box)
	}
}

func TestCourtyardAtRotation(t *testing.T) {
	// A 4x2 courtyard rotated 90 degrees becomes 2x4 around the origin
	input := `(footprint "SOT-23"
		(layer "F.Cu")
		(at 0 0)
		(property "Reference" "Q1")
		(fp_rect (start -2 -1) (end 2 1) (layer "F.CrtYd")))`
	fp, err := sexp.ParseString(input)
	if err != nil {
		t.Fatal(err)
	}

	box, ok := CourtyardAt(fp, 5, 5, 90)
	if !ok {
		t.Fatal("expected courtyard")
	}

	const eps = 1e-9
	if math.Abs(box.Width()-2) > eps || math.Abs(box.Height()-4) > eps {
		t.Errorf("rotated courtyard %v x %v, want 2 x 4", box.Width(), box.Height())
	}
	center := box.Center()
	if math.Abs(center.X-5) > eps || math.Abs(center.Y-5) > eps {
		t.Errorf("courtyard center = %+v, want (5, 5)", center)
	}
}

func TestCourtyardAbsent(t *testing.T) {
	input := `(footprint "Conn" (layer "F.Cu") (at 0 0)
		(property "Reference" "J1")
		(pad "1" thru_hole circle (at 0 0) (size 1.7 1.7) (layers "*.Cu" "*.Mask")))`
	fp, err := sexp.ParseString(input)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := Courtyard(fp); ok {
		t.Error("footprint without courtyard drawings should report none")
	}
}

func TestFindCollision(t *testing.T) {
	doc := loadDoc(t, twoResistors)

	// Candidate placement of R1 right on top of R2
	box, _ := CourtyardAt(mustFootprint(t, doc, "R1"), 20, 10, 0)
	if ref, hit := doc.FindCollision("R1", box); !hit || ref != "R2" {
		t.Errorf("FindCollision on R2 = %q, %v; want R2, true", ref, hit)
	}

	// Candidate placement midway: courtyards [14,9]-[16,11] vs [19,9]-[21,11]
	box, _ = CourtyardAt(mustFootprint(t, doc, "R1"), 15, 10, 0)
	if ref, hit := doc.FindCollision("R1", box); hit {
		t.Errorf("unexpected collision with %q at (15, 10)", ref)
	}
}

func mustFootprint(t *testing.T, doc *Document, ref string) *sexp.Node {
	t.Helper()
	fp, found := doc.Footprint(ref)
	if !found {
		t.Fatalf("footprint %s not found", ref)
	}
	return fp
}

func TestNearestPad(t *testing.T) {
	doc := loadDoc(t, twoResistors)

	// R1 pad 1 sits at (9.2, 10)
	hit, found := doc.NearestPad(Point{X: 9.3, Y: 10.1}, 0.25)
	if !found {
		t.Fatal("expected a pad hit")
	}
	if hit.Pin != "R1:1" {
		t.Errorf("hit pin = %q, want R1:1", hit.Pin)
	}
	if hit.Net != 1 || hit.NetName != "GND" {
		t.Errorf("hit net = %d %q, want 1 GND", hit.Net, hit.NetName)
	}
	if hit.Layer != LayerTopCopper {
		t.Errorf("hit layer = %q, want F.Cu", hit.Layer)
	}

	// Far away from any pad
	if _, found := doc.NearestPad(Point{X: 50, Y: 50}, 0.25); found {
		t.Error("no pad should be hit far from the board")
	}
}

func TestNearestPadTieBreak(t *testing.T) {
	// Two pads equidistant from the probe point: document order wins
	input := `(kicad_pcb (net 0 "")
		(footprint "A" (layer "F.Cu") (at 0 0)
			(property "Reference" "U1")
			(pad "1" smd rect (at -1 0) (size 1 1) (layers "F.Cu")))
		(footprint "B" (layer "F.Cu") (at 0 0)
			(property "Reference" "U2")
			(pad "1" smd rect (at 1 0) (size 1 1) (layers "F.Cu"))))`
	doc := loadDoc(t, input)

	hit, found := doc.NearestPad(Point{X: 0, Y: 0}, 0.6)
	if !found {
		t.Fatal("expected a hit")
	}
	if hit.Pin != "U1:1" {
		t.Errorf("tie should go to document order, got %q", hit.Pin)
	}
}

func TestFlipLayer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"F.Cu", "B.Cu"},
		{"B.Cu", "F.Cu"},
		{"F.Mask", "B.Mask"},
		{"F.Paste", "B.Paste"},
		{"F.SilkS", "B.SilkS"},
		{"B.Fab", "F.Fab"},
		{"Edge.Cuts", "Edge.Cuts"},
		{"In1.Cu", "In1.Cu"},
	}

	for _, tt := range tests {
		if got := FlipLayer(tt.in); got != tt.want {
			t.Errorf("FlipLayer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSnap(t *testing.T) {
	tests := []struct {
		v, grid, want float64
	}{
		{10.3, 0.5, 10.5},
		{10.2, 0.5, 10},
		{-0.26, 0.5, -0.5},
		{1.24, 0.1, 1.2},
		{7, 0, 7},
	}

	for _, tt := range tests {
		if got := Snap(tt.v, tt.grid); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Snap(%v, %v) = %v, want %v", tt.v, tt.grid, got, tt.want)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{450, 90},
		{-90, 270},
		{359.5, 359.5},
	}

	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); got != tt.want {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutlineVertices(t *testing.T) {
	input := `(kicad_pcb (net 0 "")
		(gr_line (start 0 0) (end 50 0) (layer "Edge.Cuts") (width 0.1))
		(gr_line (start 50 0) (end 50 30) (layer "Edge.Cuts") (width 0.1))
		(gr_line (start 50 30) (end 0 0) (layer "Edge.Cuts") (width 0.1))
		(gr_line (start 1 1) (end 2 2) (layer "F.SilkS") (width 0.1)))`
	doc := loadDoc(t, input)

	vertices := doc.OutlineVertices()
	want := []Point{{0, 0}, {50, 0}, {50, 30}}
	if len(vertices) != len(want) {
		t.Fatalf("vertices = %v, want %v", vertices, want)
	}
	for i := range want {
		if vertices[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, vertices[i], want[i])
		}
	}
}
