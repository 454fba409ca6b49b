package board

import (
	"github.com/OpenTraceLab/OpenTracePCB/pkg/netlist"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

// Document wraps the root of a board tree. It is the sole unit of ownership:
// a Document belongs to exactly one editing session and is mutated only
// through committed operations.
type Document struct {
	Root *sexp.Node
}

// New wraps an already-parsed board tree.
func New(root *sexp.Node) *Document {
	return &Document{Root: root}
}

// NewEmpty creates a minimal two-layer board document.
func NewEmpty() *Document {
	root := sexp.NewList("kicad_pcb",
		sexp.NewList("version", sexp.Int(20211014)),
		sexp.NewList("generator", sexp.Symbol("opentracepcb")),
		sexp.NewList("net", sexp.Int(0), sexp.String("")),
	)
	return &Document{Root: root}
}

// Clone returns a structurally independent copy of the document.
func (d *Document) Clone() *Document {
	return &Document{Root: d.Root.Clone()}
}

// Footprints returns all footprint nodes in document order.
func (d *Document) Footprints() []*sexp.Node {
	return sexp.FindChildren(d.Root, "footprint")
}

// Footprint finds a footprint by its reference designator.
func (d *Document) Footprint(ref string) (*sexp.Node, bool) {
	for _, fp := range d.Footprints() {
		if Reference(fp) == ref {
			return fp, true
		}
	}
	return nil, false
}

// Reference extracts a footprint's reference designator from its Reference
// property, falling back to the legacy fp_text form.
func Reference(fp *sexp.Node) string {
	for _, prop := range sexp.FindChildren(fp, "property") {
		if prop.ArgText(0) == "Reference" {
			return prop.ArgText(1)
		}
	}
	for _, text := range sexp.FindChildren(fp, "fp_text") {
		if text.ArgText(0) == "reference" {
			return text.ArgText(1)
		}
	}
	return ""
}

// Pads returns a footprint's pad nodes in document order.
func Pads(fp *sexp.Node) []*sexp.Node {
	return sexp.FindChildren(fp, "pad")
}

// PadNumber returns a pad's number/name argument.
func PadNumber(pad *sexp.Node) string {
	return pad.ArgText(0)
}

// PadNetNumber returns the net number assigned to a pad, 0 when unassigned.
func PadNetNumber(pad *sexp.Node) int {
	n, ok := sexp.GetPairInt(pad, "net")
	if !ok {
		return 0
	}
	return n
}

// Nets returns the document's net declarations in document order.
func (d *Document) Nets() []*sexp.Node {
	return sexp.FindChildren(d.Root, "net")
}

// NetName resolves a net number to its name.
func (d *Document) NetName(number int) (string, bool) {
	for _, net := range d.Nets() {
		if num, ok := net.ArgInt(0); ok && num == number {
			return net.ArgText(1), true
		}
	}
	return "", false
}

// NetNumber resolves a net name to its number.
func (d *Document) NetNumber(name string) (int, bool) {
	for _, net := range d.Nets() {
		if net.ArgText(1) == name {
			if num, ok := net.ArgInt(0); ok {
				return num, true
			}
		}
	}
	return 0, false
}

// EnsureNet returns the number of the named net, declaring it with the next
// free number if the document does not have it yet.
func (d *Document) EnsureNet(name string) int {
	if num, ok := d.NetNumber(name); ok {
		return num
	}
	next := 0
	for _, net := range d.Nets() {
		if num, ok := net.ArgInt(0); ok && num >= next {
			next = num + 1
		}
	}
	d.Root.Append(sexp.NewList("net", sexp.Int(next), sexp.String(name)))
	return next
}

// ApplyNetlist declares the extracted nets in the document and assigns them
// to matching pads ("<reference>:<pad>" pin identifiers). Pads whose pin is
// not in the netlist are left alone.
func (d *Document) ApplyNetlist(nl *netlist.Netlist) {
	// Net 0 is the reserved unconnected net
	if _, ok := d.NetName(0); !ok {
		d.Root.Append(sexp.NewList("net", sexp.Int(0), sexp.String("")))
	}
	numbers := make(map[string]int, nl.NetCount())
	for _, net := range nl.Nets {
		numbers[net.Name] = d.EnsureNet(net.Name)
	}

	for _, fp := range d.Footprints() {
		ref := Reference(fp)
		if ref == "" {
			continue
		}
		for _, pad := range Pads(fp) {
			pin := ref + ":" + PadNumber(pad)
			net, ok := nl.NetOf(pin)
			if !ok {
				continue
			}
			sexp.RemoveChildren(pad, "net", nil)
			pad.Append(sexp.NewList("net", sexp.Int(numbers[net.Name]), sexp.String(net.Name)))
		}
	}
}

// Segments returns all committed trace segments.
func (d *Document) Segments() []*sexp.Node {
	return sexp.FindChildren(d.Root, "segment")
}

// Vias returns all committed vias.
func (d *Document) Vias() []*sexp.Node {
	return sexp.FindChildren(d.Root, "via")
}

// Zones returns all committed zones.
func (d *Document) Zones() []*sexp.Node {
	return sexp.FindChildren(d.Root, "zone")
}

// OutlineSegments returns the board outline edge segments in document order.
func (d *Document) OutlineSegments() []*sexp.Node {
	var edges []*sexp.Node
	for _, line := range sexp.FindChildren(d.Root, "gr_line") {
		if layer, ok := sexp.GetPairValue(line, "layer"); ok && layer == LayerEdgeCuts {
			edges = append(edges, line)
		}
	}
	return edges
}

// OutlineVertices returns the outline polygon's vertices, one per edge
// segment start point.
func (d *Document) OutlineVertices() []Point {
	var vertices []Point
	for _, edge := range d.OutlineSegments() {
		if start, ok := pairPoint(edge, "start"); ok {
			vertices = append(vertices, start)
		}
	}
	return vertices
}

// PolyPoints extracts the vertex list of a (polygon (pts (xy ...) ...)) or
// bare (pts ...) node.
func PolyPoints(n *sexp.Node) []Point {
	ptsNode := n
	if n.Tag() != "pts" {
		inner, found := sexp.FindChild(n, "pts")
		if !found {
			if poly, ok := sexp.FindChild(n, "polygon"); ok {
				return PolyPoints(poly)
			}
			return nil
		}
		ptsNode = inner
	}

	var points []Point
	for _, xy := range sexp.FindChildren(ptsNode, "xy") {
		x, okX := xy.ArgFloat(0)
		y, okY := xy.ArgFloat(1)
		if okX && okY {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// pairPoint reads a (tag X Y) coordinate child.
func pairPoint(n *sexp.Node, tag string) (Point, bool) {
	child, found := sexp.FindChild(n, tag)
	if !found {
		return Point{}, false
	}
	x, okX := child.ArgFloat(0)
	y, okY := child.ArgFloat(1)
	if !okX || !okY {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}
