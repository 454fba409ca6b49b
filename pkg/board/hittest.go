package board

import (
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

// PadHit describes the pad nearest to a world-space point. It carries
// everything the interactive tools need to start a selection or a route.
type PadHit struct {
	Ref      string // footprint reference designator
	Pad      string // pad number
	Pin      string // "<ref>:<pad>" identifier
	Net      int    // net number, 0 when unassigned
	NetName  string
	Position Point  // absolute pad center
	Layer    string // copper layer for routing starts
}

// ViaHit describes the via nearest to a world-space point.
type ViaHit struct {
	Net      int
	Position Point
	Node     *sexp.Node
}

// NearestPad selects the pad whose center is closest to the given point,
// within each pad's size-derived radius plus the tolerance. Ties are broken
// by document order: the earlier footprint/pad wins.
func (d *Document) NearestPad(p Point, tolerance float64) (PadHit, bool) {
	var best PadHit
	bestDist := -1.0

	for _, fp := range d.Footprints() {
		fpAt, ok := sexp.GetAt(fp)
		if !ok {
			continue
		}
		ref := Reference(fp)
		fpLayer, _ := sexp.GetPairValue(fp, "layer")

		for _, pad := range Pads(fp) {
			padAt, ok := sexp.GetAt(pad)
			if !ok {
				continue
			}
			rotated := RotatePoint(Point{X: padAt.X, Y: padAt.Y}, fpAt.Rotation)
			abs := Point{X: fpAt.X + rotated.X, Y: fpAt.Y + rotated.Y}

			radius := padRadius(pad) + tolerance
			dist := Distance(p, abs)
			if dist > radius {
				continue
			}
			if bestDist >= 0 && dist >= bestDist {
				continue
			}

			num := PadNumber(pad)
			net := PadNetNumber(pad)
			netName, _ := d.NetName(net)
			best = PadHit{
				Ref:      ref,
				Pad:      num,
				Pin:      ref + ":" + num,
				Net:      net,
				NetName:  netName,
				Position: abs,
				Layer:    padCopperLayer(pad, fpLayer),
			}
			bestDist = dist
		}
	}

	return best, bestDist >= 0
}

// NearestVia selects the via whose center is closest to the given point,
// within the via radius plus the tolerance.
func (d *Document) NearestVia(p Point, tolerance float64) (ViaHit, bool) {
	var best ViaHit
	bestDist := -1.0

	for _, via := range d.Vias() {
		at, ok := sexp.GetAt(via)
		if !ok {
			continue
		}
		size, _ := sexp.GetPairFloat(via, "size")
		radius := size/2 + tolerance
		pos := Point{X: at.X, Y: at.Y}
		dist := Distance(p, pos)
		if dist > radius {
			continue
		}
		if bestDist >= 0 && dist >= bestDist {
			continue
		}
		best = ViaHit{
			Net:      PadNetNumber(via),
			Position: pos,
			Node:     via,
		}
		bestDist = dist
	}

	return best, bestDist >= 0
}

// padRadius derives a selection radius from the pad size.
func padRadius(pad *sexp.Node) float64 {
	sizeNode, found := sexp.FindChild(pad, "size")
	if !found {
		return 0
	}
	w, okW := sizeNode.ArgFloat(0)
	h, okH := sizeNode.ArgFloat(1)
	if !okW || !okH {
		return 0
	}
	if w > h {
		return w / 2
	}
	return h / 2
}

// padCopperLayer picks the copper layer a route starting on this pad should
// use: the first copper layer the pad is on, else the footprint's own layer.
func padCopperLayer(pad *sexp.Node, footprintLayer string) string {
	for _, name := range sexp.LayerNames(pad) {
		if IsCopper(name) {
			return name
		}
	}
	if IsCopper(footprintLayer) {
		return footprintLayer
	}
	return LayerTopCopper
}
