package board

import (
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

// Courtyard geometry. A footprint's courtyard is the keep-out outline drawn
// on F.CrtYd/B.CrtYd; committed placements must not overlap another
// footprint's courtyard. Footprints without a courtyard outline are exempt
// from collision checks entirely and never block others.

// drawingTags are the footprint drawing node types that can carry courtyard
// geometry.
var drawingTags = []string{"fp_line", "fp_rect", "fp_poly", "fp_circle", "fp_arc"}

// CourtyardAt computes the axis-aligned bounding box of a footprint's
// courtyard outline as if the footprint were placed at (x, y) with the given
// rotation: outline corners are rotated about the footprint origin first,
// then translated. The second result is false when the footprint has no
// courtyard geometry.
func CourtyardAt(fp *sexp.Node, x, y, rotation float64) (BBox, bool) {
	bbox := NewBBox()
	found := false

	for _, tag := range drawingTags {
		for _, drawing := range sexp.FindChildren(fp, tag) {
			layer, ok := sexp.GetPairValue(drawing, "layer")
			if !ok || !IsCourtyard(layer) {
				continue
			}
			for _, local := range drawingPoints(drawing) {
				p := RotatePoint(local, rotation)
				bbox.Expand(Point{X: x + p.X, Y: y + p.Y})
				found = true
			}
		}
	}

	if !found {
		return BBox{}, false
	}
	return bbox, true
}

// Courtyard computes the courtyard bounding box at the footprint's current
// placement.
func Courtyard(fp *sexp.Node) (BBox, bool) {
	at, ok := sexp.GetAt(fp)
	if !ok {
		return BBox{}, false
	}
	return CourtyardAt(fp, at.X, at.Y, at.Rotation)
}

// FindCollision checks a candidate placement of the named footprint against
// every other footprint's courtyard and returns the reference of the first
// one it would overlap. Footprints without a courtyard can neither collide
// nor block.
func (d *Document) FindCollision(ref string, candidate BBox) (string, bool) {
	for _, other := range d.Footprints() {
		otherRef := Reference(other)
		if otherRef == ref {
			continue
		}
		otherBox, ok := Courtyard(other)
		if !ok {
			continue
		}
		if candidate.Intersects(otherBox) {
			return otherRef, true
		}
	}
	return "", false
}

// drawingPoints collects the control points of a drawing node: start/end for
// lines and rects, center and circumference point for circles, start/mid/end
// for arcs, and the vertex list for polygons. The bounding box of these
// points approximates the drawing's extent, which is exact for the
// rectangular courtyards footprint libraries draw.
func drawingPoints(drawing *sexp.Node) []Point {
	var points []Point
	for _, tag := range []string{"start", "mid", "end", "center"} {
		if p, ok := pairPoint(drawing, tag); ok {
			points = append(points, p)
		}
	}
	points = append(points, PolyPoints(drawing)...)
	return points
}
