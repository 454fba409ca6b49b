// Package board provides typed views over a board document tree: footprint
// and net lookups, courtyard geometry, and world-space hit-testing. The views
// are layered on top of the raw tree and never replace it.
package board

import "math"

// Point is a 2D coordinate in millimeters, Y-down as board files store it.
type Point struct {
	X float64
	Y float64
}

// Snap rounds a coordinate to the nearest multiple of the grid pitch.
// A zero or negative grid leaves the value unchanged.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Round(v/grid) * grid
}

// SnapPoint snaps both coordinates to the grid.
func SnapPoint(p Point, grid float64) Point {
	return Point{X: Snap(p.X, grid), Y: Snap(p.Y, grid)}
}

// RotatePoint rotates a point about the origin by the given angle in degrees.
// The angle is negated to match the board file coordinate system, where
// positive rotation is counter-clockwise in a Y-down frame.
func RotatePoint(p Point, degrees float64) Point {
	if degrees == 0 {
		return p
	}
	rad := -degrees * math.Pi / 180.0
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// NormalizeAngle maps an angle in degrees onto [0, 360).
func NormalizeAngle(degrees float64) float64 {
	normalized := math.Mod(degrees, 360)
	if normalized < 0 {
		normalized += 360
	}
	return normalized
}

// BBox is an axis-aligned rectangular boundary.
type BBox struct {
	Min Point
	Max Point
}

// NewBBox creates an empty bounding box.
func NewBBox() BBox {
	return BBox{
		Min: Point{X: 1e9, Y: 1e9},
		Max: Point{X: -1e9, Y: -1e9},
	}
}

// IsEmpty checks if the bounding box contains no points.
func (bb BBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand grows the bounding box to include a point.
func (bb *BBox) Expand(p Point) {
	if p.X < bb.Min.X {
		bb.Min.X = p.X
	}
	if p.Y < bb.Min.Y {
		bb.Min.Y = p.Y
	}
	if p.X > bb.Max.X {
		bb.Max.X = p.X
	}
	if p.Y > bb.Max.Y {
		bb.Max.Y = p.Y
	}
}

// ExpandBox grows the bounding box to include another box.
func (bb *BBox) ExpandBox(other BBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Intersects checks if two bounding boxes overlap. Boxes that merely touch
// along an edge count as intersecting.
func (bb BBox) Intersects(other BBox) bool {
	return bb.Min.X <= other.Max.X && bb.Max.X >= other.Min.X &&
		bb.Min.Y <= other.Max.Y && bb.Max.Y >= other.Min.Y
}

// Contains checks if a point lies within the bounding box.
func (bb BBox) Contains(p Point) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X &&
		p.Y >= bb.Min.Y && p.Y <= bb.Max.Y
}

// Width returns the horizontal extent of the box.
func (bb BBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the vertical extent of the box.
func (bb BBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the box.
func (bb BBox) Center() Point {
	return Point{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}
