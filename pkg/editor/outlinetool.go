package editor

import (
	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/board"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

// outlineState distinguishes the outline tool's two click behaviors.
type outlineState int

const (
	outlineIdle outlineState = iota
	outlineDrawing
	outlineDragging
)

// vertexHitRadius is how close (mm) a click must land to an existing outline
// vertex to start a drag instead of a new outline.
const vertexHitRadius = 0.5

// OutlineTool edits the board outline. A click near an existing outline
// vertex starts a vertex drag, resolved on release as a single commit that
// replaces just that vertex. A click anywhere else starts a new outline:
// click-to-append vertices, then Close (needing at least three) replaces any
// prior outline wholesale in one commit. Cancel discards in-progress state
// without touching the document.
type OutlineTool struct {
	session *Session
	state   outlineState

	vertices  []board.Point
	dragIndex int
}

// NewOutlineTool creates an outline tool bound to a session.
func NewOutlineTool(session *Session) *OutlineTool {
	return &OutlineTool{session: session}
}

// Drawing reports whether a new outline is being drawn.
func (o *OutlineTool) Drawing() bool {
	return o.state == outlineDrawing
}

// Dragging reports whether an existing vertex is being dragged.
func (o *OutlineTool) Dragging() bool {
	return o.state == outlineDragging
}

// Click feeds a press into the tool. Near an existing outline vertex it
// begins a drag of that vertex; otherwise it starts or extends a new
// outline polygon with the snapped click point.
func (o *OutlineTool) Click(p board.Point) {
	switch o.state {
	case outlineIdle:
		if idx, ok := o.nearestVertex(p); ok {
			o.state = outlineDragging
			o.dragIndex = idx
			return
		}
		o.state = outlineDrawing
		o.vertices = []board.Point{board.SnapPoint(p, o.session.Config.PlacementGrid)}

	case outlineDrawing:
		o.vertices = append(o.vertices, board.SnapPoint(p, o.session.Config.PlacementGrid))

	case outlineDragging:
		// A drag is resolved by Release; extra presses are ignored.
	}
}

// Release ends a vertex drag, replacing exactly the dragged vertex's
// coordinates with the snapped release point in a single commit. Outside a
// drag it is a no-op.
func (o *OutlineTool) Release(p board.Point) {
	if o.state != outlineDragging {
		return
	}

	vertices := o.session.Doc.OutlineVertices()
	if o.dragIndex >= len(vertices) {
		o.reset()
		return
	}
	vertices[o.dragIndex] = board.SnapPoint(p, o.session.Config.PlacementGrid)

	width := o.session.Config.OutlineWidth
	o.session.commit(func(doc *board.Document) {
		writeOutline(doc, vertices, width)
	})
	o.reset()
}

// Close commits the new outline polygon. Fewer than three vertices is a
// no-op that stays in the drawing state; otherwise the polygon replaces any
// prior outline in one commit.
func (o *OutlineTool) Close() bool {
	if o.state != outlineDrawing || len(o.vertices) < 3 {
		return false
	}

	vertices := o.vertices
	width := o.session.Config.OutlineWidth
	o.session.commit(func(doc *board.Document) {
		writeOutline(doc, vertices, width)
	})
	o.reset()
	return true
}

// Cancel discards in-progress drawing or dragging without mutation.
func (o *OutlineTool) Cancel() {
	o.reset()
}

// Vertices returns a copy of the in-progress polygon for rendering.
func (o *OutlineTool) Vertices() []board.Point {
	out := make([]board.Point, len(o.vertices))
	copy(out, o.vertices)
	return out
}

func (o *OutlineTool) reset() {
	o.state = outlineIdle
	o.vertices = nil
	o.dragIndex = 0
}

// nearestVertex finds the outline vertex within the hit radius of p.
func (o *OutlineTool) nearestVertex(p board.Point) (int, bool) {
	bestIdx := -1
	bestDist := -1.0
	for i, v := range o.session.Doc.OutlineVertices() {
		dist := board.Distance(p, v)
		if dist > vertexHitRadius {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			bestIdx = i
			bestDist = dist
		}
	}
	return bestIdx, bestIdx >= 0
}

// writeOutline replaces the document's edge segments with a closed chain
// through the given vertices. The outline is always a single polygon; prior
// edges are removed, never merged.
func writeOutline(doc *board.Document, vertices []board.Point, width float64) {
	sexp.RemoveChildren(doc.Root, "gr_line", func(line *sexp.Node) bool {
		layer, ok := sexp.GetPairValue(line, "layer")
		return ok && layer == board.LayerEdgeCuts
	})

	for i, start := range vertices {
		end := vertices[(i+1)%len(vertices)]
		doc.Root.Append(sexp.NewList("gr_line",
			sexp.NewList("start", sexp.Number(start.X), sexp.Number(start.Y)),
			sexp.NewList("end", sexp.Number(end.X), sexp.Number(end.Y)),
			sexp.NewList("layer", sexp.String(board.LayerEdgeCuts)),
			sexp.NewList("width", sexp.Number(width)),
			sexp.NewList("uuid", sexp.String(uuid.NewString())),
		))
	}
}
