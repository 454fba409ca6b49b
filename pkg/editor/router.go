package editor

import (
	"math"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/board"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

// RouteMode selects how the router bends the path between the last waypoint
// and the cursor.
type RouteMode int

const (
	// ModeOrthoH routes a horizontal segment first, then a vertical one.
	ModeOrthoH RouteMode = iota
	// ModeOrthoV routes a vertical segment first, then a horizontal one.
	ModeOrthoV
	// ModeDiagonal routes a 45-degree run, then an axis-aligned remainder.
	ModeDiagonal
)

func (m RouteMode) String() string {
	switch m {
	case ModeOrthoH:
		return "ortho-h"
	case ModeOrthoV:
		return "ortho-v"
	case ModeDiagonal:
		return "diagonal"
	}
	return "unknown"
}

// RouterState is the router's interactive state.
type RouterState int

const (
	RouterIdle RouterState = iota
	RouterRouting
)

// Segment is one straight copper run of the route in progress.
type Segment struct {
	Start board.Point
	End   board.Point
	Layer string
}

// pendingVia is a via queued for the final commit.
type pendingVia struct {
	Position board.Point
}

// Router is the interactive single-trace routing tool. A session starts on a
// pad or via click, accumulates segments and vias in memory, and writes them
// to the document in one commit when the route reaches a same-net
// destination. Cancelling discards everything; the document is only touched
// at completion.
type Router struct {
	session *Session
	state   RouterState
	mode    RouteMode

	net      int
	netName  string
	layer    string
	last     board.Point
	segments []Segment
	vias     []pendingVia
	preview  []Segment
}

// NewRouter creates a router bound to an editing session.
func NewRouter(session *Session) *Router {
	return &Router{session: session}
}

// State returns the router's interactive state.
func (r *Router) State() RouterState {
	return r.state
}

// Mode returns the active routing mode.
func (r *Router) Mode() RouteMode {
	return r.mode
}

// ActiveLayer returns the copper layer new segments are placed on. Only
// meaningful while routing.
func (r *Router) ActiveLayer() string {
	return r.layer
}

// Net returns the net number captured for the route in progress.
func (r *Router) Net() int {
	return r.net
}

// NetName returns the name of the captured net, for status display.
func (r *Router) NetName() string {
	return r.netName
}

// CycleMode advances the routing mode: ortho-h, ortho-v, diagonal, and back.
func (r *Router) CycleMode() {
	r.mode = (r.mode + 1) % 3
	if r.state == RouterRouting {
		r.preview = r.path(r.last, r.lastCursor())
	}
}

// Click feeds a world-space click into the router.
//
// Idle: a click on a pad or via starts a route on its net and layer. Clicks
// on empty space are ignored.
//
// Routing: a click on a pad or via of the same net completes the route; a
// different net is ignored; empty space commits the previewed segments into
// the session and advances the waypoint.
func (r *Router) Click(p board.Point) {
	switch r.state {
	case RouterIdle:
		r.clickIdle(p)
	case RouterRouting:
		r.clickRouting(p)
	}
}

func (r *Router) clickIdle(p board.Point) {
	net, pos, layer, ok := r.hitConductor(p)
	if !ok {
		return
	}
	r.state = RouterRouting
	r.net = net
	r.netName, _ = r.session.Doc.NetName(net)
	r.layer = layer
	r.last = pos
	r.segments = nil
	r.vias = nil
	r.preview = nil
}

func (r *Router) clickRouting(p board.Point) {
	if net, pos, _, ok := r.hitConductor(p); ok {
		if net != r.net {
			return // foreign net, stay routing
		}
		r.complete(pos)
		return
	}

	target := board.SnapPoint(p, r.session.Config.RoutingGrid)
	r.segments = append(r.segments, r.path(r.last, target)...)
	r.last = target
	r.preview = nil
}

// Move updates the rubber-band preview from the last waypoint to the cursor.
func (r *Router) Move(p board.Point) {
	if r.state != RouterRouting {
		return
	}
	target := board.SnapPoint(p, r.session.Config.RoutingGrid)
	r.preview = r.path(r.last, target)
}

// Preview returns a copy of the in-progress rubber-band segments for an
// external renderer.
func (r *Router) Preview() []Segment {
	out := make([]Segment, len(r.preview))
	copy(out, r.preview)
	return out
}

// Pending returns copies of the committed-in-session segments for rendering.
func (r *Router) Pending() []Segment {
	out := make([]Segment, len(r.segments))
	copy(out, r.segments)
	return out
}

// InsertVia drops a via at the last waypoint and toggles the active copper
// layer. The router stays in the routing state.
func (r *Router) InsertVia() {
	if r.state != RouterRouting {
		return
	}
	r.vias = append(r.vias, pendingVia{Position: r.last})
	r.layer = board.ToggleCopper(r.layer)
	r.preview = nil
}

// Cancel discards the session state without committing anything.
func (r *Router) Cancel() {
	r.state = RouterIdle
	r.segments = nil
	r.vias = nil
	r.preview = nil
	r.net = 0
	r.netName = ""
	r.layer = ""
}

// complete appends the final run to the destination and commits the whole
// route - every segment and via accumulated in the session - in one commit.
func (r *Router) complete(dest board.Point) {
	segments := append(r.segments, r.path(r.last, dest)...)
	vias := r.vias
	cfg := r.session.Config
	net := r.net

	r.session.commit(func(doc *board.Document) {
		for _, seg := range segments {
			doc.Root.Append(sexp.NewList("segment",
				sexp.NewList("start", sexp.Number(seg.Start.X), sexp.Number(seg.Start.Y)),
				sexp.NewList("end", sexp.Number(seg.End.X), sexp.Number(seg.End.Y)),
				sexp.NewList("width", sexp.Number(cfg.TraceWidth)),
				sexp.NewList("layer", sexp.String(seg.Layer)),
				sexp.NewList("net", sexp.Int(net)),
				sexp.NewList("uuid", sexp.String(uuid.NewString())),
			))
		}
		for _, via := range vias {
			doc.Root.Append(sexp.NewList("via",
				sexp.NewList("at", sexp.Number(via.Position.X), sexp.Number(via.Position.Y)),
				sexp.NewList("size", sexp.Number(cfg.ViaSize)),
				sexp.NewList("drill", sexp.Number(cfg.ViaDrill)),
				sexp.NewList("layers", sexp.String(board.LayerTopCopper), sexp.String(board.LayerBottomCopper)),
				sexp.NewList("net", sexp.Int(net)),
				sexp.NewList("uuid", sexp.String(uuid.NewString())),
			))
		}
	})

	r.Cancel()
}

// hitConductor finds a pad or via under the point and reports its net,
// position and copper layer.
func (r *Router) hitConductor(p board.Point) (net int, pos board.Point, layer string, ok bool) {
	tol := r.session.Config.HitTolerance
	if pad, found := r.session.Doc.NearestPad(p, tol); found {
		return pad.Net, pad.Position, pad.Layer, true
	}
	if via, found := r.session.Doc.NearestVia(p, tol); found {
		return via.Net, via.Position, board.LayerTopCopper, true
	}
	return 0, board.Point{}, "", false
}

// path computes the segments from one point to another under the active
// mode. Axis-aligned deltas always produce a single straight segment.
func (r *Router) path(from, to board.Point) []Segment {
	if from == to {
		return nil
	}

	dx := to.X - from.X
	dy := to.Y - from.Y

	if dx == 0 || dy == 0 {
		return []Segment{{Start: from, End: to, Layer: r.layer}}
	}

	var mid board.Point
	switch r.mode {
	case ModeOrthoH:
		mid = board.Point{X: to.X, Y: from.Y}
	case ModeOrthoV:
		mid = board.Point{X: from.X, Y: to.Y}
	case ModeDiagonal:
		run := math.Min(math.Abs(dx), math.Abs(dy))
		mid = board.Point{
			X: from.X + math.Copysign(run, dx),
			Y: from.Y + math.Copysign(run, dy),
		}
	}

	if mid == to {
		return []Segment{{Start: from, End: to, Layer: r.layer}}
	}
	return []Segment{
		{Start: from, End: mid, Layer: r.layer},
		{Start: mid, End: to, Layer: r.layer},
	}
}

// lastCursor recovers the preview target so a mode cycle can recompute the
// rubber band without a pointer move.
func (r *Router) lastCursor() board.Point {
	if len(r.preview) == 0 {
		return r.last
	}
	return r.preview[len(r.preview)-1].End
}
