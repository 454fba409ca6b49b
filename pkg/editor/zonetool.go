package editor

import (
	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/board"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

// ToolState is the two-state machine shared by the polygon-drawing tools.
type ToolState int

const (
	ToolIdle ToolState = iota
	ToolDrawing
)

// ZoneTool draws filled copper zones. A click in the idle state starts a
// polygon on the active layer and net; further clicks append snapped
// vertices; Close commits the zone once at least three vertices exist.
// Nothing touches the document until that commit, so cancelling leaves the
// document byte-identical.
type ZoneTool struct {
	session *Session
	state   ToolState

	activeLayer string
	activeNet   string // net name chosen by the caller, "" for the default

	netName  string
	layer    string
	vertices []board.Point
}

// NewZoneTool creates a zone tool bound to a session, drawing on the top
// copper layer until told otherwise.
func NewZoneTool(session *Session) *ZoneTool {
	return &ZoneTool{session: session, activeLayer: board.LayerTopCopper}
}

// State returns the tool's interactive state.
func (z *ZoneTool) State() ToolState {
	return z.state
}

// UseLayer sets the copper layer for subsequently started zones.
func (z *ZoneTool) UseLayer(layer string) {
	z.activeLayer = layer
}

// UseNet sets the net name for subsequently started zones. Without it the
// zone defaults to the document's GND net, then the first named net, then
// the unconnected net 0.
func (z *ZoneTool) UseNet(name string) {
	z.activeNet = name
}

// Click starts a polygon in the idle state and appends a vertex while
// drawing. Click points snap to the placement grid.
func (z *ZoneTool) Click(p board.Point) {
	snapped := board.SnapPoint(p, z.session.Config.PlacementGrid)

	if z.state == ToolIdle {
		z.state = ToolDrawing
		z.netName = z.resolveNetName()
		z.layer = z.activeLayer
		z.vertices = []board.Point{snapped}
		return
	}

	z.vertices = append(z.vertices, snapped)
}

// Close commits the zone. With fewer than three vertices it is a no-op and
// the tool stays in the drawing state; otherwise the recorded boundary
// becomes a Zone and the tool returns to idle.
func (z *ZoneTool) Close() bool {
	if z.state != ToolDrawing || len(z.vertices) < 3 {
		return false
	}

	cfg := z.session.Config
	netName := z.netName
	layer := z.layer
	vertices := z.vertices
	priority := z.session.nextZonePriority()

	z.session.commit(func(doc *board.Document) {
		net := 0
		if netName != "" {
			net = doc.EnsureNet(netName)
		}

		pts := sexp.NewList("pts")
		for _, v := range vertices {
			pts.Append(sexp.NewList("xy", sexp.Number(v.X), sexp.Number(v.Y)))
		}

		doc.Root.Append(sexp.NewList("zone",
			sexp.NewList("net", sexp.Int(net)),
			sexp.NewList("net_name", sexp.String(netName)),
			sexp.NewList("layer", sexp.String(layer)),
			sexp.NewList("uuid", sexp.String(uuid.NewString())),
			sexp.NewList("priority", sexp.Int(priority)),
			sexp.NewList("hatch", sexp.Symbol("edge"), sexp.Number(0.5)),
			sexp.NewList("connect_pads",
				sexp.NewList("clearance", sexp.Number(cfg.ZoneClearance))),
			sexp.NewList("min_thickness", sexp.Number(cfg.ZoneMinThickness)),
			sexp.NewList("fill", sexp.Symbol("yes"),
				sexp.NewList("thermal_gap", sexp.Number(cfg.ZoneThermalGap)),
				sexp.NewList("thermal_bridge_width", sexp.Number(cfg.ZoneThermalBridge))),
			sexp.NewList("polygon", pts),
		))
	})

	z.reset()
	return true
}

// Cancel discards the in-progress polygon.
func (z *ZoneTool) Cancel() {
	z.reset()
}

// Vertices returns a copy of the in-progress boundary for rendering.
func (z *ZoneTool) Vertices() []board.Point {
	out := make([]board.Point, len(z.vertices))
	copy(out, z.vertices)
	return out
}

func (z *ZoneTool) reset() {
	z.state = ToolIdle
	z.vertices = nil
	z.netName = ""
	z.layer = ""
}

// resolveNetName picks the zone's net name: the caller-chosen name if set,
// else GND if the document declares it, else the first named net, else ""
// (the unconnected net).
func (z *ZoneTool) resolveNetName() string {
	if z.activeNet != "" {
		return z.activeNet
	}
	if _, ok := z.session.Doc.NetNumber("GND"); ok {
		return "GND"
	}
	for _, net := range z.session.Doc.Nets() {
		if name := net.ArgText(1); name != "" {
			return name
		}
	}
	return ""
}
