package board

// Layer names follow the KiCad convention: an F./B. prefix for the front and
// back side, then the layer class.
const (
	LayerTopCopper    = "F.Cu"
	LayerBottomCopper = "B.Cu"
	LayerTopCourtyard = "F.CrtYd"
	LayerBotCourtyard = "B.CrtYd"
	LayerEdgeCuts     = "Edge.Cuts"
)

// flipPairs is the fixed pairwise mapping applied when a footprint changes
// sides. Layers outside the mapping keep their name.
var flipPairs = map[string]string{
	"F.Cu":    "B.Cu",
	"B.Cu":    "F.Cu",
	"F.Mask":  "B.Mask",
	"B.Mask":  "F.Mask",
	"F.Paste": "B.Paste",
	"B.Paste": "F.Paste",
	"F.SilkS": "B.SilkS",
	"B.SilkS": "F.SilkS",
	"F.Fab":   "B.Fab",
	"B.Fab":   "F.Fab",
}

// FlipLayer returns the opposite-side layer name, or the input unchanged for
// layers without a front/back pairing.
func FlipLayer(name string) string {
	if flipped, ok := flipPairs[name]; ok {
		return flipped
	}
	return name
}

// ToggleCopper switches between the two copper layers. Any name other than
// the bottom copper layer toggles to bottom, so unknown input degrades to the
// top/bottom pair rather than failing.
func ToggleCopper(name string) string {
	if name == LayerBottomCopper {
		return LayerTopCopper
	}
	return LayerBottomCopper
}

// IsCopper reports whether the layer carries copper on this two-layer stack.
func IsCopper(name string) bool {
	return name == LayerTopCopper || name == LayerBottomCopper
}

// IsCourtyard reports whether the layer is a courtyard keep-out outline.
func IsCourtyard(name string) bool {
	return name == LayerTopCourtyard || name == LayerBotCourtyard
}
