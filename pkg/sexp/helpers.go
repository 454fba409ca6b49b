package sexp

// Tree navigation and mutation helpers. These are typed views layered on top
// of the raw tree; they never replace it, so structure the editor does not
// understand survives untouched.

// FindChild returns the first child list of n whose tag matches.
func FindChild(n *Node, tag string) (*Node, bool) {
	if !n.IsList() {
		return nil, false
	}
	for _, child := range n.Children {
		if child.IsList() && child.Tag() == tag {
			return child, true
		}
	}
	return nil, false
}

// FindChildren returns all child lists of n with the given tag, in document
// order.
func FindChildren(n *Node, tag string) []*Node {
	var results []*Node
	if !n.IsList() {
		return results
	}
	for _, child := range n.Children {
		if child.IsList() && child.Tag() == tag {
			results = append(results, child)
		}
	}
	return results
}

// At is a parsed (at X Y [angle]) position.
type At struct {
	X, Y     float64
	Rotation float64 // degrees
}

// GetAt extracts the position from a node's (at ...) child.
func GetAt(n *Node) (At, bool) {
	atNode, found := FindChild(n, "at")
	if !found {
		return At{}, false
	}
	x, okX := atNode.ArgFloat(0)
	y, okY := atNode.ArgFloat(1)
	if !okX || !okY {
		return At{}, false
	}
	at := At{X: x, Y: y}
	if rot, ok := atNode.ArgFloat(2); ok {
		at.Rotation = rot
	}
	return at, true
}

// SetAt updates a node's (at ...) child in place, appending a new one if the
// node has none. When rotation is omitted, an existing rotation argument is
// preserved.
func SetAt(n *Node, x, y float64, rotation ...float64) {
	atNode, found := FindChild(n, "at")
	if !found {
		atNode = NewList("at", Number(x), Number(y))
		if len(rotation) > 0 && rotation[0] != 0 {
			atNode.Append(Number(rotation[0]))
		}
		n.Append(atNode)
		return
	}

	// Rebuild the argument atoms, keeping anything beyond the rotation slot.
	args := []*Node{Number(x), Number(y)}
	switch {
	case len(rotation) > 0:
		args = append(args, Number(rotation[0]))
	case len(atNode.Children) > 3:
		args = append(args, atNode.Children[3])
	}
	if len(atNode.Children) > 4 {
		args = append(args, atNode.Children[4:]...)
	}
	atNode.Children = append(atNode.Children[:1], args...)
}

// GetPairValue reads the value of a (tag value) pair child.
func GetPairValue(n *Node, tag string) (string, bool) {
	pair, found := FindChild(n, tag)
	if !found {
		return "", false
	}
	arg := pair.Arg(0)
	if arg == nil || !arg.IsAtom() {
		return "", false
	}
	return arg.Value, true
}

// GetPairFloat reads a (tag value) pair as a float.
func GetPairFloat(n *Node, tag string) (float64, bool) {
	pair, found := FindChild(n, tag)
	if !found {
		return 0, false
	}
	return pair.ArgFloat(0)
}

// GetPairInt reads a (tag value) pair as an int.
func GetPairInt(n *Node, tag string) (int, bool) {
	pair, found := FindChild(n, tag)
	if !found {
		return 0, false
	}
	return pair.ArgInt(0)
}

// SetPairValue creates or updates a (tag value) pair child with an atom
// value, preserving any extra arguments the pair already carries.
func SetPairValue(n *Node, tag string, value *Node) {
	pair, found := FindChild(n, tag)
	if !found {
		n.Append(NewList(tag, value))
		return
	}
	if len(pair.Children) < 2 {
		pair.Append(value)
		return
	}
	pair.Children[1] = value
}

// SetPairString sets a (tag "value") pair.
func SetPairString(n *Node, tag, value string) {
	SetPairValue(n, tag, String(value))
}

// SetPairFloat sets a (tag value) numeric pair.
func SetPairFloat(n *Node, tag string, value float64) {
	SetPairValue(n, tag, Number(value))
}

// RemoveChildren removes every child list with the given tag for which the
// predicate holds (a nil predicate matches all) and returns how many were
// removed.
func RemoveChildren(n *Node, tag string, pred func(*Node) bool) int {
	if !n.IsList() {
		return 0
	}
	removed := 0
	kept := n.Children[:0]
	for _, child := range n.Children {
		if child.IsList() && child.Tag() == tag && (pred == nil || pred(child)) {
			removed++
			continue
		}
		kept = append(kept, child)
	}
	n.Children = kept
	return removed
}

// HasSymbol reports whether the list contains a bare symbol atom, e.g. the
// "locked" flag on segments.
func HasSymbol(n *Node, symbol string) bool {
	if !n.IsList() {
		return false
	}
	for _, child := range n.Children {
		if child.IsAtom() && !child.Quoted && child.Value == symbol {
			return true
		}
	}
	return false
}

// LayerNames collects the layer name atoms of a (layers ...) child.
func LayerNames(n *Node) []string {
	layersNode, found := FindChild(n, "layers")
	if !found {
		return nil
	}
	var names []string
	for _, item := range layersNode.Children[1:] {
		if item.IsAtom() {
			names = append(names, item.Value)
		}
	}
	return names
}
