// Package sexp implements the tagged-tree document model for KiCad-style
// board files. A tree is built from Nodes: an atom (symbol, quoted string or
// number kept as verbatim text) or a list whose first element is
// conventionally a tag symbol. The editing core navigates and mutates this
// tree through the helpers in this package; tags it does not recognize pass
// through untouched, which preserves round-trip fidelity for vendor fields.
package sexp

import (
	"math"
	"strconv"
)

// Kind discriminates atom nodes from list nodes.
type Kind int

const (
	KindAtom Kind = iota
	KindList
)

// Node is a single element of the document tree.
// Atom text is stored exactly as it appeared in the source so that numbers
// like "0.50" or "1e-3" survive a parse/write cycle unchanged.
type Node struct {
	Kind     Kind
	Value    string  // atom text (valid when Kind == KindAtom)
	Quoted   bool    // atom was written as a quoted string
	Children []*Node // list elements; Children[0] is conventionally the tag
}

// Symbol creates an unquoted atom.
func Symbol(text string) *Node {
	return &Node{Kind: KindAtom, Value: text}
}

// String creates a quoted-string atom.
func String(text string) *Node {
	return &Node{Kind: KindAtom, Value: text, Quoted: true}
}

// Number creates a numeric atom. Values are rounded to nanometer-scale
// precision (6 decimals) and trailing zeros are trimmed, matching how KiCad
// writes coordinates.
func Number(v float64) *Node {
	return &Node{Kind: KindAtom, Value: FormatNumber(v)}
}

// Int creates an integer atom.
func Int(v int) *Node {
	return &Node{Kind: KindAtom, Value: strconv.Itoa(v)}
}

// NewList creates a list node tagged with the given symbol.
func NewList(tag string, children ...*Node) *Node {
	n := &Node{Kind: KindList, Children: make([]*Node, 0, len(children)+1)}
	n.Children = append(n.Children, Symbol(tag))
	n.Children = append(n.Children, children...)
	return n
}

// FormatNumber renders a float the way coordinates are written in board
// files: fixed notation, at most 6 decimals, no trailing zeros.
func FormatNumber(v float64) string {
	rounded := math.Round(v*1e6) / 1e6
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// IsAtom reports whether the node is a leaf.
func (n *Node) IsAtom() bool {
	return n != nil && n.Kind == KindAtom
}

// IsList reports whether the node is a list.
func (n *Node) IsList() bool {
	return n != nil && n.Kind == KindList
}

// Tag returns the first symbol of a list, or "" for atoms and empty lists.
func (n *Node) Tag() string {
	if !n.IsList() || len(n.Children) == 0 {
		return ""
	}
	first := n.Children[0]
	if !first.IsAtom() {
		return ""
	}
	return first.Value
}

// Text returns the atom text, or "" for lists.
func (n *Node) Text() string {
	if !n.IsAtom() {
		return ""
	}
	return n.Value
}

// Float parses the atom as a float64.
func (n *Node) Float() (float64, bool) {
	if !n.IsAtom() {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.Value, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IntValue parses the atom as an int.
func (n *Node) IntValue() (int, bool) {
	if !n.IsAtom() {
		return 0, false
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Arg returns the i-th element after the tag of a list (Arg(0) is the first
// argument), or nil if out of range.
func (n *Node) Arg(i int) *Node {
	if !n.IsList() {
		return nil
	}
	idx := i + 1
	if idx < 1 || idx >= len(n.Children) {
		return nil
	}
	return n.Children[idx]
}

// ArgText returns the atom text of the i-th argument, or "".
func (n *Node) ArgText(i int) string {
	return n.Arg(i).Text()
}

// ArgFloat parses the i-th argument as a float.
func (n *Node) ArgFloat(i int) (float64, bool) {
	arg := n.Arg(i)
	if arg == nil {
		return 0, false
	}
	return arg.Float()
}

// ArgInt parses the i-th argument as an int.
func (n *Node) ArgInt(i int) (int, bool) {
	arg := n.Arg(i)
	if arg == nil {
		return 0, false
	}
	return arg.IntValue()
}

// Append adds children to the end of a list node.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Clone returns a structurally independent deep copy of the node. Undo
// snapshots rely on clones sharing no mutable state with the live tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Value: n.Value, Quoted: n.Quoted}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}
