package sexp

import (
	"io"
	"strings"
)

// Format renders a tree as s-expression text. Lists that contain sub-lists
// are broken across lines with tab indentation, the way board files are
// conventionally written; purely atomic lists stay on one line.
func Format(n *Node) string {
	var sb strings.Builder
	writeNode(&sb, n, 0)
	sb.WriteString("\n")
	return sb.String()
}

// Write serializes a tree to w.
func Write(w io.Writer, n *Node) error {
	_, err := io.WriteString(w, Format(n))
	return err
}

func writeNode(sb *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}

	if n.IsAtom() {
		sb.WriteString(renderAtom(n))
		return
	}

	sb.WriteString("(")

	multiline := false
	for _, child := range n.Children {
		if child.IsList() {
			multiline = true
			break
		}
	}

	for i, child := range n.Children {
		if child.IsList() && multiline {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat("\t", depth+1))
		} else if i > 0 {
			sb.WriteString(" ")
		}
		writeNode(sb, child, depth+1)
	}

	if multiline {
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("\t", depth))
	}
	sb.WriteString(")")
}

func renderAtom(n *Node) string {
	if !n.Quoted {
		return n.Value
	}

	var sb strings.Builder
	sb.WriteString("\"")
	for _, ch := range n.Value {
		switch ch {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		case '\t':
			sb.WriteString("\\t")
		case '\r':
			sb.WriteString("\\r")
		default:
			sb.WriteRune(ch)
		}
	}
	sb.WriteString("\"")
	return sb.String()
}
