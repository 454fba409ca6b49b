package editor

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/board"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

// Structural footprint operations: move, rotate, flip, delete. Each one is a
// single commit; rejected operations leave the document untouched and push
// nothing onto the history.

// MoveFootprint places a footprint at the given world position, snapped to
// the placement grid. The move is rejected with ErrCollision when the
// footprint's courtyard at the candidate position would overlap another
// footprint's courtyard; footprints without a courtyard are never rejected.
func (s *Session) MoveFootprint(ref string, x, y float64) error {
	fp, found := s.Doc.Footprint(ref)
	if !found {
		return fmt.Errorf("move %s: %w", ref, ErrNotFound)
	}

	sx := board.Snap(x, s.Config.PlacementGrid)
	sy := board.Snap(y, s.Config.PlacementGrid)

	rotation := 0.0
	if at, ok := sexp.GetAt(fp); ok {
		rotation = at.Rotation
	}
	if box, ok := board.CourtyardAt(fp, sx, sy, rotation); ok {
		if other, hit := s.Doc.FindCollision(ref, box); hit {
			return fmt.Errorf("move %s to (%g, %g) overlaps %s: %w", ref, sx, sy, other, ErrCollision)
		}
	}

	s.commit(func(*board.Document) {
		sexp.SetAt(fp, sx, sy)
	})
	return nil
}

// RotateFootprint adds a delta in degrees to the footprint's rotation,
// normalized onto [0, 360).
func (s *Session) RotateFootprint(ref string, deltaDegrees float64) error {
	fp, found := s.Doc.Footprint(ref)
	if !found {
		return fmt.Errorf("rotate %s: %w", ref, ErrNotFound)
	}

	at, _ := sexp.GetAt(fp)
	rotation := board.NormalizeAngle(at.Rotation + deltaDegrees)

	s.commit(func(*board.Document) {
		sexp.SetAt(fp, at.X, at.Y, rotation)
	})
	return nil
}

// FlipFootprint moves a footprint to the opposite board side: the footprint
// layer, every pad layer and every drawing layer are rewritten through the
// fixed front/back pairing. Position and rotation are untouched.
func (s *Session) FlipFootprint(ref string) error {
	fp, found := s.Doc.Footprint(ref)
	if !found {
		return fmt.Errorf("flip %s: %w", ref, ErrNotFound)
	}

	s.commit(func(*board.Document) {
		flipLayerPair(fp)

		for _, pad := range board.Pads(fp) {
			flipLayerList(pad)
		}
		for _, tag := range []string{"fp_line", "fp_rect", "fp_poly", "fp_circle", "fp_arc", "fp_text"} {
			for _, drawing := range sexp.FindChildren(fp, tag) {
				flipLayerPair(drawing)
			}
		}
	})
	return nil
}

// DeleteFootprint removes the footprint node. Deleting an absent reference
// is a no-op, not an error, and commits nothing.
func (s *Session) DeleteFootprint(ref string) error {
	if _, found := s.Doc.Footprint(ref); !found {
		return nil
	}

	s.commit(func(doc *board.Document) {
		sexp.RemoveChildren(doc.Root, "footprint", func(fp *sexp.Node) bool {
			return board.Reference(fp) == ref
		})
	})
	return nil
}

// flipLayerPair rewrites a node's (layer name) pair through the flip map.
func flipLayerPair(n *sexp.Node) {
	if layer, ok := sexp.GetPairValue(n, "layer"); ok {
		sexp.SetPairString(n, "layer", board.FlipLayer(layer))
	}
}

// flipLayerList rewrites every name in a node's (layers ...) list.
func flipLayerList(n *sexp.Node) {
	layersNode, found := sexp.FindChild(n, "layers")
	if !found {
		return
	}
	for _, item := range layersNode.Children[1:] {
		if item.IsAtom() {
			item.Value = board.FlipLayer(item.Value)
		}
	}
}
