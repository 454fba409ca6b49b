package editor

import (
	"github.com/OpenTraceLab/OpenTracePCB/pkg/board"
)

// History is the snapshot-based undo/redo store. Every committing operation
// pushes a deep clone of the document before mutating it; snapshots share no
// state with the live document or with each other.
type History struct {
	limit int
	undo  []*board.Document
	redo  []*board.Document
}

// NewHistory creates a history bounded to the given number of snapshots.
// Non-positive limits fall back to 50.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 50
	}
	return &History{limit: limit}
}

// Push stores a snapshot of the document on the undo stack and clears the
// redo stack. When the bound is exceeded the oldest snapshot is evicted.
func (h *History) Push(doc *board.Document) {
	h.undo = append(h.undo, doc.Clone())
	if len(h.undo) > h.limit {
		n := copy(h.undo, h.undo[1:])
		h.undo[n] = nil
		h.undo = h.undo[:n]
	}
	h.redo = h.redo[:0]
}

// Undo pops the most recent snapshot, pushing a clone of the current
// document onto the redo stack. It returns false when there is nothing to
// undo.
func (h *History) Undo(current *board.Document) (*board.Document, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	snapshot := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current.Clone())
	return snapshot, true
}

// Redo mirrors Undo. It returns false when there is nothing to redo.
func (h *History) Redo(current *board.Document) (*board.Document, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	snapshot := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current.Clone())
	return snapshot, true
}

// CanUndo reports whether the undo stack is non-empty.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo reports whether the redo stack is non-empty.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Depth returns the current undo stack depth.
func (h *History) Depth() int {
	return len(h.undo)
}
