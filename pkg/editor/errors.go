// Package editor implements the interactive editing layer over a board
// document: structural footprint operations, the trace router, the zone and
// board-outline drawing tools, and snapshot-based undo/redo. All operations
// are synchronous and run to completion; a Session owns its Document
// exclusively and performs no locking.
package editor

import "errors"

// ErrNotFound is returned when an operation names a reference designator the
// document does not contain. The document is left unchanged.
var ErrNotFound = errors.New("reference not found")

// ErrCollision is returned when a placement would overlap another
// footprint's courtyard. It is an explicit, distinguishable rejection, not a
// failure: the document is left unchanged and the caller may retry elsewhere.
var ErrCollision = errors.New("placement overlaps courtyard")
