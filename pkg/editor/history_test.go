package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommitsThenUndosRestoreOriginal(t *testing.T) {
	s := newTestSession(t)
	before := snapshot(s)

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, s.MoveFootprint("R1", float64(30+2*i), 10))
	}
	require.NotEqual(t, before, snapshot(s))

	for i := 0; i < n; i++ {
		require.True(t, s.Undo(), "undo %d", i)
	}
	require.Equal(t, before, snapshot(s))
}

func TestUndosThenRedosRestorePreUndoState(t *testing.T) {
	s := newTestSession(t)

	const n = 4
	for i := 0; i < n; i++ {
		require.NoError(t, s.RotateFootprint("R1", 45))
	}
	preUndo := snapshot(s)

	for i := 0; i < n; i++ {
		require.True(t, s.Undo())
	}
	for i := 0; i < n; i++ {
		require.True(t, s.Redo())
	}
	require.Equal(t, preUndo, snapshot(s))
}

func TestCommitAfterUndoClearsRedo(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.MoveFootprint("R1", 30, 10))
	require.NoError(t, s.MoveFootprint("R1", 40, 10))
	require.True(t, s.Undo())
	require.True(t, s.History.CanRedo())

	// A fresh commit invalidates the redo branch
	require.NoError(t, s.RotateFootprint("R2", 90))
	require.False(t, s.History.CanRedo())
	require.False(t, s.Redo(), "redo should report nothing to redo")
}

func TestHistoryUnderflow(t *testing.T) {
	s := newTestSession(t)

	require.False(t, s.Undo(), "fresh session has nothing to undo")
	require.False(t, s.Redo(), "fresh session has nothing to redo")

	// State is untouched by the underflow signals
	require.Equal(t, 10.0, footprintAt(t, s, "R1").X)
}

func TestHistoryBoundEvictsOldest(t *testing.T) {
	s := newTestSession(t)
	s.History = NewHistory(3)

	for i := 0; i < 6; i++ {
		require.NoError(t, s.MoveFootprint("R1", float64(30+2*i), 10))
	}

	require.Equal(t, 3, s.History.Depth())
	for i := 0; i < 3; i++ {
		require.True(t, s.Undo())
	}
	require.False(t, s.Undo(), "history beyond the bound is gone")

	// The oldest reachable snapshot is the state before the 4th move
	require.Equal(t, 34.0, footprintAt(t, s, "R1").X)
}

func TestSnapshotIndependence(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.MoveFootprint("R1", 30, 10))
	// Mutate the live document after the snapshot was taken
	require.NoError(t, s.RotateFootprint("R1", 90))

	require.True(t, s.Undo())
	require.True(t, s.Undo())

	at := footprintAt(t, s, "R1")
	require.Equal(t, 10.0, at.X)
	require.Equal(t, 0.0, at.Rotation)
}

func TestUndoDepthReporting(t *testing.T) {
	s := newTestSession(t)

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.MoveFootprint("R1", float64(30+2*i), 10))
		require.Equal(t, i, s.History.Depth(), fmt.Sprintf("depth after commit %d", i))
	}
}
