package editor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTracePCB/pkg/board"
	"github.com/OpenTraceLab/OpenTracePCB/pkg/sexp"
)

// testBoard has R1 at (10,10) and R2 at (20,10), each with a 2x2 mm
// courtyard. Pads 1 share GND, pads 2 share SIG.
const testBoard = `(kicad_pcb (version 20211014) (generator opentracepcb)
	(net 0 "")
	(net 1 "GND")
	(net 2 "SIG")
	(footprint "R_0603"
		(layer "F.Cu")
		(at 10 10)
		(property "Reference" "R1")
		(property "Value" "10k")
		(fp_rect (start -1 -1) (end 1 1) (layer "F.CrtYd"))
		(fp_line (start -1 -0.5) (end 1 -0.5) (layer "F.SilkS"))
		(pad "1" smd rect (at -0.8 0) (size 0.8 0.9) (layers "F.Cu" "F.Mask") (net 1 "GND"))
		(pad "2" smd rect (at 0.8 0) (size 0.8 0.9) (layers "F.Cu" "F.Mask") (net 2 "SIG")))
	(footprint "R_0603"
		(layer "F.Cu")
		(at 20 10)
		(property "Reference" "R2")
		(property "Value" "1k")
		(fp_rect (start -1 -1) (end 1 1) (layer "F.CrtYd"))
		(pad "1" smd rect (at -0.8 0) (size 0.8 0.9) (layers "F.Cu" "F.Mask") (net 1 "GND"))
		(pad "2" smd rect (at 0.8 0) (size 0.8 0.9) (layers "F.Cu" "F.Mask") (net 2 "SIG"))))`

func newTestSession(t *testing.T) *Session {
	t.Helper()
	root, err := sexp.ParseString(testBoard)
	require.NoError(t, err)
	return NewSession(board.New(root), DefaultConfig())
}

// snapshot renders the live document so tests can assert byte-identity.
func snapshot(s *Session) string {
	return sexp.Format(s.Doc.Root)
}

func footprintAt(t *testing.T, s *Session, ref string) sexp.At {
	t.Helper()
	fp, found := s.Doc.Footprint(ref)
	require.True(t, found, "footprint %s", ref)
	at, ok := sexp.GetAt(fp)
	require.True(t, ok, "footprint %s position", ref)
	return at
}
