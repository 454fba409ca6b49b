package netlist

import (
	"testing"
)

func TestExtractEmpty(t *testing.T) {
	nl := Extract(nil, nil)

	if nl.NetCount() != 0 {
		t.Errorf("expected empty netlist, got %d nets", nl.NetCount())
	}
}

func TestExtractTransitiveChain(t *testing.T) {
	conns := []Connection{
		{A: "a:1", B: "b:1"},
		{A: "b:1", B: "c:1"},
	}

	nl := Extract(conns, nil)

	if nl.NetCount() != 1 {
		t.Fatalf("expected exactly one net, got %d", nl.NetCount())
	}

	net := nl.Nets[0]
	want := []string{"a:1", "b:1", "c:1"}
	if len(net.Pins) != len(want) {
		t.Fatalf("net pins = %v, want %v", net.Pins, want)
	}
	for i, pin := range want {
		if net.Pins[i] != pin {
			t.Errorf("pin %d = %q, want %q", i, net.Pins[i], pin)
		}
	}
}

func TestExtractDisjointPairs(t *testing.T) {
	conns := []Connection{
		{A: "R1:1", B: "R2:1"},
		{A: "C1:1", B: "C2:1"},
	}

	nl := Extract(conns, nil)

	if nl.NetCount() != 2 {
		t.Fatalf("expected two distinct nets, got %d", nl.NetCount())
	}

	netA, okA := nl.NetOf("R1:1")
	netB, okB := nl.NetOf("C1:1")
	if !okA || !okB {
		t.Fatal("both pins should belong to a net")
	}
	if netA == netB {
		t.Error("disjoint pairs should not share a net")
	}
}

func TestExtractLabelMerge(t *testing.T) {
	// Zero direct connections: the shared label alone merges the pins
	labels := map[string]string{
		"U1:4": "GND",
		"C3:2": "GND",
	}

	nl := Extract(nil, labels)

	if nl.NetCount() != 1 {
		t.Fatalf("expected one net from shared label, got %d", nl.NetCount())
	}
	if nl.Nets[0].Name != "GND" {
		t.Errorf("net name = %q, want GND", nl.Nets[0].Name)
	}
	if len(nl.Nets[0].Pins) != 2 {
		t.Errorf("net pins = %v, want both labelled pins", nl.Nets[0].Pins)
	}
}

func TestExtractLabelNamesConnectedNet(t *testing.T) {
	conns := []Connection{
		{A: "U1:1", B: "R1:2"},
	}
	labels := map[string]string{
		"R1:2": "VCC",
	}

	nl := Extract(conns, labels)

	if nl.NetCount() != 1 {
		t.Fatalf("expected one net, got %d", nl.NetCount())
	}
	if nl.Nets[0].Name != "VCC" {
		t.Errorf("net name = %q, want VCC", nl.Nets[0].Name)
	}
}

func TestExtractFirstLabelWins(t *testing.T) {
	// Two labelled pins end up in the same net; the label of the member that
	// appeared first in input order names it.
	conns := []Connection{
		{A: "A:1", B: "B:1"},
		{A: "B:1", B: "C:1"},
	}
	labels := map[string]string{
		"C:1": "LATE",
		"A:1": "EARLY",
	}

	nl := Extract(conns, labels)

	if nl.NetCount() != 1 {
		t.Fatalf("expected one net, got %d", nl.NetCount())
	}
	if nl.Nets[0].Name != "EARLY" {
		t.Errorf("net name = %q, want EARLY", nl.Nets[0].Name)
	}
}

func TestExtractAnonymousNaming(t *testing.T) {
	conns := []Connection{
		{A: "R1:1", B: "R2:1"},
		{A: "C1:1", B: "C2:1"},
	}

	nl := Extract(conns, nil)

	if got := nl.Nets[0].Name; got != "Net-1" {
		t.Errorf("first net name = %q, want Net-1", got)
	}
	if got := nl.Nets[1].Name; got != "Net-2" {
		t.Errorf("second net name = %q, want Net-2", got)
	}
}

func TestExtractSkipsIsolatedPins(t *testing.T) {
	// A self-connection and a uniquely-labelled pin both collapse to
	// single-pin groups, which are not nets.
	conns := []Connection{
		{A: "X:1", B: "X:1"},
		{A: "R1:1", B: "R1:2"},
	}
	labels := map[string]string{
		"LONELY:1": "SENSE",
	}

	nl := Extract(conns, labels)

	if nl.NetCount() != 1 {
		t.Fatalf("expected one net, got %d", nl.NetCount())
	}
	if _, ok := nl.NetOf("X:1"); ok {
		t.Error("self-connected pin should not appear in any net")
	}
	if _, ok := nl.NetOf("LONELY:1"); ok {
		t.Error("uniquely-labelled isolated pin should not appear in any net")
	}
}

func TestNetOfLookup(t *testing.T) {
	conns := []Connection{{A: "R1:1", B: "R2:1"}}

	nl := Extract(conns, nil)

	net, ok := nl.NetOf("R2:1")
	if !ok {
		t.Fatal("expected R2:1 to resolve to a net")
	}
	if net.ID != 1 {
		t.Errorf("net ID = %d, want 1", net.ID)
	}

	if _, ok := nl.NetOf("nope:1"); ok {
		t.Error("unknown pin should not resolve")
	}
}
