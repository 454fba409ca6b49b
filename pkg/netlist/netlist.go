// Package netlist derives electrical nets from schematic connectivity.
// Connectivity arrives as pin-pair connections plus an optional map of
// user-assigned net labels; nets are the connected components of that graph.
package netlist

import (
	"fmt"
	"sort"
)

// Connection is a direct electrical connection between two pins.
// Pins are referenced as "<reference>:<pad>" strings, e.g. "R1:1".
type Connection struct {
	A string
	B string
}

// Net is a set of pins that share the same electrical potential.
type Net struct {
	ID   int
	Name string
	Pins []string
}

// Netlist holds the extracted nets using a union-find structure for
// connection tracking.
type Netlist struct {
	// Union-find data structures
	parent map[string]string // Maps pin to parent pin
	rank   map[string]int    // Rank for union-by-rank optimization

	// Extracted nets in order of first appearance
	Nets []*Net

	// All pins in first-appearance order
	order  []string
	index  map[string]int  // pin -> appearance index
	pinNet map[string]*Net // pin -> extracted net
}

// Extract builds a netlist from pin-pair connections and an optional map of
// pin references to user-assigned net labels. Pins sharing a label are merged
// even without a direct connection. Isolated pins (no edges, no shared label)
// never produce a net; empty input yields an empty netlist.
func Extract(connections []Connection, labels map[string]string) *Netlist {
	nl := &Netlist{
		parent: make(map[string]string),
		rank:   make(map[string]int),
		index:  make(map[string]int),
		pinNet: make(map[string]*Net),
	}

	// Register pins in input order: connections first (A before B), then
	// labelled pins in sorted order for determinism.
	for _, conn := range connections {
		nl.addPin(conn.A)
		nl.addPin(conn.B)
	}
	labelled := make([]string, 0, len(labels))
	for pin := range labels {
		labelled = append(labelled, pin)
	}
	sort.Strings(labelled)
	for _, pin := range labelled {
		nl.addPin(pin)
	}

	// Union directly-connected pairs
	for _, conn := range connections {
		nl.union(conn.A, conn.B)
	}

	// Union pins sharing the same label string
	firstByLabel := make(map[string]string)
	for _, pin := range labelled {
		label := labels[pin]
		if first, ok := firstByLabel[label]; ok {
			nl.union(first, pin)
		} else {
			firstByLabel[label] = pin
		}
	}

	nl.finalize(labels)
	return nl
}

// addPin registers a pin in the union-find structure as its own root.
func (nl *Netlist) addPin(pin string) {
	if _, ok := nl.parent[pin]; ok {
		return
	}
	nl.parent[pin] = pin
	nl.rank[pin] = 0
	nl.index[pin] = len(nl.order)
	nl.order = append(nl.order, pin)
}

// find returns the representative pin for the net containing the given pin,
// with path compression.
func (nl *Netlist) find(pin string) string {
	root := pin
	for nl.parent[root] != root {
		root = nl.parent[root]
	}

	current := pin
	for current != root {
		next := nl.parent[current]
		nl.parent[current] = root
		current = next
	}

	return root
}

// union merges the nets containing the two pins, by rank.
func (nl *Netlist) union(a, b string) {
	rootA := nl.find(a)
	rootB := nl.find(b)

	if rootA == rootB {
		return // Already in the same net
	}

	if nl.rank[rootA] < nl.rank[rootB] {
		nl.parent[rootA] = rootB
	} else if nl.rank[rootA] > nl.rank[rootB] {
		nl.parent[rootB] = rootA
	} else {
		nl.parent[rootB] = rootA
		nl.rank[rootA]++
	}
}

// finalize groups pins by root and builds the ordered net list. Single-pin
// groups are skipped: they are not nets, just unconnected pins.
func (nl *Netlist) finalize(labels map[string]string) {
	members := make(map[string][]string)
	for _, pin := range nl.order {
		root := nl.find(pin)
		members[root] = append(members[root], pin)
	}

	// Order nets by the appearance index of their earliest member
	roots := make([]string, 0, len(members))
	for root, pins := range members {
		if len(pins) < 2 {
			continue
		}
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		return nl.index[members[roots[i]][0]] < nl.index[members[roots[j]][0]]
	})

	anonymous := 0
	for i, root := range roots {
		pins := members[root]

		// The first member (in input order) carrying a label names the net
		name := ""
		for _, pin := range pins {
			if label, ok := labels[pin]; ok && label != "" {
				name = label
				break
			}
		}
		if name == "" {
			anonymous++
			name = fmt.Sprintf("Net-%d", anonymous)
		}

		sorted := make([]string, len(pins))
		copy(sorted, pins)
		sort.Strings(sorted)

		net := &Net{ID: i + 1, Name: name, Pins: sorted}
		nl.Nets = append(nl.Nets, net)
		for _, pin := range pins {
			nl.pinNet[pin] = net
		}
	}
}

// NetOf returns the net containing the given pin, if any.
func (nl *Netlist) NetOf(pin string) (*Net, bool) {
	net, ok := nl.pinNet[pin]
	return net, ok
}

// NetByName returns the first net with the given name, if any.
func (nl *Netlist) NetByName(name string) (*Net, bool) {
	for _, net := range nl.Nets {
		if net.Name == name {
			return net, true
		}
	}
	return nil, false
}

// NetCount returns the number of extracted nets.
func (nl *Netlist) NetCount() int {
	return len(nl.Nets)
}
