// SPDX-License-Identifier: MIT
// Package core: mutation and query methods of Network.

package core

import (
	"fmt"
	"sort"
)

// AddValve appends a valve and returns its Index.
//
// Errors:
//   - ErrEmptyLabel, ErrNegativeFlow, ErrDuplicateValve.
//
// Complexity: O(1) amortized.
func (n *Network) AddValve(label string, flowRate int) (int, error) {
	if label == "" {
		return 0, ErrEmptyLabel
	}
	if flowRate < 0 {
		return 0, fmt.Errorf("%w: %q has %d", ErrNegativeFlow, label, flowRate)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.labels[label]; ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateValve, label)
	}

	idx := len(n.valves)
	n.valves = append(n.valves, Valve{Index: idx, Label: label, FlowRate: flowRate})
	n.tunnels = append(n.tunnels, nil)
	n.labels[label] = idx

	return idx, nil
}

// Connect records an undirected tunnel between valves a and b.
// Connecting an already connected pair is a no-op.
//
// Errors:
//   - ErrValveNotFound if either index is out of range.
//   - ErrLoopNotAllowed if a == b.
//
// Complexity: O(deg(a) + deg(b)).
func (n *Network) Connect(a, b int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.has(a) {
		return fmt.Errorf("%w: index %d", ErrValveNotFound, a)
	}
	if !n.has(b) {
		return fmt.Errorf("%w: index %d", ErrValveNotFound, b)
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, n.valves[a].Label)
	}

	n.tunnels[a] = insertSorted(n.tunnels[a], b)
	n.tunnels[b] = insertSorted(n.tunnels[b], a)

	return nil
}

// ConnectLabels is Connect addressed by label.
func (n *Network) ConnectLabels(a, b string) error {
	ia, ok := n.Lookup(a)
	if !ok {
		return fmt.Errorf("%w: %q", ErrValveNotFound, a)
	}
	ib, ok := n.Lookup(b)
	if !ok {
		return fmt.Errorf("%w: %q", ErrValveNotFound, b)
	}

	return n.Connect(ia, ib)
}

// Lookup resolves a label to its Index.
// Complexity: O(1).
func (n *Network) Lookup(label string) (int, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	idx, ok := n.labels[label]

	return idx, ok
}

// Len returns the number of valves.
func (n *Network) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.valves)
}

// Valve returns the valve at index i.
func (n *Network) Valve(i int) (Valve, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.has(i) {
		return Valve{}, fmt.Errorf("%w: index %d", ErrValveNotFound, i)
	}

	return n.valves[i], nil
}

// Valves returns a copy of all valves ordered by Index.
// Complexity: O(V).
func (n *Network) Valves() []Valve {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]Valve, len(n.valves))
	copy(out, n.valves)

	return out
}

// Neighbors returns the sorted neighbour indices of valve i.
// Complexity: O(deg(i)).
func (n *Network) Neighbors(i int) ([]int, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if !n.has(i) {
		return nil, fmt.Errorf("%w: index %d", ErrValveNotFound, i)
	}
	out := make([]int, len(n.tunnels[i]))
	copy(out, n.tunnels[i])

	return out, nil
}

// Adjacency returns a deep copy of the tunnel lists, indexed by valve.
// Complexity: O(V + E).
func (n *Network) Adjacency() [][]int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([][]int, len(n.tunnels))
	for i, row := range n.tunnels {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}

	return out
}

// FlowValves returns the indices of valves with a positive flow rate,
// in ascending order.
func (n *Network) FlowValves() []int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	out := make([]int, 0, len(n.valves))
	for _, v := range n.valves {
		if v.FlowRate > 0 {
			out = append(out, v.Index)
		}
	}

	return out
}

// has reports whether i is a valid index. Caller holds mu.
func (n *Network) has(i int) bool {
	return i >= 0 && i < len(n.valves)
}

// insertSorted adds v to the ascending slice s unless already present.
func insertSorted(s []int, v int) []int {
	pos := sort.SearchInts(s, v)
	if pos < len(s) && s[pos] == v {
		return s
	}
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = v

	return s
}
