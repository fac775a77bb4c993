// SPDX-License-Identifier: MIT
// Package core: Valve, Network and sentinel errors.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for network construction and lookup.
var (
	// ErrEmptyLabel indicates that a valve label is the empty string.
	ErrEmptyLabel = errors.New("core: valve label is empty")

	// ErrDuplicateValve indicates that a label was added twice.
	ErrDuplicateValve = errors.New("core: duplicate valve label")

	// ErrNegativeFlow indicates a flow rate below zero.
	ErrNegativeFlow = errors.New("core: flow rate must be non-negative")

	// ErrValveNotFound indicates an index or label that names no valve.
	ErrValveNotFound = errors.New("core: valve not found")

	// ErrLoopNotAllowed indicates a tunnel from a valve to itself.
	ErrLoopNotAllowed = errors.New("core: self-tunnel not allowed")
)

// Valve is a single pressure-release valve.
type Valve struct {
	// Index is the dense, zero-based identity used by every algorithm.
	Index int

	// Label is the display name, unique within a Network.
	Label string

	// FlowRate is the pressure released per minute once the valve is open.
	FlowRate int
}

// Network is a set of valves joined by undirected, unit-cost tunnels.
//
// mu guards valves, labels and tunnels. tunnels[i] is kept sorted and
// free of duplicates.
type Network struct {
	mu sync.RWMutex

	valves  []Valve        // Index → Valve
	labels  map[string]int // Label → Index
	tunnels [][]int        // Index → sorted neighbour indices
}

// NewNetwork creates an empty Network.
// Complexity: O(1).
func NewNetwork() *Network {
	return &Network{
		labels: make(map[string]int),
	}
}
