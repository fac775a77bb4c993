// SPDX-License-Identifier: MIT

// Package core defines the valve network: the Valve record and the Network
// that ties valves together with undirected, unit-cost tunnels.
//
// A Network is built once (usually by package parse) and is read-only for
// every algorithm that consumes it: matrix.FromNetwork, bfs.BFS and the
// search engine.
//
// Identity
//
//   - Every valve gets a small integer Index, assigned in insertion order
//     starting at 0. Indices are stable for the lifetime of the Network and
//     are the only identity the algorithms use.
//   - Labels ("AA", "BB", …) are unique display names resolved through Lookup.
//
// Tunnels
//
//   - Connect(a, b) records the tunnel in both directions.
//   - Repeating a tunnel is a no-op; self-tunnels are rejected.
//   - Neighbors(i) returns indices in ascending order, so every traversal
//     built on top of it is deterministic.
//
// Concurrency
//
//	A single sync.RWMutex guards valves, labels and adjacency. All getters
//	return copies, so callers may hold the results without further locking.
//
// Errors:
//
//	ErrEmptyLabel      - valve label is the empty string.
//	ErrDuplicateValve  - label already present in the network.
//	ErrNegativeFlow    - flow rate below zero.
//	ErrValveNotFound   - index or label does not name a valve.
//	ErrLoopNotAllowed  - tunnel from a valve to itself.
package core
