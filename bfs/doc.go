// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Network, returning
// hop distances, parent links and visit order from a start valve.
//
// What
//
//   - Explore valves in non-decreasing hop distance from a start index.
//   - Result holds Order (visit sequence), Depth (index → hops) and
//     Parent (index → predecessor in the BFS tree).
//   - OnVisit may abort the walk by returning an error.
//   - MaxDepth limits exploration (0 means no limit).
//
// Why
//
//	Single-source hop counts answer "which flow valves can ever be reached
//	in time" without building the full distance matrix, and give an
//	independent check of every matrix row.
//
// Determinism
//
//	core.Network.Neighbors returns ascending indices, and neighbours are
//	enqueued in that order, so Order is reproducible.
//
// Complexity (V = valves, E = tunnels)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the network pointer is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      for invalid options (negative MaxDepth).
//   - context errors from WithContext, and wrapped OnVisit errors.
package bfs
