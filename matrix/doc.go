// SPDX-License-Identifier: MIT

// Package matrix computes and validates all-pairs hop distances for a valve
// network.
//
// What
//
//   - Distance is a square, row-major table of int hop counts, stored in a
//     flat slice for cache friendliness.
//   - FromAdjacency seeds self-distance 0 and direct tunnels 1 (mirrored,
//     since tunnels are undirected) and runs FloydWarshall in place.
//   - Pairs with no connecting path keep the Unreachable sentinel.
//
// Why
//
//	The search engine never walks tunnels step by step. It jumps straight
//	from one flow valve to the next, paying Hops(i, j) minutes, so the whole
//	table is built once up front and only read afterwards.
//
// Invariants (checked by Validate):
//
//   - Hops(i, i) == 0
//   - Hops(i, j) == Hops(j, i)
//   - Hops(i, k) <= Hops(i, j) + Hops(j, k)
//
// Complexity
//
//   - FloydWarshall: Time O(n³), extra space O(1).
//   - Validate:      Time O(n³) (triangle check dominates).
//
// Errors
//
//   - ErrBadShape, ErrOutOfRange, ErrNilMatrix, ErrUnknownNeighbor for
//     construction and access.
//   - ErrNonZeroDiagonal, ErrAsymmetry, ErrTriangle for invariant violations.
package matrix
