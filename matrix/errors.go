// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it is easy to grep in logs.
// Callers match with errors.Is; context is added with %w at call sites.

package matrix

import "errors"

var (
	// ErrBadShape is returned when the requested order is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Distance was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrUnknownNeighbor indicates an adjacency entry pointing outside [0,n).
	ErrUnknownNeighbor = errors.New("matrix: adjacency references unknown valve")

	// ErrNegativeDistance indicates a Set with a value below zero.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrNonZeroDiagonal signals dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals dist[i][j] != dist[j][i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrTriangle signals dist[i][k] > dist[i][j] + dist[j][k].
	ErrTriangle = errors.New("matrix: triangle inequality violated")
)
