// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) over hop counts with deterministic loop order.
//   - Adjacency → distance seeding for undirected, unit-cost tunnels.
//
// Contract:
//   - Unreachable means "no path"; the diagonal is 0 before relaxation.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/valvenet/core"
)

const opFromAdjacency = "FromAdjacency"

// FromAdjacency builds the all-pairs hop table for an undirected graph given
// as neighbour lists. adj[i] lists the valves directly tunnelled to i; each
// entry is mirrored, so one-sided lists are accepted.
//
// Errors: ErrUnknownNeighbor if an entry is outside [0, len(adj)).
// Complexity: O(n³).
func FromAdjacency(adj [][]int) (*Distance, error) {
	n := len(adj)
	d, err := NewDistance(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFromAdjacency, err)
	}

	// Direct tunnels cost one hop in both directions.
	for i, row := range adj {
		for _, j := range row {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("%s: valve %d lists %d: %w", opFromAdjacency, i, j, ErrUnknownNeighbor)
			}
			if i == j {
				continue
			}
			d.data[i*n+j] = 1
			d.data[j*n+i] = 1
		}
	}

	FloydWarshall(d)

	return d, nil
}

// FromNetwork is FromAdjacency over net.Adjacency().
func FromNetwork(net *core.Network) (*Distance, error) {
	if net == nil {
		return nil, fmt.Errorf("FromNetwork: %w", ErrNilMatrix)
	}

	return FromAdjacency(net.Adjacency())
}

// FloydWarshall relaxes d in place so every entry holds the shortest hop
// count. Unreachable entries are skipped, never summed.
//
// Loop order is fixed (k → i → j). Time O(n³); extra space O(1).
func FloydWarshall(d *Distance) {
	if d == nil {
		return
	}
	n := d.n

	var (
		k, i, j      int // loop indices
		baseK, baseI int // row offsets in the flat buffer
		ik, kj, cand int // d[i,k], d[k,j], d[i,k]+d[k,j]
	)
	data := d.data

	for k = 0; k < n; k++ { // intermediate valve
		baseK = k * n
		for i = 0; i < n; i++ { // source
			ik = data[i*n+k]
			if ik == Unreachable {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // destination
				kj = data[baseK+j]
				if kj == Unreachable {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}
