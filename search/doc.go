// SPDX-License-Identifier: MIT

// Package search finds the maximum pressure a valve network can release
// within a time budget.
//
// What
//
//	BestFlow(valve, minutes, opened) is the best total release obtainable
//	from a state, memoized over (valve, minutes, opened). At each state two
//	strategies compete:
//
//	  - skip-and-move: leave the current valve shut and jump to any other
//	    flow valve v with Hops(cur, v)+1 < minutes;
//	  - open-then-move: spend one minute opening the current valve (if it
//	    has flow and is still shut), bank (minutes-1)·flow, then jump on.
//
//	Only valves with positive flow are ever jump targets. Travel between
//	them is paid in one lump from the precomputed hop matrix.
//
// Opened set
//
//	Flow valves are remapped to dense bit positions 0..K-1 when the Engine is
//	built, so the 64-bit OpenedSet bounds the number of flow valves, not the
//	number of valves. More than 64 flow valves is rejected with
//	ErrTooManyValves.
//
// Concurrency
//
//	With WithWorkers(n > 1), Solve fans the root expansion out over a bounded
//	conc result pool. Branches share a memo.Sharded cache; the answer is
//	identical to a single-worker run. Cancellation is observed between
//	branches; a cancelled Solve returns the context error and no result.
//
// Complexity
//
//	States are bounded by V·T·2^K (V valves reached, T minutes, K flow
//	valves); each state scans K candidates.
package search
