// Package valvenet finds the most pressure a crew can release from a network
// of valves and tunnels within a fixed number of minutes.
//
// What:
//
//	Every valve has a flow rate; opening it takes one minute and walking a
//	tunnel takes one minute. Once open a valve releases its flow rate every
//	remaining minute. valvenet picks the order of valves to open.
//
// How:
//
//	core/    the valve network (valves, labels, undirected tunnels)
//	matrix/  all-pairs hop distances via Floyd–Warshall, plus invariant checks
//	bfs/     single-source hop walks (reachability, stranded valves)
//	memo/    memo tables keyed by (valve, minutes, opened set)
//	search/  the memoized search, parallel root fan-out and plan replay
//	parse/   the text input format, optionally gzip/zstd/lz4 compressed
//	config/  defaults, config file, VALVENET_* env and flags
//
// Quick start:
//
//	go run ./cmd/valvenet --plan input.txt
//
// Complexity: O(N³) for the distances; the search visits at most
// N·T·2^K states for N valves, T minutes and K flow-producing valves, and in
// practice far fewer because only reachable openings are expanded.
package valvenet
