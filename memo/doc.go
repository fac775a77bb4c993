// SPDX-License-Identifier: MIT

// Package memo is the memoization table of the search engine: a mapping
// from a search state to the best pressure release computable from it.
//
// Key is a comparable struct and is used directly as a map key. There is no
// eviction; a cache lives for exactly one top-level computation.
//
// Two implementations share the Cache interface:
//
//   - Map: a plain map, for single-goroutine searches.
//   - Sharded: a power-of-two number of maps, each behind its own RWMutex,
//     with the shard picked by hash/maphash. Lock granularity is per shard.
package memo
