// SPDX-License-Identifier: MIT

package memo

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math/bits"
	"sync"
	"sync/atomic"
)

// DefaultShards is the shard count used when callers have no better value.
const DefaultShards = 64

type shard struct {
	mu      sync.RWMutex
	entries map[Key]int
}

// Sharded is a Cache safe for concurrent Get/Put. Entries are spread over
// shards to reduce lock contention; each shard has its own RWMutex.
type Sharded struct {
	shards []shard
	mask   uint64
	seed   maphash.Seed

	hits   atomic.Int64
	misses atomic.Int64
}

// NewSharded creates a Sharded cache with the given number of shards,
// which must be a positive power of two.
func NewSharded(shards int) (*Sharded, error) {
	if shards <= 0 || bits.OnesCount(uint(shards)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadShardCount, shards)
	}

	s := &Sharded{
		shards: make([]shard, shards),
		mask:   uint64(shards - 1),
		seed:   maphash.MakeSeed(),
	}
	for i := range s.shards {
		s.shards[i].entries = make(map[Key]int)
	}

	return s, nil
}

// shardFor picks the shard for key using maphash over its three fields.
func (s *Sharded) shardFor(key Key) *shard {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(key.Valve))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(key.Minutes))
	binary.LittleEndian.PutUint64(buf[16:24], key.Opened)

	h := maphash.Bytes(s.seed, buf[:])

	return &s.shards[h&s.mask]
}

// Get returns the cached result for key.
func (s *Sharded) Get(key Key) (int, bool) {
	sh := s.shardFor(key)
	sh.mu.RLock()
	v, ok := sh.entries[key]
	sh.mu.RUnlock()

	if ok {
		s.hits.Add(1)
	} else {
		s.misses.Add(1)
	}

	return v, ok
}

// Put stores value for key.
func (s *Sharded) Put(key Key, value int) {
	sh := s.shardFor(key)
	sh.mu.Lock()
	sh.entries[key] = value
	sh.mu.Unlock()
}

// Len returns the number of stored states across all shards.
func (s *Sharded) Len() int {
	total := 0
	for i := range s.shards {
		s.shards[i].mu.RLock()
		total += len(s.shards[i].entries)
		s.shards[i].mu.RUnlock()
	}

	return total
}

// Stats returns aggregated counters.
func (s *Sharded) Stats() Stats {
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load(), Entries: s.Len()}
}
