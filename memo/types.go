// SPDX-License-Identifier: MIT

package memo

import (
	"errors"
	"fmt"
)

// ErrBadShardCount is returned when a shard count is not a positive power of two.
var ErrBadShardCount = errors.New("memo: shard count must be a positive power of two")

// Key identifies a search state. Two keys are equal iff all fields are equal.
type Key struct {
	// Valve is the index of the valve the search currently stands at.
	Valve int

	// Minutes is the time left in the budget.
	Minutes int

	// Opened is the bitmask of valves already opened on this path.
	Opened uint64
}

// String implements fmt.Stringer for log fields and test failures.
func (k Key) String() string {
	return fmt.Sprintf("{valve:%d minutes:%d opened:%#x}", k.Valve, k.Minutes, k.Opened)
}

// Stats is a point-in-time snapshot of cache activity.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// Cache stores previously computed results keyed by search state.
type Cache interface {
	// Get returns the cached result. ok=false if the state was never stored.
	Get(key Key) (value int, ok bool)

	// Put stores value for key. Storing a key twice keeps the last value;
	// for a pure search both values are identical.
	Put(key Key, value int)

	// Len returns the number of stored states.
	Len() int

	// Stats returns hit/miss counters and the current entry count.
	Stats() Stats
}
