// SPDX-License-Identifier: MIT

package memo

// Map is a Cache backed by a single Go map. It is not safe for concurrent use.
type Map struct {
	entries map[Key]int
	hits    int64
	misses  int64
}

// NewMap creates an empty Map. sizeHint pre-sizes the table; 0 is fine.
func NewMap(sizeHint int) *Map {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &Map{entries: make(map[Key]int, sizeHint)}
}

// Get returns the cached result for key.
func (m *Map) Get(key Key) (int, bool) {
	v, ok := m.entries[key]
	if ok {
		m.hits++
	} else {
		m.misses++
	}

	return v, ok
}

// Put stores value for key.
func (m *Map) Put(key Key, value int) {
	m.entries[key] = value
}

// Len returns the number of stored states.
func (m *Map) Len() int {
	return len(m.entries)
}

// Stats returns the counters.
func (m *Map) Stats() Stats {
	return Stats{Hits: m.hits, Misses: m.misses, Entries: len(m.entries)}
}
