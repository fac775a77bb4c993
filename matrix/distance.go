// SPDX-License-Identifier: MIT
// Package matrix: Distance, a dense row-major hop-count table.

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Unreachable marks a pair of valves with no connecting tunnel path.
// It is small enough that Unreachable+1 cannot overflow an int.
const Unreachable = math.MaxInt32

// distanceErrorf wraps an underlying error with Distance method context.
func distanceErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Distance.%s(%d,%d): %w", method, row, col, err)
}

// Distance is an n×n table of hop counts.
// data holds n*n elements in row-major order.
type Distance struct {
	n    int   // order of the matrix
	data []int // flat backing storage, length == n*n
}

// NewDistance creates an n×n table with a zero diagonal and every other
// entry set to Unreachable. n == 0 yields an empty table.
// Complexity: O(n²) time and memory.
func NewDistance(n int) (*Distance, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewDistance(%d): %w", n, ErrBadShape)
	}

	data := make([]int, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			if i != j {
				data[base+j] = Unreachable
			}
		}
	}

	return &Distance{n: n, data: data}, nil
}

// Order returns n.
func (d *Distance) Order() int {
	return d.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (d *Distance) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= d.n || col < 0 || col >= d.n {
		return 0, distanceErrorf(method, row, col, ErrOutOfRange)
	}

	return row*d.n + col, nil
}

// At returns the hop count from row to col.
// Complexity: O(1).
func (d *Distance) At(row, col int) (int, error) {
	idx, err := d.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set stores v at (row, col). It does not mirror the value.
// Complexity: O(1).
func (d *Distance) Set(row, col, v int) error {
	idx, err := d.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v < 0 {
		return distanceErrorf("Set", row, col, ErrNegativeDistance)
	}
	d.data[idx] = v

	return nil
}

// Hops is the unchecked read used in hot loops.
// Callers guarantee 0 ≤ i, j < Order().
func (d *Distance) Hops(i, j int) int {
	return d.data[i*d.n+j]
}

// Clone returns a deep copy.
func (d *Distance) Clone() *Distance {
	data := make([]int, len(d.data))
	copy(data, d.data)

	return &Distance{n: d.n, data: data}
}

// String renders one row per line; Unreachable prints as "∞".
func (d *Distance) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < d.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if v := d.data[i*d.n+j]; v == Unreachable {
				sb.WriteString("∞")
			} else {
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
