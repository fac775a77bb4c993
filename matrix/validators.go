// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Check the metric invariants a finished hop table must satisfy.
//   - Return wrapped sentinels naming the first offending cell.
//
// Unreachable entries take part in the triangle check as +∞: a finite
// d[i][k] can never exceed a sum that contains an Unreachable term.

package matrix

import "fmt"

// Validate runs ValidateZeroDiagonal, ValidateSymmetric and ValidateTriangle
// in that order and returns the first failure.
// Complexity: O(n³).
func Validate(d *Distance) error {
	if err := ValidateZeroDiagonal(d); err != nil {
		return err
	}
	if err := ValidateSymmetric(d); err != nil {
		return err
	}

	return ValidateTriangle(d)
}

// ValidateZeroDiagonal ensures d[i][i] == 0 for every i.
// Complexity: O(n).
func ValidateZeroDiagonal(d *Distance) error {
	if d == nil {
		return fmt.Errorf("ValidateZeroDiagonal: %w", ErrNilMatrix)
	}
	for i := 0; i < d.n; i++ {
		if v := d.data[i*d.n+i]; v != 0 {
			return fmt.Errorf("ValidateZeroDiagonal: d[%d][%d]=%d: %w", i, i, v, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric ensures d[i][j] == d[j][i], scanning the upper triangle.
// Complexity: O(n²).
func ValidateSymmetric(d *Distance) error {
	if d == nil {
		return fmt.Errorf("ValidateSymmetric: %w", ErrNilMatrix)
	}
	n := d.n
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a, b := d.data[i*n+j], d.data[j*n+i]; a != b {
				return fmt.Errorf("ValidateSymmetric: d[%d][%d]=%d d[%d][%d]=%d: %w", i, j, a, j, i, b, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateTriangle ensures d[i][k] <= d[i][j] + d[j][k] for all i, j, k.
// Complexity: O(n³).
func ValidateTriangle(d *Distance) error {
	if d == nil {
		return fmt.Errorf("ValidateTriangle: %w", ErrNilMatrix)
	}
	n := d.n
	var i, j, k, ij, jk int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			ij = d.data[i*n+j]
			if ij == Unreachable {
				continue
			}
			for k = 0; k < n; k++ {
				jk = d.data[j*n+k]
				if jk == Unreachable {
					continue
				}
				if d.data[i*n+k] > ij+jk {
					return fmt.Errorf("ValidateTriangle: d[%d][%d] > d[%d][%d]+d[%d][%d]: %w", i, k, i, j, j, k, ErrTriangle)
				}
			}
		}
	}

	return nil
}
