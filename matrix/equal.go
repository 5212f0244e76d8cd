// SPDX-License-Identifier: MIT

// Package matrix - structural equality.
//
// Two matrices are equal iff their shapes match exactly and every
// corresponding element is equal. A shape mismatch short-circuits before any
// element is read.

package matrix

import "fmt"

// Equal reports whether m and other have the same shape and elements.
// Two nil pointers are equal; nil and non-nil are not.
// Complexity: O(r*c) worst case, O(1) on shape mismatch.
func (m *Dense) Equal(other *Dense) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m == other {
		return true
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the logical negation of Equal.
func (m *Dense) NotEqual(other *Dense) bool {
	return !m.Equal(other)
}

// Equal compares two Matrix values of any implementation.
// MAIN DESCRIPTION:
//   - Shape-first structural comparison over the Matrix interface.
//
// Implementation:
//   - Stage 1: reject nil operands with ErrNilMatrix.
//   - Stage 2: shape mismatch -> (false, nil) without reading elements.
//   - Stage 3: fast path for *Dense pairs; otherwise row-major At() scan.
//
// Errors:
//   - ErrNilMatrix for a nil operand.
//   - Any error surfaced by a foreign implementation's At.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, fmt.Errorf("Equal: %w", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, fmt.Errorf("Equal: %w", err)
	}
	if !SameShape(a, b) {
		return false, nil
	}
	// Fast path: compare flat buffers directly.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			return da.Equal(db), nil
		}
	}

	var i, j, av, bv int
	var err error
	rows, cols := a.Rows(), a.Cols()
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, fmt.Errorf("Equal: %w", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, fmt.Errorf("Equal: %w", err)
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}
