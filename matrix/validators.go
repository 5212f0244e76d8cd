// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the guard checks shared by Dense and the
//     package-level helpers (nil, shape, index).
//   - Return sentinels wrapped with a validator tag so call sites stay uniform.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures rows and cols are both non-negative and that
// rows*cols fits in an int, so len(data) == rows*cols always holds.
// Returns ErrInvalidDimensions otherwise.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return validatorErrorf("ValidateShape: Overflow", ErrInvalidDimensions)
	}

	return nil
}

// ValidateIndex ensures (r, c) addresses a cell of m.
//
// Implementation: assumes m is not nil (caller must ensure).
// Return: nil or wrapped ErrOutOfBounds.
// Complexity: O(1).
func ValidateIndex(m Matrix, r, c int) error {
	if err := checkIndex(m.Rows(), m.Cols(), r, c); err != nil {
		return validatorErrorf("ValidateIndex", err)
	}

	return nil
}

// checkIndex is the single bounds rule shared by ValidateIndex and
// Dense.indexOf. It returns the bare ErrOutOfBounds sentinel.
func checkIndex(rows, cols, r, c int) error {
	if r < 0 || r >= rows || c < 0 || c >= cols {
		return ErrOutOfBounds
	}

	return nil
}

// SameShape reports whether a and b have equal dimensions.
// Assumes both are non-nil.
func SameShape(a, b Matrix) bool {
	return a.Rows() == b.Rows() && a.Cols() == b.Cols()
}
