// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points that delegate to the canonical
//     implementation; no logic lives here.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// ZerosLike returns a zero matrix with the same shape as m.
//
// Errors: ErrNilMatrix if m is nil.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// CloneMatrix returns a deep clone of m, or ErrNilMatrix for a nil input.
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return m.Clone(), nil
}

// NotEqual is the negation of Equal; errors are forwarded unchanged.
func NotEqual(a, b Matrix) (bool, error) {
	eq, err := Equal(a, b)
	if err != nil {
		return false, err
	}

	return !eq, nil
}
