// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// *Dense is the only implementation shipped; the interface exists so package
// helpers (Equal, CloneMatrix, validators) accept any bounds-checked grid.
package matrix

// Matrix represents a two-dimensional mutable grid of int values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (r, c).
	// Returns ErrOutOfBounds if r<0, r>=Rows(), c<0 or c>=Cols().
	At(r, c int) (int, error)

	// Set assigns the value v at position (r, c).
	// Returns ErrOutOfBounds if indices are invalid; nothing is written then.
	Set(r, c, v int) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix shares no storage with the original.
	Clone() Matrix
}
