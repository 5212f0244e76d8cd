// Package intmatrix is a small, dependency-light home for a bounds-checked
// two-dimensional integer grid.
//
// What is in here?
//
//	matrix/   — Dense: row-major []int storage, safe At/Set, deep copies, equality
//	examples/ — a runnable walkthrough of the copy and equality rules
//
// Guarantees:
//
//   - Construction rejects negative shapes with matrix.ErrInvalidDimensions.
//   - At/Set never panic; bad indices return matrix.ErrOutOfBounds.
//   - Copies never share storage with their source.
//
// No arithmetic is provided and nothing is locked internally: guard shared
// matrices with your own sync.RWMutex.
//
//	go get github.com/katalvlaran/intmatrix/matrix
package intmatrix
