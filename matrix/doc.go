// Package matrix offers a bounds-checked, row-major two-dimensional int grid.
//
// The matrix package provides:
//
//   - Dense: an r×c container that exclusively owns its []int buffer,
//     with O(1) At/Set and deep-copy Clone/Copy/CopyFrom.
//   - Structural equality (Dense.Equal, Equal) that short-circuits on shape.
//   - Sentinel errors (ErrInvalidDimensions, ErrOutOfBounds) matched with errors.Is.
//
// No arithmetic is offered: the package holds a fixed-size grid safely and
// nothing more. Dense is not safe for concurrent writes.
//
// See the examples in this package for usage patterns.
package matrix
