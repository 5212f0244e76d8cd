// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All public operations return these sentinels (possibly wrapped with call-site
// context) and tests MUST check them via errors.Is. No operation panics on a
// user-triggered error condition.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping.
// ErrInvalidDimensions and ErrOutOfBounds both wrap ErrInvalidArgument, so a
// caller that only cares about "bad argument" can match the root kind.

var (
	// ErrInvalidArgument is the root kind for every argument violation.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrInvalidDimensions indicates a negative row or column count, a shape
	// whose element count overflows int, or a ragged row literal.
	ErrInvalidDimensions = fmt.Errorf("%w: invalid dimensions", ErrInvalidArgument)

	// ErrOutOfBounds indicates a row or column index outside [0,rows) / [0,cols).
	// At/Set MUST return this, not panic.
	ErrOutOfBounds = fmt.Errorf("%w: index out of bounds", ErrInvalidArgument)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
