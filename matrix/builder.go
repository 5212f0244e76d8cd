// SPDX-License-Identifier: MIT

// Package matrix - literal builders.
//
// NewDenseFromRows turns a [][]int literal into an owned Dense. The input is
// copied; later writes to the literal never reach the matrix.

package matrix

import "fmt"

const ctxFromRows = "NewDenseFromRows"

// NewDenseFromRows builds a len(rows)×len(rows[0]) matrix from row literals.
// MAIN DESCRIPTION:
//   - Deterministic row-major copy of a rectangular [][]int.
//
// Implementation:
//   - Stage 1: derive the column count from the first row (0 for empty input).
//   - Stage 2: validate every row has exactly that many columns.
//   - Stage 3: allocate via NewDense and copy row by row.
//
// Behavior highlights:
//   - nil or empty input yields a 0×0 matrix.
//   - Rows of length zero yield an N×0 matrix.
//
// Errors:
//   - ErrInvalidDimensions for ragged input, wrapped with the offending row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]int) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrInvalidDimensions)
		}
	}

	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}
