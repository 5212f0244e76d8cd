// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Own a contiguous row-major []int with the explicit index formula r*cols + c.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep copies deep: Clone, Copy and CopyFrom never alias a backing slice.
//
// Concurrency:
//   - Dense performs no internal locking. Concurrent readers are safe; any
//     writer (Set, CopyFrom) needs external synchronization, e.g. sync.RWMutex.
//
// Complexity quicksheet:
//   - New: O(1); NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Copy/CopyFrom: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so errors.Is keeps working.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of ints.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is a ready-to-use 0×0 matrix.
type Dense struct {
	r, c int   // row and column counts (>=0)
	data []int // contiguous row-major storage (len == r*c), owned exclusively
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// New returns an empty 0×0 matrix.
// Complexity: O(1).
func New() *Dense {
	return &Dense{data: []int{}}
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols does not
//     overflow int; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer of len rows*cols.
//
// Behavior highlights:
//   - 0×N and N×0 shapes are legal and hold an empty buffer.
//   - No panics on user errors; returns sentinel errors.
//
// Inputs:
//   - rows: non-negative number of rows
//   - cols: non-negative number of columns
//
// Returns:
//   - *Dense: newly allocated matrix, every element 0.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}
	// make() zero-fills deterministically.
	buf := make([]int, rows*cols)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfBounds sentinel; At/Set add method context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if err := checkIndex(m.r, m.c, row, col); err != nil {
		return 0, err
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfBounds.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfBounds when row∉[0,Rows()) or col∉[0,Cols()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfBounds.
// MAIN DESCRIPTION:
//   - Safe element write; the bounds check happens before any write, so a
//     rejected call leaves the matrix untouched.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: write into flat buffer.
//
// Errors:
//   - ErrOutOfBounds for invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy as a Matrix. The dynamic type is *Dense.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.Copy()
}

// Copy returns a deep copy with the concrete type preserved.
// MAIN DESCRIPTION:
//   - Produce an independent Dense with identical shape and data.
//
// Behavior highlights:
//   - Independence: mutations on either side never reach the other.
//   - A zero-value Dense copies to a 0×0 matrix with a non-nil empty buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// CopyFrom replaces m's shape and contents with a deep copy of src.
// MAIN DESCRIPTION:
//   - Assignment with deep-copy semantics.
//
// Implementation:
//   - Stage 1: reject a nil receiver or source with ErrNilMatrix.
//   - Stage 2: short-circuit self-assignment (m == src) as a no-op.
//   - Stage 3: allocate a fresh buffer, copy, then adopt shape and buffer.
//
// Behavior highlights:
//   - The previous buffer is dropped, never reused, even when the shapes
//     match; m and src never share storage afterwards.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if m == nil || src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	buf := make([]int, len(src.data))
	copy(buf, src.data)
	m.r, m.c, m.data = src.r, src.c, buf

	return nil
}

// Values returns a row-major snapshot of all elements.
// The slice is a copy; writing to it does not affect m.
func (m *Dense) Values() []int {
	out := make([]int, len(m.data))
	copy(out, m.data)

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense) Do(f func(i, j, v int) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders one bracketed line per row, e.g. "[1, 2]\n[3, 4]\n".
// An empty matrix renders as "". Intended for debugging, not hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
