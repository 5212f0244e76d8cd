// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and grid assertions for Dense tests.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustFromRows builds a *Dense from a literal or fails the test.
func mustFromRows(tb testing.TB, rows [][]int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// fillSeq writes 1..r*c in row-major order.
func fillSeq(tb testing.TB, m *matrix.Dense) {
	tb.Helper()
	v := 1
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, v); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
			v++
		}
	}
}

// grid reads m back into a [][]int through the public At accessor.
func grid(t *testing.T, m matrix.Matrix) [][]int {
	t.Helper()
	out := make([][]int, m.Rows())
	for i := range out {
		out[i] = make([]int, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// requireGrid fails with a readable diff when m does not hold want.
func requireGrid(t *testing.T, want [][]int, m matrix.Matrix) {
	t.Helper()
	if diff := cmp.Diff(want, grid(t, m)); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}
