package matrix_test

import (
	"testing"

	"github.com/katalvlaran/intmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestEqualScenario: two zero 2×2 matrices are equal until one cell differs.
func TestEqualScenario(t *testing.T) {
	m1 := mustDense(t, 2, 2)
	m2 := mustDense(t, 2, 2)
	require.True(t, m1.Equal(m2))
	require.False(t, m1.NotEqual(m2))

	require.NoError(t, m2.Set(0, 0, 1))
	require.False(t, m1.Equal(m2))
	require.True(t, m1.NotEqual(m2))
}

// TestEqualReflexiveSymmetric checks the basic equivalence laws.
func TestEqualReflexiveSymmetric(t *testing.T) {
	a := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]int{{1, 2}, {3, 4}})
	c := mustFromRows(t, [][]int{{1, 2}, {3, 5}})

	require.True(t, a.Equal(a))
	require.Equal(t, a.Equal(b), b.Equal(a))
	require.Equal(t, a.Equal(c), c.Equal(a))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

// TestEqualShapeMismatch: differing shapes are unequal whatever the contents.
func TestEqualShapeMismatch(t *testing.T) {
	cases := []struct {
		name string
		a, b *matrix.Dense
	}{
		{"2x3 vs 3x2", mustDense(t, 2, 3), mustDense(t, 3, 2)},
		{"1x6 vs 6x1", mustDense(t, 1, 6), mustDense(t, 6, 1)},
		{"0x4 vs 4x0", mustDense(t, 0, 4), mustDense(t, 4, 0)},
		{"0x0 vs 0x3", matrix.New(), mustDense(t, 0, 3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, tc.a.Equal(tc.b))
			require.True(t, tc.a.NotEqual(tc.b))

			eq, err := matrix.Equal(tc.a, tc.b)
			require.NoError(t, err)
			require.False(t, eq)
		})
	}
}

// TestEqualNilPointers covers the method's nil handling.
func TestEqualNilPointers(t *testing.T) {
	var a, b *matrix.Dense
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(matrix.New()))
	require.False(t, matrix.New().Equal(nil))
}

// TestEqualInterface compares fast path and generic fallback.
func TestEqualInterface(t *testing.T) {
	a := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := a.Copy()

	fast, err := matrix.Equal(a, b)
	require.NoError(t, err)
	slow, err := matrix.Equal(hide{a}, hide{b})
	require.NoError(t, err)
	require.True(t, fast)
	require.Equal(t, fast, slow)

	require.NoError(t, b.Set(1, 1, 0))
	fast, err = matrix.Equal(a, b)
	require.NoError(t, err)
	slow, err = matrix.Equal(hide{a}, b)
	require.NoError(t, err)
	require.False(t, fast)
	require.Equal(t, fast, slow)

	ne, err := matrix.NotEqual(a, b)
	require.NoError(t, err)
	require.True(t, ne)
}

// TestEqualInterfaceNil rejects nil and typed-nil operands.
func TestEqualInterfaceNil(t *testing.T) {
	a := mustDense(t, 1, 1)
	var typedNil *matrix.Dense

	_, err := matrix.Equal(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Equal(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.NotEqual(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
