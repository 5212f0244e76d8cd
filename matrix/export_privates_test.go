// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes storage identity to matrix_test without widening the
// production API.

// SharesStorage reports whether a and b are backed by the same array.
// Empty buffers never count as shared.
func SharesStorage(a, b *Dense) bool {
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}

	return &a.data[0] == &b.data[0]
}

// BufferLen exposes len(data) so tests can assert len(data) == rows*cols.
func BufferLen(m *Dense) int { return len(m.data) }

// DataOf returns the live backing slice (aliasing m) for white-box checks.
func DataOf(m *Dense) []int { return m.data }
