// SPDX-License-Identifier: MIT

package sparse

import "math"

// CSR is an immutable compressed sparse-row matrix. Column indices within
// each row are strictly increasing. Construct via COO.ToCSR, Identity, or
// the operations in this package; all of them preserve that ordering.
type CSR struct {
	rows, cols int
	indptr     []int // length rows+1
	ind        []int // column indices, row-contiguous
	vals       []float64
}

// Identity returns the n×n identity matrix.
// Complexity: O(n).
func Identity(n int) (*CSR, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}
	indptr := make([]int, n+1)
	ind := make([]int, n)
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		indptr[i+1] = i + 1
		ind[i] = i
		vals[i] = 1
	}

	return &CSR{rows: n, cols: n, indptr: indptr, ind: ind, vals: vals}, nil
}

// Zero returns an empty rows×cols matrix with no stored entries.
func Zero(rows, cols int) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &CSR{rows: rows, cols: cols, indptr: make([]int, rows+1)}, nil
}

// Rows returns the row dimension.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the column dimension.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries (explicit zeros included).
func (m *CSR) NNZ() int { return len(m.ind) }

// At returns the value at (row, col); absent entries read as 0.
// Complexity: O(nnz(row)).
func (m *CSR) At(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}
	for p := m.indptr[row]; p < m.indptr[row+1]; p++ {
		if m.ind[p] == col {
			return m.vals[p], nil
		}
		if m.ind[p] > col { // columns are sorted
			break
		}
	}

	return 0, nil
}

// Clone returns a deep copy.
func (m *CSR) Clone() *CSR {
	indptr := make([]int, len(m.indptr))
	ind := make([]int, len(m.ind))
	vals := make([]float64, len(m.vals))
	copy(indptr, m.indptr)
	copy(ind, m.ind)
	copy(vals, m.vals)

	return &CSR{rows: m.rows, cols: m.cols, indptr: indptr, ind: ind, vals: vals}
}

// Scale returns s·m as a new matrix. Complexity: O(nnz).
func (m *CSR) Scale(s float64) *CSR {
	out := m.Clone()
	for i := range out.vals {
		out.vals[i] *= s
	}

	return out
}

// Prune returns a copy with every entry of magnitude <= eps removed.
// Complexity: O(nnz).
func (m *CSR) Prune(eps float64) *CSR {
	indptr := make([]int, m.rows+1)
	ind := make([]int, 0, len(m.ind))
	vals := make([]float64, 0, len(m.vals))
	for r := 0; r < m.rows; r++ {
		for p := m.indptr[r]; p < m.indptr[r+1]; p++ {
			if math.Abs(m.vals[p]) > eps {
				ind = append(ind, m.ind[p])
				vals = append(vals, m.vals[p])
			}
		}
		indptr[r+1] = len(ind)
	}

	return &CSR{rows: m.rows, cols: m.cols, indptr: indptr, ind: ind, vals: vals}
}

// Transpose returns mᵀ. Complexity: O(nnz + rows + cols).
func (m *CSR) Transpose() *CSR {
	indptr := make([]int, m.cols+1)
	for _, c := range m.ind {
		indptr[c+1]++
	}
	for i := 0; i < m.cols; i++ {
		indptr[i+1] += indptr[i]
	}
	ind := make([]int, len(m.ind))
	vals := make([]float64, len(m.vals))
	next := make([]int, m.cols)
	copy(next, indptr[:m.cols])
	for r := 0; r < m.rows; r++ {
		for p := m.indptr[r]; p < m.indptr[r+1]; p++ {
			c := m.ind[p]
			q := next[c]
			ind[q] = r
			vals[q] = m.vals[p]
			next[c]++
		}
	}

	return &CSR{rows: m.cols, cols: m.rows, indptr: indptr, ind: ind, vals: vals}
}

// MulVec returns m·x. Complexity: O(nnz).
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		var sum float64
		for p := m.indptr[r]; p < m.indptr[r+1]; p++ {
			sum += m.vals[p] * x[m.ind[p]]
		}
		out[r] = sum
	}

	return out, nil
}

// MaxAbs returns the largest entry magnitude, 0 for an empty matrix.
func (m *CSR) MaxAbs() float64 {
	var best float64
	for _, v := range m.vals {
		if a := math.Abs(v); a > best {
			best = a
		}
	}

	return best
}

// ToDense expands the matrix into a row-major [][]float64. Intended for
// small matrices in tests and reporting; never call on N³-scale operands.
func (m *CSR) ToDense() [][]float64 {
	out := make([][]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = make([]float64, m.cols)
		for p := m.indptr[r]; p < m.indptr[r+1]; p++ {
			out[r][m.ind[p]] = m.vals[p]
		}
	}

	return out
}

// Row exposes one row's column indices and values as read-only slices.
// Callers must not modify the returned slices.
func (m *CSR) Row(r int) (cols []int, vals []float64, err error) {
	if r < 0 || r >= m.rows {
		return nil, nil, ErrOutOfRange
	}
	lo, hi := m.indptr[r], m.indptr[r+1]

	return m.ind[lo:hi], m.vals[lo:hi], nil
}
