// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"sort"
)

// COO is a mutable triplet accumulator. Append triplets in any order; call
// ToCSR once to freeze the result. Duplicate (row, col) triplets are summed
// on conversion, matching the usual COO→CSR contract.
type COO struct {
	rows, cols int
	ri, ci     []int
	vals       []float64
}

// NewCOO creates an empty rows×cols triplet accumulator.
// Complexity: O(1); storage grows with Append.
func NewCOO(rows, cols int) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &COO{rows: rows, cols: cols}, nil
}

// Reserve pre-allocates capacity for n additional triplets. Builders that
// know their triplet count up front should call this once to avoid
// reallocation churn.
func (m *COO) Reserve(n int) {
	if n <= 0 {
		return
	}
	m.ri = append(make([]int, 0, len(m.ri)+n), m.ri...)
	m.ci = append(make([]int, 0, len(m.ci)+n), m.ci...)
	m.vals = append(make([]float64, 0, len(m.vals)+n), m.vals...)
}

// Append records one (row, col, value) triplet.
// Stage 1 (Validate): bounds and finiteness.
// Stage 2 (Execute): append to the triplet lists.
// Complexity: amortized O(1).
func (m *COO) Append(row, col int, v float64) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	m.ri = append(m.ri, row)
	m.ci = append(m.ci, col)
	m.vals = append(m.vals, v)

	return nil
}

// NNZ returns the number of stored triplets (duplicates counted).
func (m *COO) NNZ() int { return len(m.ri) }

// Rows returns the row dimension.
func (m *COO) Rows() int { return m.rows }

// Cols returns the column dimension.
func (m *COO) Cols() int { return m.cols }

// ToCSR converts the accumulated triplets to CSR, summing duplicates.
// Stage 1 (Bucket): counting sort of triplets by row.
// Stage 2 (Order): sort each row segment by column.
// Stage 3 (Merge): collapse equal (row, col) runs by summation.
// Complexity: O(nnz log nnz) time, O(nnz) memory.
func (m *COO) ToCSR() *CSR {
	nnz := len(m.ri)
	counts := make([]int, m.rows+1)
	for _, r := range m.ri {
		counts[r+1]++
	}
	for i := 0; i < m.rows; i++ {
		counts[i+1] += counts[i]
	}

	// Scatter triplets into row-contiguous order.
	ci := make([]int, nnz)
	vals := make([]float64, nnz)
	next := make([]int, m.rows)
	copy(next, counts[:m.rows])
	for k := 0; k < nnz; k++ {
		r := m.ri[k]
		p := next[r]
		ci[p] = m.ci[k]
		vals[p] = m.vals[k]
		next[r]++
	}

	// Order each row by column, then merge duplicate runs.
	indptr := make([]int, m.rows+1)
	outInd := ci[:0:0]
	outVals := vals[:0:0]
	for r := 0; r < m.rows; r++ {
		lo, hi := counts[r], counts[r+1]
		seg := rowSegment{ci: ci[lo:hi], vals: vals[lo:hi]}
		sort.Sort(seg)
		for p := lo; p < hi; {
			c := ci[p]
			sum := vals[p]
			p++
			for p < hi && ci[p] == c {
				sum += vals[p]
				p++
			}
			outInd = append(outInd, c)
			outVals = append(outVals, sum)
		}
		indptr[r+1] = len(outInd)
	}

	return &CSR{rows: m.rows, cols: m.cols, indptr: indptr, ind: outInd, vals: outVals}
}

// rowSegment sorts one row's (col, val) pairs by column.
type rowSegment struct {
	ci   []int
	vals []float64
}

func (s rowSegment) Len() int           { return len(s.ci) }
func (s rowSegment) Less(i, j int) bool { return s.ci[i] < s.ci[j] }
func (s rowSegment) Swap(i, j int) {
	s.ci[i], s.ci[j] = s.ci[j], s.ci[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}
