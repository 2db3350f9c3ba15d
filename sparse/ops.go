// SPDX-License-Identifier: MIT

package sparse

import "sort"

// Add returns a + b. Both operands must share a shape.
// Complexity: O(nnz(a) + nnz(b)) via sorted row merge.
func Add(a, b *CSR) (*CSR, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, ErrDimensionMismatch
	}

	indptr := make([]int, a.rows+1)
	ind := make([]int, 0, len(a.ind)+len(b.ind))
	vals := make([]float64, 0, len(a.vals)+len(b.vals))
	for r := 0; r < a.rows; r++ {
		pa, ea := a.indptr[r], a.indptr[r+1]
		pb, eb := b.indptr[r], b.indptr[r+1]
		for pa < ea || pb < eb {
			switch {
			case pb >= eb || (pa < ea && a.ind[pa] < b.ind[pb]):
				ind = append(ind, a.ind[pa])
				vals = append(vals, a.vals[pa])
				pa++
			case pa >= ea || b.ind[pb] < a.ind[pa]:
				ind = append(ind, b.ind[pb])
				vals = append(vals, b.vals[pb])
				pb++
			default: // equal columns
				ind = append(ind, a.ind[pa])
				vals = append(vals, a.vals[pa]+b.vals[pb])
				pa++
				pb++
			}
		}
		indptr[r+1] = len(ind)
	}

	return &CSR{rows: a.rows, cols: a.cols, indptr: indptr, ind: ind, vals: vals}, nil
}

// Mul returns a·b using Gustavson's row-by-row scheme with a dense
// accumulator over b's columns.
// Complexity: O(Σ_r Σ_{(r,k)∈a} nnz(b row k)) time, O(cols(b)) workspace.
func Mul(a, b *CSR) (*CSR, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.cols != b.rows {
		return nil, ErrDimensionMismatch
	}

	acc := make([]float64, b.cols)
	marked := make([]bool, b.cols)
	touched := make([]int, 0, 64)

	indptr := make([]int, a.rows+1)
	var ind []int
	var vals []float64
	for r := 0; r < a.rows; r++ {
		touched = touched[:0]
		for p := a.indptr[r]; p < a.indptr[r+1]; p++ {
			k := a.ind[p]
			av := a.vals[p]
			for q := b.indptr[k]; q < b.indptr[k+1]; q++ {
				c := b.ind[q]
				if !marked[c] {
					marked[c] = true
					touched = append(touched, c)
				}
				acc[c] += av * b.vals[q]
			}
		}
		sort.Ints(touched)
		for _, c := range touched {
			ind = append(ind, c)
			vals = append(vals, acc[c])
			acc[c] = 0
			marked[c] = false
		}
		indptr[r+1] = len(ind)
	}

	return &CSR{rows: a.rows, cols: b.cols, indptr: indptr, ind: ind, vals: vals}, nil
}

// Kron returns the Kronecker product a ⊗ b: block (i,j) of the result is
// a[i,j]·b. Output row ia·rows(b)+ib holds products of a's row ia with b's
// row ib, so sorted column order is preserved by construction.
// Complexity: O(nnz(a)·nnz(b)) in the worst case.
func Kron(a, b *CSR) (*CSR, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}

	rows := a.rows * b.rows
	cols := a.cols * b.cols
	nnz := 0
	for r := 0; r < a.rows; r++ {
		na := a.indptr[r+1] - a.indptr[r]
		for rb := 0; rb < b.rows; rb++ {
			nnz += na * (b.indptr[rb+1] - b.indptr[rb])
		}
	}

	indptr := make([]int, rows+1)
	ind := make([]int, 0, nnz)
	vals := make([]float64, 0, nnz)
	for ra := 0; ra < a.rows; ra++ {
		for rb := 0; rb < b.rows; rb++ {
			for pa := a.indptr[ra]; pa < a.indptr[ra+1]; pa++ {
				base := a.ind[pa] * b.cols
				av := a.vals[pa]
				for pb := b.indptr[rb]; pb < b.indptr[rb+1]; pb++ {
					ind = append(ind, base+b.ind[pb])
					vals = append(vals, av*b.vals[pb])
				}
			}
			indptr[ra*b.rows+rb+1] = len(ind)
		}
	}

	return &CSR{rows: rows, cols: cols, indptr: indptr, ind: ind, vals: vals}, nil
}
