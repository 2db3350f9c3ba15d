// SPDX-License-Identifier: MIT

package compress

import (
	"math"

	"github.com/latticeforge/fcsym/sparse"
)

// CompressionMatrix materializes a decompression index array as a sparse
// isometry of shape (size, size/n_lp): row r holds a single entry 1/√n_lp
// at column decompr[r]. Columns are mutually orthonormal, so Cᵀ·C = I and
// C·Cᵀ is the orthogonal projector onto translation-invariant vectors.
// Works for both the atomic (N³) and the full (27·N³) index arrays.
// Complexity: O(size).
func CompressionMatrix(decompr []int, nLP int) (*sparse.CSR, error) {
	if nLP <= 0 || len(decompr) == 0 {
		return nil, ErrBadCompression
	}
	size := len(decompr)
	if size%nLP != 0 {
		return nil, ErrBadCompression
	}
	cols := size / nLP

	coo, err := sparse.NewCOO(size, cols)
	if err != nil {
		return nil, err
	}
	coo.Reserve(size)
	v := 1 / math.Sqrt(float64(nLP))
	for r, c := range decompr {
		if c < 0 || c >= cols {
			return nil, ErrInconsistentIndices
		}
		if err := coo.Append(r, c, v); err != nil {
			return nil, err
		}
	}

	return coo.ToCSR(), nil
}

// FullCompressionMatrix is the one-call path from a translation table to the
// (27·N³, 27·N³/n_lp) compression matrix over atom triples and axis
// combinations.
func FullCompressionMatrix(transPerms [][]int, indep []int) (*sparse.CSR, error) {
	decompr, err := FullDecomprIndices(transPerms, indep)
	if err != nil {
		return nil, err
	}

	return CompressionMatrix(decompr, len(transPerms))
}
