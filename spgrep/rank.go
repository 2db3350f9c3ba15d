// SPDX-License-Identifier: MIT

package spgrep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/latticeforge/fcsym/sparse"
)

// ZeroTol is the magnitude below which tensor-transform entries are stored
// as exact zeros. Rotations of well-formed lattices are orthogonal matrices
// with integer or simple-fraction entries, so thresholding at 1e-10 keeps
// the transforms sparse without perturbing exact symmetry values.
const ZeroTol = 1e-10

// RankRep is the rank-K specialization of a base representation. One type
// serves all ranks; the rank is an integer parameter and the tensor-axis
// transform is a general Kronecker power.
//
// Tensor transforms (3^K × 3^K) are small and precomputed for every coset
// representative. Sigma representations (N^K × N^K) are built on demand.
type RankRep struct {
	rep        *Rep
	rank       int
	dim        int // 3^rank
	transforms []*sparse.CSR
}

// NewRankRep derives the per-representative Cartesian tensor transforms for
// the given rank.
// Stage 1 (Validate): rank ∈ {1,2,3}, non-nil base.
// Stage 2 (Rotate): express each representative's lattice-basis rotation W
// as the Cartesian operator Lᵀ·W·L⁻ᵀ.
// Stage 3 (Power): take the K-fold Kronecker power, zero entries with
// magnitude ≤ ZeroTol, and store sparsely.
// Complexity: O(n_coset · 9^K).
func NewRankRep(rep *Rep, rank int) (*RankRep, error) {
	if rep == nil {
		return nil, ErrNilCell
	}
	if rank < 1 || rank > 3 {
		return nil, ErrBadRank
	}

	lt := mat.DenseCopyOf(rep.cell.Lattice().T())
	var ltInv mat.Dense
	if err := ltInv.Inverse(lt); err != nil {
		return nil, fmt.Errorf("spgrep: lattice inverse: %w", err)
	}

	dim := 1
	for k := 0; k < rank; k++ {
		dim *= 3
	}

	transforms := make([]*sparse.CSR, rep.NumCosets())
	for i := range transforms {
		w, err := rep.cosetRotation(i)
		if err != nil {
			return nil, err
		}
		cart := cartesianRotation(lt, &ltInv, w)
		transforms[i] = sparsifyKronPower(cart, rank, dim)
	}

	return &RankRep{rep: rep, rank: rank, dim: dim, transforms: transforms}, nil
}

// Rep returns the underlying base representation.
func (t *RankRep) Rep() *Rep { return t.rep }

// Rank returns the tensor rank K.
func (t *RankRep) Rank() int { return t.rank }

// Dim returns 3^K, the tensor-transform dimension.
func (t *RankRep) Dim() int { return t.dim }

// TensorTransform returns the 3^K × 3^K Cartesian transform of the i-th
// coset representative. The returned matrix is shared and immutable.
func (t *RankRep) TensorTransform(i int) (*sparse.CSR, error) {
	if i < 0 || i >= len(t.transforms) {
		return nil, ErrCosetIndex
	}

	return t.transforms[i], nil
}

// SigmaRep returns the N^K × N^K permutation matrix of the i-th coset
// representative: column = mixed-radix encoding of an ordered K-tuple of
// atom indices (first element most significant, weight N^(K-1)), row = the
// encoding of the permuted tuple, all stored values 1.
//
// A non-nil mask of length N^K restricts materialization to tuples with
// mask[tuple] == true, shrinking the matrix for short-range work.
// Complexity: O(N^K) unmasked, O(popcount(mask)) masked.
func (t *RankRep) SigmaRep(i int, mask []bool) (*sparse.CSR, error) {
	rows, cols, err := t.PermutedIndices(i, mask)
	if err != nil {
		return nil, err
	}

	size := intPow(t.rep.cell.NumAtoms(), t.rank)
	coo, err := sparse.NewCOO(size, size)
	if err != nil {
		return nil, err
	}
	coo.Reserve(len(rows))
	for k := range rows {
		if err := coo.Append(rows[k], cols[k], 1); err != nil {
			return nil, err
		}
	}

	return coo.ToCSR(), nil
}

// PermutedIndices streams the sigma representation of the i-th coset
// representative as two parallel index slices: cols holds flat tuple
// encodings (all of them, or the mask-retained subset, ascending) and rows
// holds the encodings of the corresponding permuted tuples. The projector
// builder consumes this form directly instead of the materialized matrix.
func (t *RankRep) PermutedIndices(i int, mask []bool) (rows, cols []int, err error) {
	perm, err := t.rep.cosetPermutation(i)
	if err != nil {
		return nil, nil, err
	}

	n := t.rep.cell.NumAtoms()
	size := intPow(n, t.rank)
	if mask != nil && len(mask) != size {
		return nil, nil, ErrBadMask
	}

	count := size
	if mask != nil {
		count = 0
		for _, keep := range mask {
			if keep {
				count++
			}
		}
	}
	rows = make([]int, 0, count)
	cols = make([]int, 0, count)
	for flat := 0; flat < size; flat++ {
		if mask != nil && !mask[flat] {
			continue
		}
		rows = append(rows, permuteFlat(flat, perm, n, t.rank))
		cols = append(cols, flat)
	}

	return rows, cols, nil
}

// permuteFlat applies an atom permutation to every digit of a mixed-radix
// tuple encoding (base n, rank digits, first digit most significant).
func permuteFlat(flat int, perm []int, n, rank int) int {
	out := 0
	base := 1
	for d := 0; d < rank; d++ {
		out += perm[flat%n] * base
		flat /= n
		base *= n
	}

	return out
}

// cartesianRotation computes Lᵀ·W·L⁻ᵀ for an integer lattice-basis rotation.
func cartesianRotation(lt *mat.Dense, ltInv *mat.Dense, w [3][3]int) *mat.Dense {
	wd := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			wd.Set(i, j, float64(w[i][j]))
		}
	}
	var tmp, cart mat.Dense
	tmp.Mul(wd, ltInv)
	cart.Mul(lt, &tmp)

	return &cart
}

// sparsifyKronPower expands the K-fold Kronecker power of a 3×3 Cartesian
// rotation into a dim×dim sparse matrix, zeroing entries with magnitude
// ≤ ZeroTol.
func sparsifyKronPower(cart *mat.Dense, rank, dim int) *sparse.CSR {
	cur := []float64{1}
	curDim := 1
	for k := 0; k < rank; k++ {
		nd := curDim * 3
		next := make([]float64, nd*nd)
		for i := 0; i < curDim; i++ {
			for j := 0; j < curDim; j++ {
				v := cur[i*curDim+j]
				if v == 0 {
					continue
				}
				for a := 0; a < 3; a++ {
					for b := 0; b < 3; b++ {
						next[(i*3+a)*nd+(j*3+b)] = v * cart.At(a, b)
					}
				}
			}
		}
		cur = next
		curDim = nd
	}

	coo, _ := sparse.NewCOO(dim, dim) // dim >= 3, shape is valid
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if v := cur[i*dim+j]; v > ZeroTol || v < -ZeroTol {
				_ = coo.Append(i, j, v) // indices in range by construction
			}
		}
	}

	return coo.ToCSR()
}

// intPow returns n^k for small non-negative k.
func intPow(n, k int) int {
	out := 1
	for i := 0; i < k; i++ {
		out *= n
	}

	return out
}
