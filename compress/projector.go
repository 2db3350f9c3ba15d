// SPDX-License-Identifier: MIT

package compress

import (
	"runtime"
	"sync"

	"github.com/latticeforge/fcsym/sparse"
	"github.com/latticeforge/fcsym/spgrep"
)

// ProjectorOption configures CosetProjector.
type ProjectorOption func(*projOptions)

type projOptions struct {
	mask      []bool
	atomicIdx []int
	basis     *sparse.CSR
	workers   int
}

// WithTripleMask restricts the atomic-index domain to the cutoff-retained
// triples (see cutoff.TripleMask). The mask length must be N³.
func WithTripleMask(mask []bool) ProjectorOption {
	return func(o *projOptions) { o.mask = mask }
}

// WithAtomicIndices supplies a precomputed atomic decompression index array,
// skipping the AtomicDecomprIndices pass.
func WithAtomicIndices(idx []int) ProjectorOption {
	return func(o *projOptions) { o.atomicIdx = idx }
}

// WithBasis conjugates every per-representative term as Bᵀ·term·B, producing
// the projector in the already-reduced space spanned by B's columns.
// B must have 27·N³/n_lp rows.
func WithBasis(b *sparse.CSR) ProjectorOption {
	return func(o *projOptions) { o.basis = b }
}

// WithWorkers bounds the number of per-representative terms computed
// concurrently. Values < 1 are a programmer error and panic.
func WithWorkers(n int) ProjectorOption {
	if n < 1 {
		panic("compress: WithWorkers requires n >= 1")
	}

	return func(o *projOptions) { o.workers = n }
}

// CosetProjector builds the compressed coset-sum projector for a rank-3
// representation: the sum over coset representatives i of
//
//	(Cᵀ·σ₃(i)·C) ⊗ TensorTransform(i) / (n_lp·n_coset)
//
// where C is the atomic compression isometry, computed index-wise without
// ever materializing the N³×N³ sigma matrix. indep lists one atom per
// translation orbit (symfind.IndependentAtoms).
//
// Without mask and basis the result is idempotent and symmetric: the
// projector onto the symmetry-invariant subspace of the compressed space.
// Terms are computed in parallel and accumulated in representative order,
// so output is reproducible up to a fixed summation order.
// Complexity: O(n_coset·N³·nnz(r₃)) time.
func CosetProjector(rr *spgrep.RankRep, indep []int, opts ...ProjectorOption) (*sparse.CSR, error) {
	if rr == nil {
		return nil, ErrNilRep
	}
	if rr.Rank() != 3 {
		return nil, ErrRankUnsupported
	}
	o := projOptions{workers: runtime.GOMAXPROCS(0)}
	for _, fn := range opts {
		fn(&o)
	}

	rep := rr.Rep()
	transPerms := rep.TranslationPermutations()
	nLP := len(transPerms)
	n := rep.Cell().NumAtoms()
	nnn := n * n * n
	if nnn%nLP != 0 {
		return nil, ErrInconsistentIndices
	}
	compressed := nnn / nLP

	dec := o.atomicIdx
	if dec == nil {
		var err error
		dec, err = AtomicDecomprIndices(transPerms, indep)
		if err != nil {
			return nil, err
		}
	}
	if len(dec) != nnn {
		return nil, ErrInconsistentIndices
	}

	size := compressed * 27
	if o.basis != nil {
		if o.basis.Rows() != size {
			return nil, ErrBasisShape
		}
		size = o.basis.Cols()
	}

	nCosets := rep.NumCosets()
	factor := 1 / float64(nLP*nCosets)

	terms := make([]*sparse.CSR, nCosets)
	errs := make([]error, nCosets)
	sem := make(chan struct{}, o.workers)
	var wg sync.WaitGroup
	for i := 0; i < nCosets; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			terms[i], errs[i] = cosetTerm(rr, i, dec, compressed, factor, &o)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sum, err := sparse.Zero(size, size)
	if err != nil {
		return nil, err
	}
	for _, term := range terms { // fixed representative order
		if sum, err = sparse.Add(sum, term); err != nil {
			return nil, err
		}
	}

	return sum, nil
}

// cosetTerm builds one representative's contribution.
func cosetTerm(rr *spgrep.RankRep, i int, dec []int, compressed int, factor float64, o *projOptions) (*sparse.CSR, error) {
	rows, cols, err := rr.PermutedIndices(i, o.mask)
	if err != nil {
		return nil, err
	}

	// Compressed atomic permutation: every raw triple contributes a unit
	// entry at its orbit-representative coordinates; the n_lp duplicates per
	// compressed pair sum on conversion and the 1/n_lp share of the overall
	// factor cancels them.
	coo, err := sparse.NewCOO(compressed, compressed)
	if err != nil {
		return nil, err
	}
	coo.Reserve(len(rows))
	for k := range rows {
		if err := coo.Append(dec[rows[k]], dec[cols[k]], 1); err != nil {
			return nil, err
		}
	}
	atomic := coo.ToCSR()

	transform, err := rr.TensorTransform(i)
	if err != nil {
		return nil, err
	}
	term, err := sparse.Kron(atomic, transform.Scale(factor))
	if err != nil {
		return nil, err
	}

	if o.basis != nil {
		bt := o.basis.Transpose()
		if term, err = sparse.Mul(bt, term); err != nil {
			return nil, err
		}
		if term, err = sparse.Mul(term, o.basis); err != nil {
			return nil, err
		}
	}

	return term, nil
}
