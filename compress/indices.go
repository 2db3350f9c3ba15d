// SPDX-License-Identifier: MIT

package compress

// AtomicDecomprIndices builds the length-N³ map from raw atom-triple flat
// indices to compressed translation-orbit indices, restricted to
// independent atoms: for each independent atom p and every (j,k) pair a
// fresh sequential id is assigned, then written at the raw position of
// every lattice translate of (p,j,k).
//
// transPerms is the (n_lp, N) translation-permutation table; indep holds
// one representative atom per translation orbit (see
// symfind.IndependentAtoms). The resulting map is surjective onto
// [0, n_a·N²) and translation-invariant by construction.
// Complexity: O(n_lp·N³).
func AtomicDecomprIndices(transPerms [][]int, indep []int) ([]int, error) {
	nLP, n, err := checkTranslations(transPerms)
	if err != nil {
		return nil, err
	}
	if err := checkIndep(indep, n); err != nil {
		return nil, err
	}

	nn := n * n
	size := n * nn
	indices := make([]int, size)
	id := 0
	for _, p := range indep {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < nLP; l++ {
					indices[transPerms[l][p]*nn+transPerms[l][j]*n+transPerms[l][k]] = id
				}
				id++
			}
		}
	}
	if id*nLP != size {
		return nil, ErrInconsistentIndices
	}

	return indices, nil
}

// FullDecomprIndices builds the length-27·N³ map that additionally
// enumerates the 27 Cartesian axis combinations per atom triple, axis index
// innermost: raw flat index (i·N² + j·N + k)·27 + ab.
// Complexity: O(27·n_lp·N³).
func FullDecomprIndices(transPerms [][]int, indep []int) ([]int, error) {
	nLP, n, err := checkTranslations(transPerms)
	if err != nil {
		return nil, err
	}
	if err := checkIndep(indep, n); err != nil {
		return nil, err
	}

	nn := n * n
	size := 27 * n * nn
	indices := make([]int, size)
	id := 0
	for _, p := range indep {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for ab := 0; ab < 27; ab++ {
					for l := 0; l < nLP; l++ {
						raw := (transPerms[l][p]*nn+transPerms[l][j]*n+transPerms[l][k])*27 + ab
						indices[raw] = id
					}
					id++
				}
			}
		}
	}
	if id*nLP != size {
		return nil, ErrInconsistentIndices
	}

	return indices, nil
}

// checkTranslations validates the translation table and returns (n_lp, N).
func checkTranslations(transPerms [][]int) (nLP, n int, err error) {
	if len(transPerms) == 0 {
		return 0, 0, ErrBadTranslations
	}
	n = len(transPerms[0])
	if n == 0 {
		return 0, 0, ErrBadTranslations
	}
	for _, row := range transPerms {
		if len(row) != n {
			return 0, 0, ErrBadTranslations
		}
		for _, p := range row {
			if p < 0 || p >= n {
				return 0, 0, ErrBadTranslations
			}
		}
	}

	return len(transPerms), n, nil
}

// checkIndep validates the independent-atom list against atom count n.
func checkIndep(indep []int, n int) error {
	if len(indep) == 0 {
		return ErrBadIndepAtoms
	}
	seen := make([]bool, n)
	for _, a := range indep {
		if a < 0 || a >= n || seen[a] {
			return ErrBadIndepAtoms
		}
		seen[a] = true
	}

	return nil
}
