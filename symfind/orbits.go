// SPDX-License-Identifier: MIT

package symfind

// IndependentAtoms partitions atom indices into orbits under the lattice
// translations and returns one representative per orbit: the smallest atom
// index not reached by translating any earlier representative.
//
// transPerms holds one atom permutation per pure lattice translation,
// shape (n_lp, N); every row must be a permutation of [0, N).
// Complexity: O(n_lp·N).
func IndependentAtoms(transPerms [][]int) ([]int, error) {
	if len(transPerms) == 0 {
		return nil, ErrBadTranslations
	}
	n := len(transPerms[0])
	for _, row := range transPerms {
		if len(row) != n {
			return nil, ErrBadTranslations
		}
		for _, p := range row {
			if p < 0 || p >= n {
				return nil, ErrBadTranslations
			}
		}
	}

	var reps []int
	reached := make([]bool, n)
	for a := 0; a < n; a++ {
		if reached[a] {
			continue
		}
		reps = append(reps, a)
		for _, row := range transPerms {
			reached[row[a]] = true
		}
	}

	return reps, nil
}
