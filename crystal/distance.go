// SPDX-License-Identifier: MIT

package crystal

import "math"

// MinImageDistance returns the minimum-image Cartesian distance between
// atoms i and j: the shortest |r_j + s - r_i| over lattice shifts s with
// components in {-1, 0, +1}. That shift range is exact for cells whose
// shape is not extremely skewed, which covers conventional cells and
// diagonal supercells.
// Complexity: O(27) per pair.
func (c *Cell) MinImageDistance(i, j int) (float64, error) {
	pi, err := c.Position(i)
	if err != nil {
		return 0, err
	}
	pj, err := c.Position(j)
	if err != nil {
		return 0, err
	}

	best := math.Inf(1)
	for sa := -1; sa <= 1; sa++ {
		for sb := -1; sb <= 1; sb++ {
			for sc := -1; sc <= 1; sc++ {
				d := c.Cartesian([3]float64{
					pj[0] + float64(sa) - pi[0],
					pj[1] + float64(sb) - pi[1],
					pj[2] + float64(sc) - pi[2],
				})
				r := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
				if r < best {
					best = r
				}
			}
		}
	}

	return best, nil
}

// PairDistances returns the full N×N matrix of minimum-image distances as a
// flat row-major slice. Complexity: O(27·N²).
func (c *Cell) PairDistances() []float64 {
	n := len(c.positions)
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		out[i*n+i] = 0
		for j := i + 1; j < n; j++ {
			d, _ := c.MinImageDistance(i, j) // indices are in range by construction
			out[i*n+j] = d
			out[j*n+i] = d
		}
	}

	return out
}
