// Package spgrep builds representations of space-group operations with
// respect to the atomic coordinate basis of a periodic cell.
//
// Rep is the base representation: it drives the external symmetry
// collaborators (SymmetryFinder, PermutationResolver), records the atom
// permutation induced by every operation, isolates the pure lattice
// translations (identity rotation part), and selects one coset
// representative per distinct rotation matrix. Representative order is
// first occurrence in finder order; callers must not assume any other
// canonical ordering.
//
// RankRep specializes a Rep to a tensor rank K ∈ {1, 2, 3}. Per coset
// representative it exposes
//
//   - TensorTransform(i): the 3^K × 3^K Cartesian tensor-axis transform,
//     the K-fold Kronecker power of Lᵀ·W·L⁻ᵀ with entries of magnitude
//     ≤ ZeroTol stored as exact zeros, and
//   - SigmaRep(i, mask): the N^K × N^K permutation matrix of ordered
//     K-tuples of atom indices, optionally restricted to a boolean tuple
//     mask from a distance cutoff.
//
// The rank is a plain integer parameter; there is one representation type,
// not one per rank.
package spgrep
