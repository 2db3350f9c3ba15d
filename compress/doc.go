// Package compress reduces the rank-3 force-constant parameter space of a
// supercell by lattice-translation symmetry and projects the result onto
// the space-group-invariant subspace.
//
// Three builders, layered:
//
//   - AtomicDecomprIndices / FullDecomprIndices map every raw flat tensor
//     index (N³ atomic triples, or 27·N³ with Cartesian axis combinations)
//     to its translation-orbit representative index. Applying any lattice
//     translation to a raw multi-index never changes its compressed index,
//     and exactly n_lp raw indices share each compressed index.
//   - CompressionMatrix materializes the index map as a sparse isometry C of
//     shape (size, size/n_lp) with one 1/√n_lp entry per row. Its columns
//     are orthonormal: Cᵀ·C = I. Use Cᵀ·v to down-project and C·w to
//     scatter back.
//   - CosetProjector sums, over coset representatives, the Kronecker
//     product of the compressed atom-triple permutation with the rank-3
//     Cartesian transform, scaled by 1/(n_lp·n_coset). Without cutoff or
//     basis the result is an idempotent, symmetric projector onto the
//     symmetry-invariant subspace of the compressed space. A cutoff mask
//     restricts the atomic domain to short-range triples; a reduction basis
//     B conjugates every term as Bᵀ·term·B.
//
// Per-representative terms are independent; CosetProjector computes them on
// a bounded worker pool and accumulates in fixed representative order, so
// the result is reproducible up to one fixed floating-point summation order.
package compress
