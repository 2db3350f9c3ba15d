// Package sparse provides the compressed sparse-matrix primitives used by
// the fcsym pipeline.
//
// Matrices are built as COO triplet lists — append (row, col, value)
// triplets in any order, duplicates allowed — and converted exactly once to
// an immutable CSR form. Duplicate triplets sum during conversion. This
// build-then-freeze discipline keeps N³-scale intermediates out of memory:
// builders stream triplets and never materialize dense arrays.
//
// CSR supports the algebra the projector construction needs: Add, Scale,
// Transpose, Mul (Gustavson row-merge), Kron, and MulVec. All operations
// return new matrices; a CSR is never mutated after construction.
//
// Errors are package-level sentinels matched with errors.Is; no operation
// panics on user input.
package sparse
