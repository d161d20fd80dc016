// Package linalg provides the dense linear-algebra primitives the
// similarity scorer needs: a row-major Dense matrix, elementwise and
// product kernels, and an LU-based solver for small-to-medium square
// systems.
//
// Dense is deliberately minimal compared to a general-purpose numeric
// library: score uses Dense storage for the |L|x|R| score matrix,
// Solve for the global scorer's fixpoint linear system, and LU as
// Solve's building block; the elementwise and product kernels (Add,
// Sub, Scale, MatVec) are not called by score. There is no sparse
// representation, no BLAS bindings, no complex numbers.
//
// All operations are fail-fast: shape mismatches, non-square inputs,
// and singular pivots return wrapped sentinel errors rather than
// panicking or producing silently wrong results. Loop orders are fixed
// so that repeated calls on the same input are bit-identical, which
// matters for score's reproducibility contract.
package linalg
