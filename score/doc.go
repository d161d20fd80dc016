// Package score implements the similarity scorer: it produces a
// dense |L|x|R| matrix of structural similarity scores between the
// states of two GLTS instances, the input the matcher (package match)
// consumes to build a matching.
//
// Three scorers are provided: LocalScorer (Walkinshaw's iterative
// fixpoint refinement), GlobalScorer (the same fixpoint solved exactly
// as a dense linear system via linalg.Solve), and DynamicScorer, which
// picks between them by input size and falls back from global to
// local on a numerically singular system. LTSScorer wraps any of the
// three with the initial-state backward-score bonus specific to LTS
// inputs.
//
// Score matrices are represented with linalg.Dense, a contiguous
// row-major layout, so graphs with tens of thousands of states stay
// within a single large allocation rather than a forest of small
// ones.
package score
