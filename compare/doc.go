// Package compare orchestrates the scorer, matcher and merger into a
// single entry point: Compare(lhs, rhs) scores the pair, matches their
// states, merges the matched result, and runs an optional caller-
// supplied rewriter over it. CompareAll folds the same operation
// pairwise, left to right, over two or more inputs.
//
// Scorer and matcher selection, their tuning parameters, the state and
// transition combiners, and the rewriter hook are all configured via
// CompareOption. Everything here is a thin composition: no algorithm
// lives in this package that isn't already implemented by score,
// match, or merge.
package compare
