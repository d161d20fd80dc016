// Package match implements the state matcher: given two GLTS
// instances and (for the scored variants) a score.Scorer, it produces
// a Matching — an injective partial mapping from LHS states to RHS
// states whose properties are combinable.
//
// Four variants are provided: BruteForceMatcher (exhaustive search
// over small graphs, maximizing preserved combinable transitions),
// KuhnMunkresMatcher (bipartite maximum-weight assignment over a
// score.Scorer's dense matrix), WalkinshawMatcher (landmark seeding
// plus neighborhood expansion), and DynamicMatcher (picks Walkinshaw
// above a size cutoff, KuhnMunkres below). LTSWalkinshawMatcher adds
// the initial-to-initial seeding step specific to LTS inputs.
//
// Every variant returns a Matching satisfying the same well-formedness
// contract (domain ⊆ LHS, range ⊆ RHS, injective on both sides, every
// pair combinable) and the same determinism contract: ties in score or
// selection order are always broken by ascending glts.StateID, never
// by map iteration order or randomness.
package match
