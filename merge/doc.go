// Package merge combines a matched (LHS, RHS) pair of GLTSs into a
// single GLTS witnessing their commonalities and differences.
//
// Merge validates its matching (keys drawn from LHS, values from RHS,
// injective on both sides, every matched pair combinable under the
// supplied state combiner) and then emits, in deterministic order, one
// merged state per matched pair followed by one copy per unmatched
// state on either side. Transitions are carried across by the image of
// their endpoints under the matching; an LHS and an RHS transition
// landing on the same merged (source, target) pair are combined when
// their properties are combinable, else kept as parallel edges.
//
// MergeDiffAutomaton wraps Merge for the propalg.DiffAutomatonStateProp
// specialization and additionally re-validates the DiffKind nesting
// invariant on the result, since a merge is the one operation capable
// of reintroducing a nesting violation that AddTransition alone cannot
// catch (a transition whose endpoints were independently valid before
// the merge can land on a newly combined state of a different kind).
package merge
