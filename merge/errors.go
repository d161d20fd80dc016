package merge

import "errors"

// ErrInvariantViolation is the umbrella sentinel for every matching
// precondition failure Merge detects before touching the result graph
// (ErrDomainMismatch, ErrNotInjective, ErrNotCombinable). Callers
// should match against those specific sentinels with errors.Is;
// ErrInvariantViolation itself is never returned bare. ErrNilCombiner
// is returned on its own, without the umbrella.
var ErrInvariantViolation = errors.New("merge: invariant violation")

var (
	// ErrNilCombiner indicates Merge was invoked without a state or
	// transition combiner.
	ErrNilCombiner = errors.New("merge: nil state or transition combiner")

	// ErrNotInjective indicates the supplied matching maps two distinct
	// LHS states to the same RHS state (or vice versa).
	ErrNotInjective = errors.New("merge: matching is not injective")

	// ErrDomainMismatch indicates a matching key is absent from LHS or
	// a matching value is absent from RHS.
	ErrDomainMismatch = errors.New("merge: matching references a state absent from its graph")

	// ErrNotCombinable indicates a matched pair's state properties fail
	// stateCombiner.AreCombinable.
	ErrNotCombinable = errors.New("merge: matched pair is not combinable")
)
