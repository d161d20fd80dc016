package match

import "errors"

var (
	// ErrNilCombiner indicates a matcher was invoked on a GLTS without a
	// state or transition combiner configured.
	ErrNilCombiner = errors.New("match: nil state or transition combiner")

	// ErrNilScorer indicates a scored matcher (KuhnMunkres, Walkinshaw,
	// Dynamic) was built without a score.Scorer.
	ErrNilScorer = errors.New("match: nil scorer")

	// ErrGraphTooLarge indicates BruteForceMatcher was asked to match
	// graphs beyond its exhaustive-search size limit.
	ErrGraphTooLarge = errors.New("match: graph too large for brute-force matching")

	// ErrBackwardTransition indicates an internal matcherState machine
	// was asked to move to an earlier state than its current one — a
	// programmer error in this package, never a caller-triggered one.
	ErrBackwardTransition = errors.New("match: backward matcher state transition")
)
