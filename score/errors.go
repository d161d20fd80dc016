package score

import "errors"

var (
	// ErrNilCombiner indicates a GLTS was scored without a state or
	// transition combiner configured via glts.WithStateCombiner /
	// glts.WithTransitionCombiner.
	ErrNilCombiner = errors.New("score: nil state or transition combiner")

	// ErrIllConditioned indicates GlobalScorer's linear system could
	// not be solved (a zero pivot during LU decomposition). Recoverable:
	// DynamicScorer falls back to LocalScorer on this error.
	ErrIllConditioned = errors.New("score: global scorer system is ill-conditioned")

	// ErrShapeMismatch indicates a PrecomputedScorer's matrix (or a nil
	// one) does not match the state counts of the graphs it was asked
	// to score.
	ErrShapeMismatch = errors.New("score: precomputed matrix shape does not match inputs")
)
