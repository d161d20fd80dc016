package score

import (
	"errors"

	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/linalg"
)

// DynamicScorer picks GlobalScorer or LocalScorer by input size, and
// always falls back to LocalScorer if the global solve reports
// ErrIllConditioned.
type DynamicScorer[SP, TP any] struct {
	opts Options
}

// NewDynamicScorer builds a DynamicScorer with the given options applied.
func NewDynamicScorer[SP, TP any](opts ...Option) *DynamicScorer[SP, TP] {
	return &DynamicScorer[SP, TP]{opts: buildOptions(opts)}
}

var _ Scorer[struct{}, struct{}] = (*DynamicScorer[struct{}, struct{}])(nil)

// Score dispatches to GlobalScorer below Options.Threshold cells and
// LocalScorer above it, falling back to local on an ill-conditioned
// global system.
func (s *DynamicScorer[SP, TP]) Score(lhs, rhs *glts.GLTS[SP, TP]) (*linalg.Dense, error) {
	if lhs.StateCount()*rhs.StateCount() > s.opts.Threshold {
		return localScore(lhs, rhs, s.opts, noBonus)
	}

	m, err := globalScore(lhs, rhs, s.opts, noBonus)
	if err != nil {
		if errors.Is(err, ErrIllConditioned) {
			return localScore(lhs, rhs, s.opts, noBonus)
		}
		return nil, err
	}
	return m, nil
}
