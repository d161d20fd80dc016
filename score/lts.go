package score

import (
	"errors"

	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/linalg"
	"github.com/katalvlaran/gltsdiff/propalg"
)

// LTSMode selects which base scorer LTSScorer delegates to.
type LTSMode int

const (
	// LTSModeLocal delegates to the iterative-refinement scorer.
	LTSModeLocal LTSMode = iota
	// LTSModeGlobal delegates to the exact linear-system scorer.
	LTSModeGlobal
	// LTSModeDynamic picks by size, as DynamicScorer does.
	LTSModeDynamic
)

// LTSScorer wraps a base scorer with the LTS-specific backward-score
// bonus: +1 to both numerator and denominator when both states are
// initial, +1 to the denominator alone when only one is.
type LTSScorer[TP any] struct {
	opts Options
	mode LTSMode
}

// NewLTSScorer builds an LTSScorer delegating to the given mode.
func NewLTSScorer[TP any](mode LTSMode, opts ...Option) *LTSScorer[TP] {
	return &LTSScorer[TP]{opts: buildOptions(opts), mode: mode}
}

var _ Scorer[propalg.LTSStateProp, struct{}] = (*LTSScorer[struct{}])(nil)

// Score computes the similarity matrix with the initial-state bonus
// applied to the backward pass only.
func (s *LTSScorer[TP]) Score(lhs, rhs *glts.GLTS[propalg.LTSStateProp, TP]) (*linalg.Dense, error) {
	lIds, rIds := lhs.States(), rhs.States()
	lInitial := make([]bool, len(lIds))
	rInitial := make([]bool, len(rIds))
	for i, id := range lIds {
		st, _ := lhs.State(id)
		lInitial[i] = st.Property.Initial
	}
	for j, id := range rIds {
		st, _ := rhs.State(id)
		rInitial[j] = st.Property.Initial
	}

	bonus := func(li, rj int) (float64, float64) {
		switch {
		case lInitial[li] && rInitial[rj]:
			return 1, 1
		case lInitial[li] || rInitial[rj]:
			return 0, 1
		default:
			return 0, 0
		}
	}

	switch s.mode {
	case LTSModeGlobal:
		return globalScore(lhs, rhs, s.opts, bonus)
	case LTSModeDynamic:
		if lhs.StateCount()*rhs.StateCount() > s.opts.Threshold {
			return localScore(lhs, rhs, s.opts, bonus)
		}
		m, err := globalScore(lhs, rhs, s.opts, bonus)
		if err != nil {
			if errors.Is(err, ErrIllConditioned) {
				return localScore(lhs, rhs, s.opts, bonus)
			}
			return nil, err
		}
		return m, nil
	default:
		return localScore(lhs, rhs, s.opts, bonus)
	}
}
