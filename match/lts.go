package match

import (
	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/propalg"
	"github.com/katalvlaran/gltsdiff/score"
)

// NewLTSWalkinshawMatcher builds a WalkinshawMatcher over LTS state
// properties that seeds initial-to-initial pairs before landmark
// selection runs.
func NewLTSWalkinshawMatcher[TP any](scorer score.Scorer[propalg.LTSStateProp, TP], opts ...Option) *WalkinshawMatcher[propalg.LTSStateProp, TP] {
	m := NewWalkinshawMatcher[propalg.LTSStateProp, TP](scorer, opts...)
	m.seed = seedInitialPairs[TP]
	return m
}

// NewLTSDynamicMatcher builds a DynamicMatcher over LTS state
// properties whose Walkinshaw delegate seeds initial-to-initial pairs.
func NewLTSDynamicMatcher[TP any](scorer score.Scorer[propalg.LTSStateProp, TP], opts ...Option) *DynamicMatcher[propalg.LTSStateProp, TP] {
	m := NewDynamicMatcher[propalg.LTSStateProp, TP](scorer, opts...)
	m.seed = seedInitialPairs[TP]
	return m
}

// seedInitialPairs returns every (LHS initial, RHS initial) pair,
// ascending by LHS id then RHS id, for WalkinshawMatcher's seed hook
// to accept (subject to its own combinability and positive-score
// checks) before the landmark phase begins.
func seedInitialPairs[TP any](lhs, rhs *glts.GLTS[propalg.LTSStateProp, TP]) []pairID {
	var lInitial, rInitial []glts.StateID
	for _, id := range lhs.States() {
		s, _ := lhs.State(id)
		if s.Property.Initial {
			lInitial = append(lInitial, id)
		}
	}
	for _, id := range rhs.States() {
		s, _ := rhs.State(id)
		if s.Property.Initial {
			rInitial = append(rInitial, id)
		}
	}

	pairs := make([]pairID, 0, len(lInitial)*len(rInitial))
	for _, l := range lInitial {
		for _, r := range rInitial {
			pairs = append(pairs, pairID{L: l, R: r})
		}
	}
	return pairs
}
