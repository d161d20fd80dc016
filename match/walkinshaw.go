package match

import (
	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/linalg"
	"github.com/katalvlaran/gltsdiff/score"
)

// WalkinshawMatcher implements the landmark-seeding plus
// neighborhood-expansion heuristic: a small set of mutually dominant
// (LHS, RHS) pairs is accepted first as landmarks, then the matching
// grows outward along common combinable transitions until no
// positive-scoring candidate remains.
type WalkinshawMatcher[SP, TP any] struct {
	scorer score.Scorer[SP, TP]
	opts   Options
	// seed optionally supplies extra pairs to accept before landmark
	// selection runs (the LTS variant's initial-to-initial seeding).
	seed func(lhs, rhs *glts.GLTS[SP, TP]) []pairID
}

// pairID is a candidate (LHS state, RHS state) pair by id.
type pairID struct {
	L, R glts.StateID
}

// NewWalkinshawMatcher builds a WalkinshawMatcher scoring pairs via
// scorer.
func NewWalkinshawMatcher[SP, TP any](scorer score.Scorer[SP, TP], opts ...Option) *WalkinshawMatcher[SP, TP] {
	return &WalkinshawMatcher[SP, TP]{scorer: scorer, opts: buildOptions(opts)}
}

var _ Matcher[struct{}, struct{}] = (*WalkinshawMatcher[struct{}, struct{}])(nil)

// Match runs scoring, landmark seeding, and neighborhood expansion in
// sequence, advancing an internal matcherFSM through each stage.
func (w *WalkinshawMatcher[SP, TP]) Match(lhs, rhs *glts.GLTS[SP, TP]) (Matching, error) {
	if w.scorer == nil {
		return nil, ErrNilScorer
	}
	stateCombiner := lhs.StateCombiner()
	if stateCombiner == nil {
		return nil, ErrNilCombiner
	}
	cache, err := newCombinabilityCache(lhs, rhs, stateCombiner, w.opts.CacheCapacity)
	if err != nil {
		return nil, err
	}

	fsm := &matcherFSM{}

	scores, err := w.scorer.Score(lhs, rhs)
	if err != nil {
		return nil, err
	}
	fsm.advance(stateScored)

	lIdx, rIdx := buildStateIndex(lhs), buildStateIndex(rhs)
	lOut := buildAdjacency[SP, TP](lhs, true)
	rOut := buildAdjacency[SP, TP](rhs, true)
	lIn := buildAdjacency[SP, TP](lhs, false)
	rIn := buildAdjacency[SP, TP](rhs, false)

	matched := make(Matching)
	usedL := make(map[glts.StateID]bool)
	usedR := make(map[glts.StateID]bool)
	accept := func(l, r glts.StateID) {
		matched[l] = r
		usedL[l] = true
		usedR[r] = true
	}

	if w.seed != nil {
		for _, p := range w.seed(lhs, rhs) {
			if usedL[p.L] || usedR[p.R] {
				continue
			}
			li, rj := lIdx.pos[p.L], rIdx.pos[p.R]
			v, _ := scores.At(li, rj)
			if v <= 0 {
				continue
			}
			if !cache.AreCombinable(p.L, p.R) {
				continue
			}
			accept(p.L, p.R)
		}
	}

	w.selectLandmarks(lIdx, rIdx, scores, cache, usedL, usedR, accept)
	fsm.advance(stateSeeded)

	w.expandNeighborhoods(lhs, lIdx, rIdx, scores, cache, lOut, rOut, lIn, rIn, matched, usedL, usedR, accept)
	fsm.advance(stateExpanded)
	fsm.advance(stateFrozen)

	return matched, nil
}

// selectLandmarks is the landmark-seeding stage:
// repeatedly take the global maximum-scoring unmatched combinable
// pair and accept it iff it reaches LandmarkThreshold and dominates
// both its row and column among still-unmatched candidates by at
// least a factor of LandmarkRatio. Stops the moment the current best
// candidate fails either test; weaker candidates are not examined.
func (w *WalkinshawMatcher[SP, TP]) selectLandmarks(
	lIdx, rIdx stateIndex,
	scores *linalg.Dense,
	cache *combinabilityCache[SP, TP],
	usedL, usedR map[glts.StateID]bool,
	accept func(l, r glts.StateID),
) {
	for {
		bestL, bestR := -1, -1
		bestScore := 0.0
		for i, lid := range lIdx.ids {
			if usedL[lid] {
				continue
			}
			for j, rid := range rIdx.ids {
				if usedR[rid] {
					continue
				}
				if !cache.AreCombinable(lid, rid) {
					continue
				}
				v, _ := scores.At(i, j)
				if bestL == -1 || v > bestScore ||
					(v == bestScore && (lid < lIdx.ids[bestL] || (lid == lIdx.ids[bestL] && rid < rIdx.ids[bestR]))) {
					bestL, bestR, bestScore = i, j, v
				}
			}
		}
		if bestL == -1 {
			return
		}
		if bestScore < w.opts.LandmarkThreshold {
			return
		}

		dominates := true
		for j, rid := range rIdx.ids {
			if j == bestR || usedR[rid] {
				continue
			}
			v, _ := scores.At(bestL, j)
			if v >= bestScore*w.opts.LandmarkRatio {
				dominates = false
				break
			}
		}
		if dominates {
			for i, lid := range lIdx.ids {
				if i == bestL || usedL[lid] {
					continue
				}
				v, _ := scores.At(i, bestR)
				if v >= bestScore*w.opts.LandmarkRatio {
					dominates = false
					break
				}
			}
		}
		if !dominates {
			return
		}

		accept(lIdx.ids[bestL], rIdx.ids[bestR])
	}
}

// expandNeighborhoods implements step 3: repeatedly scan every
// currently matched pair's successor and predecessor candidates
// (reached via a shared combinable transition) and accept the
// highest-scoring still-unmatched combinable candidate with a
// positive score, ties broken by ascending (LHS id, RHS id).
func (w *WalkinshawMatcher[SP, TP]) expandNeighborhoods(
	lhs *glts.GLTS[SP, TP],
	lIdx, rIdx stateIndex,
	scores *linalg.Dense,
	cache *combinabilityCache[SP, TP],
	lOut, rOut, lIn, rIn map[glts.StateID][]neighbor[TP],
	matched Matching,
	usedL, usedR map[glts.StateID]bool,
	accept func(l, r glts.StateID),
) {
	transCombiner := lhs.TransitionCombiner()
	if transCombiner == nil {
		return
	}

	for {
		var bestL, bestR glts.StateID
		bestScore := 0.0
		found := false

		consider := func(l, r glts.StateID) {
			if usedL[l] || usedR[r] {
				return
			}
			if !cache.AreCombinable(l, r) {
				return
			}
			v, _ := scores.At(lIdx.pos[l], rIdx.pos[r])
			if v <= 0 {
				return
			}
			if !found || v > bestScore || (v == bestScore && (l < bestL || (l == bestL && r < bestR))) {
				bestL, bestR, bestScore, found = l, r, v, true
			}
		}

		for l, r := range matched {
			for _, le := range lOut[l] {
				for _, re := range rOut[r] {
					if transCombiner.AreCombinable(le.Prop, re.Prop) {
						consider(le.Other, re.Other)
					}
				}
			}
			for _, le := range lIn[l] {
				for _, re := range rIn[r] {
					if transCombiner.AreCombinable(le.Prop, re.Prop) {
						consider(le.Other, re.Other)
					}
				}
			}
		}

		if !found {
			return
		}
		accept(bestL, bestR)
	}
}
