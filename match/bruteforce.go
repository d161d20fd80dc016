package match

import "github.com/katalvlaran/gltsdiff/glts"

// BruteForceMatcher enumerates injective combinable partial mappings
// between small graphs and keeps the one maximizing the number of
// common combinable transitions its mapping preserves, breaking ties
// deterministically by state id. It requires neither a score.Scorer
// nor a scored GLTS — only the combiners already installed on lhs.
//
// Complexity: exponential in min(|states(LHS)|, |states(RHS)|);
// Match returns ErrGraphTooLarge above Options.BruteForceLimit cells
// rather than silently running an impractical search.
type BruteForceMatcher[SP, TP any] struct {
	opts Options
}

// NewBruteForceMatcher builds a BruteForceMatcher with opts applied.
func NewBruteForceMatcher[SP, TP any](opts ...Option) *BruteForceMatcher[SP, TP] {
	return &BruteForceMatcher[SP, TP]{opts: buildOptions(opts)}
}

var _ Matcher[struct{}, struct{}] = (*BruteForceMatcher[struct{}, struct{}])(nil)

// Match performs the exhaustive search described above.
func (b *BruteForceMatcher[SP, TP]) Match(lhs, rhs *glts.GLTS[SP, TP]) (Matching, error) {
	stateCombiner := lhs.StateCombiner()
	transCombiner := lhs.TransitionCombiner()
	if stateCombiner == nil || transCombiner == nil {
		return nil, ErrNilCombiner
	}

	lIDs, rIDs := lhs.States(), rhs.States()
	if len(lIDs)*len(rIDs) > b.opts.BruteForceLimit {
		return nil, ErrGraphTooLarge
	}

	// combinable[i][j] precomputes the state-property combinability
	// predicate once, since the search visits each pair many times.
	combinable := make([][]bool, len(lIDs))
	for i, lid := range lIDs {
		ls, _ := lhs.State(lid)
		row := make([]bool, len(rIDs))
		for j, rid := range rIDs {
			rs, _ := rhs.State(rid)
			row[j] = stateCombiner.AreCombinable(ls.Property, rs.Property)
		}
		combinable[i] = row
	}

	lOut := buildAdjacency[SP, TP](lhs, true)
	rOut := buildAdjacency[SP, TP](rhs, true)

	search := &bruteForceSearch[TP]{
		lIDs: lIDs, rIDs: rIDs,
		combinable: combinable,
		lOut:       lOut, rOut: rOut,
		transCombiner: transCombiner,
		usedR:         make(map[glts.StateID]bool, len(rIDs)),
		current:       make(Matching, len(lIDs)),
	}
	search.recurse(0)
	return search.best, nil
}

type combinableChecker[TP any] interface {
	AreCombinable(a, b TP) bool
}

// bruteForceSearch holds the mutable state of one exhaustive search.
type bruteForceSearch[TP any] struct {
	lIDs, rIDs    []glts.StateID
	combinable    [][]bool
	lOut, rOut    map[glts.StateID][]neighbor[TP]
	transCombiner combinableChecker[TP]

	usedR   map[glts.StateID]bool
	current Matching

	best      Matching
	bestScore int
}

// recurse considers lIDs[i]: first try matching it to every
// still-unused combinable RHS state (ascending id order), then try
// leaving it unmatched, always proceeding to i+1 afterward. Because
// every branch is explored in a fixed deterministic order and the
// incumbent is only replaced on a strictly higher score, ties are
// resolved in favor of whichever matching this fixed order reaches
// first — equivalent to a smallest-state-id tie-break.
func (s *bruteForceSearch[TP]) recurse(i int) {
	if i == len(s.lIDs) {
		score := s.objective()
		if s.best == nil || score > s.bestScore {
			s.best = cloneMatching(s.current)
			s.bestScore = score
		}
		return
	}

	l := s.lIDs[i]
	for j, r := range s.rIDs {
		if !s.combinable[i][j] || s.usedR[r] {
			continue
		}
		s.usedR[r] = true
		s.current[l] = r
		s.recurse(i + 1)
		delete(s.current, l)
		s.usedR[r] = false
	}

	s.recurse(i + 1)
}

// objective counts, over s.current, the LHS outgoing transitions whose
// source and target are both matched and whose RHS counterpart (the
// matched source's outgoing edge to the matched target) carries a
// combinable property.
func (s *bruteForceSearch[TP]) objective() int {
	count := 0
	for l, r := range s.current {
		for _, le := range s.lOut[l] {
			rt, ok := s.current[le.Other]
			if !ok {
				continue
			}
			for _, re := range s.rOut[r] {
				if re.Other == rt && s.transCombiner.AreCombinable(le.Prop, re.Prop) {
					count++
				}
			}
		}
	}
	return count
}

func cloneMatching(m Matching) Matching {
	out := make(Matching, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
