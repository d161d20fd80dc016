package score

import (
	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/linalg"
	"github.com/katalvlaran/gltsdiff/propalg"
)

// LocalScorer implements Walkinshaw's iterative fixpoint refinement:
// forward and backward similarity matrices are each relaxed over a
// fixed number of Jacobi rounds, then averaged.
type LocalScorer[SP, TP any] struct {
	opts Options
}

// NewLocalScorer builds a LocalScorer with the given options applied
// over the package defaults (Attenuation 0.6, Refinements 5).
func NewLocalScorer[SP, TP any](opts ...Option) *LocalScorer[SP, TP] {
	return &LocalScorer[SP, TP]{opts: buildOptions(opts)}
}

var _ Scorer[struct{}, struct{}] = (*LocalScorer[struct{}, struct{}])(nil)

// Score computes the averaged forward/backward similarity matrix.
func (s *LocalScorer[SP, TP]) Score(lhs, rhs *glts.GLTS[SP, TP]) (*linalg.Dense, error) {
	return localScore(lhs, rhs, s.opts, noBonus)
}

// localScore is the shared implementation behind LocalScorer and
// LTSScorer (which supplies a non-trivial backward bonus function).
func localScore[SP, TP any](lhs, rhs *glts.GLTS[SP, TP], opts Options, backwardBonus bonusFunc) (*linalg.Dense, error) {
	stateCombiner := lhs.StateCombiner()
	transCombiner := lhs.TransitionCombiner()
	if stateCombiner == nil || transCombiner == nil {
		return nil, ErrNilCombiner
	}

	lIdx, rIdx := buildStateIndex(lhs), buildStateIndex(rhs)
	n, m := len(lIdx.ids), len(rIdx.ids)

	lOut := buildAdjacency[SP, TP](lhs, lIdx, true)
	rOut := buildAdjacency[SP, TP](rhs, rIdx, true)
	lIn := buildAdjacency[SP, TP](lhs, lIdx, false)
	rIn := buildAdjacency[SP, TP](rhs, rIdx, false)

	combinable, err := combinableMatrix(lhs, rhs, lIdx, rIdx, stateCombiner)
	if err != nil {
		return nil, err
	}

	forward := refine(n, m, lOut, rOut, lOut, rOut, lIn, rIn, combinable, transCombiner, opts, noBonus)
	backward := refine(n, m, lIn, rIn, lOut, rOut, lIn, rIn, combinable, transCombiner, opts, backwardBonus)

	out, err := linalg.NewDense(n, m)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if err := out.Set(i, j, (forward[i][j]+backward[i][j])/2); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// combinableMatrix precomputes stateCombiner.AreCombinable for every
// (l, r) pair, so the refinement rounds (and the linear-system
// assembly) index a plain bool matrix instead of re-evaluating the
// predicate.
func combinableMatrix[SP, TP any](lhs, rhs *glts.GLTS[SP, TP], lIdx, rIdx stateIndex, stateCombiner propalg.Combiner[SP]) ([][]bool, error) {
	combinable := make([][]bool, len(lIdx.ids))
	for i, lid := range lIdx.ids {
		ls, err := lhs.State(lid)
		if err != nil {
			return nil, err
		}
		row := make([]bool, len(rIdx.ids))
		for j, rid := range rIdx.ids {
			rs, err := rhs.State(rid)
			if err != nil {
				return nil, err
			}
			row[j] = stateCombiner.AreCombinable(ls.Property, rs.Property)
		}
		combinable[i] = row
	}
	return combinable, nil
}

// refine runs Options.Refinements Jacobi rounds of the fixpoint
// S[l,r] = (num + α·Σ S[l',r']) / (den + α·max(outDegSum, inDegSum))
// where primaryL/primaryR supply M(l,r) and den (outgoing adjacency
// for the forward pass, incoming for the backward pass), while
// outL/outR and inL/inR always supply the degree sums for the
// attenuation term regardless of direction.
func refine[TP any](
	n, m int,
	primaryL, primaryR [][]edgeRef[TP],
	outL, outR [][]edgeRef[TP],
	inL, inR [][]edgeRef[TP],
	combinable [][]bool,
	transCombiner propalg.Combiner[TP],
	opts Options,
	bonus bonusFunc,
) [][]float64 {
	s := make([][]float64, n)
	for i := range s {
		s[i] = make([]float64, m)
	}

	for round := 0; round < opts.Refinements; round++ {
		next := make([][]float64, n)
		for i := range next {
			next[i] = make([]float64, m)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < m; j++ {
				if !combinable[i][j] {
					continue
				}
				pairs := commonPairs(primaryL[i], primaryR[j], transCombiner)
				numBonus, denBonus := bonus(i, j)
				num := 2*float64(len(pairs)) + numBonus
				den := float64(len(primaryL[i])+len(primaryR[j])) + denBonus

				var accum float64
				for _, p := range pairs {
					accum += s[p.L][p.R]
				}

				maxTerm := float64(len(outL[i]) + len(outR[j]))
				if inTerm := float64(len(inL[i]) + len(inR[j])); inTerm > maxTerm {
					maxTerm = inTerm
				}

				denom := den + opts.Attenuation*maxTerm
				if denom > 0 {
					next[i][j] = (num + opts.Attenuation*accum) / denom
				}
			}
		}
		s = next
	}
	return s
}
