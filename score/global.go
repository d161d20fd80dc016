package score

import (
	"errors"

	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/linalg"
	"github.com/katalvlaran/gltsdiff/propalg"
)

// GlobalScorer solves the Walkinshaw fixpoint S = (N + α·A·S·Bᵀ)/D
// exactly, as one dense linear system per direction (forward,
// backward), rather than approximating it with a fixed number of
// Jacobi rounds.
type GlobalScorer[SP, TP any] struct {
	opts Options
}

// NewGlobalScorer builds a GlobalScorer with the given options applied.
func NewGlobalScorer[SP, TP any](opts ...Option) *GlobalScorer[SP, TP] {
	return &GlobalScorer[SP, TP]{opts: buildOptions(opts)}
}

var _ Scorer[struct{}, struct{}] = (*GlobalScorer[struct{}, struct{}])(nil)

// Score solves the forward and backward linear systems and averages
// the results.
func (s *GlobalScorer[SP, TP]) Score(lhs, rhs *glts.GLTS[SP, TP]) (*linalg.Dense, error) {
	return globalScore(lhs, rhs, s.opts, noBonus)
}

func globalScore[SP, TP any](lhs, rhs *glts.GLTS[SP, TP], opts Options, backwardBonus bonusFunc) (*linalg.Dense, error) {
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

	forward, err := solveDirection(n, m, lOut, rOut, lOut, rOut, lIn, rIn, combinable, transCombiner, opts, noBonus)
	if err != nil {
		return nil, err
	}
	backward, err := solveDirection(n, m, lIn, rIn, lOut, rOut, lIn, rIn, combinable, transCombiner, opts, backwardBonus)
	if err != nil {
		return nil, err
	}

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

// solveDirection builds and solves the exact linear system for one
// direction (forward or backward) of the fixpoint, mirroring refine's
// per-pair coefficients but as a single simultaneous solve instead of
// a bounded number of Jacobi rounds.
func solveDirection[TP any](
	n, m int,
	primaryL, primaryR [][]edgeRef[TP],
	outL, outR [][]edgeRef[TP],
	inL, inR [][]edgeRef[TP],
	combinable [][]bool,
	transCombiner propalg.Combiner[TP],
	opts Options,
	bonus bonusFunc,
) ([][]float64, error) {
	// varIndex maps a combinable (i,j) pair to its unknown's position
	// in the flattened system.
	varIndex := make(map[pair]int)
	var vars []pair
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if combinable[i][j] {
				varIndex[pair{i, j}] = len(vars)
				vars = append(vars, pair{i, j})
			}
		}
	}

	k := len(vars)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, m)
	}
	if k == 0 {
		return out, nil
	}

	a, err := linalg.NewDense(k, k)
	if err != nil {
		return nil, err
	}
	b := make([]float64, k)

	for row, p := range vars {
		i, j := p.L, p.R
		pairs := commonPairs(primaryL[i], primaryR[j], transCombiner)
		numBonus, denBonus := bonus(i, j)
		num := 2*float64(len(pairs)) + numBonus
		den := float64(len(primaryL[i])+len(primaryR[j])) + denBonus

		maxTerm := float64(len(outL[i]) + len(outR[j]))
		if inTerm := float64(len(inL[i]) + len(inR[j])); inTerm > maxTerm {
			maxTerm = inTerm
		}

		diag := den + opts.Attenuation*maxTerm
		if err := a.Set(row, row, diag); err != nil {
			return nil, err
		}
		b[row] = num

		for _, succ := range pairs {
			col, ok := varIndex[pair{succ.L, succ.R}]
			if !ok {
				continue // successor pair not combinable: contributes 0
			}
			if col == row {
				// Fold self-reference into the diagonal so the system
				// stays solvable instead of silently double counting it.
				cur, _ := a.At(row, row)
				if err := a.Set(row, row, cur-opts.Attenuation); err != nil {
					return nil, err
				}
				continue
			}
			cur, _ := a.At(row, col)
			if err := a.Set(row, col, cur-opts.Attenuation); err != nil {
				return nil, err
			}
		}
	}

	x, err := linalg.Solve(a, b)
	if err != nil {
		if errors.Is(err, linalg.ErrSingular) {
			return nil, ErrIllConditioned
		}
		return nil, err
	}

	for idx, p := range vars {
		out[p.L][p.R] = x[idx]
	}
	return out, nil
}
