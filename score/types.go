package score

import (
	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/linalg"
)

// Scorer produces a dense |L|x|R| similarity matrix between the
// states of lhs and rhs, indexed by each GLTS's own ascending state
// order (see glts.GLTS.States).
type Scorer[SP, TP any] interface {
	Score(lhs, rhs *glts.GLTS[SP, TP]) (*linalg.Dense, error)
}

// bonusFunc optionally adds extra numerator/denominator contributions
// to the backward score of a (li, rj) pair, the hook LTSScorer uses
// for the initial-state bonus.
type bonusFunc func(li, rj int) (numBonus, denBonus float64)

func noBonus(int, int) (float64, float64) { return 0, 0 }
