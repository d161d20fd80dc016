package score

import (
	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/linalg"
)

// PrecomputedScorer adapts an already-computed score matrix to the
// Scorer interface. A caller that needs the matrix itself and a
// scored matcher (which pulls its matrix through a Scorer) can share
// one Score computation instead of solving the same system twice —
// compare.Compare is the canonical such caller.
type PrecomputedScorer[SP, TP any] struct {
	m *linalg.Dense
}

// NewPrecomputedScorer wraps m as a Scorer.
func NewPrecomputedScorer[SP, TP any](m *linalg.Dense) *PrecomputedScorer[SP, TP] {
	return &PrecomputedScorer[SP, TP]{m: m}
}

var _ Scorer[struct{}, struct{}] = (*PrecomputedScorer[struct{}, struct{}])(nil)

// Score returns the wrapped matrix after checking its shape against
// the inputs' state counts, so a matrix computed for one graph pair
// cannot silently be served for another of a different size.
func (p *PrecomputedScorer[SP, TP]) Score(lhs, rhs *glts.GLTS[SP, TP]) (*linalg.Dense, error) {
	if p.m == nil || p.m.Rows() != lhs.StateCount() || p.m.Cols() != rhs.StateCount() {
		return nil, ErrShapeMismatch
	}
	return p.m, nil
}
