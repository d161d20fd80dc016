package score_test

import (
	"testing"

	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/propalg"
	"github.com/katalvlaran/gltsdiff/score"
	"github.com/stretchr/testify/require"
)

// chainAB builds a 2-state automaton with a single transition a->b
// labelled "x"; a is accepting, b is not, so only (a,a) and (b,b)
// pairs are combinable across two such automata.
func chainAB(t *testing.T) *glts.GLTS[propalg.AutomatonStateProp, string] {
	t.Helper()
	g := glts.New[propalg.AutomatonStateProp, string](
		glts.WithStateCombiner[propalg.AutomatonStateProp, string](propalg.AutomatonStateCombiner{}),
		glts.WithTransitionCombiner[propalg.AutomatonStateProp, string](propalg.EqualityCombiner[string]{}),
	)
	require.NoError(t, g.AddState("a", propalg.AutomatonStateProp{Accepting: true}))
	require.NoError(t, g.AddState("b", propalg.AutomatonStateProp{Accepting: false}))
	_, err := g.AddTransition("a", "b", "x")
	require.NoError(t, err)
	return g
}

// TestGlobalScorer_TwoStateChainSolvesExactFixpoint exercises the
// linear solve end to end on a small, hand-verified system: forward
// and backward score 0.625 on opposite diagonal entries, averaging to
// 0.3125 on both, with all off-diagonal (non-combinable) entries zero.
func TestGlobalScorer_TwoStateChainSolvesExactFixpoint(t *testing.T) {
	lhs, rhs := chainAB(t), chainAB(t)

	s := score.NewGlobalScorer[propalg.AutomatonStateProp, string]()
	m, err := s.Score(lhs, rhs)
	require.NoError(t, err)

	aa, err := m.At(0, 0)
	require.NoError(t, err)
	require.InDelta(t, 0.3125, aa, 1e-9)

	bb, err := m.At(1, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.3125, bb, 1e-9)

	ab, err := m.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, ab)

	ba, err := m.At(1, 0)
	require.NoError(t, err)
	require.Zero(t, ba)
}

// TestGlobalScorer_IsolatedCombinableStateIsIllConditioned verifies
// that a wholly disconnected combinable pair (zero degree on both
// sides) yields a singular system, surfaced as ErrIllConditioned so
// DynamicScorer can fall back to LocalScorer.
func TestGlobalScorer_IsolatedCombinableStateIsIllConditioned(t *testing.T) {
	lhs := glts.New[propalg.AutomatonStateProp, string](
		glts.WithStateCombiner[propalg.AutomatonStateProp, string](propalg.AutomatonStateCombiner{}),
		glts.WithTransitionCombiner[propalg.AutomatonStateProp, string](propalg.EqualityCombiner[string]{}),
	)
	rhs := glts.New[propalg.AutomatonStateProp, string](
		glts.WithStateCombiner[propalg.AutomatonStateProp, string](propalg.AutomatonStateCombiner{}),
		glts.WithTransitionCombiner[propalg.AutomatonStateProp, string](propalg.EqualityCombiner[string]{}),
	)
	require.NoError(t, lhs.AddState("l0", propalg.AutomatonStateProp{}))
	require.NoError(t, rhs.AddState("r0", propalg.AutomatonStateProp{}))

	_, err := score.NewGlobalScorer[propalg.AutomatonStateProp, string]().Score(lhs, rhs)
	require.ErrorIs(t, err, score.ErrIllConditioned)

	// DynamicScorer must recover by falling back to LocalScorer.
	m, err := score.NewDynamicScorer[propalg.AutomatonStateProp, string]().Score(lhs, rhs)
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)
}
