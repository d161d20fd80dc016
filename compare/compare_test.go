package compare_test

import (
	"testing"

	"github.com/katalvlaran/gltsdiff/compare"
	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/propalg"
	"github.com/stretchr/testify/require"
)

// cycle builds an n-state cycle automaton s0->s1->...->s(n-1)->s0
// labelled with labels[i] on the edge leaving si; all states
// accepting, s0 initial.
func cycle(t *testing.T, labels []string) *glts.Automaton[string] {
	t.Helper()
	a := glts.NewAutomaton[string](propalg.EqualityCombiner[string]{})
	n := len(labels)
	for i := 0; i < n; i++ {
		id := glts.StateID(string(rune('a' + i)))
		require.NoError(t, a.AddState(id, propalg.AutomatonStateProp{Initial: i == 0, Accepting: true}))
	}
	for i := 0; i < n; i++ {
		from := glts.StateID(string(rune('a' + i)))
		to := glts.StateID(string(rune('a' + (i+1)%n)))
		_, err := a.AddTransition(from, to, labels[i])
		require.NoError(t, err)
	}
	return a
}

// TestCompare_TwoVsThreeCycle runs the full score->match->merge
// pipeline on the 2-vs-3-cycle fixture and checks the merged graph's
// shape rather than re-asserting the matcher's own internal behavior.
func TestCompare_TwoVsThreeCycle(t *testing.T) {
	lhs := cycle(t, []string{"e1", "e2"})
	rhs := cycle(t, []string{"e1", "e2", "e3"})

	result, err := compare.Compare[propalg.AutomatonStateProp, string](
		lhs.GLTS, rhs.GLTS,
		compare.WithScorerKind[propalg.AutomatonStateProp, string](compare.ScorerWalkinshawGlobal),
		compare.WithMatcherKind[propalg.AutomatonStateProp, string](compare.MatcherKuhnMunkres),
	)
	require.NoError(t, err)
	require.Len(t, result.Matching, 2)
	// 2 matched states collapse to 2 merged states, plus 1 unmatched
	// RHS state copied over: 3 total.
	require.Len(t, result.Merged.States(), 3)
	require.NotEqual(t, result.RunID.String(), "")
}

// TestCompareAll_FoldsPairwiseLeftToRight verifies a three-input fold
// succeeds and produces a merged graph rooted in the first two inputs.
func TestCompareAll_FoldsPairwiseLeftToRight(t *testing.T) {
	g1 := cycle(t, []string{"e1", "e2"})
	g2 := cycle(t, []string{"e1", "e2"})
	g3 := cycle(t, []string{"e1", "e2"})

	result, err := compare.CompareAll[propalg.AutomatonStateProp, string](
		[]*glts.GLTS[propalg.AutomatonStateProp, string]{g1.GLTS, g2.GLTS, g3.GLTS},
	)
	require.NoError(t, err)
	require.NotNil(t, result.Merged)
}

// TestCompareAll_RejectsFewerThanTwoInputs verifies the ErrInvalidArgument
// fail-fast precondition.
func TestCompareAll_RejectsFewerThanTwoInputs(t *testing.T) {
	g1 := cycle(t, []string{"e1"})
	_, err := compare.CompareAll[propalg.AutomatonStateProp, string](
		[]*glts.GLTS[propalg.AutomatonStateProp, string]{g1.GLTS},
	)
	require.ErrorIs(t, err, compare.ErrInvalidArgument)
}
