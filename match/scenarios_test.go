package match_test

import (
	"testing"

	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/match"
	"github.com/katalvlaran/gltsdiff/propalg"
	"github.com/katalvlaran/gltsdiff/score"
	"github.com/stretchr/testify/require"
)

// tosemFig3 builds a 3-vs-2-state LTS pair over the alphabet
// {a,b,c,d} in the shape of Walkinshaw & Bogdanov's TOSEM 2013
// comparison example: the LHS loops a<->b with a dead-end branch into
// c, the RHS carries only the a/b loop. States a and e are initial.
func tosemFig3(t *testing.T) (*glts.LTS[string], *glts.LTS[string]) {
	t.Helper()

	lhs := glts.NewLTS[string](propalg.EqualityCombiner[string]{})
	require.NoError(t, lhs.AddState("a", propalg.LTSStateProp{Initial: true}))
	require.NoError(t, lhs.AddState("b", propalg.LTSStateProp{}))
	require.NoError(t, lhs.AddState("c", propalg.LTSStateProp{}))
	for _, e := range []struct {
		from, to glts.StateID
		label    string
	}{
		{"a", "b", "a"},
		{"b", "a", "b"},
		{"b", "c", "c"},
		{"c", "c", "d"},
	} {
		_, err := lhs.AddTransition(e.from, e.to, e.label)
		require.NoError(t, err)
	}

	rhs := glts.NewLTS[string](propalg.EqualityCombiner[string]{})
	require.NoError(t, rhs.AddState("e", propalg.LTSStateProp{Initial: true}))
	require.NoError(t, rhs.AddState("f", propalg.LTSStateProp{}))
	for _, e := range []struct {
		from, to glts.StateID
		label    string
	}{
		{"e", "f", "a"},
		{"f", "e", "b"},
	} {
		_, err := rhs.AddTransition(e.from, e.to, e.label)
		require.NoError(t, err)
	}

	return lhs, rhs
}

// TestKuhnMunkres_TosemFig3 matches the 3-state LHS against the
// 2-state RHS: the result must pair a<->e and b<->f and leave c
// unmatched, since c shares no transition label context with either
// RHS state.
func TestKuhnMunkres_TosemFig3(t *testing.T) {
	lhs, rhs := tosemFig3(t)

	s := score.NewLTSScorer[string](score.LTSModeGlobal)
	m := match.NewKuhnMunkresMatcher[propalg.LTSStateProp, string](s)
	matching, err := m.Match(lhs.GLTS, rhs.GLTS)
	require.NoError(t, err)
	require.Equal(t, match.Matching{"a": "e", "b": "f"}, matching)
}

// textEditorFig1 builds the running text-editor example: the LHS is a
// 4-state load/edit/save/exit cycle; the RHS is the same cycle with an
// extra view-mode state G branching off F. All states accepting, A/E
// initial.
func textEditorFig1(t *testing.T) (*glts.Automaton[string], *glts.Automaton[string]) {
	t.Helper()

	lhs := glts.NewAutomaton[string](propalg.EqualityCombiner[string]{})
	for _, id := range []glts.StateID{"A", "B", "C", "D"} {
		require.NoError(t, lhs.AddState(id, propalg.AutomatonStateProp{Initial: id == "A", Accepting: true}))
	}
	for _, e := range []struct {
		from, to glts.StateID
		label    string
	}{
		{"A", "B", "load"},
		{"B", "C", "edit"},
		{"C", "D", "save"},
		{"D", "A", "exit"},
	} {
		_, err := lhs.AddTransition(e.from, e.to, e.label)
		require.NoError(t, err)
	}

	rhs := glts.NewAutomaton[string](propalg.EqualityCombiner[string]{})
	for _, id := range []glts.StateID{"E", "F", "G", "H", "I"} {
		require.NoError(t, rhs.AddState(id, propalg.AutomatonStateProp{Initial: id == "E", Accepting: true}))
	}
	for _, e := range []struct {
		from, to glts.StateID
		label    string
	}{
		{"E", "F", "load"},
		{"F", "H", "edit"},
		{"H", "I", "save"},
		{"I", "E", "exit"},
		{"F", "G", "view"},
		{"G", "H", "edit"},
	} {
		_, err := rhs.AddTransition(e.from, e.to, e.label)
		require.NoError(t, err)
	}

	return lhs, rhs
}

// TestKuhnMunkres_TextEditor: the 4-state editor must map onto the
// corresponding states of the 5-state editor (A<->E, B<->F, C<->H,
// D<->I), leaving the RHS-only view-mode state G unmatched.
func TestKuhnMunkres_TextEditor(t *testing.T) {
	lhs, rhs := textEditorFig1(t)

	s := score.NewGlobalScorer[propalg.AutomatonStateProp, string]()
	m := match.NewKuhnMunkresMatcher[propalg.AutomatonStateProp, string](s)
	matching, err := m.Match(lhs.GLTS, rhs.GLTS)
	require.NoError(t, err)
	require.Equal(t, match.Matching{"A": "E", "B": "F", "C": "H", "D": "I"}, matching)
}

// TestWalkinshaw_TextEditor runs the heuristic matcher over the same
// fixture. With the landmark threshold lowered enough for the cycle's
// mutually-dominant pairs to seed, neighborhood expansion must recover
// the same size-4 matching the assignment matcher finds.
func TestWalkinshaw_TextEditor(t *testing.T) {
	lhs, rhs := textEditorFig1(t)

	s := score.NewGlobalScorer[propalg.AutomatonStateProp, string]()
	m := match.NewWalkinshawMatcher[propalg.AutomatonStateProp, string](s, match.WithLandmarkThreshold(0.3))
	matching, err := m.Match(lhs.GLTS, rhs.GLTS)
	require.NoError(t, err)
	require.Equal(t, match.Matching{"A": "E", "B": "F", "C": "H", "D": "I"}, matching)
}
