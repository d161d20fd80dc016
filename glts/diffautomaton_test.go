package glts_test

import (
	"testing"

	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/match"
	"github.com/katalvlaran/gltsdiff/merge"
	"github.com/katalvlaran/gltsdiff/propalg"
	"github.com/stretchr/testify/require"
)

func TestValidateDiffAutomatonNesting_AcceptsUnchangedStateAnyTransitionKind(t *testing.T) {
	d := glts.NewDiffAutomaton[string](propalg.EqualityCombiner[string]{})
	require.NoError(t, d.AddState("s1", propalg.DiffAutomatonStateProp{Kind: propalg.Unchanged}))
	require.NoError(t, d.AddState("s2", propalg.DiffAutomatonStateProp{Kind: propalg.Unchanged}))
	_, err := d.AddTransition("s1", "s2", propalg.DiffProperty[string]{Inner: "a", Kind: propalg.Added})
	require.NoError(t, err)

	require.NoError(t, glts.ValidateDiffAutomatonNesting(d))
}

// TestValidateDiffAutomatonNesting_RejectsIncompatibleKind exercises the
// nesting-invariant hook wired in by NewDiffAutomaton: a REMOVED state
// may not be the endpoint of an ADDED transition, so AddTransition
// itself must reject the mutation before it ever reaches the graph.
func TestValidateDiffAutomatonNesting_RejectsIncompatibleKind(t *testing.T) {
	d := glts.NewDiffAutomaton[string](propalg.EqualityCombiner[string]{})
	require.NoError(t, d.AddState("s1", propalg.DiffAutomatonStateProp{Kind: propalg.Removed}))
	require.NoError(t, d.AddState("s2", propalg.DiffAutomatonStateProp{Kind: propalg.Unchanged}))

	_, err := d.AddTransition("s1", "s2", propalg.DiffProperty[string]{Inner: "a", Kind: propalg.Added})
	require.ErrorIs(t, err, glts.ErrNestingViolation)
	require.Equal(t, 0, d.TransitionCount())
}

// TestValidateDiffAutomatonNesting_RejectsUnchangedTransitionOnNonUnchangedState
// covers the specific regression compatibleKind used to have: a
// non-UNCHANGED state (here REMOVED) may only be incident to
// transitions of its own exact kind, never to an UNCHANGED one, since
// an UNCHANGED transition exists on both sides while a REMOVED state
// exists only on the LHS. The graph is assembled directly on the
// embedded GLTS (bypassing NewDiffAutomaton's invariant hook) so
// ValidateDiffAutomatonNesting itself is what is put under test.
func TestValidateDiffAutomatonNesting_RejectsUnchangedTransitionOnNonUnchangedState(t *testing.T) {
	raw := glts.New[propalg.DiffAutomatonStateProp, propalg.DiffProperty[string]](
		glts.WithStateCombiner[propalg.DiffAutomatonStateProp, propalg.DiffProperty[string]](propalg.DiffAutomatonStateCombiner{}),
		glts.WithTransitionCombiner[propalg.DiffAutomatonStateProp, propalg.DiffProperty[string]](
			propalg.DiffPropertyCombiner[string]{Inner: propalg.EqualityCombiner[string]{}},
		),
	)
	d := &glts.DiffAutomaton[string]{GLTS: raw}
	require.NoError(t, d.AddState("s1", propalg.DiffAutomatonStateProp{Kind: propalg.Removed}))
	require.NoError(t, d.AddState("s2", propalg.DiffAutomatonStateProp{Kind: propalg.Unchanged}))
	_, err := d.AddTransition("s1", "s2", propalg.DiffProperty[string]{Inner: "a", Kind: propalg.Unchanged})
	require.NoError(t, err)

	require.ErrorIs(t, glts.ValidateDiffAutomatonNesting(d), glts.ErrNestingViolation)
}

// TestProjectDiffAutomaton_RecoversLeftAndRightSidesFromAutomaton:
// starting from two plain Automatons,
// converting each via FromAutomaton (REMOVED for the LHS, ADDED for
// the RHS) and merging under a matching recovers each original side by
// projecting the merged DiffAutomaton back along its tag.
func TestProjectDiffAutomaton_RecoversLeftAndRightSidesFromAutomaton(t *testing.T) {
	lhs := glts.NewAutomaton[string](propalg.EqualityCombiner[string]{})
	require.NoError(t, lhs.AddState("s1", propalg.AutomatonStateProp{Initial: true}))
	require.NoError(t, lhs.AddState("s2", propalg.AutomatonStateProp{Accepting: true}))
	_, err := lhs.AddTransition("s1", "s2", "a")
	require.NoError(t, err)

	rhs := glts.NewAutomaton[string](propalg.EqualityCombiner[string]{})
	require.NoError(t, rhs.AddState("s2", propalg.AutomatonStateProp{Accepting: true}))

	lhsDiff := glts.FromAutomaton[string](lhs, propalg.Removed, propalg.EqualityCombiner[string]{})
	rhsDiff := glts.FromAutomaton[string](rhs, propalg.Added, propalg.EqualityCombiner[string]{})

	merged, err := merge.MergeDiffAutomaton[string](lhsDiff, rhsDiff, match.Matching{"s2": "s2"}, propalg.EqualityCombiner[string]{})
	require.NoError(t, err)

	left := glts.ProjectDiffAutomaton[string](merged, propalg.Removed, propalg.EqualityCombiner[string]{})
	require.ElementsMatch(t, []glts.StateID{"L:s1", "L:s2"}, left.States())
	require.Equal(t, 1, left.TransitionCount())

	right := glts.ProjectDiffAutomaton[string](merged, propalg.Added, propalg.EqualityCombiner[string]{})
	require.ElementsMatch(t, []glts.StateID{"L:s2"}, right.States())
	require.Equal(t, 0, right.TransitionCount())
}
