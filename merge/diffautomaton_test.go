package merge_test

import (
	"testing"

	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/match"
	"github.com/katalvlaran/gltsdiff/merge"
	"github.com/katalvlaran/gltsdiff/propalg"
	"github.com/stretchr/testify/require"
)

// TestMergeDiffAutomaton_ValidatesNestingOnResult verifies a merge of
// two well-formed DiffAutomatons produces a nesting-valid result.
func TestMergeDiffAutomaton_ValidatesNestingOnResult(t *testing.T) {
	lhs := glts.NewDiffAutomaton[string](propalg.EqualityCombiner[string]{})
	require.NoError(t, lhs.AddState("s1", propalg.DiffAutomatonStateProp{Kind: propalg.Unchanged}))
	require.NoError(t, lhs.AddState("s2", propalg.DiffAutomatonStateProp{Kind: propalg.Unchanged}))
	_, err := lhs.AddTransition("s1", "s2", propalg.DiffProperty[string]{Inner: "a", Kind: propalg.Unchanged})
	require.NoError(t, err)

	rhs := glts.NewDiffAutomaton[string](propalg.EqualityCombiner[string]{})
	require.NoError(t, rhs.AddState("s1", propalg.DiffAutomatonStateProp{Kind: propalg.Unchanged}))
	require.NoError(t, rhs.AddState("s2", propalg.DiffAutomatonStateProp{Kind: propalg.Unchanged}))
	_, err = rhs.AddTransition("s1", "s2", propalg.DiffProperty[string]{Inner: "a", Kind: propalg.Unchanged})
	require.NoError(t, err)

	matching := match.Matching{"s1": "s1", "s2": "s2"}
	result, err := merge.MergeDiffAutomaton[string](lhs, rhs, matching, propalg.EqualityCombiner[string]{})
	require.NoError(t, err)
	require.Len(t, result.States(), 2)
	require.NoError(t, glts.ValidateDiffAutomatonNesting(result))
}
