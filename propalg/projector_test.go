package propalg_test

import (
	"testing"

	"github.com/katalvlaran/gltsdiff/propalg"
	"github.com/stretchr/testify/require"
)

// TestDiffKindProjector_Rule covers the three branches of the canonical
// DiffKind projection rule.
func TestDiffKindProjector_Rule(t *testing.T) {
	p := propalg.DiffKindProjector{}

	v, ok := p.Project(propalg.Unchanged, propalg.Added)
	require.True(t, ok)
	require.Equal(t, propalg.Added, v)

	v, ok = p.Project(propalg.Removed, propalg.Removed)
	require.True(t, ok)
	require.Equal(t, propalg.Removed, v)

	_, ok = p.Project(propalg.Added, propalg.Removed)
	require.False(t, ok)
}

// TestSetProjector_Intersection verifies a projected set is the
// intersection with the along set, absent when empty.
func TestSetProjector_Intersection(t *testing.T) {
	p := propalg.SetProjector[string]{}
	a := map[string]struct{}{"x": {}, "y": {}}
	along := map[string]struct{}{"y": {}, "z": {}}

	out, ok := p.Project(a, along)
	require.True(t, ok)
	require.Equal(t, map[string]struct{}{"y": {}}, out)

	_, ok = p.Project(a, map[string]struct{}{"z": {}})
	require.False(t, ok)
}

// TestAutomatonStatePropertyProjector_ProjectLeftRight exercises the
// projectLeft/projectRight style invariant: projecting a DiffAutomaton
// state along Removed should recover the left-hand AutomatonStateProp,
// and along Added should recover the right-hand one.
func TestAutomatonStatePropertyProjector_ProjectLeftRight(t *testing.T) {
	p := propalg.AutomatonStatePropertyProjector{}
	prop := propalg.DiffAutomatonStateProp{
		Kind:        propalg.Unchanged,
		HasInitial:  true,
		InitialKind: propalg.Removed,
		Accepting:   true,
	}

	left, ok := p.Project(prop, propalg.Removed)
	require.True(t, ok)
	require.Equal(t, propalg.AutomatonStateProp{Initial: true, Accepting: true}, left)

	right, ok := p.Project(prop, propalg.Added)
	require.True(t, ok)
	require.Equal(t, propalg.AutomatonStateProp{Initial: false, Accepting: true}, right)
}

// TestAutomatonStatePropertyProjector_EliminatedWhenKindDisjoint verifies a
// state removed on one side is absent from the other side's projection.
func TestAutomatonStatePropertyProjector_EliminatedWhenKindDisjoint(t *testing.T) {
	p := propalg.AutomatonStatePropertyProjector{}
	prop := propalg.DiffAutomatonStateProp{Kind: propalg.Removed, Accepting: false}

	_, ok := p.Project(prop, propalg.Added)
	require.False(t, ok)
}

// TestSubtypeProjector_NarrowEliminates verifies predicate-failing
// properties are eliminated outright, without delegating to Base.
func TestSubtypeProjector_NarrowEliminates(t *testing.T) {
	s := propalg.SubtypeProjector[int, int]{
		Base:   propalg.IdentityProjector[int, int]{},
		Narrow: func(v int) bool { return v > 0 },
	}
	_, ok := s.Project(-1, 0)
	require.False(t, ok)

	v, ok := s.Project(5, 0)
	require.True(t, ok)
	require.Equal(t, 5, v)
}
