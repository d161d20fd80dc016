package propalg_test

import (
	"testing"

	"github.com/katalvlaran/gltsdiff/propalg"
	"github.com/stretchr/testify/require"
)

// TestInclusion_SetContainment verifies a ≤ b ⇔ Combine(a,b) == b for
// set-valued properties, where ≤ should coincide with subset.
func TestInclusion_SetContainment(t *testing.T) {
	inc := propalg.Inclusion[map[string]struct{}]{
		C: propalg.SetCombiner[string]{},
		Eq: func(a, b map[string]struct{}) bool {
			if len(a) != len(b) {
				return false
			}
			for k := range a {
				if _, ok := b[k]; !ok {
					return false
				}
			}
			return true
		},
	}

	sub := map[string]struct{}{"x": {}}
	sup := map[string]struct{}{"x": {}, "y": {}}

	ok, err := inc.IsIncludedIn(sub, sup)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = inc.IsIncludedIn(sup, sub)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestInclusion_NotCombinableMeansNotIncluded verifies that pairs the
// Combiner rejects outright report no inclusion, rather than erroring.
func TestInclusion_NotCombinableMeansNotIncluded(t *testing.T) {
	inc := propalg.Inclusion[string]{
		C:  propalg.EqualityCombiner[string]{},
		Eq: func(a, b string) bool { return a == b },
	}

	ok, err := inc.IsIncludedIn("a", "b")
	require.NoError(t, err)
	require.False(t, ok)
}

// TestInclusion_NilComponents verifies nil C or Eq is rejected explicitly.
func TestInclusion_NilComponents(t *testing.T) {
	inc := propalg.Inclusion[string]{}
	_, err := inc.IsIncludedIn("a", "a")
	require.ErrorIs(t, err, propalg.ErrNilComponent)
}
