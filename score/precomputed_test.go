package score_test

import (
	"testing"

	"github.com/katalvlaran/gltsdiff/linalg"
	"github.com/katalvlaran/gltsdiff/propalg"
	"github.com/katalvlaran/gltsdiff/score"
	"github.com/stretchr/testify/require"
)

// TestPrecomputedScorer_ReturnsWrappedMatrix verifies the adapter
// hands back exactly the matrix it was built with when the shape
// matches the inputs.
func TestPrecomputedScorer_ReturnsWrappedMatrix(t *testing.T) {
	lhs := twoStateCycle(t, [2]string{"e1", "e2"})
	rhs := twoStateCycle(t, [2]string{"e1", "e2"})

	m, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 0.5))

	p := score.NewPrecomputedScorer[propalg.AutomatonStateProp, string](m)
	out, err := p.Score(lhs.GLTS, rhs.GLTS)
	require.NoError(t, err)
	require.Same(t, m, out)
}

// TestPrecomputedScorer_RejectsShapeMismatch verifies a matrix
// computed for a differently-sized pair is refused rather than
// silently served.
func TestPrecomputedScorer_RejectsShapeMismatch(t *testing.T) {
	lhs := twoStateCycle(t, [2]string{"e1", "e2"})
	rhs := twoStateCycle(t, [2]string{"e1", "e2"})

	m, err := linalg.NewDense(3, 3)
	require.NoError(t, err)

	p := score.NewPrecomputedScorer[propalg.AutomatonStateProp, string](m)
	_, err = p.Score(lhs.GLTS, rhs.GLTS)
	require.ErrorIs(t, err, score.ErrShapeMismatch)

	_, err = score.NewPrecomputedScorer[propalg.AutomatonStateProp, string](nil).Score(lhs.GLTS, rhs.GLTS)
	require.ErrorIs(t, err, score.ErrShapeMismatch)
}
