package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gltsdiff/linalg"
)

func TestNewDense_ZeroInit(t *testing.T) {
	m, err := linalg.NewDense(3, 4)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v)
		}
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := linalg.NewDense(0, 3)
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)
	_, err = linalg.NewDense(3, -1)
	require.ErrorIs(t, err, linalg.ErrInvalidDimensions)
}

func TestDense_AtSet_OutOfRange(t *testing.T) {
	m, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, linalg.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), linalg.ErrOutOfRange)
}

func TestDense_Clone_Independent(t *testing.T) {
	m, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	clone := m.Clone()
	require.NoError(t, m.Set(0, 0, 2))
	v, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}
