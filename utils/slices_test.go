package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxSlice(t *testing.T) {
	require.Equal(t, 7, MaxSlice([]int{3, 7, 1, 5}))
	require.Equal(t, 0, MaxSlice([]int{}))
	require.Equal(t, 2.5, MaxSlice([]float64{-1, 2.5, 0}))
}

func TestMaxAbs(t *testing.T) {
	require.Equal(t, 4.0, MaxAbs([]float64{1, -4, 2}))
	require.Equal(t, 0.0, MaxAbs([]float64{}))
	require.Equal(t, 3.0, MaxAbs([]float64{-3, 3}))
}

func TestEqualSliceFloat64(t *testing.T) {
	require.True(t, EqualSliceFloat64([]float64{1, 2}, []float64{1, 2}))
	require.False(t, EqualSliceFloat64([]float64{1, 2}, []float64{1, 3}))
	require.False(t, EqualSliceFloat64([]float64{1}, []float64{1, 2}))
}
