package chebtech

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum(t *testing.T) {

	t.Run("OddFunction", func(t *testing.T) {
		rep, err := Construct(handle(math.Sin), WithEps(1e-13))
		require.NoError(t, err)
		require.InDelta(t, 0, rep.Sum()[0], 1e-14)
	})

	t.Run("Exponential", func(t *testing.T) {
		rep, err := Construct(handle(math.Exp), WithEps(1e-13))
		require.NoError(t, err)
		require.InDelta(t, math.E-1/math.E, rep.Sum()[0], 1e-13)
	})

	t.Run("MultiColumn", func(t *testing.T) {
		rep, err := Construct(handle(math.Cos, math.Exp), WithEps(1e-13))
		require.NoError(t, err)
		sums := rep.Sum()
		require.InDelta(t, 2*math.Sin(1), sums[0], 1e-13)
		require.InDelta(t, math.E-1/math.E, sums[1], 1e-13)
	})
}

func TestDiff(t *testing.T) {

	rep, err := Construct(handle(math.Sin), WithEps(1e-13))
	require.NoError(t, err)

	der := rep.Diff()
	require.Equal(t, rep.Len()-1, der.Len())
	require.True(t, der.Happy())

	for _, x := range []float64{-0.9, -0.3, 0, 0.42, 0.88} {
		require.InDelta(t, math.Cos(x), der.Evaluate([]float64{x})[0][0], 1e-10)
	}

	t.Run("Constant", func(t *testing.T) {
		c, err := Construct(handle(func(float64) float64 { return 7 }))
		require.NoError(t, err)
		require.Equal(t, 1, c.Len())
		require.Equal(t, 0.0, c.Diff().Evaluate([]float64{0.5})[0][0])
	})
}

func TestCumsum(t *testing.T) {

	rep, err := Construct(handle(math.Cos), WithEps(1e-13))
	require.NoError(t, err)

	integral := rep.Cumsum()
	require.Equal(t, rep.Len()+1, integral.Len())

	// Vanishes at -1 and matches sin(x) - sin(-1) elsewhere.
	require.InDelta(t, 0, integral.Evaluate([]float64{-1})[0][0], 1e-14)
	for _, x := range []float64{-0.5, 0, 0.3, 1} {
		require.InDelta(t, math.Sin(x)-math.Sin(-1), integral.Evaluate([]float64{x})[0][0], 1e-12)
	}

	t.Run("DiffInverts", func(t *testing.T) {
		back := rep.Cumsum().Diff()
		for _, x := range []float64{-0.7, 0.1, 0.6} {
			require.InDelta(t, math.Cos(x), back.Evaluate([]float64{x})[0][0], 1e-11)
		}
	})
}
