package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

const prec = uint(128)

func TestPi(t *testing.T) {
	f64, _ := Pi(prec).Float64()
	require.Equal(t, math.Pi, f64)
}

func TestNewFloat(t *testing.T) {
	require.Equal(t, 0, NewFloat(3, prec).Cmp(big.NewFloat(3)))
	require.Equal(t, 0, NewFloat(0.5, prec).Cmp(big.NewFloat(0.5)))
	require.Equal(t, 0, NewFloat(nil, prec).Cmp(big.NewFloat(0)))
	require.Panics(t, func() { NewFloat("3", prec) })
}

func TestTrig(t *testing.T) {
	for _, x := range []float64{-1.3, -0.25, 0, 0.7, 1.1} {
		cos, _ := Cos(NewFloat(x, prec)).Float64()
		require.InDelta(t, math.Cos(x), cos, 1e-15)
		sin, _ := Sin(NewFloat(x, prec)).Float64()
		require.InDelta(t, math.Sin(x), sin, 1e-15)
	}
}

func TestExpLogPow(t *testing.T) {
	exp, _ := Exp(NewFloat(1.25, prec)).Float64()
	require.InDelta(t, math.Exp(1.25), exp, 1e-14)

	log, _ := Log(NewFloat(2.0, prec)).Float64()
	require.InDelta(t, math.Ln2, log, 1e-15)

	pow, _ := Pow(NewFloat(2.0, prec), NewFloat(0.5, prec)).Float64()
	require.InDelta(t, math.Sqrt2, pow, 1e-15)
}
