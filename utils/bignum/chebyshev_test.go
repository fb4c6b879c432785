package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChebyshevNodes(t *testing.T) {

	interval := Interval{
		Nodes: 15,
		A:     *NewFloat(-1, prec),
		B:     *NewFloat(1, prec),
	}

	nodes := ChebyshevNodes(interval.Nodes+1, interval)
	require.Equal(t, interval.Nodes+1, len(nodes))

	n := len(nodes)
	for k, node := range nodes {
		want := math.Cos(float64(2*(n-1-k)+1) * math.Pi / float64(2*n))
		got, _ := node.Float64()
		require.InDelta(t, want, got, 1e-15)
	}

	// Strictly ascending, endpoints excluded.
	for k := 1; k < n; k++ {
		require.Equal(t, -1, nodes[k-1].Cmp(nodes[k]))
	}
	require.Equal(t, 1, nodes[0].Cmp(NewFloat(-1, prec)))
	require.Equal(t, -1, nodes[n-1].Cmp(NewFloat(1, prec)))
}

func TestChebyshevApproximation(t *testing.T) {

	interval := Interval{
		Nodes: 31,
		A:     *NewFloat(-2, prec),
		B:     *NewFloat(2, prec),
	}

	coeffs := ChebyshevApproximation(Exp, interval)
	require.Equal(t, interval.Nodes+1, len(coeffs))

	for _, x := range []float64{-1.9, -0.77, 0, 0.31, 1.5} {
		xBig := NewFloat(x, prec)
		y := EvaluateChebyshev(coeffs, interval, xBig)

		want := Exp(xBig)
		diff := new(big.Float).Sub(y, want)
		diff.Abs(diff)

		f64, _ := diff.Float64()
		require.Less(t, f64, 1e-20)
	}
}
