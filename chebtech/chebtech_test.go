package chebtech

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRepresentationAccessors(t *testing.T) {

	rep, err := Construct(handle(math.Sin), WithEps(1e-13))
	require.NoError(t, err)

	require.Equal(t, Second, rep.Kind())
	require.Equal(t, 1, rep.Columns())
	require.Equal(t, rep.Len()-1, rep.Degree())
	require.Len(t, rep.Points(rep.Len()), rep.Len())
	require.Len(t, rep.Scale(), 1)

	// Accessors return copies: mutating them leaves the artifact intact.
	coeffs := rep.Coeffs()
	coeffs[0][0] = 1e9
	require.NotEqual(t, 1e9, rep.Coeffs()[0][0])

	values := rep.Values()
	values[0][0] = 1e9
	require.NotEqual(t, 1e9, rep.Values()[0][0])
}

// TestSelfConsistency re-expands the accepted coefficients to sample values
// and re-chops: the verdict must again be happy at the same cutoff.
func TestSelfConsistency(t *testing.T) {

	rep, err := Construct(handle(math.Sin), WithEps(1e-13))
	require.NoError(t, err)
	require.True(t, rep.Happy())

	coeffs := rep.Coeffs()
	values, err := Coeffs2Vals(rep.Kind(), coeffs)
	require.NoError(t, err)

	happy, cutoff, err := Check(rep.Kind(), values, coeffs, []float64{1e-13}, rep.Scale())
	require.NoError(t, err)
	require.True(t, happy)
	require.Equal(t, rep.Len(), cutoff)
}

func TestEvaluateAtOwnNodes(t *testing.T) {

	rep, err := Construct(handle(math.Sin, math.Cos), WithEps(1e-13))
	require.NoError(t, err)

	out := rep.Evaluate(rep.Points(rep.Len()))
	require.Equal(t, rep.Values(), out)
}

func TestDeterministicConstruction(t *testing.T) {

	a, err := Construct(handle(math.Sin), WithEps(1e-13))
	require.NoError(t, err)
	b, err := Construct(handle(math.Sin), WithEps(1e-13))
	require.NoError(t, err)

	if diff := cmp.Diff(a.Coeffs(), b.Coeffs()); diff != "" {
		t.Fatalf("constructions differ (-a +b):\n%s", diff)
	}
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestFingerprint(t *testing.T) {

	repSin, err := Construct(handle(math.Sin), WithEps(1e-13))
	require.NoError(t, err)
	repCos, err := Construct(handle(math.Cos), WithEps(1e-13))
	require.NoError(t, err)

	require.NotEqual(t, repSin.Fingerprint(), repCos.Fingerprint())
	require.NotEqual(t, repSin.Fingerprint(), repSin.Prolong(repSin.Len()+4).Fingerprint())
}

func TestProlong(t *testing.T) {

	rep, err := Construct(handle(math.Sin), WithEps(1e-13))
	require.NoError(t, err)

	t.Run("ZeroPad", func(t *testing.T) {
		padded := rep.Prolong(40)
		require.Equal(t, 40, padded.Len())
		require.InDelta(t, math.Sin(0.3), padded.Evaluate([]float64{0.3})[0][0], 1e-13)
		for k := rep.Len(); k < 40; k++ {
			require.Equal(t, 0.0, padded.Coeffs()[0][k])
		}
	})

	t.Run("Truncate", func(t *testing.T) {
		short := rep.Prolong(3)
		require.Equal(t, 2, short.Degree())
	})
}

func TestSimplify(t *testing.T) {

	rep, err := Construct(handle(math.Sin), WithEps(1e-13))
	require.NoError(t, err)

	padded := rep.Prolong(200)
	simplified := padded.Simplify(1e-13)

	require.Less(t, simplified.Len(), 20)
	require.InDelta(t, math.Sin(0.3), simplified.Evaluate([]float64{0.3})[0][0], 1e-11)

	// A representation that does not resolve at the tolerance is returned
	// unchanged.
	unres, err := Construct(handle(math.Abs), WithMaxLength(65), WithSampleTest(false))
	require.NoError(t, err)
	require.Equal(t, unres, unres.Simplify(1e-13))
}
