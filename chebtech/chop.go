package chebtech

import (
	"fmt"
	"math"
)

// Tuned constants of the plateau search. They are calibrated against the
// reference chopping rule of Aurentz & Trefethen ("Chopping a Chebyshev
// series") and are not user-facing.
const (
	// minChopLength is the shortest sequence the envelope analysis is
	// reliable on; anything shorter is accepted as-is.
	minChopLength = 17

	// plateauStretch and plateauOffset define the lookahead index
	// j2 = round(plateauStretch*j + plateauOffset) used to test whether the
	// envelope has stopped decaying at index j.
	plateauStretch = 1.25
	plateauOffset  = 5

	// plateauSlope scales the admissible envelope ratio at the lookahead
	// index: the decay counts as stalled when env[j2]/env[j] exceeds
	// plateauSlope*(1 - log env[j]/log tol).
	plateauSlope = 3

	// significantExponent marks the envelope level tol^significantExponent
	// below which coefficients carry no information at tolerance tol.
	significantExponent = 7.0 / 6.0

	// tiltExponent sets the total tilt -tiltExponent*log10(tol) applied to
	// the log-envelope before picking the cut at its first minimum.
	tiltExponent = 1.0 / 3.0
)

// Chop locates the shortest prefix of coeffs that represents the full
// sequence to the relative tolerance tol, in units of scale. It returns the
// prefix length (the cutoff, always in [1, len(coeffs)]) and whether the
// sequence is resolved at all: when accepted is false the coefficients never
// settle onto a rounding-noise plateau and cutoff is the full length.
//
// Sequences shorter than 17 are accepted as-is: they are too short to
// analyze reliably. An all-zero sequence accepts with cutoff 1. Numerical
// ties in the plateau refinement favor the smaller cutoff.
func Chop(coeffs []float64, tol, scale float64) (accepted bool, cutoff int) {
	n := len(coeffs)

	if n == 0 {
		panic(fmt.Errorf("cannot Chop: empty coefficient sequence"))
	}
	if !(tol > 0) || !(scale > 0) {
		panic(fmt.Errorf("cannot Chop: tol=%v and scale=%v must be positive", tol, scale))
	}

	if n < minChopLength {
		return true, n
	}

	// Envelope: env[i] is the running maximum of |coeffs[i:]|, normalized
	// by scale. Non-increasing from head to tail.
	env := make([]float64, n)
	runMax := 0.0
	for i := n - 1; i >= 0; i-- {
		if a := math.Abs(coeffs[i]); a > runMax {
			runMax = a
		}
		env[i] = runMax / scale
	}

	if env[0] == 0 {
		return true, 1
	}
	if env[n-1] > tol {
		return false, n
	}

	// Plateau search: the smallest index past which the envelope decays
	// slower than the minimal rate sustained over the lookahead window.
	// Indices j, j2 and plateauPoint are 1-based counts into env.
	var plateauPoint, j2 int
	found := false
	for j := 2; j <= n; j++ {
		j2 = int(math.Round(plateauStretch*float64(j) + plateauOffset))
		if j2 > n {
			break
		}
		e1 := env[j-1]
		e2 := env[j2-1]
		if e1 == 0 {
			plateauPoint, found = j-1, true
			break
		}
		r := plateauSlope * (1 - math.Log(e1)/math.Log(tol))
		if e2/e1 > r {
			plateauPoint, found = j-1, true
			break
		}
	}
	if !found {
		return false, n
	}

	if env[plateauPoint-1] == 0 {
		return true, plateauPoint
	}

	// Refinement: tilt the log-envelope of the significant prefix and cut
	// at its first minimum, preferring shorter representations on ties.
	noiseLevel := math.Pow(tol, significantExponent)
	j3 := 0
	for j3 < n && env[j3] >= noiseLevel {
		j3++
	}
	if j3 < j2 {
		j2 = j3 + 1
		env[j2-1] = noiseLevel
	}

	tilt := -tiltExponent * math.Log10(tol)
	d := 0
	best := math.Inf(1)
	for i := 0; i < j2; i++ {
		cc := math.Log10(env[i]) + tilt*float64(i)/float64(j2-1)
		if cc < best {
			best, d = cc, i
		}
	}

	if d < 1 {
		d = 1
	}
	return true, d
}
