package chebtech

import (
	"fmt"
	"math"

	"github.com/JiaziChen111/chebfun/utils"
)

// hscale is the horizontal extent of the sampling interval [-1, 1]. The
// gradient term of the scale estimate is expressed in these units.
const hscale = 2

// ScaleEstimate returns, per column, a positive magnitude estimate of the
// sampled function in its natural units: the maximum absolute sample value
// (1 for an all-zero column), inflated by a finite-difference gradient
// estimate over the grid so that functions with large derivatives relative
// to their amplitude are chopped against a proportionally looser absolute
// threshold.
func ScaleEstimate(kind Kind, values [][]float64) []float64 {
	n := len(values[0])
	x := kind.Points(n)

	scale := make([]float64, len(values))
	for c, col := range values {
		vscale := utils.MaxAbs(col)
		if vscale == 0 {
			vscale = 1
		}

		var grad float64
		for i := 0; i+1 < n; i++ {
			if g := math.Abs((col[i+1] - col[i]) / (x[i+1] - x[i])); g > grad {
				grad = g
			}
		}

		scale[c] = vscale
		if g := hscale * grad; g > scale[c] {
			scale[c] = g
		}
	}
	return scale
}

// Check aggregates per-column chop verdicts on a candidate representation.
// values and coeffs are the matching sample and coefficient matrices of the
// current grid; tol holds either one tolerance per column or a single scalar
// broadcast to all columns; scale may be nil, in which case ScaleEstimate is
// computed from the samples.
//
// Any NaN or infinite sample is fatal and reported as ErrNonFiniteValue,
// never as an unhappy verdict. Columns are checked in order and the check
// short-circuits on the first unresolved column; when happy, cutoff is the
// maximum cutoff across all columns, so every column is resolved within the
// one common length.
func Check(kind Kind, values, coeffs [][]float64, tol, scale []float64) (happy bool, cutoff int, err error) {
	n, err := rowCount(values)
	if err != nil {
		return false, 0, fmt.Errorf("cannot Check: %w", err)
	}
	if len(coeffs) != len(values) {
		return false, 0, fmt.Errorf("cannot Check: %d coefficient columns for %d sample columns: %w", len(coeffs), len(values), ErrShapeMismatch)
	}

	for c, col := range values {
		for i, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false, 0, fmt.Errorf("cannot Check: sample (%d,%d) is %v: %w", i, c, v, ErrNonFiniteValue)
			}
		}
	}

	tol, err = broadcastTol(tol, len(values))
	if err != nil {
		return false, 0, fmt.Errorf("cannot Check: %w", err)
	}

	if scale == nil {
		scale = ScaleEstimate(kind, values)
	}

	cutoff = 1
	for c := range values {
		ok, cut := Chop(coeffs[c], tol[c], scale[c])
		if !ok {
			return false, n, nil
		}
		if cut > cutoff {
			cutoff = cut
		}
	}
	return true, cutoff, nil
}

// broadcastTol reconciles a tolerance slice with the column count: a single
// scalar is broadcast, a matching slice is used as-is, anything else is a
// shape error.
func broadcastTol(tol []float64, cols int) ([]float64, error) {
	switch len(tol) {
	case cols:
		return tol, nil
	case 1:
		out := make([]float64, cols)
		for i := range out {
			out[i] = tol[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%d tolerances for %d columns: %w", len(tol), cols, ErrToleranceShapeMismatch)
	}
}
