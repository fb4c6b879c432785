package chebtech

// Coefficient-domain calculus. Each operation maps the stored Chebyshev
// coefficients through the standard recurrences and freezes the result as a
// new representation; the happy flag is inherited from the operand.

// Sum returns the definite integral over [-1, 1] of each column, using the
// exact values of the Chebyshev moments: the integral of T_k is 2/(1-k^2)
// for even k and 0 for odd k.
func (t *Chebtech) Sum() []float64 {
	out := make([]float64, t.Columns())
	for c, col := range t.coeffs {
		var s float64
		for k := 0; k < len(col); k += 2 {
			s += col[k] * 2 / float64(1-k*k)
		}
		out[c] = s
	}
	return out
}

// Diff returns the derivative representation, one degree shorter, via the
// descending recurrence b_{k-1} = b_{k+1} + 2k*a_k with the constant term
// halved.
func (t *Chebtech) Diff() *Chebtech {
	n := t.Len()

	coeffs := make([][]float64, t.Columns())
	for c, a := range t.coeffs {
		if n == 1 {
			coeffs[c] = []float64{0}
			continue
		}
		b := make([]float64, n-1)
		for k := n - 1; k >= 1; k-- {
			b[k-1] = 2 * float64(k) * a[k]
			if k+1 < n-1 {
				b[k-1] += b[k+1]
			}
		}
		b[0] *= 0.5
		coeffs[c] = b
	}

	return freeze(t.kind, coeffs, t.happy)
}

// Cumsum returns the indefinite integral representation, one degree longer,
// with the integration constant fixed so that the antiderivative vanishes
// at -1.
func (t *Chebtech) Cumsum() *Chebtech {
	n := t.Len()

	coeffs := make([][]float64, t.Columns())
	for c, a := range t.coeffs {
		b := make([]float64, n+1)

		b[1] = a[0]
		if n > 2 {
			b[1] -= a[2] * 0.5
		}
		for k := 2; k <= n; k++ {
			b[k] = a[k-1]
			if k+1 < n {
				b[k] -= a[k+1]
			}
			b[k] /= 2 * float64(k)
		}

		// b_0 such that the series vanishes at -1, where T_k = (-1)^k.
		for k := 1; k <= n; k++ {
			if k&1 == 1 {
				b[0] += b[k]
			} else {
				b[0] -= b[k]
			}
		}

		coeffs[c] = b
	}

	return freeze(t.kind, coeffs, t.happy)
}

// freeze resamples a coefficient matrix onto its own grid and wraps it as a
// representation with a freshly computed scale estimate.
func freeze(kind Kind, coeffs [][]float64, happy bool) *Chebtech {
	values, err := Coeffs2Vals(kind, coeffs)
	if err != nil {
		panic(err)
	}
	return &Chebtech{
		kind:   kind,
		coeffs: coeffs,
		values: values,
		scale:  ScaleEstimate(kind, values),
		happy:  happy,
	}
}
