package chebtech

import (
	"fmt"
	"math"
)

// Matrices are stored one slice per column, indexed [column][node] with nodes
// ascending. Column k of a sample matrix holds the values of output k of the
// target function; the corresponding coefficient column holds the Chebyshev
// series coefficients c_0..c_{n-1} of that output.

// Vals2Coeffs converts samples on the n-node grid of the given kind into
// Chebyshev series coefficients, column by column. The two grid kinds use
// different, non-interchangeable cosine transforms. The round-trip error
// against Coeffs2Vals is a small multiple of the floating-point epsilon
// relative to the input magnitude.
func Vals2Coeffs(kind Kind, values [][]float64) ([][]float64, error) {
	if _, err := rowCount(values); err != nil {
		return nil, fmt.Errorf("cannot Vals2Coeffs: %w", err)
	}

	coeffs := make([][]float64, len(values))
	for c, col := range values {
		switch kind {
		case First:
			coeffs[c] = vals2coeffsFirst(col)
		case Second:
			coeffs[c] = vals2coeffsSecond(col)
		default:
			panic(fmt.Errorf("invalid grid kind: %s", kind))
		}
	}

	return coeffs, nil
}

// Coeffs2Vals converts Chebyshev series coefficients into samples on the
// n-node grid of the given kind, column by column. It is the inverse of
// Vals2Coeffs up to rounding.
func Coeffs2Vals(kind Kind, coeffs [][]float64) ([][]float64, error) {
	if _, err := rowCount(coeffs); err != nil {
		return nil, fmt.Errorf("cannot Coeffs2Vals: %w", err)
	}

	values := make([][]float64, len(coeffs))
	for c, col := range coeffs {
		switch kind {
		case First:
			values[c] = coeffs2valsFirst(col)
		case Second:
			values[c] = coeffs2valsSecond(col)
		default:
			panic(fmt.Errorf("invalid grid kind: %s", kind))
		}
	}

	return values, nil
}

// rowCount returns the common column length of the matrix, or
// ErrShapeMismatch if the matrix is empty or ragged.
func rowCount(m [][]float64) (int, error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, fmt.Errorf("empty matrix: %w", ErrShapeMismatch)
	}
	n := len(m[0])
	for c, col := range m {
		if len(col) != n {
			return 0, fmt.Errorf("column %d has %d rows, want %d: %w", c, len(col), n, ErrShapeMismatch)
		}
	}
	return n, nil
}

// vals2coeffsSecond computes the second-kind transform, a DCT-I with halved
// first and last coefficients. When n-1 is a power of two the transform is
// computed as a single FFT of the even extension of the samples; otherwise it
// falls back to direct cosine sums.
func vals2coeffsSecond(v []float64) []float64 {
	n := len(v)
	if n == 1 {
		return []float64{v[0]}
	}

	N := n - 1
	c := make([]float64, n)

	if isPowerOfTwo(N) {
		// Even extension in the classical (descending-node) ordering:
		// w_i = v[n-1-i] lives at angle i*pi/N.
		u := make([]complex128, 2*N)
		for i := 0; i <= N; i++ {
			u[i] = complex(v[n-1-i], 0)
		}
		for i := 1; i < N; i++ {
			u[2*N-i] = u[i]
		}
		fftInPlace(u)
		for k := 0; k <= N; k++ {
			c[k] = real(u[k]) / float64(N)
		}
		c[0] *= 0.5
		c[N] *= 0.5
		return c
	}

	th := Second.angles(n)
	for k := 0; k <= N; k++ {
		var s float64
		for j := 0; j <= N; j++ {
			t := v[j] * math.Cos(float64(k)*th[j])
			if j == 0 || j == N {
				t *= 0.5
			}
			s += t
		}
		s *= 2 / float64(N)
		if k == 0 || k == N {
			s *= 0.5
		}
		c[k] = s
	}
	return c
}

// coeffs2valsSecond evaluates the series at the second-kind nodes, the
// inverse of vals2coeffsSecond.
func coeffs2valsSecond(c []float64) []float64 {
	n := len(c)
	if n == 1 {
		return []float64{c[0]}
	}

	N := n - 1
	v := make([]float64, n)

	if isPowerOfTwo(N) {
		p := make([]complex128, 2*N)
		p[0] = complex(2*c[0], 0)
		p[N] = complex(2*c[N], 0)
		for k := 1; k < N; k++ {
			p[k] = complex(c[k], 0)
			p[2*N-k] = complex(c[k], 0)
		}
		fftInPlace(p)
		for i := 0; i <= N; i++ {
			v[n-1-i] = 0.5 * real(p[i])
		}
		return v
	}

	th := Second.angles(n)
	for j := range v {
		var s float64
		for k := range c {
			s += c[k] * math.Cos(float64(k)*th[j])
		}
		v[j] = s
	}
	return v
}

// vals2coeffsFirst computes the first-kind transform (a DCT-II up to
// scaling) by direct cosine sums.
//
// TODO: route power-of-two first-kind grids through the FFT like the
// second-kind path; direct sums are quadratic in the grid size.
func vals2coeffsFirst(v []float64) []float64 {
	n := len(v)
	th := First.angles(n)
	c := make([]float64, n)
	for k := 0; k < n; k++ {
		var s float64
		for j := 0; j < n; j++ {
			s += v[j] * math.Cos(float64(k)*th[j])
		}
		s *= 2 / float64(n)
		if k == 0 {
			s *= 0.5
		}
		c[k] = s
	}
	return c
}

// coeffs2valsFirst evaluates the series at the first-kind nodes, the inverse
// of vals2coeffsFirst.
func coeffs2valsFirst(c []float64) []float64 {
	n := len(c)
	th := First.angles(n)
	v := make([]float64, n)
	for j := range v {
		var s float64
		for k := range c {
			s += c[k] * math.Cos(float64(k)*th[j])
		}
		v[j] = s
	}
	return v
}
