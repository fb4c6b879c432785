package chebtech

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/zeebo/blake3"
)

// Chebtech is a frozen Chebyshev-series representation of a (possibly
// vector-valued) smooth function on [-1, 1]. It holds the accepted
// coefficients, the matching sample values on the grid of that length, the
// grid kind and the per-column scale estimate. A Chebtech is immutable;
// operations that reshape it return a new one.
type Chebtech struct {
	kind   Kind
	coeffs [][]float64 // [column][coefficient]
	values [][]float64 // [column][node], grid of size Len()
	scale  []float64   // per column
	happy  bool
}

// newChebtech freezes a coefficient matrix into a representation,
// resampling the matching values. Callers hand over ownership of coeffs and
// scale.
func newChebtech(kind Kind, coeffs [][]float64, scale []float64, happy bool) *Chebtech {
	values, err := Coeffs2Vals(kind, coeffs)
	if err != nil {
		panic(fmt.Errorf("cannot newChebtech: %w", err))
	}
	return &Chebtech{
		kind:   kind,
		coeffs: coeffs,
		values: values,
		scale:  scale,
		happy:  happy,
	}
}

// Kind returns the grid kind the representation was built on.
func (t *Chebtech) Kind() Kind { return t.kind }

// Happy reports whether adaptive construction resolved the function to the
// requested tolerance. An unhappy representation is still usable at full
// length; ignoring the flag accepts possibly degraded accuracy.
func (t *Chebtech) Happy() bool { return t.happy }

// Len returns the number of stored coefficients (the accepted cutoff).
func (t *Chebtech) Len() int { return len(t.coeffs[0]) }

// Degree returns the polynomial degree of the representation, Len()-1.
func (t *Chebtech) Degree() int { return t.Len() - 1 }

// Columns returns the number of simultaneously represented outputs.
func (t *Chebtech) Columns() int { return len(t.coeffs) }

// Points returns the n nodes of the representation's grid kind.
func (t *Chebtech) Points(n int) []float64 { return t.kind.Points(n) }

// Coeffs returns a copy of the coefficient matrix, indexed
// [column][coefficient].
func (t *Chebtech) Coeffs() [][]float64 { return copyMatrix(t.coeffs) }

// Values returns a copy of the sample values on the Len()-node grid,
// indexed [column][node].
func (t *Chebtech) Values() [][]float64 { return copyMatrix(t.values) }

// Scale returns a copy of the per-column scale estimate.
func (t *Chebtech) Scale() []float64 {
	s := make([]float64, len(t.scale))
	copy(s, t.scale)
	return s
}

// Evaluate computes the represented function at the query points from the
// frozen sample values via the barycentric formula. The result is indexed
// [column][query].
func (t *Chebtech) Evaluate(xs []float64) [][]float64 {
	return Evaluate(t.kind, t.values, xs)
}

// Prolong returns a copy with the coefficient matrix zero-padded or
// truncated to length n.
func (t *Chebtech) Prolong(n int) *Chebtech {
	if n < 1 {
		panic(fmt.Errorf("cannot Prolong: n=%d < 1", n))
	}
	coeffs := make([][]float64, t.Columns())
	for c, col := range t.coeffs {
		coeffs[c] = make([]float64, n)
		copy(coeffs[c], col)
	}
	return newChebtech(t.kind, coeffs, t.Scale(), t.happy)
}

// Simplify re-chops the representation at the tolerance tol against the
// stored scale estimate and truncates to the resulting common cutoff. If any
// column does not resolve at tol the representation is returned unchanged.
func (t *Chebtech) Simplify(tol float64) *Chebtech {
	cutoff := 1
	for c, col := range t.coeffs {
		ok, cut := Chop(col, tol, t.scale[c])
		if !ok {
			return t
		}
		if cut > cutoff {
			cutoff = cut
		}
	}
	if cutoff >= t.Len() {
		return t
	}
	return t.Prolong(cutoff)
}

// Fingerprint returns a blake3 digest of the grid kind, shape and
// coefficients, a cheap content identity for memoization by collaborators.
func (t *Chebtech) Fingerprint() [32]byte {
	hasher := blake3.New()

	binary.Write(hasher, binary.BigEndian, int64(t.kind))
	binary.Write(hasher, binary.BigEndian, int64(t.Columns()))
	binary.Write(hasher, binary.BigEndian, int64(t.Len()))
	for _, col := range t.coeffs {
		for _, v := range col {
			binary.Write(hasher, binary.BigEndian, math.Float64bits(v))
		}
	}

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}

func copyMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for c, col := range m {
		out[c] = make([]float64, len(col))
		copy(out[c], col)
	}
	return out
}
