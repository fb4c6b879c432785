package chebtech

import (
	"fmt"
	"math"
)

// FunctionHandle samples the target function. It receives a vector of
// ascending abscissae in [-1, 1] and returns the sampled values indexed
// [column][abscissa], one column per scalar output. The handle is called
// once per grid size, never once per point.
type FunctionHandle func(x []float64) [][]float64

const (
	// DefaultEps is the default target relative tolerance.
	DefaultEps = 0x1p-52

	// DefaultMaxLength is the largest grid size sampled before adaptive
	// construction gives up and returns an unresolved representation.
	DefaultMaxLength = 1<<16 + 1

	// minSamples is the initial grid size, the smallest length the chop
	// analysis is reliable on.
	minSamples = 17

	// sampleTestFactor loosens the tolerance of the point-sample
	// consistency check relative to the chop tolerance.
	sampleTestFactor = 1000
)

// sampleTestPoints are fixed off-grid abscissae used by the auxiliary
// point-sample consistency check. Arbitrary values, chosen to never coincide
// with a Chebyshev node.
var sampleTestPoints = []float64{-0.357998918959666, 0.036248745489362}

type parameters struct {
	eps        float64
	maxLength  int
	kind       Kind
	sampleTest bool
}

// Option configures adaptive construction.
type Option func(*parameters)

// WithEps sets the target relative tolerance. Default 2^-52.
func WithEps(eps float64) Option {
	return func(p *parameters) { p.eps = eps }
}

// WithMaxLength sets the largest permitted grid size before the constructor
// declares the function unresolved. Default 2^16+1.
func WithMaxLength(n int) Option {
	return func(p *parameters) { p.maxLength = n }
}

// WithKind sets the grid kind to sample on. Default Second.
func WithKind(k Kind) Option {
	return func(p *parameters) { p.kind = k }
}

// WithSampleTest toggles the auxiliary point-sample consistency check
// performed before accepting a representation. Default on.
func WithSampleTest(enabled bool) Option {
	return func(p *parameters) { p.sampleTest = enabled }
}

// Construct adaptively samples fn on a doubling sequence of Chebyshev grids
// until the Chebyshev coefficients are resolved to the target tolerance, the
// maximum grid size is reached, or invalid data is observed.
//
// On success the representation is truncated to the accepted cutoff and
// Happy() reports true. If the maximum grid size is reached without
// resolution, the full-length representation is still returned, with Happy()
// false and a nil error, so the caller may warn, accept degraded accuracy or
// escalate. Non-finite samples abort construction with ErrNonFiniteValue and
// no partial representation.
func Construct(fn FunctionHandle, opts ...Option) (*Chebtech, error) {
	p := parameters{
		eps:        DefaultEps,
		maxLength:  DefaultMaxLength,
		kind:       Second,
		sampleTest: true,
	}
	for _, opt := range opts {
		opt(&p)
	}

	if !(p.eps > 0) {
		return nil, fmt.Errorf("cannot Construct: eps=%v must be positive", p.eps)
	}
	if p.maxLength < minSamples {
		return nil, fmt.Errorf("cannot Construct: maxLength=%d is below the minimum grid size %d", p.maxLength, minSamples)
	}
	if !p.kind.isValid() {
		return nil, fmt.Errorf("cannot Construct: invalid grid kind %d", int(p.kind))
	}

	tol := []float64{p.eps}

	var values [][]float64
	n := minSamples
	for {
		var err error
		values, err = resample(fn, p.kind, n, values)
		if err != nil {
			return nil, fmt.Errorf("cannot Construct: %w", err)
		}

		coeffs, err := Vals2Coeffs(p.kind, values)
		if err != nil {
			return nil, fmt.Errorf("cannot Construct: %w", err)
		}

		scale := ScaleEstimate(p.kind, values)

		happy, cutoff, err := Check(p.kind, values, coeffs, tol, scale)
		if err != nil {
			return nil, fmt.Errorf("cannot Construct: %w", err)
		}

		if happy && p.sampleTest {
			happy, err = sampleTestPass(p.kind, values, fn, p.eps, scale)
			if err != nil {
				return nil, fmt.Errorf("cannot Construct: %w", err)
			}
		}

		if happy {
			for c := range coeffs {
				coeffs[c] = coeffs[c][:cutoff]
			}
			return newChebtech(p.kind, coeffs, scale, true), nil
		}

		if n >= p.maxLength {
			return newChebtech(p.kind, coeffs, scale, false), nil
		}

		if next := NextSize(n); next <= p.maxLength {
			n = next
		} else {
			// Off-ladder cap: the final grid does not nest, resample fully.
			n = p.maxLength
			values = nil
		}
	}
}

// resample evaluates fn on the n-node grid. When the previous second-kind
// grid nests into the new one, only the odd-index nodes are freshly sampled
// and the old values are merged in at the even indices.
func resample(fn FunctionHandle, kind Kind, n int, old [][]float64) ([][]float64, error) {
	x := kind.Points(n)

	wantCols := -1
	if old != nil {
		wantCols = len(old)
	}

	if kind != Second || old == nil || NextSize(len(old[0])) != n {
		return sample(fn, x, wantCols)
	}

	newX := make([]float64, 0, (n-1)/2)
	for j := 1; j < n; j += 2 {
		newX = append(newX, x[j])
	}
	fresh, err := sample(fn, newX, wantCols)
	if err != nil {
		return nil, err
	}

	values := make([][]float64, len(old))
	for c := range values {
		col := make([]float64, n)
		for i, v := range old[c] {
			col[2*i] = v
		}
		for i, v := range fresh[c] {
			col[2*i+1] = v
		}
		values[c] = col
	}
	return values, nil
}

// sample calls fn once on the abscissae and validates the returned shape.
// wantCols < 0 accepts any positive column count.
func sample(fn FunctionHandle, x []float64, wantCols int) ([][]float64, error) {
	values := fn(x)
	if len(values) == 0 {
		return nil, fmt.Errorf("function returned no columns: %w", ErrShapeMismatch)
	}
	if wantCols >= 0 && len(values) != wantCols {
		return nil, fmt.Errorf("function returned %d columns, want %d: %w", len(values), wantCols, ErrShapeMismatch)
	}
	for c, col := range values {
		if len(col) != len(x) {
			return nil, fmt.Errorf("function returned %d rows in column %d for %d abscissae: %w", len(col), c, len(x), ErrShapeMismatch)
		}
	}
	return values, nil
}

// sampleTestPass cross-checks the candidate representation against fresh
// point samples at two fixed off-grid abscissae before it is accepted.
func sampleTestPass(kind Kind, values [][]float64, fn FunctionHandle, tol float64, scale []float64) (bool, error) {
	actual, err := sample(fn, sampleTestPoints, len(values))
	if err != nil {
		return false, err
	}

	est := Evaluate(kind, values, sampleTestPoints)

	for c := range actual {
		for q := range sampleTestPoints {
			v := actual[c][q]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false, fmt.Errorf("sample test value (%d,%d) is %v: %w", q, c, v, ErrNonFiniteValue)
			}
			if math.Abs(est[c][q]-v) > sampleTestFactor*tol*scale[c] {
				return false, nil
			}
		}
	}
	return true, nil
}
