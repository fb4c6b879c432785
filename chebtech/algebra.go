package chebtech

import "fmt"

// Algebra on representations, implemented as free functions returning new
// representations. Binary operations require operands of the same grid kind
// and column count; there is no implicit conversion between kinds.

// Add returns the column-wise sum a+b in the coefficient domain.
func Add(a, b *Chebtech) (*Chebtech, error) {
	if err := compatible("Add", a, b); err != nil {
		return nil, err
	}

	n := a.Len()
	if b.Len() > n {
		n = b.Len()
	}

	coeffs := make([][]float64, a.Columns())
	for c := range coeffs {
		col := make([]float64, n)
		copy(col, a.coeffs[c])
		for k, v := range b.coeffs[c] {
			col[k] += v
		}
		coeffs[c] = col
	}

	return freeze(a.kind, coeffs, a.happy && b.happy), nil
}

// Sub returns the column-wise difference a-b in the coefficient domain.
func Sub(a, b *Chebtech) (*Chebtech, error) {
	return Add(a, Scale(b, -1))
}

// Scale returns a with every column multiplied by s.
func Scale(a *Chebtech, s float64) *Chebtech {
	coeffs := a.Coeffs()
	for c := range coeffs {
		for k := range coeffs[c] {
			coeffs[c][k] *= s
		}
	}
	return freeze(a.kind, coeffs, a.happy)
}

// Mul returns the column-wise product a*b. The operands are resampled on a
// common grid large enough to hold the product exactly, multiplied
// pointwise, transformed back and simplified at the default tolerance.
func Mul(a, b *Chebtech) (*Chebtech, error) {
	if err := compatible("Mul", a, b); err != nil {
		return nil, err
	}

	n := a.Len() + b.Len() - 1

	av, err := Coeffs2Vals(a.kind, a.Prolong(n).coeffs)
	if err != nil {
		return nil, fmt.Errorf("cannot Mul: %w", err)
	}
	bv, err := Coeffs2Vals(b.kind, b.Prolong(n).coeffs)
	if err != nil {
		return nil, fmt.Errorf("cannot Mul: %w", err)
	}

	for c := range av {
		for i := range av[c] {
			av[c][i] *= bv[c][i]
		}
	}

	coeffs, err := Vals2Coeffs(a.kind, av)
	if err != nil {
		return nil, fmt.Errorf("cannot Mul: %w", err)
	}

	return freeze(a.kind, coeffs, a.happy && b.happy).Simplify(DefaultEps), nil
}

func compatible(op string, a, b *Chebtech) error {
	if a.kind != b.kind {
		return fmt.Errorf("cannot %s: %s and %s grids: %w", op, a.kind, b.kind, ErrKindMismatch)
	}
	if a.Columns() != b.Columns() {
		return fmt.Errorf("cannot %s: %d and %d columns: %w", op, a.Columns(), b.Columns(), ErrShapeMismatch)
	}
	return nil
}
