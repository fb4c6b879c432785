package chebtech

import "errors"

var (
	// ErrNonFiniteValue is returned when a sampled value is NaN or infinite.
	// It aborts adaptive construction immediately; no partial representation
	// is produced.
	ErrNonFiniteValue = errors.New("non-finite sample value")

	// ErrShapeMismatch is returned when the shape of a sample or coefficient
	// matrix is inconsistent with the grid size it is declared for. It
	// indicates a caller contract violation.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrToleranceShapeMismatch is returned when a per-column tolerance
	// slice can be reconciled with the column count neither directly nor by
	// broadcasting a single scalar.
	ErrToleranceShapeMismatch = errors.New("tolerance shape mismatch")

	// ErrKindMismatch is returned by binary operations on representations
	// built over different grid kinds.
	ErrKindMismatch = errors.New("grid kind mismatch")
)
