package quantity

import "errors"

// Domain errors for quantity arithmetic and input validation.
var (
	// ErrDimensionMismatch indicates addition or comparison of
	// quantities with different dimensions.
	ErrDimensionMismatch = errors.New("quantity: dimension mismatch")

	// ErrOddExponent indicates a square root of a dimension with an
	// odd exponent.
	ErrOddExponent = errors.New("quantity: odd dimension exponent under sqrt")

	// ErrNonPhysical indicates a parameter value outside its physical
	// range (negative temperature, density, and so on).
	ErrNonPhysical = errors.New("quantity: non-physical value")

	// ErrNotFinite indicates a NaN or Inf slipped into a computation.
	ErrNotFinite = errors.New("quantity: value is NaN or Inf")
)
