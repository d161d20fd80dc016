// Package linalg: sentinel error set.
//
// Every kernel returns these sentinels (wrapped with context via
// fmt.Errorf("%s: %w", ...)) rather than panicking on user-triggered
// conditions. errors.Is is the supported way to test for a specific
// failure.
package linalg

import "errors"

var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("linalg: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare signals a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrNilMatrix indicates a nil Matrix was used where one was required.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrSingular is returned when a zero pivot is encountered during
	// LU decomposition or Solve in this non-pivoting scheme (intentional
	// for determinism, at the cost of numerical robustness on
	// ill-conditioned input).
	ErrSingular = errors.New("linalg: singular matrix")
)
