package linalg

import "fmt"

// ValidateNotNil ensures m is non-nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	return nil
}

// ValidateSameShape ensures a and b share identical dimensions.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}
	return nil
}

// ValidateSquare ensures m has Rows() == Cols().
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}
	return nil
}

// ValidateVecLen ensures x has exactly n elements.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return fmt.Errorf("vector length %d, want %d: %w", len(x), n, ErrDimensionMismatch)
	}
	return nil
}
