package propalg

import "errors"

var (
	// ErrNotCombinable indicates Combine was invoked on a pair that
	// AreCombinable reports as not combinable.
	ErrNotCombinable = errors.New("propalg: values not combinable")

	// ErrNilComponent indicates a combinator was built from a nil
	// dependency (e.g. SubtypeCombiner with a nil base Combiner).
	ErrNilComponent = errors.New("propalg: nil component")
)
