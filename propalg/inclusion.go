package propalg

// Inclusion derives a partial order a ≤ b over a property type from
// its Combiner: a ≤ b iff Combine(a,b) == b. Since not every property
// type is Go-comparable, equality is supplied explicitly via Eq rather
// than assumed.
type Inclusion[T any] struct {
	C  Combiner[T]
	Eq func(a, b T) bool
}

// IsIncludedIn reports whether a ≤ b. Returns false, nil when a and b
// are not combinable at all (incomparable, not merely unordered).
func (i Inclusion[T]) IsIncludedIn(a, b T) (bool, error) {
	if i.C == nil || i.Eq == nil {
		return false, ErrNilComponent
	}
	if !i.C.AreCombinable(a, b) {
		return false, nil
	}
	combined, err := i.C.Combine(a, b)
	if err != nil {
		return false, err
	}
	return i.Eq(combined, b), nil
}
