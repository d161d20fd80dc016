package propalg

// Combiner fuses two values of the same property type T into one.
//
// Contract: AreCombinable is total. When AreCombinable(a,b) is true,
// Combine(a,b) must succeed and the result must be commutative
// (Combine(a,b) == Combine(b,a)) and idempotent
// (Combine(a,a) == a) under the type's own notion of equality.
type Combiner[T any] interface {
	AreCombinable(a, b T) bool
	Combine(a, b T) (T, error)
}

// EqualityCombiner combines two comparable values only when they are
// equal, returning the shared value. It is the simplest Combiner and
// the building block most of the others delegate to.
type EqualityCombiner[T comparable] struct{}

// AreCombinable reports whether a and b are identical.
func (EqualityCombiner[T]) AreCombinable(a, b T) bool { return a == b }

// Combine returns a when a == b, else ErrNotCombinable.
func (EqualityCombiner[T]) Combine(a, b T) (T, error) {
	if a != b {
		var zero T
		return zero, ErrNotCombinable
	}
	return a, nil
}

// SubtypeCombiner narrows a base Combiner to only those pairs also
// satisfying a predicate (e.g. "both are initial states"), delegating
// combination itself to Base.
type SubtypeCombiner[T any] struct {
	Base   Combiner[T]
	Narrow func(T) bool
}

// AreCombinable reports Base.AreCombinable(a,b) && Narrow(a) && Narrow(b).
func (s SubtypeCombiner[T]) AreCombinable(a, b T) bool {
	if s.Base == nil || s.Narrow == nil {
		return false
	}
	return s.Narrow(a) && s.Narrow(b) && s.Base.AreCombinable(a, b)
}

// Combine delegates to Base.Combine.
func (s SubtypeCombiner[T]) Combine(a, b T) (T, error) {
	if s.Base == nil {
		var zero T
		return zero, ErrNilComponent
	}
	return s.Base.Combine(a, b)
}

// Pair is a two-component property value, combined pointwise.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairCombiner combines a Pair[A,B] component-wise via two
// sub-combiners; combinable iff both components are.
type PairCombiner[A, B any] struct {
	First  Combiner[A]
	Second Combiner[B]
}

// AreCombinable reports whether both components are combinable.
func (p PairCombiner[A, B]) AreCombinable(a, b Pair[A, B]) bool {
	if p.First == nil || p.Second == nil {
		return false
	}
	return p.First.AreCombinable(a.First, b.First) && p.Second.AreCombinable(a.Second, b.Second)
}

// Combine combines each component independently.
func (p PairCombiner[A, B]) Combine(a, b Pair[A, B]) (Pair[A, B], error) {
	if p.First == nil || p.Second == nil {
		return Pair[A, B]{}, ErrNilComponent
	}
	first, err := p.First.Combine(a.First, b.First)
	if err != nil {
		return Pair[A, B]{}, err
	}
	second, err := p.Second.Combine(a.Second, b.Second)
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{First: first, Second: second}, nil
}

// SetCombiner treats a property as a set of comparable elements and
// combines two sets by union; always combinable.
type SetCombiner[T comparable] struct{}

// AreCombinable always returns true: set union is total.
func (SetCombiner[T]) AreCombinable(a, b map[T]struct{}) bool { return true }

// Combine returns the union of a and b.
func (SetCombiner[T]) Combine(a, b map[T]struct{}) (map[T]struct{}, error) {
	out := make(map[T]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out, nil
}

// ListCombiner combines two equal-length lists element-wise via an
// element Combiner; combinable iff lengths match and every element
// pair is combinable.
type ListCombiner[T any] struct {
	Element Combiner[T]
}

// AreCombinable reports whether a and b have the same length and every
// element pair is combinable.
func (l ListCombiner[T]) AreCombinable(a, b []T) bool {
	if l.Element == nil || len(a) != len(b) {
		return false
	}
	for i := range a {
		if !l.Element.AreCombinable(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Combine combines each element pair independently.
func (l ListCombiner[T]) Combine(a, b []T) ([]T, error) {
	if l.Element == nil {
		return nil, ErrNilComponent
	}
	if len(a) != len(b) {
		return nil, ErrNotCombinable
	}
	out := make([]T, len(a))
	for i := range a {
		v, err := l.Element.Combine(a[i], b[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// FixedValueCombiner always reports combinable and always returns the
// same fixed Value, regardless of its inputs. Useful for property
// types that carry no information worth preserving (e.g. a "presence"
// marker).
type FixedValueCombiner[T any] struct {
	Value T
}

// AreCombinable always returns true.
func (FixedValueCombiner[T]) AreCombinable(a, b T) bool { return true }

// Combine always returns Value.
func (f FixedValueCombiner[T]) Combine(a, b T) (T, error) { return f.Value, nil }

// DiffKindCombiner is always combinable: equal inputs return the
// shared input; unequal inputs return Unchanged, since a kind
// disagreement after a merge no longer reflects a pure addition or
// removal on either side.
type DiffKindCombiner struct{}

// AreCombinable always returns true.
func (DiffKindCombiner) AreCombinable(a, b DiffKind) bool { return true }

// Combine returns a when a == b, else Unchanged.
func (DiffKindCombiner) Combine(a, b DiffKind) (DiffKind, error) {
	if a == b {
		return a, nil
	}
	return Unchanged, nil
}
