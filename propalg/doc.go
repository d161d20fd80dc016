// Package propalg implements the property algebra that is the sole
// semantic contract between the comparison/merge core and user-defined
// state and transition property types: Combiner, Projector, Hider, and
// Inclusion.
//
// Rather than expressing "a state/transition property type" through an
// inheritance hierarchy (GLTS ⊂ LTS ⊂ Automaton ⊂ DiffAutomaton in the
// system this library reimplements), a property type here is defined
// purely by the operators one supplies for it — explicit operator
// capability sets passed in as configuration, not sub-typing. This
// package supplies the generic interfaces plus a standard library of
// instances (Equality, Subtype, Pair, Set, List, FixedValue, DiffKind,
// and the LTS/Automaton/DiffAutomaton property variants) that cover
// every scenario in the comparison core's test suite.
//
// Contracts:
//
//   - Combiner[T]: AreCombinable(a,b) is total; Combine(a,b) is only
//     defined when AreCombinable(a,b), must be commutative and
//     idempotent where combinable.
//   - Projector[T,U]: Project(prop, along) returns (kept-value, true)
//     when prop survives projection along the element along, or
//     (zero-value, false) when prop is fully eliminated.
//   - Hider[T]: Hide is idempotent; isHidden(p) ≡ p == Hide(p).
//   - Inclusion[T]: a ≤ b ⇔ Combine(a,b) == b, assuming combinability.
package propalg
