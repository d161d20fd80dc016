package propalg

// DiffKind tags a state, transition, or "is-initial" aspect as having
// been added, removed, or left unchanged by a comparison.
type DiffKind int

const (
	// Unchanged marks a state/transition/aspect present in both sides.
	Unchanged DiffKind = iota
	// Added marks a state/transition/aspect present only in the RHS.
	Added
	// Removed marks a state/transition/aspect present only in the LHS.
	Removed
)

// String renders a DiffKind for logs and test failure messages.
func (k DiffKind) String() string {
	switch k {
	case Unchanged:
		return "UNCHANGED"
	case Added:
		return "ADDED"
	case Removed:
		return "REMOVED"
	default:
		return "UNKNOWN"
	}
}

// LTSStateProp is the state property carried by an LTS: just the
// isInitial flag.
type LTSStateProp struct {
	Initial bool
}

// LTSStateCombiner combines two LTS state properties; combinable iff
// their Initial flags agree.
type LTSStateCombiner struct{}

// AreCombinable reports whether both properties agree on Initial.
func (LTSStateCombiner) AreCombinable(a, b LTSStateProp) bool { return a.Initial == b.Initial }

// Combine returns a (equivalently b, since AreCombinable requires agreement).
func (LTSStateCombiner) Combine(a, b LTSStateProp) (LTSStateProp, error) {
	if a.Initial != b.Initial {
		return LTSStateProp{}, ErrNotCombinable
	}
	return a, nil
}

// AutomatonStateProp is the state property carried by an Automaton:
// isInitial plus isAccepting.
type AutomatonStateProp struct {
	Initial   bool
	Accepting bool
}

// AutomatonStateCombiner combines two Automaton state properties;
// combinable iff both flags agree.
type AutomatonStateCombiner struct{}

// AreCombinable reports whether Initial and Accepting both agree.
func (AutomatonStateCombiner) AreCombinable(a, b AutomatonStateProp) bool {
	return a.Initial == b.Initial && a.Accepting == b.Accepting
}

// Combine returns a when both flags agree, else ErrNotCombinable.
func (AutomatonStateCombiner) Combine(a, b AutomatonStateProp) (AutomatonStateProp, error) {
	if a.Initial != b.Initial || a.Accepting != b.Accepting {
		return AutomatonStateProp{}, ErrNotCombinable
	}
	return a, nil
}

// DiffAutomatonStateProp is the state property carried by a
// DiffAutomaton: the state's own DiffKind, an optional DiffKind for
// the "is-initial" aspect (present iff the state is initial), and
// isAccepting.
type DiffAutomatonStateProp struct {
	Kind        DiffKind
	HasInitial  bool
	InitialKind DiffKind
	Accepting   bool
}

// DiffAutomatonStateCombiner combines two DiffAutomaton state
// properties. Combinable iff Accepting agrees on both sides — the
// nesting invariant itself (a state's DiffKind constrains its incident
// transitions' DiffKinds) is enforced by glts, not by this combiner.
type DiffAutomatonStateCombiner struct{}

// AreCombinable reports whether Accepting agrees.
func (DiffAutomatonStateCombiner) AreCombinable(a, b DiffAutomatonStateProp) bool {
	return a.Accepting == b.Accepting
}

// Combine merges the DiffKinds via DiffKindCombiner and keeps the
// shared Accepting flag.
func (DiffAutomatonStateCombiner) Combine(a, b DiffAutomatonStateProp) (DiffAutomatonStateProp, error) {
	if a.Accepting != b.Accepting {
		return DiffAutomatonStateProp{}, ErrNotCombinable
	}
	kind, _ := (DiffKindCombiner{}).Combine(a.Kind, b.Kind)

	out := DiffAutomatonStateProp{Kind: kind, Accepting: a.Accepting}
	switch {
	case a.HasInitial && b.HasInitial:
		initKind, _ := (DiffKindCombiner{}).Combine(a.InitialKind, b.InitialKind)
		out.HasInitial, out.InitialKind = true, initKind
	case a.HasInitial:
		out.HasInitial, out.InitialKind = true, a.InitialKind
	case b.HasInitial:
		out.HasInitial, out.InitialKind = true, b.InitialKind
	}
	return out, nil
}

// DiffProperty wraps a transition's inner property with a DiffKind,
// the transition-property shape every DiffAutomaton carries.
type DiffProperty[T any] struct {
	Inner T
	Kind  DiffKind
}

// DiffPropertyCombiner combines two DiffProperty[T] values: the inner
// value via Inner, the DiffKind via DiffKindCombiner. Combinable iff
// the inner values are.
type DiffPropertyCombiner[T any] struct {
	Inner Combiner[T]
}

// AreCombinable delegates to Inner on the wrapped values.
func (c DiffPropertyCombiner[T]) AreCombinable(a, b DiffProperty[T]) bool {
	if c.Inner == nil {
		return false
	}
	return c.Inner.AreCombinable(a.Inner, b.Inner)
}

// Combine combines the inner values and folds the DiffKinds.
func (c DiffPropertyCombiner[T]) Combine(a, b DiffProperty[T]) (DiffProperty[T], error) {
	if c.Inner == nil {
		return DiffProperty[T]{}, ErrNilComponent
	}
	inner, err := c.Inner.Combine(a.Inner, b.Inner)
	if err != nil {
		return DiffProperty[T]{}, err
	}
	kind, _ := (DiffKindCombiner{}).Combine(a.Kind, b.Kind)
	return DiffProperty[T]{Inner: inner, Kind: kind}, nil
}
