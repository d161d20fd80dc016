package glts

import "github.com/katalvlaran/gltsdiff/propalg"

// DiffAutomaton is an Automaton whose states and transitions carry a
// DiffKind, the output shape of a structure comparator. Its defining
// invariant — a transition's DiffKind must be compatible with the
// DiffKind of both its incident states — is not encoded in the type
// system; it is enforced at mutation time by the invariant hook wired
// in by NewDiffAutomaton (see nestingInvariant), and independently
// re-checkable on demand via ValidateDiffAutomatonNesting for graphs
// assembled without that hook (e.g. merge's output GLTS).
type DiffAutomaton[TP any] struct {
	*GLTS[propalg.DiffAutomatonStateProp, propalg.DiffProperty[TP]]
}

// NewDiffAutomaton creates an empty DiffAutomaton, wiring in
// propalg.DiffAutomatonStateCombiner, a propalg.DiffPropertyCombiner
// wrapping the caller's inner transition-label combiner, and the
// nesting-invariant hook so SetStateProperty/AddTransition reject any
// mutation that would violate it.
func NewDiffAutomaton[TP any](innerTransitionCombiner propalg.Combiner[TP]) *DiffAutomaton[TP] {
	return &DiffAutomaton[TP]{GLTS: New[propalg.DiffAutomatonStateProp, propalg.DiffProperty[TP]](
		WithStateCombiner[propalg.DiffAutomatonStateProp, propalg.DiffProperty[TP]](propalg.DiffAutomatonStateCombiner{}),
		WithTransitionCombiner[propalg.DiffAutomatonStateProp, propalg.DiffProperty[TP]](
			propalg.DiffPropertyCombiner[TP]{Inner: innerTransitionCombiner},
		),
		WithInvariant[propalg.DiffAutomatonStateProp, propalg.DiffProperty[TP]](nestingInvariant[TP]),
	)}
}

// FromAutomaton tags every state and transition of a with kind,
// producing one side of a structure-comparator input pair — REMOVED
// for what becomes the LHS, ADDED for what becomes the RHS — so that
// projecting the merged result back along the same kind recovers a.
// A state's "is-initial" aspect is tagged with kind too, iff the
// state was initial.
func FromAutomaton[TP any](a *Automaton[TP], kind propalg.DiffKind, innerTransitionCombiner propalg.Combiner[TP]) *DiffAutomaton[TP] {
	out := NewDiffAutomaton[TP](innerTransitionCombiner)
	for _, id := range a.States() {
		s, _ := a.State(id)
		prop := propalg.DiffAutomatonStateProp{Kind: kind, Accepting: s.Property.Accepting}
		if s.Property.Initial {
			prop.HasInitial = true
			prop.InitialKind = kind
		}
		_ = out.AddState(id, prop)
	}
	for _, tid := range a.Transitions() {
		t, _ := a.Transition(tid)
		_, _ = out.AddTransition(t.From, t.To, propalg.DiffProperty[TP]{Inner: t.Property, Kind: kind})
	}
	return out
}

// Kind returns the DiffKind of the given state.
func (d *DiffAutomaton[TP]) Kind(id StateID) (propalg.DiffKind, error) {
	s, err := d.State(id)
	if err != nil {
		return propalg.Unchanged, err
	}
	return s.Property.Kind, nil
}

// IsAccepting reports whether the given state is marked accepting.
func (d *DiffAutomaton[TP]) IsAccepting(id StateID) (bool, error) {
	s, err := d.State(id)
	if err != nil {
		return false, err
	}
	return s.Property.Accepting, nil
}

// compatibleKind reports whether a transition tagged with kind may be
// incident to a state tagged with stateKind: an UNCHANGED state
// accepts any transition kind (it exists on both sides, so either side
// may have added or removed edges around it); a non-UNCHANGED state
// only accepts transitions of its own exact kind, since an added
// state has no existence on the side a REMOVED or UNCHANGED transition
// would belong to, and symmetrically for a removed state.
func compatibleKind(stateKind, transitionKind propalg.DiffKind) bool {
	if stateKind == propalg.Unchanged {
		return true
	}
	return transitionKind == stateKind
}

// nestingInvariant is the WithInvariant hook NewDiffAutomaton wires
// in: it rejects a proposed SetStateProperty or AddTransition mutation
// that would make some transition incompatible with the DiffKind of an
// incident state, using direct field access rather than the locking
// State/Outgoing/Incoming accessors since the caller already holds
// g.mu for writing.
func nestingInvariant[TP any](
	g *GLTS[propalg.DiffAutomatonStateProp, propalg.DiffProperty[TP]],
	m Mutation[propalg.DiffAutomatonStateProp, propalg.DiffProperty[TP]],
) error {
	switch m.Kind {
	case MutationSetStateProperty:
		for tid := range g.outgoing[m.StateID] {
			if t, ok := g.transitions[tid]; ok && !compatibleKind(m.StateProp.Kind, t.Property.Kind) {
				return ErrNestingViolation
			}
		}
		for tid := range g.incoming[m.StateID] {
			if t, ok := g.transitions[tid]; ok && !compatibleKind(m.StateProp.Kind, t.Property.Kind) {
				return ErrNestingViolation
			}
		}
	case MutationAddTransition:
		from, ok := g.states[m.From]
		if !ok {
			return ErrStateNotFound
		}
		to, ok := g.states[m.To]
		if !ok {
			return ErrStateNotFound
		}
		if !compatibleKind(from.Property.Kind, m.TransProp.Kind) || !compatibleKind(to.Property.Kind, m.TransProp.Kind) {
			return ErrNestingViolation
		}
	}
	return nil
}

// ValidateDiffAutomatonNesting walks every transition and confirms its
// DiffKind is compatible with the DiffKind of both of its incident
// states. It returns ErrNestingViolation on the first violation found,
// scanning transitions in the GLTS's deterministic order so repeated
// validation of the same automaton reports the same first failure.
func ValidateDiffAutomatonNesting[TP any](d *DiffAutomaton[TP]) error {
	for _, tid := range d.Transitions() {
		t, err := d.Transition(tid)
		if err != nil {
			return err
		}
		fromKind, err := d.Kind(t.From)
		if err != nil {
			return err
		}
		toKind, err := d.Kind(t.To)
		if err != nil {
			return err
		}
		if !compatibleKind(fromKind, t.Property.Kind) || !compatibleKind(toKind, t.Property.Kind) {
			return ErrNestingViolation
		}
	}
	return nil
}
