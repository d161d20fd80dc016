package glts

import "github.com/katalvlaran/gltsdiff/propalg"

// Map builds a new GLTS with the same topology as src, transforming
// every state and transition property through stateMap/transMap. It
// never eliminates states or transitions; use Project when the target
// property type may reject (eliminate) individual elements.
func Map[SP, TP, SP2, TP2 any](src *GLTS[SP, TP], stateMap func(SP) SP2, transMap func(TP) TP2, opts ...GLTSOption[SP2, TP2]) *GLTS[SP2, TP2] {
	dst := New[SP2, TP2](opts...)
	for _, id := range src.States() {
		s, _ := src.State(id)
		_ = dst.AddState(id, stateMap(s.Property))
	}
	for _, tid := range src.Transitions() {
		t, _ := src.Transition(tid)
		_, _ = dst.AddTransition(t.From, t.To, transMap(t.Property))
	}
	return dst
}

// StateProjector projects a state property of type SP, along an
// element of type U, onto a (possibly different) property type SP2 —
// the general shape projection takes when it also changes the
// property's type, as propalg.AutomatonStatePropertyProjector does.
type StateProjector[SP, SP2, U any] interface {
	Project(prop SP, along U) (SP2, bool)
}

// TransitionProjector is StateProjector's transition-property analogue.
type TransitionProjector[TP, TP2, U any] interface {
	Project(prop TP, along U) (TP2, bool)
}

// Project produces a new GLTS retaining only the states and
// transitions of src whose properties survive projection along along:
// a state survives iff stateProjector keeps it;
// a transition survives iff transProjector keeps it AND both its
// endpoints survived. Iteration is in src's deterministic id order, so
// the result's own insertion order is deterministic too.
func Project[SP, TP, SP2, TP2, U any](
	src *GLTS[SP, TP],
	along U,
	stateProjector StateProjector[SP, SP2, U],
	transProjector TransitionProjector[TP, TP2, U],
	opts ...GLTSOption[SP2, TP2],
) *GLTS[SP2, TP2] {
	dst := New[SP2, TP2](opts...)

	kept := make(map[StateID]bool, src.StateCount())
	for _, id := range src.States() {
		s, _ := src.State(id)
		prop, ok := stateProjector.Project(s.Property, along)
		if !ok {
			continue
		}
		kept[id] = true
		_ = dst.AddState(id, prop)
	}

	for _, tid := range src.Transitions() {
		t, _ := src.Transition(tid)
		if !kept[t.From] || !kept[t.To] {
			continue
		}
		prop, ok := transProjector.Project(t.Property, along)
		if !ok {
			continue
		}
		_, _ = dst.AddTransition(t.From, t.To, prop)
	}

	return dst
}

// ProjectDiffAutomaton collapses a DiffAutomaton onto one of its
// original sides by projecting every state and transition property
// along the given DiffKind, dropping whatever the projector
// eliminates. Passing propalg.Removed recovers (an isomorphic copy of)
// the left-hand input to the comparison that produced d;
// propalg.Added recovers the right-hand input. It is the DiffAutomaton
// specialisation of the generic Project above, fixing the concrete
// projector pair (AutomatonStatePropertyProjector, DiffPropertyProjector)
// and unwrapping DiffProperty[TP] to its Inner value, which the generic
// form's arbitrary TP2 cannot do on its own.
//
// Transitions whose endpoints get eliminated are dropped along with
// their endpoint, even if the transition's own property would
// otherwise survive projection — a transition cannot outlive either of
// its incident states.
func ProjectDiffAutomaton[TP any](d *DiffAutomaton[TP], along propalg.DiffKind, transitionCombiner propalg.Combiner[TP]) *Automaton[TP] {
	out := NewAutomaton[TP](transitionCombiner)
	statesProj := propalg.AutomatonStatePropertyProjector{}
	transProj := propalg.DiffPropertyProjector[TP]{}

	kept := make(map[StateID]bool)
	for _, id := range d.States() {
		s, _ := d.State(id)
		prop, ok := statesProj.Project(s.Property, along)
		if !ok {
			continue
		}
		kept[id] = true
		_ = out.AddState(id, prop)
	}

	for _, tid := range d.Transitions() {
		t, _ := d.Transition(tid)
		if !kept[t.From] || !kept[t.To] {
			continue
		}
		diffProp, ok := transProj.Project(t.Property, along)
		if !ok {
			continue
		}
		_, _ = out.AddTransition(t.From, t.To, diffProp.Inner)
	}

	return out
}
