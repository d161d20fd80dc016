package glts

import "github.com/katalvlaran/gltsdiff/propalg"

// Automaton is an LTS extended with an isAccepting flag per state,
// specialized with propalg.AutomatonStateProp.
type Automaton[TP any] struct {
	*GLTS[propalg.AutomatonStateProp, TP]
}

// NewAutomaton creates an empty Automaton, wiring in
// propalg.AutomatonStateCombiner as the state combiner by default.
func NewAutomaton[TP any](transitionCombiner propalg.Combiner[TP]) *Automaton[TP] {
	return &Automaton[TP]{GLTS: New[propalg.AutomatonStateProp, TP](
		WithStateCombiner[propalg.AutomatonStateProp, TP](propalg.AutomatonStateCombiner{}),
		WithTransitionCombiner[propalg.AutomatonStateProp, TP](transitionCombiner),
	)}
}

// IsInitial reports whether the given state is marked initial.
func (a *Automaton[TP]) IsInitial(id StateID) (bool, error) {
	s, err := a.State(id)
	if err != nil {
		return false, err
	}
	return s.Property.Initial, nil
}

// IsAccepting reports whether the given state is marked accepting.
func (a *Automaton[TP]) IsAccepting(id StateID) (bool, error) {
	s, err := a.State(id)
	if err != nil {
		return false, err
	}
	return s.Property.Accepting, nil
}

// AcceptingStates returns the IDs of all accepting states, ascending.
func (a *Automaton[TP]) AcceptingStates() []StateID {
	var out []StateID
	for _, id := range a.States() {
		s, _ := a.State(id)
		if s.Property.Accepting {
			out = append(out, id)
		}
	}
	return out
}
