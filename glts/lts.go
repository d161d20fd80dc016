package glts

import "github.com/katalvlaran/gltsdiff/propalg"

// LTS is a GLTS specialized with propalg.LTSStateProp state
// properties and a caller-chosen transition label type TP. It embeds
// *GLTS so every GLTS method is promoted; LTS only adds the isInitial
// convenience queries that make sense once the state property shape
// is fixed.
type LTS[TP any] struct {
	*GLTS[propalg.LTSStateProp, TP]
}

// NewLTS creates an empty LTS, wiring in propalg.LTSStateCombiner as
// the state combiner by default.
func NewLTS[TP any](transitionCombiner propalg.Combiner[TP]) *LTS[TP] {
	return &LTS[TP]{GLTS: New[propalg.LTSStateProp, TP](
		WithStateCombiner[propalg.LTSStateProp, TP](propalg.LTSStateCombiner{}),
		WithTransitionCombiner[propalg.LTSStateProp, TP](transitionCombiner),
	)}
}

// IsInitial reports whether the given state is marked initial.
func (l *LTS[TP]) IsInitial(id StateID) (bool, error) {
	s, err := l.State(id)
	if err != nil {
		return false, err
	}
	return s.Property.Initial, nil
}

// InitialStates returns the IDs of all initial states, in the GLTS's
// deterministic ascending order.
func (l *LTS[TP]) InitialStates() []StateID {
	var out []StateID
	for _, id := range l.States() {
		s, _ := l.State(id)
		if s.Property.Initial {
			out = append(out, id)
		}
	}
	return out
}
