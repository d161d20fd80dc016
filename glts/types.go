package glts

import (
	"sync"

	"github.com/katalvlaran/gltsdiff/propalg"
)

// StateID uniquely identifies a State within its GLTS.
type StateID string

// TransitionID uniquely identifies a Transition within its GLTS.
type TransitionID string

// State is a node in the system, carrying a caller-defined property
// value of type SP (e.g. propalg.AutomatonStateProp).
type State[SP any] struct {
	ID       StateID
	Property SP
}

// Transition is a directed edge From one state To another, carrying a
// caller-defined property value of type TP (e.g. a label string, or
// propalg.DiffProperty[string]).
type Transition[TP any] struct {
	ID       TransitionID
	From     StateID
	To       StateID
	Property TP
}

// GLTSOption configures a GLTS before it is used.
type GLTSOption[SP, TP any] func(g *GLTS[SP, TP])

// WithStateCombiner installs the propalg.Combiner used to merge two
// states' properties when a structure comparator combines them.
func WithStateCombiner[SP, TP any](c propalg.Combiner[SP]) GLTSOption[SP, TP] {
	return func(g *GLTS[SP, TP]) { g.stateCombiner = c }
}

// WithTransitionCombiner installs the propalg.Combiner used to merge
// two transitions' properties when they collide during a merge.
func WithTransitionCombiner[SP, TP any](c propalg.Combiner[TP]) GLTSOption[SP, TP] {
	return func(g *GLTS[SP, TP]) { g.transitionCombiner = c }
}

// MutationKind identifies which kind of mutation an installed
// invariant hook is being asked to validate.
type MutationKind int

const (
	// MutationSetStateProperty proposes overwriting an existing state's property.
	MutationSetStateProperty MutationKind = iota
	// MutationAddTransition proposes inserting a new transition.
	MutationAddTransition
)

// Mutation describes a proposed mutation, passed to an installed
// invariant hook before it is committed so the hook can reject it.
type Mutation[SP, TP any] struct {
	Kind MutationKind

	// Populated for MutationSetStateProperty.
	StateID   StateID
	StateProp SP

	// Populated for MutationAddTransition.
	From, To  StateID
	TransProp TP
}

// WithInvariant installs a schema-validator hook consulted on every
// SetStateProperty and AddTransition call before the mutation is
// applied; a non-nil error aborts the mutation. DiffAutomaton uses
// this to enforce its diff-nesting invariant at the point of mutation
// rather than only on demand.
func WithInvariant[SP, TP any](fn func(g *GLTS[SP, TP], m Mutation[SP, TP]) error) GLTSOption[SP, TP] {
	return func(g *GLTS[SP, TP]) { g.invariant = fn }
}

// GLTS is a directed multigraph whose state and transition properties
// are caller-supplied type parameters. Mutation is guarded by a single
// RWMutex; concurrent readers are supported but GLTS instances in this
// module are built by a single writer (typically a compare.Compare
// call) and then only read, unlike the concurrently-mutated graph this
// package's structure is adapted from.
type GLTS[SP, TP any] struct {
	mu sync.RWMutex

	nextTransitionID uint64
	states           map[StateID]*State[SP]
	transitions      map[TransitionID]*Transition[TP]

	// outgoing[from][transitionID] = struct{}{}; incoming mirrors it.
	outgoing map[StateID]map[TransitionID]struct{}
	incoming map[StateID]map[TransitionID]struct{}

	stateCombiner      propalg.Combiner[SP]
	transitionCombiner propalg.Combiner[TP]

	invariant func(g *GLTS[SP, TP], m Mutation[SP, TP]) error
}

// New creates an empty GLTS with the given options applied.
func New[SP, TP any](opts ...GLTSOption[SP, TP]) *GLTS[SP, TP] {
	g := &GLTS[SP, TP]{
		states:      make(map[StateID]*State[SP]),
		transitions: make(map[TransitionID]*Transition[TP]),
		outgoing:    make(map[StateID]map[TransitionID]struct{}),
		incoming:    make(map[StateID]map[TransitionID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// StateCombiner returns the installed state property combiner, or nil
// if none was configured via WithStateCombiner.
func (g *GLTS[SP, TP]) StateCombiner() propalg.Combiner[SP] { return g.stateCombiner }

// TransitionCombiner returns the installed transition property
// combiner, or nil if none was configured via WithTransitionCombiner.
func (g *GLTS[SP, TP]) TransitionCombiner() propalg.Combiner[TP] { return g.transitionCombiner }
