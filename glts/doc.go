// Package glts defines the generalized labeled transition system that
// every comparison, scoring, matching, and merging operation in this
// module ultimately reads and writes: a directed multigraph whose
// state and transition property types are supplied by the caller as
// Go type parameters rather than fixed by an inheritance hierarchy.
//
// LTS, Automaton, and DiffAutomaton are not subtypes of GLTS; they are
// GLTS instantiated with specific property types (propalg.LTSStateProp,
// propalg.AutomatonStateProp, propalg.DiffAutomatonStateProp) plus a
// constructor that wires in the matching propalg.Combiner. A
// DiffAutomaton additionally carries a structural invariant — a
// state's DiffKind constrains the DiffKinds available to its incident
// transitions — enforced at mutation time by the invariant hook that
// NewDiffAutomaton installs rather than by the type system, and
// re-checkable on demand with ValidateDiffAutomatonNesting.
package glts
