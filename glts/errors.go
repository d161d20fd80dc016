package glts

import "errors"

// Sentinel errors for glts graph operations.
var (
	// ErrEmptyStateID indicates the provided state ID is the empty string.
	ErrEmptyStateID = errors.New("glts: state ID is empty")

	// ErrStateNotFound indicates an operation referenced a non-existent state.
	ErrStateNotFound = errors.New("glts: state not found")

	// ErrStateExists indicates AddState was called with an ID already in use.
	ErrStateExists = errors.New("glts: state already exists")

	// ErrTransitionNotFound indicates an operation referenced a non-existent transition.
	ErrTransitionNotFound = errors.New("glts: transition not found")

	// ErrNestingViolation indicates a DiffAutomaton transition's DiffKind is
	// incompatible with the DiffKind of one of its incident states.
	ErrNestingViolation = errors.New("glts: diff nesting invariant violated")
)
