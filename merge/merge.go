package merge

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/match"
	"github.com/katalvlaran/gltsdiff/propalg"
)

// outPrefix namespaces output state IDs by originating side so that a
// merged/unmatched-LHS state and an unmatched-RHS state can never
// collide even when their source IDs are spelled the same way.
const (
	outPrefixLHS = "L:"
	outPrefixRHS = "R:"
)

// mergeInto inserts val under key into dst, combining with any
// existing value via combine. It fails on the first key whose combine
// call errors, rather than silently overwriting — the most restrictive
// of the source drafts' divergent duplicate-key behaviors, chosen so a
// silent last-write-wins merge can never mask an invariant violation.
func mergeInto[K comparable, V any](dst map[K]V, key K, val V, combine func(V, V) (V, error)) error {
	existing, ok := dst[key]
	if !ok {
		dst[key] = val
		return nil
	}
	combined, err := combine(existing, val)
	if err != nil {
		return err
	}
	dst[key] = combined
	return nil
}

// transitionKey identifies a merged (source, target) pair in the
// output graph, the granularity at which LHS and RHS transitions are
// checked for combinability.
type transitionKey struct {
	From, To glts.StateID
}

// pendingEdge carries one yet-to-be-combined transition through the
// cross-combination pass, alongside the output endpoints it was mapped
// to.
type pendingEdge[TP any] struct {
	key  transitionKey
	prop TP
}

// Merge combines lhs and rhs under matching into a single result GLTS.
//
// Preconditions, checked fail-fast: every matching key exists in lhs
// and every matching value exists in rhs (ErrDomainMismatch); the
// matching is injective in both directions (ErrNotInjective, LHS
// direction guaranteed by Go's map-key uniqueness, RHS direction
// checked explicitly); every matched pair is combinable under
// stateCombiner (ErrNotCombinable).
//
// Output states are emitted merged-pair-first in LHS-key order, then
// unmatched-LHS in id order, then unmatched-RHS in id order. Output
// transitions carry the image of their LHS/RHS endpoints under the
// matching; an LHS and an RHS transition landing on the same output
// (source, target) pair are combined when transitionCombiner allows
// it, else kept as parallel edges.
func Merge[SP, TP any](
	lhs, rhs *glts.GLTS[SP, TP],
	matching match.Matching,
	stateCombiner propalg.Combiner[SP],
	transitionCombiner propalg.Combiner[TP],
) (*glts.GLTS[SP, TP], error) {
	if stateCombiner == nil || transitionCombiner == nil {
		return nil, ErrNilCombiner
	}

	lhsKeys := make([]glts.StateID, 0, len(matching))
	for k := range matching {
		lhsKeys = append(lhsKeys, k)
	}
	sort.Slice(lhsKeys, func(i, j int) bool { return lhsKeys[i] < lhsKeys[j] })

	reverse := make(map[glts.StateID]glts.StateID, len(matching))
	for _, l := range lhsKeys {
		r := matching[l]
		if _, err := lhs.State(l); err != nil {
			return nil, fmt.Errorf("%w: %w: LHS state %q", ErrInvariantViolation, ErrDomainMismatch, l)
		}
		if _, err := rhs.State(r); err != nil {
			return nil, fmt.Errorf("%w: %w: RHS state %q", ErrInvariantViolation, ErrDomainMismatch, r)
		}
		if err := mergeInto(reverse, r, l, func(existing, incoming glts.StateID) (glts.StateID, error) {
			return "", fmt.Errorf("%w: %w: RHS state %q claimed by LHS states %q and %q",
				ErrInvariantViolation, ErrNotInjective, r, existing, incoming)
		}); err != nil {
			return nil, err
		}
	}

	out := glts.New[SP, TP](
		glts.WithStateCombiner[SP, TP](stateCombiner),
		glts.WithTransitionCombiner[SP, TP](transitionCombiner),
	)

	outID := make(map[sideState]glts.StateID, lhs.StateCount()+rhs.StateCount())

	for _, l := range lhsKeys {
		r := matching[l]
		lState, _ := lhs.State(l)
		rState, _ := rhs.State(r)
		if !stateCombiner.AreCombinable(lState.Property, rState.Property) {
			return nil, fmt.Errorf("%w: %w: LHS state %q, RHS state %q", ErrInvariantViolation, ErrNotCombinable, l, r)
		}
		prop, err := stateCombiner.Combine(lState.Property, rState.Property)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
		id := glts.StateID(outPrefixLHS + string(l))
		if err := out.AddState(id, prop); err != nil {
			return nil, err
		}
		outID[sideState{lhsSide, l}] = id
		outID[sideState{rhsSide, r}] = id
	}

	for _, l := range lhs.States() {
		if _, matched := matching[l]; matched {
			continue
		}
		lState, _ := lhs.State(l)
		id := glts.StateID(outPrefixLHS + string(l))
		if err := out.AddState(id, lState.Property); err != nil {
			return nil, err
		}
		outID[sideState{lhsSide, l}] = id
	}

	for _, r := range rhs.States() {
		if _, matched := reverse[r]; matched {
			continue
		}
		rState, _ := rhs.State(r)
		id := glts.StateID(outPrefixRHS + string(r))
		if err := out.AddState(id, rState.Property); err != nil {
			return nil, err
		}
		outID[sideState{rhsSide, r}] = id
	}

	var lhsPending, rhsPending []pendingEdge[TP]
	for _, tid := range lhs.Transitions() {
		t, _ := lhs.Transition(tid)
		key := transitionKey{From: outID[sideState{lhsSide, t.From}], To: outID[sideState{lhsSide, t.To}]}
		lhsPending = append(lhsPending, pendingEdge[TP]{key: key, prop: t.Property})
	}
	for _, tid := range rhs.Transitions() {
		t, _ := rhs.Transition(tid)
		key := transitionKey{From: outID[sideState{rhsSide, t.From}], To: outID[sideState{rhsSide, t.To}]}
		rhsPending = append(rhsPending, pendingEdge[TP]{key: key, prop: t.Property})
	}

	consumed := make([]bool, len(rhsPending))
	for _, le := range lhsPending {
		combinedIdx := -1
		for j, re := range rhsPending {
			if consumed[j] || re.key != le.key {
				continue
			}
			if transitionCombiner.AreCombinable(le.prop, re.prop) {
				combinedIdx = j
				break
			}
		}
		if combinedIdx >= 0 {
			consumed[combinedIdx] = true
			prop, err := transitionCombiner.Combine(le.prop, rhsPending[combinedIdx].prop)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
			}
			if _, err := out.AddTransition(le.key.From, le.key.To, prop); err != nil {
				return nil, err
			}
			continue
		}
		if _, err := out.AddTransition(le.key.From, le.key.To, le.prop); err != nil {
			return nil, err
		}
	}
	for j, re := range rhsPending {
		if consumed[j] {
			continue
		}
		if _, err := out.AddTransition(re.key.From, re.key.To, re.prop); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// side distinguishes which input graph a sideState's ID is drawn from,
// since the matching lets an LHS and an RHS state share the same
// textual StateID without referring to the same output state.
type side int

const (
	lhsSide side = iota
	rhsSide
)

// sideState keys the lhs/rhs-ID-to-output-ID lookup table built once
// per Merge call.
type sideState struct {
	s  side
	id glts.StateID
}
