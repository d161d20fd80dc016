package merge

import (
	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/match"
	"github.com/katalvlaran/gltsdiff/propalg"
)

// MergeDiffAutomaton merges two DiffAutomatons and re-validates the
// DiffKind nesting invariant on the result via
// glts.ValidateDiffAutomatonNesting, which is never implied by Merge
// itself: Merge combines state and transition properties through the
// supplied combiners without any notion of DiffKind nesting, so a
// merge of two individually valid DiffAutomatons is not guaranteed to
// produce one. This wrapper is the defense-in-depth check for that
// gap.
func MergeDiffAutomaton[TP any](
	lhs, rhs *glts.DiffAutomaton[TP],
	matching match.Matching,
	innerTransitionCombiner propalg.Combiner[TP],
) (*glts.DiffAutomaton[TP], error) {
	stateCombiner := propalg.DiffAutomatonStateCombiner{}
	transitionCombiner := propalg.DiffPropertyCombiner[TP]{Inner: innerTransitionCombiner}

	merged, err := Merge[propalg.DiffAutomatonStateProp, propalg.DiffProperty[TP]](
		lhs.GLTS, rhs.GLTS, matching, stateCombiner, transitionCombiner,
	)
	if err != nil {
		return nil, err
	}

	result := &glts.DiffAutomaton[TP]{GLTS: merged}
	if err := glts.ValidateDiffAutomatonNesting(result); err != nil {
		return nil, err
	}
	return result, nil
}
