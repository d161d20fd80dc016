package compare

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/match"
	"github.com/katalvlaran/gltsdiff/merge"
	"github.com/katalvlaran/gltsdiff/score"
)

// buildScorer constructs the score.Scorer selected by kind.
func buildScorer[SP, TP any](kind ScorerKind, opts []score.Option) score.Scorer[SP, TP] {
	switch kind {
	case ScorerWalkinshawGlobal:
		return score.NewGlobalScorer[SP, TP](opts...)
	case ScorerWalkinshawLocal:
		return score.NewLocalScorer[SP, TP](opts...)
	default:
		return score.NewDynamicScorer[SP, TP](opts...)
	}
}

// buildMatcher constructs the match.Matcher selected by kind. scorer
// is unused by MatcherBruteForce, which needs none.
func buildMatcher[SP, TP any](kind MatcherKind, scorer score.Scorer[SP, TP], opts []match.Option) match.Matcher[SP, TP] {
	switch kind {
	case MatcherBruteForce:
		return match.NewBruteForceMatcher[SP, TP](opts...)
	case MatcherKuhnMunkres:
		return match.NewKuhnMunkresMatcher[SP, TP](scorer, opts...)
	case MatcherWalkinshaw:
		return match.NewWalkinshawMatcher[SP, TP](scorer, opts...)
	default:
		return match.NewDynamicMatcher[SP, TP](scorer, opts...)
	}
}

// Compare scores, matches and merges lhs against rhs, then runs any
// configured rewriter over the merged result.
func Compare[SP, TP any](lhs, rhs *glts.GLTS[SP, TP], opts ...CompareOption[SP, TP]) (CompareResult[SP, TP], error) {
	o := buildOptions(lhs, opts)
	if o.stateCombiner == nil || o.transitionCombiner == nil {
		return CompareResult[SP, TP]{}, fmt.Errorf("%w: no state/transition combiner attached to LHS or supplied via WithCombiners", ErrInvalidArgument)
	}

	scorer := buildScorer[SP, TP](o.scorerKind, o.scoreOpts)
	scores, err := scorer.Score(lhs, rhs)
	if err != nil {
		return CompareResult[SP, TP]{}, err
	}

	// The matcher pulls its matrix through the Scorer interface; hand
	// it the matrix just computed rather than solving the same system
	// a second time.
	matcher := buildMatcher[SP, TP](o.matcherKind, score.NewPrecomputedScorer[SP, TP](scores), o.matchOpts)
	matching, err := matcher.Match(lhs, rhs)
	if err != nil {
		return CompareResult[SP, TP]{}, err
	}

	merged, err := merge.Merge[SP, TP](lhs, rhs, matching, o.stateCombiner, o.transitionCombiner)
	if err != nil {
		return CompareResult[SP, TP]{}, err
	}

	if o.rewriter != nil {
		if err := o.rewriter(merged); err != nil {
			return CompareResult[SP, TP]{}, fmt.Errorf("compare: rewriter failed: %w", err)
		}
	}

	return CompareResult[SP, TP]{
		Merged:   merged,
		Matching: matching,
		Scores:   scores,
		RunID:    uuid.New(),
	}, nil
}

// CompareAll folds Compare pairwise, left to right, over at least two
// inputs: compare(compare(compare(g1,g2), g3), g4) ...
func CompareAll[SP, TP any](inputs []*glts.GLTS[SP, TP], opts ...CompareOption[SP, TP]) (CompareResult[SP, TP], error) {
	if len(inputs) < 2 {
		return CompareResult[SP, TP]{}, fmt.Errorf("%w: CompareAll requires at least two inputs, got %d", ErrInvalidArgument, len(inputs))
	}

	acc, err := Compare(inputs[0], inputs[1], opts...)
	if err != nil {
		return CompareResult[SP, TP]{}, err
	}
	for _, next := range inputs[2:] {
		acc, err = Compare(acc.Merged, next, opts...)
		if err != nil {
			return CompareResult[SP, TP]{}, err
		}
	}
	return acc, nil
}
