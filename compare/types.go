package compare

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/linalg"
	"github.com/katalvlaran/gltsdiff/match"
	"github.com/katalvlaran/gltsdiff/propalg"
	"github.com/katalvlaran/gltsdiff/score"
)

// ScorerKind selects which score.Scorer implementation Compare builds.
type ScorerKind int

const (
	// ScorerDynamic picks score.DynamicScorer (size-gated local/global).
	ScorerDynamic ScorerKind = iota
	// ScorerWalkinshawGlobal picks score.GlobalScorer (exact linear solve).
	ScorerWalkinshawGlobal
	// ScorerWalkinshawLocal picks score.LocalScorer (iterative refinement).
	ScorerWalkinshawLocal
)

// MatcherKind selects which match.Matcher implementation Compare builds.
type MatcherKind int

const (
	// MatcherDynamic picks match.DynamicMatcher (size-gated Kuhn-Munkres/Walkinshaw).
	MatcherDynamic MatcherKind = iota
	// MatcherBruteForce picks match.BruteForceMatcher (exhaustive search).
	MatcherBruteForce
	// MatcherKuhnMunkres picks match.KuhnMunkresMatcher (Hungarian assignment).
	MatcherKuhnMunkres
	// MatcherWalkinshaw picks match.WalkinshawMatcher (landmark + expansion).
	MatcherWalkinshaw
)

// Rewriter is an opaque, caller-supplied in-place post-processor run
// over the merged result. It is never implemented by this module; the
// hook exists so external collaborators can plug one in.
type Rewriter[SP, TP any] func(*glts.GLTS[SP, TP]) error

// options holds the resolved configuration for one Compare call.
type options[SP, TP any] struct {
	scorerKind  ScorerKind
	matcherKind MatcherKind
	scoreOpts   []score.Option
	matchOpts   []match.Option

	stateCombiner      propalg.Combiner[SP]
	transitionCombiner propalg.Combiner[TP]
	rewriter           Rewriter[SP, TP]
}

// CompareOption configures a Compare or CompareAll call.
type CompareOption[SP, TP any] func(*options[SP, TP])

// WithScorerKind selects the scorer variant.
func WithScorerKind[SP, TP any](kind ScorerKind) CompareOption[SP, TP] {
	return func(o *options[SP, TP]) { o.scorerKind = kind }
}

// WithMatcherKind selects the matcher variant.
func WithMatcherKind[SP, TP any](kind MatcherKind) CompareOption[SP, TP] {
	return func(o *options[SP, TP]) { o.matcherKind = kind }
}

// WithScoreOptions passes tuning parameters (attenuation, refinements,
// threshold) through to the chosen scorer.
func WithScoreOptions[SP, TP any](opts ...score.Option) CompareOption[SP, TP] {
	return func(o *options[SP, TP]) { o.scoreOpts = opts }
}

// WithMatchOptions passes tuning parameters (landmark threshold/ratio,
// size cutoff, brute-force limit, cache capacity) through to the
// chosen matcher.
func WithMatchOptions[SP, TP any](opts ...match.Option) CompareOption[SP, TP] {
	return func(o *options[SP, TP]) { o.matchOpts = opts }
}

// WithCombiners overrides the state and transition combiners used for
// scoring, matching and merging. When omitted, Compare uses the
// combiners already attached to the LHS graph.
func WithCombiners[SP, TP any](stateCombiner propalg.Combiner[SP], transitionCombiner propalg.Combiner[TP]) CompareOption[SP, TP] {
	return func(o *options[SP, TP]) {
		o.stateCombiner = stateCombiner
		o.transitionCombiner = transitionCombiner
	}
}

// WithRewriter installs a post-merge rewriter hook.
func WithRewriter[SP, TP any](r Rewriter[SP, TP]) CompareOption[SP, TP] {
	return func(o *options[SP, TP]) { o.rewriter = r }
}

func buildOptions[SP, TP any](lhs *glts.GLTS[SP, TP], opts []CompareOption[SP, TP]) options[SP, TP] {
	o := options[SP, TP]{
		stateCombiner:      lhs.StateCombiner(),
		transitionCombiner: lhs.TransitionCombiner(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CompareResult carries every artifact produced by a Compare call.
type CompareResult[SP, TP any] struct {
	// Merged is the result of merging LHS and RHS under Matching, after
	// any configured rewriter has run.
	Merged *glts.GLTS[SP, TP]
	// Matching is the state matching the configured matcher produced.
	Matching match.Matching
	// Scores is the similarity score matrix the configured scorer
	// produced, indexed [lhsIndex][rhsIndex] in glts.States() order.
	Scores *linalg.Dense
	// RunID uniquely identifies this comparison run.
	RunID uuid.UUID
}
