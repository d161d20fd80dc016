package match

import (
	"github.com/katalvlaran/gltsdiff/glts"
)

// Matching is an injective partial mapping from LHS state IDs to RHS
// state IDs. State identity is purely by glts.StateID, so a Matching
// is only meaningful relative to the specific (lhs, rhs) pair it was
// produced from.
type Matching map[glts.StateID]glts.StateID

// Matcher produces a Matching between the states of lhs and rhs.
type Matcher[SP, TP any] interface {
	Match(lhs, rhs *glts.GLTS[SP, TP]) (Matching, error)
}

// Options configures a matcher's numerical parameters.
type Options struct {
	// LandmarkThreshold is the minimum score a pair must reach to be
	// accepted as a Walkinshaw landmark.
	LandmarkThreshold float64

	// LandmarkRatio bounds how much a landmark's row/column runner-up
	// may score relative to the landmark itself.
	LandmarkRatio float64

	// SizeCutoff is the |L|*|R| threshold above which DynamicMatcher
	// picks WalkinshawMatcher over KuhnMunkresMatcher.
	SizeCutoff int

	// BruteForceLimit bounds |states(LHS)|*|states(RHS)| for
	// BruteForceMatcher; above it, Match returns ErrGraphTooLarge.
	BruteForceLimit int

	// CacheCapacity bounds WalkinshawMatcher's LRU cache of
	// AreCombinable results, re-consulted across its landmark and
	// expansion sweeps.
	CacheCapacity int
}

// Option configures Options.
type Option func(*Options)

// WithLandmarkThreshold sets the minimum landmark-acceptance score.
func WithLandmarkThreshold(t float64) Option {
	return func(o *Options) { o.LandmarkThreshold = t }
}

// WithLandmarkRatio sets the landmark row/column dominance ratio.
func WithLandmarkRatio(r float64) Option {
	return func(o *Options) { o.LandmarkRatio = r }
}

// WithSizeCutoff sets DynamicMatcher's |L|*|R| cutoff.
func WithSizeCutoff(n int) Option {
	return func(o *Options) { o.SizeCutoff = n }
}

// WithBruteForceLimit sets BruteForceMatcher's exhaustive-search cap.
func WithBruteForceLimit(n int) Option {
	return func(o *Options) { o.BruteForceLimit = n }
}

// WithCacheCapacity sets the combinability cache capacity.
func WithCacheCapacity(n int) Option {
	return func(o *Options) { o.CacheCapacity = n }
}

// defaultOptions: landmarkThreshold 0.5, landmarkRatio 0.5, a
// 2000-cell dynamic cutoff (modest relative to score's 45000, since
// matching is the more expensive of the two combinatorial stages), a
// brute-force cap generous enough for hand-written test fixtures but
// far below anything that would make exhaustive search impractical,
// and a combinability cache sized for the graphs the dynamic cutoff
// routes onto the Walkinshaw path.
func defaultOptions() Options {
	return Options{
		LandmarkThreshold: 0.5,
		LandmarkRatio:     0.5,
		SizeCutoff:        2000,
		BruteForceLimit:   144,
		CacheCapacity:     4096,
	}
}

func buildOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
