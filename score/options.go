package score

// Options configures a scorer's numerical parameters.
type Options struct {
	// Attenuation (α) weights contributions from neighbouring pairs in
	// the iterative/linear fixpoint. Must lie in [0,1].
	Attenuation float64

	// Refinements is the number of Jacobi rounds LocalScorer runs.
	Refinements int

	// Threshold is the |L|*|R| cutoff above which DynamicScorer picks
	// LocalScorer over GlobalScorer.
	Threshold int
}

// Option configures Options.
type Option func(*Options)

// WithAttenuation sets the attenuation factor α.
func WithAttenuation(alpha float64) Option {
	return func(o *Options) { o.Attenuation = alpha }
}

// WithRefinements sets the number of local-scorer refinement rounds.
func WithRefinements(n int) Option {
	return func(o *Options) { o.Refinements = n }
}

// WithThreshold sets the dynamic scorer's size cutoff.
func WithThreshold(n int) Option {
	return func(o *Options) { o.Threshold = n }
}

// defaultOptions returns the scorer defaults: Attenuation 0.6,
// Refinements 5, and a 45000-cell dynamic threshold.
func defaultOptions() Options {
	return Options{
		Attenuation: 0.6,
		Refinements: 5,
		Threshold:   45000,
	}
}

func buildOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
