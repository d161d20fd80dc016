package match

import (
	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/score"
)

// DynamicMatcher picks WalkinshawMatcher above Options.SizeCutoff
// cells and KuhnMunkresMatcher below it, mirroring
// score.DynamicScorer's size-based dispatch.
type DynamicMatcher[SP, TP any] struct {
	scorer score.Scorer[SP, TP]
	opts   Options
	seed   func(lhs, rhs *glts.GLTS[SP, TP]) []pairID
}

// NewDynamicMatcher builds a DynamicMatcher scoring pairs via scorer.
func NewDynamicMatcher[SP, TP any](scorer score.Scorer[SP, TP], opts ...Option) *DynamicMatcher[SP, TP] {
	return &DynamicMatcher[SP, TP]{scorer: scorer, opts: buildOptions(opts)}
}

var _ Matcher[struct{}, struct{}] = (*DynamicMatcher[struct{}, struct{}])(nil)

// Match dispatches to WalkinshawMatcher or KuhnMunkresMatcher by
// |states(LHS)|*|states(RHS)|.
func (d *DynamicMatcher[SP, TP]) Match(lhs, rhs *glts.GLTS[SP, TP]) (Matching, error) {
	if d.scorer == nil {
		return nil, ErrNilScorer
	}

	if lhs.StateCount()*rhs.StateCount() > d.opts.SizeCutoff {
		w := NewWalkinshawMatcher[SP, TP](d.scorer, optionsAsOpts(d.opts)...)
		w.seed = d.seed
		return w.Match(lhs, rhs)
	}
	return NewKuhnMunkresMatcher[SP, TP](d.scorer, optionsAsOpts(d.opts)...).Match(lhs, rhs)
}

// optionsAsOpts re-wraps an already-built Options as a single Option,
// so a parent matcher's resolved configuration propagates unchanged
// into whichever delegate DynamicMatcher picks.
func optionsAsOpts(o Options) []Option {
	return []Option{func(dst *Options) { *dst = o }}
}
