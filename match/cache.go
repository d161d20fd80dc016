package match

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/propalg"
)

// combinabilityCache memoizes stateCombiner.AreCombinable results by
// (LHS, RHS) state-ID pair. The Walkinshaw matcher re-evaluates the
// same candidate pairs on every landmark-selection sweep and every
// expansion round, so a bounded LRU keeps those repeats O(1) without
// materializing a full |L|x|R| predicate matrix for the large graphs
// DynamicMatcher routes onto this path.
type combinabilityCache[SP, TP any] struct {
	lhs, rhs *glts.GLTS[SP, TP]
	combiner propalg.Combiner[SP]
	cache    *lru.Cache[pairID, bool]
}

// newCombinabilityCache builds a cache over the given graph pair,
// delegating to combiner on a miss, bounded to capacity entries.
func newCombinabilityCache[SP, TP any](lhs, rhs *glts.GLTS[SP, TP], combiner propalg.Combiner[SP], capacity int) (*combinabilityCache[SP, TP], error) {
	c, err := lru.New[pairID, bool](capacity)
	if err != nil {
		return nil, err
	}
	return &combinabilityCache[SP, TP]{lhs: lhs, rhs: rhs, combiner: combiner, cache: c}, nil
}

// AreCombinable reports whether the two states' properties are
// combinable, consulting the cache before the combiner.
func (c *combinabilityCache[SP, TP]) AreCombinable(l, r glts.StateID) bool {
	key := pairID{L: l, R: r}
	if v, ok := c.cache.Get(key); ok {
		return v
	}
	ls, _ := c.lhs.State(l)
	rs, _ := c.rhs.State(r)
	v := c.combiner.AreCombinable(ls.Property, rs.Property)
	c.cache.Add(key, v)
	return v
}
