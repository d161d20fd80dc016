package score

import "github.com/katalvlaran/gltsdiff/glts"

// stateIndex maps a GLTS's states to dense 0-based indices in the
// GLTS's own deterministic (ascending) order, the backbone every
// scorer in this package indexes its matrices by (package match keeps
// its own copy).
type stateIndex struct {
	ids []glts.StateID
	pos map[glts.StateID]int
}

func buildStateIndex[SP, TP any](g *glts.GLTS[SP, TP]) stateIndex {
	ids := g.States()
	pos := make(map[glts.StateID]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	return stateIndex{ids: ids, pos: pos}
}

// edgeRef is one endpoint of a transition as seen from the other
// endpoint: Other is the index of the state at the far end, Prop is
// the transition's property value.
type edgeRef[TP any] struct {
	Other int
	Prop  TP
}

// buildAdjacency returns, for every state index, the list of edgeRefs
// reachable via outgoing transitions (when outgoing is true) or
// incoming transitions (otherwise).
func buildAdjacency[SP, TP any](g *glts.GLTS[SP, TP], idx stateIndex, outgoing bool) [][]edgeRef[TP] {
	adj := make([][]edgeRef[TP], len(idx.ids))
	for i, id := range idx.ids {
		var tids []glts.TransitionID
		if outgoing {
			tids = g.Outgoing(id)
		} else {
			tids = g.Incoming(id)
		}
		refs := make([]edgeRef[TP], 0, len(tids))
		for _, tid := range tids {
			t, err := g.Transition(tid)
			if err != nil {
				continue
			}
			other := t.To
			if !outgoing {
				other = t.From
			}
			refs = append(refs, edgeRef[TP]{Other: idx.pos[other], Prop: t.Property})
		}
		adj[i] = refs
	}
	return adj
}

// pair is a pair of state indices, used to enumerate succ(l,r)/pred(l,r).
type pair struct{ L, R int }

// commonPairs enumerates M(l,r): the pairs of target (or source) state
// indices reachable from l and r via one combinable transition each.
func commonPairs[TP any](lAdj, rAdj []edgeRef[TP], transitionCombiner interface {
	AreCombinable(a, b TP) bool
}) []pair {
	var out []pair
	for _, le := range lAdj {
		for _, re := range rAdj {
			if transitionCombiner.AreCombinable(le.Prop, re.Prop) {
				out = append(out, pair{L: le.Other, R: re.Other})
			}
		}
	}
	return out
}
