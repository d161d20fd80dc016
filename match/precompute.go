package match

import "github.com/katalvlaran/gltsdiff/glts"

// stateIndex maps a GLTS's states to dense 0-based indices in the
// GLTS's own deterministic (ascending) order, mirroring
// score.stateIndex — duplicated rather than exported because the two
// packages build different adjacency on top of it (match keys its
// neighbor lists by state id for landmark seeding and neighborhood
// expansion, score keeps index-based edge lists for its matrices).
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

// neighbor is one endpoint of a transition as seen from the other
// endpoint, paired with the transition's own property for
// combinability checks.
type neighbor[TP any] struct {
	Other glts.StateID
	Prop  TP
}

// buildAdjacency returns, for every state, the list of neighbors
// reachable via outgoing transitions (when outgoing is true) or
// incoming transitions (otherwise).
func buildAdjacency[SP, TP any](g *glts.GLTS[SP, TP], outgoing bool) map[glts.StateID][]neighbor[TP] {
	adj := make(map[glts.StateID][]neighbor[TP])
	for _, id := range g.States() {
		var tids []glts.TransitionID
		if outgoing {
			tids = g.Outgoing(id)
		} else {
			tids = g.Incoming(id)
		}
		refs := make([]neighbor[TP], 0, len(tids))
		for _, tid := range tids {
			t, err := g.Transition(tid)
			if err != nil {
				continue
			}
			other := t.To
			if !outgoing {
				other = t.From
			}
			refs = append(refs, neighbor[TP]{Other: other, Prop: t.Property})
		}
		adj[id] = refs
	}
	return adj
}
