package match

import (
	"math"

	"github.com/katalvlaran/gltsdiff/glts"
	"github.com/katalvlaran/gltsdiff/score"
)

// KuhnMunkresMatcher finds a maximum-weight perfect matching over a
// square padding of the score matrix, then discards any assignment
// whose original score is zero or whose endpoints are not combinable.
type KuhnMunkresMatcher[SP, TP any] struct {
	scorer score.Scorer[SP, TP]
	opts   Options
}

// NewKuhnMunkresMatcher builds a KuhnMunkresMatcher scoring pairs via
// scorer.
func NewKuhnMunkresMatcher[SP, TP any](scorer score.Scorer[SP, TP], opts ...Option) *KuhnMunkresMatcher[SP, TP] {
	return &KuhnMunkresMatcher[SP, TP]{scorer: scorer, opts: buildOptions(opts)}
}

var _ Matcher[struct{}, struct{}] = (*KuhnMunkresMatcher[struct{}, struct{}])(nil)

// Match computes the score matrix, pads it to square, runs the
// Hungarian algorithm, and discards zero/non-combinable assignments.
func (k *KuhnMunkresMatcher[SP, TP]) Match(lhs, rhs *glts.GLTS[SP, TP]) (Matching, error) {
	if k.scorer == nil {
		return nil, ErrNilScorer
	}
	stateCombiner := lhs.StateCombiner()
	if stateCombiner == nil {
		return nil, ErrNilCombiner
	}

	scores, err := k.scorer.Score(lhs, rhs)
	if err != nil {
		return nil, err
	}

	lIDs, rIDs := lhs.States(), rhs.States()
	n, m := len(lIDs), len(rIDs)

	weight := make([][]float64, n)
	for i, lid := range lIDs {
		ls, _ := lhs.State(lid)
		weight[i] = make([]float64, m)
		for j, rid := range rIDs {
			rs, _ := rhs.State(rid)
			v, _ := scores.At(i, j)
			// Defensive re-check: the scorer contract already zeroes
			// non-combinable pairs, but Kuhn-Munkres must never assign
			// weight to a pair the state combiner itself rejects.
			if v != 0 && !stateCombiner.AreCombinable(ls.Property, rs.Property) {
				v = 0
			}
			weight[i][j] = v
		}
	}

	assignment := maxWeightAssignment(weight, n, m)

	matching := make(Matching)
	for i, j := range assignment {
		if i < 0 || i >= n || j < 0 || j >= m {
			continue
		}
		if weight[i][j] == 0 {
			continue
		}
		matching[lIDs[i]] = rIDs[j]
	}
	return matching, nil
}

// maxWeightAssignment pads weight to an N x N square (N = max(n,m))
// with zero rows/columns, runs the Hungarian algorithm to minimize
// negated weight (equivalently maximize weight), and returns, for
// every original row i < n, the matched original column j < m, or -1
// if i was assigned to a padding column.
func maxWeightAssignment(weight [][]float64, n, m int) []int {
	size := n
	if m > size {
		size = m
	}
	if size == 0 {
		return nil
	}

	cost := make([][]float64, size)
	for i := 0; i < size; i++ {
		cost[i] = make([]float64, size)
		for j := 0; j < size; j++ {
			var w float64
			if i < n && j < m {
				w = weight[i][j]
			}
			cost[i][j] = -w
		}
	}

	colOfRow := hungarianMinCost(cost)

	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = -1
	}
	for i := 0; i < n; i++ {
		if j := colOfRow[i]; j < m {
			out[i] = j
		}
	}
	return out
}

// hungarianMinCost solves the square assignment problem minimizing
// total cost via the O(n^3) potential-based Kuhn-Munkres algorithm.
// rows and columns are 1-indexed internally (index 0 is the sentinel
// "no row"/"no column" marker); the returned slice is 0-indexed,
// colOfRow[i] giving the column matched to row i.
//
// Determinism: the inner scan over unvisited columns always proceeds
// in fixed ascending order, so repeated calls on identical input
// produce identical output, and ties between equally-cheap columns are
// always resolved in favor of the lowest column index reached first.
func hungarianMinCost(cost [][]float64) []int {
	n := len(cost)
	const inf = math.MaxFloat64

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = row currently matched to column j
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for k := range minv {
			minv[k] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	colOfRow := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			colOfRow[p[j]-1] = j - 1
		}
	}
	return colOfRow
}
