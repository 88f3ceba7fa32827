package algorithms

import (
	"sort"

	"github.com/katalvlaran/dimacsbench/core"
)

// DegreeSequence returns node degrees in non-increasing order.
// Complexity: O(V log V).
func DegreeSequence(g *core.Graph) []int {
	ids := g.Nodes()
	seq := make([]int, 0, len(ids))
	for _, id := range ids {
		d, _ := g.Degree(id)
		seq = append(seq, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(seq)))

	return seq
}

// IsIndependentSet reports whether every ID in set is a node of g and no two
// of them are adjacent. Repeated IDs are ignored.
// Complexity: O(k²) for k = len(set).
func IsIndependentSet(g *core.Graph, set []int) bool {
	ids, ok := distinctNodes(g, set)
	if !ok {
		return false
	}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if g.HasEdge(ids[i], ids[j]) {
				return false
			}
		}
	}

	return true
}

// IsClique reports whether every ID in set is a node of g and every two of
// them are adjacent. Repeated IDs are ignored.
// Complexity: O(k²) for k = len(set).
func IsClique(g *core.Graph, set []int) bool {
	ids, ok := distinctNodes(g, set)
	if !ok {
		return false
	}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if !g.HasEdge(ids[i], ids[j]) {
				return false
			}
		}
	}

	return true
}

func distinctNodes(g *core.Graph, set []int) ([]int, bool) {
	seen := make(map[int]struct{}, len(set))
	out := make([]int, 0, len(set))
	for _, id := range set {
		if !g.HasNode(id) {
			return nil, false
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out, true
}
