package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dimacsbench/core"
)

// Components partitions g into connected components. Each component lists
// its node IDs in ascending order; components are ordered by their smallest
// ID, so isolated nodes appear as singletons.
//
// Only WithContext and WithFilterNeighbor affect the result; a depth limit
// would split components and is rejected with ErrOptionViolation.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.MaxDepth != 0 {
		return nil, fmt.Errorf("%w: Components does not accept MaxDepth", ErrOptionViolation)
	}

	nodes := g.Nodes()
	w := newWalker(g, o, make(map[int]bool, len(nodes)))

	var comps [][]int
	for _, id := range nodes {
		if w.visited[id] {
			continue
		}
		res, err := w.run(id)
		if err != nil {
			return nil, err
		}
		comp := append([]int(nil), res.Order...)
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// IsConnected reports whether g has exactly one component. The empty graph
// is not connected.
func IsConnected(g *core.Graph) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, err
	}

	return len(comps) == 1, nil
}
