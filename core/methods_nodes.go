// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and Neighbors() return IDs sorted ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddNode inserts a node if missing (idempotent).
//
// Errors:
//   - ErrNegativeNodeID: if id < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int) error {
	if id < 0 {
		return ErrNegativeNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)

	return nil
}

// HasNode reports whether id is present. Negative IDs are never present.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	if id < 0 {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// NodeCount returns |V|.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Nodes returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Ints(ids)

	return ids
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrNodeNotFound: if id is not present.
//
// Complexity: O(d log d) where d = Degree(id).
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	adj, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrNodeNotFound
	}
	out := make([]int, 0, len(adj))
	for nb := range adj {
		out = append(out, nb)
	}
	g.mu.RUnlock()
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrNodeNotFound: if id is not present.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	adj, ok := g.adjacency[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(adj), nil
}

// Stats produces a snapshot of node/edge counts and degree extremes.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{NodeCount: len(g.adjacency), EdgeCount: g.edges}
	first := true
	for _, adj := range g.adjacency {
		d := len(adj)
		if d == 0 {
			st.IsolatedNodes++
		}
		if first || d > st.MaxDegree {
			st.MaxDegree = d
		}
		if first || d < st.MinDegree {
			st.MinDegree = d
		}
		first = false
	}
	if n := st.NodeCount; n > 1 {
		st.Density = 2 * float64(st.EdgeCount) / float64(n*(n-1))
	}

	return st
}

// ensureNode allocates the adjacency bucket for id. Caller holds mu for writing.
func (g *Graph) ensureNode(id int) map[int]struct{} {
	adj, ok := g.adjacency[id]
	if !ok {
		adj = make(map[int]struct{})
		g.adjacency[id] = adj
	}

	return adj
}
