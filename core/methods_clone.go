// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Whole-graph transformations: Clone, Complement, Equal.
// Concurrency:
//   - Read locks for snapshotting; the source graph is never mutated.

package core

// Clone returns a deep copy of the node set and edges.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make(map[int]map[int]struct{}, len(g.adjacency)),
		edges:     g.edges,
	}
	for id, adj := range g.adjacency {
		cp := make(map[int]struct{}, len(adj))
		for nb := range adj {
			cp[nb] = struct{}{}
		}
		clone.adjacency[id] = cp
	}

	return clone
}

// Complement returns the graph on the same node set whose edges are exactly
// the non-adjacent pairs of g. Isolated nodes of g stay in the complement.
// Complexity: O(V²).
func (g *Graph) Complement() *Graph {
	ids := g.Nodes()

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{adjacency: make(map[int]map[int]struct{}, len(ids))}
	for _, id := range ids {
		out.adjacency[id] = make(map[int]struct{}, len(ids)-1-len(g.adjacency[id]))
	}
	for i, u := range ids {
		adj := g.adjacency[u]
		for _, v := range ids[i+1:] {
			if _, ok := adj[v]; ok {
				continue
			}
			out.adjacency[u][v] = struct{}{}
			out.adjacency[v][u] = struct{}{}
			out.edges++
		}
	}

	return out
}

// Equal reports whether g and other have identical node sets and edge sets
// (labelled equality; see algorithms.Isomorphic for the unlabelled check).
// Complexity: O(V + E).
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if g == nil || other == nil {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if len(g.adjacency) != len(other.adjacency) || g.edges != other.edges {
		return false
	}
	for id, adj := range g.adjacency {
		oadj, ok := other.adjacency[id]
		if !ok || len(oadj) != len(adj) {
			return false
		}
		for nb := range adj {
			if _, ok = oadj[nb]; !ok {
				return false
			}
		}
	}

	return true
}
