// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges normalised (U < V) and sorted by (U, V).
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddEdge inserts the undirected edge {u,v}, creating missing endpoints.
//
// It reports whether the edge was new. Re-adding an existing edge, in either
// orientation, is a no-op that returns (false, nil).
//
// Errors:
//   - ErrNegativeNodeID: if u < 0 or v < 0.
//   - ErrLoopNotAllowed: if u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) (bool, error) {
	if u < 0 || v < 0 {
		return false, ErrNegativeNodeID
	}
	if u == v {
		return false, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	au := g.ensureNode(u)
	av := g.ensureNode(v)
	if _, exists := au[v]; exists {
		return false, nil
	}
	au[v] = struct{}{}
	av[u] = struct{}{}
	g.edges++

	return true, nil
}

// RemoveEdge deletes {u,v}; endpoints stay in the graph.
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edges--

	return nil
}

// HasEdge reports whether {u,v} exists. Symmetric: HasEdge(u,v) == HasEdge(v,u).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns |E|, counting each unordered pair once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every edge once, normalised and sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edges)
	for u, adj := range g.adjacency {
		for v := range adj {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
