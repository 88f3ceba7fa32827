// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order, plus
// connected-component labelling built on the same walker.
//
// Determinism
//
//	core.Graph.Neighbors returns IDs in ascending order and BFS enqueues them
//	in that order, so the visit sequence is reproducible.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
//	comps, err := bfs.Components(g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      for an invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbour lookup fails.
//   - Wrapped errors returned by an OnVisit hook, or the context error.
package bfs
