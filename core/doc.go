// Package core defines the undirected simple Graph that every other package in
// dimacsbench produces or consumes.
//
// Nodes are identified by non-negative ints (0-based, as benchmark decoders
// number them). Edges are unordered pairs {u,v} with u != v; the graph never
// stores both (u,v) and (v,u), and re-adding an existing edge is a no-op.
//
// The Graph G = (V,E) offers:
//
//   - Idempotent node insertion (AddNode) and optional pre-allocation of
//     nodes 0..n-1 at construction time (WithNodes).
//   - Constant-time edge insertion and membership via a nested adjacency map:
//     adjacency[u][v] = struct{}{} mirrored as adjacency[v][u].
//   - Deterministic enumeration: Nodes(), Edges() and Neighbors() are sorted.
//   - Clone, Complement and Equal for benchmark-family transformations
//     (e.g. maximum clique instances are complements of independent-set ones).
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency map and the edge counter, so a
//	Graph may be shared between goroutines. Decoders build a fresh Graph per
//	call and never share one.
//
// Errors:
//
//	ErrNegativeNodeID - a node ID below zero was supplied.
//	ErrLoopNotAllowed - AddEdge(v, v) was attempted.
//	ErrNodeNotFound   - a query referenced a node that is not present.
//	ErrEdgeNotFound   - RemoveEdge referenced an edge that is not present.
package core
