// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeID indicates that a node ID below zero was supplied.
	ErrNegativeNodeID = errors.New("core: negative node id")

	// ErrLoopNotAllowed indicates a self-loop was attempted; the graph is simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is an undirected edge normalised so that U < V.
type Edge struct {
	U int
	V int
}

// NewEdge returns the normalised edge {u,v}.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithNodes pre-allocates nodes 0..n-1. Values n <= 0 add nothing.
func WithNodes(n int) GraphOption {
	return func(g *Graph) {
		for id := 0; id < n; id++ {
			g.adjacency[id] = make(map[int]struct{})
		}
	}
}

// Graph is an undirected simple graph over int node IDs.
//
// mu guards adjacency and edges; edges counts each unordered pair once.
type Graph struct {
	mu sync.RWMutex

	// adjacency[u][v] = struct{}{} for every edge {u,v}, stored in both directions.
	adjacency map[int]map[int]struct{}
	edges     int
}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(1) plus the cost of the options.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[int]map[int]struct{})}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	IsolatedNodes int
	MaxDegree     int
	MinDegree     int
	// Density is 2|E| / (|V|(|V|-1)); zero for graphs with fewer than two nodes.
	Density float64
}
