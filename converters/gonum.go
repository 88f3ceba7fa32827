// SPDX-License-Identifier: MIT
// File: gonum.go
// Role: core.Graph <-> gonum simple/undirected graphs and graph6 strings.

package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/graph6"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/dimacsbench/core"
)

var (
	// ErrGraphNil is returned when a nil source graph is supplied.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrInvalidGraph6 is returned for strings that are not valid graph6.
	ErrInvalidGraph6 = errors.New("converters: invalid graph6 encoding")
)

// ToGonum copies g into a new gonum undirected graph with the same node IDs.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) *simple.UndirectedGraph {
	dst := simple.NewUndirectedGraph()
	if g == nil {
		return dst
	}
	for _, id := range g.Nodes() {
		dst.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		dst.SetEdge(simple.Edge{F: simple.Node(e.U), T: simple.Node(e.V)})
	}

	return dst
}

// FromGonum copies a gonum graph into a core.Graph, reading src.From as an
// undirected neighbourhood (graph.Undirected values, graph6.Graph, or a
// directed graph whose arcs are taken without direction). Node IDs are
// visited in ascending order so the result does not depend on gonum's map
// iteration.
//
// Errors:
//   - ErrGraphNil: src is nil.
//   - core.ErrNegativeNodeID, core.ErrLoopNotAllowed from the copy.
func FromGonum(src graph.Graph) (*core.Graph, error) {
	if src == nil {
		return nil, ErrGraphNil
	}

	ids := make([]int64, 0)
	nodes := src.Nodes()
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	dst := core.NewGraph()
	for _, id := range ids {
		if err := dst.AddNode(int(id)); err != nil {
			return nil, fmt.Errorf("converters: node %d: %w", id, err)
		}
	}
	// Each undirected edge is seen from both endpoints; the second AddEdge is a no-op.
	for _, uid := range ids {
		to := src.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			if _, err := dst.AddEdge(int(uid), int(vid)); err != nil {
				return nil, fmt.Errorf("converters: edge {%d,%d}: %w", uid, vid, err)
			}
		}
	}

	return dst, nil
}

// ToGraph6 returns the graph6 encoding of g.
func ToGraph6(g *core.Graph) string {
	return string(graph6.Encode(ToGonum(g)))
}

// FromGraph6 decodes a graph6 string into a core.Graph over nodes 0..n-1.
func FromGraph6(s string) (*core.Graph, error) {
	enc := graph6.Graph(s)
	if !graph6.IsValid(enc) {
		return nil, fmt.Errorf("%q: %w", s, ErrInvalidGraph6)
	}

	return FromGonum(enc)
}
