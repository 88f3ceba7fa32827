package core_test

import (
	"fmt"

	"github.com/katalvlaran/dimacsbench/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// Endpoints are created on demand; the second insert is the same edge.
	_, _ = g.AddEdge(0, 1)
	added, _ := g.AddEdge(1, 0)
	_, _ = g.AddEdge(1, 2)

	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Edges:", g.EdgeCount(), "re-added:", added)
	fmt.Println("Edge 2-1 exists?", g.HasEdge(2, 1))

	// Output:
	// Nodes: [0 1 2]
	// Edges: 2 re-added: false
	// Edge 2-1 exists? true
}

// ExampleGraph_Complement shows the independent-set / clique duality.
func ExampleGraph_Complement() {
	g := core.NewGraph(core.WithNodes(4))
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(2, 3)

	fmt.Println(g.Complement().Edges())

	// Output:
	// [{0 2} {0 3} {1 2} {1 3}]
}
