// SPDX-License-Identifier: MIT
// File: builder.go
// Role: Graph accumulation and the end-of-input size check shared by both decoders.

package dimacs

import (
	"fmt"

	"github.com/katalvlaran/dimacsbench/core"
)

// graphBuilder owns the graph of one decode call. The graph is allocated
// when the first problem line is declared; declared isolated nodes are only
// materialized by finish, once the counts have been checked.
type graphBuilder struct {
	cfg      *config
	problem  Problem
	declared bool
	g        *core.Graph
}

func newGraphBuilder(cfg *config) *graphBuilder {
	return &graphBuilder{cfg: cfg}
}

// declare records p unless a problem line was already seen. Under
// WithDeclaredNodes a node count above MaxDeclaredNodes is rejected with
// ErrMalformedProblemLine.
func (b *graphBuilder) declare(p Problem, lineNo int, text string) error {
	if b.declared {
		b.cfg.report(Diagnostic{Kind: DiagDuplicateProblem, Line: lineNo, Text: text})
		return nil
	}
	if b.cfg.declaredNodes && p.Nodes > MaxDeclaredNodes {
		return fmt.Errorf("%d declared nodes, at most %d can be allocated: %w",
			p.Nodes, MaxDeclaredNodes, ErrMalformedProblemLine)
	}
	b.problem = p
	b.declared = true
	b.g = core.NewGraph()

	return nil
}

// inRange reports whether a 0-based endpoint lies below the declared count.
func (b *graphBuilder) inRange(id int) bool {
	return id < b.problem.Nodes
}

// addEdge inserts {u,v}; duplicates are no-ops. The caller has ruled out
// self-loops and checked inRange.
func (b *graphBuilder) addEdge(u, v int) error {
	if _, err := b.g.AddEdge(u, v); err != nil {
		return fmt.Errorf("add edge {%d,%d}: %w", u, v, err)
	}

	return nil
}

// finish validates the counts and hands the graph over.
func (b *graphBuilder) finish() (*core.Graph, error) {
	if !b.declared {
		return nil, ErrMissingProblemLine
	}
	nodes, edges := b.g.NodeCount(), b.g.EdgeCount()
	if b.cfg.declaredNodes {
		// Every endpoint is below N; fillDeclared adds the rest.
		nodes = b.problem.Nodes
	}
	if nodes != b.problem.Nodes || edges != b.problem.Edges {
		return nil, &SizeMismatchError{
			ExpectedNodes: b.problem.Nodes,
			ActualNodes:   nodes,
			ExpectedEdges: b.problem.Edges,
			ActualEdges:   edges,
		}
	}
	if b.cfg.declaredNodes {
		if err := b.fillDeclared(); err != nil {
			return nil, err
		}
	}
	b.cfg.logger.Debug().Int("nodes", nodes).Int("edges", edges).Msg("dimacs graph decoded")

	return b.g, nil
}

// fillDeclared adds the declared nodes no edge touched.
func (b *graphBuilder) fillDeclared() error {
	for id := 0; id < b.problem.Nodes; id++ {
		if b.g.HasNode(id) {
			continue
		}
		if err := b.g.AddNode(id); err != nil {
			return fmt.Errorf("add node %d: %w", id, err)
		}
	}

	return nil
}
