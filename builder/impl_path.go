// SPDX-License-Identifier: MIT
// File: impl_path.go
// Role: Path P_n, cycle C_n and the edgeless graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dimacsbench/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	methodEmpty   = "Empty"
	minPathNodes  = 2
	minCycleNodes = 3
	minEmptyNodes = 0
)

// Path builds P_n: edges {i, i+1} for i in 0..n-2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addNodes(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: the path 0..n-1 closed by {n-1, 0}.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addNodes(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Empty adds n isolated nodes.
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minEmptyNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodEmpty, n, minEmptyNodes, ErrTooFewVertices)
		}

		return addNodes(g, cfg, methodEmpty, n)
	}
}
