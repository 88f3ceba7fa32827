// SPDX-License-Identifier: MIT
// File: impl_star.go
// Role: Star and wheel topologies with the hub at local index 0.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dimacsbench/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // rim is a cycle of n-1 >= 3 nodes
)

// Star builds a hub 0 joined to leaves 1..n-1.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addNodes(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a star on n nodes whose leaves 1..n-1 also form a cycle.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Star(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: hub: %w", methodWheel, err)
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := addEdge(g, cfg, methodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}

		return nil
	}
}
