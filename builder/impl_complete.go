// SPDX-License-Identifier: MIT
// File: impl_complete.go
// Role: Complete graph K_n and complete bipartite graph K_{n1,n2}.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dimacsbench/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete builds K_n: nodes 0..n-1 and every pair {i,j}, i < j, emitted in
// lexicographic order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addNodes(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2}: left side 0..n1-1, right side
// n1..n1+n2-1, every left node joined to every right node.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be >= %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		if err := addNodes(g, cfg, methodCompleteBipartite, n1+n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(g, cfg, methodCompleteBipartite, i, n1+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
