// SPDX-License-Identifier: MIT
// File: config.go
// Role: Resolved builder configuration and node-insertion helpers.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dimacsbench/core"
)

// builderConfig is the immutable result of applying BuilderOptions.
type builderConfig struct {
	// offset is added to every local index 0..n-1 a constructor emits.
	offset int
	// rng drives stochastic constructors; nil unless WithSeed/WithRand is set.
	rng *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a graph node ID.
func (c builderConfig) id(i int) int { return c.offset + i }

// addNodes inserts id(0)..id(n-1) into g.
func addNodes(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddNode(cfg.id(i)); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, cfg.id(i), err)
		}
	}

	return nil
}

// addEdge connects local indices i and j.
func addEdge(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.id(i), cfg.id(j)
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d, %d): %w", method, u, v, err)
	}

	return nil
}
