// SPDX-License-Identifier: MIT
// File: options.go
// Role: Functional options. Option constructors panic on meaningless input;
// constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOffset shifts the node IDs emitted by every constructor by k, so that
// several constructors can build disjoint parts of one graph. Panics on k < 0.
func WithOffset(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithOffset(k<0)")
	}

	return func(c *builderConfig) { c.offset = k }
}
