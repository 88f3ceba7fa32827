// SPDX-License-Identifier: MIT
// Package builder: sentinel error set. Constructors wrap these with their
// method name and parameters; match with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyEdges indicates an edge count above n(n-1)/2.
var ErrTooManyEdges = errors.New("builder: edge count exceeds simple graph maximum")

// ErrConstructFailed indicates a nil constructor or nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")
