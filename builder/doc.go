// SPDX-License-Identifier: MIT
// Package builder generates deterministic synthetic graphs over int node IDs.
//
// Every topology is a Constructor; BuildGraph creates a core.Graph and applies
// constructors in order, so fixtures compose:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomGnm(125, 736))
//
// Constructors number their nodes offset..offset+n-1 (see WithOffset), which
// keeps generated graphs contiguous and therefore encodable as DIMACS.
//
// Stochastic constructors (RandomSparse, RandomGnm) require an RNG supplied via
// WithSeed or WithRand; the same seed and call order yield identical graphs.
package builder
