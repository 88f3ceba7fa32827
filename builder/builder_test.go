// SPDX-License-Identifier: MIT
// File: builder_test.go
// Package builder_test verifies topology, counts, determinism and
// parameter validation for every Constructor.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dimacsbench/builder"
	"github.com/katalvlaran/dimacsbench/core"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, opts, cons...)
	require.NoError(t, err)

	return g
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
			check: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Nodes() {
					d, err := g.Degree(id)
					require.NoError(t, err)
					require.Equal(t, 4, d)
				}
			},
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0,
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			check: func(t *testing.T, g *core.Graph) {
				require.False(t, g.HasEdge(0, 1))
				require.False(t, g.HasEdge(2, 3))
				require.True(t, g.HasEdge(1, 4))
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				require.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, g.Edges())
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge(4, 0))
			},
		},
		{
			name: "Empty(3)", ctor: builder.Empty(3), wantV: 3, wantE: 0,
		},
		{
			name: "Star(4)", ctor: builder.Star(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				d, err := g.Degree(0)
				require.NoError(t, err)
				require.Equal(t, 3, d)
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge(4, 1), "rim closes")
				require.Equal(t, 3, g.Stats().MinDegree)
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				require.True(t, g.HasEdge(0, 3))
				require.False(t, g.HasEdge(2, 3), "no wrap between rows")
			},
		},
		{
			name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15,
		},
		{
			name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
		{
			name: "RandomGnm(6,15)", ctor: builder.RandomGnm(6, 15), wantV: 6, wantE: 15,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, nil, tc.ctor)
			require.Equal(t, tc.wantV, g.NodeCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestRandomGnm_ExactCountAndDeterminism(t *testing.T) {
	t.Parallel()

	for _, m := range []int{0, 1, 100, 736, 3000, 7750} {
		a := build(t, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomGnm(125, m))
		b := build(t, []builder.BuilderOption{builder.WithSeed(42)}, builder.RandomGnm(125, m))
		require.Equal(t, 125, a.NodeCount())
		require.Equal(t, m, a.EdgeCount(), "m=%d", m)
		require.True(t, a.Equal(b), "same seed, same graph (m=%d)", m)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	a := build(t, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(3)))}, builder.RandomSparse(40, 0.2))
	b := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(40, 0.2))
	require.True(t, a.Equal(b))
}

func TestWithOffset_DisjointUnion(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, builder.Apply(g, nil, builder.Cycle(3)))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithOffset(3)}, builder.Path(2)))

	require.Equal(t, []int{0, 1, 2, 3, 4}, g.Nodes())
	require.Equal(t, 4, g.EdgeCount())
	require.True(t, g.HasEdge(3, 4))
	require.False(t, g.HasEdge(2, 3))
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []builder.BuilderOption
		ctor    builder.Constructor
		wantErr error
	}{
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", nil, builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Empty(-1)", nil, builder.Empty(-1), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse p>1", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomGnm m>max", nil, builder.RandomGnm(4, 7), builder.ErrTooManyEdges},
		{"RandomGnm m<0", nil, builder.RandomGnm(4, -1), builder.ErrTooFewVertices},
		{"RandomGnm no rng", nil, builder.RandomGnm(4, 3), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.opts, tc.ctor)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithOffset(-1) })
}
