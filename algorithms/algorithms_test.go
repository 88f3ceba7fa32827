package algorithms_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dimacsbench/algorithms"
	"github.com/katalvlaran/dimacsbench/builder"
	"github.com/katalvlaran/dimacsbench/core"
	"github.com/stretchr/testify/require"
)

func gnm(t *testing.T, n, m int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomGnm(n, m))
	require.NoError(t, err)

	return g
}

// relabel returns g with node IDs shuffled by a seeded permutation.
func relabel(t *testing.T, g *core.Graph, seed int64) (*core.Graph, []int) {
	t.Helper()
	perm := rand.New(rand.NewSource(seed)).Perm(g.NodeCount())
	out := core.NewGraph()
	for _, id := range g.Nodes() {
		require.NoError(t, out.AddNode(perm[id]))
	}
	for _, e := range g.Edges() {
		_, err := out.AddEdge(perm[e.U], perm[e.V])
		require.NoError(t, err)
	}

	return out, perm
}

func TestIsomorphic_Relabelled(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ n, m int }{{10, 12}, {60, 300}, {125, 736}} {
		g := gnm(t, tc.n, tc.m, 11)
		h, _ := relabel(t, g, 99)

		m, ok := algorithms.FindIsomorphism(g, h)
		require.True(t, ok, "G(%d,%d)", tc.n, tc.m)
		require.Len(t, m, tc.n)
		for _, e := range g.Edges() {
			require.True(t, h.HasEdge(m[e.U], m[e.V]))
		}
	}
}

func TestIsomorphic_IdentityFastPath(t *testing.T) {
	t.Parallel()

	g := gnm(t, 30, 90, 5)
	m, ok := algorithms.FindIsomorphism(g, g.Clone())
	require.True(t, ok)
	for id, img := range m {
		require.Equal(t, id, img)
	}
}

func TestIsomorphic_Rejects(t *testing.T) {
	t.Parallel()

	c6, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)
	twoTriangles, err := builder.BuildGraph(nil, nil, builder.Cycle(3))
	require.NoError(t, err)
	require.NoError(t, builder.Apply(twoTriangles, []builder.BuilderOption{builder.WithOffset(3)}, builder.Cycle(3)))
	require.False(t, algorithms.Isomorphic(c6, twoTriangles), "same degree sequence, different structure")

	p4, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)
	star4, err := builder.BuildGraph(nil, nil, builder.Star(4))
	require.NoError(t, err)
	require.False(t, algorithms.Isomorphic(p4, star4), "degree sequence differs")

	require.False(t, algorithms.Isomorphic(c6, p4), "size differs")
	require.False(t, algorithms.Isomorphic(c6, nil))
	require.True(t, algorithms.Isomorphic(nil, nil))
	require.True(t, algorithms.Isomorphic(core.NewGraph(), core.NewGraph()))
}

func TestDegreeSequence(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.Star(4))
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 1, 1}, algorithms.DegreeSequence(g))
}

func TestIndependentSetAndClique(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, nil, builder.CompleteBipartite(2, 3))
	require.NoError(t, err)

	require.True(t, algorithms.IsIndependentSet(g, []int{2, 3, 4}))
	require.True(t, algorithms.IsIndependentSet(g, []int{0, 1, 0}))
	require.True(t, algorithms.IsIndependentSet(g, nil))
	require.False(t, algorithms.IsIndependentSet(g, []int{0, 2}))
	require.False(t, algorithms.IsIndependentSet(g, []int{9}))

	require.True(t, algorithms.IsClique(g, []int{0, 4}))
	require.False(t, algorithms.IsClique(g, []int{0, 1}))

	// An independent set of g is a clique of its complement.
	require.True(t, algorithms.IsClique(g.Complement(), []int{2, 3, 4}))
}
