// SPDX-License-Identifier: MIT
package converters_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/dimacsbench/bfs"
	"github.com/katalvlaran/dimacsbench/builder"
	"github.com/katalvlaran/dimacsbench/converters"
	"github.com/katalvlaran/dimacsbench/core"
)

func TestGonum_RoundTrip(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(8)}, builder.RandomGnm(50, 200))
	require.NoError(t, err)

	gg := converters.ToGonum(g)
	require.Equal(t, 50, gg.Nodes().Len())
	require.Equal(t, 200, gg.Edges().Len())
	for _, e := range g.Edges() {
		require.True(t, gg.HasEdgeBetween(int64(e.U), int64(e.V)))
	}

	back, err := converters.FromGonum(gg)
	require.NoError(t, err)
	require.True(t, g.Equal(back))
}

func TestGonum_ComponentsAgreeWithTopo(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(2)}, builder.RandomGnm(80, 60))
	require.NoError(t, err)

	ours, err := bfs.Components(g)
	require.NoError(t, err)

	var theirs [][]int
	for _, comp := range topo.ConnectedComponents(converters.ToGonum(g)) {
		ids := make([]int, 0, len(comp))
		for _, n := range comp {
			ids = append(ids, int(n.ID()))
		}
		sort.Ints(ids)
		theirs = append(theirs, ids)
	}
	sort.Slice(theirs, func(i, j int) bool { return theirs[i][0] < theirs[j][0] })

	require.Equal(t, ours, theirs)
}

func TestFromGonum_Errors(t *testing.T) {
	t.Parallel()

	_, err := converters.FromGonum(nil)
	require.ErrorIs(t, err, converters.ErrGraphNil)

	neg := simple.NewUndirectedGraph()
	neg.AddNode(simple.Node(-1))
	_, err = converters.FromGonum(neg)
	require.ErrorIs(t, err, core.ErrNegativeNodeID)
}

func TestFromGonum_DirectedArcsBecomeEdges(t *testing.T) {
	t.Parallel()

	d := simple.NewDirectedGraph()
	d.SetEdge(simple.Edge{F: simple.Node(2), T: simple.Node(0)})
	d.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})

	g, err := converters.FromGonum(d)
	require.NoError(t, err)
	require.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}}, g.Edges())
}

func TestGraph6(t *testing.T) {
	t.Parallel()

	k3, err := builder.BuildGraph(nil, nil, builder.Complete(3))
	require.NoError(t, err)
	require.Equal(t, "Bw", converters.ToGraph6(k3))

	p3, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	require.Equal(t, "Bg", converters.ToGraph6(p3))

	back, err := converters.FromGraph6("Bg")
	require.NoError(t, err)
	require.True(t, p3.Equal(back))

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomGnm(70, 400))
	require.NoError(t, err)
	back, err = converters.FromGraph6(converters.ToGraph6(g))
	require.NoError(t, err)
	require.True(t, g.Equal(back))

	_, err = converters.FromGraph6("B")
	require.ErrorIs(t, err, converters.ErrInvalidGraph6)
}
