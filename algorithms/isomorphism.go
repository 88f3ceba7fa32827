// Package algorithms implements graph algorithms on core.Graph.
//
// # Isomorphism
//
// Steps:
//  1. Reject on node count, edge count or degree sequence.
//  2. Accept labelled-equal graphs with the identity mapping.
//  3. Refine node colours on both graphs with a shared palette: a node's
//     next colour is its colour plus the multiset of neighbour colours.
//     Differing colour histograms reject.
//  4. Backtrack: map nodes of a, most-constrained first, onto unused nodes
//     of b with the same colour whose mapped neighbourhoods agree.
//
// Worst case exponential; random and benchmark graphs refine to small
// classes and resolve in near-linear time.
package algorithms

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/dimacsbench/core"
)

// Isomorphic reports whether a and b are isomorphic as unlabelled graphs.
func Isomorphic(a, b *core.Graph) bool {
	_, ok := FindIsomorphism(a, b)

	return ok
}

// FindIsomorphism returns a mapping from node IDs of a to node IDs of b that
// preserves adjacency, or false when none exists. Nil graphs are only
// isomorphic to each other.
func FindIsomorphism(a, b *core.Graph) (map[int]int, bool) {
	if a == nil || b == nil {
		return nil, a == nil && b == nil
	}
	if a.NodeCount() != b.NodeCount() || a.EdgeCount() != b.EdgeCount() {
		return nil, false
	}
	if !equalInts(DegreeSequence(a), DegreeSequence(b)) {
		return nil, false
	}
	if a.Equal(b) {
		m := make(map[int]int, a.NodeCount())
		for _, id := range a.Nodes() {
			m[id] = id
		}
		return m, true
	}

	sa, sb := newIsoSide(a), newIsoSide(b)
	if !refine(sa, sb) {
		return nil, false
	}
	st := &isoState{a: sa, b: sb}
	st.prepare()
	if !st.match(0) {
		return nil, false
	}

	m := make(map[int]int, len(sa.ids))
	for u, v := range st.fwd {
		m[sa.ids[u]] = sb.ids[v]
	}

	return m, true
}

// isoSide is a dense index view of one graph.
type isoSide struct {
	ids   []int
	adj   [][]int
	set   []map[int]struct{}
	color []int
}

func newIsoSide(g *core.Graph) *isoSide {
	ids := g.Nodes()
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	s := &isoSide{
		ids:   ids,
		adj:   make([][]int, len(ids)),
		set:   make([]map[int]struct{}, len(ids)),
		color: make([]int, len(ids)),
	}
	for i, id := range ids {
		nbrs, _ := g.Neighbors(id)
		s.adj[i] = make([]int, len(nbrs))
		s.set[i] = make(map[int]struct{}, len(nbrs))
		for k, nb := range nbrs {
			s.adj[i][k] = index[nb]
			s.set[i][index[nb]] = struct{}{}
		}
		s.color[i] = len(nbrs)
	}

	return s
}

// refine runs colour refinement on both sides with one palette until the
// number of classes stops growing. It returns false as soon as the colour
// histograms differ.
func refine(a, b *isoSide) bool {
	classes := -1
	for {
		palette := make(map[string]int)
		na := recolor(a, palette)
		nb := recolor(b, palette)
		if !equalInts(histogram(na, len(palette)), histogram(nb, len(palette))) {
			return false
		}
		a.color, b.color = na, nb
		if len(palette) == classes {
			return true
		}
		classes = len(palette)
	}
}

func recolor(s *isoSide, palette map[string]int) []int {
	next := make([]int, len(s.color))
	var sb strings.Builder
	nbr := make([]int, 0, 16)
	for i, c := range s.color {
		nbr = nbr[:0]
		for _, j := range s.adj[i] {
			nbr = append(nbr, s.color[j])
		}
		sort.Ints(nbr)

		sb.Reset()
		sb.WriteString(strconv.Itoa(c))
		for _, x := range nbr {
			sb.WriteByte(',')
			sb.WriteString(strconv.Itoa(x))
		}
		key := sb.String()
		id, ok := palette[key]
		if !ok {
			id = len(palette)
			palette[key] = id
		}
		next[i] = id
	}

	return next
}

func histogram(colors []int, k int) []int {
	h := make([]int, k)
	for _, c := range colors {
		h[c]++
	}

	return h
}

// isoState is the backtracking state over dense indices.
type isoState struct {
	a, b    *isoSide
	order   []int
	byColor map[int][]int // colour -> candidate nodes of b
	fwd     []int         // a -> b, -1 when unmapped
	rev     []int         // b -> a, -1 when unused
}

// prepare builds the candidate lists and a matching order that always picks
// the unmapped node with the most already-ordered neighbours, breaking ties
// by smaller colour class.
func (st *isoState) prepare() {
	n := len(st.a.ids)
	st.byColor = make(map[int][]int)
	for v, c := range st.b.color {
		st.byColor[c] = append(st.byColor[c], v)
	}
	st.fwd = make([]int, n)
	st.rev = make([]int, n)
	for i := range st.fwd {
		st.fwd[i], st.rev[i] = -1, -1
	}

	placed := make([]bool, n)
	links := make([]int, n)
	st.order = make([]int, 0, n)
	for len(st.order) < n {
		best := -1
		for u := 0; u < n; u++ {
			if placed[u] {
				continue
			}
			if best < 0 || links[u] > links[best] ||
				(links[u] == links[best] && len(st.byColor[st.a.color[u]]) < len(st.byColor[st.a.color[best]])) {
				best = u
			}
		}
		placed[best] = true
		st.order = append(st.order, best)
		for _, x := range st.a.adj[best] {
			links[x]++
		}
	}
}

func (st *isoState) match(k int) bool {
	if k == len(st.order) {
		return true
	}
	u := st.order[k]
	for _, v := range st.byColor[st.a.color[u]] {
		if st.rev[v] >= 0 || !st.feasible(u, v) {
			continue
		}
		st.fwd[u], st.rev[v] = v, u
		if st.match(k + 1) {
			return true
		}
		st.fwd[u], st.rev[v] = -1, -1
	}

	return false
}

// feasible checks that u->v agrees with every mapped neighbour on both sides.
func (st *isoState) feasible(u, v int) bool {
	mappedA := 0
	for _, x := range st.a.adj[u] {
		y := st.fwd[x]
		if y < 0 {
			continue
		}
		if _, ok := st.b.set[v][y]; !ok {
			return false
		}
		mappedA++
	}
	usedB := 0
	for _, y := range st.b.adj[v] {
		if st.rev[y] >= 0 {
			usedB++
		}
	}

	return mappedA == usedB
}

func equalInts(x, y []int) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}
