// Package graphtest provides fixtures and a brute-force reference oracle for
// tests of the shortest-path packages.
//
// The reference distances come from gonum's Dijkstra implementation, which
// shares no code with pathbench and so serves as an independent baseline.
package graphtest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pathbench/builder"
	"github.com/katalvlaran/pathbench/graph"
)

// Diamond is the 4-vertex scenario used across packages: the shortest 0→3
// distance is 4, along 0-1-2-3.
func Diamond() graph.Input {
	return graph.NewInput(4, []graph.Triple{
		{U: 0, V: 1, W: 1},
		{U: 0, V: 2, W: 4},
		{U: 1, V: 2, W: 2},
		{U: 1, V: 3, W: 5},
		{U: 2, V: 3, W: 1},
	})
}

// MustBuild builds in or fails the test.
func MustBuild(tb testing.TB, in graph.Input) *graph.Graph {
	tb.Helper()
	g, err := graph.Build(in)
	require.NoError(tb, err)

	return g
}

// Random returns a connected random graph with n vertices, integer weights in
// [1,20] and edge probability p on top of a spanning tree.
func Random(tb testing.TB, seed int64, n int, p float64) *graph.Graph {
	tb.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntegerWeight(1, 20)},
		builder.RandomTree(n), builder.RandomSparse(n, p))
	require.NoError(tb, err)

	return g
}

// Geometric returns a random geometric graph with coordinates whose weights
// are stretched up to 1.3 times the straight-line length.
func Geometric(tb testing.TB, seed int64, n int, radius float64) *graph.Graph {
	tb.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithExtent(100), builder.WithDetour(1.3)},
		builder.Geometric(n, radius))
	require.NoError(tb, err)

	return g
}

// Baseline answers distance queries with gonum on a copy of g.
type Baseline struct {
	n int
	g *simple.WeightedUndirectedGraph
}

// NewBaseline copies g into a gonum graph. Self-loops are dropped and
// parallel edges collapse to the lightest one; neither changes distances.
func NewBaseline(g *graph.Graph) *Baseline {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < g.VertexCount(); v++ {
		wg.AddNode(simple.Node(v))
	}
	for _, t := range g.Triples() {
		if t.U == t.V {
			continue
		}
		if e := wg.WeightedEdge(int64(t.U), int64(t.V)); e != nil && e.Weight() <= t.W {
			continue
		}
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(t.U), simple.Node(t.V), t.W))
	}

	return &Baseline{n: g.VertexCount(), g: wg}
}

// From returns the distance from s to every vertex, +Inf when unreachable.
func (b *Baseline) From(s int) []float64 {
	sp := path.DijkstraFrom(simple.Node(s), b.g)
	dist := make([]float64, b.n)
	for v := range dist {
		dist[v] = sp.WeightTo(int64(v))
	}

	return dist
}

// Distance returns the s→t distance.
func (b *Baseline) Distance(s, t int) float64 {
	return path.DijkstraFrom(simple.Node(s), b.g).WeightTo(int64(t))
}

// PathWeight sums the weights along p using the lightest edge between each
// consecutive pair, or returns +Inf if two consecutive vertices are not adjacent.
func PathWeight(g *graph.Graph, p []int) float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		best := math.Inf(1)
		for _, e := range g.Neighbors(p[i-1]) {
			if e.To == p[i] && e.Weight < best {
				best = e.Weight
			}
		}
		total += best
	}

	return total
}
