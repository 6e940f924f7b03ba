package graph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/graph"
)

func diamond() graph.Input {
	return graph.NewInput(4, []graph.Triple{
		{U: 0, V: 1, W: 1},
		{U: 0, V: 2, W: 4},
		{U: 1, V: 2, W: 2},
		{U: 1, V: 3, W: 5},
		{U: 2, V: 3, W: 1},
	})
}

func TestBuild_Symmetric(t *testing.T) {
	g, err := graph.Build(diamond())
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 5, g.EdgeCount())

	// Every u→v entry has a matching v→u entry with the same weight.
	for u := 0; u < g.VertexCount(); u++ {
		for _, e := range g.Neighbors(u) {
			found := false
			for _, back := range g.Neighbors(e.To) {
				if back.To == u && back.Weight == e.Weight {
					found = true
					break
				}
			}
			require.True(t, found, "missing reverse of %d→%d", u, e.To)
		}
	}
	require.Equal(t, 2, g.Degree(0))
	require.Equal(t, 3, g.Degree(1))
}

func TestBuild_HeaderMismatch(t *testing.T) {
	in := diamond()
	in.EdgeCount = 6
	_, err := graph.Build(in)
	require.True(t, errors.Is(err, graph.ErrMalformedInput), "got %v", err)
}

func TestBuild_EndpointOutOfRange(t *testing.T) {
	_, err := graph.Build(graph.NewInput(2, []graph.Triple{{U: 0, V: 2, W: 1}}))
	require.ErrorIs(t, err, graph.ErrMalformedInput)

	_, err = graph.Build(graph.NewInput(2, []graph.Triple{{U: -1, V: 1, W: 1}}))
	require.ErrorIs(t, err, graph.ErrMalformedInput)
}

func TestBuild_NegativeVertexCount(t *testing.T) {
	_, err := graph.Build(graph.Input{VertexCount: -1})
	require.ErrorIs(t, err, graph.ErrMalformedInput)
}

func TestBuild_InvalidWeights(t *testing.T) {
	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := graph.Build(graph.NewInput(2, []graph.Triple{{U: 0, V: 1, W: w}}))
		require.ErrorIs(t, err, graph.ErrInvalidWeight, "weight %g", w)
	}
}

func TestBuild_CoordinatesLength(t *testing.T) {
	in := diamond()
	in.Coordinates = []graph.Point{{X: 0, Y: 0}}
	_, err := graph.Build(in)
	require.ErrorIs(t, err, graph.ErrMalformedInput)
}

func TestBuild_SelfLoopsAndDuplicates(t *testing.T) {
	in := graph.NewInput(2, []graph.Triple{
		{U: 0, V: 0, W: 3},
		{U: 0, V: 1, W: 2},
		{U: 1, V: 0, W: 7},
	})

	g, err := graph.Build(in)
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, 3, g.Degree(0)) // loop once + two parallel edges
	require.Len(t, g.Triples(), 3)

	g, err = graph.Build(in, graph.WithDropSelfLoops())
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
	require.Equal(t, 2, g.Degree(0))
}

func TestGraph_Coordinates(t *testing.T) {
	in := graph.NewInput(2, []graph.Triple{{U: 0, V: 1, W: 5}})
	in.Coordinates = []graph.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}

	g, err := graph.Build(in)
	require.NoError(t, err)
	require.True(t, g.HasCoordinates())
	require.InDelta(t, 5.0, g.Euclidean(0, 1), 1e-12)

	p, err := g.Point(1)
	require.NoError(t, err)
	require.Equal(t, graph.Point{X: 3, Y: 4}, p)

	_, err = g.Point(2)
	require.ErrorIs(t, err, graph.ErrInvalidVertex)
}

func TestGraph_NoCoordinates(t *testing.T) {
	g, err := graph.Build(diamond())
	require.NoError(t, err)
	require.False(t, g.HasCoordinates())
	require.True(t, math.IsInf(g.Euclidean(0, 1), 1))
	_, err = g.Point(0)
	require.ErrorIs(t, err, graph.ErrMalformedInput)
}

func TestGraph_CheckVertex(t *testing.T) {
	g, err := graph.Build(diamond())
	require.NoError(t, err)
	require.NoError(t, g.CheckVertex(3))
	require.ErrorIs(t, g.CheckVertex(4), graph.ErrInvalidVertex)
	require.ErrorIs(t, g.CheckVertex(-1), graph.ErrInvalidVertex)
	require.Nil(t, g.Neighbors(9))
}

func TestGraph_Empty(t *testing.T) {
	g, err := graph.Build(graph.Input{})
	require.NoError(t, err)
	require.Equal(t, 0, g.VertexCount())
	require.Empty(t, g.Triples())
}
