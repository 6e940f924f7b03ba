package landmark_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/builder"
	"github.com/katalvlaran/pathbench/dijkstra"
	"github.com/katalvlaran/pathbench/frontier"
	"github.com/katalvlaran/pathbench/graph"
	"github.com/katalvlaran/pathbench/graph/graphtest"
	"github.com/katalvlaran/pathbench/landmark"
)

func TestSelect_Diamond(t *testing.T) {
	g := graphtest.MustBuild(t, graphtest.Diamond())
	want := []int{3, 0, 1, 2}
	for k := 1; k <= 4; k++ {
		got, err := landmark.Select(g, k)
		require.NoError(t, err)
		require.Equal(t, want[:k], got, "k=%d", k)
	}
}

func TestSelect_InvalidArguments(t *testing.T) {
	g := graphtest.MustBuild(t, graphtest.Diamond())

	for _, k := range []int{0, -1, 5} {
		_, err := landmark.Select(g, k)
		require.ErrorIs(t, err, landmark.ErrInvalidLandmarkCount, "k=%d", k)
	}

	_, err := landmark.Select(g, 2, landmark.WithStart(4))
	require.ErrorIs(t, err, graph.ErrInvalidVertex)

	_, err = landmark.Select(nil, 1)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	require.Panics(t, func() { landmark.WithParallelism(0) })
}

// On a unit 4-cycle the second and third picks are tied: after {2, 0} both 1
// and 3 are at distance 1 from the set. The lowest index wins; the other
// choice would be equally valid.
func TestSelect_TieBreakIsLowestIndex(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)

	got, err := landmark.Select(g, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 0, 1}, got)

	// A different start vertex shifts the whole sequence consistently.
	got, err = landmark.Select(g, 3, landmark.WithStart(1))
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 0}, got)
}

func TestSelect_Deterministic(t *testing.T) {
	g := graphtest.Random(t, 21, 200, 0.02)
	first, err := landmark.Select(g, 8)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := landmark.Select(g, 8, landmark.WithFrontier(frontier.Kinds[i]))
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	seen := map[int]bool{}
	for _, l := range first {
		require.False(t, seen[l], "landmarks must be distinct")
		seen[l] = true
	}
}

func TestSelect_ReachesOtherComponents(t *testing.T) {
	g := graphtest.MustBuild(t, graph.NewInput(5, []graph.Triple{
		{U: 0, V: 1, W: 2}, {U: 1, V: 2, W: 2}, {U: 3, V: 4, W: 1},
	}))
	got, err := landmark.Select(g, 2)
	require.NoError(t, err)
	require.Equal(t, 2, got[0], "first landmark is the farthest reachable vertex")
	require.Equal(t, 3, got[1], "unreachable vertices count as farthest")
}

func TestPreprocessEqualsSelectThenBuild(t *testing.T) {
	g := graphtest.Random(t, 5, 150, 0.03)
	ctx := context.Background()

	pre, err := landmark.Preprocess(ctx, g, 6)
	require.NoError(t, err)

	ls, err := landmark.Select(g, 6)
	require.NoError(t, err)
	for _, p := range []int{1, 4} {
		built, err := landmark.BuildTable(ctx, g, ls, landmark.WithParallelism(p))
		require.NoError(t, err)
		require.Equal(t, pre, built)
	}
	require.Equal(t, ls, pre.Landmarks())
	require.Equal(t, 6, pre.K())
	require.Equal(t, 150, pre.VertexCount())
	require.Equal(t, 4*6*150, pre.Bytes())
}

func TestBuildTable_Validation(t *testing.T) {
	g := graphtest.MustBuild(t, graphtest.Diamond())
	ctx := context.Background()

	_, err := landmark.BuildTable(ctx, g, nil)
	require.ErrorIs(t, err, landmark.ErrInvalidLandmarkCount)

	_, err = landmark.BuildTable(ctx, g, []int{1, 1})
	require.ErrorIs(t, err, landmark.ErrDuplicateLandmark)

	_, err = landmark.BuildTable(ctx, g, []int{0, 7})
	require.ErrorIs(t, err, graph.ErrInvalidVertex)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = landmark.BuildTable(canceled, g, []int{0, 3})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuildTable_Overflow(t *testing.T) {
	g := graphtest.MustBuild(t, graph.NewInput(2, []graph.Triple{{U: 0, V: 1, W: 1e39}}))
	_, err := landmark.BuildTable(context.Background(), g, []int{0})
	require.ErrorIs(t, err, landmark.ErrDistanceOverflow)
}

func TestEvaluator_AdmissibleOnIntegerGraphs(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4} {
		g := graphtest.Random(t, seed, 120, 0.03)
		base := graphtest.NewBaseline(g)
		for k := 1; k <= 4; k++ {
			table, err := landmark.Preprocess(context.Background(), g, k)
			require.NoError(t, err)
			for _, goal := range []int{0, 42, 119} {
				h, err := table.Heuristic(goal)
				require.NoError(t, err)
				require.Equal(t, goal, h.Goal())
				require.Equal(t, 0.0, h.Estimate(goal))
				want := base.From(goal)
				for v, d := range want {
					est := h.Estimate(v)
					require.GreaterOrEqual(t, est, 0.0)
					require.LessOrEqual(t, est, d, "seed=%d k=%d goal=%d v=%d", seed, k, goal, v)
				}
			}
		}
	}
}

func TestEvaluator_AdmissibleOnGeometricGraphs(t *testing.T) {
	g := graphtest.Geometric(t, 6, 250, 15)
	base := graphtest.NewBaseline(g)
	table, err := landmark.Preprocess(context.Background(), g, 8)
	require.NoError(t, err)
	for _, goal := range []int{3, 99, 200} {
		h, err := table.Heuristic(goal)
		require.NoError(t, err)
		for v, d := range base.From(goal) {
			require.LessOrEqual(t, h.Estimate(v), d)
		}
	}
}

// The subtracted slack makes the bound hold even where float32 rounding
// pushes a stored distance above its true value.
func TestEvaluator_RoundingSlack(t *testing.T) {
	// 16777217 = 2²⁴+1 rounds to 2²⁴ in float32; 0.5 rounds exactly.
	g := graphtest.MustBuild(t, graph.NewInput(3, []graph.Triple{
		{U: 0, V: 1, W: 16777217}, {U: 1, V: 2, W: 0.5},
	}))
	table, err := landmark.BuildTable(context.Background(), g, []int{0})
	require.NoError(t, err)
	require.Equal(t, 16777216.0, table.Distance(0, 1))

	h, err := table.Heuristic(2)
	require.NoError(t, err)
	require.LessOrEqual(t, h.Estimate(1), 0.5)
	require.LessOrEqual(t, h.Estimate(0), 16777217.5)
}

func TestEvaluator_Components(t *testing.T) {
	g := graphtest.MustBuild(t, graph.NewInput(4, []graph.Triple{{U: 0, V: 1, W: 3}, {U: 2, V: 3, W: 1}}))
	table, err := landmark.BuildTable(context.Background(), g, []int{0})
	require.NoError(t, err)

	h, err := table.Heuristic(1)
	require.NoError(t, err)
	require.True(t, math.IsInf(h.Estimate(2), 1), "v and goal in different components")
	require.InDelta(t, 3.0, h.Estimate(0), 1e-5)

	h, err = table.Heuristic(3)
	require.NoError(t, err)
	require.Equal(t, 0.0, h.Estimate(2), "landmark sees neither vertex")
	require.Equal(t, 0.0, h.Estimate(-1))

	_, err = table.Heuristic(4)
	require.ErrorIs(t, err, graph.ErrInvalidVertex)
}

func TestDiamondLandmarkSearch(t *testing.T) {
	g := graphtest.MustBuild(t, graphtest.Diamond())
	for k := 1; k <= 4; k++ {
		table, err := landmark.Preprocess(context.Background(), g, k)
		require.NoError(t, err)
		h, err := table.Heuristic(3)
		require.NoError(t, err)
		for _, kind := range frontier.Kinds {
			res, err := dijkstra.Run(g, 0, dijkstra.WithTarget(3), dijkstra.WithHeuristic(h),
				dijkstra.WithFrontier(kind))
			require.NoError(t, err)
			require.Equal(t, 4.0, res.DistanceTo(3), "k=%d frontier=%s", k, kind)
		}
	}
}

func TestCache(t *testing.T) {
	g := graphtest.MustBuild(t, graphtest.Diamond())
	table, err := landmark.Preprocess(context.Background(), g, 2)
	require.NoError(t, err)

	_, err = landmark.NewCache(table, 0)
	require.ErrorIs(t, err, landmark.ErrBadCacheSize)

	c, err := landmark.NewCache(table, 2)
	require.NoError(t, err)
	require.Same(t, table, c.Table())

	a, err := c.Get(3)
	require.NoError(t, err)
	b, err := c.Get(3)
	require.NoError(t, err)
	require.Same(t, a, b)

	_, err = c.Get(1)
	require.NoError(t, err)
	_, err = c.Get(2)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len(), "least recently used goal was evicted")

	_, err = c.Get(9)
	require.ErrorIs(t, err, graph.ErrInvalidVertex)
}

func TestEvaluator_LargeDistancesStayExact(t *testing.T) {
	// Past 2^24 neighbouring table entries round apart by more than the
	// light edges between them, so the bound is admissible but not
	// consistent; the search must still return the shortest distance.
	const far = 1<<25 + 1
	g := graphtest.MustBuild(t, graph.NewInput(4, []graph.Triple{
		{U: 0, V: 1, W: 1}, {U: 0, V: 2, W: 4}, {U: 1, V: 2, W: 2}, {U: 2, V: 3, W: far},
	}))
	table, err := landmark.BuildTable(context.Background(), g, []int{3})
	require.NoError(t, err)
	require.InDelta(t, 2.0, table.RoundingError(), 1e-6)

	h, err := table.Heuristic(3)
	require.NoError(t, err)
	want := 3.0 + far

	for _, kind := range frontier.Kinds {
		plain, err := dijkstra.Run(g, 0, dijkstra.WithTarget(3), dijkstra.WithFrontier(kind))
		require.NoError(t, err)
		require.Equal(t, want, plain.DistanceTo(3), kind.String())

		alt, err := dijkstra.Run(g, 0, dijkstra.WithTarget(3), dijkstra.WithFrontier(kind),
			dijkstra.WithHeuristic(h), dijkstra.WithReturnPath())
		require.NoError(t, err)
		require.Equal(t, want, alt.DistanceTo(3), kind.String())
		require.Equal(t, []int{0, 1, 2, 3}, alt.PathTo(3), kind.String())
		require.Equal(t, 1, alt.Reopened, kind.String())
	}
}

func TestTable_RoundingErrorSmallDistances(t *testing.T) {
	g := graphtest.MustBuild(t, graphtest.Diamond())
	table, err := landmark.BuildTable(context.Background(), g, []int{0})
	require.NoError(t, err)
	// Largest entry is d(0,3) = 4.
	require.Equal(t, 4.0/(1<<24), table.RoundingError())
}
