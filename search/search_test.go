package search_test

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathbench/dijkstra"
	"github.com/katalvlaran/pathbench/frontier"
	"github.com/katalvlaran/pathbench/graph"
	"github.com/katalvlaran/pathbench/graph/graphtest"
	"github.com/katalvlaran/pathbench/search"
	"github.com/katalvlaran/pathbench/trace"
)

// modeSuite runs the same checks for one heuristic mode.
type modeSuite struct {
	suite.Suite
	kind search.HeuristicKind
	geo  *graph.Graph
	base *graphtest.Baseline
}

func (s *modeSuite) SetupSuite() {
	s.geo = graphtest.Geometric(s.T(), 12, 300, 14)
	s.base = graphtest.NewBaseline(s.geo)
}

func (s *modeSuite) engine(g *graph.Graph, opts ...search.Option) *search.Engine {
	opts = append([]search.Option{search.WithHeuristic(s.kind), search.WithLandmarks(4)}, opts...)
	e, err := search.New(g, opts...)
	s.Require().NoError(err)
	return e
}

func (s *modeSuite) TestDiamond() {
	in := graphtest.Diamond()
	in.Coordinates = []graph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	g := graphtest.MustBuild(s.T(), in)
	for _, kind := range frontier.Kinds {
		for k := 1; k <= 4; k++ {
			e := s.engine(g, search.WithFrontier(kind), search.WithLandmarks(k))
			res, err := e.Query(context.Background(), 0, 3)
			s.Require().NoError(err)
			s.Require().True(res.Found)
			s.Require().Equal(4.0, res.Distance, "frontier=%s k=%d", kind, k)
			s.Require().Equal([]int{0, 1, 2, 3}, res.Path)
		}
	}
}

func (s *modeSuite) TestOptimalAgainstBaseline() {
	e := s.engine(s.geo, search.WithLandmarks(6))
	for _, p := range []search.Pair{{0, 299}, {17, 180}, {250, 3}, {42, 42}} {
		want := s.base.Distance(p.Source, p.Target)
		res, err := e.Query(context.Background(), p.Source, p.Target)
		s.Require().NoError(err)
		if math.IsInf(want, 1) {
			s.Require().False(res.Found)
			continue
		}
		s.Require().InDelta(want, res.Distance, 1e-9)
		s.Require().InDelta(res.Distance, graphtest.PathWeight(s.geo, res.Path), 1e-9)
		s.Require().Equal(p.Source, res.Path[0])
		s.Require().Equal(p.Target, res.Path[len(res.Path)-1])
	}
}

func (s *modeSuite) TestWeightedBound() {
	for _, w := range []float64{1.2, 1.5, 2.5} {
		e := s.engine(s.geo, search.WithWeight(w), search.WithLandmarks(6))
		for _, p := range []search.Pair{{0, 299}, {17, 180}, {250, 3}} {
			want := s.base.Distance(p.Source, p.Target)
			if math.IsInf(want, 1) {
				continue
			}
			res, err := e.Query(context.Background(), p.Source, p.Target)
			s.Require().NoError(err)
			s.Require().GreaterOrEqual(res.Distance, want-1e-9)
			s.Require().LessOrEqual(res.Distance, w*want+1e-9, "w=%g pair=%v", w, p)
			s.Require().InDelta(res.Distance, graphtest.PathWeight(s.geo, res.Path), 1e-9)
		}
	}
}

func (s *modeSuite) TestNoPath() {
	in := graph.NewInput(4, []graph.Triple{{U: 0, V: 1, W: 1}, {U: 2, V: 3, W: 1}})
	in.Coordinates = []graph.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 5, Y: 5}, {X: 6, Y: 5}}
	e := s.engine(graphtest.MustBuild(s.T(), in), search.WithLandmarks(2))
	res, err := e.Query(context.Background(), 0, 3)
	s.Require().NoError(err)
	s.Require().False(res.Found)
	s.Require().True(math.IsInf(res.Distance, 1))
	s.Require().Nil(res.Path)
}

func (s *modeSuite) TestBatchMatchesSequential() {
	e := s.engine(s.geo, search.WithParallelism(4))
	pairs := []search.Pair{{0, 299}, {1, 298}, {2, 297}, {3, 296}, {4, 295}, {5, 294}, {6, 293}}
	batch, err := e.QueryBatch(context.Background(), pairs)
	s.Require().NoError(err)
	s.Require().Len(batch, len(pairs))
	for i, p := range pairs {
		one, err := e.Query(context.Background(), p.Source, p.Target)
		s.Require().NoError(err)
		s.Require().Equal(one.Distance, batch[i].Distance)
		s.Require().Equal(one.Path, batch[i].Path)
		s.Require().Equal(one.Settled, batch[i].Settled)
	}
}

func TestModes(t *testing.T) {
	for _, kind := range []search.HeuristicKind{search.HeuristicNone, search.HeuristicEuclidean, search.HeuristicLandmark} {
		t.Run(kind.String(), func(t *testing.T) {
			suite.Run(t, &modeSuite{kind: kind})
		})
	}
}

func TestNew_Validation(t *testing.T) {
	g := graphtest.MustBuild(t, graphtest.Diamond())

	_, err := search.New(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = search.New(g, search.WithHeuristic(search.HeuristicEuclidean))
	require.ErrorIs(t, err, search.ErrNoHeuristicData)

	_, err = search.New(g, search.WithWeight(0.9))
	require.ErrorIs(t, err, search.ErrBadWeight)

	_, err = search.New(g, search.WithHeuristic(search.HeuristicLandmark), search.WithLandmarks(5))
	require.Error(t, err)

	_, err = search.New(g, search.WithHeuristic(search.HeuristicKind(9)))
	require.ErrorIs(t, err, search.ErrUnknownHeuristic)

	_, err = search.New(g, search.WithFrontier(frontier.Kind(9)))
	require.ErrorIs(t, err, frontier.ErrUnknownKind)

	require.Panics(t, func() { search.WithParallelism(0) })
	require.Panics(t, func() { search.WithCacheSize(0) })
}

func TestLandmarkQuery_LargeDistances(t *testing.T) {
	// The single landmark is vertex 3, the farthest from 0. Its float32 row
	// rounds 0, 1 and 2 apart by more than the unit edges between them.
	const far = 1<<25 + 1
	g := graphtest.MustBuild(t, graph.NewInput(4, []graph.Triple{
		{U: 0, V: 1, W: 1}, {U: 0, V: 2, W: 4}, {U: 1, V: 2, W: 2}, {U: 2, V: 3, W: far},
	}))
	for _, kind := range frontier.Kinds {
		e, err := search.New(g, search.WithHeuristic(search.HeuristicLandmark),
			search.WithLandmarks(1), search.WithFrontier(kind))
		require.NoError(t, err)
		require.Equal(t, []int{3}, e.Landmarks().Landmarks())

		res, err := e.Query(context.Background(), 0, 3)
		require.NoError(t, err)
		require.Equal(t, 3.0+far, res.Distance, kind.String())
		require.Equal(t, []int{0, 1, 2, 3}, res.Path, kind.String())
		require.Equal(t, 1, res.Reopened, kind.String())
	}
}

func TestQuery_InvalidVertices(t *testing.T) {
	e, err := search.New(graphtest.MustBuild(t, graphtest.Diamond()))
	require.NoError(t, err)

	_, err = e.Query(context.Background(), -1, 3)
	require.ErrorIs(t, err, graph.ErrInvalidVertex)
	_, err = e.Query(context.Background(), 0, 4)
	require.ErrorIs(t, err, graph.ErrInvalidVertex)

	_, err = e.QueryBatch(context.Background(), []search.Pair{{0, 3}, {0, 9}})
	require.ErrorIs(t, err, graph.ErrInvalidVertex)
}

func TestQuery_SinkAndWithoutPath(t *testing.T) {
	e, err := search.New(graphtest.MustBuild(t, graphtest.Diamond()))
	require.NoError(t, err)

	rec := &trace.Recorder{}
	res, err := e.Query(context.Background(), 0, 3, search.WithSink(rec), search.WithoutPath())
	require.NoError(t, err)
	require.Nil(t, res.Path)
	require.Equal(t, 4.0, res.Distance)
	require.Equal(t, []int{0, 1, 2, 3}, rec.Order)
	require.Equal(t, 1, rec.Flushes)
	require.Equal(t, res.Relaxations, len(rec.Edges))
}

func TestQuery_Canceled(t *testing.T) {
	e, err := search.New(graphtest.MustBuild(t, graphtest.Diamond()))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Query(ctx, 0, 3)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMode(t *testing.T) {
	in := graphtest.Diamond()
	in.Coordinates = make([]graph.Point, 4)
	g := graphtest.MustBuild(t, in)
	cases := []struct {
		opts []search.Option
		want string
	}{
		{nil, "dijkstra"},
		{[]search.Option{search.WithWeight(2)}, "dijkstra"},
		{[]search.Option{search.WithHeuristic(search.HeuristicEuclidean)}, "astar"},
		{[]search.Option{search.WithHeuristic(search.HeuristicEuclidean), search.WithWeight(1.5)}, "weighted-astar"},
		{[]search.Option{search.WithHeuristic(search.HeuristicLandmark), search.WithLandmarks(2)}, "alt"},
	}
	for _, tc := range cases {
		e, err := search.New(g, tc.opts...)
		require.NoError(t, err)
		require.Equal(t, tc.want, e.Mode())
	}
}

func TestParseHeuristic(t *testing.T) {
	for name, want := range map[string]search.HeuristicKind{
		"":          search.HeuristicNone,
		"Dijkstra":  search.HeuristicNone,
		"astar":     search.HeuristicEuclidean,
		"euclidean": search.HeuristicEuclidean,
		"ALT":       search.HeuristicLandmark,
	} {
		got, err := search.ParseHeuristic(name)
		require.NoError(t, err)
		require.Equal(t, want, got, name)
	}
	_, err := search.ParseHeuristic("bidirectional")
	require.ErrorIs(t, err, search.ErrUnknownHeuristic)
}

type countingObserver struct {
	mu          sync.Mutex
	preprocess  int
	queries     int
	failed      int
	lastMode    string
	lastSettled int
}

func (o *countingObserver) ObservePreprocess(int, time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.preprocess++
}

func (o *countingObserver) ObserveQuery(mode string, res *search.Result, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.queries++
	o.lastMode = mode
	if err != nil {
		o.failed++
		return
	}
	o.lastSettled = res.Settled
}

func TestObserverAndLogger(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	obs := &countingObserver{}

	e, err := search.New(graphtest.MustBuild(t, graphtest.Diamond()),
		search.WithHeuristic(search.HeuristicLandmark), search.WithLandmarks(2),
		search.WithLogger(logger), search.WithObserver(obs))
	require.NoError(t, err)
	require.NotNil(t, e.Landmarks())
	require.Equal(t, []int{3, 0}, e.Landmarks().Landmarks())
	require.Equal(t, 1, obs.preprocess)
	require.Equal(t, "landmark table built", hook.LastEntry().Message)

	_, err = e.Query(context.Background(), 0, 3)
	require.NoError(t, err)
	_, err = e.Query(context.Background(), 0, 8)
	require.Error(t, err)

	require.Equal(t, 2, obs.queries)
	require.Equal(t, 1, obs.failed)
	require.Equal(t, "alt", obs.lastMode)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	require.Equal(t, "query", entries[1].Message)
	require.Equal(t, 0, entries[1].Data["source"])
	require.Equal(t, 4.0, entries[1].Data["distance"])
	require.Equal(t, "alt", entries[1].Data["mode"])
	require.Equal(t, "query failed", entries[2].Message)
}
