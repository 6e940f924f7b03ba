// Package search is the query driver: it prepares the heuristic once per
// graph, then answers source→target queries with the shared search loop.
//
// Modes:
//
//   - HeuristicNone       plain Dijkstra.
//   - HeuristicEuclidean  A* with straight-line distances; needs coordinates.
//   - HeuristicLandmark   A* with the landmark bound; New builds the table.
//
// Any mode combines with a weight w ≥ 1 (priority g + w·h) and any frontier
// strategy. With w = 1 every mode returns the shortest distance; with w > 1
// the distance is at most w times the shortest one.
//
// The landmark bound is admissible but not always consistent: once table
// entries pass 2^24 their float32 rounding can exceed the weight of a single
// edge (Table.RoundingError reports the worst case). The search loop then
// re-opens settled vertices (Result.Reopened), which keeps the distance exact.
//
// An Engine is immutable after New. Query and QueryBatch may be called from
// any number of goroutines: per-query state is private and the graph and
// landmark table are only read.
package search

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathbench/dijkstra"
	"github.com/katalvlaran/pathbench/frontier"
	"github.com/katalvlaran/pathbench/graph"
	"github.com/katalvlaran/pathbench/heuristic"
	"github.com/katalvlaran/pathbench/landmark"
	"github.com/katalvlaran/pathbench/trace"
)

// Engine answers shortest-path queries on one graph.
type Engine struct {
	g          *graph.Graph
	options    Options
	cache      *landmark.Cache // nil unless HeuristicLandmark
	preprocess time.Duration
	log        logrus.FieldLogger
}

// New validates the options and performs preprocessing.
func New(g *graph.Graph, opts ...Option) (*Engine, error) {
	return NewContext(context.Background(), g, opts...)
}

// NewContext is New with a context bounding landmark preprocessing.
func NewContext(ctx context.Context, g *graph.Graph, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	if !(cfg.Weight >= 1) {
		return nil, fmt.Errorf("%w: got %g", ErrBadWeight, cfg.Weight)
	}
	if !cfg.Frontier.Valid() {
		return nil, fmt.Errorf("search: %w: %s", frontier.ErrUnknownKind, cfg.Frontier)
	}

	e := &Engine{g: g, options: cfg}
	e.log = cfg.Logger.WithFields(logrus.Fields{
		"mode":     e.Mode(),
		"frontier": cfg.Frontier.String(),
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	})

	switch cfg.Heuristic {
	case HeuristicNone:
	case HeuristicEuclidean:
		if !g.HasCoordinates() {
			return nil, ErrNoHeuristicData
		}
	case HeuristicLandmark:
		if err := e.buildLandmarks(ctx); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownHeuristic, cfg.Heuristic)
	}

	return e, nil
}

func (e *Engine) buildLandmarks(ctx context.Context) error {
	cfg := e.options
	start := time.Now()
	table, err := landmark.Preprocess(ctx, e.g, cfg.Landmarks,
		landmark.WithStart(cfg.Start),
		landmark.WithFrontier(cfg.Frontier),
		landmark.WithParallelism(cfg.Parallelism),
	)
	if err != nil {
		return fmt.Errorf("search: preprocess: %w", err)
	}
	cache, err := landmark.NewCache(table, cfg.CacheSize)
	if err != nil {
		return fmt.Errorf("search: preprocess: %w", err)
	}
	e.cache = cache
	e.preprocess = time.Since(start)

	cfg.Observer.ObservePreprocess(table.K(), e.preprocess)
	e.log.WithFields(logrus.Fields{
		"landmarks":      table.Landmarks(),
		"table_bytes":    table.Bytes(),
		"rounding_error": table.RoundingError(),
		"elapsed":        e.preprocess,
	}).Debug("landmark table built")

	return nil
}

// Mode names the configured algorithm: "dijkstra", "astar", "alt", with a
// "weighted-" prefix when w > 1.
func (e *Engine) Mode() string {
	var name string
	switch e.options.Heuristic {
	case HeuristicEuclidean:
		name = "astar"
	case HeuristicLandmark:
		name = "alt"
	default:
		name = "dijkstra"
	}
	if e.options.Weight > 1 && e.options.Heuristic != HeuristicNone {
		name = "weighted-" + name
	}

	return name
}

// Graph returns the graph the engine searches.
func (e *Engine) Graph() *graph.Graph { return e.g }

// Landmarks returns the landmark table, or nil outside HeuristicLandmark.
func (e *Engine) Landmarks() *landmark.Table {
	if e.cache == nil {
		return nil
	}

	return e.cache.Table()
}

// PreprocessTime returns the time spent building the landmark table.
func (e *Engine) PreprocessTime() time.Duration { return e.preprocess }

// Query finds a path from s to t.
// A missing path is not an error: Found is false and Distance is +Inf.
func (e *Engine) Query(ctx context.Context, s, t int, qopts ...QueryOption) (*Result, error) {
	qcfg := QueryOptions{Sink: trace.Nop{}, WithPath: true}
	for _, opt := range qopts {
		opt(&qcfg)
	}

	res, err := e.query(ctx, s, t, qcfg)
	e.options.Observer.ObserveQuery(e.Mode(), res, err)
	if err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{"source": s, "target": t}).Debug("query failed")
		return nil, err
	}
	e.log.WithFields(logrus.Fields{
		"source":   s,
		"target":   t,
		"found":    res.Found,
		"distance": res.Distance,
		"settled":  res.Settled,
		"elapsed":  res.Elapsed,
	}).Debug("query")

	return res, nil
}

func (e *Engine) query(ctx context.Context, s, t int, qcfg QueryOptions) (*Result, error) {
	if err := e.g.CheckVertex(s); err != nil {
		return nil, fmt.Errorf("search: source: %w", err)
	}
	if err := e.g.CheckVertex(t); err != nil {
		return nil, fmt.Errorf("search: target: %w", err)
	}

	h, err := e.heuristic(t)
	if err != nil {
		return nil, err
	}
	opts := []dijkstra.Option{
		dijkstra.WithTarget(t),
		dijkstra.WithFrontier(e.options.Frontier),
		dijkstra.WithHeuristic(h),
		dijkstra.WithHeuristicWeight(e.options.Weight),
		dijkstra.WithSink(qcfg.Sink),
		dijkstra.WithContext(ctx),
	}
	if qcfg.WithPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	run, err := dijkstra.Run(e.g, s, opts...)
	if err != nil {
		return nil, fmt.Errorf("search: %d→%d: %w", s, t, err)
	}

	res := &Result{
		Source:      s,
		Target:      t,
		Distance:    math.Inf(1),
		Settled:     run.Settled,
		Relaxations: run.Relaxations,
		Reopened:    run.Reopened,
		Elapsed:     run.Elapsed,
		Found:       run.Reached,
	}
	if run.Reached {
		res.Distance = run.DistanceTo(t)
		res.Path = run.PathTo(t)
	}

	return res, nil
}

// heuristic returns the bound toward t for the configured mode.
func (e *Engine) heuristic(t int) (heuristic.Heuristic, error) {
	switch e.options.Heuristic {
	case HeuristicEuclidean:
		h, err := heuristic.NewEuclidean(e.g, t)
		if err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}
		return h, nil
	case HeuristicLandmark:
		h, err := e.cache.Get(t)
		if err != nil {
			return nil, fmt.Errorf("search: %w", err)
		}
		return h, nil
	default:
		return heuristic.Zero{}, nil
	}
}

// QueryBatch answers pairs concurrently, at most Parallelism at a time.
// results[i] answers pairs[i]. The first error cancels the remaining queries
// and is returned; no partial results are returned with it.
func (e *Engine) QueryBatch(ctx context.Context, pairs []Pair) ([]*Result, error) {
	results := make([]*Result, len(pairs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(e.options.Parallelism)
	for i, p := range pairs {
		eg.Go(func() error {
			res, err := e.Query(egCtx, p.Source, p.Target)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
