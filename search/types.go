package search

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathbench/frontier"
	"github.com/katalvlaran/pathbench/trace"
)

// Sentinel errors returned by the search driver.
var (
	// ErrNoHeuristicData indicates that the Euclidean heuristic was requested
	// on a graph without coordinates.
	ErrNoHeuristicData = errors.New("search: heuristic needs per-vertex coordinates")

	// ErrUnknownHeuristic is returned by ParseHeuristic for an unrecognized name.
	ErrUnknownHeuristic = errors.New("search: unknown heuristic")

	// ErrBadWeight indicates a heuristic weight below 1 (or NaN).
	ErrBadWeight = errors.New("search: heuristic weight must be ≥ 1")
)

// HeuristicKind selects the goal-directed bound used by queries.
type HeuristicKind int

const (
	// HeuristicNone runs plain Dijkstra.
	HeuristicNone HeuristicKind = iota

	// HeuristicEuclidean runs A* with straight-line distances.
	HeuristicEuclidean

	// HeuristicLandmark runs A* with the landmark (ALT) bound.
	HeuristicLandmark
)

var heuristicNames = map[HeuristicKind]string{
	HeuristicNone:      "none",
	HeuristicEuclidean: "euclidean",
	HeuristicLandmark:  "landmark",
}

// String returns the canonical name used by the CLI and benchmark plans.
func (k HeuristicKind) String() string {
	if s, ok := heuristicNames[k]; ok {
		return s
	}

	return fmt.Sprintf("HeuristicKind(%d)", int(k))
}

// ParseHeuristic maps a name (case-insensitive) to a HeuristicKind.
// Accepted aliases: "dijkstra" for none, "astar"/"straight-line" for
// euclidean, "alt" for landmark.
func ParseHeuristic(name string) (HeuristicKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "dijkstra", "":
		return HeuristicNone, nil
	case "euclidean", "astar", "straight-line":
		return HeuristicEuclidean, nil
	case "landmark", "alt":
		return HeuristicLandmark, nil
	default:
		return HeuristicNone, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
}

// DefaultLandmarks is the landmark count used when none is configured.
const DefaultLandmarks = 16

// DefaultCacheSize bounds the per-goal landmark evaluator cache.
const DefaultCacheSize = 1024

// Observer receives engine events, typically to export metrics.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObservePreprocess(landmarks int, elapsed time.Duration)
	ObserveQuery(mode string, res *Result, err error)
}

type nopObserver struct{}

func (nopObserver) ObservePreprocess(int, time.Duration) {}
func (nopObserver) ObserveQuery(string, *Result, error)  {}

// Options configures an Engine.
type Options struct {
	Heuristic   HeuristicKind      // goal-directed bound
	Weight      float64            // w in g + w·h; 1 keeps results optimal
	Frontier    frontier.Kind      // priority-queue strategy
	Landmarks   int                // landmark count for HeuristicLandmark
	Start       int                // start vertex of landmark selection
	CacheSize   int                // per-goal evaluator cache size
	Parallelism int                // concurrent searches in preprocessing and batches
	Logger      logrus.FieldLogger // debug summaries; discarded by default
	Observer    Observer           // metrics hook; no-op by default
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithHeuristic selects the heuristic.
func WithHeuristic(kind HeuristicKind) Option {
	return func(o *Options) {
		o.Heuristic = kind
	}
}

// WithWeight sets the heuristic weight. Values above 1 trade optimality for
// speed: the returned distance is at most w times the shortest one.
// New reports w < 1 as ErrBadWeight.
func WithWeight(w float64) Option {
	return func(o *Options) {
		o.Weight = w
	}
}

// WithFrontier selects the priority-queue strategy.
func WithFrontier(kind frontier.Kind) Option {
	return func(o *Options) {
		o.Frontier = kind
	}
}

// WithLandmarks sets the landmark count for HeuristicLandmark.
func WithLandmarks(k int) Option {
	return func(o *Options) {
		o.Landmarks = k
	}
}

// WithLandmarkStart sets the start vertex of landmark selection.
func WithLandmarkStart(v int) Option {
	return func(o *Options) {
		o.Start = v
	}
}

// WithCacheSize bounds the per-goal evaluator cache. Panics if n < 1.
func WithCacheSize(n int) Option {
	if n < 1 {
		panic("search: WithCacheSize(n<1)")
	}
	return func(o *Options) {
		o.CacheSize = n
	}
}

// WithParallelism bounds concurrent searches. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("search: WithParallelism(n<1)")
	}
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithLogger installs a logger for debug summaries. nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs a metrics hook. nil is ignored.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// DefaultOptions returns plain Dijkstra on the lazy frontier, weight 1,
// DefaultLandmarks landmarks from vertex 0, GOMAXPROCS parallelism, a
// discarding logger and no observer.
func DefaultOptions() Options {
	return Options{
		Heuristic:   HeuristicNone,
		Weight:      1,
		Frontier:    frontier.KindLazy,
		Landmarks:   DefaultLandmarks,
		CacheSize:   DefaultCacheSize,
		Parallelism: runtime.GOMAXPROCS(0),
		Logger:      discardLogger(),
		Observer:    nopObserver{},
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// QueryOptions configures a single Query.
type QueryOptions struct {
	Sink     trace.Sink // instrumentation for this query only
	WithPath bool       // reconstruct the path
}

// QueryOption represents a functional option for Query.
type QueryOption func(*QueryOptions)

// WithSink installs a trace sink for one query. The sink is flushed before
// Query returns.
func WithSink(s trace.Sink) QueryOption {
	return func(o *QueryOptions) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithoutPath skips path reconstruction; Result.Path stays nil.
func WithoutPath() QueryOption {
	return func(o *QueryOptions) {
		o.WithPath = false
	}
}

// Pair is one source/target query.
type Pair struct {
	Source, Target int
}

// Result is the outcome of one query.
type Result struct {
	Source      int
	Target      int
	Distance    float64       // +Inf when no path exists
	Path        []int         // source … target; nil without a path or with WithoutPath
	Settled     int           // vertices settled
	Relaxations int           // edges examined
	Reopened    int           // settled vertices re-opened by a shorter path
	Elapsed     time.Duration // search time
	Found       bool          // target was reached
}
