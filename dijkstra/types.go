package dijkstra

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/pathbench/frontier"
	"github.com/katalvlaran/pathbench/graph"
	"github.com/katalvlaran/pathbench/heuristic"
	"github.com/katalvlaran/pathbench/trace"
)

// NoTarget disables the goal-reached short-circuit.
const NoTarget = -1

// NoVertex marks "no predecessor" in Result.Prev.
const NoVertex = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidVertex indicates a source or target outside [0, n).
	// It is graph.ErrInvalidVertex re-exported, so either name matches with errors.Is.
	ErrInvalidVertex = graph.ErrInvalidVertex

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadWeightFactor indicates a heuristic weight below 1 (or NaN).
	ErrBadWeightFactor = errors.New("dijkstra: heuristic weight must be ≥ 1")

	// ErrFrontierDrained signals that the frontier ran dry while the loop
	// still expected an entry. It never escapes a correct run.
	ErrFrontierDrained = errors.New("dijkstra: frontier drained unexpectedly")
)

// Options configures the behavior of Run.
type Options struct {
	Target           int                 // vertex ending the search when settled, or NoTarget
	Frontier         frontier.Kind       // priority-queue strategy
	Heuristic        heuristic.Heuristic // nil means h ≡ 0
	HeuristicWeight  float64             // w in g + w·h; must be ≥ 1
	ReturnPath       bool                // whether Result.Prev is returned
	MaxDistance      float64             // maximum distance to explore
	InfEdgeThreshold float64             // weight threshold above which edges are non-traversable
	Sink             trace.Sink          // instrumentation; never nil after DefaultOptions
	Ctx              context.Context     // cancellation, checked once per settle
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithTarget enables early termination once target is settled.
func WithTarget(target int) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// WithFrontier selects the priority-queue strategy.
func WithFrontier(kind frontier.Kind) Option {
	return func(o *Options) {
		o.Frontier = kind
	}
}

// WithHeuristic installs an A* lower bound. nil restores plain Dijkstra.
func WithHeuristic(h heuristic.Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithHeuristicWeight sets w in the priority g + w·h (weighted relaxation).
// With an admissible h the returned target distance is at most w times optimal.
// Values below 1 are reported by Run as ErrBadWeightFactor.
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		o.HeuristicWeight = w
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If false (default), Result.Prev is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause a panic with ErrBadMaxDistance.
// Default (if not set) is +Inf (no cap).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative cause a panic with ErrBadInfThreshold.
// Default (if not set) is +Inf (no edges treated as impassable).
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithSink installs an instrumentation sink. nil keeps the no-op sink.
func WithSink(s trace.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithContext sets a context checked at every settle step.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Target:           NoTarget (full single-source run).
//   - Frontier:         frontier.KindLazy.
//   - Heuristic:        nil (plain Dijkstra).
//   - HeuristicWeight:  1.
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf.
//   - InfEdgeThreshold: +Inf.
//   - Sink:             trace.Nop{}.
//   - Ctx:              context.Background().
func DefaultOptions() Options {
	return Options{
		Target:           NoTarget,
		Frontier:         frontier.KindLazy,
		HeuristicWeight:  1,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Sink:             trace.Nop{},
		Ctx:              context.Background(),
	}
}

// Result is the outcome of one Run.
type Result struct {
	// Dist[v] is the best known distance from the source; +Inf if v was never
	// reached. With a target and early termination, only settled vertices are final.
	Dist []float64

	// Prev[v] is v's predecessor on the recorded path, NoVertex for the source
	// and unreached vertices. nil unless ReturnPath was requested.
	Prev []int

	Source      int           // source vertex
	Target      int           // target vertex or NoTarget
	Reached     bool          // target was settled (always false without a target)
	Settled     int           // settle steps, re-opened vertices counted again
	Relaxations int           // edges examined from settled vertices
	Reopened    int           // settled vertices re-opened by a shorter path
	Elapsed     time.Duration // wall time of the search loop, excluding validation
}

// PathTo walks Prev from t back to the source and returns the vertices in
// source→t order. It returns nil when Prev is absent, t is out of range or t
// was not reached.
func (r *Result) PathTo(t int) []int {
	if r.Prev == nil || t < 0 || t >= len(r.Dist) || math.IsInf(r.Dist[t], 1) {
		return nil
	}
	var path []int
	for at := t; at != NoVertex; at = r.Prev[at] {
		path = append(path, at)
		if len(path) > len(r.Prev) {
			return nil // predecessor cycle; cannot happen for a finished run
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// DistanceTo returns Dist[t], or +Inf for out-of-range t.
func (r *Result) DistanceTo(t int) float64 {
	if t < 0 || t >= len(r.Dist) {
		return math.Inf(1)
	}

	return r.Dist[t]
}
