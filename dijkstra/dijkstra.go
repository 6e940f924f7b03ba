// Package dijkstra implements the label-correcting shortest-path loop shared by
// Dijkstra and every A* variant in pathbench.
//
// One loop serves all algorithms: the priority of a vertex is g(v) + w·h(v),
// where g is the tentative distance, h an optional heuristic and w ≥ 1 its
// weight. h ≡ 0 gives Dijkstra, admissible h with w = 1 gives A*, w > 1 gives
// weighted A*. The frontier strategy is pluggable (frontier.Kind).
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the binary heaps; O(E + V log V) amortized
//     with the Fibonacci heap.
//   - Space: O(V) for dist/visited/prev, plus O(E) heap entries under the lazy strategy.
//
// Notes on implementation choices:
//
//   - Edge weights are validated non-negative by graph.Build, so no pre-scan is needed here.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We never enqueue a vertex whose distance would exceed MaxDistance.
//   - Under a non-zero heuristic a settled vertex is re-opened when a strictly
//     shorter distance to it appears. Consistent heuristics never trigger this;
//     merely admissible ones (the float32 landmark bound at large distances) do,
//     and re-opening keeps the target distance exact for w = 1.
package dijkstra

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/pathbench/frontier"
	"github.com/katalvlaran/pathbench/graph"
	"github.com/katalvlaran/pathbench/heuristic"
)

// Run computes shortest distances from source on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source, and target if set, must be in [0, n) (ErrInvalidVertex).
//  3. HeuristicWeight must be ≥ 1 (ErrBadWeightFactor).
//
// The loop: push (w·h(source), source); pop the minimum; skip it if already
// settled; settle it; stop if it is the target; otherwise relax every edge to
// an unsettled neighbour whose candidate distance is strictly smaller. With a
// non-zero heuristic, settled neighbours are re-opened on strict improvement.
//
// When the target is unreachable the run ends with Dist[target] == +Inf and
// Reached == false; callers detect "no path" from that.
func Run(g *graph.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.CheckVertex(source); err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}
	if cfg.Target != NoTarget {
		if err := g.CheckVertex(cfg.Target); err != nil {
			return nil, fmt.Errorf("dijkstra: target: %w", err)
		}
	}
	if !(cfg.HeuristicWeight >= 1) {
		return nil, fmt.Errorf("%w: got %g", ErrBadWeightFactor, cfg.HeuristicWeight)
	}
	if !cfg.Frontier.Valid() {
		return nil, fmt.Errorf("dijkstra: %w: %s", frontier.ErrUnknownKind, cfg.Frontier)
	}
	_, zero := cfg.Heuristic.(heuristic.Zero)
	if cfg.Heuristic == nil {
		cfg.Heuristic = heuristic.Zero{}
		zero = true
	}

	// 3) Prepare per-run state
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      frontier.New(cfg.Frontier, n),
		reopen:  !zero,
		res:     &Result{Source: source, Target: cfg.Target},
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}
	if d, ok := r.pq.(frontier.Decreaser); ok {
		r.dec = d
	}

	// 4) Run; the sink is flushed on every exit path.
	r.init(source)
	err := r.process()
	if flushErr := cfg.Sink.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("dijkstra: flush trace: %w", flushErr)
	}
	if err != nil {
		return nil, err
	}

	r.res.Dist = r.dist
	r.res.Prev = r.prev

	return r.res, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *graph.Graph       // read-only input graph
	options Options            // resolved configuration
	dist    []float64          // vertex → best known distance
	prev    []int              // vertex → predecessor; nil unless ReturnPath
	visited []bool             // vertex → distance finalized
	pq      frontier.Frontier  // selection strategy
	dec     frontier.Decreaser // pq as Decreaser, nil for lazy
	res     *Result            // counters and outcome
	reopen  bool               // settled vertices may be re-opened
	start   time.Time
}

// init sets dist=+Inf, prev=none, and pushes the source.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
	}
	for v := range r.prev {
		r.prev[v] = NoVertex
	}
	r.dist[source] = 0
	r.start = time.Now()
	r.pq.Insert(r.priority(source), source)
}

// priority returns g(v) + w·h(v).
func (r *runner) priority(v int) float64 {
	h := r.options.Heuristic.Estimate(v)
	if h == 0 {
		return r.dist[v]
	}

	return r.dist[v] + r.options.HeuristicWeight*h
}

// process is the main loop. It ends when the frontier is empty, the target is
// settled, or the context is done.
func (r *runner) process() error {
	defer func() { r.res.Elapsed = time.Since(r.start) }()

	ctx := r.options.Ctx
	sink := r.options.Sink
	for !r.pq.IsEmpty() {
		// 1) Pop the smallest-key entry.
		_, u, err := r.pq.PopMin()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFrontierDrained, err)
		}

		// 2) Stale lazy entry: u was already finalized.
		if r.visited[u] {
			continue
		}

		// 3) Cap on explored distance. Keys may carry a heuristic term and are
		//    not ordered by distance, so skip rather than stop.
		if r.dist[u] > r.options.MaxDistance {
			continue
		}

		// 4) Deadline check once per settle.
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: search aborted after %d settled: %w", r.res.Settled, err)
		}

		// 5) Settle u.
		r.visited[u] = true
		r.res.Settled++
		sink.Settled(u, r.res.Settled, time.Since(r.start))

		// 6) Goal reached: with an admissible heuristic no shorter path remains.
		if u == r.options.Target {
			r.res.Reached = true
			return nil
		}

		r.relax(u)
	}

	return nil
}

// relax examines each edge out of the settled vertex u.
// Edges at or above InfEdgeThreshold are walls; candidates beyond MaxDistance
// are dropped. A strictly shorter candidate updates dist/prev and either
// inserts v or decreases its key, depending on the frontier strategy.
func (r *runner) relax(u int) {
	cfg := &r.options
	du := r.dist[u]
	for _, e := range r.g.Neighbors(u) {
		v := e.To
		if e.Weight >= cfg.InfEdgeThreshold {
			continue
		}
		// Candidate distance Source → … → u → v.
		newDist := du + e.Weight
		improved := newDist < r.dist[v] && newDist <= cfg.MaxDistance
		if r.visited[v] {
			// Only an inconsistent heuristic can leave a settled vertex
			// with a non-final distance.
			if !r.reopen || !improved {
				continue
			}
			r.visited[v] = false
			r.res.Reopened++
		}
		r.res.Relaxations++
		cfg.Sink.Examined(u, v, improved)
		if !improved {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}

		// Decrease-key strategies keep one live entry per vertex; the lazy one
		// pushes a duplicate and lets process() skip the stale entry later.
		key := r.priority(v)
		if r.dec != nil && r.dec.Contains(v) {
			r.dec.Decrease(v, key)
			continue
		}
		r.pq.Insert(key, v)
	}
}
