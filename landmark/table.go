package landmark

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathbench/dijkstra"
	"github.com/katalvlaran/pathbench/graph"
)

// Table is the k×n landmark distance table, stored row-major as float32.
// It is read-only after construction.
type Table struct {
	landmarks []int
	n         int
	dist      []float32 // dist[i*n+v] = d(landmarks[i], v)
}

// BuildTable runs one search per landmark and packs the distances.
// Searches run concurrently, at most Options.Parallelism at a time; the first
// failure cancels the rest.
func BuildTable(ctx context.Context, g *graph.Graph, landmarks []int, opts ...Option) (*Table, error) {
	cfg := resolve(opts)
	if g == nil {
		return nil, dijkstra.ErrNilGraph
	}
	n := g.VertexCount()
	if len(landmarks) < 1 || len(landmarks) > n {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrInvalidLandmarkCount, len(landmarks), n)
	}
	seen := make(map[int]struct{}, len(landmarks))
	for _, l := range landmarks {
		if err := g.CheckVertex(l); err != nil {
			return nil, fmt.Errorf("landmark: %w", err)
		}
		if _, dup := seen[l]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateLandmark, l)
		}
		seen[l] = struct{}{}
	}

	t := newTable(landmarks, n)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Parallelism)
	for i, l := range landmarks {
		eg.Go(func() error {
			d, err := distancesFrom(egCtx, g, l, cfg)
			if err != nil {
				return err
			}
			// Rows are disjoint, so workers never write the same element.
			return t.setRow(i, d)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return t, nil
}

// Preprocess selects k landmarks and builds their table in one pass.
// The result equals BuildTable(ctx, g, Select(g, k)).
func Preprocess(ctx context.Context, g *graph.Graph, k int, opts ...Option) (*Table, error) {
	cfg := resolve(opts)
	landmarks, dists, err := selectLandmarks(ctx, g, k, cfg)
	if err != nil {
		return nil, err
	}
	t := newTable(landmarks, g.VertexCount())
	for i, d := range dists {
		if err = t.setRow(i, d); err != nil {
			return nil, err
		}
	}

	return t, nil
}

func newTable(landmarks []int, n int) *Table {
	ls := make([]int, len(landmarks))
	copy(ls, landmarks)

	return &Table{landmarks: ls, n: n, dist: make([]float32, len(ls)*n)}
}

// setRow stores d as row i. +Inf survives the float32 conversion; a finite
// value beyond float32 range would not and is rejected.
func (t *Table) setRow(i int, d []float64) error {
	row := t.dist[i*t.n : (i+1)*t.n]
	for v, dv := range d {
		if dv > math.MaxFloat32 && !math.IsInf(dv, 1) {
			return fmt.Errorf("%w: d(%d,%d)=%g", ErrDistanceOverflow, t.landmarks[i], v, dv)
		}
		row[v] = float32(dv)
	}

	return nil
}

// K returns the number of landmarks.
func (t *Table) K() int { return len(t.landmarks) }

// VertexCount returns n.
func (t *Table) VertexCount() int { return t.n }

// Landmarks returns a copy of the landmark set, in selection order.
func (t *Table) Landmarks() []int {
	out := make([]int, len(t.landmarks))
	copy(out, t.landmarks)

	return out
}

// Distance returns the stored d(landmarks[i], v), or +Inf for out-of-range arguments.
func (t *Table) Distance(i, v int) float64 {
	if i < 0 || i >= len(t.landmarks) || v < 0 || v >= t.n {
		return math.Inf(1)
	}

	return float64(t.dist[i*t.n+v])
}

// Bytes returns the memory held by the distance entries.
func (t *Table) Bytes() int { return 4 * len(t.dist) }

// RoundingError bounds how far any finite stored entry may be from its
// float64 source: the largest entry times 2⁻²⁴. Evaluators stay admissible
// regardless; they are consistent only on edges heavier than about twice this
// value, so lighter edges can make a search re-open settled vertices.
// O(k·n).
func (t *Table) RoundingError() float64 {
	var largest float32
	for _, d := range t.dist {
		if d > largest && !math.IsInf(float64(d), 1) {
			largest = d
		}
	}

	return float64(largest) * roundingSlack / 2
}

// Heuristic returns the evaluator toward goal. Only d(L_i, goal) is read
// here; the table itself is shared.
func (t *Table) Heuristic(goal int) (*Evaluator, error) {
	if goal < 0 || goal >= t.n {
		return nil, fmt.Errorf("%w: goal %d not in [0,%d)", graph.ErrInvalidVertex, goal, t.n)
	}
	toGoal := make([]float64, len(t.landmarks))
	for i := range toGoal {
		toGoal[i] = float64(t.dist[i*t.n+goal])
	}

	return &Evaluator{t: t, goal: goal, toGoal: toGoal}, nil
}
