// Package heuristic defines the goal-directed lower bounds used by A*.
//
// A Heuristic is a capability object with a single operation, Estimate(v),
// returning a non-negative lower bound on the remaining distance from v to a
// goal fixed at construction time. Implementations must be admissible (never
// overestimate) for A* to stay optimal, and consistent
// (h(u) ≤ w(u,v) + h(v) for every edge) for settled vertices never to need
// re-opening.
//
// Provided implementations:
//
//   - Zero: h ≡ 0, which turns A* back into plain Dijkstra.
//   - Euclidean: straight-line distance to the goal from per-vertex coordinates.
//     Admissible and consistent whenever every edge weight is at least the
//     straight-line length of the edge.
//   - Func: adapter for ad-hoc functions (tests, custom bounds).
//
// The landmark (ALT) heuristic lives in package landmark.
package heuristic

import (
	"fmt"

	"github.com/katalvlaran/pathbench/graph"
)

// Heuristic estimates the remaining cost from v to a fixed goal.
type Heuristic interface {
	Estimate(v int) float64
}

// Func adapts an ordinary function to the Heuristic interface.
type Func func(v int) float64

// Estimate calls f(v).
func (f Func) Estimate(v int) float64 { return f(v) }

// Zero is the null heuristic.
type Zero struct{}

// Estimate always returns 0.
func (Zero) Estimate(int) float64 { return 0 }

// Euclidean is the straight-line distance heuristic toward one goal.
// It reads coordinates from the shared, immutable graph; nothing is copied.
type Euclidean struct {
	g    *graph.Graph
	goal int
}

// NewEuclidean builds the straight-line heuristic for goal on g.
// g must carry coordinates (graph.ErrMalformedInput otherwise) and goal must
// be a valid vertex (graph.ErrInvalidVertex).
func NewEuclidean(g *graph.Graph, goal int) (*Euclidean, error) {
	if _, err := g.Point(goal); err != nil {
		return nil, fmt.Errorf("heuristic: euclidean goal: %w", err)
	}

	return &Euclidean{g: g, goal: goal}, nil
}

// Estimate returns |p(v) − p(goal)|. Out-of-range v yields 0.
func (e *Euclidean) Estimate(v int) float64 {
	if !e.g.Contains(v) {
		return 0
	}

	return e.g.Euclidean(v, e.goal)
}
