package landmark

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pathbench/dijkstra"
	"github.com/katalvlaran/pathbench/graph"
)

// Select chooses k landmarks by farthest-point iteration.
//
// Steps:
//  1. Search from the start vertex; the first landmark is the vertex with the
//     largest finite distance.
//  2. Keep dmin[v] = min over chosen landmarks of d(L, v). The next landmark is
//     the non-landmark maximizing dmin; an unreachable vertex (+Inf) counts as
//     farthest, so later landmarks spread into other components.
//
// Ties are broken toward the lowest vertex index, which makes the result a
// pure function of the graph, k and the start vertex.
func Select(g *graph.Graph, k int, opts ...Option) ([]int, error) {
	cfg := resolve(opts)
	landmarks, _, err := selectLandmarks(context.Background(), g, k, cfg)

	return landmarks, err
}

// selectLandmarks returns the landmarks and, for each of them, the distance
// vector computed along the way.
func selectLandmarks(ctx context.Context, g *graph.Graph, k int, cfg Options) ([]int, [][]float64, error) {
	if g == nil {
		return nil, nil, dijkstra.ErrNilGraph
	}
	n := g.VertexCount()
	if k < 1 || k > n {
		return nil, nil, fmt.Errorf("%w: k=%d, n=%d", ErrInvalidLandmarkCount, k, n)
	}
	if err := g.CheckVertex(cfg.Start); err != nil {
		return nil, nil, fmt.Errorf("landmark: start: %w", err)
	}

	fromStart, err := distancesFrom(ctx, g, cfg.Start, cfg)
	if err != nil {
		return nil, nil, err
	}
	first := farthestFinite(fromStart)

	chosen := make([]bool, n)
	landmarks := make([]int, 0, k)
	dists := make([][]float64, 0, k)
	dmin := make([]float64, n)
	for v := range dmin {
		dmin[v] = math.Inf(1)
	}

	next := first
	for {
		d, err := distancesFrom(ctx, g, next, cfg)
		if err != nil {
			return nil, nil, err
		}
		chosen[next] = true
		landmarks = append(landmarks, next)
		dists = append(dists, d)
		if len(landmarks) == k {
			return landmarks, dists, nil
		}
		for v, dv := range d {
			if dv < dmin[v] {
				dmin[v] = dv
			}
		}
		next = farthestFree(dmin, chosen)
	}
}

// farthestFinite returns the lowest index with the largest finite distance.
// The search source has distance 0, so some index always qualifies.
func farthestFinite(dist []float64) int {
	best, bestD := -1, -1.0
	for v, d := range dist {
		if math.IsInf(d, 1) {
			continue
		}
		if d > bestD {
			best, bestD = v, d
		}
	}

	return best
}

// farthestFree returns the lowest unchosen index with the largest dmin.
// +Inf compares greater than every finite value.
func farthestFree(dmin []float64, chosen []bool) int {
	best := -1
	for v, d := range dmin {
		if chosen[v] {
			continue
		}
		if best == -1 || d > dmin[best] {
			best = v
		}
	}

	return best
}

func distancesFrom(ctx context.Context, g *graph.Graph, source int, cfg Options) ([]float64, error) {
	res, err := dijkstra.Run(g, source, dijkstra.WithContext(ctx), dijkstra.WithFrontier(cfg.Frontier))
	if err != nil {
		return nil, fmt.Errorf("landmark: search from %d: %w", source, err)
	}

	return res.Dist, nil
}
