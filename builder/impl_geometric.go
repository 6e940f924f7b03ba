// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// impl_geometric.go - Geometric(n, radius): a random geometric graph.
//
// Contract:
//   • Requires cfg.rng (ErrNeedRandSource), n ≥ 1, 0 < radius < Inf.
//   • Places n points uniformly in [0, extent)², drawn in vertex order.
//   • Connects every pair whose straight-line distance is ≤ radius, scanning
//     pairs (i, j>i) in lexicographic order.
//   • Weight of each edge is its length times a detour factor ≥ 1.
//
// This is the road-network stand-in: planar-ish, sparse for small radius,
// and equipped with coordinates for the Euclidean heuristic.
//
// Complexity: O(n²) pair checks, O(n) extra space for the points.

package builder

import (
	"math"

	"github.com/katalvlaran/pathbench/graph"
)

const (
	methodGeometric   = "Geometric"
	minGeometricNodes = 1
)

// Geometric returns a Constructor that builds a random geometric graph.
func Geometric(n int, radius float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minGeometricNodes {
			return builderErrorf(methodGeometric, ErrTooFewVertices, "n=%d < min=%d", n, minGeometricNodes)
		}
		if !(radius > 0) || math.IsInf(radius, 1) {
			return builderErrorf(methodGeometric, ErrInvalidRadius, "radius=%g", radius)
		}
		if cfg.rng == nil {
			return builderErrorf(methodGeometric, ErrNeedRandSource, "n=%d", n)
		}

		pts := make([]graph.Point, n)
		for i := range pts {
			pts[i] = graph.Point{X: cfg.rng.Float64() * cfg.extent, Y: cfg.rng.Float64() * cfg.extent}
		}
		if err := d.place(methodGeometric, pts); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if graph.Distance(pts[i], pts[j]) <= radius {
					d.addEdge(i, j, cfg)
				}
			}
		}

		return nil
	}
}
