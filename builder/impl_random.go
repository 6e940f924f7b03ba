// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// impl_random.go - RandomSparse(n, p) and RandomTree(n).
//
// Contract:
//   • Both require cfg.rng (ErrNeedRandSource).
//   • RandomSparse: n ≥ 1, p ∈ [0,1]; each unordered pair (i<j) is drawn once,
//     in lexicographic order, and kept with probability p.
//   • RandomTree: n ≥ 1; vertex perm[i] attaches to a uniformly chosen
//     earlier vertex perm[j], j < i. The result is connected with n-1 edges.
//
// Complexity: RandomSparse O(n²) draws; RandomTree O(n).

package builder

const (
	methodRandomSparse = "RandomSparse"
	methodRandomTree   = "RandomTree"
	minRandomNodes     = 1
	minProbability     = 0.0
	maxProbability     = 1.0
)

// RandomSparse returns a Constructor that builds an Erdős–Rényi G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomNodes {
			return builderErrorf(methodRandomSparse, ErrTooFewVertices, "n=%d < min=%d", n, minRandomNodes)
		}
		if !(p >= minProbability && p <= maxProbability) {
			return builderErrorf(methodRandomSparse, ErrInvalidProbability, "p=%g", p)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "n=%d", n)
		}

		d.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					d.addEdge(i, j, cfg)
				}
			}
		}

		return nil
	}
}

// RandomTree returns a Constructor that builds a random spanning tree over
// vertices 0..n-1.
func RandomTree(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomNodes {
			return builderErrorf(methodRandomTree, ErrTooFewVertices, "n=%d < min=%d", n, minRandomNodes)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomTree, ErrNeedRandSource, "n=%d", n)
		}

		d.grow(n)
		perm := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			d.addEdge(perm[i], perm[cfg.rng.Intn(i)], cfg)
		}

		return nil
	}
}
