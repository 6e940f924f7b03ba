// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   • Path: n ≥ 2, edges (i-1, i) for i=1..n-1 in increasing order.
//   • Cycle: n ≥ 3, the path plus the closing edge (n-1, 0).
//   • Weight policy: coordinates if placed, otherwise cfg.weightFn(cfg.rng).
//
// Complexity: O(n) time, O(1) extra space.

package builder

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathNodes)
		}
		d.grow(n)
		for i := 1; i < n; i++ {
			d.addEdge(i-1, i, cfg)
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return builderErrorf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes)
		}
		d.grow(n)
		for i := 1; i < n; i++ {
			d.addEdge(i-1, i, cfg)
		}
		d.addEdge(n-1, 0, cfg)

		return nil
	}
}
