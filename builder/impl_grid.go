// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Canonical model:
//   • Vertex r*cols + c sits at coordinate (x=c, y=r) with unit spacing.
//   • Edges to the right (r,c+1) and bottom (r+1,c) neighbours, emitted in
//     row-major order, Right before Bottom.
//   • Weights come from the coordinates (1·stretch), so the Euclidean bound is
//     admissible on every grid.
//
// Complexity: O(rows·cols) time and space.

package builder

import "github.com/katalvlaran/pathbench/graph"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return builderErrorf(methodGrid, ErrTooFewVertices,
				"rows=%d, cols=%d (each must be ≥ %d)", rows, cols, minGridDim)
		}

		pts := make([]graph.Point, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts[r*cols+c] = graph.Point{X: float64(c), Y: float64(r)}
			}
		}
		if err := d.place(methodGrid, pts); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					d.addEdge(v, v+1, cfg)
				}
				if r+1 < rows {
					d.addEdge(v, v+cols, cfg)
				}
			}
		}

		return nil
	}
}
