// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// draft.go - the mutable edge list shared by constructors.

package builder

import (
	"github.com/katalvlaran/pathbench/graph"
)

// draft accumulates vertices, edges and coordinates. It keeps the edge list
// simple: no self-loops and at most one edge per unordered pair.
type draft struct {
	n      int
	edges  []graph.Triple
	coords []graph.Point
	seen   map[[2]int]struct{}
}

func newDraft() *draft {
	return &draft{seen: make(map[[2]int]struct{})}
}

// grow extends the vertex range to at least n.
func (d *draft) grow(n int) {
	if n > d.n {
		d.n = n
	}
}

// place installs coordinates for vertices 0..len(pts)-1.
func (d *draft) place(method string, pts []graph.Point) error {
	if d.coords != nil {
		return builderErrorf(method, ErrConstructFailed, "coordinates already placed")
	}
	d.coords = pts
	d.grow(len(pts))

	return nil
}

// addEdge appends {u,v} unless it is a self-loop or already present.
// The weight is derived from coordinates when both endpoints have them,
// otherwise from cfg.weightFn.
func (d *draft) addEdge(u, v int, cfg builderConfig) bool {
	if u == v {
		return false
	}
	key := [2]int{u, v}
	if u > v {
		key = [2]int{v, u}
	}
	if _, dup := d.seen[key]; dup {
		return false
	}
	d.seen[key] = struct{}{}
	d.edges = append(d.edges, graph.Triple{U: u, V: v, W: d.weight(u, v, cfg)})

	return true
}

func (d *draft) weight(u, v int, cfg builderConfig) float64 {
	if u >= len(d.coords) || v >= len(d.coords) {
		return cfg.weightFn(cfg.rng)
	}
	length := graph.Distance(d.coords[u], d.coords[v])
	if cfg.detour == 1 || cfg.rng == nil {
		return length
	}

	// stretch ≥ 1 keeps w ≥ length, and length*1 is exact.
	stretch := 1 + cfg.rng.Float64()*(cfg.detour-1)

	return length * stretch
}
