// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildInput(bopts, cons...). Resolves cfg, runs cons in order.
//   • BuildGraph is BuildInput followed by graph.Build.
//   • Determinism: same options, seed and constructor order ⇒ identical input.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathbench/graph"
)

// Constructor adds vertices, edges or coordinates to a draft using the
// resolved builderConfig. Constructors validate their parameters early and
// return sentinel errors; they never panic.
type Constructor func(d *draft, cfg builderConfig) error

// BuildInput resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting edge list.
//
// Constructors share one vertex range: each grows it to at least its own n, so
// RandomTree(n) followed by RandomSparse(n, p) yields a connected random graph.
// Repeated and self-loop edges produced by later constructors are dropped.
func BuildInput(bopts []BuilderOption, cons ...Constructor) (graph.Input, error) {
	cfg := newBuilderConfig(bopts...)
	d := newDraft()
	for i, fn := range cons {
		if fn == nil {
			return graph.Input{}, fmt.Errorf("BuildInput: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return graph.Input{}, fmt.Errorf("BuildInput: %w", err)
		}
	}
	if d.coords != nil && len(d.coords) != d.n {
		return graph.Input{}, fmt.Errorf("BuildInput: coordinates cover %d of %d vertices: %w",
			len(d.coords), d.n, ErrConstructFailed)
	}

	in := graph.NewInput(d.n, d.edges)
	in.Coordinates = d.coords

	return in, nil
}

// BuildGraph runs BuildInput and builds the adjacency structure from it.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	in, err := BuildInput(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := graph.Build(in)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Path(n)              simple path 0-1-…-(n-1), n ≥ 2.
// Cycle(n)             simple cycle, n ≥ 3.
// Grid(rows, cols)     4-neighbourhood grid with unit-spaced coordinates.
// Geometric(n, radius) random points in a square, edges between points within radius.
// RandomSparse(n, p)   each unordered pair independently with probability p.
// RandomTree(n)        uniform random recursive tree; guarantees connectivity.
