// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand from seed. Seed 0 is mapped to a fixed
// non-zero default so that an unset flag still reproduces.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithWeightFn overrides the weight generator for edges between vertices that
// carry no coordinates. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDetour stretches coordinate-derived weights: an edge of length ℓ weighs
// ℓ·U[1, maxFactor]. Weights never drop below the straight-line length, so the
// Euclidean heuristic stays admissible. Panics unless maxFactor ≥ 1 and finite.
func WithDetour(maxFactor float64) BuilderOption {
	if !(maxFactor >= 1) || math.IsInf(maxFactor, 1) {
		panic(fmt.Sprintf("builder: WithDetour(%g) requires a finite factor ≥ 1", maxFactor))
	}
	return func(c *builderConfig) {
		c.detour = maxFactor
	}
}

// WithExtent sets the side of the square in which Geometric places points.
// Panics unless extent is positive and finite.
func WithExtent(extent float64) BuilderOption {
	if !(extent > 0) || math.IsInf(extent, 1) {
		panic(fmt.Sprintf("builder: WithExtent(%g) requires a positive finite extent", extent))
	}
	return func(c *builderConfig) {
		c.extent = extent
	}
}
