// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                (stochastic constructors refuse to run)
//   • weightFn = DefaultWeightFn    (constant DefaultEdgeWeight)
//   • detour   = 1.0                (coordinate edges weigh exactly their length)
//   • extent   = DefaultExtent      (side of the square used by Geometric)

package builder

import (
	"math/rand"
)

// DefaultExtent is the side length of the square in which Geometric places points.
const DefaultExtent = 1000.0

// defaultRNGSeed replaces seed 0 so that the zero value still reproduces.
const defaultRNGSeed int64 = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng      *rand.Rand // source for stochastic choices; nil means none
	weightFn WeightFn   // weight of edges between vertices without coordinates
	detour   float64    // coordinate edges weigh length·U[1, detour]
	extent   float64    // Geometric places points in [0, extent)²
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		detour:   1,
		extent:   DefaultExtent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
