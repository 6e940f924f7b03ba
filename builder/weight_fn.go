// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// weight_fn.go - edge-weight distributions for vertices without coordinates.
//
// Every WeightFn returns a finite, non-negative weight, so any output is
// accepted by graph.Build. A nil RNG yields DefaultEdgeWeight.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics if value is negative or not finite.
func ConstantWeightFn(value float64) WeightFn {
	if !(value >= 0) || math.IsInf(value, 1) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max).
// Panics unless 0 ≤ min ≤ max < +Inf.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0) || !(max >= min) || math.IsInf(max, 1) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max < Inf, got min=%g, max=%g", min, max))
	}
	span := max - min

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if span == 0 {
			return min
		}

		return min + rng.Float64()*span
	}
}

// IntegerWeightFn samples an integer uniformly in [min, max].
// Integer weights keep every path sum exact in float64, which makes results
// comparable bit for bit across algorithms. Panics unless 0 ≤ min ≤ max.
func IntegerWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntegerWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// ExponentialWeightFn samples Exp(rate), mean 1/rate. Panics if rate ≤ 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return rng.ExpFloat64() / rate
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntegerWeight sets integer weights uniform in [min,max].
func WithIntegerWeight(min, max int) BuilderOption {
	return WithWeightFn(IntegerWeightFn(min, max))
}
