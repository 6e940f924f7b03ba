// SPDX-License-Identifier: MIT
// Package: pathbench/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w (see builderErrorf).
//   • Constructors never panic; validation panics are confined to WithX options.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidRadius indicates a connection radius that is not a positive finite number.
var ErrInvalidRadius = errors.New("builder: radius must be positive and finite")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the constructors could not produce a
// consistent input: a nil constructor, coordinates placed twice, or coordinates
// that do not cover every vertex.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns an error of the form "<method>: <message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
