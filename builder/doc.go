// Package builder generates synthetic shortest-path inputs with the
// functional-options pattern.
//
// A build resolves BuilderOption values into an immutable configuration and
// runs one or more Constructor closures over a shared draft edge list:
//
//	in, err := builder.BuildInput(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntegerWeight(1, 9)},
//		builder.RandomTree(1000),
//		builder.RandomSparse(1000, 0.004),
//	)
//
// Constructors:
//
//   - Path, Cycle         deterministic chains.
//   - Grid                unit-spaced lattice with coordinates.
//   - Geometric           random points with radius-based edges and coordinates.
//   - RandomSparse        G(n, p).
//   - RandomTree          random spanning tree, for guaranteed connectivity.
//
// Weights: an edge between two vertices with coordinates weighs its length,
// optionally stretched by WithDetour; every other edge takes its weight from
// the configured WeightFn. The draft never contains self-loops or repeated
// pairs, so the output also loads into simple-graph libraries.
//
// Stochastic constructors require an RNG (WithSeed or WithRand) and return
// ErrNeedRandSource otherwise. The same options, seed and constructor order
// always produce the same input.
package builder
