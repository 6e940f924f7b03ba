// Package dijkstra provides the single-source distance oracle of pathbench:
// one label-correcting loop that runs Dijkstra's algorithm, A*, and weighted
// A* over a *graph.Graph with non-negative edge weights.
//
// Overview:
//
//   - The loop settles vertices in order of priority g(v) + w·h(v). With h ≡ 0
//     a settled vertex is final. With a heuristic that is admissible but not
//     consistent, a settled vertex is re-opened when a strictly shorter path
//     to it turns up (Result.Reopened counts these).
//   - The priority queue is pluggable (package frontier): lazy re-insertion,
//     decrease-key binary heap, or Fibonacci heap. All three finalize the same
//     distances; only speed and memory differ.
//   - The heuristic is pluggable (package heuristic, package landmark).
//   - A target enables the goal-reached short-circuit: the run stops as soon
//     as the target is settled.
//
// When to use:
//
//   - Full distance vectors (no target): landmark preprocessing, reachability
//     studies, all-distances-from-one-vertex reports.
//   - Point-to-point queries (with target): the search driver in package search.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - WithReturnPath: returns a predecessor slice, so you can rebuild each path (Result.PathTo).
//   - WithMaxDistance: never explores beyond a specified distance.
//   - WithInfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - WithSink: streams settle/examine events to a trace.Sink; the sink is
//     flushed on every exit path.
//   - WithContext: cancellation/deadline checked once per settled vertex.
//
// Instrumentation is returned as plain values: Result.Settled,
// Result.Relaxations and Result.Elapsed (search loop only, validation excluded).
//
// No path:
//
//	A disconnected target ends the run with Dist[t] == +Inf and
//	Reached == false; PathTo(t) returns nil. This is not an error.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrInvalidVertex, ErrBadWeightFactor: returned by Run.
//   - frontier.ErrUnknownKind: returned by Run for a Kind outside frontier.Kinds.
//   - ErrBadMaxDistance, ErrBadInfThreshold: panics from the option constructors.
//   - ErrFrontierDrained: internal logic error, never returned by a correct run.
//
// Thread safety:
//
//   - Run owns all of its mutable state; any number of Runs may share one
//     *graph.Graph and one heuristic concurrently.
//   - A trace.Sink must not be shared between concurrent Runs.
package dijkstra
