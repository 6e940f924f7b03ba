// Package graph defines the immutable adjacency-list Graph consumed by every
// search in pathbench, together with its construction input, sentinel errors
// and build options.
//
// Vertices are plain integers in [0, n); there is no separate vertex object.
// A Graph is built once from an Input and never mutated afterwards, so a single
// *Graph may be shared by any number of concurrent readers without locking.
//
// Errors:
//
//	ErrMalformedInput - header/edge counts disagree, or an endpoint is out of range.
//	ErrInvalidWeight  - an edge weight is negative, NaN or infinite.
//	ErrInvalidVertex  - a vertex index outside [0, n) was requested.
package graph

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrMalformedInput indicates inconsistent header/edge counts, an edge endpoint
	// outside [0, VertexCount), or a coordinate table of the wrong length.
	ErrMalformedInput = errors.New("graph: malformed input")

	// ErrInvalidWeight indicates a negative, NaN or infinite edge weight.
	// Shortest-path searches over this package require finite non-negative weights.
	ErrInvalidWeight = errors.New("graph: invalid edge weight")

	// ErrInvalidVertex indicates a vertex index outside [0, VertexCount).
	ErrInvalidVertex = errors.New("graph: vertex out of range")
)

// Edge is one adjacency-list entry: the head vertex and the traversal cost.
type Edge struct {
	To     int     // head vertex
	Weight float64 // non-negative traversal cost
}

// Triple is one undirected input edge u-v with weight W, as read from an edge list.
type Triple struct {
	U, V int
	W    float64
}

// Point is a planar coordinate attached to a vertex, used by the straight-line heuristic.
type Point struct {
	X, Y float64
}

// Input is the already-parsed graph description handed to Build.
//
// VertexCount and EdgeCount mirror the "n m" header of the edge-list format;
// Build rejects the input if EdgeCount does not match len(Edges).
// Coordinates is optional; when non-empty it must hold exactly VertexCount points.
type Input struct {
	VertexCount int
	EdgeCount   int
	Edges       []Triple
	Coordinates []Point
}

// NewInput returns an Input whose EdgeCount is derived from edges.
func NewInput(n int, edges []Triple) Input {
	return Input{VertexCount: n, EdgeCount: len(edges), Edges: edges}
}

// Options configures Build.
type Options struct {
	// DropSelfLoops discards u-u edges instead of storing them.
	// Self-loops never shorten a path, so dropping them only saves memory.
	DropSelfLoops bool
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithDropSelfLoops discards self-loop edges during Build.
func WithDropSelfLoops() Option {
	return func(o *Options) {
		o.DropSelfLoops = true
	}
}

// DefaultOptions returns the Build defaults: self-loops are kept.
func DefaultOptions() Options {
	return Options{DropSelfLoops: false}
}

// validWeight reports whether w is usable by Dijkstra/A*: finite and ≥ 0.
func validWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}
