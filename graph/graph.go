package graph

import (
	"fmt"
	"math"
)

// Graph is an immutable, symmetric adjacency-list graph over vertices [0, n).
//
// Every input triple (u, v, w) is stored twice: as u→v and as v→u.
// Duplicate edges are kept; they are harmless to shortest-path searches.
type Graph struct {
	adj    [][]Edge // adj[u] = outgoing entries of u
	edges  int      // number of input triples stored (after self-loop filtering)
	coords []Point  // optional; len == len(adj) when present
}

// Build validates in and constructs the adjacency structure.
//
// Validation (in order):
//  1. VertexCount ≥ 0 and EdgeCount == len(Edges) (ErrMalformedInput).
//  2. Coordinates empty or exactly VertexCount long (ErrMalformedInput).
//  3. Every endpoint in [0, VertexCount) (ErrMalformedInput).
//  4. Every weight finite and ≥ 0 (ErrInvalidWeight).
//
// Complexity: O(V + E) time and space.
func Build(in Input, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := in.VertexCount
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrMalformedInput, n)
	}
	if in.EdgeCount != len(in.Edges) {
		return nil, fmt.Errorf("%w: header declares %d edges, %d present",
			ErrMalformedInput, in.EdgeCount, len(in.Edges))
	}
	if len(in.Coordinates) != 0 && len(in.Coordinates) != n {
		return nil, fmt.Errorf("%w: %d coordinates for %d vertices",
			ErrMalformedInput, len(in.Coordinates), n)
	}

	// First pass: validate and count degrees so each list is allocated once.
	degree := make([]int, n)
	for i, e := range in.Edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) outside [0,%d)",
				ErrMalformedInput, i, e.U, e.V, n)
		}
		if !validWeight(e.W) {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) weight=%g",
				ErrInvalidWeight, i, e.U, e.V, e.W)
		}
		if e.U == e.V {
			if cfg.DropSelfLoops {
				continue
			}
			degree[e.U]++ // a loop appears once in its own list
			continue
		}
		degree[e.U]++
		degree[e.V]++
	}

	g := &Graph{adj: make([][]Edge, n)}
	for v := 0; v < n; v++ {
		g.adj[v] = make([]Edge, 0, degree[v])
	}

	// Second pass: insert both directions.
	for _, e := range in.Edges {
		if e.U == e.V {
			if cfg.DropSelfLoops {
				continue
			}
			g.adj[e.U] = append(g.adj[e.U], Edge{To: e.V, Weight: e.W})
			g.edges++
			continue
		}
		g.adj[e.U] = append(g.adj[e.U], Edge{To: e.V, Weight: e.W})
		g.adj[e.V] = append(g.adj[e.V], Edge{To: e.U, Weight: e.W})
		g.edges++
	}

	if len(in.Coordinates) != 0 {
		g.coords = make([]Point, n)
		copy(g.coords, in.Coordinates)
	}

	return g, nil
}

// VertexCount returns n, the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges stored.
func (g *Graph) EdgeCount() int { return g.edges }

// Contains reports whether v is a valid vertex index.
func (g *Graph) Contains(v int) bool { return v >= 0 && v < len(g.adj) }

// Neighbors returns the adjacency list of v. The returned slice is shared
// with the Graph and must not be modified. Out-of-range v yields nil.
func (g *Graph) Neighbors(v int) []Edge {
	if !g.Contains(v) {
		return nil
	}

	return g.adj[v]
}

// Degree returns the number of adjacency entries of v (0 for out-of-range v).
func (g *Graph) Degree(v int) int { return len(g.Neighbors(v)) }

// HasCoordinates reports whether per-vertex coordinates were supplied.
func (g *Graph) HasCoordinates() bool { return g.coords != nil }

// Point returns the coordinates of v.
// Fails with ErrInvalidVertex for out-of-range v and ErrMalformedInput when
// the graph carries no coordinates.
func (g *Graph) Point(v int) (Point, error) {
	if !g.Contains(v) {
		return Point{}, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}
	if g.coords == nil {
		return Point{}, fmt.Errorf("%w: graph has no coordinates", ErrMalformedInput)
	}

	return g.coords[v], nil
}

// Euclidean returns the straight-line distance between u and v.
// Both vertices must be valid and the graph must carry coordinates;
// otherwise it returns +Inf.
func (g *Graph) Euclidean(u, v int) float64 {
	if g.coords == nil || !g.Contains(u) || !g.Contains(v) {
		return math.Inf(1)
	}

	return Distance(g.coords[u], g.coords[v])
}

// Distance is the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// CheckVertex returns a wrapped ErrInvalidVertex unless v is in range.
func (g *Graph) CheckVertex(v int) error {
	if !g.Contains(v) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidVertex, v, len(g.adj))
	}

	return nil
}

// Triples returns every stored undirected edge once, with U ≤ V, in
// adjacency order. Used by serializers.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, g.edges)
	for u, list := range g.adj {
		for _, e := range list {
			// Each non-loop edge appears twice; emit it from its lower endpoint.
			if u <= e.To {
				out = append(out, Triple{U: u, V: e.To, W: e.Weight})
			}
		}
	}

	return out
}
