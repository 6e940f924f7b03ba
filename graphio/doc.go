// Package graphio reads and writes the plain-text formats used by pathbench.
//
// Graph file (whitespace separated, line breaks not significant):
//
//	n m
//	x₀ y₀        ┐ n coordinate pairs, only with WithInlineCoordinates
//	…            ┘
//	u v w        ┐ m undirected edges
//	…            ┘
//
// Coordinate file: one "id x y" record per vertex, any order.
// Path file: one vertex per line. Path edge file: one "u v" pair per line.
//
// Readers validate structure (counts, integer endpoints, numeric weights)
// and report failures as graph.ErrMalformedInput with the offending token
// position; value checks such as negative weights are left to graph.Build.
package graphio
