// Package bfs provides breadth-first search over a graph.Graph, ignoring
// weights: hop distances, parent links, visit order, and connected components.
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex
//     and returns a Result with Order, Depth and Parent (NoVertex / Unreached
//     mark vertices never seen).
//   - Components labels every vertex with its connected component; the
//     command-line tools use it to report disconnected inputs, where some
//     queries have no path at all.
//   - Options: context cancellation, MaxDepth, FilterNeighbor, OnVisit.
//
// Determinism
//
//	Neighbours are scanned in the graph's adjacency order, so the visit
//	sequence is reproducible for a given graph.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
