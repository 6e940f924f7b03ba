// Package pathbench is a workbench for single-pair shortest paths on large
// undirected graphs with non-negative weights: Dijkstra, A* with a
// straight-line bound, A* with landmark (ALT) lower bounds, and their weighted
// variants, all running on one search loop so they can be compared fairly.
//
// 🚀 What is in the box?
//
//	• graph/     - immutable adjacency store built from "n m" + "u v w" input
//	• frontier/  - priority queues: lazy heap, indexed binary heap, Fibonacci heap
//	• dijkstra/  - the label-correcting loop, priority g + w·h
//	• heuristic/ - the lower-bound contract and the Euclidean bound
//	• landmark/  - farthest-point landmark selection, float32 distance table
//	• search/    - query engine: preprocess once, answer many queries
//	• trace/     - settle-order and explored-edge sinks for visualization
//	• bfs/       - hop distances and connected components
//	• builder/   - deterministic synthetic graphs (geometric, grid, random, path)
//	• graphio/   - text formats for graphs, coordinates and paths
//	• benchplan/ - YAML benchmark plans
//	• metrics/   - Prometheus counters and histograms per query
//
// The pathbench command (cmd/pathbench) wires them together:
//
//	pathbench gen --kind geometric -n 100000 --radius 8 -o city.txt --coords-out city.xy
//	pathbench query -g city.txt --coords city.xy --heuristic landmark -k 16 -s 0 -t 99999
//	pathbench bench plan.yaml
//
// Quick example: the 4-vertex diamond
//
//	     (0)
//	   1 / \ 4
//	  (1)─2─(2)     shortest 0→3 is 0-1-2-3, distance 4
//	   5 \ / 1
//	     (3)
//
//	g, _ := graph.Build(graph.NewInput(4, []graph.Triple{
//		{U: 0, V: 1, W: 1}, {U: 0, V: 2, W: 4}, {U: 1, V: 2, W: 2},
//		{U: 1, V: 3, W: 5}, {U: 2, V: 3, W: 1},
//	}))
//	engine, _ := search.New(g, search.WithHeuristic(search.HeuristicLandmark))
//	res, _ := engine.Query(ctx, 0, 3)
//	// res.Distance == 4, res.Path == [0 1 2 3]
package pathbench
