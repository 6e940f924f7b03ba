package bfs

import "github.com/katalvlaran/pathbench/graph"

// Components labels each vertex of g with a component index in [0, count).
// Components are numbered in order of their lowest vertex, so vertex 0 is
// always in component 0.
func Components(g *graph.Graph) (labels []int, count int) {
	if g == nil {
		return nil, 0
	}
	n := g.VertexCount()
	labels = make([]int, n)
	for v := range labels {
		labels[v] = Unreached
	}

	queue := make([]int, 0, n)
	for root := 0; root < n; root++ {
		if labels[root] != Unreached {
			continue
		}
		labels[root] = count
		queue = append(queue[:0], root)
		for head := 0; head < len(queue); head++ {
			for _, e := range g.Neighbors(queue[head]) {
				if labels[e.To] == Unreached {
					labels[e.To] = count
					queue = append(queue, e.To)
				}
			}
		}
		count++
	}

	return labels, count
}

// Largest returns the size of the biggest component given Components' output.
func Largest(labels []int, count int) int {
	sizes := make([]int, count)
	best := 0
	for _, c := range labels {
		sizes[c]++
		if sizes[c] > best {
			best = sizes[c]
		}
	}

	return best
}
