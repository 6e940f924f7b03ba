package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathbench/graph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *graph.Graph
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. Edge weights are ignored.
// Returns ErrGraphNil, graph.ErrInvalidVertex for a bad start,
// ErrOptionViolation for bad options, the context's error on cancellation,
// or any OnVisit error.
func BFS(g *graph.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.CheckVertex(start); err != nil {
		return nil, fmt.Errorf("bfs: start: %w", err)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = NoVertex
	}

	w.enqueue(start, 0, NoVertex)

	return w.res, w.loop()
}

// enqueue records v's depth and parent and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		u := w.queue[head]
		d := w.res.Depth[u]
		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(u, d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		for _, e := range w.graph.Neighbors(u) {
			if w.res.Depth[e.To] != Unreached || !w.opts.FilterNeighbor(u, e.To, e.Weight) {
				continue
			}
			w.enqueue(e.To, d+1, u)
		}
	}

	return nil
}
