package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/pathbench/bfs"
	"github.com/katalvlaran/pathbench/graph"
	"github.com/katalvlaran/pathbench/graph/graphtest"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := graphtest.MustBuild(t, graphtest.Diamond())
	if _, err := bfs.BFS(g, 4); !errors.Is(err, graph.ErrInvalidVertex) {
		t.Errorf("bad start: want ErrInvalidVertex, got %v", err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_Diamond checks order, depths, parents and path reconstruction.
func TestBFS_Diamond(t *testing.T) {
	g := graphtest.MustBuild(t, graphtest.Diamond())
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 1, 2}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []int{bfs.NoVertex, 0, 0, 1}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("Parent = %v; want %v", res.Parent, want)
	}
	path, err := res.PathTo(3)
	if err != nil || !reflect.DeepEqual(path, []int{0, 1, 3}) {
		t.Errorf("PathTo(3) = %v, %v; want [0 1 3]", path, err)
	}
}

// TestBFS_FilterAndDepth covers neighbour filtering and MaxDepth.
func TestBFS_FilterAndDepth(t *testing.T) {
	g := graphtest.MustBuild(t, graphtest.Diamond())

	light := func(_, _ int, w float64) bool { return w < 4 }
	res, err := bfs.BFS(g, 0, bfs.WithFilterNeighbor(light))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("filtered Depth = %v; want %v", res.Depth, want)
	}

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth Order = %v; want %v", res.Order, want)
	}
	if res.Depth[3] != bfs.Unreached {
		t.Errorf("Depth[3] = %d; want Unreached", res.Depth[3])
	}
	if _, err := res.PathTo(3); err == nil {
		t.Error("PathTo(3): want error for unreached vertex")
	}
}

// TestBFS_OnVisitAndCancel checks that hook errors and cancellation abort.
func TestBFS_OnVisitAndCancel(t *testing.T) {
	g := graphtest.MustBuild(t, graphtest.Diamond())
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit: want stop, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancel: want context.Canceled, got %v", err)
	}
}

// TestComponents checks labelling on a graph with three components.
func TestComponents(t *testing.T) {
	in := graphtest.Diamond()
	in.Edges = append(in.Edges, graph.Triple{U: 4, V: 5, W: 1})
	g := graphtest.MustBuild(t, graph.NewInput(7, in.Edges))

	labels, count := bfs.Components(g)
	if count != 3 {
		t.Fatalf("count = %d; want 3", count)
	}
	if want := []int{0, 0, 0, 0, 1, 1, 2}; !reflect.DeepEqual(labels, want) {
		t.Errorf("labels = %v; want %v", labels, want)
	}
	if got := bfs.Largest(labels, count); got != 4 {
		t.Errorf("Largest = %d; want 4", got)
	}
}

// TestComponents_MatchesGonum compares the component count with gonum/topo
// on sparse random graphs that are often disconnected.
func TestComponents_MatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := graphtest.Geometric(t, seed, 80, 8)

		ug := simple.NewUndirectedGraph()
		for v := 0; v < g.VertexCount(); v++ {
			ug.AddNode(simple.Node(v))
		}
		for _, tr := range g.Triples() {
			if tr.U != tr.V {
				ug.SetEdge(simple.Edge{F: simple.Node(tr.U), T: simple.Node(tr.V)})
			}
		}

		_, count := bfs.Components(g)
		if want := len(topo.ConnectedComponents(ug)); count != want {
			t.Errorf("seed %d: count = %d; want %d", seed, count, want)
		}
	}
}
