package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathbench/frontier"
	"github.com/katalvlaran/pathbench/graphio"
	"github.com/katalvlaran/pathbench/metrics"
	"github.com/katalvlaran/pathbench/search"
	"github.com/katalvlaran/pathbench/trace"
)

type queryInput struct {
	source       int
	target       int
	heuristic    string
	frontier     string
	weight       float64
	landmarks    int
	pathOut      string
	pathEdgesOut string
	exploredOut  string
	progressOut  string
	sampleEvery  int
}

func newQueryCommand(ctx context.Context, input *Input) *cobra.Command {
	q := &input.query
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Find one shortest (or w-bounded) path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(ctx, input, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&q.source, "source", "s", 0, "source vertex")
	cmd.Flags().IntVarP(&q.target, "target", "t", -1, "target vertex (-1: last vertex)")
	cmd.Flags().StringVar(&q.heuristic, "heuristic", "none", "none | euclidean | landmark")
	cmd.Flags().StringVar(&q.frontier, "frontier", "lazy", "lazy | binary | fibonacci")
	cmd.Flags().Float64VarP(&q.weight, "weight", "w", 1, "heuristic weight w ≥ 1 (priority g + w·h)")
	cmd.Flags().IntVarP(&q.landmarks, "landmarks", "k", search.DefaultLandmarks, "landmark count for --heuristic landmark")
	cmd.Flags().StringVar(&q.pathOut, "path-out", "", "write the path, one vertex per line")
	cmd.Flags().StringVar(&q.pathEdgesOut, "path-edges-out", "", "write the path as \"u v\" pairs")
	cmd.Flags().StringVar(&q.exploredOut, "explored-out", "", "write every examined edge as \"u v\"")
	cmd.Flags().StringVar(&q.progressOut, "progress-out", "", "write an \"elapsed_ms,settled\" progress CSV")
	cmd.Flags().IntVar(&q.sampleEvery, "sample-every", trace.DefaultSampleEvery, "settled vertices between progress rows")

	return cmd
}

func runQuery(ctx context.Context, input *Input, out io.Writer) error {
	q := input.query
	g, err := input.loadGraph()
	if err != nil {
		return err
	}
	h, err := search.ParseHeuristic(q.heuristic)
	if err != nil {
		return err
	}
	kind, err := frontier.ParseKind(q.frontier)
	if err != nil {
		return err
	}
	target := q.target
	if target == -1 {
		target = g.VertexCount() - 1
	}

	rec := metrics.NewRecorder()
	stop := serveMetrics(input.metricsAddr, rec)
	defer stop()

	engine, err := search.NewContext(ctx, g,
		search.WithHeuristic(h),
		search.WithFrontier(kind),
		search.WithWeight(q.weight),
		search.WithLandmarks(q.landmarks),
		search.WithLogger(log.StandardLogger()),
		search.WithObserver(rec),
	)
	if err != nil {
		return err
	}

	var res *search.Result
	err = withSinks(q, func(sink trace.Sink) error {
		var qerr error
		res, qerr = engine.Query(ctx, q.source, target, search.WithSink(sink))
		return qerr
	})
	if err != nil {
		return err
	}

	if !res.Found {
		fmt.Fprintf(out, "%s: no path %d→%d (settled=%d)\n", engine.Mode(), res.Source, res.Target, res.Settled)
		return nil
	}
	fmt.Fprintf(out, "%s: distance=%s hops=%d settled=%d relaxations=%d elapsed=%s\n",
		engine.Mode(), formatDistance(res.Distance), len(res.Path)-1, res.Settled, res.Relaxations, res.Elapsed)
	if pt := engine.PreprocessTime(); pt > 0 {
		fmt.Fprintf(out, "preprocess=%s\n", pt)
	}

	if err := writeFile(q.pathOut, func(w io.Writer) error { return graphio.WritePath(w, res.Path) }); err != nil {
		return err
	}

	return writeFile(q.pathEdgesOut, func(w io.Writer) error { return graphio.WritePathEdges(w, res.Path) })
}

// withSinks opens the requested trace files, runs fn with their combined sink
// and closes them. Each file is flushed even when fn fails.
func withSinks(q queryInput, fn func(trace.Sink) error) error {
	type spec struct {
		path string
		mk   func(io.Writer) trace.Sink
	}
	specs := []spec{
		{q.exploredOut, func(w io.Writer) trace.Sink { return trace.NewEdgeLog(w) }},
		{q.progressOut, func(w io.Writer) trace.Sink { return trace.NewProgress(w, q.sampleEvery) }},
	}

	var open func(i int, acc trace.Multi) error
	open = func(i int, acc trace.Multi) error {
		if i == len(specs) {
			return fn(acc)
		}
		if specs[i].path == "" {
			return open(i+1, acc)
		}
		return trace.Scoped(specs[i].path, specs[i].mk, func(s trace.Sink) error {
			return open(i+1, append(acc, s))
		})
	}

	return open(0, nil)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	return write(f)
}

func formatDistance(d float64) string {
	if d == math.Trunc(d) && math.Abs(d) < 1e15 {
		return fmt.Sprintf("%.0f", d)
	}

	return fmt.Sprintf("%.6f", d)
}
