package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathbench/benchplan"
	"github.com/katalvlaran/pathbench/bfs"
	"github.com/katalvlaran/pathbench/graph"
	"github.com/katalvlaran/pathbench/graphio"
	"github.com/katalvlaran/pathbench/metrics"
	"github.com/katalvlaran/pathbench/search"
	"github.com/katalvlaran/pathbench/trace"
)

func newBenchCommand(ctx context.Context, input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "bench PLAN.yaml",
		Short: "Run every configuration of a benchmark plan and report a comparison table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(ctx, input, args[0], cmd.OutOrStdout())
		},
	}
}

// runStats aggregates one run over repeat × pairs queries.
type runStats struct {
	queries     int
	found       int
	distance    float64 // sum over found queries
	settled     int
	relaxations int
	search      time.Duration
}

func (s *runStats) add(r *search.Result) {
	s.queries++
	s.settled += r.Settled
	s.relaxations += r.Relaxations
	s.search += r.Elapsed
	if r.Found {
		s.found++
		s.distance += r.Distance
	}
}

func runBench(ctx context.Context, input *Input, planPath string, out io.Writer) error {
	plan, err := benchplan.Load(planPath)
	if err != nil {
		return errors.WithMessagef(err, "plan %s", planPath)
	}
	g, err := planGraph(input, plan, filepath.Dir(planPath))
	if err != nil {
		return err
	}
	pairs, err := plan.Pairs(g.VertexCount())
	if err != nil {
		return err
	}

	_, components := bfs.Components(g)
	runID := uuid.New()
	logger := log.WithFields(log.Fields{"run_id": runID.String(), "plan": plan.Name})
	logger.WithFields(log.Fields{
		"vertices":   g.VertexCount(),
		"edges":      g.EdgeCount(),
		"components": components,
		"queries":    len(pairs),
		"repeat":     plan.Repeat,
	}).Info("benchmark started")

	rec := metrics.NewRecorder()
	stop := serveMetrics(input.metricsAddr, rec)
	defer stop()

	if plan.TraceDir != "" {
		if err := os.MkdirAll(plan.TraceDir, 0o755); err != nil {
			return errors.Wrap(err, "trace dir")
		}
	}

	fmt.Fprintf(out, "run %s  plan %q  n=%s  m=%s  components=%d  queries=%d×%d\n", runID, plan.Name,
		humanize.Comma(int64(g.VertexCount())), humanize.Comma(int64(g.EdgeCount())), components, len(pairs), plan.Repeat)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tMODE\tFOUND\tMEAN DIST\tMEAN SETTLED\tMEAN RELAX\tMEAN TIME\tPREPROCESS\tTABLE")

	var reference []float64 // exact distances from the first run with weight 1
	for _, run := range plan.Runs {
		opts, err := run.SearchOptions()
		if err != nil {
			return err
		}
		runLog := logger.WithField("run", run.Name)
		opts = append(opts, search.WithLogger(runLog), search.WithObserver(rec))
		if plan.Parallelism > 0 {
			opts = append(opts, search.WithParallelism(plan.Parallelism))
		}
		engine, err := search.NewContext(ctx, g, opts...)
		if err != nil {
			return errors.WithMessagef(err, "run %s", run.Name)
		}

		if plan.TraceDir != "" {
			if err := traceFirst(ctx, engine, pairs[0], plan, run.Name); err != nil {
				return err
			}
		}

		var stats runStats
		var last []*search.Result
		for i := 0; i < plan.Repeat; i++ {
			last, err = engine.QueryBatch(ctx, pairs)
			if err != nil {
				return errors.WithMessagef(err, "run %s", run.Name)
			}
			for _, r := range last {
				stats.add(r)
			}
		}
		reference = checkAgainst(runLog, reference, run, last)

		table := "-"
		if t := engine.Landmarks(); t != nil {
			table = humanize.Bytes(uint64(t.Bytes()))
		}
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			run.Name, engine.Mode(), stats.found, stats.queries,
			meanDistance(stats), humanize.Comma(int64(stats.settled/stats.queries)),
			humanize.Comma(int64(stats.relaxations/stats.queries)),
			stats.search/time.Duration(stats.queries), engine.PreprocessTime().Round(time.Microsecond), table)
	}

	return tw.Flush()
}

// planGraph loads or generates the plan's graph. A relative graph path is
// resolved against the plan's directory; --graph overrides the plan.
func planGraph(input *Input, plan *benchplan.Plan, dir string) (*graph.Graph, error) {
	if input.graphPath != "" {
		return input.loadGraph()
	}
	if gen := plan.Graph.Generate; gen != nil {
		in, err := gen.Input()
		if err != nil {
			return nil, err
		}
		return graph.Build(in)
	}

	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	var opts []graphio.Option
	if plan.Graph.InlineCoordinates {
		opts = append(opts, graphio.WithInlineCoordinates())
	}

	return graphio.LoadGraph(resolve(plan.Graph.Path), resolve(plan.Graph.Coordinates), opts...)
}

// traceFirst reruns the first query with a progress sink and writes
// trace_<run>.csv into the plan's trace directory.
func traceFirst(ctx context.Context, engine *search.Engine, p search.Pair, plan *benchplan.Plan, name string) error {
	path := filepath.Join(plan.TraceDir, "trace_"+name+".csv")
	mk := func(w io.Writer) trace.Sink { return trace.NewProgress(w, plan.SampleEvery) }

	return trace.Scoped(path, mk, func(s trace.Sink) error {
		_, err := engine.Query(ctx, p.Source, p.Target, search.WithSink(s), search.WithoutPath())
		return err
	})
}

// checkAgainst compares the distances of an exact run (weight 1) with the
// first exact run and logs any disagreement. It returns the reference to keep.
func checkAgainst(logger log.FieldLogger, reference []float64, run benchplan.Run, results []*search.Result) []float64 {
	if run.Weight != 1 {
		return reference
	}
	dists := make([]float64, len(results))
	for i, r := range results {
		dists[i] = r.Distance
	}
	if reference == nil {
		return dists
	}
	for i, want := range reference {
		got := dists[i]
		if got == want || math.Abs(got-want) <= 1e-9*math.Max(1, math.Abs(want)) {
			continue
		}
		logger.WithFields(log.Fields{
			"query": i,
			"want":  want,
			"got":   got,
		}).Warn("distance differs from the reference run")
	}

	return reference
}

func meanDistance(s runStats) string {
	if s.found == 0 {
		return "-"
	}

	return fmt.Sprintf("%.3f", s.distance/float64(s.found))
}
