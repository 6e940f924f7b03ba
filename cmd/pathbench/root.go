package main

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathbench/graph"
	"github.com/katalvlaran/pathbench/graphio"
	"github.com/katalvlaran/pathbench/metrics"
)

// Input holds the flag values of every command.
type Input struct {
	verbose      bool
	graphPath    string
	coordsPath   string
	inlineCoords bool
	metricsAddr  string

	query queryInput
	gen   genInput
}

func newRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pathbench",
		Short:        "Run and compare Dijkstra, A* and landmark (ALT) shortest-path searches",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if input.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&input.graphPath, "graph", "g", "", "graph file (\"n m\" header, then \"u v w\" edges)")
	rootCmd.PersistentFlags().StringVar(&input.coordsPath, "coords", "", "coordinate file with \"id x y\" records")
	rootCmd.PersistentFlags().BoolVar(&input.inlineCoords, "inline-coords", false, "graph file carries n \"x y\" lines after the header")
	rootCmd.PersistentFlags().StringVar(&input.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")

	rootCmd.AddCommand(
		newQueryCommand(ctx, input),
		newBenchCommand(ctx, input),
		newGenCommand(input),
	)

	return rootCmd
}

// loadGraph reads the graph named by the persistent flags.
func (i *Input) loadGraph() (*graph.Graph, error) {
	if i.graphPath == "" {
		return nil, errors.New("no graph file given (--graph)")
	}
	var opts []graphio.Option
	if i.inlineCoords {
		opts = append(opts, graphio.WithInlineCoordinates())
	}
	start := time.Now()
	g, err := graphio.LoadGraph(i.graphPath, i.coordsPath, opts...)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"path":     i.graphPath,
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"coords":   g.HasCoordinates(),
		"elapsed":  time.Since(start),
	}).Debug("graph loaded")

	return g, nil
}

// serveMetrics exposes rec on addr until the returned stop function is called.
// An empty addr disables the server.
func serveMetrics(addr string, rec *metrics.Recorder) (stop func()) {
	if addr == "" {
		return func() {}
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Warn("metrics server stopped")
		}
	}()
	log.Infof("serving metrics on http://%s/metrics", addr)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
