package main

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathbench/benchplan"
	"github.com/katalvlaran/pathbench/bfs"
	"github.com/katalvlaran/pathbench/graph"
	"github.com/katalvlaran/pathbench/graphio"
)

type genInput struct {
	spec      benchplan.Generator
	out       string
	coordsOut string
}

func newGenCommand(input *Input) *cobra.Command {
	gi := &input.gen
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic graph file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(gi, cmd.OutOrStdout())
		},
	}
	s := &gi.spec
	cmd.Flags().StringVar(&s.Kind, "kind", benchplan.KindGeometric, "geometric | grid | random | path")
	cmd.Flags().IntVarP(&s.Vertices, "vertices", "n", 1000, "vertex count (geometric, random, path)")
	cmd.Flags().IntVar(&s.Rows, "rows", 0, "grid rows")
	cmd.Flags().IntVar(&s.Cols, "cols", 0, "grid columns")
	cmd.Flags().Float64Var(&s.Radius, "radius", 50, "connection radius (geometric)")
	cmd.Flags().Float64Var(&s.Probability, "probability", 0.01, "extra edge probability (random)")
	cmd.Flags().Float64Var(&s.Detour, "detour", 1, "geometric weights are length·U[1,detour]")
	cmd.Flags().Float64Var(&s.Extent, "extent", 0, "side of the square points are drawn from (0: default)")
	cmd.Flags().IntVar(&s.MinWeight, "min-weight", 0, "smallest integer weight (random, path)")
	cmd.Flags().IntVar(&s.MaxWeight, "max-weight", 0, "largest integer weight (random, path)")
	cmd.Flags().Int64Var(&s.Seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&gi.out, "out", "o", "", "graph file (default stdout)")
	cmd.Flags().StringVar(&gi.coordsOut, "coords-out", "", "write coordinates to this file instead of inline")

	return cmd
}

func runGen(gi *genInput, stdout io.Writer) error {
	spec := gi.spec
	in, err := spec.Input()
	if err != nil {
		return err
	}
	// Build rejects what the reader would reject later.
	g, err := graph.Build(in)
	if err != nil {
		return errors.WithMessage(err, "generated graph")
	}
	labels, components := bfs.Components(g)
	if components > 1 {
		log.WithFields(log.Fields{
			"components": components,
			"largest":    bfs.Largest(labels, components),
		}).Warn("generated graph is disconnected; some queries will have no path")
	}

	coords := in.Coordinates
	if gi.coordsOut != "" {
		in.Coordinates = nil
		if err := writeFile(gi.coordsOut, func(w io.Writer) error { return graphio.WriteCoordinates(w, coords) }); err != nil {
			return err
		}
	}

	if gi.out == "" {
		if err := graphio.WriteGraph(stdout, in); err != nil {
			return err
		}
	} else if err := writeFile(gi.out, func(w io.Writer) error { return graphio.WriteGraph(w, in) }); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"kind":       spec.Kind,
		"vertices":   in.VertexCount,
		"edges":      len(in.Edges),
		"coords":     len(coords) > 0,
		"components": components,
	}).Debug("graph generated")

	return nil
}

