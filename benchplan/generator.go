package benchplan

import (
	"fmt"

	"github.com/katalvlaran/pathbench/builder"
	"github.com/katalvlaran/pathbench/graph"
)

// Generator kinds.
const (
	KindGeometric = "geometric"
	KindGrid      = "grid"
	KindRandom    = "random"
	KindPath      = "path"
)

// Generator describes a synthetic graph.
//
//   - geometric: Vertices points, edges within Radius; weights = length·U[1,Detour].
//   - grid:      Rows×Cols lattice with coordinates.
//   - random:    spanning tree plus G(Vertices, Probability); integer weights
//     in [MinWeight, MaxWeight].
//   - path:      chain of Vertices vertices with integer weights.
type Generator struct {
	Kind        string  `yaml:"kind"`
	Vertices    int     `yaml:"vertices"`
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	Radius      float64 `yaml:"radius"`
	Probability float64 `yaml:"probability"`
	Detour      float64 `yaml:"detour"`
	Extent      float64 `yaml:"extent"`
	MinWeight   int     `yaml:"min_weight"`
	MaxWeight   int     `yaml:"max_weight"`
	Seed        int64   `yaml:"seed"`
}

// Validate fills in defaults (detour 1, extent builder.DefaultExtent,
// weights in [1,100]) and checks the fields the kind needs. Size checks
// beyond positivity are left to the builder constructors.
func (g *Generator) Validate() error {
	if g.Detour == 0 {
		g.Detour = 1
	}
	if g.Extent == 0 {
		g.Extent = builder.DefaultExtent
	}
	if g.MinWeight == 0 && g.MaxWeight == 0 {
		g.MinWeight, g.MaxWeight = 1, 100
	}
	if !(g.Detour >= 1) || !(g.Extent > 0) {
		return fmt.Errorf("%w: generator detour must be ≥ 1 and extent > 0", ErrInvalidPlan)
	}
	if g.MinWeight < 0 || g.MaxWeight < g.MinWeight {
		return fmt.Errorf("%w: generator weights [%d,%d]", ErrInvalidPlan, g.MinWeight, g.MaxWeight)
	}

	switch g.Kind {
	case KindGeometric:
		if g.Vertices < 1 || !(g.Radius > 0) {
			return fmt.Errorf("%w: geometric generator needs vertices ≥ 1 and radius > 0", ErrInvalidPlan)
		}
	case KindGrid:
		if g.Rows < 1 || g.Cols < 1 {
			return fmt.Errorf("%w: grid generator needs rows, cols ≥ 1", ErrInvalidPlan)
		}
	case KindRandom:
		if g.Vertices < 1 || g.Probability < 0 || g.Probability > 1 {
			return fmt.Errorf("%w: random generator needs vertices ≥ 1 and probability in [0,1]", ErrInvalidPlan)
		}
	case KindPath:
		if g.Vertices < 2 {
			return fmt.Errorf("%w: path generator needs vertices ≥ 2", ErrInvalidPlan)
		}
	default:
		return fmt.Errorf("%w: unknown generator kind %q", ErrInvalidPlan, g.Kind)
	}

	return nil
}

// Input runs the generator.
func (g *Generator) Input() (graph.Input, error) {
	if err := g.Validate(); err != nil {
		return graph.Input{}, err
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(g.Seed),
		builder.WithDetour(g.Detour),
		builder.WithExtent(g.Extent),
		builder.WithIntegerWeight(g.MinWeight, g.MaxWeight),
	}

	var cons []builder.Constructor
	switch g.Kind {
	case KindGeometric:
		cons = []builder.Constructor{builder.Geometric(g.Vertices, g.Radius)}
	case KindGrid:
		cons = []builder.Constructor{builder.Grid(g.Rows, g.Cols)}
	case KindRandom:
		cons = []builder.Constructor{builder.RandomTree(g.Vertices), builder.RandomSparse(g.Vertices, g.Probability)}
	case KindPath:
		cons = []builder.Constructor{builder.Path(g.Vertices)}
	}

	return builder.BuildInput(bopts, cons...)
}
