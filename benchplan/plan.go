// Package benchplan loads benchmark plans: which graph to use, which queries
// to ask and which algorithm configurations to compare.
//
// A plan is a YAML document:
//
//	name: city
//	graph:
//	  path: map_data/graph.txt
//	  coordinates: map_data/nodes.txt
//	repeat: 3
//	queries:
//	  - {source: 0, target: 9999}
//	random_queries: 20
//	runs:
//	  - {name: dijkstra, heuristic: none, frontier: lazy}
//	  - {name: alt16, heuristic: landmark, landmarks: 16, frontier: fibonacci}
//	  - {name: wastar, heuristic: euclidean, weight: 1.5}
//
// Instead of a file the graph may be generated:
//
//	graph:
//	  generate: {kind: geometric, vertices: 5000, radius: 30, seed: 7, detour: 1.2}
//
// With neither explicit nor random queries, a plan asks the single query
// 0 → n−1.
package benchplan

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathbench/frontier"
	"github.com/katalvlaran/pathbench/search"
)

// ErrInvalidPlan indicates a plan that fails validation.
var ErrInvalidPlan = errors.New("benchplan: invalid plan")

// Plan is one benchmark session.
type Plan struct {
	Name          string    `yaml:"name"`
	Graph         GraphSpec `yaml:"graph"`
	Repeat        int       `yaml:"repeat"`
	Parallelism   int       `yaml:"parallelism"`
	Seed          int64     `yaml:"seed"`
	Queries       []Query   `yaml:"queries"`
	RandomQueries int       `yaml:"random_queries"`
	Runs          []Run     `yaml:"runs"`
	TraceDir      string    `yaml:"trace_dir"`
	SampleEvery   int       `yaml:"sample_every"`
}

// GraphSpec names a graph file or a generator; exactly one must be set.
type GraphSpec struct {
	Path              string     `yaml:"path"`
	Coordinates       string     `yaml:"coordinates"`
	InlineCoordinates bool       `yaml:"inline_coordinates"`
	Generate          *Generator `yaml:"generate"`
}

// Query is one source/target pair.
type Query struct {
	Source int `yaml:"source"`
	Target int `yaml:"target"`
}

// Run is one algorithm configuration.
type Run struct {
	Name      string  `yaml:"name"`
	Heuristic string  `yaml:"heuristic"`
	Frontier  string  `yaml:"frontier"`
	Weight    float64 `yaml:"weight"`
	Landmarks int     `yaml:"landmarks"`
}

// Load reads and validates the plan at path.
func Load(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and validates a plan. Unknown keys are rejected.
func Parse(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p Plan
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Validate checks the plan and fills in defaults: repeat 1, weight 1,
// search.DefaultLandmarks landmarks, and run names derived from their settings.
func (p *Plan) Validate() error {
	if (p.Graph.Path == "") == (p.Graph.Generate == nil) {
		return fmt.Errorf("%w: graph needs exactly one of path or generate", ErrInvalidPlan)
	}
	if p.Graph.Generate != nil {
		if err := p.Graph.Generate.Validate(); err != nil {
			return err
		}
	}
	if p.Repeat == 0 {
		p.Repeat = 1
	}
	if p.Repeat < 0 || p.Parallelism < 0 || p.RandomQueries < 0 || p.SampleEvery < 0 {
		return fmt.Errorf("%w: repeat, parallelism, random_queries and sample_every must not be negative", ErrInvalidPlan)
	}
	if len(p.Runs) == 0 {
		return fmt.Errorf("%w: no runs", ErrInvalidPlan)
	}

	names := make(map[string]bool, len(p.Runs))
	for i := range p.Runs {
		run := &p.Runs[i]
		if run.Weight == 0 {
			run.Weight = 1
		}
		if run.Landmarks == 0 {
			run.Landmarks = search.DefaultLandmarks
		}
		if _, err := run.SearchOptions(); err != nil {
			return fmt.Errorf("%w: run #%d: %v", ErrInvalidPlan, i, err)
		}
		if run.Name == "" {
			h, _ := search.ParseHeuristic(run.Heuristic)
			kind, _ := frontier.ParseKind(run.Frontier)
			run.Name = fmt.Sprintf("%s-%s", h, kind)
		}
		if names[run.Name] {
			return fmt.Errorf("%w: duplicate run name %q", ErrInvalidPlan, run.Name)
		}
		names[run.Name] = true
	}

	return nil
}

// SearchOptions translates the run into engine options.
func (r Run) SearchOptions() ([]search.Option, error) {
	h, err := search.ParseHeuristic(r.Heuristic)
	if err != nil {
		return nil, err
	}
	kind, err := frontier.ParseKind(r.Frontier)
	if err != nil {
		return nil, err
	}
	if !(r.Weight >= 1) {
		return nil, fmt.Errorf("weight %g < 1", r.Weight)
	}
	if r.Landmarks < 0 {
		return nil, fmt.Errorf("landmarks %d < 0", r.Landmarks)
	}

	opts := []search.Option{
		search.WithHeuristic(h),
		search.WithFrontier(kind),
		search.WithWeight(r.Weight),
	}
	if r.Landmarks > 0 {
		opts = append(opts, search.WithLandmarks(r.Landmarks))
	}

	return opts, nil
}

// Pairs returns the queries for a graph with n vertices: the explicit ones,
// then RandomQueries pairs drawn with Seed. With neither, the single pair
// 0 → n−1.
func (p *Plan) Pairs(n int) ([]search.Pair, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: graph has no vertices", ErrInvalidPlan)
	}
	pairs := make([]search.Pair, 0, len(p.Queries)+p.RandomQueries)
	for i, q := range p.Queries {
		if q.Source < 0 || q.Source >= n || q.Target < 0 || q.Target >= n {
			return nil, fmt.Errorf("%w: query #%d (%d→%d) outside [0,%d)", ErrInvalidPlan, i, q.Source, q.Target, n)
		}
		pairs = append(pairs, search.Pair{Source: q.Source, Target: q.Target})
	}
	if p.RandomQueries > 0 {
		rng := rand.New(rand.NewSource(p.Seed))
		for i := 0; i < p.RandomQueries; i++ {
			pairs = append(pairs, search.Pair{Source: rng.Intn(n), Target: rng.Intn(n)})
		}
	}
	if len(pairs) == 0 {
		pairs = append(pairs, search.Pair{Source: 0, Target: n - 1})
	}

	return pairs, nil
}
