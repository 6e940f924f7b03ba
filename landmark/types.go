package landmark

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/pathbench/frontier"
)

// Sentinel errors returned by the landmark package.
var (
	// ErrInvalidLandmarkCount indicates k < 1 or k > n.
	ErrInvalidLandmarkCount = errors.New("landmark: landmark count out of range")

	// ErrDuplicateLandmark indicates a landmark set that names a vertex twice.
	ErrDuplicateLandmark = errors.New("landmark: duplicate landmark")

	// ErrDistanceOverflow indicates a finite distance too large for float32 storage.
	ErrDistanceOverflow = errors.New("landmark: distance exceeds float32 range")

	// ErrBadCacheSize indicates a non-positive evaluator cache size.
	ErrBadCacheSize = errors.New("landmark: cache size must be positive")
)

// Options configures Select, BuildTable and Preprocess.
type Options struct {
	Start       int           // vertex the farthest-point iteration starts from
	Parallelism int           // concurrent searches in BuildTable
	Frontier    frontier.Kind // priority-queue strategy of the preprocessing searches
}

// Option represents a functional option.
type Option func(*Options)

// WithStart sets the start vertex of the farthest-point iteration.
// Select reports an out-of-range start as graph.ErrInvalidVertex.
func WithStart(v int) Option {
	return func(o *Options) {
		o.Start = v
	}
}

// WithParallelism bounds the number of concurrent searches in BuildTable.
// Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("landmark: WithParallelism(n<1)")
	}
	return func(o *Options) {
		o.Parallelism = n
	}
}

// WithFrontier selects the frontier used by preprocessing searches.
func WithFrontier(kind frontier.Kind) Option {
	return func(o *Options) {
		o.Frontier = kind
	}
}

// DefaultOptions returns the defaults: start vertex 0, GOMAXPROCS parallel
// searches, lazy frontier.
func DefaultOptions() Options {
	return Options{
		Start:       0,
		Parallelism: runtime.GOMAXPROCS(0),
		Frontier:    frontier.KindLazy,
	}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
