package graphio

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/pathbench/graph"
)

// preallocLimit caps slices sized from header counts before any record is read.
const preallocLimit = 1 << 16

// Options configures ReadGraph.
type Options struct {
	// InlineCoordinates expects n "x y" pairs between the header and the edges.
	InlineCoordinates bool
}

// Option represents a functional option for configuring ReadGraph.
type Option func(*Options)

// WithInlineCoordinates enables the coordinate block after the header.
func WithInlineCoordinates() Option {
	return func(o *Options) {
		o.InlineCoordinates = true
	}
}

// DefaultOptions returns the plain "n m" + edges format.
func DefaultOptions() Options {
	return Options{}
}

// tokens reads whitespace-separated fields and counts them for error messages.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

func (t *tokens) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", errors.Wrapf(err, "graphio: reading %s", what)
		}
		return "", errors.Wrapf(graph.ErrMalformedInput, "graphio: unexpected end of input, want %s (token %d)", what, t.pos+1)
	}
	t.pos++

	return t.sc.Text(), nil
}

func (t *tokens) int(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(graph.ErrMalformedInput, "graphio: token %d: %s %q is not an integer", t.pos, what, s)
	}

	return v, nil
}

func (t *tokens) float(what string) (float64, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(graph.ErrMalformedInput, "graphio: token %d: %s %q is not a number", t.pos, what, s)
	}

	return v, nil
}

// ReadGraph parses a graph file into a graph.Input.
func ReadGraph(r io.Reader, opts ...Option) (graph.Input, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := newTokens(r)
	n, err := t.int("vertex count")
	if err != nil {
		return graph.Input{}, err
	}
	m, err := t.int("edge count")
	if err != nil {
		return graph.Input{}, err
	}
	if n < 0 || m < 0 {
		return graph.Input{}, errors.Wrapf(graph.ErrMalformedInput, "graphio: header %d %d", n, m)
	}

	in := graph.Input{VertexCount: n, EdgeCount: m}
	if cfg.InlineCoordinates {
		in.Coordinates = make([]graph.Point, 0, min(n, preallocLimit))
		for i := 0; i < n; i++ {
			var p graph.Point
			if p.X, err = t.float("x"); err != nil {
				return graph.Input{}, err
			}
			if p.Y, err = t.float("y"); err != nil {
				return graph.Input{}, err
			}
			in.Coordinates = append(in.Coordinates, p)
		}
	}

	// The header is not trusted for allocation; a count the data does not
	// back ends in ErrMalformedInput at end of input.
	in.Edges = make([]graph.Triple, 0, min(m, preallocLimit))
	for i := 0; i < m; i++ {
		var e graph.Triple
		if e.U, err = t.int("edge endpoint"); err != nil {
			return graph.Input{}, err
		}
		if e.V, err = t.int("edge endpoint"); err != nil {
			return graph.Input{}, err
		}
		if e.W, err = t.float("edge weight"); err != nil {
			return graph.Input{}, err
		}
		in.Edges = append(in.Edges, e)
	}

	return in, nil
}

// ReadCoordinates parses "id x y" records for n vertices. Every id in [0, n)
// must appear exactly once.
func ReadCoordinates(r io.Reader, n int) ([]graph.Point, error) {
	if n < 0 {
		return nil, errors.Wrapf(graph.ErrMalformedInput, "graphio: coordinate count %d", n)
	}
	type record struct {
		id int
		p  graph.Point
	}
	// Records are buffered so that nothing is sized by n before n records exist.
	recs := make([]record, 0, min(n, preallocLimit))
	t := newTokens(r)
	for count := 0; count < n; count++ {
		var rec record
		var err error
		if rec.id, err = t.int("vertex id"); err != nil {
			return nil, err
		}
		if rec.id < 0 || rec.id >= n {
			return nil, errors.Wrapf(graph.ErrMalformedInput, "graphio: coordinate id %d not in [0,%d)", rec.id, n)
		}
		if rec.p.X, err = t.float("x"); err != nil {
			return nil, err
		}
		if rec.p.Y, err = t.float("y"); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if _, err := t.next("end of input"); err == nil {
		return nil, errors.Wrapf(graph.ErrMalformedInput, "graphio: more than %d coordinate records", n)
	}

	pts := make([]graph.Point, n)
	seen := make([]bool, n)
	for _, rec := range recs {
		if seen[rec.id] {
			return nil, errors.Wrapf(graph.ErrMalformedInput, "graphio: duplicate coordinates for vertex %d", rec.id)
		}
		seen[rec.id] = true
		pts[rec.id] = rec.p
	}

	return pts, nil
}

// LoadGraph reads a graph file and, when coordsPath is not empty, a separate
// coordinate file, and builds the graph.
func LoadGraph(path, coordsPath string, opts ...Option) (*graph.Graph, error) {
	in, err := readFile(path, func(r io.Reader) (graph.Input, error) { return ReadGraph(r, opts...) })
	if err != nil {
		return nil, err
	}
	if coordsPath != "" {
		f, err := os.Open(coordsPath)
		if err != nil {
			return nil, errors.Wrap(err, "graphio: open coordinates")
		}
		defer f.Close()
		if in.Coordinates, err = ReadCoordinates(bufio.NewReader(f), in.VertexCount); err != nil {
			return nil, errors.WithMessagef(err, "graphio: %s", coordsPath)
		}
	}

	g, err := graph.Build(in)
	if err != nil {
		return nil, errors.WithMessagef(err, "graphio: %s", path)
	}

	return g, nil
}

func readFile(path string, read func(io.Reader) (graph.Input, error)) (graph.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return graph.Input{}, errors.Wrap(err, "graphio: open graph")
	}
	defer f.Close()
	in, err := read(bufio.NewReader(f))
	if err != nil {
		return graph.Input{}, errors.WithMessagef(err, "graphio: %s", path)
	}

	return in, nil
}
