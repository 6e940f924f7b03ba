package graphio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/pathbench/graph"
)

// lineWriter appends formatted numbers to a bufio.Writer; the first write
// error sticks and is reported by flush.
type lineWriter struct {
	w   *bufio.Writer
	buf []byte
}

func newLineWriter(w io.Writer) *lineWriter {
	return &lineWriter{w: bufio.NewWriter(w)}
}

func (l *lineWriter) ints(vs ...int) {
	l.buf = l.buf[:0]
	for i, v := range vs {
		if i > 0 {
			l.buf = append(l.buf, ' ')
		}
		l.buf = strconv.AppendInt(l.buf, int64(v), 10)
	}
	l.buf = append(l.buf, '\n')
	_, _ = l.w.Write(l.buf)
}

func (l *lineWriter) line(prefix []int, fs ...float64) {
	l.buf = l.buf[:0]
	for _, v := range prefix {
		l.buf = strconv.AppendInt(l.buf, int64(v), 10)
		l.buf = append(l.buf, ' ')
	}
	for i, f := range fs {
		if i > 0 {
			l.buf = append(l.buf, ' ')
		}
		l.buf = strconv.AppendFloat(l.buf, f, 'g', -1, 64)
	}
	l.buf = append(l.buf, '\n')
	_, _ = l.w.Write(l.buf)
}

func (l *lineWriter) flush(what string) error {
	return errors.Wrapf(l.w.Flush(), "graphio: write %s", what)
}

// WriteGraph writes in the graph file format. Coordinates, when present, are
// written inline after the header; read them back with WithInlineCoordinates.
// Weights are printed in shortest round-trip form.
func WriteGraph(w io.Writer, in graph.Input) error {
	lw := newLineWriter(w)
	lw.ints(in.VertexCount, len(in.Edges))
	for _, p := range in.Coordinates {
		lw.line(nil, p.X, p.Y)
	}
	for _, e := range in.Edges {
		lw.line([]int{e.U, e.V}, e.W)
	}

	return lw.flush("graph")
}

// WriteCoordinates writes one "id x y" record per point.
func WriteCoordinates(w io.Writer, pts []graph.Point) error {
	lw := newLineWriter(w)
	for id, p := range pts {
		lw.line([]int{id}, p.X, p.Y)
	}

	return lw.flush("coordinates")
}

// WritePath writes one vertex per line.
func WritePath(w io.Writer, path []int) error {
	lw := newLineWriter(w)
	for _, v := range path {
		lw.ints(v)
	}

	return lw.flush("path")
}

// WritePathEdges writes each consecutive pair of path as "u v".
func WritePathEdges(w io.Writer, path []int) error {
	lw := newLineWriter(w)
	for i := 1; i < len(path); i++ {
		lw.ints(path[i-1], path[i])
	}

	return lw.flush("path edges")
}
