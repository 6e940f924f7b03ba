package trace

import (
	"bufio"
	"io"
	"strconv"
	"time"
)

// DefaultSampleEvery is the settle interval between Progress rows.
const DefaultSampleEvery = 1000

// Progress samples the search's progress curve: one "elapsed_ms,settled" row
// every Every settled vertices.
type Progress struct {
	w     *bufio.Writer
	every int
	buf   []byte
}

// NewProgress returns a Progress writing to w every `every` settled vertices.
// every ≤ 0 selects DefaultSampleEvery.
func NewProgress(w io.Writer, every int) *Progress {
	if every <= 0 {
		every = DefaultSampleEvery
	}

	return &Progress{w: bufio.NewWriter(w), every: every}
}

// Settled writes a row when settled is a multiple of the sampling interval.
func (p *Progress) Settled(_ int, settled int, elapsed time.Duration) {
	if settled%p.every != 0 {
		return
	}
	p.buf = strconv.AppendInt(p.buf[:0], elapsed.Milliseconds(), 10)
	p.buf = append(p.buf, ',')
	p.buf = strconv.AppendInt(p.buf, int64(settled), 10)
	p.buf = append(p.buf, '\n')
	_, _ = p.w.Write(p.buf) // bufio keeps the first error for Flush
}

// Examined is ignored.
func (p *Progress) Examined(int, int, bool) {}

// Flush flushes buffered rows and reports any earlier write error.
func (p *Progress) Flush() error { return p.w.Flush() }

// EdgeLog writes every distinct examined edge as "u v", once, in first-seen order.
type EdgeLog struct {
	w    *bufio.Writer
	seen map[[2]int]struct{}
	buf  []byte
}

// NewEdgeLog returns an EdgeLog writing to w.
func NewEdgeLog(w io.Writer) *EdgeLog {
	return &EdgeLog{w: bufio.NewWriter(w), seen: make(map[[2]int]struct{})}
}

// Settled is ignored.
func (l *EdgeLog) Settled(int, int, time.Duration) {}

// Examined writes u v unless that ordered pair was already written.
func (l *EdgeLog) Examined(u, v int, _ bool) {
	key := [2]int{u, v}
	if _, dup := l.seen[key]; dup {
		return
	}
	l.seen[key] = struct{}{}
	l.buf = strconv.AppendInt(l.buf[:0], int64(u), 10)
	l.buf = append(l.buf, ' ')
	l.buf = strconv.AppendInt(l.buf, int64(v), 10)
	l.buf = append(l.buf, '\n')
	_, _ = l.w.Write(l.buf)
}

// Flush flushes buffered lines.
func (l *EdgeLog) Flush() error { return l.w.Flush() }

// Recorder keeps events in memory, for tests and in-process visualization.
type Recorder struct {
	Order    []int    // vertices in settle order
	Edges    [][2]int // every examined edge, duplicates included
	Improved int      // examined edges that shortened a distance
	Flushes  int      // number of Flush calls
}

// Settled appends v to Order.
func (r *Recorder) Settled(v int, _ int, _ time.Duration) { r.Order = append(r.Order, v) }

// Examined appends the edge.
func (r *Recorder) Examined(u, v int, improved bool) {
	r.Edges = append(r.Edges, [2]int{u, v})
	if improved {
		r.Improved++
	}
}

// Flush counts the call.
func (r *Recorder) Flush() error {
	r.Flushes++
	return nil
}
