// Package trace provides instrumentation sinks that observe a search as it
// runs: which vertex was settled when, and which edges were examined.
//
// A Sink is handed explicitly to a search (dijkstra.WithSink, or a query
// option of the search driver). The search calls Settled once per settled
// vertex and Examined once per edge it looks at from a settled vertex, then
// calls Flush on every exit path. Opening and closing the underlying storage is
// the caller's job; Scoped bundles open → run → flush → close for files.
//
// Sinks:
//
//   - Nop       discards everything (the default).
//   - Recorder  keeps settle order and examined edges in memory.
//   - Progress  writes "elapsed_ms,settled" CSV rows every N settled vertices.
//   - EdgeLog   writes each distinct examined edge "u v" once.
//   - Multi     fans out to several sinks.
//
// A Sink is used by one search at a time and need not be goroutine-safe.
package trace

import (
	"errors"
	"io"
	"os"
	"time"
)

// Sink receives search events.
type Sink interface {
	// Settled is called when v's distance becomes final. settled is the
	// running count of settled vertices (1 for the source) and elapsed the
	// search time so far.
	Settled(v int, settled int, elapsed time.Duration)

	// Examined is called for every edge u→v scanned from a settled u toward an
	// unsettled v; improved reports whether it shortened v's tentative distance.
	Examined(u, v int, improved bool)

	// Flush pushes buffered output to the underlying writer.
	Flush() error
}

// Nop is a Sink that ignores every event.
type Nop struct{}

// Settled does nothing.
func (Nop) Settled(int, int, time.Duration) {}

// Examined does nothing.
func (Nop) Examined(int, int, bool) {}

// Flush does nothing.
func (Nop) Flush() error { return nil }

// Multi forwards every event to each sink in order.
type Multi []Sink

// Settled fans out.
func (m Multi) Settled(v int, settled int, elapsed time.Duration) {
	for _, s := range m {
		s.Settled(v, settled, elapsed)
	}
}

// Examined fans out.
func (m Multi) Examined(u, v int, improved bool) {
	for _, s := range m {
		s.Examined(u, v, improved)
	}
}

// Flush flushes every sink and joins their errors.
func (m Multi) Flush() error {
	var errs []error
	for _, s := range m {
		if err := s.Flush(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Scoped creates path, builds a sink on it with mk, runs fn with that sink and
// then flushes and closes the file whatever fn returned. The first non-nil
// error among fn, Flush and Close is reported (all are joined).
func Scoped(path string, mk func(io.Writer) Sink, fn func(Sink) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	s := mk(f)
	defer func() {
		err = errors.Join(err, s.Flush(), f.Close())
	}()

	return fn(s)
}
