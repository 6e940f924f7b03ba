package frontier

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned by PopMin when no entries remain.
var ErrEmpty = errors.New("frontier: empty")

// ErrUnknownKind is returned by ParseKind for an unrecognized strategy name.
var ErrUnknownKind = errors.New("frontier: unknown kind")

// Frontier is the common contract of all priority-queue strategies.
type Frontier interface {
	// Insert adds vertex v with priority key.
	Insert(key float64, v int)

	// PopMin removes and returns the entry with the smallest key.
	// It returns ErrEmpty when the frontier has no entries.
	PopMin() (key float64, v int, err error)

	// IsEmpty reports whether no entries remain.
	IsEmpty() bool

	// Len returns the number of stored entries (stale ones included for Lazy).
	Len() int
}

// Decreaser is implemented by strategies that keep one live entry per vertex.
type Decreaser interface {
	Frontier

	// Decrease lowers the key of a live vertex. It is a no-op returning false
	// when v is absent or key is not strictly smaller than the current key.
	Decrease(v int, key float64) bool

	// Contains reports whether v currently has a live entry.
	Contains(v int) bool
}

// Kind selects a Frontier strategy.
type Kind int

const (
	// KindLazy re-inserts on every improvement and leaves stale entries behind.
	KindLazy Kind = iota

	// KindBinaryHeap is an array-indexed binary heap with O(log V) decrease-key.
	KindBinaryHeap

	// KindFibonacci is a Fibonacci heap with amortized O(1) decrease-key.
	KindFibonacci
)

// Kinds lists every strategy, in declaration order.
var Kinds = []Kind{KindLazy, KindBinaryHeap, KindFibonacci}

var kindNames = map[Kind]string{
	KindLazy:       "lazy",
	KindBinaryHeap: "binary",
	KindFibonacci:  "fibonacci",
}

// String returns the canonical name used by the CLI and benchmark plans.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k names a strategy.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a name (case-insensitive) to a Kind.
// Accepted aliases: "deckey"/"decrease-key" for binary, "fib" for fibonacci.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lazy", "":
		return KindLazy, nil
	case "binary", "deckey", "decrease-key":
		return KindBinaryHeap, nil
	case "fibonacci", "fib":
		return KindFibonacci, nil
	}

	return KindLazy, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New returns an empty frontier of the given kind sized for n vertices.
// n is a capacity hint; vertices ≥ n are still accepted.
// Unknown kinds fall back to Lazy; dijkstra.Run rejects them before calling New.
func New(kind Kind, n int) Frontier {
	switch kind {
	case KindBinaryHeap:
		return NewBinaryHeap(n)
	case KindFibonacci:
		return NewFibonacci(n)
	default:
		return NewLazy(n)
	}
}

// entry is a (key, vertex) pair stored by the array-backed heaps.
type entry struct {
	key float64
	v   int
}
