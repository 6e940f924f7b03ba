package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathbench/frontier"
)

// benchmarkChurn inserts n vertices, decreases (or re-inserts) 4n times and
// drains the frontier, mimicking a relaxation-heavy search.
func benchmarkChurn(b *testing.B, kind frontier.Kind, n int) {
	rng := rand.New(rand.NewSource(1))
	keys := make([]float64, n)
	for i := range keys {
		keys[i] = rng.Float64() * 1e6
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := frontier.New(kind, n)
		cur := make([]float64, n)
		copy(cur, keys)
		for v := 0; v < n; v++ {
			f.Insert(cur[v], v)
		}
		d, hasDecrease := f.(frontier.Decreaser)
		for j := 0; j < 4*n; j++ {
			v := j % n
			cur[v] *= 0.9
			if hasDecrease {
				d.Decrease(v, cur[v])
			} else {
				f.Insert(cur[v], v)
			}
		}
		for !f.IsEmpty() {
			_, _, _ = f.PopMin()
		}
	}
}

func BenchmarkLazy(b *testing.B)       { benchmarkChurn(b, frontier.KindLazy, 10000) }
func BenchmarkBinaryHeap(b *testing.B) { benchmarkChurn(b, frontier.KindBinaryHeap, 10000) }
func BenchmarkFibonacci(b *testing.B)  { benchmarkChurn(b, frontier.KindFibonacci, 10000) }
