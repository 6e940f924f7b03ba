package frontier

import "container/heap"

// Lazy is a min-heap that never updates entries in place.
// When a shorter distance to v is found, a fresh (key, v) entry is pushed and
// the outdated one stays in the heap until popped and ignored by the caller.
type Lazy struct {
	pq entryPQ
}

// NewLazy returns an empty Lazy frontier with room for n entries.
func NewLazy(n int) *Lazy {
	if n < 0 {
		n = 0
	}

	return &Lazy{pq: make(entryPQ, 0, n)}
}

// Insert pushes (key, v). O(log N).
func (l *Lazy) Insert(key float64, v int) {
	heap.Push(&l.pq, entry{key: key, v: v})
}

// PopMin removes the smallest entry, which may be stale. O(log N).
func (l *Lazy) PopMin() (float64, int, error) {
	if len(l.pq) == 0 {
		return 0, -1, ErrEmpty
	}
	e := heap.Pop(&l.pq).(entry)

	return e.key, e.v, nil
}

// IsEmpty reports whether no entries (live or stale) remain.
func (l *Lazy) IsEmpty() bool { return len(l.pq) == 0 }

// Len returns the number of entries, stale ones included.
func (l *Lazy) Len() int { return len(l.pq) }

// entryPQ implements heap.Interface ordered by key ascending.
type entryPQ []entry

func (pq entryPQ) Len() int            { return len(pq) }
func (pq entryPQ) Less(i, j int) bool  { return pq[i].key < pq[j].key }
func (pq entryPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
