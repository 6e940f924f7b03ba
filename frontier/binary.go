package frontier

// BinaryHeap is an array-indexed min-heap holding at most one entry per vertex.
// pos[v] is the slot of v in items, or -1 when v is not live.
type BinaryHeap struct {
	items []entry
	pos   []int
}

// NewBinaryHeap returns an empty heap with its index sized for n vertices.
func NewBinaryHeap(n int) *BinaryHeap {
	if n < 0 {
		n = 0
	}
	h := &BinaryHeap{
		items: make([]entry, 0, n),
		pos:   make([]int, n),
	}
	for i := range h.pos {
		h.pos[i] = -1
	}

	return h
}

// Insert adds v with key. If v is already live this is Decrease(v, key).
// O(log V).
func (h *BinaryHeap) Insert(key float64, v int) {
	h.grow(v)
	if h.pos[v] != -1 {
		h.Decrease(v, key)
		return
	}
	h.items = append(h.items, entry{key: key, v: v})
	i := len(h.items) - 1
	h.pos[v] = i
	h.siftUp(i)
}

// PopMin removes the root and restores the heap property. O(log V).
func (h *BinaryHeap) PopMin() (float64, int, error) {
	n := len(h.items)
	if n == 0 {
		return 0, -1, ErrEmpty
	}
	top := h.items[0]
	last := h.items[n-1]
	h.items = h.items[:n-1]
	if n > 1 {
		h.items[0] = last
		h.pos[last.v] = 0
		h.siftDown(0)
	}
	h.pos[top.v] = -1

	return top.key, top.v, nil
}

// Decrease lowers v's key and sifts it up. No-op if v is not live or
// key ≥ current key. O(log V).
func (h *BinaryHeap) Decrease(v int, key float64) bool {
	if !h.Contains(v) {
		return false
	}
	i := h.pos[v]
	if key >= h.items[i].key {
		return false
	}
	h.items[i].key = key
	h.siftUp(i)

	return true
}

// Contains reports whether v has a live entry.
func (h *BinaryHeap) Contains(v int) bool {
	return v >= 0 && v < len(h.pos) && h.pos[v] != -1
}

// IsEmpty reports whether the heap has no entries.
func (h *BinaryHeap) IsEmpty() bool { return len(h.items) == 0 }

// Len returns the number of live entries.
func (h *BinaryHeap) Len() int { return len(h.items) }

// grow extends the position index so that v is addressable.
func (h *BinaryHeap) grow(v int) {
	for len(h.pos) <= v {
		h.pos = append(h.pos, -1)
	}
}

func (h *BinaryHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].v] = i
	h.pos[h.items[j].v] = j
}

func (h *BinaryHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[i].key >= h.items[parent].key {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *BinaryHeap) siftDown(i int) {
	n := len(h.items)
	for {
		l, r, m := 2*i+1, 2*i+2, i
		if l < n && h.items[l].key < h.items[m].key {
			m = l
		}
		if r < n && h.items[r].key < h.items[m].key {
			m = r
		}
		if m == i {
			return
		}
		h.swap(i, m)
		i = m
	}
}
