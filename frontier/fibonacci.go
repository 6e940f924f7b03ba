package frontier

import "math/bits"

// fibNode is one heap-ordered tree node. Siblings form a circular
// doubly-linked list through left/right.
type fibNode struct {
	key    float64
	v      int
	degree int
	mark   bool // lost a child since it last became a child itself

	parent, child, left, right *fibNode
}

// Fibonacci is a Fibonacci heap keyed by vertex.
//
// Complexity (amortized): Insert O(1), Decrease O(1), PopMin O(log V).
type Fibonacci struct {
	min   *fibNode   // root with the smallest key; nil when empty
	n     int        // live entries
	nodes []*fibNode // vertex → live node, nil when absent
}

// NewFibonacci returns an empty heap with its vertex index sized for n.
func NewFibonacci(n int) *Fibonacci {
	if n < 0 {
		n = 0
	}

	return &Fibonacci{nodes: make([]*fibNode, n)}
}

// Insert adds v as a new singleton root. If v is already live this is
// Decrease(v, key).
func (h *Fibonacci) Insert(key float64, v int) {
	for len(h.nodes) <= v {
		h.nodes = append(h.nodes, nil)
	}
	if h.nodes[v] != nil {
		h.Decrease(v, key)
		return
	}
	x := &fibNode{key: key, v: v}
	x.left, x.right = x, x
	h.nodes[v] = x
	h.addRoot(x)
	h.n++
}

// PopMin removes the minimum root, promotes its children to roots and
// consolidates the root list so no two roots share a degree.
func (h *Fibonacci) PopMin() (float64, int, error) {
	z := h.min
	if z == nil {
		return 0, -1, ErrEmpty
	}

	// Promote children. Their keys are ≥ z.key, so min stays on z.
	if z.child != nil {
		for _, c := range siblings(z.child) {
			c.parent = nil
			c.left, c.right = c, c
			h.addRoot(c)
		}
		z.child = nil
	}

	if z.right == z {
		h.min = nil
	} else {
		next := z.right
		unlink(z)
		h.min = next
		h.consolidate()
	}

	h.n--
	h.nodes[z.v] = nil

	return z.key, z.v, nil
}

// Decrease lowers v's key; if heap order with the parent breaks, v is cut
// to the root list and its ancestors are cascading-cut.
func (h *Fibonacci) Decrease(v int, key float64) bool {
	if !h.Contains(v) {
		return false
	}
	x := h.nodes[v]
	if key >= x.key {
		return false
	}
	x.key = key
	if y := x.parent; y != nil && x.key < y.key {
		h.cut(x, y)
		h.cascadingCut(y)
	}
	if x.key < h.min.key {
		h.min = x
	}

	return true
}

// Contains reports whether v has a live entry.
func (h *Fibonacci) Contains(v int) bool {
	return v >= 0 && v < len(h.nodes) && h.nodes[v] != nil
}

// IsEmpty reports whether the heap has no entries.
func (h *Fibonacci) IsEmpty() bool { return h.min == nil }

// Len returns the number of live entries.
func (h *Fibonacci) Len() int { return h.n }

// addRoot splices an isolated node into the root list and updates min.
func (h *Fibonacci) addRoot(x *fibNode) {
	if h.min == nil {
		x.left, x.right = x, x
		h.min = x
		return
	}
	x.left = h.min
	x.right = h.min.right
	h.min.right.left = x
	h.min.right = x
	if x.key < h.min.key {
		h.min = x
	}
}

// consolidate links roots of equal degree until all degrees are distinct,
// then rebuilds the root list and min.
func (h *Fibonacci) consolidate() {
	// Max degree is bounded by log_φ(n) < 1.45·log2(n).
	byDegree := make([]*fibNode, 2*bits.Len(uint(h.n))+2)

	for _, w := range siblings(h.min) {
		w.left, w.right = w, w
		x := w
		d := x.degree
		for {
			for d >= len(byDegree) {
				byDegree = append(byDegree, nil)
			}
			y := byDegree[d]
			if y == nil {
				break
			}
			if y.key < x.key {
				x, y = y, x
			}
			link(y, x)
			byDegree[d] = nil
			d++
		}
		byDegree[d] = x
	}

	h.min = nil
	for _, x := range byDegree {
		if x != nil {
			x.left, x.right = x, x
			h.addRoot(x)
		}
	}
}

// cut moves x from y's child list to the root list.
func (h *Fibonacci) cut(x, y *fibNode) {
	if x.right == x {
		y.child = nil
	} else {
		if y.child == x {
			y.child = x.right
		}
		unlink(x)
	}
	y.degree--
	x.parent = nil
	x.mark = false
	x.left, x.right = x, x
	h.addRoot(x)
}

// cascadingCut marks y, or cuts it too if it was already marked.
func (h *Fibonacci) cascadingCut(y *fibNode) {
	for {
		z := y.parent
		if z == nil {
			return
		}
		if !y.mark {
			y.mark = true
			return
		}
		h.cut(y, z)
		y = z
	}
}

// link makes the isolated root y a child of x.
func link(y, x *fibNode) {
	y.parent = x
	y.mark = false
	if x.child == nil {
		y.left, y.right = y, y
		x.child = y
	} else {
		y.left = x.child
		y.right = x.child.right
		x.child.right.left = y
		x.child.right = y
	}
	x.degree++
}

// unlink removes x from its sibling list and isolates it.
func unlink(x *fibNode) {
	x.left.right = x.right
	x.right.left = x.left
	x.left, x.right = x, x
}

// siblings snapshots the circular list starting at start.
func siblings(start *fibNode) []*fibNode {
	out := make([]*fibNode, 0, 4)
	x := start
	for {
		out = append(out, x)
		x = x.right
		if x == start {
			return out
		}
	}
}
