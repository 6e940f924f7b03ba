package landmark

import "math"

// roundingSlack is the relative bound 2⁻²³ applied to the sum of two table
// entries: each float32 entry is within 2⁻²⁴ relative of its float64 source.
const roundingSlack = 1.0 / (1 << 23)

// Evaluator is the landmark heuristic toward one goal.
// It is immutable and safe for concurrent use.
type Evaluator struct {
	t      *Table
	goal   int
	toGoal []float64 // d(L_i, goal)
}

// Goal returns the goal vertex.
func (e *Evaluator) Goal() int { return e.goal }

// Estimate returns a lower bound on d(v, goal).
//
// Per landmark with a = d(L,v), b = d(L,goal):
//   - both unreachable: the landmark says nothing;
//   - exactly one unreachable: v and goal lie in different components, +Inf;
//   - otherwise |a − b| − (a + b)·2⁻²³.
//
// The result is the maximum over landmarks, clamped at 0. Out-of-range v yields 0.
func (e *Evaluator) Estimate(v int) float64 {
	n := e.t.n
	if v < 0 || v >= n {
		return 0
	}
	best := 0.0
	for i, b := range e.toGoal {
		a := float64(e.t.dist[i*n+v])
		aInf, bInf := math.IsInf(a, 1), math.IsInf(b, 1)
		switch {
		case aInf && bInf:
			continue
		case aInf || bInf:
			return math.Inf(1)
		}
		h := math.Abs(a-b) - (a+b)*roundingSlack
		if h > best {
			best = h
		}
	}

	return best
}
