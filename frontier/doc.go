// Package frontier provides the priority queues that drive pathbench's
// label-correcting searches.
//
// A Frontier answers three questions for the search loop: which vertex has the
// smallest key (PopMin), add this vertex with this key (Insert), and is anything
// left (IsEmpty). Three interchangeable strategies are provided:
//
//   - Lazy (KindLazy): a plain binary heap over (key, vertex) entries. Insert
//     always appends, so a vertex may be present many times; the caller
//     discards stale pops by checking whether the vertex is already settled.
//     Simple, O(log N) per operation with N ≤ E, more memory churn.
//
//   - BinaryHeap (KindBinaryHeap): an array-indexed binary heap that keeps at
//     most one live entry per vertex and exposes Decrease in O(log V).
//
//   - Fibonacci (KindFibonacci): a Fibonacci heap with amortized O(1) Decrease
//     and O(log V) amortized PopMin. Worth it when edge relaxations dominate
//     vertex extractions; constant factors are higher.
//
// The decrease-key strategies also implement Decreaser. Inserting a vertex that
// is already live in a Decreaser behaves like Decrease.
//
// All strategies produce identical finalized distances when used by the
// dijkstra package: only running time and memory differ. Ties between equal
// keys are broken differently by each strategy; nothing may depend on that
// order.
//
// Errors:
//
//	ErrEmpty - PopMin on a frontier with no entries.
//
// Frontiers are not safe for concurrent use; each search owns its own.
package frontier
