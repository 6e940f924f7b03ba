// Package landmark implements the ALT (A*, Landmarks, Triangle inequality)
// heuristic: landmark selection, the landmark distance table and per-goal
// evaluators.
//
// Pipeline:
//
//  1. Select picks k landmarks by farthest-point iteration. The first
//     landmark is the vertex farthest (finite distance) from a fixed start
//     vertex; every next landmark maximizes the minimum distance to the
//     landmarks chosen so far. Ties go to the lowest vertex index.
//  2. BuildTable runs one single-source search per landmark and stores the
//     k×n distances as float32. Searches run concurrently.
//  3. Table.Heuristic(t) returns an Evaluator for goal t:
//
//     h(v) = max_i |d(L_i, v) − d(L_i, t)| − (d(L_i, v) + d(L_i, t))·2⁻²³
//
//     clamped at 0. The subtracted term covers the float32 rounding of both
//     table entries, so h never exceeds the float64 shortest distance.
//     Consistency is not preserved: past 2^24 the rounding of neighbouring
//     entries can exceed the edge between them (Table.RoundingError gives the
//     bound), and the search loop re-opens settled vertices in that case.
//
// Preprocess runs 1 and 2 in one pass and reuses the distance vectors
// computed during selection instead of searching from each landmark twice.
// A Table is immutable and safe for concurrent use; so is an Evaluator and
// the Cache that memoizes evaluators per goal.
//
// Complexity:
//
//   - Selection and table: k single-source searches, O(k (V + E) log V).
//   - Memory: 4·k·V bytes for the table.
//   - Heuristic(t): O(k). Estimate(v): O(k).
package landmark
