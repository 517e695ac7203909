// Package bfs provides a purely functional, lazily evaluated breadth-first
// level generator over any expand.Expander, yielding one (depth, frontier)
// pair per level of the traversal.
//
// What
//
//   - Walk(x, seed) returns a lazy sequence of (depth, frontier) pairs:
//     depth 0 carries the seed frontier, depth k+1 carries, in order, the
//     children discovered by expanding every depth-k node.
//   - The generator depends only on the expand.Expander capability, never
//     on a concrete structure: the same code enumerates graph levels
//     (expand.FromGraph), tree levels (expand.FromTree), or levels of any
//     custom provider (expand.Func).
//   - State is threaded, not mutated: each expansion returns a successor
//     Expander, and Walk folds that successor across the frontier. No call
//     leaves a side effect anywhere else.
//   - Collect drains a sequence into []Level for callers that want the
//     whole layering at once.
//
// Why
//
//   - Enumerate reachable nodes grouped by unweighted distance from a seed.
//   - Demonstrate that BFS is expressible as a pure unfolding: (provider,
//     frontier) → (provider', next frontier), with "mark visited" carried
//     functionally by the provider instead of a shared set.
//
// Laziness
//
//	Walk returns an iter.Seq2; nothing beyond the requested pair is ever
//	computed. Suspension is exactly "before producing the next pair", so
//	the consumer paces the traversal and stops it by breaking out of the
//	range. Because providers are immutable values, the returned sequence
//	may be ranged over more than once and replays identically.
//
// Determinism
//
//	Children are appended to the next frontier in frontier-traversal order,
//	and within one parent's contribution in the order the provider returned
//	them, so the emitted layering is fully reproducible.
//
// Complexity (n = nodes expanded, c = children discovered)
//
//   - Time:   O(n + c) provider queries and appends, plus the provider's
//     own per-query cost (the graph provider copies its visited set on
//     write, quadratic at worst — value semantics over raw speed here)
//   - Memory: O(max frontier) live per suspension
//
// Usage
//
//	g := core.Graph[int]{1: {2, 3, 4}, 2: {5, 6}, 3: {7, 8}, 4: {9, 10}}
//	seq, err := bfs.Walk(expand.FromGraph(g), []int{1})
//	if err != nil {
//	    // ErrExpanderNil or ErrOptionViolation
//	}
//	for depth, frontier := range seq {
//	    fmt.Println(depth, frontier)
//	}
//	// 0 [1]
//	// 1 [2 3 4]
//	// 2 [5 6 7 8 9 10]
//
// Options
//
//   - DefaultOptions(): no depth limit, no filtering, no-op hook.
//   - WithMaxDepth(d):     emit levels 0..d only (d > 0); d == 0 is an
//     explicit "no limit".
//   - WithOnLevel(fn):     hook invoked for each emitted (depth, frontier).
//   - WithFilterChild(fn): drop individual parent→child discoveries from
//     the next frontier when fn returns false.
//
// Errors
//
//   - ErrExpanderNil      if a nil Expander is passed.
//   - ErrOptionViolation  if an invalid Option (e.g. negative MaxDepth)
//     is supplied.
//
// Termination is the provider's contract, not Walk's: the sequence ends at
// the first frontier whose expansion yields no children, which every finite
// tree and every visited-tracking graph provider guarantees.
package bfs
