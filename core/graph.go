// This file declares Graph, the adjacency-mapping collaborator consumed by
// expand.FromGraph. A Graph is read-only for the lifetime of a traversal.
package core

// Graph is an immutable mapping from a node to the ordered sequence of its
// direct children. Nodes that appear only as children need no entry of
// their own; looking them up yields no children, never an error.
type Graph[T comparable] map[T][]T

// Children returns the mapped children of n in insertion order,
// or nil when n has no entry. The returned slice is shared with the
// mapping and must not be written to.
func (g Graph[T]) Children(n T) []T {
	return g[n]
}

// Has reports whether n has an adjacency entry.
func (g Graph[T]) Has(n T) bool {
	_, ok := g[n]

	return ok
}

// Order returns the number of mapped nodes.
func (g Graph[T]) Order() int {
	return len(g)
}

// Clone returns a deep copy of the mapping, for callers that want to keep
// mutating a graph while a previously started traversal is still being
// consumed.
func (g Graph[T]) Clone() Graph[T] {
	out := make(Graph[T], len(g))
	for n, kids := range g {
		cp := make([]T, len(kids))
		copy(cp, kids)
		out[n] = cp
	}

	return out
}
