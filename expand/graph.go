package expand

import "github.com/katalvlaran/levelwalk/core"

// graphExpander expands nodes through an adjacency mapping while threading
// an immutable visited set. The mapping is shared and never copied; the
// visited set is copied on write, so prior instances keep observing their
// own snapshot.
type graphExpander[T comparable] struct {
	adj     core.Graph[T]
	visited map[T]struct{}
}

// FromGraph returns an Expander over g with an empty visited set.
//
// Querying a node yields the mapped children not yet visited (none, if the
// node is unmapped) and a successor whose visited set additionally contains
// the node and every child just discovered. Marking on discovery keeps each
// node out of all later frontiers however many times it is reachable —
// back-edges, self-loops, and diamonds included — so a level generator fed
// by this Expander expands every reachable node exactly once and terminates
// on any finite graph. Once a node is visited, every subsequent query for
// it yields no children, forever; the visited set only grows.
//
// g must not be mutated while Expanders derived from it are in use; use
// core.Graph.Clone to detach.
func FromGraph[T comparable](g core.Graph[T]) Expander[T] {
	return graphExpander[T]{adj: g, visited: map[T]struct{}{}}
}

// Expand implements Expander.
func (x graphExpander[T]) Expand(node T) ([]T, Expander[T]) {
	// visited ∪ {node}, by replacement: the receiver's set stays intact.
	grown := make(map[T]struct{}, len(x.visited)+1)
	for v := range x.visited {
		grown[v] = struct{}{}
	}
	grown[node] = struct{}{}

	// Children are discovered — returned and marked — at most once each.
	// A query for an already-visited node finds nothing undiscovered and
	// yields an equivalent provider.
	mapped := x.adj.Children(node)
	kids := make([]T, 0, len(mapped))
	for _, c := range mapped {
		if _, seen := grown[c]; !seen {
			grown[c] = struct{}{}
			kids = append(kids, c)
		}
	}

	return kids, graphExpander[T]{adj: x.adj, visited: grown}
}
