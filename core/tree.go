// Package core defines the immutable Graph and Tree value types that
// levelwalk traversals expand over.
//
// Unlike lock-guarded graph containers, everything in core has plain value
// semantics: a Graph is a read-only adjacency mapping, a Tree is a recursive
// value, and neither carries any mutable traversal state. Concurrent
// traversals over the same structure are therefore safe by construction.
//
// This file declares Tree, its constructors, and its structural queries.
package core

// Tree is a node value plus an ordered sequence of child subtrees.
// A Tree is read-only for the lifetime of a traversal; the zero Tree is a
// single node holding T's zero value.
type Tree[T comparable] struct {
	// Value identifies this node. Only identity comparison is assumed.
	Value T
	// Kids holds the child subtrees in left-to-right sibling order.
	Kids []Tree[T]
}

// New builds a tree node with the given value and child subtrees,
// preserving the given sibling order.
func New[T comparable](v T, kids ...Tree[T]) Tree[T] {
	return Tree[T]{Value: v, Kids: kids}
}

// Leaf builds a childless tree node.
func Leaf[T comparable](v T) Tree[T] {
	return Tree[T]{Value: v}
}

// Size returns the total number of nodes in the tree.
// Time Complexity: O(n).
func (t Tree[T]) Size() int {
	n := 1 // this node
	for _, k := range t.Kids {
		n += k.Size()
	}

	return n
}

// Height returns the number of edges on the longest root-to-leaf path.
// A leaf has height 0. Time Complexity: O(n).
func (t Tree[T]) Height() int {
	h := 0
	for _, k := range t.Kids {
		if kh := k.Height() + 1; kh > h {
			h = kh
		}
	}

	return h
}

// Levels returns the node values of the tree grouped by depth, root first,
// each level in left-to-right sibling order.
// Time Complexity: O(n), Memory: O(n).
func (t Tree[T]) Levels() [][]T {
	var out [][]T
	frontier := []Tree[T]{t}
	for len(frontier) > 0 {
		values := make([]T, len(frontier))
		var next []Tree[T]
		for i, node := range frontier {
			values[i] = node.Value
			next = append(next, node.Kids...)
		}
		out = append(out, values)
		frontier = next
	}

	return out
}
