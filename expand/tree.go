package expand

import "github.com/katalvlaran/levelwalk/core"

// treeExpander expands by position, not by node identity: rows holds one
// precomputed children list per tree node, in breadth order of the nodes,
// and every Expand call consumes exactly one row whatever argument it gets.
// Advancing slices the shared backing array; prior instances keep their view.
type treeExpander[T comparable] struct {
	rows [][]T
}

// FromTree returns an Expander over t.
//
// Construction walks the tree breadth-first once and records, for every node
// in breadth order, the list of that node's child values — leaves contribute
// an empty row. Because bfs.Walk queries each frontier element exactly once
// in frontier order, the N-th query lines up with the N-th node for any
// finite tree, and the frontier at depth k comes out as exactly the tree's
// depth-k nodes in left-to-right order. The walk must be breadth-order: a
// preorder walk would interleave rows of deeper nodes ahead of their depth.
//
// Time Complexity: O(n) construction, O(1) per query (amortized).
func FromTree[T comparable](t core.Tree[T]) Expander[T] {
	var rows [][]T
	queue := []core.Tree[T]{t}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		row := make([]T, len(node.Kids))
		for i, kid := range node.Kids {
			row[i] = kid.Value
		}
		rows = append(rows, row)
		queue = append(queue, node.Kids...)
	}

	return treeExpander[T]{rows: rows}
}

// Expand implements Expander. The node argument is ignored; see the
// call-order caveat in the package documentation.
func (x treeExpander[T]) Expand(_ T) ([]T, Expander[T]) {
	if len(x.rows) == 0 {
		return nil, x
	}

	return x.rows[0], treeExpander[T]{rows: x.rows[1:]}
}
