// Package bfs provides the lazy breadth-first level generator over the
// expand.Expander capability.
//
// Walk emits (depth, frontier) pairs on demand, threading an immutable
// provider value forward between levels; nothing is computed until pulled.
package bfs

import (
	"iter"

	"github.com/katalvlaran/levelwalk/expand"
)

// Walk generates the breadth-first levels reachable from seed under x,
// applying any number of functional Options.
//
// The returned sequence emits (0, seed) first — an empty seed emits (0, [])
// and stops — then repeatedly folds x across the current frontier: each node
// is expanded exactly once, left to right, children accumulate in frontier
// order, and the successor Expander from one expansion feeds the next. The
// sequence ends at the first fold that discovers no children.
//
// Walk itself never fails after construction; it returns ErrExpanderNil for
// a nil Expander and ErrOptionViolation for bad options. The sequence is
// re-rangeable: every range restarts from the original provider and seed
// and replays the identical traversal.
func Walk[T comparable](x expand.Expander[T], seed []T, opts ...Option[T]) (iter.Seq2[int, []T], error) {
	if x == nil {
		return nil, ErrExpanderNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Detach from the caller's slice; the seed is fixed at construction.
	start := make([]T, len(seed))
	copy(start, seed)

	return func(yield func(int, []T) bool) {
		cur, depth, frontier := x, 0, start
		for {
			// Hand the consumer its own copy; the fold below keeps reading
			// the internal frontier.
			out := make([]T, len(frontier))
			copy(out, frontier)
			o.OnLevel(depth, out)
			if !yield(depth, out) {
				return
			}
			if o.MaxDepth > 0 && depth >= o.MaxDepth {
				return
			}
			cur, frontier = step(cur, frontier, o.FilterChild)
			if len(frontier) == 0 {
				return
			}
			depth++
		}
	}, nil
}

// step folds x across frontier left-to-right: each node is expanded once,
// the successor Expander is threaded into the next expansion, and surviving
// children accumulate in discovery order.
func step[T comparable](x expand.Expander[T], frontier []T, keep func(parent, child T) bool) (expand.Expander[T], []T) {
	var next []T
	var kids []T
	for _, parent := range frontier {
		kids, x = x.Expand(parent)
		for _, child := range kids {
			if keep(parent, child) {
				next = append(next, child)
			}
		}
	}

	return x, next
}

// Collect drains seq into a slice of Levels, in emission order.
// It forces the whole (finite) traversal; prefer ranging over seq directly
// when only a prefix is needed.
func Collect[T comparable](seq iter.Seq2[int, []T]) []Level[T] {
	var out []Level[T]
	for depth, frontier := range seq {
		out = append(out, Level[T]{Depth: depth, Nodes: frontier})
	}

	return out
}
