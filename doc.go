// Package levelwalk is a small, purely functional playground for
// breadth-first traversal — one lazy generator, one capability contract,
// and zero mutation anywhere.
//
// 🚀 What is levelwalk?
//
//	A generic, dependency-free library that expresses BFS as a pure
//	unfolding of (depth, frontier) pairs:
//		• Capability: expand.Expander — children of a node, plus the
//		  provider's own successor state, as one immutable value
//		• Providers: graphs with a functionally threaded visited set,
//		  trees pre-flattened into breadth-order children rows, and
//		  expand.Func for anything custom (even infinite structures)
//		• Generator: bfs.Walk — an iter.Seq2 that computes nothing until
//		  the consumer pulls the next level
//
// ✨ Why choose levelwalk?
//
//   - No shared mutable state – every query returns a new provider value,
//     so concurrent traversals over one structure are safe by construction
//   - Lazy with a definite stop – pull one level at a time; the sequence
//     ends itself at the first empty frontier
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – one two-result method is the entire contract
//
// Everything lives in three subpackages:
//
//	core/   — immutable Graph (adjacency map) and Tree value types
//	expand/ — the Expander capability and its built-in providers
//	bfs/    — the lazy level generator, options, and Collect
//
// Quick ASCII example:
//
//	     1
//	   / | \
//	  2  3  4        bfs.Walk over seed [1] emits
//	 /|  |\  |\      (0, [1])
//	5 6  7 8 9 10    (1, [2 3 4])
//	                 (2, [5 6 7 8 9 10])
//
// Dive into the per-package docs for contracts, determinism notes, and the
// call-order caveat that makes the tree provider tick.
//
//	go get github.com/katalvlaran/levelwalk
package levelwalk
