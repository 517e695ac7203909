// Package expand defines the child-provider capability that levelwalk
// traversals are parameterized by, plus its two built-in providers.
//
// What
//
//   - Expander[T] is the single extension point: given a node, it returns
//     the node's direct children and a successor Expander reflecting any
//     state change caused by the query (a grown visited set, a consumed
//     precomputed row). Strictly value semantics: querying an Expander
//     never mutates it.
//   - FromGraph builds an Expander over a core.Graph adjacency mapping,
//     threading an immutable visited set so cyclic graphs terminate.
//   - FromTree builds an Expander over a core.Tree, precomputing one
//     children row per node in breadth order; each query consumes the next
//     row and ignores which node was asked for.
//   - Func adapts a plain function into an Expander, for custom providers
//     such as infinite lazily-generated trees.
//
// Why
//
//	bfs.Walk depends only on this contract, never on a concrete structure,
//	so the same generator enumerates levels of trees, graphs, or anything
//	an implementer can phrase as "children of a node, plus my next state".
//
// Contract
//
//	Expand is total: querying a node absent from the underlying structure
//	(or an exhausted tree provider) yields an empty children sequence and
//	an equivalent successor, never an error. Equality of behavior matters,
//	not instance identity — a provider may return itself when unchanged.
//
// Call-order caveat (tree providers)
//
//	A tree Expander is stateful positionally, not by node identity: the
//	N-th query returns the N-th node's children in breadth order, whatever
//	argument is passed. It is correct exactly when driven the way bfs.Walk
//	drives it — once per frontier element, in frontier order. Graph
//	Expanders have no such coupling.
package expand
