package expand

// Expander yields a node's direct children together with a successor
// Expander carrying any state change caused by the query.
//
// Implementations must be usable as immutable values: the receiver is never
// mutated, all state evolution happens by returning a new (or behaviorally
// identical) instance. Unknown nodes yield an empty children sequence, not
// an error.
type Expander[T comparable] interface {
	// Expand returns the ordered (possibly empty) children of node under
	// this Expander's current state, and the Expander to use for the next
	// query.
	Expand(node T) (children []T, next Expander[T])
}

// Func adapts an ordinary function to the Expander interface, in the manner
// of http.HandlerFunc. It is the hook for custom providers — memoized
// oracles, infinite lazily-generated trees — that have no backing core type.
type Func[T comparable] func(node T) ([]T, Expander[T])

// Expand calls f(node).
func (f Func[T]) Expand(node T) ([]T, Expander[T]) {
	return f(node)
}
