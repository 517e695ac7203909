package expand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/levelwalk/core"
	"github.com/katalvlaran/levelwalk/expand"
)

// TestFromGraph_Expand verifies basic discovery: mapped children returned in
// order, unknown nodes total.
func TestFromGraph_Expand(t *testing.T) {
	g := core.Graph[int]{1: {2, 3, 4}}
	x := expand.FromGraph(g)

	kids, next := x.Expand(1)
	assert.Equal(t, []int{2, 3, 4}, kids, "mapped children in insertion order")
	assert.NotNil(t, next)

	kids, _ = x.Expand(42)
	assert.Empty(t, kids, "unknown node yields no children, not an error")
}

// TestFromGraph_VisitedMonotonic verifies that once a node is visited, every
// subsequent query for it yields no children, forever.
func TestFromGraph_VisitedMonotonic(t *testing.T) {
	g := core.Graph[string]{"a": {"b"}, "b": {"a"}}
	x := expand.FromGraph(g)

	kids, x1 := x.Expand("a")
	assert.Equal(t, []string{"b"}, kids)

	// Re-query through the successor: a is visited.
	kids, x2 := x1.Expand("a")
	assert.Empty(t, kids, "visited node re-queried yields nothing")

	// The back-edge b→a is withheld: a was discovered already.
	kids, _ = x2.Expand("b")
	assert.Empty(t, kids, "already-visited child never re-enters a frontier")
}

// TestFromGraph_ValueSemantics verifies that expanding never mutates the
// receiver: a prior instance replays its own snapshot.
func TestFromGraph_ValueSemantics(t *testing.T) {
	g := core.Graph[int]{1: {2}, 2: {3}}
	x0 := expand.FromGraph(g)

	_, x1 := x0.Expand(1)
	_, _ = x1.Expand(2)

	// x0 still has an empty visited set.
	kids, _ := x0.Expand(1)
	assert.Equal(t, []int{2}, kids, "prior instance unaffected by later queries")

	// And x1 still has exactly {1, 2} visited.
	kids, _ = x1.Expand(2)
	assert.Equal(t, []int{3}, kids)
}

// TestFromGraph_SelfLoop verifies a node never discovers itself.
func TestFromGraph_SelfLoop(t *testing.T) {
	g := core.Graph[int]{1: {1, 2}}
	kids, _ := expand.FromGraph(g).Expand(1)
	assert.Equal(t, []int{2}, kids, "self-loop withheld")
}

// TestFromGraph_DiamondOnce verifies mark-on-discovery: a node reachable via
// two parents is handed out by exactly one of them.
func TestFromGraph_DiamondOnce(t *testing.T) {
	g := core.Graph[int]{1: {2, 3}, 2: {4}, 3: {4}}
	x := expand.FromGraph(g)

	kids, x1 := x.Expand(1)
	assert.Equal(t, []int{2, 3}, kids)

	kids, x2 := x1.Expand(2)
	assert.Equal(t, []int{4}, kids, "first parent discovers 4")

	kids, _ = x2.Expand(3)
	assert.Empty(t, kids, "second parent finds 4 already discovered")
}

// TestFromGraph_DuplicateChildren verifies a mapped list with repeats hands
// each child out once.
func TestFromGraph_DuplicateChildren(t *testing.T) {
	g := core.Graph[int]{1: {2, 2, 3}}
	kids, _ := expand.FromGraph(g).Expand(1)
	assert.Equal(t, []int{2, 3}, kids)
}
