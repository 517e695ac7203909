package bfs_test

import (
	"testing"

	"github.com/katalvlaran/levelwalk/bfs"
	"github.com/katalvlaran/levelwalk/core"
	"github.com/katalvlaran/levelwalk/expand"
)

// BenchmarkWalk_Chain measures level generation on a linear chain graph of
// N nodes; the visited set is copied on every expansion, so this is the
// provider's worst case.
func BenchmarkWalk_Chain(b *testing.B) {
	const N = 1024
	g := make(core.Graph[int], N)
	for i := 0; i < N; i++ {
		g[i] = []int{i + 1}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		seq, _ := bfs.Walk(expand.FromGraph(g), []int{0})
		for range seq {
		}
	}
}

// BenchmarkWalk_BinaryTree runs the tree provider over a complete binary
// tree of depth D (~2^D−1 nodes); rows are precomputed once per iteration
// and consumed by slicing, so the walk itself is allocation-light.
func BenchmarkWalk_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 nodes

	var build func(id, d int) core.Tree[int]
	build = func(id, d int) core.Tree[int] {
		if d == 0 {
			return core.Leaf(id)
		}

		return core.New(id, build(2*id, d-1), build(2*id+1, d-1))
	}
	tree := build(1, depth-1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		seq, _ := bfs.Walk(expand.FromTree(tree), []int{1})
		for range seq {
		}
	}
}

// BenchmarkWalk_InfinitePrefix pulls a fixed number of levels from an
// unbounded provider, measuring the cost of pure lazy prefixing.
func BenchmarkWalk_InfinitePrefix(b *testing.B) {
	var heap expand.Func[int]
	heap = func(n int) ([]int, expand.Expander[int]) {
		return []int{2 * n, 2*n + 1}, heap
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		seq, _ := bfs.Walk[int](heap, []int{1}, bfs.WithMaxDepth[int](8))
		for range seq {
		}
	}
}
