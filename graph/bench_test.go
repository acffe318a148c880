package graph_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/gtonkinhill/treetime/graph"
)

// BenchmarkBreadthFirstForward_Chain measures a full walk over a linear
// chain of N edges, reopening markers between iterations.
func BenchmarkBreadthFirstForward_Chain(b *testing.B) {
	const N = 10000
	g := graph.New[string, float64]()
	for i := 0; i <= N; i++ {
		g.AddNode(fmt.Sprintf("v%d", i))
	}
	for i := int64(0); i < N; i++ {
		g.AddEdge(i, i+1, 1.0)
	}
	explore := func(*graph.Edge[string, float64]) graph.Verdict { return graph.Continue }

	b.ReportAllocs()
	b.SetBytes(int64(N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g.OpenAll()
		if _, err := g.BreadthFirstForward(0, explore); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBreadthFirstForward_BinaryTree walks a complete binary tree
// of depth 14 (~16k nodes), whose wide levels give the worker sharding
// something to chew on.
func BenchmarkBreadthFirstForward_BinaryTree(b *testing.B) {
	const depth = 14
	total := int64(1<<depth) - 1
	g := graph.New[int64, float64]()
	for i := int64(0); i < total; i++ {
		g.AddNode(i)
	}
	for i := int64(0); 2*i+2 < total; i++ {
		g.AddEdge(i, 2*i+1, 0.5)
		g.AddEdge(i, 2*i+2, 0.5)
	}
	explore := func(*graph.Edge[int64, float64]) graph.Verdict { return graph.Continue }

	b.ReportAllocs()
	b.SetBytes(total - 1)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g.OpenAll()
		if _, err := g.BreadthFirstForward(0, explore); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGraphBuild_Path measures node and edge insertion for a path
// of 1024 nodes, duplicate scans included.
func BenchmarkGraphBuild_Path(b *testing.B) {
	const N = 1024

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g := graph.New[int, int]()
		for j := 0; j < N; j++ {
			g.AddNode(j)
		}
		for j := int64(0); j < N-1; j++ {
			g.AddEdge(j, j+1, 0)
		}
	}
}

// BenchmarkPrintGraph serializes a mid-sized star to a discarded sink.
func BenchmarkPrintGraph(b *testing.B) {
	const leaves = 1000
	g := graph.New[string, float64]()
	hub := g.AddNode("hub")
	for i := 0; i < leaves; i++ {
		key := g.AddNode(fmt.Sprintf("leaf%d", i))
		g.AddEdge(hub, key, float64(i))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := g.PrintGraph(io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
