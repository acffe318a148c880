// Package graph: level-synchronous parallel breadth-first engine.
//
// The walk pins the topology with the graph read lock, then expands
// frontier after frontier. Within a level, edges are sharded across
// worker goroutines; targets are claimed with an atomic
// compare-and-swap, so a node reached by several edges at once is
// handed to the Explorer exactly once. The join between levels doubles
// as the memory barrier that makes payload writes from one level
// visible to the next.
package graph

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// BreadthFirstForward walks the graph outward from the node with key
// root, level by level along outbound edges, invoking explore exactly
// once per claimed edge. It returns every claimed edge, earlier levels
// first; order within a level is unspecified.
//
// A missing root returns ErrNodeNotFound, the walk's only recoverable
// failure. There is no cancellation surface: a walk runs until its
// frontier is exhausted or the Explorer answers Halt.
//
// Nodes already CLOSED are invisible to the walk. Re-running without
// Graph.OpenAll therefore returns an empty result.
// Complexity: O(V + E) total work spread across the workers.
func (g *Graph[N, E]) BreadthFirstForward(root int64, explore Explorer[N, E], opts ...TraverseOption) ([]*Edge[N, E], error) {
	// 1) Build options and catch any invalid ones immediately
	o := defaultTraverseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if explore == nil {
		return nil, ErrNilExplorer
	}
	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// 2) Pin the topology for the duration of the walk
	g.mu.RLock()
	defer g.mu.RUnlock()

	start, ok := g.nodes[root]
	if !ok {
		return nil, fmt.Errorf("%w: traversal root %d", ErrNodeNotFound, root)
	}

	// 3) Expand levels until exhaustion or Halt
	w := &walker[N, E]{explore: explore, workers: workers}
	w.run(start.Outbound())

	return w.claimed, nil
}

// walker bundles the mutable state of one parallel walk.
type walker[N, E any] struct {
	explore Explorer[N, E]
	workers int

	// claimed accumulates every edge shown to explore, in level order.
	claimed []*Edge[N, E]

	// halted flips once an Explorer answers Halt; checked between levels.
	halted atomic.Bool
}

// run consumes frontiers until one comes up empty or Halt was signaled.
// Halt lets the level that produced it finish, so a level is always
// claimed in full or not reached at all.
func (w *walker[N, E]) run(frontier []*Edge[N, E]) {
	for len(frontier) > 0 && !w.halted.Load() {
		frontier = w.level(frontier)
	}
}

// level shards one frontier across the workers, waits for them all,
// and assembles the next frontier from what they expanded.
func (w *walker[N, E]) level(frontier []*Edge[N, E]) []*Edge[N, E] {
	shards := shardEdges(frontier, w.workers)
	claimed := make([][]*Edge[N, E], len(shards))
	expanded := make([][]*Edge[N, E], len(shards))

	var wg sync.WaitGroup
	for i, shard := range shards {
		wg.Add(1)
		go func(i int, shard []*Edge[N, E]) {
			defer wg.Done()
			claimed[i], expanded[i] = w.shard(shard)
		}(i, shard)
	}
	wg.Wait()

	var next []*Edge[N, E]
	for i := range shards {
		w.claimed = append(w.claimed, claimed[i]...)
		next = append(next, expanded[i]...)
	}

	return next
}

// shard processes one slice of the frontier inside a single worker:
// claim the target, apply the verdict, collect the expansion.
func (w *walker[N, E]) shard(edges []*Edge[N, E]) (claimed, expanded []*Edge[N, E]) {
	for _, e := range edges {
		if !e.to.tryClaim() {
			continue // lost the claim to a sibling edge
		}
		claimed = append(claimed, e)
		switch w.explore(e) {
		case Continue:
			expanded = append(expanded, e.to.Outbound()...)
		case Prune:
			// claimed, not expanded
		case Halt:
			w.halted.Store(true)
		}
	}

	return claimed, expanded
}

// shardEdges splits edges into at most n contiguous, near-even shards.
// n is assumed positive; an empty input yields no shards.
func shardEdges[N, E any](edges []*Edge[N, E], n int) [][]*Edge[N, E] {
	if len(edges) < n {
		n = len(edges)
	}
	if n == 0 {
		return nil
	}
	size := (len(edges) + n - 1) / n
	shards := make([][]*Edge[N, E], 0, n)
	for lo := 0; lo < len(edges); lo += size {
		hi := lo + size
		if hi > len(edges) {
			hi = len(edges)
		}
		shards = append(shards, edges[lo:hi])
	}

	return shards
}
