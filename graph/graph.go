// Package graph: container operations on the Graph type.
//
// One RWMutex guards the topology. Structural mutation (AddNode,
// AddEdge, DelEdge) takes the write lock and is therefore serialized
// against everything else, including in-flight traversals, which hold
// the read lock end to end. Per-node adjacency edits additionally take
// the node-level list locks so handle holders reading a snapshot at
// the same moment never observe a torn slice.
package graph

import (
	"fmt"
	"sort"
	"sync"
	"unsafe"
)

// Graph is a directed graph whose nodes are addressed by dense,
// monotonically increasing int64 keys. Keys are never reused.
type Graph[N, E any] struct {
	mu      sync.RWMutex
	nodes   map[int64]*Node[N, E]
	nextKey int64 // ordinary counter field, guarded by mu
}

// New returns an empty graph.
// Complexity: O(1).
func New[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{nodes: make(map[int64]*Node[N, E])}
}

// AddNode inserts a node with the given payload and returns its key.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(payload N) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := g.nextKey
	g.nextKey++
	g.nodes[key] = &Node[N, E]{key: key, data: payload}

	return key
}

// GetNode returns a shared handle on the node with the given key. The
// handle stays valid past the call for the life of the graph.
// Complexity: O(1).
func (g *Graph[N, E]) GetNode(key int64) (*Node[N, E], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[key]

	return n, ok
}

// AddEdge connects src to dst carrying the given payload. It returns
// false, leaving the graph unchanged, when either endpoint is missing
// or when src already has an outbound edge to dst (at most one edge
// per ordered pair). Self-loops are permitted.
// Complexity: O(out-degree of src).
func (g *Graph[N, E]) AddEdge(src, dst int64, payload E) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Resolve both endpoints
	s, ok := g.nodes[src]
	if !ok {
		return false
	}
	t, ok := g.nodes[dst]
	if !ok {
		return false
	}
	// 2) Duplicate check: linear scan of src's outbound list
	if e, _ := s.findOutbound(dst); e != nil {
		return false
	}
	// 3) Link one Edge into both adjacency domains
	e := &Edge[N, E]{from: s, to: t, data: payload}
	s.muOut.Lock()
	s.out = append(s.out, e)
	s.muOut.Unlock()
	t.muIn.Lock()
	t.in = append(t.in, e)
	t.muIn.Unlock()

	return true
}

// DelEdge removes the edge src→dst. It returns false, leaving the
// graph unchanged, when either endpoint is missing or no such edge
// exists. Both removals preserve list order, so surviving entries keep
// consistent indices.
//
// An outbound match without its inbound mirror means the two adjacency
// domains have diverged. That is a programming error in the host
// application; DelEdge panics rather than guess at a repair.
// Complexity: O(out-degree of src + in-degree of dst).
func (g *Graph[N, E]) DelEdge(src, dst int64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Resolve both endpoints
	s, ok := g.nodes[src]
	if !ok {
		return false
	}
	t, ok := g.nodes[dst]
	if !ok {
		return false
	}
	// 2) Locate the edge in both adjacency domains
	e, oi := s.findOutbound(dst)
	if e == nil {
		return false
	}
	if _, ii := t.findInbound(src); ii >= 0 {
		// 3) Order-preserving removal from both lists
		s.muOut.Lock()
		s.out = append(s.out[:oi], s.out[oi+1:]...)
		s.muOut.Unlock()
		t.muIn.Lock()
		t.in = append(t.in[:ii], t.in[ii+1:]...)
		t.muIn.Unlock()

		return true
	}

	panic(fmt.Sprintf("graph: edge %d -> %d has no inbound mirror", src, dst))
}

// GetEdge returns the edge src→dst when both endpoints exist and src's
// outbound list contains it.
// Complexity: O(out-degree of src).
func (g *Graph[N, E]) GetEdge(src, dst int64) (*Edge[N, E], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s, ok := g.nodes[src]
	if !ok {
		return nil, false
	}
	if _, ok = g.nodes[dst]; !ok {
		return nil, false
	}
	e, _ := s.findOutbound(dst)

	return e, e != nil
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph[N, E]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount derives the edge total by summing outbound degrees. The
// topology read lock excludes structural mutation for the duration, so
// the sum is exact; payload and marker activity may proceed alongside.
// Complexity: O(n).
func (g *Graph[N, E]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, n := range g.nodes {
		total += n.Degree()
	}

	return total
}

// SizeOf estimates resident container memory: node shells plus edge
// shells. Payload heap allocations are deliberately not counted; this
// is a capacity-planning figure, not an accounting one.
func (g *Graph[N, E]) SizeOf() uintptr {
	var (
		n Node[N, E]
		e Edge[N, E]
	)

	return uintptr(g.NodeCount())*unsafe.Sizeof(n) + uintptr(g.EdgeCount())*unsafe.Sizeof(e)
}

// ForEachNode invokes fn for every node while holding the read lock.
// Iteration order is unspecified; use Nodes for a deterministic order.
// fn must not call graph-level methods (the read lock is not reentrant
// once a writer is queued).
func (g *Graph[N, E]) ForEachNode(fn func(*Node[N, E])) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, n := range g.nodes {
		fn(n)
	}
}

// Nodes returns a snapshot of all nodes sorted by key.
// Complexity: O(n log n).
func (g *Graph[N, E]) Nodes() []*Node[N, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]*Node[N, E], 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].key < nodes[j].key })

	return nodes
}

// OpenAll resets every visitation marker to OPEN. Call it between
// walks that must re-discover the same nodes; neither claims nor
// markers are ever reset automatically.
// Complexity: O(n).
func (g *Graph[N, E]) OpenAll() {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, n := range g.nodes {
		n.Open()
	}
}
