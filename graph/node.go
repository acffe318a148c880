package graph

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Node is a vertex holding a payload of type N. Its payload cell,
// outbound list, inbound list, and visitation marker are four
// independent synchronization domains, so readers of one never block
// behind writers of another.
//
// Nodes are created through Graph.AddNode and live for the life of
// their graph; a *Node handle obtained once stays valid.
type Node[N, E any] struct {
	key int64

	muData sync.RWMutex
	data   N

	muOut sync.RWMutex
	out   []*Edge[N, E]

	muIn sync.RWMutex
	in   []*Edge[N, E]

	// closed is the visitation marker: false = OPEN, true = CLOSED.
	closed atomic.Bool
}

// Key returns the node's stable identifier within its graph.
func (n *Node[N, E]) Key() int64 { return n.key }

// Payload returns a copy of the payload under the read lock.
func (n *Node[N, E]) Payload() N {
	n.muData.RLock()
	defer n.muData.RUnlock()

	return n.data
}

// SetPayload replaces the payload under the write lock.
func (n *Node[N, E]) SetPayload(v N) {
	n.muData.Lock()
	n.data = v
	n.muData.Unlock()
}

// UpdatePayload mutates the payload in place under the write lock.
// The pointer passed to fn must not escape the call.
func (n *Node[N, E]) UpdatePayload(fn func(*N)) {
	n.muData.Lock()
	fn(&n.data)
	n.muData.Unlock()
}

// Degree returns the number of outbound edges.
// Complexity: O(1).
func (n *Node[N, E]) Degree() int {
	n.muOut.RLock()
	defer n.muOut.RUnlock()

	return len(n.out)
}

// IsLeaf reports whether the node has no outbound edges.
func (n *Node[N, E]) IsLeaf() bool { return n.Degree() == 0 }

// Outbound returns a snapshot copy of the outbound edge list.
func (n *Node[N, E]) Outbound() []*Edge[N, E] {
	n.muOut.RLock()
	defer n.muOut.RUnlock()
	out := make([]*Edge[N, E], len(n.out))
	copy(out, n.out)

	return out
}

// Inbound returns a snapshot copy of the inbound edge list, answering
// "who points at me" without walking the whole graph.
func (n *Node[N, E]) Inbound() []*Edge[N, E] {
	n.muIn.RLock()
	defer n.muIn.RUnlock()
	in := make([]*Edge[N, E], len(n.in))
	copy(in, n.in)

	return in
}

// Open resets the visitation marker so the node can be claimed again.
// Markers are never reset by the engine; this is the caller's job
// between walks (see Graph.OpenAll).
func (n *Node[N, E]) Open() { n.closed.Store(false) }

// Close marks the node CLOSED without going through a claim.
func (n *Node[N, E]) Close() { n.closed.Store(true) }

// IsOpen reports whether the node has not been claimed yet.
func (n *Node[N, E]) IsOpen() bool { return !n.closed.Load() }

// tryClaim flips the marker OPEN→CLOSED atomically and reports whether
// this caller won. Exactly one claimant wins per Open cycle, which is
// what guarantees exactly-once visitation under parallel discovery.
func (n *Node[N, E]) tryClaim() bool { return n.closed.CompareAndSwap(false, true) }

// MapAdjacent is the exactly-once discovery primitive. It walks a
// snapshot of the outbound list, claims each edge's target, and for
// every claim won invokes visit on the edge and records the edge in
// the returned list. Edges whose target was already CLOSED are skipped
// silently.
// Complexity: O(out-degree) plus the cost of visit.
func (n *Node[N, E]) MapAdjacent(visit func(*Edge[N, E])) []*Edge[N, E] {
	var claimed []*Edge[N, E]
	for _, e := range n.Outbound() {
		if !e.to.tryClaim() {
			continue
		}
		if visit != nil {
			visit(e)
		}
		claimed = append(claimed, e)
	}

	return claimed
}

// findOutbound scans the outbound list for an edge ending at key,
// returning the edge and its index, or (nil, -1).
func (n *Node[N, E]) findOutbound(key int64) (*Edge[N, E], int) {
	n.muOut.RLock()
	defer n.muOut.RUnlock()
	for i, e := range n.out {
		if e.to.key == key {
			return e, i
		}
	}

	return nil, -1
}

// findInbound scans the inbound list for an edge starting at key,
// returning the edge and its index, or (nil, -1).
func (n *Node[N, E]) findInbound(key int64) (*Edge[N, E], int) {
	n.muIn.RLock()
	defer n.muIn.RUnlock()
	for i, e := range n.in {
		if e.from.key == key {
			return e, i
		}
	}

	return nil, -1
}

// String renders the node in DOT form: key [label = "key : payload"].
func (n *Node[N, E]) String() string {
	return fmt.Sprintf("%d [label = \"%d : %v\"]", n.key, n.key, n.Payload())
}
