package graph

import (
	"fmt"
	"sync"
)

// Edge is a directed connection holding a payload of type E (a branch
// length, a weight, a transition record). Endpoints are fixed at
// creation and always resolvable; an edge lives exactly as long as an
// adjacency list references it.
type Edge[N, E any] struct {
	from *Node[N, E]
	to   *Node[N, E]

	muData sync.RWMutex
	data   E
}

// Source returns the node this edge leaves.
func (e *Edge[N, E]) Source() *Node[N, E] { return e.from }

// Target returns the node this edge enters.
func (e *Edge[N, E]) Target() *Node[N, E] { return e.to }

// Payload returns a copy of the payload under the read lock.
func (e *Edge[N, E]) Payload() E {
	e.muData.RLock()
	defer e.muData.RUnlock()

	return e.data
}

// SetPayload replaces the payload under the write lock.
func (e *Edge[N, E]) SetPayload(v E) {
	e.muData.Lock()
	e.data = v
	e.muData.Unlock()
}

// UpdatePayload mutates the payload in place under the write lock.
// The pointer passed to fn must not escape the call.
func (e *Edge[N, E]) UpdatePayload(fn func(*E)) {
	e.muData.Lock()
	fn(&e.data)
	e.muData.Unlock()
}

// String renders the edge in DOT form: src -> dst [label = "payload"].
func (e *Edge[N, E]) String() string {
	return fmt.Sprintf("%d -> %d [label = \"%v\"]", e.from.key, e.to.key, e.Payload())
}
