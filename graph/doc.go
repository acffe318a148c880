// Package graph provides a generic, thread-aware, directed graph built
// for tree-wide computations over large phylogenies: payload-carrying
// nodes and edges behind independent locks, a level-synchronous parallel
// breadth-first engine with exactly-once visitation, and a DOT-format
// serializer for external visualization tooling.
//
// # Data model
//
//	Graph[N, E] - int64 key → *Node map plus a monotonic key counter.
//	              One RWMutex guards the topology: structural mutation
//	              (AddNode, AddEdge, DelEdge) takes the write lock;
//	              lookups, counts, serialization and traversal share
//	              the read lock.
//	Node[N, E]  - stable key, payload cell of type N, outbound and
//	              inbound edge lists, and an atomic OPEN/CLOSED
//	              visitation marker. The payload cell, the two lists
//	              and the marker are four independent synchronization
//	              domains; access through different domains never
//	              contends.
//	Edge[N, E]  - payload cell of type E plus fixed source and target
//	              references, resolvable for as long as the graph is
//	              reachable.
//
// Payloads of both kinds should be value types (or treat shared
// innards as immutable), render via %v, and are always read or written
// under the owning cell's lock.
//
// # Traversal
//
// BreadthFirstForward walks outward from an explicit root, one level at
// a time. Each level's edges are sharded across worker goroutines; a
// worker claims an edge's target with an atomic compare-and-swap, so
// every reachable node is claimed exactly once per walk no matter how
// many edges point at it. The caller's Explorer sees each claimed edge
// exactly once and answers with a Verdict:
//
//	Continue - expand past this edge into the target's outbound edges
//	Prune    - keep the claim but do not expand this branch
//	Halt     - finish the current level, then end the walk
//
// The WaitGroup join between levels is a memory barrier: payloads
// written by level k explorers are visible to level k+1 explorers,
// which is what makes propagating profiles down a tree safe.
//
// Markers are never reset by the engine. Re-running a walk without
// calling OpenAll discovers nothing and returns an empty result.
//
// An Explorer runs on worker goroutines while the walk holds the graph
// read lock. It must confine itself to the Node and Edge handles it is
// given; calling graph-level methods from inside a walk can deadlock
// against a queued writer.
//
// # Errors and failure
//
//	ErrNodeNotFound    - traversal root key is absent.
//	ErrNilExplorer     - BreadthFirstForward was given a nil Explorer.
//	ErrOptionViolation - an invalid TraverseOption was supplied.
//
// Absence during container operations is never an error: GetNode and
// GetEdge return comma-ok, AddEdge and DelEdge return false and leave
// the graph untouched. A divergence between the outbound and inbound
// adjacency domains (an edge present on one side only) is a programming
// error in the host application and panics.
//
// # Complexity
//
//	AddNode, GetNode, NodeCount     O(1)
//	AddEdge, GetEdge                O(out-degree)
//	DelEdge                         O(out-degree + in-degree)
//	EdgeCount, OpenAll, ForEachNode O(n)
//	BreadthFirstForward             O(V + E) work across workers
//	PrintGraph                      O(n log n + E)
package graph
