// Package graph: traversal verdicts, sentinel errors, and tunable
// options for the parallel breadth-first engine.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrNodeNotFound is returned when the traversal root key is absent.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrNilExplorer is returned when no Explorer is supplied.
	ErrNilExplorer = errors.New("graph: explorer is nil")

	// ErrOptionViolation is returned when an invalid TraverseOption is supplied.
	ErrOptionViolation = errors.New("graph: invalid option supplied")
)

// Verdict is an Explorer's answer for one claimed edge: it decides how
// the walk proceeds from that edge's target.
type Verdict uint8

const (
	// Continue expands the walk past this edge: the target's outbound
	// edges join the next frontier.
	Continue Verdict = iota

	// Prune keeps the target claimed but contributes nothing to the
	// next frontier. Sibling branches are unaffected.
	Prune

	// Halt lets the current level finish, then ends the walk.
	Halt
)

// Explorer inspects a newly claimed edge and returns a Verdict. The
// engine invokes it from worker goroutines, at most once per edge per
// walk, so it must be safe for concurrent use. Payload-aware decision
// logic (likelihood propagation, distance accumulation) plugs in here.
type Explorer[N, E any] func(*Edge[N, E]) Verdict

// TraverseOption configures BreadthFirstForward via functional
// arguments. An invalid option is recorded internally and surfaced as
// ErrOptionViolation when the walk is invoked.
type TraverseOption func(*traverseOptions)

// traverseOptions holds parameters customizing one walk.
type traverseOptions struct {
	// workers is the number of goroutines sharding each level;
	// 0 means runtime.GOMAXPROCS(0).
	workers int

	// internal error recorded during option parsing
	err error
}

// defaultTraverseOptions returns the baseline configuration:
// automatic worker count, error channel clear.
func defaultTraverseOptions() traverseOptions {
	return traverseOptions{workers: 0, err: nil}
}

// WithWorkers sets the number of worker goroutines per level.
//
//	n > 0:  use exactly n workers
//	n == 0: explicit default (runtime.GOMAXPROCS)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) TraverseOption {
	return func(o *traverseOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.workers = n
		}
	}
}
