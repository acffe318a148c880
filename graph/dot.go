// Package graph: DOT serialization for external visualization tooling.
package graph

import (
	"fmt"
	"io"
	"sort"
)

// PrintGraph writes the graph to w in DOT form:
//
//	digraph {
//		<key> [label = "<key> : <node payload>"]
//		<src> -> <dst> [label = "<edge payload>"]
//	}
//
// Node lines come first in ascending key order, then edge lines in
// ascending source key order (outbound-list order within a node), so
// equal graphs serialize to identical bytes. Indentation is a literal
// tab. Payloads render via %v. The first write error aborts the dump.
// Complexity: O(n log n + E).
func (g *Graph[N, E]) PrintGraph(w io.Writer) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]int64, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return err
	}
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "\t%s\n", g.nodes[k]); err != nil {
			return err
		}
	}
	for _, k := range keys {
		for _, e := range g.nodes[k].Outbound() {
			if _, err := fmt.Fprintf(w, "\t%s\n", e); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}

	return nil
}
