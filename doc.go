// Package treetime is a concurrency-first toolkit for running
// computations over phylogenies — a thread-aware graph substrate plus the
// numeric machinery to push sequence profiles along its branches.
//
// 🚀 What is treetime?
//
//	A generics-based, lock-disciplined library that brings together:
//		• Graph substrate: nodes & edges with independent R/W lock domains
//		• Parallel traversal: level-synchronous BFS with an exactly-once claim
//		• Explorer callbacks: prune, halt or keep expanding per edge
//		• Substitution models: general time reversible rates, JC69 preset
//		• Profiles: nucleotide alphabets with the IUPAC ambiguity codes
//		• DOT export: deterministic snapshots for quick visual checks
//
// ✨ Why treetime?
//
//   - Payload-generic – node and edge data are type parameters, no casts
//   - Honest concurrency – per-cell locks, CAS claims, level barriers
//   - Numerics on gonum – eigendecompose once, propagate per branch
//   - Small surface – a handful of operations, each documented with costs
//
// Everything is organized under four subpackages:
//
//	graph/    — Graph, Node and Edge containers, parallel BFS, DOT export
//	alphabet/ — nucleotide alphabets and character → profile tables
//	gtr/      — substitution models: construction, ExpQt, Evolve, Propagate
//	matops/   — axis-wise & element-wise helpers over gonum matrices
//
// Quick ASCII example:
//
//	    root
//	    ├── A ── leaf₁
//	    └── B ── leaf₂
//
//	a rooted tree whose node payloads hold site profiles and whose edge
//	payloads hold branch lengths; Evolve carries the profiles downward,
//	one traversal level at a time.
//
// See ExampleGTR_Evolve in gtr/ for the full loop from sequence to tree
// and back.
//
//	go get github.com/gtonkinhill/treetime
package treetime
