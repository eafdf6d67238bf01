// Package graphz is a small, embeddable toolkit for building directed graphs
// with typed node identities and arbitrary node and edge payloads.
//
// 🚀 What is graphz?
//
//	A zero-I/O, single-owner graph storage engine:
//		• Core primitives: insert and remove nodes and edges under strict invariants
//		• Dual adjacency views: outgoing and incoming lists per node, both
//		  referencing one shared edge record
//		• Payload access in place: read or mutate without copying
//		• Allocation-free neighbor queries via caller-supplied buffers
//
// ✨ Why choose graphz?
//
//   - Minimal API, clear, intuitive naming
//   - Strict structural invariants — both adjacency views always agree
//   - Pure Go – no cgo, no hidden deps
//   - Generic – node identity, node payload and edge payload are type parameters
//
// graphz deliberately contains no traversal or analysis algorithms; it is the
// substrate such algorithms (shortest path, reachability, flow) are built on.
// Algorithm layers consume only the public query surface: Neighbors, Edge,
// NodePayload, EdgePayload, Nodes.
//
// Everything lives in one subpackage:
//
//	core/ — fundamental Graph and Edge types and single-owner primitives
//
// Quick start:
//
//	g := core.NewGraph[string, int, float64]()
//	_ = g.AddNode("A", 1)
//	_ = g.AddNode("B", 2)
//	_ = g.AddEdge("A", "B", 0.5)
//
//	go get github.com/PauSolerValades/graphz/core
package graphz
