// Package core: type declarations and lifecycle for the directed graph store.
//
// This file declares Edge, the internal node record, Graph, the NewGraph
// constructor, and Clear. Storage is a map from node value to node record;
// each record holds the two adjacency slices that together form the dual
// view of the edge set.

package core

// Edge represents a directed connection between two node values.
//
// Exactly one Edge record is allocated per live (From, To) pair, and that
// single record is referenced from the source node's outgoing list and the
// target node's incoming list. Pointer identity is edge identity: removal
// locates the same record in both lists, never a merely value-equal one.
//
// From and To are fixed at insertion and must be treated as read-only;
// Payload may be read or mutated freely (see Graph.EdgePayload).
type Edge[T comparable, S any] struct {
	// From is the source node value.
	From T

	// To is the destination node value.
	To T

	// Payload carries arbitrary user data (weight, label, capacity).
	Payload S
}

// node is the internal per-node record. The two adjacency slices are the
// dual views of the incident edge set: every live edge appears exactly once
// in its source's edgesOut and exactly once in its target's edgesIn, as the
// same pointer. A self-loop therefore occupies one slot in each slice of the
// same record. Slice order is insertion order until a removal swap-compacts
// it.
type node[T comparable, N any, S any] struct {
	payload  N
	edgesOut []*Edge[T, S]
	edgesIn  []*Edge[T, S]
}

// Graph is the core in-memory directed graph, keyed by comparable node
// values.
//
// T identifies nodes (unique across all live nodes), N is the per-node
// payload type, S the per-edge payload type. Use struct{} for payloads you
// do not need.
//
// The zero Graph is not usable; construct with NewGraph. The store performs
// no internal locking and assumes a single logical owner: callers sharing a
// Graph across goroutines must wrap it in their own mutex.
type Graph[T comparable, N any, S any] struct {
	// nodes maps each live node value to its record; it owns every node and,
	// through the outgoing lists, every edge.
	nodes map[T]*node[T, N, S]
}

// NewGraph creates an empty directed graph.
// Complexity: O(1).
func NewGraph[T comparable, N any, S any]() *Graph[T, N, S] {
	return &Graph[T, N, S]{nodes: make(map[T]*node[T, N, S])}
}

// Clear releases every edge and node and resets the graph to empty,
// preserving nothing but the type parameters. Each edge is unlinked exactly
// once through its source's outgoing list; incoming lists reference the same
// records and are dropped wholesale. Safe to call on an already-empty graph
// and safe to keep using the graph afterwards.
// Complexity: O(V+E).
func (g *Graph[T, N, S]) Clear() {
	var i int
	for _, n := range g.nodes {
		for i = range n.edgesOut {
			n.edgesOut[i] = nil
		}
		n.edgesOut = nil
		n.edgesIn = nil
	}
	g.nodes = make(map[T]*node[T, N, S])
}
