// Package core implements a directed graph store with typed node values,
// optional per-node and per-edge payloads, and dual adjacency-list
// bookkeeping: every node carries an outgoing and an incoming edge list, and
// both lists reference the same heap-allocated Edge record. Pointer identity
// is edge identity; insertion and removal keep the two views mirror images
// of each other at all times.
//
// What:
//
//   - Graph[T, N, S]: node values of comparable type T (the key), node
//     payloads of type N, edge payloads of type S.
//   - Node lifecycle: AddNode, RemoveNode (retires every incident edge,
//     both directions, before the node), HasNode, Nodes, NodeCount.
//   - Edge lifecycle: AddEdge (one allocation shared by both views),
//     RemoveEdge (unlinks the same record from both views), HasEdge, Edge,
//     Edges, EdgeCount, FilterEdges.
//   - Queries: Neighbors (allocating), NeighborsBuf (caller-supplied buffer,
//     no allocation), OutDegree, InDegree, NodePayload, EdgePayload.
//   - Maintenance: Clear (deterministic teardown), Clone, CloneEmpty,
//     Subgraph.
//
// Why:
//   - Provide the storage primitives traversal and flow algorithms consume
//     without committing to any algorithm themselves
//   - Keep neighbor enumeration cheap and allocation-free when it matters
//   - Make removal symmetry a hard guarantee instead of a convention
//
// Policies (each point where reasonable designs diverge, fixed here):
//
//   - Self-loops are always legal; a self-loop appears once in the node's
//     outgoing list and once in its incoming list, as the same record.
//   - Parallel edges are not: at most one edge per (from, to) pair.
//   - Duplicate AddNode fails with ErrNodeExists; it is not a silent no-op.
//   - HasEdge treats an absent endpoint as "no edge" and returns false;
//     Edge and EdgePayload are the strict accessors (ErrNodeNotFound).
//   - Nodes and Edges iterate in unspecified order; Neighbors order is the
//     outgoing list order (insertion order until a removal swap-compacts it).
//   - No internal locking: the store assumes one logical owner. Callers that
//     share a Graph across goroutines must serialize access themselves.
//
// Every mutation is atomic with respect to observable state: a failed call
// leaves the graph exactly as it was. A detected violation of the internal
// symmetry invariant is a bug in this package, not a user error, and panics.
//
// Complexity:
//
//   - AddNode, HasNode, NodePayload, degrees:  O(1)
//   - AddEdge, HasEdge, Edge, EdgePayload:     O(out-degree(from))
//   - RemoveEdge:                              O(out-degree(from) + in-degree(to))
//   - RemoveNode:                              O(Σ partner degrees)
//   - Neighbors, NeighborsBuf:                 O(out-degree)
//   - Clear, Clone, Subgraph, FilterEdges:     O(V + E)
//
// Errors:
//
//   - ErrNodeNotFound     operation referenced a missing node value
//   - ErrEdgeNotFound     operation referenced a missing (from, to) pair
//   - ErrNodeExists       AddNode with a value already present
//   - ErrEdgeExists       AddEdge for a pair that already has an edge
//   - ErrBufferTooSmall   NeighborsBuf buffer shorter than the out-degree
package core
