// Package core: node lifecycle and node-level queries.
//
// RemoveNode is the hardest operation in the package: it must retire every
// edge touching the node from both adjacency views, free each shared record
// exactly once (self-loops appear in two of the node's own lists), and only
// then drop the node itself.

package core

// AddNode inserts a new node keyed by value, attaching the given payload.
// Returns ErrNodeExists if value already keys a live node; the failed call
// changes nothing.
// Complexity: O(1) amortized.
func (g *Graph[T, N, S]) AddNode(value T, payload N) error {
	if _, exists := g.nodes[value]; exists {
		return ErrNodeExists
	}
	g.nodes[value] = &node[T, N, S]{payload: payload}

	return nil
}

// HasNode reports whether a node with the given value exists.
// Complexity: O(1).
func (g *Graph[T, N, S]) HasNode(value T) bool {
	_, exists := g.nodes[value]

	return exists
}

// RemoveNode deletes the node and every edge touching it, in both
// directions, and returns the removed node's payload.
// Returns ErrNodeNotFound if no node has this value.
//
// Outgoing edges are retired first; that pass already covers self-loops
// completely, since a self-loop sits in both of the node's own lists and its
// incoming entry is unlinked when the outgoing one is processed. Every edge
// still present in edgesIn afterwards is therefore guaranteed to originate
// at a different node, so no record can be retired twice.
// Complexity: O(Σ partner degrees), proportional to the edges removed times
// the linear unlink scan on each partner's list.
func (g *Graph[T, N, S]) RemoveNode(value T) (N, error) {
	n, exists := g.nodes[value]
	if !exists {
		var zero N
		return zero, ErrNodeNotFound
	}

	// Pass 1: retire all outgoing edges, unlinking each from its target's
	// incoming list. For a self-loop the target is n itself, so the loop's
	// edgesIn entry disappears here as well.
	for _, e := range n.edgesOut {
		g.mustNode(e.To).unlinkIn(e)
	}
	n.edgesOut = nil

	// Pass 2: the surviving incoming edges all have a distinct source; unlink
	// each from that source's outgoing list.
	for _, e := range n.edgesIn {
		g.mustNode(e.From).unlinkOut(e)
	}
	n.edgesIn = nil

	delete(g.nodes, value)

	return n.payload, nil
}

// Nodes returns every live node value. Order is unspecified (map iteration);
// callers needing determinism must sort by their own criterion.
// Complexity: O(V).
func (g *Graph[T, N, S]) Nodes() []T {
	out := make([]T, 0, len(g.nodes))
	for v := range g.nodes {
		out = append(out, v)
	}

	return out
}

// NodeCount returns the number of live nodes. Complexity: O(1).
func (g *Graph[T, N, S]) NodeCount() int {
	return len(g.nodes)
}

// NodePayload returns a pointer to the node's payload for in-place reads and
// writes; no copy is made in either direction. The pointer stays valid until
// the node is removed or the graph is cleared.
// Returns ErrNodeNotFound if value is absent.
// Complexity: O(1).
func (g *Graph[T, N, S]) NodePayload(value T) (*N, error) {
	n, exists := g.nodes[value]
	if !exists {
		return nil, ErrNodeNotFound
	}

	return &n.payload, nil
}

// OutDegree returns the number of edges leaving value.
// Returns ErrNodeNotFound if value is absent.
// Complexity: O(1).
func (g *Graph[T, N, S]) OutDegree(value T) (int, error) {
	n, exists := g.nodes[value]
	if !exists {
		return 0, ErrNodeNotFound
	}

	return len(n.edgesOut), nil
}

// InDegree returns the number of edges entering value.
// Returns ErrNodeNotFound if value is absent.
// Complexity: O(1).
func (g *Graph[T, N, S]) InDegree(value T) (int, error) {
	n, exists := g.nodes[value]
	if !exists {
		return 0, ErrNodeNotFound
	}

	return len(n.edgesIn), nil
}

// mustNode returns the live record for value. Every stored edge endpoint
// must reference a present node (no-dangling-edges invariant); an absent one
// means the store corrupted itself, so this panics instead of erroring.
func (g *Graph[T, N, S]) mustNode(value T) *node[T, N, S] {
	n, exists := g.nodes[value]
	if !exists {
		panic("core: edge endpoint references a missing node")
	}

	return n
}
