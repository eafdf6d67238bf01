// Package core: edge lifecycle and edge-level queries.
//
// AddEdge allocates one record and threads it through both adjacency views;
// RemoveEdge unlinks that same record (pointer identity) from both. Every
// failure path returns before the first mutation, keeping operations atomic.

package core

// AddEdge creates the directed edge from→to carrying payload. One Edge
// record is allocated and appended to both the source's outgoing list and
// the target's incoming list.
// Returns ErrNodeNotFound if either endpoint value is absent, ErrEdgeExists
// if the pair already has an edge. A failed call leaves the graph untouched;
// in particular no record is allocated.
// Self-loops (from == to) are permitted and occupy one slot in each of the
// node's own lists.
// Complexity: O(out-degree(from)) for the duplicate scan.
func (g *Graph[T, N, S]) AddEdge(from, to T, payload S) error {
	src, exists := g.nodes[from]
	if !exists {
		return ErrNodeNotFound
	}
	dst, exists := g.nodes[to]
	if !exists {
		return ErrNodeNotFound
	}
	if src.findOut(to) != nil {
		return ErrEdgeExists
	}

	e := &Edge[T, S]{From: from, To: to, Payload: payload}
	src.edgesOut = append(src.edgesOut, e)
	dst.edgesIn = append(dst.edgesIn, e)

	return nil
}

// RemoveEdge deletes the edge from→to from both adjacency views, retiring
// the shared record exactly once.
// Returns ErrNodeNotFound if either endpoint is absent, ErrEdgeNotFound if
// the pair has no edge. Removal is swap-with-last within each list, so the
// relative order of the survivors is not preserved.
// Complexity: O(out-degree(from) + in-degree(to)).
func (g *Graph[T, N, S]) RemoveEdge(from, to T) error {
	src, exists := g.nodes[from]
	if !exists {
		return ErrNodeNotFound
	}
	if _, exists = g.nodes[to]; !exists {
		return ErrNodeNotFound
	}
	e := src.findOut(to)
	if e == nil {
		return ErrEdgeNotFound
	}

	// Unlink the same record from both views. A missing counterpart on the
	// incoming side panics inside unlinkIn: it can only mean the symmetry
	// invariant was already broken.
	src.unlinkOut(e)
	g.mustNode(to).unlinkIn(e)

	return nil
}

// HasEdge reports whether an edge from→to exists. An absent endpoint reads
// as "no edge" and yields false rather than an error; use Edge for the
// strict variant.
// Complexity: O(out-degree(from)).
func (g *Graph[T, N, S]) HasEdge(from, to T) bool {
	src, exists := g.nodes[from]
	if !exists {
		return false
	}

	return src.findOut(to) != nil
}

// Edge returns the live record for from→to, for payload access or identity
// comparison. The record is owned by the graph; From and To must not be
// modified.
// Returns ErrNodeNotFound if either endpoint is absent, ErrEdgeNotFound if
// the pair has no edge.
// Complexity: O(out-degree(from)).
func (g *Graph[T, N, S]) Edge(from, to T) (*Edge[T, S], error) {
	src, exists := g.nodes[from]
	if !exists {
		return nil, ErrNodeNotFound
	}
	if _, exists = g.nodes[to]; !exists {
		return nil, ErrNodeNotFound
	}
	e := src.findOut(to)
	if e == nil {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgePayload returns a pointer to the edge's payload for in-place reads and
// writes; no copy is made in either direction. Same failure contract as
// Edge.
// Complexity: O(out-degree(from)).
func (g *Graph[T, N, S]) EdgePayload(from, to T) (*S, error) {
	e, err := g.Edge(from, to)
	if err != nil {
		return nil, err
	}

	return &e.Payload, nil
}

// Edges returns every live edge record, each exactly once, collected through
// the outgoing lists. Order is unspecified.
// Complexity: O(V+E).
func (g *Graph[T, N, S]) Edges() []*Edge[T, S] {
	out := make([]*Edge[T, S], 0, g.EdgeCount())
	for _, n := range g.nodes {
		out = append(out, n.edgesOut...)
	}

	return out
}

// EdgeCount returns the total number of live edges. Every edge appears in
// exactly one outgoing list, so summing those lengths counts each once.
// Complexity: O(V).
func (g *Graph[T, N, S]) EdgeCount() int {
	var total int
	for _, n := range g.nodes {
		total += len(n.edgesOut)
	}

	return total
}

// FilterEdges removes every edge failing the predicate, keeping the two
// adjacency views symmetric. The predicate must not mutate the graph.
// Complexity: O(V+E) to collect plus the unlink scans for removed edges.
func (g *Graph[T, N, S]) FilterEdges(pred func(*Edge[T, S]) bool) {
	// Collect first: unlinking while ranging over the same slices would skip
	// entries after a swap-with-last.
	var drop []*Edge[T, S]
	for _, n := range g.nodes {
		for _, e := range n.edgesOut {
			if !pred(e) {
				drop = append(drop, e)
			}
		}
	}
	for _, e := range drop {
		g.mustNode(e.From).unlinkOut(e)
		g.mustNode(e.To).unlinkIn(e)
	}
}
