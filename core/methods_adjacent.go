// Package core: neighbor enumeration and the dual-list unlink primitives.
//
// The unlink helpers are the only code that ever shrinks an adjacency slice.
// Both match on pointer identity, not field equality, so removing one of two
// structurally identical records (impossible today given pair uniqueness,
// but the guarantee is cheap) can never retire the wrong one.

package core

// Neighbors returns the target value of every edge leaving the node, in the
// current order of its outgoing list: insertion order until a removal
// swap-compacts it. An isolated node yields an empty, non-nil slice, not an
// error. The slice is freshly allocated and sized exactly to the out-degree.
// Returns ErrNodeNotFound if value is absent.
// Complexity: O(out-degree).
func (g *Graph[T, N, S]) Neighbors(value T) ([]T, error) {
	n, exists := g.nodes[value]
	if !exists {
		return nil, ErrNodeNotFound
	}

	out := make([]T, len(n.edgesOut))
	for i, e := range n.edgesOut {
		out[i] = e.To
	}

	return out, nil
}

// NeighborsBuf writes the node's neighbor values into buf and returns the
// filled prefix, performing no allocation. For the same graph state the
// result matches Neighbors in both content and order.
// Returns ErrNodeNotFound if value is absent, ErrBufferTooSmall if
// len(buf) < out-degree; buf is left unmodified on either failure.
// Complexity: O(out-degree).
func (g *Graph[T, N, S]) NeighborsBuf(value T, buf []T) ([]T, error) {
	n, exists := g.nodes[value]
	if !exists {
		return nil, ErrNodeNotFound
	}
	if len(buf) < len(n.edgesOut) {
		return nil, ErrBufferTooSmall
	}

	for i, e := range n.edgesOut {
		buf[i] = e.To
	}

	return buf[:len(n.edgesOut)], nil
}

// findOut scans the outgoing list for the edge targeting to. Returns nil
// when absent. Pair uniqueness guarantees at most one match.
func (n *node[T, N, S]) findOut(to T) *Edge[T, S] {
	for _, e := range n.edgesOut {
		if e.To == to {
			return e
		}
	}

	return nil
}

// unlinkOut removes exactly the record e from the outgoing list via
// swap-with-last, nilling the vacated slot. A missing entry means the dual
// views desynchronized, which only a bug inside this package can cause:
// panic rather than mask corrupted state.
func (n *node[T, N, S]) unlinkOut(e *Edge[T, S]) {
	for i, cur := range n.edgesOut {
		if cur == e {
			last := len(n.edgesOut) - 1
			n.edgesOut[i] = n.edgesOut[last]
			n.edgesOut[last] = nil
			n.edgesOut = n.edgesOut[:last]

			return
		}
	}
	panic("core: edge missing from outgoing list; adjacency views desynchronized")
}

// unlinkIn is the incoming-list counterpart of unlinkOut.
func (n *node[T, N, S]) unlinkIn(e *Edge[T, S]) {
	for i, cur := range n.edgesIn {
		if cur == e {
			last := len(n.edgesIn) - 1
			n.edgesIn[i] = n.edgesIn[last]
			n.edgesIn[last] = nil
			n.edgesIn = n.edgesIn[:last]

			return
		}
	}
	panic("core: edge missing from incoming list; adjacency views desynchronized")
}
