// Package core: structural copies and induced subgraphs.

package core

// CloneEmpty returns a new graph containing every node of g, with payloads
// copied by value, and no edges. Payloads of reference types share referents
// with the original.
// Complexity: O(V).
func (g *Graph[T, N, S]) CloneEmpty() *Graph[T, N, S] {
	clone := NewGraph[T, N, S]()
	for v, n := range g.nodes {
		clone.nodes[v] = &node[T, N, S]{payload: n.payload}
	}

	return clone
}

// Clone returns a deep structural copy: fresh node and edge records carrying
// the same values and payloads. Mutating either graph never affects the
// other, though payloads of reference types share referents. Per-node
// outgoing order is preserved, so Neighbors agrees between original and
// clone.
// Complexity: O(V+E).
func (g *Graph[T, N, S]) Clone() *Graph[T, N, S] {
	clone := g.CloneEmpty()
	var ne *Edge[T, S]
	for _, n := range g.nodes {
		for _, e := range n.edgesOut {
			// Fresh record, threaded through both views of the clone.
			ne = &Edge[T, S]{From: e.From, To: e.To, Payload: e.Payload}
			clone.nodes[ne.From].edgesOut = append(clone.nodes[ne.From].edgesOut, ne)
			clone.nodes[ne.To].edgesIn = append(clone.nodes[ne.To].edgesIn, ne)
		}
	}

	return clone
}

// Subgraph returns the subgraph induced by the nodes accepted by keep: those
// nodes plus every edge whose endpoints are both kept. Records are fresh;
// the original is never aliased.
// Complexity: O(V+E).
func (g *Graph[T, N, S]) Subgraph(keep func(T) bool) *Graph[T, N, S] {
	sub := NewGraph[T, N, S]()
	for v, n := range g.nodes {
		if keep(v) {
			sub.nodes[v] = &node[T, N, S]{payload: n.payload}
		}
	}
	var ne *Edge[T, S]
	for v, sn := range sub.nodes {
		for _, e := range g.nodes[v].edgesOut {
			dst, kept := sub.nodes[e.To]
			if !kept {
				continue
			}
			ne = &Edge[T, S]{From: e.From, To: e.To, Payload: e.Payload}
			sn.edgesOut = append(sn.edgesOut, ne)
			dst.edgesIn = append(dst.edgesIn, ne)
		}
	}

	return sub
}
