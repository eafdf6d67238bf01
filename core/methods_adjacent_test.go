package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PauSolerValades/graphz/core"
)

// newFan returns a graph with Hub→L0, Hub→L1, ... Hub→L{n-1} in that
// insertion order, plus an isolated node "Lone".
func newFan(t *testing.T, n int) (*core.Graph[string, int, int], []string) {
	t.Helper()
	g := core.NewGraph[string, int, int]()
	require.NoError(t, g.AddNode("Hub", 0))
	require.NoError(t, g.AddNode("Lone", 0))
	leaves := make([]string, n)
	for i := range leaves {
		leaves[i] = "L" + string(rune('0'+i))
		require.NoError(t, g.AddNode(leaves[i], 0))
		require.NoError(t, g.AddEdge("Hub", leaves[i], i))
	}

	return g, leaves
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g, leaves := newFan(t, 4)

	nbr, err := g.Neighbors("Hub")
	require.NoError(t, err)
	assert.Equal(t, leaves, nbr, "neighbors must come back in insertion order")
}

func TestNeighbors_IsolatedNode(t *testing.T) {
	g, _ := newFan(t, 3)

	nbr, err := g.Neighbors("Lone")
	require.NoError(t, err)
	assert.NotNil(t, nbr, "isolated node yields an empty sequence, not nil")
	assert.Empty(t, nbr)
}

func TestNeighbors_MissingNode(t *testing.T) {
	g := core.NewGraph[string, int, int]()

	_, err := g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.NeighborsBuf("ghost", make([]string, 8))
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestNeighborsBuf_AgreesWithNeighbors(t *testing.T) {
	g, _ := newFan(t, 5)

	alloc, err := g.Neighbors("Hub")
	require.NoError(t, err)

	buf := make([]string, 16)
	buffered, err := g.NeighborsBuf("Hub", buf)
	require.NoError(t, err)
	assert.Equal(t, alloc, buffered, "both variants must agree in content and order")

	// An exactly-sized buffer is sufficient.
	exact := make([]string, len(alloc))
	buffered, err = g.NeighborsBuf("Hub", exact)
	require.NoError(t, err)
	assert.Equal(t, alloc, buffered)
}

func TestNeighborsBuf_TooSmall(t *testing.T) {
	g, _ := newFan(t, 4)

	buf := make([]string, 3)
	_, err := g.NeighborsBuf("Hub", buf)
	assert.ErrorIs(t, err, core.ErrBufferTooSmall)
	assert.Equal(t, []string{"", "", ""}, buf, "buffer must be untouched on failure")
}

func TestNeighborsBuf_ZeroDegreeZeroBuffer(t *testing.T) {
	g, _ := newFan(t, 2)

	buffered, err := g.NeighborsBuf("Lone", nil)
	require.NoError(t, err, "a nil buffer holds a zero-length result")
	assert.Empty(t, buffered)
}

// TestNeighbors_AgreementAfterRemovals pins down that the two variants stay
// in lockstep even after swap-with-last removals reorder the outgoing list.
func TestNeighbors_AgreementAfterRemovals(t *testing.T) {
	g, leaves := newFan(t, 5)

	require.NoError(t, g.RemoveEdge("Hub", leaves[1]))
	require.NoError(t, g.RemoveEdge("Hub", leaves[3]))

	alloc, err := g.Neighbors("Hub")
	require.NoError(t, err)
	buffered, err := g.NeighborsBuf("Hub", make([]string, 8))
	require.NoError(t, err)
	assert.Equal(t, alloc, buffered)
	assert.ElementsMatch(t, []string{leaves[0], leaves[2], leaves[4]}, alloc)
}
