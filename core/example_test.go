package core_test

import (
	"fmt"
	"sort"

	"github.com/PauSolerValades/graphz/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// Node values are strings, node payloads ints, edge payloads float64.
	g := core.NewGraph[string, int, float64]()

	// 1) Add nodes, then wire them up:
	for _, city := range []string{"Lviv", "Kyiv", "Odesa"} {
		_ = g.AddNode(city, 0)
	}
	_ = g.AddEdge("Lviv", "Kyiv", 540.0)
	_ = g.AddEdge("Kyiv", "Odesa", 475.0)
	_ = g.AddEdge("Lviv", "Odesa", 790.0)

	// 2) Enumerate a node's neighbors (sorted here for stable output):
	nbr, _ := g.Neighbors("Lviv")
	sort.Strings(nbr)
	fmt.Println("Lviv reaches:", nbr)

	// 3) Read an edge payload in place:
	dist, _ := g.EdgePayload("Lviv", "Kyiv")
	fmt.Println("Lviv→Kyiv:", *dist)

	// 4) Removing a node retires every edge touching it:
	_, _ = g.RemoveNode("Kyiv")
	fmt.Println("edges left:", g.EdgeCount())
	fmt.Println("Lviv→Kyiv exists?", g.HasEdge("Lviv", "Kyiv"))

	// Output:
	// Lviv reaches: [Kyiv Odesa]
	// Lviv→Kyiv: 540
	// edges left: 1
	// Lviv→Kyiv exists? false
}

// ExampleGraph_neighborsBuf shows the allocation-free neighbor query.
func ExampleGraph_neighborsBuf() {
	g := core.NewGraph[int, struct{}, struct{}]()
	for v := 0; v < 4; v++ {
		_ = g.AddNode(v, struct{}{})
	}
	for v := 1; v < 4; v++ {
		_ = g.AddEdge(0, v, struct{}{})
	}

	// One buffer, reused across queries; no allocation per call.
	buf := make([]int, 8)
	nbr, _ := g.NeighborsBuf(0, buf)
	fmt.Println(nbr)

	// A too-small buffer is reported, never truncated silently.
	_, err := g.NeighborsBuf(0, make([]int, 2))
	fmt.Println(err)

	// Output:
	// [1 2 3]
	// core: neighbor buffer too small
}
