// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/famplex/core"
)

// ExampleNewGraph stores a small hierarchy; identical edges collapse.
func ExampleNewGraph() {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())

	_, _ = g.AddEdge("BRAF", "RAF", "isA")
	_, _ = g.AddEdge("RAF", "SFAM_RAF", "equivalentTo")
	_, _ = g.AddEdge("SFAM_RAF", "RAF", "equivalentTo")
	_, _ = g.AddEdge("BRAF", "RAF", "isA") // duplicate, collapses

	fmt.Println("vertices:", g.Vertices())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("RAF→BRAF walkable?", g.HasEdge("RAF", "BRAF"))
	fmt.Println("SFAM_RAF→RAF walkable?", g.HasEdge("SFAM_RAF", "RAF"))

	// Output:
	// vertices: [BRAF RAF SFAM_RAF]
	// edges: 3
	// RAF→BRAF walkable? false
	// SFAM_RAF→RAF walkable? true
}

// ExampleGraph_RelabelVertex renames a vertex without touching its edges.
func ExampleGraph_RelabelVertex() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", "isA")

	_ = g.RelabelVertex("A", "A'")
	for _, e := range g.Edges() {
		fmt.Println(e.ID, e.From, e.Relation, e.To)
	}

	// Output:
	// e1 A' isA B
}
