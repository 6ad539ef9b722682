// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/famplex/core"
	"github.com/katalvlaran/famplex/dfs"
)

// ExampleDetectCycles audits a small hierarchy in which a family was recorded
// as a member of its own member.
func ExampleDetectCycles() {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, _ = g.AddEdge("BRAF", "RAF", "isA")
	_, _ = g.AddEdge("RAF", "BRAF", "isA")
	_, _ = g.AddEdge("RAF", "SFAM_RAF", "equivalentTo")
	_, _ = g.AddEdge("SFAM_RAF", "RAF", "equivalentTo")

	has, cycles, err := dfs.DetectCycles(g, dfs.WithRelations("isA", "hasMember"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(has, cycles)

	// Output:
	// true [[BRAF RAF BRAF]]
}
